package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/hedef100/academia-core/internal/models"
	"github.com/hedef100/academia-core/internal/report"
	"github.com/hedef100/academia-core/internal/snapshot"
	"github.com/hedef100/academia-core/internal/store"
	"github.com/hedef100/academia-core/pkg/cache"
	"github.com/hedef100/academia-core/pkg/config"
	"github.com/hedef100/academia-core/pkg/database"
	"github.com/hedef100/academia-core/pkg/logger"
	"github.com/hedef100/academia-core/pkg/storage"
)

func main() {
	var (
		command   = flag.String("cmd", "stats", "command to run: stats, export or seed")
		studentID = flag.String("student", "", "student id for export")
		format    = flag.String("format", "pdf", "export format: pdf or csv")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx := context.Background()

	backend, err := newBackend(ctx, cfg)
	if err != nil {
		logr.Sugar().Fatalw("failed to init snapshot backend", "backend", cfg.Snapshot.Backend, "error", err)
	}

	if *command == "seed" {
		if err := backend.Save(ctx, models.DefaultState(time.Now().UTC())); err != nil {
			logr.Sugar().Fatalw("failed to seed state", "error", err)
		}
		logr.Sugar().Infow("seeded default state", "key", snapshot.SchemaKey)
		return
	}

	writer := snapshot.NewWriter(backend, logr)
	writer.Start(ctx)
	defer writer.Stop()

	st, err := store.Open(ctx, backend, store.Options{
		Saver:               writer,
		Logger:              logr,
		AdminAccessCodeHash: cfg.Admin.AccessCodeHash,
	})
	if err != nil {
		logr.Sugar().Fatalw("failed to open store", "error", err)
	}

	switch *command {
	case "stats":
		runStats(st)
	case "export":
		runExport(cfg, logr, st, *studentID, *format)
	default:
		logr.Sugar().Fatalw("unknown command", "cmd", *command)
	}
}

func newBackend(ctx context.Context, cfg *config.Config) (snapshot.Store, error) {
	switch cfg.Snapshot.Backend {
	case config.SnapshotBackendFile:
		return snapshot.NewFileStore(cfg.Snapshot.Dir)
	case config.SnapshotBackendRedis:
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			return nil, err
		}
		return snapshot.NewRedisStore(client), nil
	case config.SnapshotBackendPostgres:
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			return nil, err
		}
		pg := snapshot.NewPostgresStore(db)
		if err := pg.Init(ctx); err != nil {
			return nil, err
		}
		return pg, nil
	default:
		return nil, fmt.Errorf("unknown snapshot backend %q", cfg.Snapshot.Backend)
	}
}

func runStats(st *store.Store) {
	totalUsers, totalExams := st.Counts()
	fmt.Printf("users: %d, exam results: %d\n", totalUsers, totalExams)
	for _, student := range st.Students() {
		stats, err := st.StudentStats(student.ID)
		if err != nil {
			continue
		}
		fmt.Printf("%-24s exams=%-3d avg_net=%-7.2f last_net=%-7.2f target=%.0f%%\n",
			student.Name, stats.Summary.TotalCount, stats.Summary.AvgNet, stats.Summary.LastNet, stats.TargetProgress)
	}
}

func runExport(cfg *config.Config, logr *zap.Logger, st *store.Store, studentID, format string) {
	sugar := logr.Sugar()
	if studentID == "" {
		sugar.Fatalw("export requires -student")
	}

	svc := report.NewService(st, logr)

	var (
		data []byte
		err  error
	)
	switch format {
	case "csv":
		data, err = svc.RenderCSV(studentID)
	case "pdf":
		data, err = svc.RenderPDF(studentID)
	default:
		sugar.Fatalw("unknown export format", "format", format)
	}
	if err != nil {
		sugar.Fatalw("failed to render report", "student", studentID, "error", err)
	}

	reports, err := storage.NewLocalStorage(cfg.Reports.Dir)
	if err != nil {
		sugar.Fatalw("failed to init reports storage", "error", err)
	}
	filename := fmt.Sprintf("%s_progress.%s", studentID, format)
	if _, err := reports.Save(filename, data); err != nil {
		sugar.Fatalw("failed to save report", "file", filename, "error", err)
	}
	fmt.Println(reports.Path(filename))

	if lines, err := svc.ErrorSummary(studentID); err == nil {
		for _, line := range lines {
			fmt.Println(line)
		}
	}
}
