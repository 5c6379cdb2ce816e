package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hedef100/academia-core/internal/models"
	appErrors "github.com/hedef100/academia-core/pkg/errors"
)

func TestRegisterStudentReceivesDefaultSubjects(t *testing.T) {
	s := newTestStore(t, Options{})

	user, err := s.RegisterUser(RegisterUserRequest{
		Name:     "Ayşe Yılmaz",
		Username: "ayse",
		Password: "parola",
		Role:     models.RoleStudent,
		ExamType: models.ExamTypeLGS,
	})
	require.NoError(t, err)

	require.Len(t, user.Subjects, 3)
	assert.Equal(t, "mat", user.Subjects[0].ID)
	assert.Equal(t, "tur", user.Subjects[1].ID)
	assert.Equal(t, "fen", user.Subjects[2].ID)
	for _, subject := range user.Subjects {
		assert.Equal(t, models.EvaluationTest, subject.EvaluationType)
	}
}

func TestRegisterStudentRejectsUnknownExamType(t *testing.T) {
	s := newTestStore(t, Options{})

	_, err := s.RegisterUser(RegisterUserRequest{
		Name:     "Ayşe Yılmaz",
		Username: "ayse",
		Password: "parola",
		Role:     models.RoleStudent,
		ExamType: "TYT",
	})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	s := newTestStore(t, Options{})

	_, err := s.RegisterUser(RegisterUserRequest{
		Name:     "Sahte Selim",
		Username: "ogrenciselim",
		Password: "parola",
		Role:     models.RoleStudent,
		ExamType: models.ExamTypeYKS,
	})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrDuplicateUsername))

	totalUsers, _ := s.Counts()
	assert.Equal(t, 3, totalUsers)
}

func TestRegisterTeacherKeepsBranchAndCoachingFlag(t *testing.T) {
	s := newTestStore(t, Options{})

	user, err := s.RegisterUser(RegisterUserRequest{
		Name:           "Fizikçi Fatma",
		Username:       "fatmahoca",
		Password:       "parola",
		Role:           models.RoleTeacher,
		Branch:         "Fizik",
		IsCoachingOpen: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Fizik", user.Branch)
	assert.True(t, user.IsCoachingOpen)
	assert.Empty(t, user.Subjects)
}

func TestRegisterAdminRequiresAccessCode(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("gizli-kod"), bcrypt.MinCost)
	require.NoError(t, err)

	s := newTestStore(t, Options{AdminAccessCodeHash: string(hash)})

	_, err = s.RegisterUser(RegisterUserRequest{
		Name:       "Yeni Yönetici",
		Username:   "yonetici2",
		Password:   "parola",
		Role:       models.RoleAdmin,
		AccessCode: "yanlis",
	})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrForbidden))

	user, err := s.RegisterUser(RegisterUserRequest{
		Name:       "Yeni Yönetici",
		Username:   "yonetici2",
		Password:   "parola",
		Role:       models.RoleAdmin,
		AccessCode: "gizli-kod",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestRegisterAdminDisabledWithoutConfiguredHash(t *testing.T) {
	s := newTestStore(t, Options{})

	_, err := s.RegisterUser(RegisterUserRequest{
		Name:       "Yeni Yönetici",
		Username:   "yonetici2",
		Password:   "parola",
		Role:       models.RoleAdmin,
		AccessCode: "herhangi",
	})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrForbidden))
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	s := newTestStore(t, Options{})

	_, err := s.RegisterUser(RegisterUserRequest{
		Name:     "Kimse",
		Username: "kimse",
		Password: "parola",
		Role:     "SUPERVISOR",
	})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
}

func TestLoginOpensSessionAndLogoutClearsIt(t *testing.T) {
	s := newTestStore(t, Options{})

	user, err := s.Login("ogrenciselim", "123456")
	require.NoError(t, err)
	assert.Equal(t, "s1", user.ID)

	session := s.CurrentUser()
	require.NotNil(t, session)
	assert.Equal(t, "s1", session.ID)

	s.Logout()
	assert.Nil(t, s.CurrentUser())
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	s := newTestStore(t, Options{})

	_, err := s.Login("ogrenciselim", "yanlis")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrInvalidCredentials))
	assert.Nil(t, s.CurrentUser())
}

func TestAuthenticateDoesNotOpenSession(t *testing.T) {
	s := newTestStore(t, Options{})

	user, err := s.Authenticate("hocacaner", "123456")
	require.NoError(t, err)
	assert.Equal(t, "t1", user.ID)
	assert.Nil(t, s.CurrentUser())
}

func TestUpdateUserProfileReplacesRecordAndRefreshesSession(t *testing.T) {
	s := newTestStore(t, Options{})

	_, err := s.Login("ogrenciselim", "123456")
	require.NoError(t, err)

	student, err := s.UserByID("s1")
	require.NoError(t, err)
	student.Name = "Selim Yeni"
	student.TargetNet = 100

	updated, err := s.UpdateUserProfile(*student)
	require.NoError(t, err)
	assert.Equal(t, "Selim Yeni", updated.Name)

	session := s.CurrentUser()
	require.NotNil(t, session)
	assert.Equal(t, "Selim Yeni", session.Name)
	assert.Equal(t, 100.0, session.TargetNet)
}

func TestUpdateUserProfileKeepsUsernameUnique(t *testing.T) {
	s := newTestStore(t, Options{})

	student, err := s.UserByID("s1")
	require.NoError(t, err)
	student.Username = "hocacaner"

	_, err = s.UpdateUserProfile(*student)
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrDuplicateUsername))

	// Keeping the own username is not a conflict.
	student.Username = "ogrenciselim"
	_, err = s.UpdateUserProfile(*student)
	require.NoError(t, err)
}

func TestUpdateUserProfileUnknownUser(t *testing.T) {
	s := newTestStore(t, Options{})

	_, err := s.UpdateUserProfile(models.User{ID: "yok", Username: "yok"})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrUserNotFound))
}
