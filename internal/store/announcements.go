package store

import (
	"github.com/hedef100/academia-core/internal/models"
	appErrors "github.com/hedef100/academia-core/pkg/errors"
)

// BroadcastAnnouncement publishes a new global announcement. All
// previously global announcements are demoted in the same transition,
// keeping exactly one global entry at all times.
func (s *Store) BroadcastAnnouncement(title, message string) (*models.Announcement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	announcement, err := s.broadcastAnnouncement(title, message)
	s.finish("broadcast_announcement", err)
	return announcement, err
}

func (s *Store) broadcastAnnouncement(title, message string) (*models.Announcement, error) {
	if title == "" || message == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "title and message required")
	}

	for i := range s.state.Announcements {
		s.state.Announcements[i].IsGlobal = false
	}
	announcement := models.Announcement{
		ID:       s.newID(),
		Title:    title,
		Message:  message,
		Date:     s.now(),
		IsGlobal: true,
	}
	s.state.Announcements = append([]models.Announcement{announcement}, s.state.Announcements...)

	published := announcement
	return &published, nil
}
