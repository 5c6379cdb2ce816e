package store

import (
	"github.com/hedef100/academia-core/internal/models"
	appErrors "github.com/hedef100/academia-core/pkg/errors"
)

// SendAdminMessageRequest describes a report sent to the admin inbox.
type SendAdminMessageRequest struct {
	SenderID string `json:"senderId" validate:"required"`
	Subject  string `json:"subject" validate:"required"`
	Content  string `json:"content" validate:"required"`
}

// SendAdminMessage appends to the admin inbox. The sender's name and
// role are snapshotted at send time; messages are never edited or
// deleted afterwards.
func (s *Store) SendAdminMessage(req SendAdminMessageRequest) (*models.AdminMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	message, err := s.sendAdminMessage(req)
	s.finish("send_admin_message", err)
	return message, err
}

func (s *Store) sendAdminMessage(req SendAdminMessageRequest) (*models.AdminMessage, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	idx := s.userIndex(req.SenderID)
	if idx < 0 {
		return nil, appErrors.Clone(appErrors.ErrUserNotFound, "sender not found")
	}
	sender := &s.state.Users[idx]

	message := models.AdminMessage{
		ID:         s.newID(),
		SenderID:   sender.ID,
		SenderName: sender.Name,
		SenderRole: sender.Role,
		Subject:    req.Subject,
		Content:    req.Content,
		Date:       s.now(),
	}
	s.state.AdminMessages = append([]models.AdminMessage{message}, s.state.AdminMessages...)

	sent := message
	return &sent, nil
}
