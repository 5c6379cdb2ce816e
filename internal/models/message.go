package models

import "time"

// AdminMessage is an append-only report sent to the admin inbox.
// Sender fields are snapshots taken at send time. IsRead is present
// for forward compatibility; no transition flips it yet.
type AdminMessage struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	SenderName string    `json:"senderName"`
	SenderRole Role      `json:"senderRole"`
	Subject    string    `json:"subject"`
	Content    string    `json:"content"`
	Date       time.Time `json:"date"`
	IsRead     bool      `json:"isRead"`
}
