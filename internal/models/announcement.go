package models

import "time"

// Announcement is an admin broadcast. At most one announcement is
// global at any time; publishing a new global one demotes the rest.
type Announcement struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Message  string    `json:"message"`
	Date     time.Time `json:"date"`
	IsGlobal bool      `json:"isGlobal"`
}
