package models

import "time"

// Handshake is a short-lived invitation created by a user who wants to become
// a mutual contact of whoever accepts it.
//
// The storage layer removes a handshake on its own once ExpiresAt has passed,
// so holding a Handshake value says nothing about whether it still exists.
type Handshake struct {
	ID        string    `json:"id"`
	SenderID  string    `json:"sender_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// TableName returns the name of the database table
// associated with the Handshake model.
func (h Handshake) TableName() string {
	return "handshakes"
}
