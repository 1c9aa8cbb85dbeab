package model

import "time"

// User represents an account that owns assets, snapshots and settings.
// Authentication is out of scope; the server provisions a default user at
// startup and resolves the acting user per request.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"createdAt"`
}
