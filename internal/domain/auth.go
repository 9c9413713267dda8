package domain

import "time"

// Viewer identifies the authenticated caller.
type Viewer struct {
	Username string
}

// AuthPayload is the result of a successful login.
type AuthPayload struct {
	Token     string
	ExpiresAt time.Time
	Viewer    Viewer
}
