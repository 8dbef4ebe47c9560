package domain

import "time"

// User is a local account record. Authentication is handled elsewhere;
// trackr only needs a stable owner id for sessions and stats.
type User struct {
	ID        string
	Email     string
	CreatedAt time.Time
}
