package domain

import "time"

// Song represents a catalog entry. Cover holds the web path of the stored
// cover image, e.g. "/img/5f3e....jpg"; it always references some path even
// if the file was later replaced or removed from disk.
type Song struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Artist    string    `json:"artist" db:"artist"`
	Album     string    `json:"album" db:"album"`
	Cover     string    `json:"cover" db:"cover"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// User is read-only from this service's perspective; rows are provisioned
// out of band. Passwords are stored and compared in cleartext to preserve
// the verify-user endpoint contract.
type User struct {
	ID       int    `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Password string `json:"-" db:"password"`
}
