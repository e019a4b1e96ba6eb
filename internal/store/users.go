package store

import "fmt"

// MatchUser reports whether a user row exists with exactly this username
// and password. The comparison is a cleartext equality match by contract;
// callers must not disclose which of the two values was wrong.
func (db *DB) MatchUser(username, password string) (bool, error) {
	query := `SELECT COUNT(*) FROM users WHERE username = ? AND password = ?`

	var count int
	if err := db.Get(&count, query, username, password); err != nil {
		return false, fmt.Errorf("failed to match user: %w", err)
	}
	return count > 0, nil
}
