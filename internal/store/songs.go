package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cesargomez89/songbox/internal/apperror"
	"github.com/cesargomez89/songbox/internal/domain"
)

const songColumns = "id, name, artist, album, cover, created_at, updated_at"

// songUpdateColumns fixes the evaluation order of the dynamic update
// builder so placeholder positions are deterministic for a given field set.
var songUpdateColumns = []string{"name", "artist", "album", "cover"}

func (db *DB) CreateSong(song *domain.Song) error {
	now := time.Now()
	song.CreatedAt = now
	song.UpdatedAt = now

	query := `INSERT INTO songs (name, artist, album, cover, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?) RETURNING id`

	err := db.QueryRowx(query,
		song.Name, song.Artist, song.Album, song.Cover, song.CreatedAt, song.UpdatedAt,
	).Scan(&song.ID)
	if err != nil {
		return fmt.Errorf("failed to create song: %w", err)
	}
	return nil
}

func (db *DB) GetSongByID(id int) (*domain.Song, error) {
	query := `SELECT ` + songColumns + ` FROM songs WHERE id = ?`

	var song domain.Song
	err := db.Get(&song, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NotFound("song")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get song: %w", err)
	}
	return &song, nil
}

func (db *DB) CountSongs() (int, error) {
	var count int
	if err := db.Get(&count, `SELECT COUNT(*) FROM songs`); err != nil {
		return 0, fmt.Errorf("failed to count songs: %w", err)
	}
	return count, nil
}

// ListSongs returns up to limit songs starting at offset, in insertion order.
// An offset past the end of the table yields an empty slice, not an error.
func (db *DB) ListSongs(limit, offset int) ([]*domain.Song, error) {
	query := `SELECT ` + songColumns + ` FROM songs ORDER BY id LIMIT ? OFFSET ?`

	var songs []*domain.Song
	if err := db.Select(&songs, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list songs: %w", err)
	}
	if songs == nil {
		songs = []*domain.Song{}
	}
	return songs, nil
}

// UpdateSongPartial updates only the supplied columns. SET clauses are
// rendered in the order of songUpdateColumns with positional placeholders;
// the id binds last. Unknown columns are rejected before any SQL runs.
func (db *DB) UpdateSongPartial(id int, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return apperror.ValidationFailed("fields", "nothing to update")
	}

	allowed := make(map[string]bool, len(songUpdateColumns))
	for _, col := range songUpdateColumns {
		allowed[col] = true
	}
	for col := range updates {
		if !allowed[col] {
			return fmt.Errorf("invalid column name: %s", col)
		}
	}

	setClauses := make([]string, 0, len(updates)+1)
	args := make([]interface{}, 0, len(updates)+2)

	for _, col := range songUpdateColumns {
		val, ok := updates[col]
		if !ok {
			continue
		}
		setClauses = append(setClauses, col+" = ?")
		args = append(args, val)
	}
	setClauses = append(setClauses, "updated_at = ?")
	args = append(args, time.Now(), id)

	query := fmt.Sprintf("UPDATE songs SET %s WHERE id = ?", strings.Join(setClauses, ", "))

	result, err := db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("failed to update song: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperror.NotFound("song")
	}
	return nil
}

// DeleteSong removes the row and returns its final snapshot. Deletion is
// physical; the cover file on disk is left alone.
func (db *DB) DeleteSong(id int) (*domain.Song, error) {
	query := `DELETE FROM songs WHERE id = ? RETURNING ` + songColumns

	var song domain.Song
	err := db.QueryRowx(query, id).StructScan(&song)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NotFound("song")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete song: %w", err)
	}
	return &song, nil
}
