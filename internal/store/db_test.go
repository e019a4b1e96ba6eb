package store

import (
	"path/filepath"
	"testing"

	"github.com/cesargomez89/songbox/internal/domain"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open db: %v", err)
	}
	t.Cleanup(func() {
		if cErr := db.Close(); cErr != nil {
			t.Logf("db.Close error: %v", cErr)
		}
	})
	return db
}

func insertSong(t *testing.T, db *DB, name, artist, album string) *domain.Song {
	t.Helper()

	song := &domain.Song{
		Name:   name,
		Artist: artist,
		Album:  album,
		Cover:  "/img/" + name + ".jpg",
	}
	if err := db.CreateSong(song); err != nil {
		t.Fatalf("CreateSong failed: %v", err)
	}
	return song
}
