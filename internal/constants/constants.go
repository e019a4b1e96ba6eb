// Package constants contains application-wide constants to avoid magic numbers and strings.
package constants

import "time"

// Application defaults
const (
	DefaultPort       = "3000"
	DefaultDBPath     = "songbox.db"
	DefaultUploadsDir = "public/img"
	DefaultOrigin     = "http://localhost:3001"

	// CoverURLPrefix is the path prefix covers are served from. Stored cover
	// references are relative to it, e.g. "/img/<name>.jpg".
	CoverURLPrefix = "/img"
)

// Pagination defaults
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// HTTP server timeouts
const (
	ReadTimeout     = 15 * time.Second
	WriteTimeout    = 30 * time.Second
	ShutdownTimeout = 5 * time.Second

	// MaxUploadMemory is the in-memory buffer for multipart parsing;
	// larger files spill to temp files.
	MaxUploadMemory = 32 << 20
)

// MIME Types
const (
	MimeTypeFLAC = "audio/flac"
	MimeTypeMP3  = "audio/mpeg"
	MimeTypeJPEG = "image/jpeg"
	MimeTypePNG  = "image/png"
)

// File Extensions
const (
	ExtMP3  = ".mp3"
	ExtFLAC = ".flac"
	ExtJPEG = ".jpg"
)
