// Package artwork reads embedded cover art and text tags out of uploaded
// audio files, so a song can be added from an .mp3 or .flac without a
// separate cover image. It is the read-side counterpart of the usual
// tagging flow: ID3v2 frames for MP3, Vorbis comments and picture blocks
// for FLAC.
package artwork

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2/v2"
	flac "github.com/go-flac/go-flac"
	"github.com/go-flac/flacpicture"
	"github.com/go-flac/flacvorbis"

	"github.com/cesargomez89/songbox/internal/constants"
)

// Metadata holds whatever could be read from the file; absent values stay
// zero and the caller decides what is required.
type Metadata struct {
	Title   string
	Artist  string
	Album   string
	Picture []byte
	MIME    string
}

// IsAudio reports whether the file name looks like a supported audio upload.
func IsAudio(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case constants.ExtMP3, constants.ExtFLAC:
		return true
	}
	return false
}

// ExtForMIME maps a picture MIME type to the extension the extracted image
// is stored under. JPEG is the fallback, matching the dominant cover format.
func ExtForMIME(mime string) string {
	if mime == constants.MimeTypePNG {
		return ".png"
	}
	return constants.ExtJPEG
}

// ExtractFromUpload spools the multipart file to a temp file and extracts
// its metadata. The temp file is always removed.
func ExtractFromUpload(fh *multipart.FileHeader) (*Metadata, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "songbox-*"+strings.ToLower(filepath.Ext(fh.Filename)))
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("failed to spool upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temp file: %w", err)
	}

	return Extract(tmpPath)
}

// Extract reads tags and embedded art from the audio file at path.
func Extract(path string) (*Metadata, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case constants.ExtMP3:
		return extractMP3(path)
	case constants.ExtFLAC:
		return extractFLAC(path)
	default:
		return nil, fmt.Errorf("unsupported file format: %s", filepath.Ext(path))
	}
}

func extractMP3(path string) (*Metadata, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, fmt.Errorf("failed to parse ID3 tag: %w", err)
	}
	defer tag.Close()

	md := &Metadata{
		Title:  tag.Title(),
		Artist: tag.Artist(),
		Album:  tag.Album(),
	}

	for _, frame := range tag.GetFrames(tag.CommonID("Attached picture")) {
		pic, ok := frame.(id3v2.PictureFrame)
		if !ok {
			continue
		}
		md.Picture = pic.Picture
		md.MIME = pic.MimeType
		// Prefer the front cover when several pictures are attached.
		if pic.PictureType == id3v2.PTFrontCover {
			break
		}
	}

	return md, nil
}

func extractFLAC(path string) (*Metadata, error) {
	f, err := flac.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse FLAC file: %w", err)
	}

	md := &Metadata{}
	for _, block := range f.Meta {
		switch block.Type {
		case flac.VorbisComment:
			vc, err := flacvorbis.ParseFromMetaDataBlock(*block)
			if err != nil {
				continue
			}
			md.Title = firstComment(vc, flacvorbis.FIELD_TITLE)
			md.Artist = firstComment(vc, flacvorbis.FIELD_ARTIST)
			md.Album = firstComment(vc, flacvorbis.FIELD_ALBUM)
		case flac.Picture:
			pic, err := flacpicture.ParseFromMetaDataBlock(*block)
			if err != nil {
				continue
			}
			if len(md.Picture) == 0 || pic.PictureType == flacpicture.PictureTypeFrontCover {
				md.Picture = pic.ImageData
				md.MIME = pic.MIME
			}
		}
	}

	return md, nil
}

func firstComment(vc *flacvorbis.MetaDataBlockVorbisComment, field string) string {
	vals, err := vc.Get(field)
	if err != nil || len(vals) == 0 {
		return ""
	}
	return vals[0]
}
