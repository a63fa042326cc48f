package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/evanmoss/dailyq/internal/models"
)

// Mime types for the two export formats.
const (
	MimeJSON = "application/json"
	MimeCSV  = "text/csv"
)

// ErrSharingUnavailable is returned by a Sharer when the platform reports
// no share target.
var ErrSharingUnavailable = errors.New("sharing unavailable")

// FileWriter persists export content and returns a URI for it.
type FileWriter interface {
	WriteFile(content, filename string) (uri string, err error)
}

// Sharer hands a written export off to an external consumer.
type Sharer interface {
	Share(uri, mimeType string) error
}

// DirWriter writes exports into a directory on the local filesystem.
type DirWriter struct {
	Dir string
}

func (w DirWriter) WriteFile(content, filename string) (string, error) {
	if err := os.MkdirAll(w.Dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(w.Dir, filename)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}
	return path, nil
}

// NoSharer is the Sharer for platforms without a share sheet; it always
// reports sharing as unavailable.
type NoSharer struct{}

func (NoSharer) Share(uri, mimeType string) error {
	return ErrSharingUnavailable
}

// Exporter composes serialization, file writing, and optional sharing.
type Exporter struct {
	Writer FileWriter
	Sharer Sharer // nil means do not share
}

// ExportJSON writes the entries as JSON under the default filename and
// returns the written file's URI.
func (e Exporter) ExportJSON(entries []models.DiaryEntry, now time.Time) (string, error) {
	content, err := ToJSON(entries)
	if err != nil {
		return "", err
	}
	return e.write(content, Filename("diary", now)+".json", MimeJSON)
}

// ExportCSV writes the entries as CSV under the default filename and
// returns the written file's URI.
func (e Exporter) ExportCSV(entries []models.DiaryEntry, now time.Time) (string, error) {
	return e.write(ToCSV(entries), Filename("diary", now)+".csv", MimeCSV)
}

func (e Exporter) write(content, filename, mimeType string) (string, error) {
	uri, err := e.Writer.WriteFile(content, filename)
	if err != nil {
		return "", err
	}
	if e.Sharer != nil {
		if err := e.Sharer.Share(uri, mimeType); err != nil {
			return "", fmt.Errorf("failed to share %s: %w", filename, err)
		}
	}
	return uri, nil
}
