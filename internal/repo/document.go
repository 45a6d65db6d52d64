// Package repo contains persistence for the travel document.
// Each backend implements DocumentRepo; no business logic lives here, only
// storage and encoding.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkordes/travel-tracker/internal/domain"
)

// DocumentRepo stores and retrieves the single travel document.
// The service layer depends on this interface, which allows it to be
// unit-tested with a mock.
type DocumentRepo interface {
	// Load returns the raw JSON of the most recently saved document, in whatever
	// schema revision it was written. Returns domain.ErrNotFound if nothing has
	// been saved yet. Decoding and migration are the caller's job.
	Load(ctx context.Context) ([]byte, error)

	// Save persists doc, replacing (or superseding) the previous document.
	Save(ctx context.Context, doc domain.TravelData) error
}

// Encode renders doc as UTF-8, pretty-printed JSON with a trailing newline.
// Every backend and the export endpoint write this exact form.
func Encode(doc domain.TravelData) ([]byte, error) {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("repo.Encode: %w", err)
	}
	return append(b, '\n'), nil
}

// fileDocumentRepo keeps the document in one JSON file.
type fileDocumentRepo struct {
	path string
}

// NewFileDocumentRepo constructs a DocumentRepo backed by the file at path.
// The parent directory is created on first save.
func NewFileDocumentRepo(path string) DocumentRepo {
	return &fileDocumentRepo{path: path}
}

// Load reads the file. A missing file maps to domain.ErrNotFound.
func (r *fileDocumentRepo) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("repo.FileDocumentRepo.Load: %w", err)
	}
	b, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("repo.FileDocumentRepo.Load: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("repo.FileDocumentRepo.Load: %w", err)
	}
	return b, nil
}

// Save writes to a temporary file in the same directory and renames it over the
// target, so a crash mid-write never leaves a truncated document.
func (r *fileDocumentRepo) Save(ctx context.Context, doc domain.TravelData) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("repo.FileDocumentRepo.Save: %w", err)
	}
	b, err := Encode(doc)
	if err != nil {
		return fmt.Errorf("repo.FileDocumentRepo.Save: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("repo.FileDocumentRepo.Save: mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("repo.FileDocumentRepo.Save: temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("repo.FileDocumentRepo.Save: write: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("repo.FileDocumentRepo.Save: sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("repo.FileDocumentRepo.Save: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("repo.FileDocumentRepo.Save: rename: %w", err)
	}
	return nil
}
