package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"programboard/internal/model"
	"programboard/internal/repository"
	"programboard/internal/sanitize"
	"programboard/internal/storage"
)

var (
	ErrMissingFile     = errors.New("no file uploaded")
	ErrMissingMetadata = errors.New("date and language are required")
	ErrInvalidLanguage = errors.New("invalid language")
	ErrInvalidFileType = errors.New("invalid file type")
	ErrNotFound        = errors.New("program not found")
)

// AllowedLanguages is the fixed language set a program can be tagged with.
var AllowedLanguages = []string{"English", "Turkish", "Spanish", "German"}

// AllowedMimeTypes are the content types accepted at upload intake.
var AllowedMimeTypes = []string{"application/pdf", "image/jpeg", "image/png", "image/gif"}

// UploadInput describes a multipart file already staged on local disk.
type UploadInput struct {
	TempPath     string
	OriginalName string
	MimeType     string
	SizeBytes    int64
}

// UploadResult reports whether the upload created a new catalog entry or
// replaced an existing one.
type UploadResult struct {
	Created  bool
	FilePath string
}

// ProgramService defines the use cases for daily program documents.
type ProgramService interface {
	// Upload validates the staged file and its metadata, promotes the file to
	// its final location, and upserts the catalog entry keyed by the RAW
	// date/language strings. On any validation failure the staged temp file is
	// removed before returning; no orphaned uploads.
	Upload(ctx context.Context, date, language string, file *UploadInput) (*UploadResult, error)

	// PublicPrograms returns entries for today and tomorrow relative to now,
	// using UTC calendar-date truncation, grouped date -> language -> summary.
	PublicPrograms(ctx context.Context, now time.Time) (map[string]map[string]model.ProgramSummary, error)

	// AdminList returns every entry, newest program date first.
	AdminList(ctx context.Context) ([]model.ProgramEntry, error)

	// Delete removes the entry and best-effort removes its stored file.
	// Returns ErrNotFound when no entry has the given id.
	Delete(ctx context.Context, id int64) error
}

type programService struct {
	store     storage.Storage
	repo      repository.ProgramRepository
	uploadDir string
}

// NewProgramService constructs a ProgramService. uploadDir is the key prefix
// promoted files live under (also the on-disk directory for the local backend).
func NewProgramService(store storage.Storage, repo repository.ProgramRepository, uploadDir string) ProgramService {
	return &programService{store: store, repo: repo, uploadDir: uploadDir}
}

func languageAllowed(language string) bool {
	for _, l := range AllowedLanguages {
		if l == language {
			return true
		}
	}
	return false
}

// MimeTypeAllowed reports whether ct is an accepted upload content type.
func MimeTypeAllowed(ct string) bool {
	for _, t := range AllowedMimeTypes {
		if t == ct {
			return true
		}
	}
	return false
}

func (s *programService) Upload(ctx context.Context, date, language string, file *UploadInput) (*UploadResult, error) {
	if file == nil || file.TempPath == "" {
		return nil, ErrMissingFile
	}
	if date == "" || language == "" {
		s.discardTemp(file.TempPath)
		return nil, ErrMissingMetadata
	}
	if !languageAllowed(language) {
		s.discardTemp(file.TempPath)
		return nil, ErrInvalidLanguage
	}
	// HTTP intake already filters content types, but the service is also the
	// boundary for any other caller.
	if !MimeTypeAllowed(file.MimeType) {
		s.discardTemp(file.TempPath)
		return nil, ErrInvalidFileType
	}

	// Filename from sanitized tokens; the stored path gets an independent
	// control-character pass because the extension and separators are outside
	// what the token sanitizers cover.
	safeDate := sanitize.DateToken(date)
	safeLanguage := sanitize.LanguageToken(language)
	ext := strings.ToLower(filepath.Ext(file.OriginalName))
	key := sanitize.StripControlChars(path.Join(s.uploadDir, safeDate+"_"+safeLanguage+ext))

	if err := s.store.Promote(ctx, file.TempPath, key); err != nil {
		s.discardTemp(file.TempPath)
		return nil, fmt.Errorf("store upload: %w", err)
	}

	// The upsert key is the raw date/language pair, not the sanitized tokens.
	// The promoted file stays in place if the upsert fails; a retried upload
	// for the same pair lands on the same key anyway.
	created, err := s.repo.Upsert(ctx, date, language, key, ext)
	if err != nil {
		return nil, fmt.Errorf("save program: %w", err)
	}

	return &UploadResult{Created: created, FilePath: key}, nil
}

// discardTemp removes a staged temp file after a validation failure.
func (s *programService) discardTemp(tempPath string) {
	_ = os.Remove(tempPath)
}

func (s *programService) PublicPrograms(ctx context.Context, now time.Time) (map[string]map[string]model.ProgramSummary, error) {
	today := now.UTC().Format("2006-01-02")
	tomorrow := now.UTC().AddDate(0, 0, 1).Format("2006-01-02")

	entries, err := s.repo.ListForDates(ctx, []string{today, tomorrow})
	if err != nil {
		return nil, err
	}

	grouped := make(map[string]map[string]model.ProgramSummary)
	for _, e := range entries {
		byLanguage, ok := grouped[e.ProgramDate]
		if !ok {
			byLanguage = make(map[string]model.ProgramSummary)
			grouped[e.ProgramDate] = byLanguage
		}
		byLanguage[e.Language] = e.Summary()
	}
	return grouped, nil
}

func (s *programService) AdminList(ctx context.Context) ([]model.ProgramEntry, error) {
	return s.repo.List(ctx)
}

func (s *programService) Delete(ctx context.Context, id int64) error {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	// File first, then row. The two steps are not transactionally linked; a
	// crash in between leaves an orphaned file or a dangling path, which is
	// an accepted risk. A missing file is tolerated by the backend.
	if err := s.store.Remove(ctx, entry.FilePath); err != nil {
		return fmt.Errorf("remove stored file: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
