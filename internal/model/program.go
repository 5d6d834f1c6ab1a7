package model

import "time"

// ProgramEntry is one dated, language-tagged program document plus its stored file.
// This is a pure domain model with no database-specific dependencies or tags.
// At most one entry exists per (ProgramDate, Language) pair.
type ProgramEntry struct {
	ID          int64     `json:"id"`
	ProgramDate string    `json:"program_date"`
	Language    string    `json:"language"`
	FilePath    string    `json:"file_path"`
	FileType    string    `json:"file_type"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// ProgramSummary is the public projection of an entry, grouped by date and
// language in the public listing.
type ProgramSummary struct {
	ID         int64     `json:"id"`
	FilePath   string    `json:"file_path"`
	FileType   string    `json:"file_type"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Summary returns the public projection of the entry.
func (p ProgramEntry) Summary() ProgramSummary {
	return ProgramSummary{
		ID:         p.ID,
		FilePath:   p.FilePath,
		FileType:   p.FileType,
		UploadedAt: p.UploadedAt,
	}
}
