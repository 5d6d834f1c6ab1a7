// Package storage abstracts where promoted program files live. Uploads always
// land on local disk first (multipart temp file); a backend then promotes the
// temp file to its final key. Keys are slash-separated relative paths such as
// "uploads/2024-01-01_English.pdf" and double as the catalog's file_path column.
package storage

import "context"

// Storage is the file backend for promoted program documents.
type Storage interface {
	// Promote moves the stored temporary file to its final key. Two racers for
	// the same key resolve last-writer-wins; the temp file is consumed either way.
	Promote(ctx context.Context, tempPath, key string) error

	// Remove deletes the object for key. A missing object is not an error;
	// removal at catalog-deletion time is best-effort.
	Remove(ctx context.Context, key string) error

	// URL returns the public location for a stored key.
	URL(key string) string
}
