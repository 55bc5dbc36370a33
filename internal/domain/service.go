package domain

import (
	"context"
	"io"
	"time"
)

// QuestionRepository is the read-only view over the loaded question table.
type QuestionRepository interface {
	// Query applies the filter and returns the matching count before paging
	// plus the rows in the requested page window, in table order.
	Query(filter QuestionFilter, page, perPage int) (int, []*Question)

	// GetByID returns the row with the given task_id, or nil when absent.
	GetByID(taskID int) *Question

	// All returns every row in table order.
	All() []*Question
}

// MediaInfo describes a media file without reading its content.
type MediaInfo struct {
	Name string
	Size int64
}

// MediaSource opens media files by their path relative to the media root.
type MediaSource interface {
	// Stat returns ErrMediaNotExist when the file is absent.
	Stat(ctx context.Context, path string) (*MediaInfo, error)

	// Open returns ErrMediaNotExist when the file is absent.
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// MediaSourceError is a sentinel error type for media sources.
type MediaSourceError string

func (e MediaSourceError) Error() string {
	return string(e)
}

// ErrMediaNotExist is returned by a MediaSource when the path has no file.
const ErrMediaNotExist = MediaSourceError("media: file does not exist")

// ConversionCache stores converted media payloads keyed by source path.
type ConversionCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
}
