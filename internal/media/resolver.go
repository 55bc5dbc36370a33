// Package media turns file_name references into client-facing links and
// serves the media files behind them.
package media

import (
	"strings"

	"histbench-api/internal/domain"
)

// Resolver builds public object storage links for file_name segments.
type Resolver struct {
	baseURL string
}

// NewResolver creates a Resolver for the given object storage prefix.
func NewResolver(baseURL string) *Resolver {
	return &Resolver{baseURL: strings.TrimRight(baseURL, "/")}
}

// Resolve maps each segment of a raw file_name field, in order, to either a
// storage URL or, for reference: markers, the literal segment text.
// Segments are appended to the base URL verbatim.
func (r *Resolver) Resolve(fileName string) []string {
	segments := domain.SplitFileName(fileName)
	out := make([]string, 0, len(segments))
	for _, segment := range segments {
		if domain.IsReference(segment) {
			out = append(out, segment)
			continue
		}
		out = append(out, r.baseURL+"/"+segment)
	}
	return out
}

// BaseURL returns the storage prefix without a trailing slash.
func (r *Resolver) BaseURL() string {
	return r.baseURL
}
