package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"histbench-api/internal/domain"

	"github.com/spf13/afero"
)

// LocalSource serves media files from a directory tree.
type LocalSource struct {
	fs afero.Fs
}

// NewLocalSource roots a LocalSource at dir on the OS filesystem.
func NewLocalSource(dir string) *LocalSource {
	return NewLocalSourceFromFs(afero.NewBasePathFs(afero.NewOsFs(), dir))
}

// NewLocalSourceFromFs wraps an existing afero filesystem.
func NewLocalSourceFromFs(fs afero.Fs) *LocalSource {
	return &LocalSource{fs: fs}
}

func (s *LocalSource) Stat(ctx context.Context, path string) (*domain.MediaInfo, error) {
	fi, err := s.fs.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrMediaNotExist
		}
		return nil, err
	}
	if fi.IsDir() {
		return nil, domain.ErrMediaNotExist
	}
	return &domain.MediaInfo{Name: fi.Name(), Size: fi.Size()}, nil
}

func (s *LocalSource) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if _, err := s.Stat(ctx, path); err != nil {
		return nil, err
	}
	return s.fs.Open(path)
}

// RemoteSource fetches media files from the public object storage bucket.
type RemoteSource struct {
	baseURL string
	client  *http.Client
}

// NewRemoteSource creates a RemoteSource for baseURL using a client with the given timeout.
func NewRemoteSource(baseURL string, timeout time.Duration) *RemoteSource {
	return NewRemoteSourceWithClient(baseURL, &http.Client{Timeout: timeout})
}

func NewRemoteSourceWithClient(baseURL string, client *http.Client) *RemoteSource {
	return &RemoteSource{baseURL: baseURL, client: client}
}

func (s *RemoteSource) objectURL(path string) (string, error) {
	return url.JoinPath(s.baseURL, path)
}

func (s *RemoteSource) do(ctx context.Context, method, path string, header http.Header) (*http.Response, error) {
	u, err := s.objectURL(path)
	if err != nil {
		return nil, fmt.Errorf("build object url: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range header {
		req.Header[k] = v
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusForbidden:
		// Public buckets answer 403 for keys that do not exist.
		resp.Body.Close()
		return nil, domain.ErrMediaNotExist
	case resp.StatusCode >= 300:
		resp.Body.Close()
		return nil, fmt.Errorf("object storage returned %s for %s", resp.Status, path)
	}
	return resp, nil
}

// Stat issues a HEAD request. When the response carries no Content-Length it
// asks for the first byte and reads the total from Content-Range. Size is -1
// if neither reveals it.
func (s *RemoteSource) Stat(ctx context.Context, path string) (*domain.MediaInfo, error) {
	resp, err := s.do(ctx, http.MethodHead, path, nil)
	if err != nil {
		return nil, err
	}
	resp.Body.Close()

	size := resp.ContentLength
	if size < 0 {
		if size, err = s.rangedSize(ctx, path); err != nil {
			return nil, err
		}
	}
	return &domain.MediaInfo{Name: baseName(path), Size: size}, nil
}

func (s *RemoteSource) rangedSize(ctx context.Context, path string) (int64, error) {
	resp, err := s.do(ctx, http.MethodGet, path, http.Header{"Range": {"bytes=0-0"}})
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusPartialContent {
		return parseContentRangeTotal(resp.Header.Get("Content-Range")), nil
	}
	// The server ignored the range and is sending the whole object.
	return resp.ContentLength, nil
}

// parseContentRangeTotal extracts the complete length from a header such as
// "bytes 0-0/2048". It returns -1 when the length is absent or "*".
func parseContentRangeTotal(h string) int64 {
	i := strings.LastIndexByte(h, '/')
	if i < 0 {
		return -1
	}
	n, err := strconv.ParseInt(strings.TrimSpace(h[i+1:]), 10, 64)
	if err != nil || n < 0 {
		return -1
	}
	return n
}

func (s *RemoteSource) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	resp, err := s.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}
