package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path"
	"strings"
	"time"

	"histbench-api/internal/cache"
	"histbench-api/internal/domain"
	"histbench-api/internal/dto"
	"histbench-api/internal/logger"
	"histbench-api/internal/media"
	"histbench-api/internal/metrics"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// MediaContent is a media payload ready to be written to the client.
// Size is -1 when unknown. The caller must close Body.
type MediaContent struct {
	ContentType string
	Size        int64
	Body        io.ReadCloser
}

// MediaService serves metadata and browser-friendly renditions of media files
type MediaService interface {
	GetInfo(ctx context.Context, filePath string) (*dto.MediaInfoResponse, error)
	Convert(ctx context.Context, filePath string) (*MediaContent, error)
}

type mediaService struct {
	source        domain.MediaSource
	cache         domain.ConversionCache
	conversionTTL time.Duration
	group         singleflight.Group
}

// NewMediaService creates a MediaService. A nil cache disables conversion caching.
func NewMediaService(source domain.MediaSource, conversionCache domain.ConversionCache, conversionTTL time.Duration) MediaService {
	if conversionCache == nil {
		conversionCache = domain.NoopCache{}
	}
	return &mediaService{
		source:        source,
		cache:         conversionCache,
		conversionTTL: conversionTTL,
	}
}

// CleanMediaPath normalizes a request path and rejects anything that would
// escape the media root.
func CleanMediaPath(p string) (string, error) {
	p = strings.TrimPrefix(strings.ReplaceAll(p, "\\", "/"), "/")
	if p == "" {
		return "", domain.NewInvalidInputError("file path is required")
	}
	for _, part := range strings.Split(p, "/") {
		if part == ".." {
			return "", domain.NewInvalidInputError("file path must not contain '..'").WithContext("path", p)
		}
	}
	return path.Clean(p), nil
}

func (s *mediaService) mapSourceError(filePath string, err error) error {
	if errors.Is(err, domain.ErrMediaNotExist) {
		return domain.NewMediaNotFoundError(filePath)
	}
	return domain.NewStorageError(filePath, err)
}

// GetInfo implements MediaService
func (s *mediaService) GetInfo(ctx context.Context, filePath string) (*dto.MediaInfoResponse, error) {
	filePath, err := CleanMediaPath(filePath)
	if err != nil {
		return nil, err
	}

	info, err := s.source.Stat(ctx, filePath)
	if err != nil {
		return nil, s.mapSourceError(filePath, err)
	}

	mimeType := media.MIMETypeByExtension(filePath)
	if mimeType == "" {
		mimeType = s.sniff(ctx, filePath)
	}

	var size *int64
	if info.Size >= 0 {
		size = &info.Size
	}

	ext := media.Extension(filePath)
	return &dto.MediaInfoResponse{
		FileName:      info.Name,
		FileSize:      size,
		MIMEType:      mimeType,
		FileExtension: ext,
		IsImage:       strings.HasPrefix(mimeType, "image/"),
		IsVideo:       strings.HasPrefix(mimeType, "video/"),
		IsAudio:       strings.HasPrefix(mimeType, "audio/"),
		IsPDF:         ext == ".pdf",
	}, nil
}

// sniff detects the MIME type from file content when the extension is unknown.
func (s *mediaService) sniff(ctx context.Context, filePath string) string {
	rc, err := s.source.Open(ctx, filePath)
	if err != nil {
		logger.Get().Warn("Failed to open media file for type detection",
			zap.String("path", filePath), zap.Error(err))
		return media.MIMEOctetStream
	}
	defer rc.Close()
	mimeType, err := media.SniffMIMEType(rc)
	if err != nil || mimeType == "" {
		return media.MIMEOctetStream
	}
	return mimeType
}

// Convert implements MediaService. TIFF files are returned as PNG; anything
// else is streamed through unchanged.
func (s *mediaService) Convert(ctx context.Context, filePath string) (*MediaContent, error) {
	filePath, err := CleanMediaPath(filePath)
	if err != nil {
		return nil, err
	}

	if !media.IsTIFF(filePath) {
		return s.passthrough(ctx, filePath)
	}

	png, err := s.convertTIFF(ctx, filePath)
	if err != nil {
		return nil, err
	}
	metrics.MediaRequests.WithLabelValues("converted").Inc()
	return &MediaContent{
		ContentType: media.MIMEPNG,
		Size:        int64(len(png)),
		Body:        io.NopCloser(bytes.NewReader(png)),
	}, nil
}

func (s *mediaService) passthrough(ctx context.Context, filePath string) (*MediaContent, error) {
	info, err := s.source.Stat(ctx, filePath)
	if err != nil {
		s.countFailure(err)
		return nil, s.mapSourceError(filePath, err)
	}
	body, err := s.source.Open(ctx, filePath)
	if err != nil {
		s.countFailure(err)
		return nil, s.mapSourceError(filePath, err)
	}

	contentType := media.MIMETypeByExtension(filePath)
	if contentType == "" {
		contentType = media.MIMEOctetStream
	}
	metrics.MediaRequests.WithLabelValues("passthrough").Inc()
	return &MediaContent{ContentType: contentType, Size: info.Size, Body: body}, nil
}

func (s *mediaService) convertTIFF(ctx context.Context, filePath string) ([]byte, error) {
	key := cache.GenerateCacheKey("media", "png", filePath)

	cached, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		metrics.ConversionCacheResults.WithLabelValues("hit").Inc()
		return []byte(cached), nil
	case errors.Is(err, domain.ErrCacheMiss):
		metrics.ConversionCacheResults.WithLabelValues("miss").Inc()
	default:
		metrics.ConversionCacheResults.WithLabelValues("error").Inc()
		logger.Get().Warn("Conversion cache lookup failed, converting without cache",
			zap.String("path", filePath), zap.Error(err))
	}

	// Concurrent requests for the same file share one decode. The shared call
	// must outlive whichever caller started it, so it drops cancellation and
	// relies on the source's own fetch timeout.
	sharedCtx := context.WithoutCancel(ctx)
	v, err, _ := s.group.Do(filePath, func() (interface{}, error) {
		rc, err := s.source.Open(sharedCtx, filePath)
		if err != nil {
			return nil, s.mapSourceError(filePath, err)
		}
		defer rc.Close()

		png, err := media.ConvertTIFFToPNG(rc)
		if err != nil {
			return nil, domain.NewConversionFailedError(filePath, err)
		}

		if err := s.cache.Set(sharedCtx, key, string(png), s.conversionTTL); err != nil {
			logger.Get().Warn("Failed to store converted image in cache",
				zap.String("path", filePath), zap.Error(err))
		}
		return png, nil
	})
	if err != nil {
		s.countFailure(err)
		return nil, err
	}
	return v.([]byte), nil
}

func (s *mediaService) countFailure(err error) {
	var domainErr *domain.DomainError
	if errors.Is(err, domain.ErrMediaNotExist) ||
		(errors.As(err, &domainErr) && domainErr.Code == domain.CodeMediaNotFound) {
		metrics.MediaRequests.WithLabelValues("not_found").Inc()
		return
	}
	metrics.MediaRequests.WithLabelValues("error").Inc()
}
