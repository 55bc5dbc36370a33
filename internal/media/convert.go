package media

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
	"mime"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/image/tiff"
)

const (
	MIMEPNG         = "image/png"
	MIMEOctetStream = "application/octet-stream"
)

var extensionMIMETypes = map[string]string{
	".jpg": "image/jpeg", ".jpeg": "image/jpeg", ".png": MIMEPNG, ".gif": "image/gif",
	".bmp": "image/bmp", ".webp": "image/webp", ".heic": "image/heic",
	".tif": "image/tiff", ".tiff": "image/tiff",
	".mp4": "video/mp4", ".mov": "video/quicktime", ".avi": "video/x-msvideo",
	".mkv": "video/x-matroska", ".webm": "video/webm",
	".mp3": "audio/mpeg", ".wav": "audio/wav", ".ogg": "audio/ogg", ".flac": "audio/flac",
	".aac": "audio/aac", ".m4a": "audio/mp4",
	".pdf": "application/pdf", ".doc": "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// Extension returns the lower-cased extension of p, including the dot.
func Extension(p string) string {
	return strings.ToLower(path.Ext(p))
}

func baseName(p string) string {
	return path.Base(p)
}

// MIMETypeByExtension guesses a MIME type from the file extension. It returns
// an empty string when the extension is unknown.
func MIMETypeByExtension(p string) string {
	ext := Extension(p)
	if t, ok := extensionMIMETypes[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return ""
}

// SniffMIMEType inspects the leading bytes of r.
func SniffMIMEType(r io.Reader) (string, error) {
	m, err := mimetype.DetectReader(r)
	if err != nil {
		return "", err
	}
	return m.String(), nil
}

// IsTIFF reports whether p names a TIFF file.
func IsTIFF(p string) bool {
	ext := Extension(p)
	return ext == ".tif" || ext == ".tiff"
}

// ConvertTIFFToPNG decodes a TIFF image and re-encodes it as PNG.
func ConvertTIFFToPNG(r io.Reader) ([]byte, error) {
	img, err := tiff.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode tiff: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
