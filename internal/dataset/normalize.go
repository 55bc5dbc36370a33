package dataset

import (
	"path"
	"strings"

	"histbench-api/internal/domain"
)

// answerTypeAliases maps the label variants found in the source sheet to their
// canonical form. Matching is exact on the trimmed cell; labels not listed here
// are kept as-is.
var answerTypeAliases = map[string]string{
	"Multiple Choice": "multipleChoice",
	"Multiple choice": "multipleChoice",
	"mutipleChioce":   "multipleChoice",
	"Exact match":     "exactMatch",
}

// NormalizeAnswerType returns the canonical answer type label.
func NormalizeAnswerType(label string) string {
	label = strings.TrimSpace(label)
	if canonical, ok := answerTypeAliases[label]; ok {
		return canonical
	}
	return label
}

var extensionMediaTypes = map[string]domain.MediaType{
	"jpg": domain.MediaTypeImage, "jpeg": domain.MediaTypeImage, "png": domain.MediaTypeImage,
	"gif": domain.MediaTypeImage, "bmp": domain.MediaTypeImage, "webp": domain.MediaTypeImage,
	"heic": domain.MediaTypeImage, "tif": domain.MediaTypeImage, "tiff": domain.MediaTypeImage,

	"mp4": domain.MediaTypeVideo, "mov": domain.MediaTypeVideo, "avi": domain.MediaTypeVideo,
	"mkv": domain.MediaTypeVideo, "webm": domain.MediaTypeVideo,

	"mp3": domain.MediaTypeAudio, "wav": domain.MediaTypeAudio, "ogg": domain.MediaTypeAudio,
	"flac": domain.MediaTypeAudio, "aac": domain.MediaTypeAudio, "m4a": domain.MediaTypeAudio,

	"pdf": domain.MediaTypeDocument, "doc": domain.MediaTypeDocument, "docx": domain.MediaTypeDocument,
}

// ClassifySegment returns the media type of a single file_name segment.
func ClassifySegment(segment string) domain.MediaType {
	if domain.IsReference(segment) {
		return domain.MediaTypeReference
	}
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(segment), "."))
	if t, ok := extensionMediaTypes[ext]; ok {
		return t
	}
	return domain.MediaTypeOther
}

// DeriveMediaTypes classifies every segment of a raw file_name field and
// returns the union of their media types.
func DeriveMediaTypes(fileName string) domain.MediaTypeSet {
	var set domain.MediaTypeSet
	for _, segment := range domain.SplitFileName(fileName) {
		set = set.Add(ClassifySegment(segment))
	}
	return set
}

// rowOverride patches a row whose source data is known to be wrong.
type rowOverride struct {
	// forceReference rewrites file_name with a reference: prefix and pins
	// media_types to {reference}.
	forceReference bool
}

// rowOverrides corrects authoring errors in the source sheet: tasks 93 and 94
// cite printed works as if they were attached files.
var rowOverrides = map[int]rowOverride{
	93: {forceReference: true},
	94: {forceReference: true},
}

func applyOverride(q *domain.Question) {
	o, ok := rowOverrides[q.TaskID]
	if !ok {
		return
	}
	if o.forceReference {
		if q.FileName != "" && !domain.IsReference(q.FileName) {
			q.FileName = domain.ReferencePrefix + " " + q.FileName
		}
		q.MediaTypes = domain.NewMediaTypeSet(domain.MediaTypeReference)
	}
}
