package domain

import "strings"

// MediaType is the coarse category of a media reference attached to a question.
type MediaType string

const (
	MediaTypeImage     MediaType = "image"
	MediaTypeVideo     MediaType = "video"
	MediaTypeAudio     MediaType = "audio"
	MediaTypeDocument  MediaType = "document"
	MediaTypeReference MediaType = "reference"
	MediaTypeOther     MediaType = "other"
)

// MediaTypes lists every media type in display order. Validation and the
// stats histogram both use this slice as the set of allowed tags.
var MediaTypes = []MediaType{
	MediaTypeImage,
	MediaTypeVideo,
	MediaTypeAudio,
	MediaTypeDocument,
	MediaTypeReference,
	MediaTypeOther,
}

// ReferencePrefix marks a file_name segment as literal supplementary text
// rather than a media asset. Matching is case-insensitive.
const ReferencePrefix = "reference:"

// IsReference reports whether a file_name segment is a literal reference marker.
func IsReference(segment string) bool {
	return len(segment) >= len(ReferencePrefix) &&
		strings.EqualFold(segment[:len(ReferencePrefix)], ReferencePrefix)
}

// SplitFileName splits a raw file_name field into its trimmed, non-empty
// segments, preserving order.
func SplitFileName(fileName string) []string {
	if fileName == "" {
		return nil
	}
	var segments []string
	for _, part := range strings.Split(fileName, ";") {
		if part = strings.TrimSpace(part); part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// MediaTypeSet is a set of media types stored as a bitmask.
type MediaTypeSet uint8

func mediaTypeBit(t MediaType) MediaTypeSet {
	for i, mt := range MediaTypes {
		if mt == t {
			return 1 << i
		}
	}
	return 0
}

// NewMediaTypeSet builds a set holding the given types.
func NewMediaTypeSet(types ...MediaType) MediaTypeSet {
	var s MediaTypeSet
	for _, t := range types {
		s = s.Add(t)
	}
	return s
}

// Add returns the set with t included.
func (s MediaTypeSet) Add(t MediaType) MediaTypeSet {
	return s | mediaTypeBit(t)
}

// Has reports whether t is a member of the set. Unknown types are never members.
func (s MediaTypeSet) Has(t MediaType) bool {
	bit := mediaTypeBit(t)
	return bit != 0 && s&bit != 0
}

func (s MediaTypeSet) IsEmpty() bool {
	return s == 0
}

// List returns the members in MediaTypes order.
func (s MediaTypeSet) List() []MediaType {
	out := make([]MediaType, 0, len(MediaTypes))
	for _, t := range MediaTypes {
		if s.Has(t) {
			out = append(out, t)
		}
	}
	return out
}

// Question is one benchmark question row after normalization.
// Empty strings mean "no value" for the optional text fields.
type Question struct {
	TaskID            int
	Question          string
	Level             int
	AnswerType        string
	FinalAnswer       string
	AnswerExplanation string
	FileName          string
	MediaTypes        MediaTypeSet
}

// HasMedia reports whether the row references any media or reference text.
func (q *Question) HasMedia() bool {
	return q.FileName != ""
}

// QuestionFilter holds the optional predicates for listing questions.
// Zero values mean "no filter"; all set predicates are combined with AND.
type QuestionFilter struct {
	Level      *int
	AnswerType string
	Search     string
	MediaType  MediaType
	HasMedia   *bool
}

// QuestionIndexEntry is the lightweight projection served by the index endpoint.
type QuestionIndexEntry struct {
	TaskID     int
	Level      int
	AnswerType string
}

// QuestionStats aggregates the full, unfiltered table.
type QuestionStats struct {
	TotalQuestions         int
	LevelDistribution      map[int]int
	AnswerTypeDistribution map[string]int
	MediaTypeDistribution  map[MediaType]int
	HasMediaCount          int
}
