package domain

import (
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsReference(t *testing.T) {
	assert.True(t, IsReference("reference: Shiji"))
	assert.True(t, IsReference("Reference:x"))
	assert.True(t, IsReference("REFERENCE:"))
	assert.False(t, IsReference("references.pdf"))
	assert.False(t, IsReference("ref"))
	assert.False(t, IsReference(""))
}

func TestSplitFileName(t *testing.T) {
	assert.Nil(t, SplitFileName(""))
	assert.Nil(t, SplitFileName(" ; ;"))
	assert.Equal(t, []string{"a.png", "b c.pdf", "reference: x"}, SplitFileName(" a.png;b c.pdf ;; reference: x"))
}

func TestMediaTypeSet(t *testing.T) {
	var s MediaTypeSet
	assert.True(t, s.IsEmpty())
	assert.Empty(t, s.List())

	s = s.Add(MediaTypeVideo).Add(MediaTypeImage).Add(MediaTypeVideo)
	assert.False(t, s.IsEmpty())
	assert.True(t, s.Has(MediaTypeImage))
	assert.True(t, s.Has(MediaTypeVideo))
	assert.False(t, s.Has(MediaTypeAudio))
	assert.Equal(t, []MediaType{MediaTypeImage, MediaTypeVideo}, s.List())

	assert.False(t, s.Has(MediaType("hologram")))
	assert.Equal(t, s, s.Add(MediaType("hologram")))
	assert.Equal(t, s, NewMediaTypeSet(MediaTypeVideo, MediaTypeImage))
}

func TestQuestion_HasMedia(t *testing.T) {
	assert.False(t, (&Question{}).HasMedia())
	assert.True(t, (&Question{FileName: "reference: Shiji"}).HasMedia())
}

func TestDomainError(t *testing.T) {
	cause := errors.New("no such file")
	err := NewLoadFailureError("data.csv", cause).WithContext("line", 4)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, CodeLoadFailure, err.Code)
	assert.Equal(t, "Failed to load dataset from data.csv: no such file", err.Error())
	assert.Equal(t, 4, err.Context["line"])

	out, jerr := json.Marshal(NewQuestionNotFoundError(9))
	require.NoError(t, jerr)
	assert.JSONEq(t, `{"code":"QUESTION_NOT_FOUND","message":"Question not found with task_id: 9"}`, string(out))
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		NewInvalidFormatError("level", "x"),
		NewOutOfRangeError("page", 0, 1, 0),
	}
	assert.Contains(t, errs.Error(), "; ")
	assert.Len(t, errs, 2)
}

func TestNewUnknownTaskIDError(t *testing.T) {
	err := NewUnknownTaskIDError("99999999999999999999")
	assert.Equal(t, CodeQuestionNotFound, err.Code)
	assert.Equal(t, "Question not found with task_id: 99999999999999999999", err.Message)
	assert.Equal(t, "99999999999999999999", err.Context["task_id"])
}
