package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"histbench-api/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `task_id,Question,Level,Answer Type,Final answer,file_name,Answer Explanation
1,Who founded the Han dynasty?,2,Multiple Choice,Liu Bang,,
2,Identify the speaker in the recording.,2,Exact match,Churchill,x.mp3,Radio broadcast
3,"Describe the map, then date it.",3,mutipleChioce,1650,map.TIF; notes.pdf,NaN
93,Which chronicle is cited?,1,Exact match,Annals,Annals of Lu vol. 2,
94,Which edition?,1,exactMatch,First,reference: Shiji,
`

func parseSample(t *testing.T) *Table {
	t.Helper()
	table, err := Parse(strings.NewReader(sampleCSV), "sample.csv")
	require.NoError(t, err)
	return table
}

func TestParse_NormalizesRows(t *testing.T) {
	table := parseSample(t)
	require.Equal(t, 5, table.Len())

	row1 := table.Lookup(1)
	require.NotNil(t, row1)
	assert.Equal(t, "multipleChoice", row1.AnswerType)
	assert.Empty(t, row1.FileName)
	assert.True(t, row1.MediaTypes.IsEmpty())

	row2 := table.Lookup(2)
	require.NotNil(t, row2)
	assert.Equal(t, "exactMatch", row2.AnswerType)
	assert.Equal(t, domain.NewMediaTypeSet(domain.MediaTypeAudio), row2.MediaTypes)
	assert.Equal(t, "Radio broadcast", row2.AnswerExplanation)

	row3 := table.Lookup(3)
	require.NotNil(t, row3)
	assert.Equal(t, "Describe the map, then date it.", row3.Question)
	assert.Equal(t, "multipleChoice", row3.AnswerType)
	assert.Equal(t, []domain.MediaType{domain.MediaTypeImage, domain.MediaTypeDocument}, row3.MediaTypes.List())
	assert.Empty(t, row3.AnswerExplanation, "NaN cells are read as empty")
}

func TestParse_PreservesSourceOrder(t *testing.T) {
	table := parseSample(t)
	var ids []int
	for _, q := range table.Rows() {
		ids = append(ids, q.TaskID)
	}
	assert.Equal(t, []int{1, 2, 3, 93, 94}, ids)
}

func TestParse_ReferenceOverrides(t *testing.T) {
	table := parseSample(t)

	row93 := table.Lookup(93)
	require.NotNil(t, row93)
	assert.Equal(t, "reference: Annals of Lu vol. 2", row93.FileName)
	assert.Equal(t, domain.NewMediaTypeSet(domain.MediaTypeReference), row93.MediaTypes)

	row94 := table.Lookup(94)
	require.NotNil(t, row94)
	assert.Equal(t, "reference: Shiji", row94.FileName, "already-prefixed values are left alone")
	assert.Equal(t, domain.NewMediaTypeSet(domain.MediaTypeReference), row94.MediaTypes)
}

func TestParse_ColumnOrderAndBOM(t *testing.T) {
	csv := "\xEF\xBB\xBFLevel,task_id,Question\n2.0,7,Which year?\n\n"
	table, err := Parse(strings.NewReader(csv), "reordered.csv")
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())

	q := table.Lookup(7)
	require.NotNil(t, q)
	assert.Equal(t, 2, q.Level)
	assert.Empty(t, q.AnswerType)
	assert.Empty(t, q.FinalAnswer)
}

func TestParse_Failures(t *testing.T) {
	tests := []struct {
		name    string
		csv     string
		errText string
	}{
		{"empty file", "", "file is empty"},
		{"missing column", "task_id,Question\n1,q\n", `missing required column "Level"`},
		{"bad level", "task_id,Question,Level\n1,q,hard\n", "Level"},
		{"fractional task id", "task_id,Question,Level\n1.5,q,1\n", "task_id"},
		{"missing task id", "task_id,Question,Level\n,q,1\n", "task_id"},
		{"duplicate task id", "task_id,Question,Level\n1,q,1\n1,r,2\n", "duplicate task_id 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.csv), "bad.csv")
			require.Error(t, err)

			var domainErr *domain.DomainError
			require.True(t, errors.As(err, &domainErr))
			assert.Equal(t, domain.CodeLoadFailure, domainErr.Code)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestLoader_LoadIsCached(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Sheet1.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o600))

	loader := NewLoader(path)
	first, err := loader.Load()
	require.NoError(t, err)

	// Removing the file proves the second call does not read it again.
	require.NoError(t, os.Remove(path))

	second, err := loader.Load()
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, path, second.Source())
}

func TestLoader_MissingFile(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "absent.csv"))

	table, err := loader.Load()
	assert.Nil(t, table)

	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeLoadFailure, domainErr.Code)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
