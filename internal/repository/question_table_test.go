package repository

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"histbench-api/internal/dataset"
	"histbench-api/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func newTable(t *testing.T, csv string) *QuestionTable {
	t.Helper()
	table, err := dataset.Parse(strings.NewReader(csv), "test.csv")
	require.NoError(t, err)
	return NewQuestionTable(table)
}

const header = "task_id,Question,Level,Answer Type,Final answer,file_name,Answer Explanation\n"

// fixtureCSV has 30 rows cycling through levels, answer types and media.
func fixtureCSV() string {
	var b strings.Builder
	b.WriteString(header)
	files := []string{"", "p.png", "s.mp3", "p.png;d.pdf", "reference: Shiji"}
	types := []string{"Multiple Choice", "Exact match", "Open"}
	for i := 1; i <= 30; i++ {
		fmt.Fprintf(&b, "%d,Question %d about the Tang,%d,%s,Answer %d,%s,\n",
			i, i, i%3+1, types[i%len(types)], i, files[i%len(files)])
	}
	return b.String()
}

func ids(items []*domain.Question) []int {
	out := make([]int, 0, len(items))
	for _, q := range items {
		out = append(out, q.TaskID)
	}
	return out
}

func TestQuery_ExampleScenario(t *testing.T) {
	repo := newTable(t, header+
		"1,First,2,Multiple Choice,A,,\n"+
		"2,Second,2,Exact match,B,x.mp3,\n")

	total, items := repo.Query(domain.QuestionFilter{
		Level:     intPtr(2),
		MediaType: domain.MediaTypeAudio,
	}, 1, 10)

	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].TaskID)
	assert.Equal(t, "exactMatch", items[0].AnswerType)
	assert.Equal(t, "multipleChoice", repo.GetByID(1).AnswerType)
}

func TestQuery_PaginationWindow(t *testing.T) {
	repo := newTable(t, fixtureCSV())

	all := repo.All()
	require.Len(t, all, 30)

	for _, perPage := range []int{1, 7, 10, 30, 100} {
		var collected []int
		for page := 1; page <= 31; page++ {
			total, items := repo.Query(domain.QuestionFilter{}, page, perPage)
			assert.Equal(t, 30, total, "total must not depend on paging")
			assert.LessOrEqual(t, len(items), perPage)
			collected = append(collected, ids(items)...)
		}
		assert.Equal(t, ids(all), collected, "pages concatenate to the full table, in order (per_page=%d)", perPage)
	}
}

func TestQuery_OutOfRangePage(t *testing.T) {
	repo := newTable(t, fixtureCSV())
	total, items := repo.Query(domain.QuestionFilter{}, 100, 20)
	assert.Equal(t, 30, total)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestQuery_HugePageDoesNotWrap(t *testing.T) {
	repo := newTable(t, fixtureCSV())

	for _, tc := range []struct{ page, perPage int }{
		{math.MaxInt/2 + 2, 4},
		{math.MaxInt, 1},
		{math.MaxInt, 100},
		{math.MaxInt / 100, 100},
	} {
		total, items := repo.Query(domain.QuestionFilter{}, tc.page, tc.perPage)
		assert.Equal(t, 30, total)
		assert.NotNil(t, items)
		assert.Empty(t, items, "page=%d per_page=%d", tc.page, tc.perPage)
	}
}

func TestQuery_FiltersAreConjunctive(t *testing.T) {
	repo := newTable(t, fixtureCSV())

	_, byLevel := repo.Query(domain.QuestionFilter{Level: intPtr(2)}, 1, 100)
	_, byType := repo.Query(domain.QuestionFilter{AnswerType: "exactMatch"}, 1, 100)
	total, both := repo.Query(domain.QuestionFilter{Level: intPtr(2), AnswerType: "exactMatch"}, 1, 100)

	typeIDs := make(map[int]bool)
	for _, q := range byType {
		typeIDs[q.TaskID] = true
	}
	var intersection []int
	for _, q := range byLevel {
		if typeIDs[q.TaskID] {
			intersection = append(intersection, q.TaskID)
		}
	}

	require.NotEmpty(t, intersection)
	assert.Equal(t, intersection, ids(both))
	assert.Equal(t, len(intersection), total)
}

func TestQuery_MediaTypeMembership(t *testing.T) {
	repo := newTable(t, header+
		"1,Q,1,Open,A,scan.png; paper.pdf,\n"+
		"2,Q,1,Open,A,song.mp3,\n")

	_, images := repo.Query(domain.QuestionFilter{MediaType: domain.MediaTypeImage}, 1, 10)
	_, docs := repo.Query(domain.QuestionFilter{MediaType: domain.MediaTypeDocument}, 1, 10)
	_, audio := repo.Query(domain.QuestionFilter{MediaType: domain.MediaTypeAudio}, 1, 10)

	assert.Equal(t, []int{1}, ids(images))
	assert.Equal(t, []int{1}, ids(docs))
	assert.Equal(t, []int{2}, ids(audio))
}

func TestQuery_Search(t *testing.T) {
	repo := newTable(t, header+
		"1,Who wrote the STRASSBURG oaths?,1,Open,Nithard,,\n"+
		"2,Name the dynasty,1,Open,Tang,,\n"+
		"3,Which river?,1,Open,Yellow River,,\n")

	tests := []struct {
		search string
		want   []int
	}{
		{"strassburg", []int{1}},
		{"straßburg", []int{1}},
		{"TANG", []int{2}},
		{"river", []int{3}},
		{"name", []int{2}},
		{"absent", []int{}},
	}
	for _, tt := range tests {
		_, items := repo.Query(domain.QuestionFilter{Search: tt.search}, 1, 10)
		assert.Equal(t, tt.want, ids(items), "search %q", tt.search)
	}
}

func TestQuery_HasMedia(t *testing.T) {
	repo := newTable(t, fixtureCSV())

	withTotal, _ := repo.Query(domain.QuestionFilter{HasMedia: boolPtr(true)}, 1, 100)
	withoutTotal, without := repo.Query(domain.QuestionFilter{HasMedia: boolPtr(false)}, 1, 100)

	assert.Equal(t, 30, withTotal+withoutTotal)
	assert.Equal(t, 6, withoutTotal)
	for _, q := range without {
		assert.Empty(t, q.FileName)
	}
}

func TestGetByID(t *testing.T) {
	repo := newTable(t, fixtureCSV())
	require.NotNil(t, repo.GetByID(7))
	assert.Equal(t, 7, repo.GetByID(7).TaskID)
	assert.Nil(t, repo.GetByID(1<<40))
}
