package repository

import (
	"strings"

	"histbench-api/internal/dataset"
	"histbench-api/internal/domain"

	"golang.org/x/text/cases"
)

// QuestionTable answers queries over the loaded dataset. It never modifies
// the rows and is safe for concurrent use.
type QuestionTable struct {
	table *dataset.Table

	// folded holds the case-folded question and final answer text of each
	// row, aligned with table.Rows(), so searches don't re-fold per request.
	folded []foldedText
}

type foldedText struct {
	question    string
	finalAnswer string
}

// NewQuestionTable wraps a loaded table.
func NewQuestionTable(table *dataset.Table) *QuestionTable {
	caser := cases.Fold()
	rows := table.Rows()
	folded := make([]foldedText, len(rows))
	for i, q := range rows {
		folded[i] = foldedText{
			question:    caser.String(q.Question),
			finalAnswer: caser.String(q.FinalAnswer),
		}
	}
	return &QuestionTable{table: table, folded: folded}
}

// Query implements domain.QuestionRepository.
func (t *QuestionTable) Query(filter domain.QuestionFilter, page, perPage int) (int, []*domain.Question) {
	var search string
	if filter.Search != "" {
		search = cases.Fold().String(filter.Search)
	}

	rows := t.table.Rows()

	// A page starting past the last row has an empty window. Checking this
	// before multiplying keeps huge page numbers from overflowing.
	start, end := 0, 0
	if page >= 1 && perPage >= 1 && page-1 <= len(rows)/perPage {
		start = (page - 1) * perPage
		end = start + perPage
	}
	items := make([]*domain.Question, 0, end-start)
	total := 0
	for i, q := range rows {
		if !matches(q, t.folded[i], filter, search) {
			continue
		}
		if total >= start && total < end {
			items = append(items, q)
		}
		total++
	}
	return total, items
}

func matches(q *domain.Question, folded foldedText, filter domain.QuestionFilter, search string) bool {
	if filter.Level != nil && q.Level != *filter.Level {
		return false
	}
	if filter.AnswerType != "" && q.AnswerType != filter.AnswerType {
		return false
	}
	if search != "" &&
		!strings.Contains(folded.question, search) &&
		!strings.Contains(folded.finalAnswer, search) {
		return false
	}
	if filter.MediaType != "" && !q.MediaTypes.Has(filter.MediaType) {
		return false
	}
	if filter.HasMedia != nil && q.HasMedia() != *filter.HasMedia {
		return false
	}
	return true
}

// GetByID implements domain.QuestionRepository.
func (t *QuestionTable) GetByID(taskID int) *domain.Question {
	return t.table.Lookup(taskID)
}

// All implements domain.QuestionRepository.
func (t *QuestionTable) All() []*domain.Question {
	return t.table.Rows()
}
