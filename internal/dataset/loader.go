package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"

	"histbench-api/internal/domain"
	"histbench-api/internal/logger"

	"go.uber.org/zap"
)

// Source sheet column headers.
const (
	ColumnTaskID            = "task_id"
	ColumnQuestion          = "Question"
	ColumnLevel             = "Level"
	ColumnAnswerType        = "Answer Type"
	ColumnFinalAnswer       = "Final answer"
	ColumnFileName          = "file_name"
	ColumnAnswerExplanation = "Answer Explanation"
)

var requiredColumns = []string{ColumnTaskID, ColumnQuestion, ColumnLevel}

// missingMarkers are the cell values the spreadsheet export uses for empty
// cells. They are read as "no value".
var missingMarkers = map[string]struct{}{
	"#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {}, "-NaN": {}, "-nan": {},
	"1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {}, "NA": {}, "NULL": {}, "NaN": {},
	"None": {}, "n/a": {}, "nan": {}, "null": {},
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Table is the immutable, in-memory question table.
type Table struct {
	rows   []*domain.Question
	byID   map[int]*domain.Question
	source string
}

// Rows returns the rows in source order. Callers must not modify them.
func (t *Table) Rows() []*domain.Question {
	return t.rows
}

// Lookup returns the row with the given task_id, or nil.
func (t *Table) Lookup(taskID int) *domain.Question {
	return t.byID[taskID]
}

func (t *Table) Len() int {
	return len(t.rows)
}

// Source names where the table was read from.
func (t *Table) Source() string {
	return t.source
}

// Loader reads the dataset file once and hands out the cached table afterwards.
type Loader struct {
	path string

	once  sync.Once
	table *Table
	err   error
}

// NewLoader creates a Loader for the CSV file at path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load parses the source file on first call. Subsequent calls return the same
// table, or the same error, without touching the file again.
func (l *Loader) Load() (*Table, error) {
	l.once.Do(func() {
		l.table, l.err = l.load()
	})
	return l.table, l.err
}

func (l *Loader) load() (*Table, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, domain.NewLoadFailureError(l.path, err)
	}
	defer f.Close()

	table, err := Parse(f, l.path)
	if err != nil {
		return nil, err
	}

	logger.Get().Info("Dataset loaded",
		zap.String("path", l.path),
		zap.Int("rows", table.Len()),
	)
	return table, nil
}

// Parse reads a CSV export of the question sheet and returns the normalized table.
func Parse(r io.Reader, source string) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, domain.NewLoadFailureError(source, err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.NewLoadFailureError(source, errors.New("file is empty"))
		}
		return nil, domain.NewLoadFailureError(source, err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, domain.NewLoadFailureError(source, fmt.Errorf("missing required column %q", name))
		}
	}

	table := &Table{
		byID:   make(map[int]*domain.Question),
		source: source,
	}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, domain.NewLoadFailureError(source, err)
		}
		line, _ := reader.FieldPos(0)

		cell := func(name string) string {
			i, ok := columns[name]
			if !ok || i >= len(record) {
				return ""
			}
			v := strings.TrimSpace(record[i])
			if _, missing := missingMarkers[v]; missing {
				return ""
			}
			return v
		}

		if isBlankRecord(record) {
			continue
		}

		taskID, err := parseInt(cell(ColumnTaskID))
		if err != nil {
			return nil, domain.NewLoadFailureError(source, fmt.Errorf("line %d: task_id: %w", line, err))
		}
		level, err := parseInt(cell(ColumnLevel))
		if err != nil {
			return nil, domain.NewLoadFailureError(source, fmt.Errorf("line %d: Level: %w", line, err))
		}
		if _, dup := table.byID[taskID]; dup {
			return nil, domain.NewLoadFailureError(source, fmt.Errorf("line %d: duplicate task_id %d", line, taskID))
		}

		q := &domain.Question{
			TaskID:            taskID,
			Question:          cell(ColumnQuestion),
			Level:             level,
			AnswerType:        NormalizeAnswerType(cell(ColumnAnswerType)),
			FinalAnswer:       cell(ColumnFinalAnswer),
			AnswerExplanation: cell(ColumnAnswerExplanation),
			FileName:          cell(ColumnFileName),
		}
		q.MediaTypes = DeriveMediaTypes(q.FileName)
		applyOverride(q)

		table.rows = append(table.rows, q)
		table.byID[taskID] = q
	}

	return table, nil
}

func isBlankRecord(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// parseInt accepts plain integers and integral floats such as "2.0", which
// spreadsheet exports produce for numeric columns.
func parseInt(s string) (int, error) {
	if s == "" {
		return 0, errors.New("value is empty")
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	return int(f), nil
}
