package service

import (
	"strconv"

	"histbench-api/internal/domain"
	"histbench-api/internal/dto"
	"histbench-api/internal/media"
)

// QuestionService defines the read operations exposed over HTTP
type QuestionService interface {
	ListQuestions(req *dto.QuestionListRequest) (*dto.QuestionListResponse, error)
	GetQuestion(taskID int) (*dto.QuestionResponse, error)
	GetIndex() []dto.QuestionIndexItem
	GetStats() *dto.StatsResponse
}

// questionService implements QuestionService
type questionService struct {
	repo     domain.QuestionRepository
	resolver *media.Resolver
}

// NewQuestionService creates a new instance of questionService
func NewQuestionService(repo domain.QuestionRepository, resolver *media.Resolver) QuestionService {
	return &questionService{
		repo:     repo,
		resolver: resolver,
	}
}

// ListQuestions implements QuestionService
func (s *questionService) ListQuestions(req *dto.QuestionListRequest) (*dto.QuestionListResponse, error) {
	if req.Page < 1 || req.PerPage < 1 || req.PerPage > 100 {
		return nil, domain.NewInvalidInputError("page must be >= 1 and per_page between 1 and 100")
	}

	filter := domain.QuestionFilter{
		Level:      req.Level,
		AnswerType: req.AnswerType,
		Search:     req.Search,
		MediaType:  domain.MediaType(req.MediaType),
		HasMedia:   req.HasMedia,
	}
	total, rows := s.repo.Query(filter, req.Page, req.PerPage)

	data := make([]dto.QuestionResponse, 0, len(rows))
	for _, q := range rows {
		data = append(data, *s.toResponse(q))
	}

	return &dto.QuestionListResponse{
		Total:   total,
		Page:    req.Page,
		PerPage: req.PerPage,
		Data:    data,
	}, nil
}

// GetQuestion implements QuestionService
func (s *questionService) GetQuestion(taskID int) (*dto.QuestionResponse, error) {
	q := s.repo.GetByID(taskID)
	if q == nil {
		return nil, domain.NewQuestionNotFoundError(taskID)
	}
	return s.toResponse(q), nil
}

// GetIndex implements QuestionService
func (s *questionService) GetIndex() []dto.QuestionIndexItem {
	rows := s.repo.All()
	index := make([]dto.QuestionIndexItem, 0, len(rows))
	for _, q := range rows {
		index = append(index, dto.QuestionIndexItem{
			TaskID:     q.TaskID,
			Level:      q.Level,
			AnswerType: q.AnswerType,
		})
	}
	return index
}

// GetStats implements QuestionService
func (s *questionService) GetStats() *dto.StatsResponse {
	stats := ComputeStats(s.repo.All())

	levels := make(map[string]int, len(stats.LevelDistribution))
	for level, n := range stats.LevelDistribution {
		levels[strconv.Itoa(level)] = n
	}
	mediaTypes := make(map[string]int, len(stats.MediaTypeDistribution))
	for t, n := range stats.MediaTypeDistribution {
		mediaTypes[string(t)] = n
	}

	return &dto.StatsResponse{
		TotalQuestions:         stats.TotalQuestions,
		LevelDistribution:      levels,
		AnswerTypeDistribution: stats.AnswerTypeDistribution,
		MediaTypeDistribution:  mediaTypes,
		HasMediaCount:          stats.HasMediaCount,
	}
}

// ComputeStats aggregates rows into histograms. A row is counted once for
// every media type it carries, so the media histogram may sum past the row count.
func ComputeStats(rows []*domain.Question) *domain.QuestionStats {
	stats := &domain.QuestionStats{
		TotalQuestions:         len(rows),
		LevelDistribution:      make(map[int]int),
		AnswerTypeDistribution: make(map[string]int),
		MediaTypeDistribution:  make(map[domain.MediaType]int),
	}
	for _, q := range rows {
		stats.LevelDistribution[q.Level]++
		stats.AnswerTypeDistribution[q.AnswerType]++
		for _, t := range q.MediaTypes.List() {
			stats.MediaTypeDistribution[t]++
		}
		if q.HasMedia() {
			stats.HasMediaCount++
		}
	}
	return stats
}

func (s *questionService) toResponse(q *domain.Question) *dto.QuestionResponse {
	return &dto.QuestionResponse{
		TaskID:            q.TaskID,
		Question:          q.Question,
		Level:             q.Level,
		AnswerType:        q.AnswerType,
		FinalAnswer:       q.FinalAnswer,
		FileName:          optional(q.FileName),
		AnswerExplanation: optional(q.AnswerExplanation),
		MediaFiles:        s.resolver.Resolve(q.FileName),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
