package dto

// RootResponse is the service banner
// @Description Service banner
type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// QuestionListRequest holds the validated query parameters of GET /questions.
type QuestionListRequest struct {
	Page       int    `param:"page" validate:"gte=1"`
	PerPage    int    `param:"per_page" validate:"gte=1,lte=100"`
	Level      *int   `param:"level"`
	AnswerType string `param:"answer_type" validate:"omitempty,max=100"`
	Search     string `param:"search" validate:"omitempty,max=500"`
	MediaType  string `param:"media_type" validate:"omitempty,oneof=image video audio document reference other"`
	HasMedia   *bool  `param:"has_media"`
}

// QuestionResponse represents a question in the API response
// @Description Question with resolved media links
type QuestionResponse struct {
	TaskID            int      `json:"task_id"`
	Question          string   `json:"question"`
	Level             int      `json:"level"`
	AnswerType        string   `json:"answer_type"`
	FinalAnswer       string   `json:"final_answer"`
	FileName          *string  `json:"file_name,omitempty"`
	AnswerExplanation *string  `json:"answer_explanation,omitempty"`
	MediaFiles        []string `json:"media_files"`
}

// QuestionListResponse is one page of questions
// @Description Paginated question list
type QuestionListResponse struct {
	Total   int                `json:"total"`
	Page    int                `json:"page"`
	PerPage int                `json:"per_page"`
	Data    []QuestionResponse `json:"data"`
}

// QuestionIndexItem is the lightweight projection used by the index panel
type QuestionIndexItem struct {
	TaskID     int    `json:"task_id"`
	Level      int    `json:"level"`
	AnswerType string `json:"answer_type"`
}

// StatsResponse aggregates the whole dataset
// @Description Dataset statistics
type StatsResponse struct {
	TotalQuestions         int            `json:"total_questions"`
	LevelDistribution      map[string]int `json:"level_distribution"`
	AnswerTypeDistribution map[string]int `json:"answer_type_distribution"`
	MediaTypeDistribution  map[string]int `json:"media_type_distribution"`
	HasMediaCount          int            `json:"has_media_count"`
}

// MediaInfoResponse describes a media file. FileSize is omitted when the
// storage backend does not report a length.
// @Description Media file metadata
type MediaInfoResponse struct {
	FileName      string `json:"file_name"`
	FileSize      *int64 `json:"file_size,omitempty"`
	MIMEType      string `json:"mime_type"`
	FileExtension string `json:"file_extension"`
	IsImage       bool   `json:"is_image"`
	IsVideo       bool   `json:"is_video"`
	IsAudio       bool   `json:"is_audio"`
	IsPDF         bool   `json:"is_pdf"`
}
