package handler

import (
	"histbench-api/internal/dto"
	"histbench-api/internal/middleware"
	"histbench-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Version is reported by the root endpoint
const Version = "1.0.0"

// QuestionHandler handles question-related HTTP requests
type QuestionHandler struct {
	service service.QuestionService
}

// NewQuestionHandler creates a new QuestionHandler instance
func NewQuestionHandler(service service.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		service: service,
	}
}

// Root godoc
// @Summary Service banner
// @Tags meta
// @Produce json
// @Success 200 {object} dto.RootResponse
// @Router / [get]
func (h *QuestionHandler) Root(c *fiber.Ctx) error {
	return c.JSON(dto.RootResponse{
		Message: "HistBench API is running",
		Version: Version,
	})
}

// GetStats godoc
// @Summary Dataset statistics
// @Description Returns row count and level, answer type and media type histograms
// @Tags questions
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Router /stats [get]
func (h *QuestionHandler) GetStats(c *fiber.Ctx) error {
	return c.JSON(h.service.GetStats())
}

// ListQuestions godoc
// @Summary List questions
// @Description Returns one page of questions matching all supplied filters
// @Tags questions
// @Produce json
// @Param page query int false "Page number" default(1) minimum(1)
// @Param per_page query int false "Page size" default(20) minimum(1) maximum(100)
// @Param level query int false "Difficulty level"
// @Param answer_type query string false "Normalized answer type"
// @Param search query string false "Case-insensitive substring of question or answer"
// @Param media_type query string false "Media type" Enums(image, video, audio, document, reference, other)
// @Param has_media query bool false "Only rows with (or without) attachments"
// @Success 200 {object} dto.QuestionListResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /questions [get]
func (h *QuestionHandler) ListQuestions(c *fiber.Ctx) error {
	req, ok := c.Locals(middleware.QuestionListRequestKey).(*dto.QuestionListRequest)
	if !ok {
		return fiber.NewError(fiber.StatusInternalServerError, "question list parameters were not validated")
	}

	resp, err := h.service.ListQuestions(req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetIndex godoc
// @Summary Question index
// @Description Returns task_id, level and answer_type of every row in dataset order
// @Tags questions
// @Produce json
// @Success 200 {array} dto.QuestionIndexItem
// @Router /questions/index [get]
func (h *QuestionHandler) GetIndex(c *fiber.Ctx) error {
	return c.JSON(h.service.GetIndex())
}

// GetQuestion godoc
// @Summary Get a question
// @Tags questions
// @Produce json
// @Param task_id path int true "Task ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /questions/{task_id} [get]
func (h *QuestionHandler) GetQuestion(c *fiber.Ctx) error {
	taskID, ok := c.Locals(middleware.TaskIDKey).(int)
	if !ok {
		return fiber.NewError(fiber.StatusInternalServerError, "task_id was not validated")
	}

	question, err := h.service.GetQuestion(taskID)
	if err != nil {
		return err
	}
	return c.JSON(question)
}
