package middleware

import (
	"errors"
	"strconv"

	"histbench-api/internal/domain"
	"histbench-api/internal/dto"
	"histbench-api/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Locals keys holding validated request values.
const (
	QuestionListRequestKey = "validated_question_list"
	TaskIDKey              = "validated_task_id"
)

const (
	defaultPage    = 1
	defaultPerPage = 20
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct{}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{}
}

// ValidateQuestionListParams parses and validates the GET /questions query
// parameters and stores a *dto.QuestionListRequest in the context.
func (vm *ValidationMiddleware) ValidateQuestionListParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var errs domain.ValidationErrors
		req := &dto.QuestionListRequest{
			AnswerType: c.Query("answer_type"),
			Search:     c.Query("search"),
			MediaType:  c.Query("media_type"),
		}

		page, verr := validation.ParseInt("page", c.Query("page"), defaultPage)
		if verr != nil {
			errs = append(errs, *verr)
		}
		req.Page = page

		perPage, verr := validation.ParseInt("per_page", c.Query("per_page"), defaultPerPage)
		if verr != nil {
			errs = append(errs, *verr)
		}
		req.PerPage = perPage

		if raw := c.Query("level"); raw != "" {
			level, verr := validation.ParseInt("level", raw, 0)
			if verr != nil {
				errs = append(errs, *verr)
			} else {
				req.Level = &level
			}
		}

		hasMedia, verr := validation.ParseBool("has_media", c.Query("has_media"))
		if verr != nil {
			errs = append(errs, *verr)
		}
		req.HasMedia = hasMedia

		if len(errs) > 0 {
			return errs // This will be handled by ErrorHandler middleware
		}
		if errs := validation.ValidateStruct(req); len(errs) > 0 {
			return errs
		}

		c.Locals(QuestionListRequestKey, req)
		return c.Next()
	}
}

// ValidateTaskID parses the :task_id path parameter.
func (vm *ValidationMiddleware) ValidateTaskID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Params("task_id")
		taskID, err := strconv.Atoi(raw)
		if err != nil {
			// An integer outside the int range is well formed but matches no row.
			if errors.Is(err, strconv.ErrRange) {
				return domain.NewUnknownTaskIDError(raw)
			}
			return domain.ValidationErrors{
				domain.NewInvalidFormatError("task_id", raw),
			}
		}
		c.Locals(TaskIDKey, taskID)
		return c.Next()
	}
}
