package handler

import (
	"fmt"

	"quizmaster/internal/middleware"
	"quizmaster/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz taking and attempt review.
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{service: service}
}

// TakeTest godoc
// @Summary Quiz form
// @Description Questions of a quiz without their answers, with availability flags.
// @Tags quiz
// @Produce json
// @Param id path int true "Quiz ID"
// @Success 200 {object} dto.TakeTestResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quizzes/{id}/take_test [get]
func (h *QuizHandler) TakeTest(c *fiber.Ctx) error {
	resp, err := h.service.TakeTest(c.UserContext(), middleware.ParamID(c, "id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SubmitTest godoc
// @Summary Submit answers
// @Description Scores the answers and stores a new attempt. Form bodies use question_<id> fields.
// @Tags quiz
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param request body dto.SubmitTestRequest false "Answers keyed by question id"
// @Success 201 {object} dto.SubmitTestResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /submit_test/{quiz_id} [post]
func (h *QuizHandler) SubmitTest(c *fiber.Ctx) error {
	answers, err := parseAnswers(c)
	if err != nil {
		return err
	}

	resp, err := h.service.SubmitTest(c.UserContext(), middleware.IdentityFrom(c), middleware.ParamID(c, "quiz_id"), answers)
	if err != nil {
		return err
	}
	c.Location(fmt.Sprintf("/view_attempt/%d", resp.AttemptID))
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ViewAttempt godoc
// @Summary Review an attempt
// @Description Only the student who made the attempt, or an administrator, may view it.
// @Tags quiz
// @Produce json
// @Param id path int true "Attempt ID"
// @Success 200 {object} dto.ViewAttemptResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /view_attempt/{id} [get]
func (h *QuizHandler) ViewAttempt(c *fiber.Ctx) error {
	resp, err := h.service.ViewAttempt(c.UserContext(), middleware.IdentityFrom(c), middleware.ParamID(c, "id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// StudentChapters godoc
// @Summary Chapters of a course with the student's progress
// @Tags quiz
// @Produce json
// @Param course_id path int true "Course ID"
// @Param query query string false "Chapter or quiz name search"
// @Success 200 {object} dto.StudentChaptersResponse
// @Security ApiKeyAuth
// @Router /student/chapters/{course_id} [get]
func (h *QuizHandler) StudentChapters(c *fiber.Ctx) error {
	resp, err := h.service.StudentChapters(c.UserContext(), middleware.IdentityFrom(c), middleware.ParamID(c, "course_id"), c.Query("query"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
