package handler

import (
	"quizmaster/internal/dto"
	"quizmaster/internal/middleware"
	"quizmaster/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ContentHandler exposes the administrator's course, chapter, quiz and
// question management. Edit routes answer GET with the current entity and
// POST with the updated one.
type ContentHandler struct {
	service service.ContentService
}

func NewContentHandler(service service.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

// AddCourse godoc
// @Summary Add a course
// @Tags admin
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.CourseRequest true "Course"
// @Success 201 {object} dto.CourseResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Security ApiKeyAuth
// @Router /add_course [post]
func (h *ContentHandler) AddCourse(c *fiber.Ctx) error {
	var req dto.CourseRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	resp, err := h.service.AddCourse(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetCourse godoc
// @Summary Course edit form
// @Tags admin
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.CourseResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /edit_course/{id} [get]
func (h *ContentHandler) GetCourse(c *fiber.Ctx) error {
	resp, err := h.service.GetCourse(c.UserContext(), middleware.ParamID(c, "id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// EditCourse godoc
// @Summary Rename a course
// @Tags admin
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path int true "Course ID"
// @Param request body dto.EditCourseRequest true "Course"
// @Success 200 {object} dto.CourseResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /edit_course/{id} [post]
func (h *ContentHandler) EditCourse(c *fiber.Ctx) error {
	var req dto.EditCourseRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	resp, err := h.service.EditCourse(c.UserContext(), middleware.ParamID(c, "id"), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteCourse godoc
// @Summary Delete a course with its chapters, quizzes, questions and attempts
// @Tags admin
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /delete_course/{id} [post]
func (h *ContentHandler) DeleteCourse(c *fiber.Ctx) error {
	if err := h.service.DeleteCourse(c.UserContext(), middleware.ParamID(c, "id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Course deleted"})
}

// AddChapter godoc
// @Summary Add a chapter
// @Tags admin
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.ChapterRequest true "Chapter"
// @Success 201 {object} dto.ChapterResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /add_chapter [post]
func (h *ContentHandler) AddChapter(c *fiber.Ctx) error {
	var req dto.ChapterRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	resp, err := h.service.AddChapter(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetChapter godoc
// @Summary Chapter edit form
// @Tags admin
// @Produce json
// @Param id path int true "Chapter ID"
// @Success 200 {object} dto.ChapterResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /edit_chapter/{id} [get]
func (h *ContentHandler) GetChapter(c *fiber.Ctx) error {
	resp, err := h.service.GetChapter(c.UserContext(), middleware.ParamID(c, "id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// EditChapter godoc
// @Summary Rename a chapter
// @Tags admin
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path int true "Chapter ID"
// @Param request body dto.EditChapterRequest true "Chapter"
// @Success 200 {object} dto.ChapterResponse
// @Security ApiKeyAuth
// @Router /edit_chapter/{id} [post]
func (h *ContentHandler) EditChapter(c *fiber.Ctx) error {
	var req dto.EditChapterRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	resp, err := h.service.EditChapter(c.UserContext(), middleware.ParamID(c, "id"), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteChapter godoc
// @Summary Delete a chapter with its quizzes, questions and attempts
// @Tags admin
// @Produce json
// @Param id path int true "Chapter ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /chapters/{id}/delete [post]
func (h *ContentHandler) DeleteChapter(c *fiber.Ctx) error {
	if err := h.service.DeleteChapter(c.UserContext(), middleware.ParamID(c, "id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Chapter deleted"})
}

// AddQuiz godoc
// @Summary Add a quiz to a chapter
// @Description date_of_quiz accepts RFC 3339, YYYY-MM-DDTHH:MM[:SS] or YYYY-MM-DD (UTC) and must not be in the past.
// @Tags admin
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path int true "Chapter ID"
// @Param request body dto.QuizRequest true "Quiz"
// @Success 201 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Security ApiKeyAuth
// @Router /chapters/{id}/quizzes/add [post]
func (h *ContentHandler) AddQuiz(c *fiber.Ctx) error {
	var req dto.QuizRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	resp, err := h.service.AddQuiz(c.UserContext(), middleware.ParamID(c, "id"), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetQuiz godoc
// @Summary Quiz edit form
// @Tags admin
// @Produce json
// @Param id path int true "Quiz ID"
// @Success 200 {object} dto.QuizResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /quizzes/{id}/edit [get]
func (h *ContentHandler) GetQuiz(c *fiber.Ctx) error {
	resp, err := h.service.GetQuiz(c.UserContext(), middleware.ParamID(c, "id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// EditQuiz godoc
// @Summary Edit a quiz
// @Description An empty date_of_quiz keeps the stored date.
// @Tags admin
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path int true "Quiz ID"
// @Param request body dto.QuizRequest true "Quiz"
// @Success 200 {object} dto.QuizResponse
// @Security ApiKeyAuth
// @Router /quizzes/{id}/edit [post]
func (h *ContentHandler) EditQuiz(c *fiber.Ctx) error {
	var req dto.QuizRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	resp, err := h.service.EditQuiz(c.UserContext(), middleware.ParamID(c, "id"), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteQuiz godoc
// @Summary Delete a quiz with its questions and attempts
// @Tags admin
// @Produce json
// @Param id path int true "Quiz ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /delete_quiz/{id} [post]
func (h *ContentHandler) DeleteQuiz(c *fiber.Ctx) error {
	if err := h.service.DeleteQuiz(c.UserContext(), middleware.ParamID(c, "id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Quiz deleted"})
}

// AddQuestion godoc
// @Summary Add a question
// @Tags admin
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.QuestionRequest true "Question"
// @Success 201 {object} dto.QuestionResponse
// @Security ApiKeyAuth
// @Router /add_question [post]
func (h *ContentHandler) AddQuestion(c *fiber.Ctx) error {
	var req dto.QuestionRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	resp, err := h.service.AddQuestion(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetQuestion godoc
// @Summary Question edit form
// @Tags admin
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /edit_question/{id} [get]
func (h *ContentHandler) GetQuestion(c *fiber.Ctx) error {
	resp, err := h.service.GetQuestion(c.UserContext(), middleware.ParamID(c, "id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// EditQuestion godoc
// @Summary Edit a question
// @Tags admin
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path int true "Question ID"
// @Param request body dto.EditQuestionRequest true "Question"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Security ApiKeyAuth
// @Router /edit_question/{id} [post]
func (h *ContentHandler) EditQuestion(c *fiber.Ctx) error {
	var req dto.EditQuestionRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	resp, err := h.service.EditQuestion(c.UserContext(), middleware.ParamID(c, "id"), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags admin
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /delete_question/{id} [post]
func (h *ContentHandler) DeleteQuestion(c *fiber.Ctx) error {
	if err := h.service.DeleteQuestion(c.UserContext(), middleware.ParamID(c, "id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Question deleted"})
}
