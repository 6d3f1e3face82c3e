package handler

import (
	"quizmaster/internal/middleware"
	"quizmaster/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler serves the course, chapter and quiz listings.
type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(service service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// Home godoc
// @Summary Student home
// @Description Courses matching the caller's qualification. Anonymous callers get an empty list.
// @Tags catalog
// @Produce json
// @Param query query string false "Course name search"
// @Success 200 {object} dto.CourseListResponse
// @Router / [get]
func (h *CatalogHandler) Home(c *fiber.Ctx) error {
	resp, err := h.service.Home(c.UserContext(), middleware.IdentityFrom(c), c.Query("query"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SearchCourses godoc
// @Summary Search all courses
// @Tags catalog
// @Produce json
// @Param query query string false "Course name search"
// @Success 200 {object} dto.CourseListResponse
// @Router /search_courses [get]
func (h *CatalogHandler) SearchCourses(c *fiber.Ctx) error {
	resp, err := h.service.SearchCourses(c.UserContext(), c.Query("query"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Courses godoc
// @Summary Filter courses
// @Tags admin
// @Produce json
// @Param search query string false "Course name search"
// @Param category query string false "Exact category"
// @Success 200 {object} dto.CourseListResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses [get]
func (h *CatalogHandler) Courses(c *fiber.Ctx) error {
	resp, err := h.service.Courses(c.UserContext(), c.Query("search"), c.Query("category"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// AdminDashboard godoc
// @Summary Admin dashboard
// @Description Courses grouped by category.
// @Tags admin
// @Produce json
// @Param search query string false "Course name search"
// @Success 200 {object} dto.DashboardResponse
// @Security ApiKeyAuth
// @Router /admin/dashboard [get]
// @Router /admin/dashboard [post]
func (h *CatalogHandler) AdminDashboard(c *fiber.Ctx) error {
	resp, err := h.service.AdminDashboard(c.UserContext(), searchParam(c, "search"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CourseChapters godoc
// @Summary Chapters of a course
// @Tags admin
// @Produce json
// @Param course_id path int true "Course ID"
// @Param search query string false "Chapter or quiz name search"
// @Success 200 {object} dto.CourseChaptersResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /chapters/{course_id} [get]
// @Router /chapters/{course_id} [post]
func (h *CatalogHandler) CourseChapters(c *fiber.Ctx) error {
	resp, err := h.service.CourseChapters(c.UserContext(), middleware.ParamID(c, "course_id"), searchParam(c, "search"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ViewChapter godoc
// @Summary Chapter detail
// @Tags catalog
// @Produce json
// @Param id path int true "Chapter ID"
// @Success 200 {object} dto.ChapterDetailResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /chapter/{id} [get]
func (h *CatalogHandler) ViewChapter(c *fiber.Ctx) error {
	resp, err := h.service.ViewChapter(c.UserContext(), middleware.ParamID(c, "id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ViewQuestions godoc
// @Summary Questions of a quiz, with answers
// @Tags admin
// @Produce json
// @Param id path int true "Quiz ID"
// @Success 200 {object} dto.QuizQuestionsResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /quizzes/{id}/questions [get]
func (h *CatalogHandler) ViewQuestions(c *fiber.Ctx) error {
	resp, err := h.service.ViewQuestions(c.UserContext(), middleware.ParamID(c, "id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Contact godoc
// @Summary Contact details
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.ContactResponse
// @Router /contact [get]
func (h *CatalogHandler) Contact(c *fiber.Ctx) error {
	resp, err := h.service.Contact(c.UserContext(), middleware.IdentityFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
