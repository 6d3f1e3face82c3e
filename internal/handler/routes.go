package handler

import (
	"quizmaster/internal/middleware"
	"quizmaster/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// Handlers groups every HTTP handler of the application.
type Handlers struct {
	Auth    *AuthHandler
	Catalog *CatalogHandler
	Content *ContentHandler
	Quiz    *QuizHandler
	Stats   *StatsHandler
	Health  *HealthHandler
}

// RegisterRoutes mounts the route table on app. Every request is
// authenticated when it carries a token; guards decide per route.
func RegisterRoutes(app *fiber.App, h Handlers, authService service.AuthService, cookieName string) {
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/healthz", h.Health.Healthz)

	app.Use(middleware.Authenticate(authService, cookieName))

	login := middleware.RequireLogin()
	admin := middleware.RequireAdmin()
	id := middleware.ValidateIDParams("id")
	courseID := middleware.ValidateIDParams("course_id")
	quizID := middleware.ValidateIDParams("quiz_id")

	// Auth
	app.Post("/register", h.Auth.Register)
	app.Post("/login", h.Auth.Login)
	app.Get("/logout", h.Auth.Logout)
	app.Get("/me", login, h.Auth.Me)

	// Catalog
	app.Get("/", h.Catalog.Home)
	app.Get("/search_courses", h.Catalog.SearchCourses)
	app.Get("/contact", h.Catalog.Contact)
	app.Get("/chapter/:id", id, h.Catalog.ViewChapter)
	app.Get("/courses", admin, h.Catalog.Courses)
	app.Get("/admin/dashboard", admin, h.Catalog.AdminDashboard)
	app.Post("/admin/dashboard", admin, h.Catalog.AdminDashboard)
	app.Get("/chapters/:course_id", admin, courseID, h.Catalog.CourseChapters)
	app.Post("/chapters/:course_id", admin, courseID, h.Catalog.CourseChapters)
	app.Get("/quizzes/:id/questions", admin, id, h.Catalog.ViewQuestions)

	// Content management
	app.Post("/add_course", admin, h.Content.AddCourse)
	app.Get("/edit_course/:id", admin, id, h.Content.GetCourse)
	app.Post("/edit_course/:id", admin, id, h.Content.EditCourse)
	app.Post("/delete_course/:id", admin, id, h.Content.DeleteCourse)

	app.Post("/add_chapter", admin, h.Content.AddChapter)
	app.Get("/edit_chapter/:id", admin, id, h.Content.GetChapter)
	app.Post("/edit_chapter/:id", admin, id, h.Content.EditChapter)
	app.Post("/chapters/:id/delete", admin, id, h.Content.DeleteChapter)

	app.Post("/chapters/:id/quizzes/add", admin, id, h.Content.AddQuiz)
	app.Get("/quizzes/:id/edit", admin, id, h.Content.GetQuiz)
	app.Post("/quizzes/:id/edit", admin, id, h.Content.EditQuiz)
	app.Post("/delete_quiz/:id", admin, id, h.Content.DeleteQuiz)

	app.Post("/add_question", admin, h.Content.AddQuestion)
	app.Get("/edit_question/:id", admin, id, h.Content.GetQuestion)
	app.Post("/edit_question/:id", admin, id, h.Content.EditQuestion)
	app.Post("/delete_question/:id", admin, id, h.Content.DeleteQuestion)

	// Quiz taking
	app.Get("/quizzes/:id/take_test", id, h.Quiz.TakeTest)
	app.Post("/submit_test/:quiz_id", login, quizID, h.Quiz.SubmitTest)
	app.Get("/view_attempt/:id", login, id, h.Quiz.ViewAttempt)
	app.Get("/student/chapters/:course_id", login, courseID, h.Quiz.StudentChapters)

	// Statistics
	app.Get("/admin/stats", admin, h.Stats.AdminStats)
	app.Get("/student/stats", login, h.Stats.UserStats)
}
