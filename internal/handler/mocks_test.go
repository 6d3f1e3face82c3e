package handler_test

import (
	"context"

	"quizmaster/internal/domain"
	"quizmaster/internal/dto"
	"quizmaster/internal/service"
)

// --- Manual Mocks ---

// MockAuthService
type MockAuthService struct {
	RegisterFunc      func(ctx context.Context, req *dto.RegisterRequest) (*dto.UserProfileResponse, error)
	LoginFunc         func(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	LogoutFunc        func(ctx context.Context, tokenString string) error
	ValidateTokenFunc func(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
	GetUserFunc       func(ctx context.Context, id int64) (*dto.UserProfileResponse, error)
}

func (m *MockAuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserProfileResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	panic("MockAuthService.RegisterFunc not implemented")
}
func (m *MockAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	panic("MockAuthService.LoginFunc not implemented")
}
func (m *MockAuthService) Logout(ctx context.Context, tokenString string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, tokenString)
	}
	panic("MockAuthService.LogoutFunc not implemented")
}

// ValidateToken accepts "student_token" (user 7) and "admin_token" (user 1)
// unless ValidateTokenFunc is set.
func (m *MockAuthService) ValidateToken(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(ctx, tokenString)
	}
	switch tokenString {
	case studentToken:
		return &dto.AuthClaims{UserID: 7}, nil
	case adminToken:
		return &dto.AuthClaims{UserID: 1, IsAdmin: true}, nil
	}
	return nil, domain.NewUnauthorizedError("invalid session token")
}
func (m *MockAuthService) GetUser(ctx context.Context, id int64) (*dto.UserProfileResponse, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	panic("MockAuthService.GetUserFunc not implemented")
}
func (m *MockAuthService) EnsureAdmin(ctx context.Context) error {
	panic("MockAuthService.EnsureAdmin not implemented")
}

// MockCatalogService
type MockCatalogService struct {
	HomeFunc           func(ctx context.Context, identity domain.Identity, query string) (*dto.CourseListResponse, error)
	SearchCoursesFunc  func(ctx context.Context, query string) (*dto.CourseListResponse, error)
	CoursesFunc        func(ctx context.Context, search, category string) (*dto.CourseListResponse, error)
	AdminDashboardFunc func(ctx context.Context, search string) (*dto.DashboardResponse, error)
	CourseChaptersFunc func(ctx context.Context, courseID int64, search string) (*dto.CourseChaptersResponse, error)
	ViewChapterFunc    func(ctx context.Context, chapterID int64) (*dto.ChapterDetailResponse, error)
	ViewQuestionsFunc  func(ctx context.Context, quizID int64) (*dto.QuizQuestionsResponse, error)
	ContactFunc        func(ctx context.Context, identity domain.Identity) (*dto.ContactResponse, error)
}

func (m *MockCatalogService) Home(ctx context.Context, identity domain.Identity, query string) (*dto.CourseListResponse, error) {
	if m.HomeFunc != nil {
		return m.HomeFunc(ctx, identity, query)
	}
	panic("MockCatalogService.HomeFunc not implemented")
}
func (m *MockCatalogService) SearchCourses(ctx context.Context, query string) (*dto.CourseListResponse, error) {
	if m.SearchCoursesFunc != nil {
		return m.SearchCoursesFunc(ctx, query)
	}
	panic("MockCatalogService.SearchCoursesFunc not implemented")
}
func (m *MockCatalogService) Courses(ctx context.Context, search, category string) (*dto.CourseListResponse, error) {
	if m.CoursesFunc != nil {
		return m.CoursesFunc(ctx, search, category)
	}
	panic("MockCatalogService.CoursesFunc not implemented")
}
func (m *MockCatalogService) AdminDashboard(ctx context.Context, search string) (*dto.DashboardResponse, error) {
	if m.AdminDashboardFunc != nil {
		return m.AdminDashboardFunc(ctx, search)
	}
	panic("MockCatalogService.AdminDashboardFunc not implemented")
}
func (m *MockCatalogService) CourseChapters(ctx context.Context, courseID int64, search string) (*dto.CourseChaptersResponse, error) {
	if m.CourseChaptersFunc != nil {
		return m.CourseChaptersFunc(ctx, courseID, search)
	}
	panic("MockCatalogService.CourseChaptersFunc not implemented")
}
func (m *MockCatalogService) ViewChapter(ctx context.Context, chapterID int64) (*dto.ChapterDetailResponse, error) {
	if m.ViewChapterFunc != nil {
		return m.ViewChapterFunc(ctx, chapterID)
	}
	panic("MockCatalogService.ViewChapterFunc not implemented")
}
func (m *MockCatalogService) ViewQuestions(ctx context.Context, quizID int64) (*dto.QuizQuestionsResponse, error) {
	if m.ViewQuestionsFunc != nil {
		return m.ViewQuestionsFunc(ctx, quizID)
	}
	panic("MockCatalogService.ViewQuestionsFunc not implemented")
}
func (m *MockCatalogService) Contact(ctx context.Context, identity domain.Identity) (*dto.ContactResponse, error) {
	if m.ContactFunc != nil {
		return m.ContactFunc(ctx, identity)
	}
	panic("MockCatalogService.ContactFunc not implemented")
}

// MockContentService only wires the operations the tests drive.
type MockContentService struct {
	AddCourseFunc    func(ctx context.Context, req *dto.CourseRequest) (*dto.CourseResponse, error)
	GetCourseFunc    func(ctx context.Context, id int64) (*dto.CourseResponse, error)
	DeleteCourseFunc func(ctx context.Context, id int64) error
	AddQuizFunc      func(ctx context.Context, chapterID int64, req *dto.QuizRequest) (*dto.QuizResponse, error)
	EditQuizFunc     func(ctx context.Context, id int64, req *dto.QuizRequest) (*dto.QuizResponse, error)
	AddQuestionFunc  func(ctx context.Context, req *dto.QuestionRequest) (*dto.QuestionResponse, error)
}

func (m *MockContentService) AddCourse(ctx context.Context, req *dto.CourseRequest) (*dto.CourseResponse, error) {
	if m.AddCourseFunc != nil {
		return m.AddCourseFunc(ctx, req)
	}
	panic("MockContentService.AddCourseFunc not implemented")
}
func (m *MockContentService) GetCourse(ctx context.Context, id int64) (*dto.CourseResponse, error) {
	if m.GetCourseFunc != nil {
		return m.GetCourseFunc(ctx, id)
	}
	panic("MockContentService.GetCourseFunc not implemented")
}
func (m *MockContentService) EditCourse(ctx context.Context, id int64, req *dto.EditCourseRequest) (*dto.CourseResponse, error) {
	panic("MockContentService.EditCourse not implemented")
}
func (m *MockContentService) DeleteCourse(ctx context.Context, id int64) error {
	if m.DeleteCourseFunc != nil {
		return m.DeleteCourseFunc(ctx, id)
	}
	panic("MockContentService.DeleteCourseFunc not implemented")
}
func (m *MockContentService) AddChapter(ctx context.Context, req *dto.ChapterRequest) (*dto.ChapterResponse, error) {
	panic("MockContentService.AddChapter not implemented")
}
func (m *MockContentService) GetChapter(ctx context.Context, id int64) (*dto.ChapterResponse, error) {
	panic("MockContentService.GetChapter not implemented")
}
func (m *MockContentService) EditChapter(ctx context.Context, id int64, req *dto.EditChapterRequest) (*dto.ChapterResponse, error) {
	panic("MockContentService.EditChapter not implemented")
}
func (m *MockContentService) DeleteChapter(ctx context.Context, id int64) error {
	panic("MockContentService.DeleteChapter not implemented")
}
func (m *MockContentService) AddQuiz(ctx context.Context, chapterID int64, req *dto.QuizRequest) (*dto.QuizResponse, error) {
	if m.AddQuizFunc != nil {
		return m.AddQuizFunc(ctx, chapterID, req)
	}
	panic("MockContentService.AddQuizFunc not implemented")
}
func (m *MockContentService) GetQuiz(ctx context.Context, id int64) (*dto.QuizResponse, error) {
	panic("MockContentService.GetQuiz not implemented")
}
func (m *MockContentService) EditQuiz(ctx context.Context, id int64, req *dto.QuizRequest) (*dto.QuizResponse, error) {
	if m.EditQuizFunc != nil {
		return m.EditQuizFunc(ctx, id, req)
	}
	panic("MockContentService.EditQuizFunc not implemented")
}
func (m *MockContentService) DeleteQuiz(ctx context.Context, id int64) error {
	panic("MockContentService.DeleteQuiz not implemented")
}
func (m *MockContentService) AddQuestion(ctx context.Context, req *dto.QuestionRequest) (*dto.QuestionResponse, error) {
	if m.AddQuestionFunc != nil {
		return m.AddQuestionFunc(ctx, req)
	}
	panic("MockContentService.AddQuestionFunc not implemented")
}
func (m *MockContentService) GetQuestion(ctx context.Context, id int64) (*dto.QuestionResponse, error) {
	panic("MockContentService.GetQuestion not implemented")
}
func (m *MockContentService) EditQuestion(ctx context.Context, id int64, req *dto.EditQuestionRequest) (*dto.QuestionResponse, error) {
	panic("MockContentService.EditQuestion not implemented")
}
func (m *MockContentService) DeleteQuestion(ctx context.Context, id int64) error {
	panic("MockContentService.DeleteQuestion not implemented")
}

// MockQuizService
type MockQuizService struct {
	TakeTestFunc        func(ctx context.Context, quizID int64) (*dto.TakeTestResponse, error)
	SubmitTestFunc      func(ctx context.Context, identity domain.Identity, quizID int64, answers map[int64]string) (*dto.SubmitTestResponse, error)
	ViewAttemptFunc     func(ctx context.Context, identity domain.Identity, attemptID int64) (*dto.ViewAttemptResponse, error)
	StudentChaptersFunc func(ctx context.Context, identity domain.Identity, courseID int64, query string) (*dto.StudentChaptersResponse, error)
}

func (m *MockQuizService) TakeTest(ctx context.Context, quizID int64) (*dto.TakeTestResponse, error) {
	if m.TakeTestFunc != nil {
		return m.TakeTestFunc(ctx, quizID)
	}
	panic("MockQuizService.TakeTestFunc not implemented")
}
func (m *MockQuizService) SubmitTest(ctx context.Context, identity domain.Identity, quizID int64, answers map[int64]string) (*dto.SubmitTestResponse, error) {
	if m.SubmitTestFunc != nil {
		return m.SubmitTestFunc(ctx, identity, quizID, answers)
	}
	panic("MockQuizService.SubmitTestFunc not implemented")
}
func (m *MockQuizService) ViewAttempt(ctx context.Context, identity domain.Identity, attemptID int64) (*dto.ViewAttemptResponse, error) {
	if m.ViewAttemptFunc != nil {
		return m.ViewAttemptFunc(ctx, identity, attemptID)
	}
	panic("MockQuizService.ViewAttemptFunc not implemented")
}
func (m *MockQuizService) StudentChapters(ctx context.Context, identity domain.Identity, courseID int64, query string) (*dto.StudentChaptersResponse, error) {
	if m.StudentChaptersFunc != nil {
		return m.StudentChaptersFunc(ctx, identity, courseID, query)
	}
	panic("MockQuizService.StudentChaptersFunc not implemented")
}

// MockStatsService
type MockStatsService struct {
	AdminStatsFunc func(ctx context.Context) (*dto.AdminStatsResponse, error)
	UserStatsFunc  func(ctx context.Context, identity domain.Identity) (*dto.UserStatsResponse, error)
}

func (m *MockStatsService) AdminStats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	if m.AdminStatsFunc != nil {
		return m.AdminStatsFunc(ctx)
	}
	panic("MockStatsService.AdminStatsFunc not implemented")
}
func (m *MockStatsService) UserStats(ctx context.Context, identity domain.Identity) (*dto.UserStatsResponse, error) {
	if m.UserStatsFunc != nil {
		return m.UserStatsFunc(ctx, identity)
	}
	panic("MockStatsService.UserStatsFunc not implemented")
}

var (
	_ service.AuthService    = (*MockAuthService)(nil)
	_ service.CatalogService = (*MockCatalogService)(nil)
	_ service.ContentService = (*MockContentService)(nil)
	_ service.QuizService    = (*MockQuizService)(nil)
	_ service.StatsService   = (*MockStatsService)(nil)
)
