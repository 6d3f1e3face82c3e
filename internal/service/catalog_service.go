package service

import (
	"context"
	"strings"

	"quizmaster/internal/domain"
	"quizmaster/internal/dto"
)

const (
	contactEmail   = "support@quizmaster.example"
	contactPhone   = "+1 555 0100"
	contactAddress = "12 Exam Street, Springfield"
)

// CatalogService serves the read-only course, chapter and quiz listings.
type CatalogService interface {
	// Home lists the courses of the caller's qualification. Anonymous
	// callers get an empty catalog.
	Home(ctx context.Context, identity domain.Identity, query string) (*dto.CourseListResponse, error)
	// SearchCourses searches every course regardless of qualification.
	SearchCourses(ctx context.Context, query string) (*dto.CourseListResponse, error)
	Courses(ctx context.Context, search, category string) (*dto.CourseListResponse, error)
	AdminDashboard(ctx context.Context, search string) (*dto.DashboardResponse, error)
	CourseChapters(ctx context.Context, courseID int64, search string) (*dto.CourseChaptersResponse, error)
	ViewChapter(ctx context.Context, chapterID int64) (*dto.ChapterDetailResponse, error)
	ViewQuestions(ctx context.Context, quizID int64) (*dto.QuizQuestionsResponse, error)
	Contact(ctx context.Context, identity domain.Identity) (*dto.ContactResponse, error)
}

type catalogService struct {
	userRepo     domain.UserRepository
	courseRepo   domain.CourseRepository
	chapterRepo  domain.ChapterRepository
	quizRepo     domain.QuizRepository
	questionRepo domain.QuestionRepository
}

func NewCatalogService(
	userRepo domain.UserRepository,
	courseRepo domain.CourseRepository,
	chapterRepo domain.ChapterRepository,
	quizRepo domain.QuizRepository,
	questionRepo domain.QuestionRepository,
) CatalogService {
	return &catalogService{
		userRepo:     userRepo,
		courseRepo:   courseRepo,
		chapterRepo:  chapterRepo,
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
	}
}

func (s *catalogService) Home(ctx context.Context, identity domain.Identity, query string) (*dto.CourseListResponse, error) {
	query = strings.TrimSpace(query)
	resp := &dto.CourseListResponse{Query: query, Courses: []dto.CourseResponse{}}
	if !identity.Authenticated() {
		return resp, nil
	}

	user, err := s.userRepo.GetUserByID(ctx, identity.UserID)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up user", err)
	}
	if user == nil {
		return resp, nil
	}

	courses, err := s.courseRepo.ListCourses(ctx, domain.CourseFilter{
		NameContains: query,
		Category:     user.Qualification,
	})
	if err != nil {
		return nil, domain.NewInternalError("failed to list courses", err)
	}
	resp.Courses = toCourseResponses(courses)
	return resp, nil
}

func (s *catalogService) SearchCourses(ctx context.Context, query string) (*dto.CourseListResponse, error) {
	return s.Courses(ctx, query, "")
}

func (s *catalogService) Courses(ctx context.Context, search, category string) (*dto.CourseListResponse, error) {
	search = strings.TrimSpace(search)
	courses, err := s.courseRepo.ListCourses(ctx, domain.CourseFilter{
		NameContains: search,
		Category:     strings.TrimSpace(category),
	})
	if err != nil {
		return nil, domain.NewInternalError("failed to list courses", err)
	}
	return &dto.CourseListResponse{Query: search, Courses: toCourseResponses(courses)}, nil
}

// AdminDashboard groups courses by category. The student qualification
// groups always come first, even when empty; other categories follow in
// the order they are first seen.
func (s *catalogService) AdminDashboard(ctx context.Context, search string) (*dto.DashboardResponse, error) {
	search = strings.TrimSpace(search)
	courses, err := s.courseRepo.ListCourses(ctx, domain.CourseFilter{NameContains: search})
	if err != nil {
		return nil, domain.NewInternalError("failed to list courses", err)
	}

	groups := make([]dto.CategoryGroup, 0, len(domain.StudentQualifications))
	index := make(map[string]int)
	for _, q := range domain.StudentQualifications {
		index[q] = len(groups)
		groups = append(groups, dto.CategoryGroup{Category: q, Courses: []dto.CourseResponse{}})
	}
	for _, c := range courses {
		i, ok := index[c.Category]
		if !ok {
			i = len(groups)
			index[c.Category] = i
			groups = append(groups, dto.CategoryGroup{Category: c.Category, Courses: []dto.CourseResponse{}})
		}
		groups[i].Courses = append(groups[i].Courses, toCourseResponse(c))
	}

	return &dto.DashboardResponse{Search: search, Categories: groups}, nil
}

func (s *catalogService) CourseChapters(ctx context.Context, courseID int64, search string) (*dto.CourseChaptersResponse, error) {
	course, err := s.courseRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get course", err)
	}
	if course == nil {
		return nil, domain.NewNotFoundError("course", courseID)
	}

	groups, err := loadChapterQuizzes(ctx, s.chapterRepo, s.quizRepo, courseID)
	if err != nil {
		return nil, err
	}

	search = strings.TrimSpace(search)
	views := make([]dto.ChapterView, 0, len(groups))
	for _, g := range filterChapterQuizzes(groups, search) {
		views = append(views, dto.ChapterView{
			Chapter: toChapterResponse(g.chapter),
			Quizzes: toQuizResponses(g.quizzes),
		})
	}

	return &dto.CourseChaptersResponse{
		Course:   toCourseResponse(*course),
		Search:   search,
		Chapters: views,
	}, nil
}

func (s *catalogService) ViewChapter(ctx context.Context, chapterID int64) (*dto.ChapterDetailResponse, error) {
	chapter, err := s.chapterRepo.GetChapterByID(ctx, chapterID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get chapter", err)
	}
	if chapter == nil {
		return nil, domain.NewNotFoundError("chapter", chapterID)
	}

	quizzes, err := s.quizRepo.ListQuizzesByChapter(ctx, chapterID)
	if err != nil {
		return nil, domain.NewInternalError("failed to list quizzes", err)
	}
	return &dto.ChapterDetailResponse{
		Chapter: toChapterResponse(*chapter),
		Quizzes: toQuizResponses(quizzes),
	}, nil
}

func (s *catalogService) ViewQuestions(ctx context.Context, quizID int64) (*dto.QuizQuestionsResponse, error) {
	quiz, err := s.quizRepo.GetQuizByID(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewNotFoundError("quiz", quizID)
	}

	questions, err := s.questionRepo.ListQuestionsByQuiz(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("failed to list questions", err)
	}
	return &dto.QuizQuestionsResponse{
		Quiz:      toQuizResponse(*quiz),
		Questions: toQuestionResponses(questions),
	}, nil
}

func (s *catalogService) Contact(ctx context.Context, identity domain.Identity) (*dto.ContactResponse, error) {
	resp := &dto.ContactResponse{
		Email:   contactEmail,
		Phone:   contactPhone,
		Address: contactAddress,
	}
	if !identity.Authenticated() {
		return resp, nil
	}

	user, err := s.userRepo.GetUserByID(ctx, identity.UserID)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up user", err)
	}
	if user != nil {
		resp.User = toUserProfile(user)
	}
	return resp, nil
}

// chapterQuizzes pairs a chapter with its quizzes.
type chapterQuizzes struct {
	chapter domain.Chapter
	quizzes []domain.Quiz
}

func loadChapterQuizzes(ctx context.Context, chapterRepo domain.ChapterRepository, quizRepo domain.QuizRepository, courseID int64) ([]chapterQuizzes, error) {
	chapters, err := chapterRepo.ListChaptersByCourse(ctx, courseID)
	if err != nil {
		return nil, domain.NewInternalError("failed to list chapters", err)
	}
	quizzes, err := quizRepo.ListQuizzesByCourse(ctx, courseID)
	if err != nil {
		return nil, domain.NewInternalError("failed to list quizzes", err)
	}
	return groupQuizzesByChapter(chapters, quizzes), nil
}

func groupQuizzesByChapter(chapters []domain.Chapter, quizzes []domain.Quiz) []chapterQuizzes {
	byChapter := make(map[int64][]domain.Quiz, len(chapters))
	for _, q := range quizzes {
		byChapter[q.ChapterID] = append(byChapter[q.ChapterID], q)
	}
	groups := make([]chapterQuizzes, len(chapters))
	for i, ch := range chapters {
		groups[i] = chapterQuizzes{chapter: ch, quizzes: byChapter[ch.ID]}
	}
	return groups
}

// filterChapterQuizzes applies a case-insensitive name search. A chapter
// whose name matches keeps all of its quizzes; otherwise it keeps only the
// matching quizzes, and is dropped when none match. An empty query keeps
// everything.
func filterChapterQuizzes(groups []chapterQuizzes, query string) []chapterQuizzes {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return groups
	}

	filtered := make([]chapterQuizzes, 0, len(groups))
	for _, g := range groups {
		if strings.Contains(strings.ToLower(g.chapter.Name), query) {
			filtered = append(filtered, g)
			continue
		}
		var matching []domain.Quiz
		for _, q := range g.quizzes {
			if strings.Contains(strings.ToLower(q.Name), query) {
				matching = append(matching, q)
			}
		}
		if len(matching) > 0 {
			filtered = append(filtered, chapterQuizzes{chapter: g.chapter, quizzes: matching})
		}
	}
	return filtered
}
