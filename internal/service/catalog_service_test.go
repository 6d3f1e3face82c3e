package service

import (
	"context"
	"errors"
	"testing"

	"quizmaster/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogMocks struct {
	users     *MockUserRepository
	courses   *MockCourseRepository
	chapters  *MockChapterRepository
	quizzes   *MockQuizRepository
	questions *MockQuestionRepository
}

func newTestCatalogService() (CatalogService, *catalogMocks) {
	m := &catalogMocks{
		users:     new(MockUserRepository),
		courses:   new(MockCourseRepository),
		chapters:  new(MockChapterRepository),
		quizzes:   new(MockQuizRepository),
		questions: new(MockQuestionRepository),
	}
	return NewCatalogService(m.users, m.courses, m.chapters, m.quizzes, m.questions), m
}

func TestCatalogService_Home_Anonymous(t *testing.T) {
	svc, m := newTestCatalogService()

	resp, err := svc.Home(context.Background(), domain.Identity{}, "math")
	require.NoError(t, err)
	assert.Empty(t, resp.Courses)
	assert.NotNil(t, resp.Courses)
	m.courses.AssertNotCalled(t, "ListCourses")
}

func TestCatalogService_Home_FiltersByQualification(t *testing.T) {
	svc, m := newTestCatalogService()
	ctx := context.Background()

	m.users.On("GetUserByID", ctx, int64(5)).Return(&domain.User{ID: 5, Qualification: domain.QualificationDiploma}, nil)
	m.courses.On("ListCourses", ctx, domain.CourseFilter{NameContains: "alg", Category: domain.QualificationDiploma}).
		Return([]domain.Course{{ID: 1, Name: "Algebra", Category: domain.QualificationDiploma}}, nil)

	resp, err := svc.Home(ctx, domain.Identity{UserID: 5}, "  alg ")
	require.NoError(t, err)
	assert.Equal(t, "alg", resp.Query)
	require.Len(t, resp.Courses, 1)
	assert.Equal(t, "Algebra", resp.Courses[0].Name)
	m.courses.AssertExpectations(t)
}

func TestCatalogService_SearchCourses_IgnoresQualification(t *testing.T) {
	svc, m := newTestCatalogService()
	ctx := context.Background()

	m.courses.On("ListCourses", ctx, domain.CourseFilter{NameContains: "bio"}).
		Return([]domain.Course{{ID: 2, Name: "Biology", Category: domain.QualificationDegree}}, nil)

	resp, err := svc.SearchCourses(ctx, "bio")
	require.NoError(t, err)
	assert.Len(t, resp.Courses, 1)
}

func TestCatalogService_AdminDashboard_Grouping(t *testing.T) {
	svc, m := newTestCatalogService()
	ctx := context.Background()

	m.courses.On("ListCourses", ctx, domain.CourseFilter{}).Return([]domain.Course{
		{ID: 1, Name: "Art", Category: "Hobby"},
		{ID: 2, Name: "Physics", Category: domain.QualificationDegree},
		{ID: 5, Name: "Orientation"},
		{ID: 3, Name: "Chess", Category: "Games"},
		{ID: 4, Name: "Pottery", Category: "Hobby"},
	}, nil)

	resp, err := svc.AdminDashboard(ctx, "")
	require.NoError(t, err)

	var names []string
	for _, g := range resp.Categories {
		names = append(names, g.Category)
	}
	assert.Equal(t, []string{"Foundation", "Diploma", "Degree", "Hobby", "", "Games"}, names)
	assert.Empty(t, resp.Categories[0].Courses)
	assert.Len(t, resp.Categories[2].Courses, 1)
	assert.Len(t, resp.Categories[3].Courses, 2)
	assert.Len(t, resp.Categories[4].Courses, 1)
}

func TestCatalogService_CourseChapters(t *testing.T) {
	svc, m := newTestCatalogService()
	ctx := context.Background()

	m.courses.On("GetCourseByID", ctx, int64(1)).Return(&domain.Course{ID: 1, Name: "Maths"}, nil)
	m.chapters.On("ListChaptersByCourse", ctx, int64(1)).Return([]domain.Chapter{
		{ID: 10, Name: "Algebra", CourseID: 1},
		{ID: 11, Name: "Geometry", CourseID: 1},
	}, nil)
	m.quizzes.On("ListQuizzesByCourse", ctx, int64(1)).Return([]domain.Quiz{
		{ID: 100, Name: "Linear equations", ChapterID: 10},
		{ID: 101, Name: "Triangles", ChapterID: 11},
	}, nil)

	resp, err := svc.CourseChapters(ctx, 1, "")
	require.NoError(t, err)
	require.Len(t, resp.Chapters, 2)
	assert.Len(t, resp.Chapters[0].Quizzes, 1)

	resp, err = svc.CourseChapters(ctx, 1, "TRIANG")
	require.NoError(t, err)
	require.Len(t, resp.Chapters, 1)
	assert.Equal(t, "Geometry", resp.Chapters[0].Chapter.Name)
}

func TestCatalogService_NotFound(t *testing.T) {
	svc, m := newTestCatalogService()
	ctx := context.Background()

	m.courses.On("GetCourseByID", ctx, int64(9)).Return(nil, nil)
	m.chapters.On("GetChapterByID", ctx, int64(9)).Return(nil, nil)
	m.quizzes.On("GetQuizByID", ctx, int64(9)).Return(nil, nil)

	_, err := svc.CourseChapters(ctx, 9, "")
	assert.True(t, domain.HasCode(err, domain.CodeNotFound))
	_, err = svc.ViewChapter(ctx, 9)
	assert.True(t, domain.HasCode(err, domain.CodeNotFound))
	_, err = svc.ViewQuestions(ctx, 9)
	assert.True(t, domain.HasCode(err, domain.CodeNotFound))
}

func TestCatalogService_RepositoryFailure(t *testing.T) {
	svc, m := newTestCatalogService()
	ctx := context.Background()

	m.courses.On("ListCourses", ctx, domain.CourseFilter{}).Return(nil, errors.New("db down"))

	_, err := svc.AdminDashboard(ctx, "")
	assert.True(t, domain.HasCode(err, domain.CodeInternal))
}

func TestCatalogService_Contact(t *testing.T) {
	svc, m := newTestCatalogService()
	ctx := context.Background()

	resp, err := svc.Contact(ctx, domain.Identity{})
	require.NoError(t, err)
	assert.Nil(t, resp.User)
	assert.NotEmpty(t, resp.Email)

	m.users.On("GetUserByID", ctx, int64(3)).Return(&domain.User{ID: 3, Username: "s@example.com"}, nil)
	resp, err = svc.Contact(ctx, domain.Identity{UserID: 3})
	require.NoError(t, err)
	require.NotNil(t, resp.User)
	assert.Equal(t, "s@example.com", resp.User.Username)
}

func TestFilterChapterQuizzes(t *testing.T) {
	groups := []chapterQuizzes{
		{chapter: domain.Chapter{ID: 1, Name: "Algebra"}, quizzes: []domain.Quiz{{ID: 1, Name: "Basics"}, {ID: 2, Name: "Matrices"}}},
		{chapter: domain.Chapter{ID: 2, Name: "Calculus"}, quizzes: []domain.Quiz{{ID: 3, Name: "Limits"}, {ID: 4, Name: "Basic derivatives"}}},
		{chapter: domain.Chapter{ID: 3, Name: "Statistics"}, quizzes: nil},
	}

	tests := []struct {
		name     string
		query    string
		chapters []int64
		quizzes  [][]int64
	}{
		{"empty query keeps everything", "", []int64{1, 2, 3}, [][]int64{{1, 2}, {3, 4}, nil}},
		{"chapter name match keeps all quizzes", "algeb", []int64{1}, [][]int64{{1, 2}}},
		{"quiz match keeps only matching quizzes", "basic", []int64{1, 2}, [][]int64{{1}, {4}}},
		{"case insensitive", "LIMITS", []int64{2}, [][]int64{{3}}},
		{"no match", "topology", []int64{}, [][]int64{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := filterChapterQuizzes(groups, tc.query)
			chapterIDs := []int64{}
			quizIDs := [][]int64{}
			for _, g := range got {
				chapterIDs = append(chapterIDs, g.chapter.ID)
				var ids []int64
				for _, q := range g.quizzes {
					ids = append(ids, q.ID)
				}
				quizIDs = append(quizIDs, ids)
			}
			assert.Equal(t, tc.chapters, chapterIDs)
			assert.Equal(t, tc.quizzes, quizIDs)
		})
	}
}
