package service

import (
	"context"
	"strings"
	"time"

	"quizmaster/internal/cache"
	"quizmaster/internal/domain"
	"quizmaster/internal/dto"
	"quizmaster/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// QuizService handles quiz taking, scoring and the student's view of a course.
type QuizService interface {
	TakeTest(ctx context.Context, quizID int64) (*dto.TakeTestResponse, error)
	// SubmitTest scores answers keyed by question id and stores a new
	// attempt. Every call creates a new attempt.
	SubmitTest(ctx context.Context, identity domain.Identity, quizID int64, answers map[int64]string) (*dto.SubmitTestResponse, error)
	ViewAttempt(ctx context.Context, identity domain.Identity, attemptID int64) (*dto.ViewAttemptResponse, error)
	StudentChapters(ctx context.Context, identity domain.Identity, courseID int64, query string) (*dto.StudentChaptersResponse, error)
}

type quizService struct {
	courseRepo   domain.CourseRepository
	chapterRepo  domain.ChapterRepository
	quizRepo     domain.QuizRepository
	questionRepo domain.QuestionRepository
	attemptRepo  domain.AttemptRepository
	cache        domain.Cache
	now          func() time.Time
}

func NewQuizService(
	courseRepo domain.CourseRepository,
	chapterRepo domain.ChapterRepository,
	quizRepo domain.QuizRepository,
	questionRepo domain.QuestionRepository,
	attemptRepo domain.AttemptRepository,
	cache domain.Cache,
) QuizService {
	return &quizService{
		courseRepo:   courseRepo,
		chapterRepo:  chapterRepo,
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
		attemptRepo:  attemptRepo,
		cache:        cache,
		now:          time.Now,
	}
}

func (s *quizService) getQuiz(ctx context.Context, quizID int64) (*domain.Quiz, error) {
	quiz, err := s.quizRepo.GetQuizByID(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewNotFoundError("quiz", quizID)
	}
	return quiz, nil
}

func (s *quizService) TakeTest(ctx context.Context, quizID int64) (*dto.TakeTestResponse, error) {
	quiz, err := s.getQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	questions, err := s.questionRepo.ListQuestionsByQuiz(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("failed to list questions", err)
	}

	testQuestions := make([]dto.TestQuestion, len(questions))
	for i := range questions {
		testQuestions[i] = dto.TestQuestion{
			ID:                questions[i].ID,
			QuestionStatement: questions[i].QuestionStatement,
			Options:           questions[i].Options(),
		}
	}

	availability := quiz.Availability(s.now())
	return &dto.TakeTestResponse{
		Quiz:            toQuizResponse(*quiz),
		DueDate:         quiz.DateOfQuiz,
		IsAvailable:     availability.IsAvailable,
		IsDeadlineClose: availability.IsDeadlineClose,
		Questions:       testQuestions,
	}, nil
}

func (s *quizService) SubmitTest(ctx context.Context, identity domain.Identity, quizID int64, answers map[int64]string) (*dto.SubmitTestResponse, error) {
	if !identity.Authenticated() {
		return nil, domain.NewUnauthorizedError("please log in to submit a quiz")
	}

	quiz, err := s.getQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	questions, err := s.questionRepo.ListQuestionsByQuiz(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("failed to list questions", err)
	}

	score, sheet := domain.ScoreSubmission(questions, answers)
	attempt := &domain.StudentQuizAttempt{
		StudentID:      identity.UserID,
		QuizID:         quiz.ID,
		Score:          score,
		TotalQuestions: len(questions),
		AttemptDate:    s.now().UTC(),
		StudentAnswers: sheet,
	}
	if err := s.attemptRepo.CreateAttempt(ctx, attempt); err != nil {
		return nil, domain.NewInternalError("failed to save attempt", err)
	}

	if _, err := s.cache.Incr(ctx, cache.AdminStatsVersionKey()); err != nil {
		logger.Get().Warn("failed to invalidate admin stats cache", zap.Error(err))
	}

	logger.Get().Info("quiz submitted",
		zap.Int64("student_id", identity.UserID),
		zap.Int64("quiz_id", quiz.ID),
		zap.Int64("attempt_id", attempt.ID),
		zap.Int("score", score),
		zap.Int("total", attempt.TotalQuestions),
	)

	return &dto.SubmitTestResponse{
		AttemptID:      attempt.ID,
		Score:          score,
		TotalQuestions: attempt.TotalQuestions,
		Message:        "Quiz submitted",
	}, nil
}

func (s *quizService) ViewAttempt(ctx context.Context, identity domain.Identity, attemptID int64) (*dto.ViewAttemptResponse, error) {
	if !identity.Authenticated() {
		return nil, domain.NewUnauthorizedError("please log in to view attempts")
	}

	attempt, err := s.attemptRepo.GetAttemptByID(ctx, attemptID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get attempt", err)
	}
	if attempt == nil {
		return nil, domain.NewNotFoundError("attempt", attemptID)
	}
	if attempt.StudentID != identity.UserID && !identity.IsAdmin {
		return nil, domain.NewForbiddenError("attempt belongs to another student")
	}

	var (
		quiz      *domain.Quiz
		questions []domain.Question
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		quiz, err = s.getQuiz(gctx, attempt.QuizID)
		return err
	})
	g.Go(func() error {
		var err error
		questions, err = s.questionRepo.ListQuestionsByQuiz(gctx, attempt.QuizID)
		if err != nil {
			return domain.NewInternalError("failed to list questions", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.ViewAttemptResponse{
		Attempt:   toAttemptResponse(*attempt),
		Quiz:      toQuizResponse(*quiz),
		Questions: toQuestionResponses(questions),
	}, nil
}

func (s *quizService) StudentChapters(ctx context.Context, identity domain.Identity, courseID int64, query string) (*dto.StudentChaptersResponse, error) {
	if !identity.Authenticated() {
		return nil, domain.NewUnauthorizedError("please log in to view chapters")
	}

	course, err := s.courseRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get course", err)
	}
	if course == nil {
		return nil, domain.NewNotFoundError("course", courseID)
	}

	var (
		groups   []chapterQuizzes
		attempts []domain.StudentQuizAttempt
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		groups, err = loadChapterQuizzes(gctx, s.chapterRepo, s.quizRepo, courseID)
		return err
	})
	g.Go(func() error {
		var err error
		attempts, err = s.attemptRepo.ListAttemptsByStudent(gctx, identity.UserID)
		if err != nil {
			return domain.NewInternalError("failed to list attempts", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := s.now()
	latest := domain.LatestAttemptByQuiz(attempts)
	query = strings.ToLower(strings.TrimSpace(query))

	filtered := filterChapterQuizzes(groups, query)
	views := make([]dto.StudentChapterView, len(filtered))
	for i, group := range filtered {
		quizzes := make([]dto.StudentQuizView, len(group.quizzes))
		for j := range group.quizzes {
			quizzes[j] = studentQuizView(group.quizzes[j], latest, now)
		}
		views[i] = dto.StudentChapterView{
			Chapter: toChapterResponse(group.chapter),
			Quizzes: quizzes,
		}
	}

	return &dto.StudentChaptersResponse{
		Course:   toCourseResponse(*course),
		Query:    query,
		Chapters: views,
	}, nil
}

func studentQuizView(quiz domain.Quiz, latest map[int64]domain.StudentQuizAttempt, now time.Time) dto.StudentQuizView {
	availability := quiz.Availability(now)
	view := dto.StudentQuizView{
		QuizResponse:    toQuizResponse(quiz),
		IsAvailable:     availability.IsAvailable,
		IsDeadlineClose: availability.IsDeadlineClose,
	}
	if attempt, ok := latest[quiz.ID]; ok {
		view.Attempted = true
		view.LastAttempt = &dto.LastAttempt{
			AttemptID:      attempt.ID,
			Score:          attempt.Score,
			TotalQuestions: attempt.TotalQuestions,
		}
	}
	return view
}
