package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"quizmaster/internal/domain"
	"quizmaster/internal/dto"
	"quizmaster/internal/logger"
	"quizmaster/internal/validation"

	"go.uber.org/zap"
)

// quizDateLayouts are tried in order. Layouts without a zone are read as UTC.
var quizDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseQuizDate parses a quiz date as sent by the admin forms.
func ParseQuizDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range quizDateLayouts {
		t, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// ContentService implements the administrator's content management. All
// multi-row deletes run in one transaction.
type ContentService interface {
	AddCourse(ctx context.Context, req *dto.CourseRequest) (*dto.CourseResponse, error)
	GetCourse(ctx context.Context, id int64) (*dto.CourseResponse, error)
	EditCourse(ctx context.Context, id int64, req *dto.EditCourseRequest) (*dto.CourseResponse, error)
	DeleteCourse(ctx context.Context, id int64) error

	AddChapter(ctx context.Context, req *dto.ChapterRequest) (*dto.ChapterResponse, error)
	GetChapter(ctx context.Context, id int64) (*dto.ChapterResponse, error)
	EditChapter(ctx context.Context, id int64, req *dto.EditChapterRequest) (*dto.ChapterResponse, error)
	DeleteChapter(ctx context.Context, id int64) error

	AddQuiz(ctx context.Context, chapterID int64, req *dto.QuizRequest) (*dto.QuizResponse, error)
	GetQuiz(ctx context.Context, id int64) (*dto.QuizResponse, error)
	EditQuiz(ctx context.Context, id int64, req *dto.QuizRequest) (*dto.QuizResponse, error)
	DeleteQuiz(ctx context.Context, id int64) error

	AddQuestion(ctx context.Context, req *dto.QuestionRequest) (*dto.QuestionResponse, error)
	GetQuestion(ctx context.Context, id int64) (*dto.QuestionResponse, error)
	EditQuestion(ctx context.Context, id int64, req *dto.EditQuestionRequest) (*dto.QuestionResponse, error)
	DeleteQuestion(ctx context.Context, id int64) error
}

type contentService struct {
	courseRepo   domain.CourseRepository
	chapterRepo  domain.ChapterRepository
	quizRepo     domain.QuizRepository
	questionRepo domain.QuestionRepository
	attemptRepo  domain.AttemptRepository
	txManager    domain.TransactionManager
	validator    *validation.Validator
	now          func() time.Time
}

func NewContentService(
	courseRepo domain.CourseRepository,
	chapterRepo domain.ChapterRepository,
	quizRepo domain.QuizRepository,
	questionRepo domain.QuestionRepository,
	attemptRepo domain.AttemptRepository,
	txManager domain.TransactionManager,
) ContentService {
	return &contentService{
		courseRepo:   courseRepo,
		chapterRepo:  chapterRepo,
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
		attemptRepo:  attemptRepo,
		txManager:    txManager,
		validator:    validation.NewValidator(),
		now:          time.Now,
	}
}

// mutationError maps a repository error of an update or delete.
func mutationError(err error, entity string, id int64, action string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewNotFoundError(entity, id)
	}
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	logger.Get().Error("content mutation failed",
		zap.String("entity", entity),
		zap.Int64("id", id),
		zap.String("action", action),
		zap.Error(err),
	)
	return domain.NewInternalError("failed to "+action+" "+entity, err)
}

// --- Courses ---

func (s *contentService) AddCourse(ctx context.Context, req *dto.CourseRequest) (*dto.CourseResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Category = strings.TrimSpace(req.Category)
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	course := &domain.Course{Name: req.Name, Category: req.Category}
	if err := s.courseRepo.CreateCourse(ctx, course); err != nil {
		return nil, mutationError(err, "course", 0, "create")
	}
	resp := toCourseResponse(*course)
	return &resp, nil
}

func (s *contentService) getCourse(ctx context.Context, id int64) (*domain.Course, error) {
	course, err := s.courseRepo.GetCourseByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("failed to get course", err)
	}
	if course == nil {
		return nil, domain.NewNotFoundError("course", id)
	}
	return course, nil
}

func (s *contentService) GetCourse(ctx context.Context, id int64) (*dto.CourseResponse, error) {
	course, err := s.getCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toCourseResponse(*course)
	return &resp, nil
}

func (s *contentService) EditCourse(ctx context.Context, id int64, req *dto.EditCourseRequest) (*dto.CourseResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	course, err := s.getCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	course.Name = req.Name
	if err := s.courseRepo.UpdateCourse(ctx, course); err != nil {
		return nil, mutationError(err, "course", id, "update")
	}
	resp := toCourseResponse(*course)
	return &resp, nil
}

// DeleteCourse removes the course with every chapter, quiz, question and
// attempt that belongs to it.
func (s *contentService) DeleteCourse(ctx context.Context, id int64) error {
	if _, err := s.getCourse(ctx, id); err != nil {
		return err
	}

	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.attemptRepo.DeleteAttemptsByCourse(ctx, id); err != nil {
			return err
		}
		if err := s.questionRepo.DeleteQuestionsByCourse(ctx, id); err != nil {
			return err
		}
		if err := s.quizRepo.DeleteQuizzesByCourse(ctx, id); err != nil {
			return err
		}
		if err := s.chapterRepo.DeleteChaptersByCourse(ctx, id); err != nil {
			return err
		}
		return s.courseRepo.DeleteCourse(ctx, id)
	})
	if err != nil {
		return mutationError(err, "course", id, "delete")
	}
	logger.Get().Info("course deleted", zap.Int64("course_id", id))
	return nil
}

// --- Chapters ---

func (s *contentService) AddChapter(ctx context.Context, req *dto.ChapterRequest) (*dto.ChapterResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	if _, err := s.getCourse(ctx, req.CourseID); err != nil {
		return nil, err
	}

	chapter := &domain.Chapter{Name: req.Name, CourseID: req.CourseID}
	if err := s.chapterRepo.CreateChapter(ctx, chapter); err != nil {
		return nil, mutationError(err, "chapter", 0, "create")
	}
	resp := toChapterResponse(*chapter)
	return &resp, nil
}

func (s *contentService) getChapter(ctx context.Context, id int64) (*domain.Chapter, error) {
	chapter, err := s.chapterRepo.GetChapterByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("failed to get chapter", err)
	}
	if chapter == nil {
		return nil, domain.NewNotFoundError("chapter", id)
	}
	return chapter, nil
}

func (s *contentService) GetChapter(ctx context.Context, id int64) (*dto.ChapterResponse, error) {
	chapter, err := s.getChapter(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toChapterResponse(*chapter)
	return &resp, nil
}

func (s *contentService) EditChapter(ctx context.Context, id int64, req *dto.EditChapterRequest) (*dto.ChapterResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	chapter, err := s.getChapter(ctx, id)
	if err != nil {
		return nil, err
	}
	chapter.Name = req.Name
	if err := s.chapterRepo.UpdateChapter(ctx, chapter); err != nil {
		return nil, mutationError(err, "chapter", id, "update")
	}
	resp := toChapterResponse(*chapter)
	return &resp, nil
}

func (s *contentService) DeleteChapter(ctx context.Context, id int64) error {
	if _, err := s.getChapter(ctx, id); err != nil {
		return err
	}

	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.attemptRepo.DeleteAttemptsByChapter(ctx, id); err != nil {
			return err
		}
		if err := s.questionRepo.DeleteQuestionsByChapter(ctx, id); err != nil {
			return err
		}
		if err := s.quizRepo.DeleteQuizzesByChapter(ctx, id); err != nil {
			return err
		}
		return s.chapterRepo.DeleteChapter(ctx, id)
	})
	if err != nil {
		return mutationError(err, "chapter", id, "delete")
	}
	logger.Get().Info("chapter deleted", zap.Int64("chapter_id", id))
	return nil
}

// --- Quizzes ---

func (s *contentService) AddQuiz(ctx context.Context, chapterID int64, req *dto.QuizRequest) (*dto.QuizResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.DateOfQuiz) == "" {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("date_of_quiz")}
	}
	date, err := ParseQuizDate(req.DateOfQuiz)
	if err != nil {
		return nil, domain.ValidationErrors{domain.NewInvalidFormatError("date_of_quiz", req.DateOfQuiz)}
	}
	if date.Before(s.now()) {
		return nil, domain.ValidationErrors{domain.NewFieldError("date_of_quiz", "date_of_quiz cannot be in the past")}
	}

	chapter, err := s.getChapter(ctx, chapterID)
	if err != nil {
		return nil, err
	}

	quiz := &domain.Quiz{
		Name:         req.Name,
		CourseID:     chapter.CourseID,
		ChapterID:    chapter.ID,
		DateOfQuiz:   date,
		TimeDuration: strings.TrimSpace(req.TimeDuration),
		Remarks:      strings.TrimSpace(req.Remarks),
	}
	if err := s.quizRepo.CreateQuiz(ctx, quiz); err != nil {
		return nil, mutationError(err, "quiz", 0, "create")
	}
	resp := toQuizResponse(*quiz)
	return &resp, nil
}

func (s *contentService) getQuiz(ctx context.Context, id int64) (*domain.Quiz, error) {
	quiz, err := s.quizRepo.GetQuizByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewNotFoundError("quiz", id)
	}
	return quiz, nil
}

func (s *contentService) GetQuiz(ctx context.Context, id int64) (*dto.QuizResponse, error) {
	quiz, err := s.getQuiz(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toQuizResponse(*quiz)
	return &resp, nil
}

// EditQuiz keeps the stored date when none is given. Past dates are
// accepted here so that expired quizzes can still be corrected.
func (s *contentService) EditQuiz(ctx context.Context, id int64, req *dto.QuizRequest) (*dto.QuizResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	quiz, err := s.getQuiz(ctx, id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.DateOfQuiz) != "" {
		date, err := ParseQuizDate(req.DateOfQuiz)
		if err != nil {
			return nil, domain.ValidationErrors{domain.NewInvalidFormatError("date_of_quiz", req.DateOfQuiz)}
		}
		quiz.DateOfQuiz = date
	}
	quiz.Name = req.Name
	quiz.TimeDuration = strings.TrimSpace(req.TimeDuration)
	quiz.Remarks = strings.TrimSpace(req.Remarks)

	if err := s.quizRepo.UpdateQuiz(ctx, quiz); err != nil {
		return nil, mutationError(err, "quiz", id, "update")
	}
	resp := toQuizResponse(*quiz)
	return &resp, nil
}

func (s *contentService) DeleteQuiz(ctx context.Context, id int64) error {
	if _, err := s.getQuiz(ctx, id); err != nil {
		return err
	}

	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.attemptRepo.DeleteAttemptsByQuiz(ctx, id); err != nil {
			return err
		}
		if err := s.questionRepo.DeleteQuestionsByQuiz(ctx, id); err != nil {
			return err
		}
		return s.quizRepo.DeleteQuiz(ctx, id)
	})
	if err != nil {
		return mutationError(err, "quiz", id, "delete")
	}
	logger.Get().Info("quiz deleted", zap.Int64("quiz_id", id))
	return nil
}

// --- Questions ---

// AddQuestion does not check that the correct answer is one of the options.
func (s *contentService) AddQuestion(ctx context.Context, req *dto.QuestionRequest) (*dto.QuestionResponse, error) {
	trimQuestion(&req.QuestionStatement, &req.Option1, &req.Option2, &req.Option3, &req.Option4, &req.CorrectAnswer)
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	if _, err := s.getQuiz(ctx, req.QuizID); err != nil {
		return nil, err
	}
	if _, err := s.getChapter(ctx, req.ChapterID); err != nil {
		return nil, err
	}

	question := &domain.Question{
		QuestionStatement: req.QuestionStatement,
		QuizID:            req.QuizID,
		ChapterID:         req.ChapterID,
		Option1:           req.Option1,
		Option2:           req.Option2,
		Option3:           req.Option3,
		Option4:           req.Option4,
		CorrectAnswer:     req.CorrectAnswer,
	}
	if err := s.questionRepo.CreateQuestion(ctx, question); err != nil {
		return nil, mutationError(err, "question", 0, "create")
	}
	resp := toQuestionResponse(*question)
	return &resp, nil
}

func (s *contentService) getQuestion(ctx context.Context, id int64) (*domain.Question, error) {
	question, err := s.questionRepo.GetQuestionByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("failed to get question", err)
	}
	if question == nil {
		return nil, domain.NewNotFoundError("question", id)
	}
	return question, nil
}

func (s *contentService) GetQuestion(ctx context.Context, id int64) (*dto.QuestionResponse, error) {
	question, err := s.getQuestion(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toQuestionResponse(*question)
	return &resp, nil
}

func (s *contentService) EditQuestion(ctx context.Context, id int64, req *dto.EditQuestionRequest) (*dto.QuestionResponse, error) {
	trimQuestion(&req.QuestionStatement, &req.Option1, &req.Option2, &req.Option3, &req.Option4, &req.CorrectAnswer)
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	question, err := s.getQuestion(ctx, id)
	if err != nil {
		return nil, err
	}
	question.QuestionStatement = req.QuestionStatement
	question.Option1 = req.Option1
	question.Option2 = req.Option2
	question.Option3 = req.Option3
	question.Option4 = req.Option4
	question.CorrectAnswer = req.CorrectAnswer

	if err := s.questionRepo.UpdateQuestion(ctx, question); err != nil {
		return nil, mutationError(err, "question", id, "update")
	}
	resp := toQuestionResponse(*question)
	return &resp, nil
}

func (s *contentService) DeleteQuestion(ctx context.Context, id int64) error {
	if err := s.questionRepo.DeleteQuestion(ctx, id); err != nil {
		return mutationError(err, "question", id, "delete")
	}
	return nil
}

func trimQuestion(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}
