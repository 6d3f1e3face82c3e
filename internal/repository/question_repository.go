package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quizmaster/internal/domain"
	"quizmaster/internal/repository/models"
	"quizmaster/internal/util"

	"github.com/jmoiron/sqlx"
)

const questionColumns = `id, question_statement, quiz_id, chapter_id, option1, option2, option3, option4, correct_answer`

type sqlxQuestionRepository struct {
	db *sqlx.DB
}

func NewSQLXQuestionRepository(db *sqlx.DB) domain.QuestionRepository {
	return &sqlxQuestionRepository{db: db}
}

func toDomainQuestion(m *models.Question) domain.Question {
	return domain.Question{
		ID:                m.ID,
		QuestionStatement: m.QuestionStatement,
		QuizID:            m.QuizID,
		ChapterID:         m.ChapterID,
		Option1:           m.Option1,
		Option2:           m.Option2,
		Option3:           m.Option3.String,
		Option4:           m.Option4.String,
		CorrectAnswer:     m.CorrectAnswer,
	}
}

func fromDomainQuestion(q *domain.Question) models.Question {
	return models.Question{
		ID:                q.ID,
		QuestionStatement: q.QuestionStatement,
		QuizID:            q.QuizID,
		ChapterID:         q.ChapterID,
		Option1:           q.Option1,
		Option2:           q.Option2,
		Option3:           util.StringToNullString(q.Option3),
		Option4:           util.StringToNullString(q.Option4),
		CorrectAnswer:     q.CorrectAnswer,
	}
}

func (r *sqlxQuestionRepository) CreateQuestion(ctx context.Context, question *domain.Question) error {
	m := fromDomainQuestion(question)
	query := `INSERT INTO questions (question_statement, quiz_id, chapter_id, option1, option2, option3, option4, correct_answer)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`

	var id int64
	err := GetExecutor(ctx, r.db).GetContext(ctx, &id, query,
		m.QuestionStatement, m.QuizID, m.ChapterID, m.Option1, m.Option2, m.Option3, m.Option4, m.CorrectAnswer)
	if err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	question.ID = id
	return nil
}

func (r *sqlxQuestionRepository) GetQuestionByID(ctx context.Context, id int64) (*domain.Question, error) {
	var m models.Question
	query := `SELECT ` + questionColumns + ` FROM questions WHERE id = $1`
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question by id: %w", err)
	}
	question := toDomainQuestion(&m)
	return &question, nil
}

func (r *sqlxQuestionRepository) ListQuestionsByQuiz(ctx context.Context, quizID int64) ([]domain.Question, error) {
	var rows []models.Question
	query := `SELECT ` + questionColumns + ` FROM questions WHERE quiz_id = $1 ORDER BY id`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, quizID); err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	questions := make([]domain.Question, len(rows))
	for i := range rows {
		questions[i] = toDomainQuestion(&rows[i])
	}
	return questions, nil
}

func (r *sqlxQuestionRepository) UpdateQuestion(ctx context.Context, question *domain.Question) error {
	m := fromDomainQuestion(question)
	query := `UPDATE questions SET question_statement = $1, option1 = $2, option2 = $3, option3 = $4,
	          option4 = $5, correct_answer = $6 WHERE id = $7`
	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, query,
		m.QuestionStatement, m.Option1, m.Option2, m.Option3, m.Option4, m.CorrectAnswer, m.ID)
	if err != nil {
		return fmt.Errorf("failed to update question: %w", err)
	}
	return expectOneRow(result)
}

func (r *sqlxQuestionRepository) DeleteQuestion(ctx context.Context, id int64) error {
	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	return expectOneRow(result)
}

func (r *sqlxQuestionRepository) DeleteQuestionsByQuiz(ctx context.Context, quizID int64) error {
	if _, err := GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM questions WHERE quiz_id = $1`, quizID); err != nil {
		return fmt.Errorf("failed to delete questions of quiz: %w", err)
	}
	return nil
}

// DeleteQuestionsByChapter removes questions tagged with the chapter as well
// as those belonging to any of its quizzes.
func (r *sqlxQuestionRepository) DeleteQuestionsByChapter(ctx context.Context, chapterID int64) error {
	query := `DELETE FROM questions
	          WHERE chapter_id = $1 OR quiz_id IN (SELECT id FROM quizzes WHERE chapter_id = $1)`
	if _, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, chapterID); err != nil {
		return fmt.Errorf("failed to delete questions of chapter: %w", err)
	}
	return nil
}

func (r *sqlxQuestionRepository) DeleteQuestionsByCourse(ctx context.Context, courseID int64) error {
	query := `DELETE FROM questions
	          WHERE chapter_id IN (SELECT id FROM chapters WHERE course_id = $1)
	             OR quiz_id IN (SELECT id FROM quizzes WHERE course_id = $1
	                            OR chapter_id IN (SELECT id FROM chapters WHERE course_id = $1))`
	if _, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, courseID); err != nil {
		return fmt.Errorf("failed to delete questions of course: %w", err)
	}
	return nil
}
