package service

import (
	"quizmaster/internal/domain"
	"quizmaster/internal/dto"
)

func toCourseResponse(c domain.Course) dto.CourseResponse {
	return dto.CourseResponse{ID: c.ID, Name: c.Name, Category: c.Category}
}

func toCourseResponses(courses []domain.Course) []dto.CourseResponse {
	out := make([]dto.CourseResponse, len(courses))
	for i, c := range courses {
		out[i] = toCourseResponse(c)
	}
	return out
}

func toChapterResponse(c domain.Chapter) dto.ChapterResponse {
	return dto.ChapterResponse{ID: c.ID, Name: c.Name, CourseID: c.CourseID}
}

func toQuizResponse(q domain.Quiz) dto.QuizResponse {
	return dto.QuizResponse{
		ID:           q.ID,
		Name:         q.Name,
		CourseID:     q.CourseID,
		ChapterID:    q.ChapterID,
		DateOfQuiz:   q.DateOfQuiz,
		TimeDuration: q.TimeDuration,
		Remarks:      q.Remarks,
	}
}

func toQuizResponses(quizzes []domain.Quiz) []dto.QuizResponse {
	out := make([]dto.QuizResponse, len(quizzes))
	for i, q := range quizzes {
		out[i] = toQuizResponse(q)
	}
	return out
}

func toQuestionResponse(q domain.Question) dto.QuestionResponse {
	return dto.QuestionResponse{
		ID:                q.ID,
		QuestionStatement: q.QuestionStatement,
		QuizID:            q.QuizID,
		ChapterID:         q.ChapterID,
		Option1:           q.Option1,
		Option2:           q.Option2,
		Option3:           q.Option3,
		Option4:           q.Option4,
		CorrectAnswer:     q.CorrectAnswer,
	}
}

func toQuestionResponses(questions []domain.Question) []dto.QuestionResponse {
	out := make([]dto.QuestionResponse, len(questions))
	for i, q := range questions {
		out[i] = toQuestionResponse(q)
	}
	return out
}

func toAttemptResponse(a domain.StudentQuizAttempt) dto.AttemptResponse {
	return dto.AttemptResponse{
		ID:             a.ID,
		StudentID:      a.StudentID,
		QuizID:         a.QuizID,
		Score:          a.Score,
		TotalQuestions: a.TotalQuestions,
		AttemptDate:    a.AttemptDate,
		StudentAnswers: a.StudentAnswers,
	}
}
