package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"quizmaster/internal/cache"
	"quizmaster/internal/domain"
	"quizmaster/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStatsService_AdminStats_CacheMiss(t *testing.T) {
	users := new(MockUserRepository)
	attempts := new(MockAttemptRepository)
	mockCache := new(MockCache)
	svc := NewStatsService(users, attempts, mockCache, time.Minute)
	ctx := context.Background()

	counts := map[string]int{"Foundation": 2, "Diploma": 0, "Degree": 1}
	averages := map[string]float64{"Foundation": 1.5, "Diploma": 0, "Degree": 3}

	mockCache.On("Get", ctx, cache.AdminStatsVersionKey()).Return("", domain.ErrCacheMiss)
	mockCache.On("Get", ctx, cache.AdminStatsKey("0")).Return("", domain.ErrCacheMiss)
	users.On("CountUsersByQualification", mock.Anything, domain.StudentQualifications).Return(counts, nil)
	attempts.On("AverageScoreByQualification", mock.Anything, domain.StudentQualifications).Return(averages, nil)
	mockCache.On("Set", ctx, cache.AdminStatsKey("0"), mock.MatchedBy(func(payload string) bool {
		var cached dto.AdminStatsResponse
		return json.Unmarshal([]byte(payload), &cached) == nil && cached.UserCounts["Foundation"] == 2
	}), time.Minute).Return(nil)

	resp, err := svc.AdminStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, counts, resp.UserCounts)
	assert.Equal(t, averages, resp.AverageScores)
	mockCache.AssertExpectations(t)
}

func TestStatsService_AdminStats_CacheHit(t *testing.T) {
	users := new(MockUserRepository)
	attempts := new(MockAttemptRepository)
	mockCache := new(MockCache)
	svc := NewStatsService(users, attempts, mockCache, time.Minute)
	ctx := context.Background()

	mockCache.On("Get", ctx, cache.AdminStatsVersionKey()).Return("5", nil)
	mockCache.On("Get", ctx, cache.AdminStatsKey("5")).
		Return(`{"user_counts":{"Degree":4},"average_scores":{"Degree":2.5}}`, nil)

	resp, err := svc.AdminStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, resp.UserCounts["Degree"])
	assert.Equal(t, 2.5, resp.AverageScores["Degree"])
	users.AssertNotCalled(t, "CountUsersByQualification", mock.Anything, mock.Anything)
}

func TestStatsService_AdminStats_SubmissionDuringQueryMovesKey(t *testing.T) {
	users := new(MockUserRepository)
	attempts := new(MockAttemptRepository)
	mockCache := new(MockCache)
	svc := NewStatsService(users, attempts, mockCache, time.Minute)
	quizSvc, qm := newTestQuizService()
	quizSvc.cache = mockCache
	ctx := context.Background()

	// The version is 2 when the stats are read; a submission bumps it to 3
	// while the aggregates are being computed.
	mockCache.On("Get", ctx, cache.AdminStatsVersionKey()).Return("2", nil).Once()
	mockCache.On("Get", ctx, cache.AdminStatsKey("2")).Return("", domain.ErrCacheMiss)
	qm.quizzes.On("GetQuizByID", ctx, int64(7)).Return(&domain.Quiz{ID: 7}, nil)
	qm.questions.On("ListQuestionsByQuiz", ctx, int64(7)).Return(twoQuestions, nil)
	qm.attempts.On("CreateAttempt", ctx, mock.Anything).Return(nil)
	mockCache.On("Incr", ctx, cache.AdminStatsVersionKey()).Return(int64(3), nil)
	users.On("CountUsersByQualification", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		_, err := quizSvc.SubmitTest(ctx, domain.Identity{UserID: 3}, 7, map[int64]string{1: "A"})
		assert.NoError(t, err)
	}).Return(map[string]int{"Diploma": 1}, nil)
	attempts.On("AverageScoreByQualification", mock.Anything, mock.Anything).Return(map[string]float64{}, nil)
	mockCache.On("Set", ctx, cache.AdminStatsKey("2"), mock.Anything, time.Minute).Return(nil)

	_, err := svc.AdminStats(ctx)
	require.NoError(t, err)

	// Readers now look under version 3 and recompute.
	mockCache.On("Get", ctx, cache.AdminStatsVersionKey()).Return("3", nil).Once()
	mockCache.On("Get", ctx, cache.AdminStatsKey("3")).Return("", domain.ErrCacheMiss)
	mockCache.On("Set", ctx, cache.AdminStatsKey("3"), mock.Anything, time.Minute).Return(nil)

	_, err = svc.AdminStats(ctx)
	require.NoError(t, err)
	users.AssertNumberOfCalls(t, "CountUsersByQualification", 2)
	mockCache.AssertExpectations(t)
}

func TestStatsService_AdminStats_VersionUnreadableSkipsCache(t *testing.T) {
	users := new(MockUserRepository)
	attempts := new(MockAttemptRepository)
	mockCache := new(MockCache)
	svc := NewStatsService(users, attempts, mockCache, time.Minute)
	ctx := context.Background()

	mockCache.On("Get", ctx, cache.AdminStatsVersionKey()).Return("", errors.New("redis down"))
	users.On("CountUsersByQualification", mock.Anything, mock.Anything).Return(map[string]int{}, nil)
	attempts.On("AverageScoreByQualification", mock.Anything, mock.Anything).Return(map[string]float64{}, nil)

	_, err := svc.AdminStats(ctx)
	require.NoError(t, err)
	mockCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestStatsService_AdminStats_NoCacheWhenTTLZero(t *testing.T) {
	users := new(MockUserRepository)
	attempts := new(MockAttemptRepository)
	mockCache := new(MockCache)
	svc := NewStatsService(users, attempts, mockCache, 0)

	users.On("CountUsersByQualification", mock.Anything, mock.Anything).Return(map[string]int{}, nil)
	attempts.On("AverageScoreByQualification", mock.Anything, mock.Anything).Return(map[string]float64{}, nil)

	_, err := svc.AdminStats(context.Background())
	require.NoError(t, err)
	mockCache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	mockCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestStatsService_AdminStats_QueryFailure(t *testing.T) {
	users := new(MockUserRepository)
	attempts := new(MockAttemptRepository)
	svc := NewStatsService(users, attempts, new(MockCache), 0)

	users.On("CountUsersByQualification", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))
	attempts.On("AverageScoreByQualification", mock.Anything, mock.Anything).Return(map[string]float64{}, nil)

	_, err := svc.AdminStats(context.Background())
	assert.True(t, domain.HasCode(err, domain.CodeInternal))
}

func TestStatsService_UserStats(t *testing.T) {
	users := new(MockUserRepository)
	attempts := new(MockAttemptRepository)
	svc := NewStatsService(users, attempts, new(MockCache), 0)
	ctx := context.Background()

	users.On("GetUserByID", ctx, int64(3)).Return(&domain.User{ID: 3, Username: "s@example.com"}, nil)
	attempts.On("ListAttemptsByStudent", ctx, int64(3)).Return([]domain.StudentQuizAttempt{
		{ID: 1, Score: 1}, {ID: 2, Score: 2},
	}, nil)

	resp, err := svc.UserStats(ctx, domain.Identity{UserID: 3})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.TotalQuizzesTaken)
	assert.Equal(t, 2, resp.SubmittedCount)
	assert.InDelta(t, 1.5, resp.AverageScore, 1e-9)
	assert.Equal(t, "s@example.com", resp.User.Username)
}

func TestStatsService_UserStats_NoAttempts(t *testing.T) {
	users := new(MockUserRepository)
	attempts := new(MockAttemptRepository)
	svc := NewStatsService(users, attempts, new(MockCache), 0)
	ctx := context.Background()

	users.On("GetUserByID", ctx, int64(3)).Return(&domain.User{ID: 3}, nil)
	attempts.On("ListAttemptsByStudent", ctx, int64(3)).Return([]domain.StudentQuizAttempt{}, nil)

	resp, err := svc.UserStats(ctx, domain.Identity{UserID: 3})
	require.NoError(t, err)
	assert.Zero(t, resp.AverageScore)

	_, err = svc.UserStats(ctx, domain.Identity{})
	assert.True(t, domain.HasCode(err, domain.CodeUnauthorized))
}
