package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"quizmaster/internal/cache"
	"quizmaster/internal/domain"
	"quizmaster/internal/dto"
	"quizmaster/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// StatsService computes the aggregate statistics pages.
type StatsService interface {
	AdminStats(ctx context.Context) (*dto.AdminStatsResponse, error)
	UserStats(ctx context.Context, identity domain.Identity) (*dto.UserStatsResponse, error)
}

type statsService struct {
	userRepo    domain.UserRepository
	attemptRepo domain.AttemptRepository
	cache       domain.Cache
	cacheTTL    time.Duration
}

// NewStatsService caches admin statistics for cacheTTL; a zero TTL disables
// the cache.
func NewStatsService(userRepo domain.UserRepository, attemptRepo domain.AttemptRepository, cache domain.Cache, cacheTTL time.Duration) StatsService {
	return &statsService{
		userRepo:    userRepo,
		attemptRepo: attemptRepo,
		cache:       cache,
		cacheTTL:    cacheTTL,
	}
}

// adminStatsKey resolves the cache key for the current submission version.
// ok is false when the version cannot be read and caching should be skipped.
func (s *statsService) adminStatsKey(ctx context.Context) (key string, ok bool) {
	version, err := s.cache.Get(ctx, cache.AdminStatsVersionKey())
	switch {
	case errors.Is(err, domain.ErrCacheMiss):
		version = "0"
	case err != nil:
		logger.Get().Warn("admin stats cache unavailable", zap.Error(err))
		return "", false
	}
	return cache.AdminStatsKey(version), true
}

// AdminStats caches under the version read before querying; a submission
// during the queries moves readers to a new key.
func (s *statsService) AdminStats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	appLogger := logger.Get()

	var (
		key      string
		useCache bool
	)
	if s.cacheTTL > 0 {
		key, useCache = s.adminStatsKey(ctx)
	}
	if useCache {
		cached, err := s.cache.Get(ctx, key)
		switch {
		case err == nil:
			var resp dto.AdminStatsResponse
			jsonErr := json.Unmarshal([]byte(cached), &resp)
			if jsonErr == nil {
				return &resp, nil
			}
			appLogger.Warn("discarding malformed admin stats cache entry", zap.Error(jsonErr))
		case !errors.Is(err, domain.ErrCacheMiss):
			appLogger.Warn("admin stats cache unavailable", zap.Error(err))
		}
	}

	var (
		counts   map[string]int
		averages map[string]float64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		counts, err = s.userRepo.CountUsersByQualification(gctx, domain.StudentQualifications)
		return err
	})
	g.Go(func() error {
		var err error
		averages, err = s.attemptRepo.AverageScoreByQualification(gctx, domain.StudentQualifications)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("failed to compute statistics", err)
	}

	resp := &dto.AdminStatsResponse{UserCounts: counts, AverageScores: averages}

	if useCache {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.cache.Set(ctx, key, string(data), s.cacheTTL); err != nil {
				appLogger.Warn("failed to cache admin stats", zap.Error(err))
			}
		}
	}
	return resp, nil
}

// UserStats counts every stored attempt as submitted: attempts are only
// written once they have been scored.
func (s *statsService) UserStats(ctx context.Context, identity domain.Identity) (*dto.UserStatsResponse, error) {
	if !identity.Authenticated() {
		return nil, domain.NewUnauthorizedError("please log in to view your stats")
	}

	user, err := s.userRepo.GetUserByID(ctx, identity.UserID)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up user", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError("user", identity.UserID)
	}

	attempts, err := s.attemptRepo.ListAttemptsByStudent(ctx, identity.UserID)
	if err != nil {
		return nil, domain.NewInternalError("failed to list attempts", err)
	}

	total := 0
	for _, a := range attempts {
		total += a.Score
	}
	var average float64
	if len(attempts) > 0 {
		average = float64(total) / float64(len(attempts))
	}

	return &dto.UserStatsResponse{
		User:              *toUserProfile(user),
		TotalQuizzesTaken: len(attempts),
		AverageScore:      average,
		SubmittedCount:    len(attempts),
	}, nil
}
