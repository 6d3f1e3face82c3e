package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"quizmaster/internal/cache"
	"quizmaster/internal/config"
	"quizmaster/internal/domain"
	"quizmaster/internal/dto"
	"quizmaster/internal/logger"
	"quizmaster/internal/util"
	"quizmaster/internal/validation"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	dobLayout          = "2006-01-02"
	maxPasswordBytes   = 72
	adminFullName      = "Quiz Master"
	adminPasswordBytes = 16

	adminRedirect   = "/admin/dashboard"
	studentRedirect = "/"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidJWTToken    = errors.New("invalid jwt token")
	ErrTokenRevoked       = errors.New("token has been revoked")
)

var adminDOB = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// AuthService defines the interface for authentication operations.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserProfileResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	// Logout revokes the token until it would have expired. An invalid
	// token has nothing to revoke and is not an error.
	Logout(ctx context.Context, tokenString string) error
	ValidateToken(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
	GetUser(ctx context.Context, id int64) (*dto.UserProfileResponse, error)
	// EnsureAdmin creates the bootstrap administrator when it is missing.
	EnsureAdmin(ctx context.Context) error
}

type authService struct {
	userRepo  domain.UserRepository
	cache     domain.Cache
	jwtCfg    config.JWTConfig
	adminCfg  config.AdminConfig
	validator *validation.Validator
	now       func() time.Time
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(userRepo domain.UserRepository, cache domain.Cache, jwtCfg config.JWTConfig, adminCfg config.AdminConfig) (AuthService, error) {
	if jwtCfg.SecretKey == "" {
		return nil, errors.New("jwt secret key is not configured")
	}
	if jwtCfg.TTL <= 0 {
		return nil, errors.New("jwt ttl must be positive")
	}
	return &authService{
		userRepo:  userRepo,
		cache:     cache,
		jwtCfg:    jwtCfg,
		adminCfg:  adminCfg,
		validator: validation.NewValidator(),
		now:       time.Now,
	}, nil
}

func toUserProfile(u *domain.User) *dto.UserProfileResponse {
	return &dto.UserProfileResponse{
		ID:            u.ID,
		Username:      u.Username,
		FullName:      u.FullName,
		Qualification: u.Qualification,
		DOB:           u.DOB.Format(dobLayout),
		IsAdmin:       u.IsAdmin,
	}
}

func passwordTooLong() domain.ValidationErrors {
	return domain.ValidationErrors{domain.NewFieldError("password", fmt.Sprintf("password must be at most %d bytes", maxPasswordBytes))}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserProfileResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.FullName = strings.TrimSpace(req.FullName)
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	// The max tag counts runes; bcrypt limits bytes.
	if len(req.Password) > maxPasswordBytes {
		return nil, passwordTooLong()
	}

	dob, err := time.ParseInLocation(dobLayout, req.DOB, time.UTC)
	if err != nil {
		return nil, domain.ValidationErrors{domain.NewInvalidFormatError("dob", req.DOB)}
	}

	existing, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up user", err)
	}
	if existing != nil {
		return nil, domain.NewConflictError("username already exists").WithContext("username", req.Username)
	}

	user := &domain.User{
		Username:      req.Username,
		FullName:      req.FullName,
		Qualification: req.Qualification,
		DOB:           dob,
	}
	if err := user.SetPassword(req.Password); err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, passwordTooLong()
		}
		return nil, domain.NewInternalError("failed to hash password", err)
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		// Lost a race with a concurrent registration of the same name.
		if errors.Is(err, domain.ErrDuplicateUsername) {
			return nil, domain.NewConflictError("username already exists").WithContext("username", req.Username)
		}
		return nil, domain.NewInternalError("failed to create user", err)
	}

	logger.Get().Info("user registered", zap.Int64("user_id", user.ID), zap.String("qualification", user.Qualification))
	return toUserProfile(user), nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up user", err)
	}
	if user == nil || !user.CheckPassword(req.Password) {
		return nil, domain.NewError(domain.CodeUnauthorized, ErrInvalidCredentials.Error(), ErrInvalidCredentials)
	}

	token, expiresAt, err := s.createToken(user)
	if err != nil {
		return nil, domain.NewInternalError("failed to create session token", err)
	}

	redirect := studentRedirect
	if user.IsAdmin {
		redirect = adminRedirect
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Redirect:  redirect,
		IsAdmin:   user.IsAdmin,
	}, nil
}

func (s *authService) createToken(user *domain.User) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.jwtCfg.TTL)
	claims := &dto.AuthClaims{
		UserID:  user.ID,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        util.NewULID(),
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtCfg.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (s *authService) parseToken(tokenString string) (*dto.AuthClaims, error) {
	claims := &dto.AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtCfg.SecretKey), nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}
	if !token.Valid || claims.UserID == 0 || !util.IsULID(claims.ID) {
		return nil, ErrInvalidJWTToken
	}
	return claims, nil
}

// ValidateToken fails closed: when revocation cannot be checked the token
// is rejected.
func (s *authService) ValidateToken(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return nil, domain.NewError(domain.CodeUnauthorized, "invalid session token", err)
	}

	revoked, err := s.cache.Exists(ctx, cache.RevokedTokenKey(claims.ID))
	if err != nil {
		logger.Get().Error("failed to check token revocation", zap.String("jti", claims.ID), zap.Error(err))
		return nil, domain.NewError(domain.CodeUnauthorized, "session could not be verified", err)
	}
	if revoked {
		return nil, domain.NewError(domain.CodeUnauthorized, "session has ended", ErrTokenRevoked)
	}
	return claims, nil
}

func (s *authService) Logout(ctx context.Context, tokenString string) error {
	if tokenString == "" {
		return nil
	}
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return nil
	}

	ttl := claims.ExpiresAt.Time.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	if err := s.cache.Set(ctx, cache.RevokedTokenKey(claims.ID), "1", ttl); err != nil {
		return domain.NewInternalError("failed to end session", err)
	}
	logger.Get().Info("user logged out", zap.Int64("user_id", claims.UserID))
	return nil
}

func (s *authService) GetUser(ctx context.Context, id int64) (*dto.UserProfileResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up user", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError("user", id)
	}
	return toUserProfile(user), nil
}

func (s *authService) EnsureAdmin(ctx context.Context) error {
	appLogger := logger.Get()

	existing, err := s.userRepo.GetUserByUsername(ctx, s.adminCfg.Username)
	if err != nil {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}
	if existing != nil {
		if !existing.IsAdmin {
			appLogger.Warn("configured admin username belongs to a non-admin user", zap.String("username", existing.Username))
		}
		return nil
	}

	password := s.adminCfg.Password
	generated := password == ""
	if generated {
		password, err = randomPassword()
		if err != nil {
			return fmt.Errorf("failed to generate admin password: %w", err)
		}
	}

	admin := &domain.User{
		Username:      s.adminCfg.Username,
		FullName:      adminFullName,
		Qualification: domain.QualificationAdmin,
		DOB:           adminDOB,
		IsAdmin:       true,
	}
	if err := admin.SetPassword(password); err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	if err := s.userRepo.CreateUser(ctx, admin); err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			return nil
		}
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	if generated {
		appLogger.Warn("created admin user with a generated password; set admin.password to choose one",
			zap.String("username", admin.Username),
			zap.String("password", password),
		)
	} else {
		appLogger.Info("created admin user", zap.String("username", admin.Username))
	}
	return nil
}

func randomPassword() (string, error) {
	buf := make([]byte, adminPasswordBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
