package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"jobswipe_backend/internal/auth"
	"jobswipe_backend/internal/config"
	"jobswipe_backend/internal/dto"
	"jobswipe_backend/internal/logger"
	"jobswipe_backend/internal/otp"
	"jobswipe_backend/internal/repositories"
	"jobswipe_backend/internal/sms"
	"jobswipe_backend/pkg/apperrors"

	"jobswipe_backend/internal/models"
)

// Срок жизни refresh токена
const refreshTokenTTL = 30 * 24 * time.Hour

type AuthService interface {
	RequestOTP(ctx context.Context, req *dto.RequestOTPInput) error
	VerifyOTP(ctx context.Context, req *dto.VerifyOTPInput) (*dto.AuthResponse, error)
	Refresh(refreshToken string) (*dto.AuthResponse, error)
	Logout(refreshToken string) error
}

type AuthServiceImpl struct {
	userRepo    repositories.UserRepository
	otpStore    otp.Store
	smsProvider sms.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	otpStore otp.Store,
	smsProvider sms.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		otpStore:    otpStore,
		smsProvider: smsProvider,
	}
}

// RequestOTP генерирует код, сохраняет его хеш с TTL и отправляет по SMS
func (s *AuthServiceImpl) RequestOTP(ctx context.Context, req *dto.RequestOTPInput) error {
	cfg := config.GetConfig()

	window := time.Duration(cfg.OTP.ResendInterval) * time.Second
	if err := s.otpStore.Throttle(ctx, req.PhoneNumber, window); err != nil {
		if apperrors.Is(err, otp.ErrThrottled) {
			return apperrors.ErrOTPThrottled
		}
		return apperrors.InternalError(err)
	}

	code, err := auth.GenerateOTPCode()
	if err != nil {
		return apperrors.InternalError(err)
	}

	hash, err := auth.HashOTPCode(code)
	if err != nil {
		return apperrors.InternalError(err)
	}

	ttl := time.Duration(cfg.OTP.CodeTTL) * time.Minute
	if err := s.otpStore.Save(ctx, req.PhoneNumber, hash, ttl); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.smsProvider.SendOTP(ctx, req.PhoneNumber, code); err != nil {
		// Код уже сохранен; доставка провалилась — пользователь может
		// запросить повторно после окна.
		logger.WithError(err).Error("failed to deliver otp", "phone", req.PhoneNumber)
		return apperrors.InternalError(err)
	}

	return nil
}

// VerifyOTP проверяет код и выдает пару токенов. Пользователь создается
// при первом успешном входе.
func (s *AuthServiceImpl) VerifyOTP(ctx context.Context, req *dto.VerifyOTPInput) (*dto.AuthResponse, error) {
	hash, err := s.otpStore.Get(ctx, req.PhoneNumber)
	if err != nil {
		if apperrors.Is(err, otp.ErrCodeNotFound) {
			return nil, apperrors.ErrInvalidOTP
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckOTPCode(req.Code, hash) {
		return nil, apperrors.ErrInvalidOTP
	}

	// Код одноразовый
	if err := s.otpStore.Delete(ctx, req.PhoneNumber); err != nil {
		logger.WithError(err).Warn("failed to delete used otp", "phone", req.PhoneNumber)
	}

	user, created, err := s.userRepo.GetOrCreateByPhone(req.PhoneNumber)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.issueTokens(user.ID, created)
}

// Refresh меняет refresh токен на новую пару (ротация)
func (s *AuthServiceImpl) Refresh(refreshToken string) (*dto.AuthResponse, error) {
	stored, err := s.userRepo.FindRefreshToken(refreshToken)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}

	if time.Now().After(stored.ExpiresAt) {
		_ = s.userRepo.DeleteRefreshToken(refreshToken)
		return nil, apperrors.ErrInvalidToken
	}

	// Старый токен гасится до выдачи нового
	if err := s.userRepo.DeleteRefreshToken(refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.issueTokens(stored.UserID, false)
}

// Logout отзывает refresh токен
func (s *AuthServiceImpl) Logout(refreshToken string) error {
	if err := s.userRepo.DeleteRefreshToken(refreshToken); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) issueTokens(userID string, isNewUser bool) (*dto.AuthResponse, error) {
	accessToken, err := auth.GenerateToken(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken, err := generateRandomToken()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	rt := &models.RefreshToken{
		UserID:    userID,
		Token:     refreshToken,
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.userRepo.CreateRefreshToken(rt); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		UserID:       userID,
		IsNewUser:    isNewUser,
	}, nil
}

func generateRandomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
