package service

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"likebike_backend/internal/config"
	"likebike_backend/internal/model"
	"likebike_backend/internal/repository"
	"likebike_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	kakaoTokenURL = "https://kauth.kakao.com/oauth/token"
	kakaoUserURL  = "https://kapi.kakao.com/v2/user/me"
)

type AuthService struct {
	UserRepo  *repository.UserRepository
	TokenRepo *repository.RefreshTokenRepository
	Cfg       *config.Config
	HTTP      *http.Client
}

func NewAuthService(userRepo *repository.UserRepository, tokenRepo *repository.RefreshTokenRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo:  userRepo,
		TokenRepo: tokenRepo,
		Cfg:       cfg,
		HTTP:      &http.Client{Timeout: 10 * time.Second},
	}
}

type kakaoUser struct {
	KakaoID      string
	Nickname     string
	Email        string
	ProfileImage *string
}

// KakaoLogin exchanges an OAuth code for a Kakao identity, upserts the user
// and issues an access/refresh token pair. The refresh token is persisted so
// logout can revoke it.
func (s *AuthService) KakaoLogin(code string) (string, string, error) {
	kakao, err := s.fetchKakaoUser(code)
	if err != nil {
		return "", "", err
	}

	user, err := s.UserRepo.FindByKakaoID(kakao.KakaoID)
	if err == gorm.ErrRecordNotFound {
		user = &model.User{
			KakaoID:         kakao.KakaoID,
			Username:        kakao.Nickname,
			Email:           kakao.Email,
			ProfileImageURL: kakao.ProfileImage,
			Level:           1,
			LevelName:       util.LevelNameInterested,
			CreatedAt:       time.Now(),
		}
		if err := s.UserRepo.Create(user); err != nil {
			return "", "", err
		}
	} else if err != nil {
		return "", "", err
	}

	accessToken, err := util.GenerateAccessToken(user.ID, s.Cfg.JWT.Secret, s.Cfg.JWT.AccessExpire)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := util.GenerateRefreshToken(user.ID, s.Cfg.JWT.Secret, s.Cfg.JWT.RefreshExpire)
	if err != nil {
		return "", "", err
	}

	err = s.TokenRepo.Create(&model.RefreshToken{
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: time.Now().Add(s.Cfg.JWT.RefreshExpire),
	})
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// Refresh issues a new access token for the holder of a valid refresh token.
func (s *AuthService) Refresh(tokenString string) (string, error) {
	claims, err := util.ParseJWT(tokenString, s.Cfg.JWT.Secret)
	if err != nil {
		return "", err
	}
	if claims.TokenType != util.TokenTypeRefresh {
		return "", util.ErrInvalidTokenType
	}
	return util.GenerateAccessToken(claims.UserID, s.Cfg.JWT.Secret, s.Cfg.JWT.AccessExpire)
}

// Logout revokes every refresh token of the user. Best effort: an invalid
// token still yields a successful logout.
func (s *AuthService) Logout(tokenString string) {
	claims, err := util.ParseJWT(tokenString, s.Cfg.JWT.Secret)
	if err != nil {
		return
	}
	s.TokenRepo.DeleteByUser(claims.UserID)
}

func (s *AuthService) GetCurrentUser(c *gin.Context) *model.User {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		return nil
	}

	user, err := s.UserRepo.FindByID(claims.UserID)
	if err != nil {
		return nil
	}
	return user
}

// fetchKakaoUser resolves the OAuth code against Kakao. Without configured
// Kakao credentials a fresh demo identity is issued instead, so local
// development works end to end.
func (s *AuthService) fetchKakaoUser(code string) (*kakaoUser, error) {
	if s.Cfg.Kakao.ClientID == "" {
		return &kakaoUser{
			KakaoID:  "demo_" + uuid.New().String(),
			Nickname: "데모유저",
			Email:    "demo@likebike.kr",
		}, nil
	}

	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("client_id", s.Cfg.Kakao.ClientID)
	form.Set("client_secret", s.Cfg.Kakao.ClientSecret)
	form.Set("code", code)

	resp, err := s.HTTP.Post(kakaoTokenURL, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("kakao token request failed: %w", err)
	}
	defer resp.Body.Close()

	var tokenData struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenData); err != nil {
		return nil, fmt.Errorf("kakao token parse failed: %w", err)
	}

	req, err := http.NewRequest(http.MethodGet, kakaoUserURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+tokenData.AccessToken)

	userRes, err := s.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("kakao user request failed: %w", err)
	}
	defer userRes.Body.Close()

	var userData struct {
		ID           int64 `json:"id"`
		KakaoAccount *struct {
			Email *string `json:"email"`
		} `json:"kakao_account"`
		Properties *struct {
			Nickname     *string `json:"nickname"`
			ProfileImage *string `json:"profile_image"`
		} `json:"properties"`
	}
	if err := json.NewDecoder(userRes.Body).Decode(&userData); err != nil {
		return nil, fmt.Errorf("kakao user parse failed: %w", err)
	}

	kakao := &kakaoUser{
		KakaoID:  strconv.FormatInt(userData.ID, 10),
		Nickname: "유저",
	}
	if userData.Properties != nil {
		if userData.Properties.Nickname != nil {
			kakao.Nickname = *userData.Properties.Nickname
		}
		kakao.ProfileImage = userData.Properties.ProfileImage
	}
	if userData.KakaoAccount != nil && userData.KakaoAccount.Email != nil {
		kakao.Email = *userData.KakaoAccount.Email
	}

	return kakao, nil
}
