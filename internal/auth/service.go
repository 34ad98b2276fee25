package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	apperrors "match-tracker-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

// RefreshTokenData stores information about a refresh token
type RefreshTokenData struct {
	UserID      int64     `json:"user_id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Provider    string    `json:"provider"`
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// AuthService provides authentication functionality
type AuthService struct {
	config        *AuthConfig
	githubClients map[string]*GitHubClient
	refreshTokens map[string]*RefreshTokenData // In-memory store for refresh tokens
	tokenMutex    sync.RWMutex                 // Protect the refresh token store
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID               int64  `json:"user_id" example:"12345"`
	Username             string `json:"username" example:"johndoe"`
	Email                string `json:"email" example:"john.doe@example.com"`
	Provider             string `json:"provider" example:"github"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// AuthHandlerResponse represents the response for the auth callback endpoint
type AuthHandlerResponse struct {
	AccessToken  string      `json:"accessToken"`
	TokenType    string      `json:"tokenType"`
	ExpiresIn    int64       `json:"expiresIn"`
	RefreshToken string      `json:"refreshToken,omitempty"`
	Profile      UserProfile `json:"profile"`
}

// RefreshTokenRequest represents the request for token refresh
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// AuthLogoutResponse represents the response from the logout endpoint
type AuthLogoutResponse struct {
	Message string `json:"message" example:"Logged out successfully"`
}

// AuthValidateResponse represents the response from the token validation endpoint
type AuthValidateResponse struct {
	Valid  bool        `json:"valid" example:"true"`
	Claims *AuthClaims `json:"claims"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	githubClients := make(map[string]*GitHubClient)
	for providerName, providerConfig := range config.Providers {
		providerConfig := providerConfig
		githubClients[providerName] = NewGitHubClient(&providerConfig)
	}

	return &AuthService{
		config:        config,
		githubClients: githubClients,
		refreshTokens: make(map[string]*RefreshTokenData),
		tokenMutex:    sync.RWMutex{},
	}, nil
}

// GetAuthURL generates OAuth2 authorization URL
func (s *AuthService) GetAuthURL(provider, state string) (string, error) {
	_, err := s.config.GetProvider(provider)
	if err != nil {
		return "", err
	}

	githubClient, exists := s.githubClients[provider]
	if !exists {
		return "", fmt.Errorf("GitHub client not found for provider %s", provider)
	}

	callbackURL := fmt.Sprintf("%s/api/auth/%s/handler/frame", s.config.RedirectURL, provider)

	oauth2Config := githubClient.GetOAuth2Config(callbackURL)
	authURL := oauth2Config.AuthCodeURL(state, oauth2.AccessTypeOffline)

	return authURL, nil
}

// HandleCallback processes OAuth2 callback and returns user information
func (s *AuthService) HandleCallback(ctx context.Context, provider, code, state string) (*AuthHandlerResponse, error) {
	_, err := s.config.GetProvider(provider)
	if err != nil {
		return nil, err
	}

	githubClient, exists := s.githubClients[provider]
	if !exists {
		return nil, fmt.Errorf("GitHub client not found for provider %s", provider)
	}

	callbackURL := fmt.Sprintf("%s/api/auth/%s/handler/frame", s.config.RedirectURL, provider)

	oauth2Config := githubClient.GetOAuth2Config(callbackURL)

	token, err := oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}

	profile, err := githubClient.GetUserProfile(ctx, token.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}

	jwtToken, err := s.GenerateJWT(profile, provider)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	refreshToken, err := s.generateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	s.tokenMutex.Lock()
	s.refreshTokens[refreshToken] = &RefreshTokenData{
		UserID:      profile.ID,
		Username:    profile.Username,
		Email:       profile.Email,
		Provider:    provider,
		AccessToken: token.AccessToken,
		ExpiresAt:   time.Now().Add(30 * 24 * time.Hour), // 30 days
		CreatedAt:   time.Now(),
	}
	s.tokenMutex.Unlock()

	response := &AuthHandlerResponse{
		AccessToken:  jwtToken,
		TokenType:    "Bearer",
		ExpiresIn:    3600, // 1 hour
		RefreshToken: refreshToken,
		Profile:      *profile,
	}

	return response, nil
}

// RefreshToken generates a new JWT token from a refresh token
func (s *AuthService) RefreshToken(refreshToken string) (*AuthHandlerResponse, error) {
	s.tokenMutex.RLock()
	tokenData, exists := s.refreshTokens[refreshToken]
	s.tokenMutex.RUnlock()

	if !exists {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	if time.Now().After(tokenData.ExpiresAt) {
		s.tokenMutex.Lock()
		delete(s.refreshTokens, refreshToken)
		s.tokenMutex.Unlock()
		return nil, apperrors.ErrRefreshTokenExpired
	}

	profile := &UserProfile{
		ID:       tokenData.UserID,
		Username: tokenData.Username,
		Email:    tokenData.Email,
	}

	jwtToken, err := s.GenerateJWT(profile, tokenData.Provider)
	if err != nil {
		return nil, fmt.Errorf("failed to generate new JWT: %w", err)
	}

	newRefreshToken, err := s.generateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate new refresh token: %w", err)
	}

	// Rotate: store the new refresh token, drop the old one
	s.tokenMutex.Lock()
	delete(s.refreshTokens, refreshToken)
	s.refreshTokens[newRefreshToken] = &RefreshTokenData{
		UserID:      tokenData.UserID,
		Username:    tokenData.Username,
		Email:       tokenData.Email,
		Provider:    tokenData.Provider,
		AccessToken: tokenData.AccessToken,
		ExpiresAt:   time.Now().Add(30 * 24 * time.Hour),
		CreatedAt:   time.Now(),
	}
	s.tokenMutex.Unlock()

	response := &AuthHandlerResponse{
		AccessToken:  jwtToken,
		TokenType:    "Bearer",
		ExpiresIn:    3600,
		RefreshToken: newRefreshToken,
		Profile:      *profile,
	}

	return response, nil
}

// GenerateJWT creates a JWT token for the user
func (s *AuthService) GenerateJWT(userProfile *UserProfile, provider string) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID:   userProfile.ID,
		Username: userProfile.Username,
		Email:    userProfile.Email,
		Provider: provider,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "match-tracker-backend",
			Subject:   fmt.Sprintf("%d", userProfile.ID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// GenerateState generates a random state parameter for OAuth2
func (s *AuthService) GenerateState() (string, error) {
	return s.generateRandomString(32)
}

// generateRefreshToken generates a random refresh token
func (s *AuthService) generateRefreshToken() (string, error) {
	return s.generateRandomString(64)
}

// generateRandomString generates a random base64 encoded string
func (s *AuthService) generateRandomString(length int) (string, error) {
	bytes := make([]byte, length)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}

// Logout handles user logout (stateless JWT tokens don't require server-side logout)
func (s *AuthService) Logout(refreshToken string) error {
	if refreshToken != "" {
		s.tokenMutex.Lock()
		delete(s.refreshTokens, refreshToken)
		s.tokenMutex.Unlock()
	}
	return nil
}
