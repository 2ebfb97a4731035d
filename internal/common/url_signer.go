package common

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"xsim-analytics/observatory/internal/constants"
)

// ShareToken is a validated single-use report share token.
type ShareToken struct {
	Report    string
	Version   string
	Group     string
	TokenID   string
	ExpiresAt time.Time
}

// URLSignerService generates and validates presigned share links for
// report snapshots. Tokens are single-use; spent token IDs are tracked
// through the cache so Redis-backed deployments enforce it across replicas.
type URLSignerService struct {
	secretKey []byte
	cache     CacheInterface
}

// NewURLSignerService creates a new URL signer service
func NewURLSignerService(secretKey []byte, cache CacheInterface) *URLSignerService {
	return &URLSignerService{
		secretKey: secretKey,
		cache:     cache,
	}
}

// GenerateShareToken generates a single-use presigned token for one report.
func (s *URLSignerService) GenerateShareToken(
	report, version, group string,
	ttl time.Duration,
) (string, error) {
	tokenID := uuid.New().String()
	expiresAt := time.Now().Add(ttl)

	claims := jwt.MapClaims{
		"report":  report,
		"version": version,
		"group":   group,
		"jti":     tokenID,
		"exp":     expiresAt.Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken validates a share token and returns its claims.
func (s *URLSignerService) ValidateToken(tokenString string) (*ShareToken, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.MapClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	report, ok := (*claims)["report"].(string)
	if !ok {
		return nil, errors.New("missing or invalid report claim")
	}

	version, ok := (*claims)["version"].(string)
	if !ok {
		return nil, errors.New("missing or invalid version claim")
	}

	group, ok := (*claims)["group"].(string)
	if !ok {
		return nil, errors.New("missing or invalid group claim")
	}

	tokenID, ok := (*claims)["jti"].(string)
	if !ok {
		return nil, errors.New("missing or invalid jti claim")
	}

	expFloat, ok := (*claims)["exp"].(float64)
	if !ok {
		return nil, errors.New("missing or invalid exp claim")
	}
	expiresAt := time.Unix(int64(expFloat), 0)

	if time.Now().After(expiresAt) {
		return nil, errors.New("token expired")
	}

	if s.IsTokenUsed(tokenID) {
		return nil, errors.New("token already used")
	}

	return &ShareToken{
		Report:    report,
		Version:   version,
		Group:     group,
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
	}, nil
}

// MarkTokenAsUsed marks a token as used (single-use enforcement)
func (s *URLSignerService) MarkTokenAsUsed(tokenID string) {
	s.cache.Set(string(constants.CachePrefixUsedToken)+tokenID, "1", 15*time.Minute)
}

// IsTokenUsed checks if a token has already been used
func (s *URLSignerService) IsTokenUsed(tokenID string) bool {
	_, found := s.cache.Get(string(constants.CachePrefixUsedToken) + tokenID)
	return found
}
