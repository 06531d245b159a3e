package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims carries the identity payload for both token kinds. The duplicated
// issued/expired timestamps exist for clients that do not decode the
// registered claims.
type Claims struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email,omitempty"`
	TokenType string    `json:"token_type"`

	IssuedAt  time.Time `json:"issued_at"`
	ExpiredAt time.Time `json:"expired_at"`

	jwtlib.RegisteredClaims
}

type Service interface {
	GenerateAccessToken(userID uuid.UUID, email string) (string, error)
	GenerateRefreshToken(userID uuid.UUID) (string, error)
	ValidateToken(tokenString string) (Claims, error)
	IsRefreshToken(claims Claims) bool
}

// tokenKind bundles the secret and lifetime for one of the two token types.
type tokenKind struct {
	secret []byte
	ttl    time.Duration
}

func (k tokenKind) usable() bool {
	return len(k.secret) > 0 && k.ttl > 0
}

// HMACService signs and verifies HS256 token pairs. Access and refresh tokens
// use independent secrets, so validation tries both.
type HMACService struct {
	kinds map[string]tokenKind
	clock func() time.Time
}

func NewHMACService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *HMACService {
	return &HMACService{
		kinds: map[string]tokenKind{
			TokenTypeAccess:  {secret: []byte(accessSecret), ttl: accessTTL},
			TokenTypeRefresh: {secret: []byte(refreshSecret), ttl: refreshTTL},
		},
		clock: time.Now,
	}
}

func (s *HMACService) GenerateAccessToken(userID uuid.UUID, email string) (string, error) {
	return s.sign(TokenTypeAccess, userID, email)
}

func (s *HMACService) GenerateRefreshToken(userID uuid.UUID) (string, error) {
	return s.sign(TokenTypeRefresh, userID, "")
}

func (s *HMACService) IsRefreshToken(claims Claims) bool {
	return claims.TokenType == TokenTypeRefresh
}

func (s *HMACService) sign(tokenType string, userID uuid.UUID, email string) (string, error) {
	kind, ok := s.kinds[tokenType]
	if !ok || !kind.usable() {
		return "", ErrTokenInvalid
	}

	issued := s.clock().UTC()
	expires := issued.Add(kind.ttl)

	claims := Claims{
		UserID:    userID,
		Email:     email,
		TokenType: tokenType,
		IssuedAt:  issued,
		ExpiredAt: expires,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwtlib.NewNumericDate(issued),
			ExpiresAt: jwtlib.NewNumericDate(expires),
		},
	}

	return jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(kind.secret)
}

// ValidateToken parses against both secrets; expiry wins over a signature
// mismatch when reporting the failure.
func (s *HMACService) ValidateToken(tokenString string) (Claims, error) {
	expired := false
	for _, tokenType := range []string{TokenTypeAccess, TokenTypeRefresh} {
		claims, err := s.parse(tokenString, s.kinds[tokenType].secret)
		if err == nil {
			return claims, nil
		}
		if errors.Is(err, ErrTokenExpired) {
			expired = true
		}
	}
	if expired {
		return Claims{}, ErrTokenExpired
	}
	return Claims{}, ErrTokenInvalid
}

func (s *HMACService) parse(tokenString string, secret []byte) (Claims, error) {
	parser := jwtlib.NewParser(jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}))

	var claims Claims
	tok, err := parser.ParseWithClaims(tokenString, &claims, func(*jwtlib.Token) (any, error) {
		return secret, nil
	})
	switch {
	case errors.Is(err, jwtlib.ErrTokenExpired):
		return Claims{}, ErrTokenExpired
	case err != nil, tok == nil, !tok.Valid:
		return Claims{}, ErrTokenInvalid
	}

	if !claims.ExpiredAt.IsZero() && s.clock().UTC().After(claims.ExpiredAt.UTC()) {
		return Claims{}, ErrTokenExpired
	}
	if _, known := s.kinds[claims.TokenType]; !known {
		return Claims{}, ErrTokenInvalid
	}
	return claims, nil
}
