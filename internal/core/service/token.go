package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iGEORGE17/blog-api/internal/core/domain"
)

// ErrTokenInvalid is the single rejection Verify reports. Malformed tokens,
// signature mismatches, and expired tokens are deliberately not
// distinguishable by callers.
var ErrTokenInvalid = errors.New("invalid or expired token")

const defaultTokenTTL = 24 * time.Hour

// tokenClaims is the wire claim set: {sub, role, iat, exp}. The field names
// must stay stable for interoperability with previously issued tokens.
type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTCodec signs and verifies bearer tokens with a symmetric secret that is
// fixed at construction. Rotating the secret invalidates every token issued
// under the old one; there is no multi-key verification window.
type JWTCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTCodec(secret string, ttl time.Duration) *JWTCodec {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &JWTCodec{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given user. sub carries the user id in the
// store's hex form, exp is issuance plus the configured TTL.
func (c *JWTCodec) Issue(userID, role string) (string, error) {
	now := time.Now().UTC()
	claims := tokenClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify checks signature and expiry and returns the authenticated identity.
// A token is rejected at exactly its expiry instant; no clock skew is
// tolerated.
func (c *JWTCodec) Verify(token string) (domain.Identity, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return domain.Identity{}, ErrTokenInvalid
	}
	if claims.Subject == "" {
		return domain.Identity{}, ErrTokenInvalid
	}

	return domain.Identity{UserID: claims.Subject, Role: claims.Role}, nil
}
