package ports

import "github.com/iGEORGE17/blog-api/internal/core/domain"

// TokenCodec issues and verifies the signed bearer credentials carried by
// API clients. Verify reports a single opaque failure regardless of whether
// the token was malformed, tampered with, or expired.
type TokenCodec interface {
	Issue(userID, role string) (string, error)
	Verify(token string) (domain.Identity, error)
}
