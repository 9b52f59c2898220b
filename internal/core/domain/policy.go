package domain

import "errors"

var (
	ErrForbidden    = errors.New("you do not have permission to perform this action")
	ErrSelfDeletion = errors.New("cannot delete your own account")
)

// Identity is the authenticated principal for a single request, derived from
// a verified token. It is never persisted.
type Identity struct {
	UserID string
	Role   string
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// CanMutatePost decides whether the identity may update or delete a post
// owned by authorID: the owner always may, an admin always may, nobody else.
func CanMutatePost(id Identity, authorID string) error {
	if id.UserID == authorID || id.IsAdmin() {
		return nil
	}
	return ErrForbidden
}

// CanListUsers decides whether the identity may enumerate user accounts.
func CanListUsers(id Identity) error {
	if id.IsAdmin() {
		return nil
	}
	return ErrForbidden
}

// CanDeleteUser decides whether the identity may remove the account targetID.
// Self-deletion is vetoed before the admin rule is consulted, so not even an
// admin can remove its own account through this path.
func CanDeleteUser(id Identity, targetID string) error {
	if id.UserID == targetID {
		return ErrSelfDeletion
	}
	if !id.IsAdmin() {
		return ErrForbidden
	}
	return nil
}
