package domain

import "testing"

func TestCanMutatePost(t *testing.T) {
	cases := []struct {
		name     string
		identity Identity
		authorID string
		wantErr  error
	}{
		{"owner may mutate", Identity{UserID: "a", Role: RoleUser}, "a", nil},
		{"other user may not", Identity{UserID: "b", Role: RoleUser}, "a", ErrForbidden},
		{"admin may mutate any", Identity{UserID: "b", Role: RoleAdmin}, "a", nil},
		{"admin mutating own", Identity{UserID: "a", Role: RoleAdmin}, "a", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := CanMutatePost(tc.identity, tc.authorID); err != tc.wantErr {
				t.Fatalf("CanMutatePost = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestCanListUsers(t *testing.T) {
	if err := CanListUsers(Identity{UserID: "a", Role: RoleAdmin}); err != nil {
		t.Fatalf("admin denied: %v", err)
	}
	if err := CanListUsers(Identity{UserID: "a", Role: RoleUser}); err != ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCanDeleteUser(t *testing.T) {
	cases := []struct {
		name     string
		identity Identity
		targetID string
		wantErr  error
	}{
		{"admin deletes other", Identity{UserID: "a", Role: RoleAdmin}, "b", nil},
		{"admin deletes self", Identity{UserID: "a", Role: RoleAdmin}, "a", ErrSelfDeletion},
		{"user deletes other", Identity{UserID: "a", Role: RoleUser}, "b", ErrForbidden},
		{"user deletes self", Identity{UserID: "a", Role: RoleUser}, "a", ErrSelfDeletion},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := CanDeleteUser(tc.identity, tc.targetID); err != tc.wantErr {
				t.Fatalf("CanDeleteUser = %v, want %v", err, tc.wantErr)
			}
		})
	}
}
