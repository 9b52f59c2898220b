package domain

import "time"

// AuditEvent records a security-relevant action for the audit trail.
type AuditEvent struct {
	Actor     string // user id, or the email on failed logins
	Action    string // e.g. "user_registered", "login_failed"
	Target    string // optional: the affected resource id
	Timestamp time.Time
}
