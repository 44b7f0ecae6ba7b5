package types

import "time"

// Participation records that one user committed to help with one need.
// The (UserID, NeedID) pair is unique; the constraint lives in the
// participations table, the service-level existence check is advisory.
type Participation struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	NeedID    string    `db:"need_id"`
	CreatedAt time.Time `db:"created_at"`
}
