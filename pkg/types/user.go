package types

import "time"

// User mirrors the identity provider's record. This app never mutates it
// beyond keeping a local row for foreign keys and display names.
type User struct {
	ID        string    `db:"id"`
	Email     *string   `db:"email"`
	Name      *string   `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
