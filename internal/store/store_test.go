package store

import (
	"errors"
	"fmt"
	"testing"

	"entraide/pkg/types"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestConstraintError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "unique violation maps to conflict",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "participations_user_need_unique"},
			want: types.ErrAlreadyParticipating,
		},
		{
			name: "foreign key violation maps to missing need",
			err:  &pgconn.PgError{Code: "23503"},
			want: types.ErrNeedNotFound,
		},
		{
			name: "wrapped pg errors are unwrapped",
			err:  fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23505"}),
			want: types.ErrAlreadyParticipating,
		},
		{
			name: "other pg errors pass through",
			err:  &pgconn.PgError{Code: "42601"},
			want: nil,
		},
		{
			name: "non-pg errors pass through",
			err:  errors.New("connection reset"),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, constraintError(tt.err))
		})
	}
}
