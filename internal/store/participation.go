package store

import (
	"context"
	"fmt"
	"time"

	"entraide/internal/utils"
	"entraide/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const participationTableName = "entraide.participations"

var participationColumns = utils.StructTagValues(types.Participation{})

type ParticipationRepository struct {
	pool *pgxpool.Pool
}

func NewParticipationRepository(pool *pgxpool.Pool) *ParticipationRepository {
	return &ParticipationRepository{pool: pool}
}

func (r *ParticipationRepository) CreateParticipation(ctx context.Context, participation *types.Participation) error {

	participation.ID = utils.NanoID()
	participation.CreatedAt = time.Now()

	participationMap := utils.StructToMap(participation)

	query, args, err := psql().Insert(participationTableName).SetMap(participationMap).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert participation query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		if domainErr := constraintError(err); domainErr != nil {
			return domainErr
		}
		return fmt.Errorf("failed to create participation: %w", err)
	}

	return nil

}

func (r *ParticipationRepository) ParticipationExists(ctx context.Context, userID, needID string) (bool, error) {

	query, args, err := psql().Select("1").From(participationTableName).
		Where(sq.Eq{"user_id": userID, "need_id": needID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to generate participation exists query: %w", err)
	}

	var one int
	err = pgxscan.Get(ctx, r.pool, &one, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check participation: %w", err)
	}

	return true, nil

}

// ParticipationNeedIDs returns the set of need IDs the user joined.
func (r *ParticipationRepository) ParticipationNeedIDs(ctx context.Context, userID string) (map[string]struct{}, error) {

	query, args, err := psql().Select("need_id").From(participationTableName).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate participation ids query: %w", err)
	}

	var needIDs = make([]string, 0)
	if err := pgxscan.Select(ctx, r.pool, &needIDs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch participation ids: %w", err)
	}

	set := make(map[string]struct{}, len(needIDs))
	for _, id := range needIDs {
		set[id] = struct{}{}
	}

	return set, nil

}
