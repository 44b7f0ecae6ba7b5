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

const needTableName = "entraide.needs"

var needColumns = utils.StructTagValues(types.Need{})

type NeedRepository struct {
	pool *pgxpool.Pool
}

func NewNeedRepository(pool *pgxpool.Pool) *NeedRepository {
	return &NeedRepository{pool: pool}
}

func (r *NeedRepository) Need(ctx context.Context, needID string) (*types.Need, error) {

	query, args, err := psql().Select(needColumns...).From(needTableName).
		Where(sq.Eq{"id": needID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate need query: %w", err)
	}

	var need = new(types.Need)
	err = pgxscan.Get(ctx, r.pool, need, query, args...)
	if err != nil && !pgxscan.NotFound(err) {
		return nil, err
	}

	if err != nil {
		return nil, types.ErrNeedNotFound
	}

	return need, nil

}

// needsWithCountsQuery builds the public listing: every need joined with
// its participation count, newest first. Filter values outside the
// closed city/category sets are dropped rather than rejected, so an
// unrecognized value behaves like no filter at all.
func needsWithCountsQuery(filters types.NeedFilters) (string, []any, error) {
	cols := utils.PrefixSliceOfStrings("n", needColumns)

	builder := psql().
		Select(append(cols, "count(p.id) AS participation_count")...).
		From(needTableName + " n").
		LeftJoin("entraide.participations p ON p.need_id = n.id").
		GroupBy(cols...).
		OrderBy("n.created_at DESC")

	if city := types.NeedCity(filters.City); filters.City != "" && city.Valid() {
		builder = builder.Where(sq.Eq{"n.city": city})
	}

	if category := types.NeedCategory(filters.Category); filters.Category != "" && category.Valid() {
		builder = builder.Where(sq.Eq{"n.category": category})
	}

	return builder.ToSql()
}

func (r *NeedRepository) NeedsWithCounts(ctx context.Context, filters types.NeedFilters) ([]*types.NeedWithCount, error) {

	query, args, err := needsWithCountsQuery(filters)
	if err != nil {
		return nil, fmt.Errorf("failed to generate needs listing query: %w", err)
	}

	var needs = make([]*types.NeedWithCount, 0)
	if err := pgxscan.Select(ctx, r.pool, &needs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch needs listing: %w", err)
	}

	return needs, nil
}

func (r *NeedRepository) NeedsByCreator(ctx context.Context, userID string) ([]*types.Need, error) {

	query, args, err := psql().Select(needColumns...).From(needTableName).
		Where(sq.Eq{"created_by_user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate needs by creator query: %w", err)
	}

	var needs = make([]*types.Need, 0)
	if err := pgxscan.Select(ctx, r.pool, &needs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch needs by creator: %w", err)
	}

	return needs, nil
}

var participatedNeedColumns = utils.StructTagValues(types.ParticipatedNeed{})

func (r *NeedRepository) NeedsParticipatedIn(ctx context.Context, userID string) ([]*types.ParticipatedNeed, error) {

	query, args, err := psql().
		Select(utils.PrefixSliceOfStrings("n", participatedNeedColumns)...).
		From(needTableName + " n").
		Join("entraide.participations p ON p.need_id = n.id").
		Where(sq.Eq{"p.user_id": userID}).
		OrderBy("n.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate participated needs query: %w", err)
	}

	var needs = make([]*types.ParticipatedNeed, 0)
	if err := pgxscan.Select(ctx, r.pool, &needs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch participated needs: %w", err)
	}

	return needs, nil
}

func (r *NeedRepository) CreateNeed(ctx context.Context, need *types.Need) error {

	need.ID = utils.NanoID()
	need.CreatedAt = time.Now()

	needMap := utils.StructToMap(need)

	query, args, err := psql().Insert(needTableName).SetMap(needMap).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert need query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create need")

}

// ResolveNeed flips status to resolved only when needID belongs to
// ownerUserID. Returns the number of rows touched; zero means the need
// is missing or owned by someone else.
func (r *NeedRepository) ResolveNeed(ctx context.Context, needID, ownerUserID string) (int64, error) {

	query, args, err := psql().Update(needTableName).
		Set("status", types.NeedStatusResolved).
		Where(sq.Eq{"id": needID, "created_by_user_id": ownerUserID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to generate resolve need query for need %s: %w", needID, err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, utils.ErrorWrapOrNil(err, "failed to resolve need")
	}

	return tag.RowsAffected(), nil

}
