package business_repo

import (
	"casino_bot/internal/model"
	"casino_bot/internal/repository"
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	businessesTable = "user_businesses"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewBusinessRepository(dbc *pgxpool.Pool) repository.BusinessRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

func (r *repo) List(ctx context.Context, userID int64) ([]model.OwnedBusiness, error) {
	query, args, err := sq.Select("user_id", "business_id", "acquired_at", "income_at").
		From(businessesTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("business_id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list businesses query: %w", err)
	}

	return r.queryList(ctx, query, args)
}

// Add - покупка бизнеса. Конфликт по ключу означает повторную покупку.
func (r *repo) Add(ctx context.Context, ob *model.OwnedBusiness) error {
	query, args, err := sq.Insert(businessesTable).
		Columns("user_id", "business_id", "acquired_at", "income_at").
		Values(ob.UserID, ob.BusinessID, ob.AcquiredAt, ob.IncomeAt).
		Suffix("ON CONFLICT (user_id, business_id) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build add business query: %w", err)
	}

	tag, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.ErrAlreadyOwned
	}
	return nil
}

func (r *repo) ListIncomeDue(ctx context.Context, before time.Time) ([]model.OwnedBusiness, error) {
	query, args, err := sq.Select("user_id", "business_id", "acquired_at", "income_at").
		From(businessesTable).
		Where(sq.LtOrEq{"income_at": before}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build income due query: %w", err)
	}

	return r.queryList(ctx, query, args)
}

func (r *repo) AdvanceIncome(ctx context.Context, userID int64, businessID int, to time.Time) error {
	query, args, err := sq.Update(businessesTable).
		Set("income_at", to).
		Where(sq.Eq{"user_id": userID, "business_id": businessID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build advance income query: %w", err)
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, query, args...)
	return err
}

func (r *repo) queryList(ctx context.Context, query string, args []interface{}) ([]model.OwnedBusiness, error) {
	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var owned []model.OwnedBusiness
	for rows.Next() {
		var ob model.OwnedBusiness
		if err := rows.Scan(&ob.UserID, &ob.BusinessID, &ob.AcquiredAt, &ob.IncomeAt); err != nil {
			return nil, err
		}
		owned = append(owned, ob)
	}

	return owned, rows.Err()
}
