package operation_repo

import (
	"casino_bot/internal/model"
	"casino_bot/internal/repository"
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	operationsTable = "operations"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewOperationRepository(dbc *pgxpool.Pool) repository.OperationRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// Add - запись в журнал операций. Журнал только растет.
func (r *repo) Add(ctx context.Context, op *model.Operation) error {
	query, args, err := sq.Insert(operationsTable).
		Columns("id", "user_id", "delta", "reason", "created_at").
		Values(op.ID, op.UserID, op.Delta, op.Reason, op.CreatedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build add operation query: %w", err)
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, query, args...)
	return err
}

func (r *repo) ListByUser(ctx context.Context, userID int64, limit uint64) ([]model.Operation, error) {
	query, args, err := sq.Select("id", "user_id", "delta", "reason", "created_at").
		From(operationsTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(limit).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list operations query: %w", err)
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ops []model.Operation
	for rows.Next() {
		var op model.Operation
		if err := rows.Scan(&op.ID, &op.UserID, &op.Delta, &op.Reason, &op.CreatedAt); err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}

	return ops, rows.Err()
}
