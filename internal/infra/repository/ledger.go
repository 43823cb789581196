package repository

import (
	"context"
	"errors"

	"spigot-link/internal/infra"
	"spigot-link/internal/pkg/identity"
	"spigot-link/internal/usecase/commands"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgErrCodeUniqueViolation = "23505"

// LedgerRepository persists purchase records and the discord-to-marketplace
// link table. Purchase rows are append-only; duplicates are surfaced as
// KindDuplicateKey and treated as benign by the ingestor.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

func (r *LedgerRepository) AddPayment(ctx context.Context, rec commands.PurchaseRecord) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO user_payments (resource_id, spigot_name, bought_at, paid, fee, provider)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ResourceID, rec.Identity.String(), rec.BoughtAt, rec.Paid, rec.Fee, rec.Provider,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("payment already recorded", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert payment", err)
	}
	return nil
}

func (r *LedgerRepository) HasPurchase(ctx context.Context, id identity.Hash) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM user_payments WHERE spigot_name = $1)`,
		id.String(),
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check purchases", err)
	}
	return exists, nil
}

func (r *LedgerRepository) IsIdentityLinked(ctx context.Context, id identity.Hash) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM user_links WHERE spigot_name = $1)`,
		id.String(),
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check identity link", err)
	}
	return exists, nil
}

func (r *LedgerRepository) IsUserLinked(ctx context.Context, userID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM user_links WHERE discord_id = $1)`,
		userID,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check user link", err)
	}
	return exists, nil
}

func (r *LedgerRepository) Link(ctx context.Context, userID int64, id identity.Hash) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO user_links (discord_id, spigot_name) VALUES ($1, $2)`,
		userID, id.String(),
	)
	if err != nil {
		// Two users racing for one identity, or one user racing itself:
		// the unique constraints decide the winner.
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("link already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert link", err)
	}
	return nil
}

func (r *LedgerRepository) Unlink(ctx context.Context, userID int64) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM user_links WHERE discord_id = $1`,
		userID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to delete link", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("link not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *LedgerRepository) PurchasedResourceIDs(ctx context.Context, userID int64) ([]int64, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT up.resource_id
		 FROM user_payments up
		 INNER JOIN user_links ul ON up.spigot_name = ul.spigot_name
		 WHERE ul.discord_id = $1`,
		userID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query purchased resources", err)
	}
	defer rows.Close()

	var rids []int64
	for rows.Next() {
		var rid int64
		if err := rows.Scan(&rid); err != nil {
			return nil, infra.WrapRepoErr("failed to scan resource id", err)
		}
		rids = append(rids, rid)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate purchased resources", err)
	}
	return rids, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation
}
