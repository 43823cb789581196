package readstore

import (
	"context"
	"errors"

	"spigot-link/internal/infra"
	"spigot-link/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LinkReadStore struct {
	pool *pgxpool.Pool
}

func NewLinkReadStore(pool *pgxpool.Pool) *LinkReadStore {
	return &LinkReadStore{pool: pool}
}

const linkViewQuery = `
	SELECT ul.discord_id,
	       ul.linked_at,
	       count(up.resource_id) AS purchases
	FROM user_links ul
	LEFT JOIN user_payments up ON up.spigot_name = ul.spigot_name
`

func (r *LinkReadStore) ListLinks(ctx context.Context) ([]queries.LinkView, error) {
	rows, err := r.pool.Query(ctx,
		linkViewQuery+` GROUP BY ul.discord_id, ul.linked_at ORDER BY ul.linked_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list links", err)
	}
	defer rows.Close()

	var views []queries.LinkView
	for rows.Next() {
		var v queries.LinkView
		if err := rows.Scan(&v.DiscordID, &v.LinkedAt, &v.Purchases); err != nil {
			return nil, infra.WrapRepoErr("failed to scan link row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate links", err)
	}
	return views, nil
}

func (r *LinkReadStore) FindLink(ctx context.Context, userID int64) (*queries.LinkView, error) {
	var v queries.LinkView
	err := r.pool.QueryRow(ctx,
		linkViewQuery+` WHERE ul.discord_id = $1 GROUP BY ul.discord_id, ul.linked_at`,
		userID,
	).Scan(&v.DiscordID, &v.LinkedAt, &v.Purchases)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("link not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find link", err)
	}
	return &v, nil
}
