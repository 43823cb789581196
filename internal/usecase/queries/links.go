package queries

import (
	"context"
	"time"
)

// LinkView is the operator-facing read model of one account link.
type LinkView struct {
	DiscordID int64     `json:"discord_id,string"`
	LinkedAt  time.Time `json:"linked_at"`
	Purchases int64     `json:"purchases"`
}

type LinkReadStore interface {
	ListLinks(ctx context.Context) ([]LinkView, error)
	FindLink(ctx context.Context, userID int64) (*LinkView, error)
}

type LinkQueries interface {
	List(ctx context.Context) ([]LinkView, error)
	ByUser(ctx context.Context, userID int64) (*LinkView, error)
}

type linkQueriesImpl struct {
	store LinkReadStore
}

func NewLinkQueries(store LinkReadStore) LinkQueries {
	return &linkQueriesImpl{store: store}
}

func (q *linkQueriesImpl) List(ctx context.Context) ([]LinkView, error) {
	return q.store.ListLinks(ctx)
}

func (q *linkQueriesImpl) ByUser(ctx context.Context, userID int64) (*LinkView, error) {
	return q.store.FindLink(ctx, userID)
}
