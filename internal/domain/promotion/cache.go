// Package promotion holds the ephemeral per-user verification state used by
// the account linking flow. Reservations are in-memory only; losing them on
// restart just forces the affected users to restart their verification.
package promotion

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"sync"
	"time"

	"spigot-link/internal/pkg/clock"
	"spigot-link/internal/pkg/errs"
	"spigot-link/internal/pkg/identity"
)

var (
	ErrIdentityReserved = errs.New("identity reserved by another promotion")
	ErrUserReserved     = errs.New("user already has an active promotion")
)

const (
	codeMin  = 100000
	codeSpan = 900000 // codes are 100000..999999 inclusive
)

type reservation struct {
	issuedAt time.Time
	code     string // empty once consumed
	identity identity.Hash
}

// Cache enforces the two promotion invariants: at most one in-flight
// promotion per Discord user, and at most one per marketplace identity.
// Expiry is lazy; an expired reservation is evicted on the next access.
//
// Consume invalidates the code but keeps the identity reserved. Re-opening
// the confirmation dialog therefore never re-issues a code, which closes the
// brute-force window on the approval step.
type Cache struct {
	mu       sync.Mutex
	clock    clock.Clock
	ttl      time.Duration
	byUser   map[int64]*reservation
	reserved map[identity.Hash]int64
}

func NewCache(clk clock.Clock, ttl time.Duration) *Cache {
	return &Cache{
		clock:    clk,
		ttl:      ttl,
		byUser:   make(map[int64]*reservation),
		reserved: make(map[identity.Hash]int64),
	}
}

func (c *Cache) Reserve(userID int64, id identity.Hash) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if r, ok := c.byUser[userID]; ok && !c.expired(r) {
		return "", ErrUserReserved
	}
	c.evictLocked(userID)

	if holder, ok := c.reserved[id]; ok && holder != userID {
		return "", ErrIdentityReserved
	}

	code, err := generateCode()
	if err != nil {
		return "", errs.Wrap(err, "failed to generate promotion code")
	}

	c.byUser[userID] = &reservation{
		issuedAt: c.clock.Now(),
		code:     code,
		identity: id,
	}
	c.reserved[id] = userID
	return code, nil
}

// Peek returns the stored code without invalidating it. The code pointer is
// nil once the code has been consumed; ok reports whether an unexpired
// reservation exists at all.
func (c *Cache) Peek(userID int64) (code *string, id identity.Hash, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	r := c.activeLocked(userID)
	if r == nil {
		return nil, "", false
	}
	return codePtr(r), r.identity, true
}

// Consume returns the code exactly once. The reservation itself, and with it
// the identity claim, survives until Release.
func (c *Cache) Consume(userID int64) (code *string, id identity.Hash, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	r := c.activeLocked(userID)
	if r == nil {
		return nil, "", false
	}
	code = codePtr(r)
	r.code = ""
	return code, r.identity, true
}

// Release frees the reservation and the identity claim. Called on completion,
// admin cancellation, and when a parallel flow links the identity first. A
// code mismatch does not release; the claim holds until the TTL runs out.
func (c *Cache) Release(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.evictLocked(userID)
}

// HolderOf resolves which user currently claims an identity. Used by the
// inbox confirmation channel to route a received message to its promotion.
func (c *Cache) HolderOf(id identity.Hash) (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	holder, ok := c.reserved[id]
	if !ok {
		return 0, false
	}
	if c.activeLocked(holder) == nil {
		return 0, false
	}
	return holder, true
}

// activeLocked returns the user's reservation, evicting it first when the TTL
// has elapsed.
func (c *Cache) activeLocked(userID int64) *reservation {
	r, ok := c.byUser[userID]
	if !ok {
		return nil
	}
	if c.expired(r) {
		c.evictLocked(userID)
		return nil
	}
	return r
}

func (c *Cache) evictLocked(userID int64) {
	r, ok := c.byUser[userID]
	if !ok {
		return
	}
	delete(c.byUser, userID)
	if holder, held := c.reserved[r.identity]; held && holder == userID {
		delete(c.reserved, r.identity)
	}
}

func (c *Cache) expired(r *reservation) bool {
	return c.clock.Now().Sub(r.issuedAt) > c.ttl
}

func codePtr(r *reservation) *string {
	if r.code == "" {
		return nil
	}
	code := r.code
	return &code
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpan))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(codeMin+n.Int64(), 10), nil
}
