// Package identitycache keeps resolved staff accounts in Redis so that every
// authenticated request does not hit the users table.
package identitycache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"packflow/internal/core/domain/model/access"
	"packflow/internal/core/domain/model/kernel"
	"packflow/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const (
	// KeyActor holds one cached account: identity:actor:{id} -> snapshot JSON.
	KeyActor = "identity:actor:%s"

	DefaultTTL = 5 * time.Minute
)

type snapshot struct {
	FullName    string            `json:"fullName"`
	Email       string            `json:"email"`
	Role        string            `json:"role"`
	Active      bool              `json:"active"`
	Permissions map[string]string `json:"permissions"`
}

// Directory decorates a ports.ActorDirectory with a read-through Redis cache.
// Redis failures are logged and fall through to the wrapped directory.
type Directory struct {
	next   ports.ActorDirectory
	rdb    redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

func NewDirectory(next ports.ActorDirectory, rdb redis.UniversalClient, ttl time.Duration, logger *slog.Logger) *Directory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Directory{
		next:   next,
		rdb:    rdb,
		ttl:    ttl,
		logger: logger.With("component", "identity_cache"),
	}
}

// Actor returns the cached account or loads and caches it.
func (d *Directory) Actor(ctx context.Context, id kernel.UUID) (*access.Actor, error) {
	key := fmt.Sprintf(KeyActor, id.String())

	raw, err := d.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		actor, decodeErr := decode(id, raw)
		if decodeErr == nil {
			return actor, nil
		}
		d.logger.WarnContext(ctx, "dropping undecodable cache entry", "key", key, "error", decodeErr)
	case !errors.Is(err, redis.Nil):
		d.logger.WarnContext(ctx, "cache read failed", "key", key, "error", err)
	}

	actor, err := d.next.Actor(ctx, id)
	if err != nil {
		return nil, err
	}

	if encoded, encodeErr := encode(actor); encodeErr == nil {
		if setErr := d.rdb.Set(ctx, key, encoded, d.ttl).Err(); setErr != nil {
			d.logger.WarnContext(ctx, "cache write failed", "key", key, "error", setErr)
		}
	}
	return actor, nil
}

// Invalidate drops cached accounts, e.g. after their permissions changed.
func (d *Directory) Invalidate(ctx context.Context, ids ...kernel.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, fmt.Sprintf(KeyActor, id.String()))
	}
	return d.rdb.Del(ctx, keys...).Err()
}

func encode(a *access.Actor) ([]byte, error) {
	return json.Marshal(snapshot{
		FullName:    a.FullName(),
		Email:       a.Email(),
		Role:        a.Role().String(),
		Active:      a.Active(),
		Permissions: a.Permissions().Codes(),
	})
}

func decode(id kernel.UUID, raw []byte) (*access.Actor, error) {
	var s snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	role, err := access.ParseRole(s.Role)
	if err != nil {
		return nil, err
	}
	perms, err := access.PermissionsFromCodes(s.Permissions)
	if err != nil {
		return nil, err
	}
	return access.NewActor(id, s.FullName, s.Email, role, s.Active, perms)
}
