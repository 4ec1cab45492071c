package queries

import (
	"context"
	"time"

	"packflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// identitySet collects actor ids referenced by a result set so they can be
// resolved with one query.
type identitySet map[uuid.UUID]IdentityResponse

func (s identitySet) add(id *uuid.UUID) {
	if id == nil || *id == uuid.Nil {
		return
	}
	if _, ok := s[*id]; !ok {
		s[*id] = IdentityResponse{}
	}
}

// resolve fills every collected id from the users table. Unknown ids keep an
// identity that carries only the id.
func (s identitySet) resolve(ctx context.Context, db *gorm.DB) error {
	if len(s) == 0 {
		return nil
	}

	ids := make(pq.StringArray, 0, len(s))
	for id := range s {
		ids = append(ids, id.String())
		kid, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return err
		}
		s[id] = IdentityResponse{ID: kid}
	}

	var rows []struct {
		ID       uuid.UUID
		FullName string
		Email    string
	}
	err := db.WithContext(ctx).
		Raw(`SELECT id, full_name, email FROM users WHERE id = ANY(?::uuid[])`, ids).
		Scan(&rows).Error
	if err != nil {
		return err
	}

	for _, row := range rows {
		identity := s[row.ID]
		identity.FullName = row.FullName
		identity.Email = row.Email
		s[row.ID] = identity
	}
	return nil
}

func (s identitySet) get(id uuid.UUID) IdentityResponse {
	return s[id]
}

func (s identitySet) stamp(by *uuid.UUID, at *time.Time) (StampResponse, bool) {
	if by == nil || at == nil {
		return StampResponse{}, false
	}
	return StampResponse{By: s.get(*by), At: *at}, true
}
