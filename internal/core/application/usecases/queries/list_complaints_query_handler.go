package queries

import (
	"context"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ListComplaintsQueryHandler struct {
	db *gorm.DB
}

func NewListComplaintsQueryHandler(db *gorm.DB) ListComplaintsQueryHandler {
	return ListComplaintsQueryHandler{db: db}
}

// Handle returns complaints joined with their order, creators and resolvers
// resolved.
func (h ListComplaintsQueryHandler) Handle(
	ctx context.Context,
	query ListComplaintsQuery,
) ([]ComplaintResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := make(pq.StringArray, 0)
	for _, s := range query.Statuses() {
		statuses = append(statuses, s.String())
	}
	return loadComplaints(ctx, h.db, `c.status = ANY(?::text[])`, statuses)
}
