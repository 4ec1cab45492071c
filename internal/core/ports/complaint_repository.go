package ports

import (
	"context"

	"packflow/internal/core/domain/model/complaint"
	"packflow/internal/core/domain/model/kernel"
)

// ComplaintRepository defines the persistence contract for complaint aggregates.
type ComplaintRepository interface {
	Add(ctx context.Context, aggregate *complaint.Complaint) error

	// Update writes a resolved complaint with a compare-and-set on expected,
	// mirroring OrderRepository.Update.
	Update(ctx context.Context, aggregate *complaint.Complaint, expected complaint.Status) error

	Get(ctx context.Context, id kernel.UUID) (*complaint.Complaint, error)
}
