package queries

import (
	"context"

	"packflow/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetComplaintQueryHandler struct {
	db *gorm.DB
}

func NewGetComplaintQueryHandler(db *gorm.DB) GetComplaintQueryHandler {
	return GetComplaintQueryHandler{db: db}
}

// Handle returns the complaint or an ObjectNotFoundError.
func (h GetComplaintQueryHandler) Handle(ctx context.Context, query GetComplaintQuery) (ComplaintResponse, error) {
	if err := query.Validate(); err != nil {
		return ComplaintResponse{}, err
	}

	complaints, err := loadComplaints(ctx, h.db, `c.id = ?`, query.ComplaintID().Bytes())
	if err != nil {
		return ComplaintResponse{}, err
	}
	if len(complaints) == 0 {
		return ComplaintResponse{}, errs.NewObjectNotFoundError("complaint", query.ComplaintID().String())
	}
	return complaints[0], nil
}
