package staff

import "context"

type StaffRepository interface {
	Create(ctx context.Context, staff Staff) (Staff, error)
	GetByID(ctx context.Context, id string) (Staff, error)
	GetByUserID(ctx context.Context, userID string) (Staff, error)
	List(ctx context.Context, status *Status) ([]Staff, error)

	// ListActiveIDs returns ids of active staff, used by the absent
	// reconciliation batch.
	ListActiveIDs(ctx context.Context) ([]string, error)
}
