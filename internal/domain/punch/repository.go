package punch

import (
	"context"
	"time"
)

type Filter struct {
	From           *time.Time
	To             *time.Time
	EmployeeSearch *string
	Exported       *bool
}

type PunchRepository interface {
	GetByID(ctx context.Context, id int) (*Punch, error)
	List(ctx context.Context, filter Filter) ([]Punch, error)
	ListByEmployee(ctx context.Context, employeeID int) ([]Punch, error)
	Create(ctx context.Context, p Punch) (int, error)
	Update(ctx context.Context, p Punch) error
	Delete(ctx context.Context, id int) error

	// MarkExported flags the given punches as exported at the given time.
	MarkExported(ctx context.Context, ids []int, at time.Time) error
}
