package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id int) (*Employee, error)
	GetByLegajo(ctx context.Context, legajo int) (*Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Create(ctx context.Context, emp Employee) (int, error)
	Update(ctx context.Context, emp Employee) error
	Delete(ctx context.Context, id int) error
}
