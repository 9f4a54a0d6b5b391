package novedad

import "context"

type NovedadRepository interface {
	GetByID(ctx context.Context, id int) (*Novedad, error)
	GetByCode(ctx context.Context, code string) (*Novedad, error)
	List(ctx context.Context) ([]Novedad, error)
	Create(ctx context.Context, n Novedad) (int, error)
	Update(ctx context.Context, n Novedad) error
	Delete(ctx context.Context, id int) error
}
