package sector

import "context"

type SectorRepository interface {
	GetByID(ctx context.Context, id int) (*Sector, error)
	List(ctx context.Context) ([]Sector, error)
	Create(ctx context.Context, s Sector) (int, error)
	Update(ctx context.Context, s Sector) error
	Delete(ctx context.Context, id int) error
}
