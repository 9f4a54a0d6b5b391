package calcconfig

import "context"

// ConfigRepository persists calculation configurations. The active-lookup
// methods return (nil, nil) when no active configuration matches: a missing
// configuration is a data-quality signal handled by the caller, not an error.
type ConfigRepository interface {
	GetByID(ctx context.Context, id int) (*Config, error)
	List(ctx context.Context) ([]Config, error)
	ListBySector(ctx context.Context, sectorID int) ([]Config, error)

	// GetActiveBySector returns the active configuration for a non-rotating
	// sector and season.
	GetActiveBySector(ctx context.Context, sectorID int, isSummer bool) (*Config, error)

	// GetActiveBySectorShift returns the active configuration for a rotating
	// sector, season and shift type.
	GetActiveBySectorShift(ctx context.Context, sectorID int, isSummer bool, shiftType string) (*Config, error)

	// Create inserts the configuration. When cfg.Active is set, every sibling
	// sharing the (sector, season, shift) key is deactivated in the same
	// transaction.
	Create(ctx context.Context, cfg Config) (int, error)

	// Update rewrites the configuration, deactivating active siblings the same
	// way Create does.
	Update(ctx context.Context, cfg Config) error

	Delete(ctx context.Context, id int) error
}
