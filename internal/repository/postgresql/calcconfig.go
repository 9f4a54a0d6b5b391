package postgresql

import (
	"context"

	"github.com/fichadas/timeclock-backend-go/internal/domain/calcconfig"
	"github.com/fichadas/timeclock-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type configRepositoryImpl struct {
	db *database.DB
}

func NewConfigRepository(db *database.DB) calcconfig.ConfigRepository {
	return &configRepositoryImpl{db: db}
}

const configColumns = `
	id, sector_id, is_summer, normal_hours, official_overtime_hours,
	additional_overtime_hours, tolerance_minutes, late_deduction_6_to_30,
	late_deduction_31_plus, expected_entry, expected_exit, shift_type,
	active, created_at, updated_at
`

func scanConfig(row pgx.Row) (*calcconfig.Config, error) {
	var cfg calcconfig.Config
	var expectedEntry, expectedExit pgtype.Time

	err := row.Scan(
		&cfg.ID,
		&cfg.SectorID,
		&cfg.IsSummer,
		&cfg.NormalHours,
		&cfg.OfficialOvertimeHours,
		&cfg.AdditionalOvertimeHours,
		&cfg.ToleranceMinutes,
		&cfg.LateDeduction6To30,
		&cfg.LateDeduction31Plus,
		&expectedEntry,
		&expectedExit,
		&cfg.ShiftType,
		&cfg.Active,
		&cfg.CreatedAt,
		&cfg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	cfg.ExpectedEntry = clockFromDB(expectedEntry)
	cfg.ExpectedExit = clockFromDB(expectedExit)
	return &cfg, nil
}

// GetByID implements calcconfig.ConfigRepository.
func (r *configRepositoryImpl) GetByID(ctx context.Context, id int) (*calcconfig.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + configColumns + ` FROM calc_configs WHERE id = $1`

	cfg, err := scanConfig(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, calcconfig.ErrConfigNotFound
		}
		return nil, err
	}
	return cfg, nil
}

// List implements calcconfig.ConfigRepository.
func (r *configRepositoryImpl) List(ctx context.Context) ([]calcconfig.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + configColumns + ` FROM calc_configs ORDER BY sector_id, is_summer, shift_type NULLS FIRST, id`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectConfigs(rows)
}

// ListBySector implements calcconfig.ConfigRepository.
func (r *configRepositoryImpl) ListBySector(ctx context.Context, sectorID int) ([]calcconfig.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + configColumns + ` FROM calc_configs WHERE sector_id = $1 ORDER BY is_summer, shift_type NULLS FIRST, id`

	rows, err := q.Query(ctx, query, sectorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectConfigs(rows)
}

func collectConfigs(rows pgx.Rows) ([]calcconfig.Config, error) {
	var configs []calcconfig.Config
	for rows.Next() {
		cfg, err := scanConfig(rows)
		if err != nil {
			return nil, err
		}
		configs = append(configs, *cfg)
	}
	return configs, rows.Err()
}

// GetActiveBySector implements calcconfig.ConfigRepository.
func (r *configRepositoryImpl) GetActiveBySector(ctx context.Context, sectorID int, isSummer bool) (*calcconfig.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + configColumns + `
		FROM calc_configs
		WHERE sector_id = $1 AND is_summer = $2 AND shift_type IS NULL AND active
		LIMIT 1
	`

	cfg, err := scanConfig(q.QueryRow(ctx, query, sectorID, isSummer))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return cfg, nil
}

// GetActiveBySectorShift implements calcconfig.ConfigRepository.
func (r *configRepositoryImpl) GetActiveBySectorShift(ctx context.Context, sectorID int, isSummer bool, shiftType string) (*calcconfig.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + configColumns + `
		FROM calc_configs
		WHERE sector_id = $1 AND is_summer = $2 AND shift_type = $3 AND active
		LIMIT 1
	`

	cfg, err := scanConfig(q.QueryRow(ctx, query, sectorID, isSummer, shiftType))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return cfg, nil
}

// Create implements calcconfig.ConfigRepository. Activating a configuration
// deactivates every sibling sharing its (sector, season, shift) key in the
// same transaction, so at most one stays active per key.
func (r *configRepositoryImpl) Create(ctx context.Context, cfg calcconfig.Config) (int, error) {
	var id int
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if cfg.Active {
			if err := deactivateSiblings(ctx, tx, cfg, 0); err != nil {
				return err
			}
		}

		query := `
			INSERT INTO calc_configs (
				sector_id, is_summer, normal_hours, official_overtime_hours,
				additional_overtime_hours, tolerance_minutes, late_deduction_6_to_30,
				late_deduction_31_plus, expected_entry, expected_exit, shift_type, active
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING id
		`

		return tx.QueryRow(ctx, query,
			cfg.SectorID,
			cfg.IsSummer,
			cfg.NormalHours,
			cfg.OfficialOvertimeHours,
			cfg.AdditionalOvertimeHours,
			cfg.ToleranceMinutes,
			cfg.LateDeduction6To30,
			cfg.LateDeduction31Plus,
			clockToDB(cfg.ExpectedEntry),
			clockToDB(cfg.ExpectedExit),
			cfg.ShiftType,
			cfg.Active,
		).Scan(&id)
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// Update implements calcconfig.ConfigRepository.
func (r *configRepositoryImpl) Update(ctx context.Context, cfg calcconfig.Config) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if cfg.Active {
			if err := deactivateSiblings(ctx, tx, cfg, cfg.ID); err != nil {
				return err
			}
		}

		query := `
			UPDATE calc_configs
			SET sector_id = $1, is_summer = $2, normal_hours = $3,
			    official_overtime_hours = $4, additional_overtime_hours = $5,
			    tolerance_minutes = $6, late_deduction_6_to_30 = $7,
			    late_deduction_31_plus = $8, expected_entry = $9,
			    expected_exit = $10, shift_type = $11, active = $12,
			    updated_at = NOW()
			WHERE id = $13
		`

		tag, err := tx.Exec(ctx, query,
			cfg.SectorID,
			cfg.IsSummer,
			cfg.NormalHours,
			cfg.OfficialOvertimeHours,
			cfg.AdditionalOvertimeHours,
			cfg.ToleranceMinutes,
			cfg.LateDeduction6To30,
			cfg.LateDeduction31Plus,
			clockToDB(cfg.ExpectedEntry),
			clockToDB(cfg.ExpectedExit),
			cfg.ShiftType,
			cfg.Active,
			cfg.ID,
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return calcconfig.ErrConfigNotFound
		}

		return nil
	})
}

func deactivateSiblings(ctx context.Context, tx pgx.Tx, cfg calcconfig.Config, excludeID int) error {
	query := `
		UPDATE calc_configs
		SET active = FALSE, updated_at = NOW()
		WHERE sector_id = $1 AND is_summer = $2
		  AND shift_type IS NOT DISTINCT FROM $3
		  AND active AND id <> $4
	`

	_, err := tx.Exec(ctx, query, cfg.SectorID, cfg.IsSummer, cfg.ShiftType, excludeID)
	return err
}

// Delete implements calcconfig.ConfigRepository.
func (r *configRepositoryImpl) Delete(ctx context.Context, id int) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM calc_configs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return calcconfig.ErrConfigNotFound
	}

	return nil
}
