package postgresql

import (
	"context"

	"github.com/fichadas/timeclock-backend-go/internal/domain/sector"
	"github.com/fichadas/timeclock-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type sectorRepositoryImpl struct {
	db *database.DB
}

func NewSectorRepository(db *database.DB) sector.SectorRepository {
	return &sectorRepositoryImpl{db: db}
}

const sectorColumns = `
	s.id, s.name, s.is_rotating, s.extras_novedad_id, s.worked_novedad_id,
	ne.code, ne.description, nw.code, nw.description
`

func scanSector(row pgx.Row) (*sector.Sector, error) {
	var s sector.Sector
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.IsRotating,
		&s.ExtrasNovedadID,
		&s.WorkedNovedadID,
		&s.ExtrasNovedadCode,
		&s.ExtrasNovedadDesc,
		&s.WorkedNovedadCode,
		&s.WorkedNovedadDesc,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetByID implements sector.SectorRepository.
func (r *sectorRepositoryImpl) GetByID(ctx context.Context, id int) (*sector.Sector, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + sectorColumns + `
		FROM sectors s
		LEFT JOIN novedades ne ON ne.id = s.extras_novedad_id
		LEFT JOIN novedades nw ON nw.id = s.worked_novedad_id
		WHERE s.id = $1
	`

	s, err := scanSector(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, sector.ErrSectorNotFound
		}
		return nil, err
	}
	return s, nil
}

// List implements sector.SectorRepository.
func (r *sectorRepositoryImpl) List(ctx context.Context) ([]sector.Sector, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + sectorColumns + `
		FROM sectors s
		LEFT JOIN novedades ne ON ne.id = s.extras_novedad_id
		LEFT JOIN novedades nw ON nw.id = s.worked_novedad_id
		ORDER BY s.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sectors []sector.Sector
	for rows.Next() {
		s, err := scanSector(rows)
		if err != nil {
			return nil, err
		}
		sectors = append(sectors, *s)
	}

	return sectors, rows.Err()
}

// Create implements sector.SectorRepository.
func (r *sectorRepositoryImpl) Create(ctx context.Context, s sector.Sector) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO sectors (name, is_rotating, extras_novedad_id, worked_novedad_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int
	err := q.QueryRow(ctx, query, s.Name, s.IsRotating, s.ExtrasNovedadID, s.WorkedNovedadID).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// Update implements sector.SectorRepository.
func (r *sectorRepositoryImpl) Update(ctx context.Context, s sector.Sector) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE sectors
		SET name = $1, is_rotating = $2, extras_novedad_id = $3, worked_novedad_id = $4
		WHERE id = $5
	`

	tag, err := q.Exec(ctx, query, s.Name, s.IsRotating, s.ExtrasNovedadID, s.WorkedNovedadID, s.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return sector.ErrSectorNotFound
	}

	return nil
}

// Delete implements sector.SectorRepository.
func (r *sectorRepositoryImpl) Delete(ctx context.Context, id int) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM sectors WHERE id = $1`, id)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23503" {
			return sector.ErrSectorInUse
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return sector.ErrSectorNotFound
	}

	return nil
}
