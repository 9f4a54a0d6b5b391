package postgresql

import (
	"context"

	"github.com/fichadas/timeclock-backend-go/internal/domain/novedad"
	"github.com/fichadas/timeclock-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type novedadRepositoryImpl struct {
	db *database.DB
}

func NewNovedadRepository(db *database.DB) novedad.NovedadRepository {
	return &novedadRepositoryImpl{db: db}
}

// GetByID implements novedad.NovedadRepository.
func (r *novedadRepositoryImpl) GetByID(ctx context.Context, id int) (*novedad.Novedad, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, description, created_at, updated_at
		FROM novedades
		WHERE id = $1
	`

	var n novedad.Novedad
	err := q.QueryRow(ctx, query, id).Scan(&n.ID, &n.Code, &n.Description, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, novedad.ErrNovedadNotFound
		}
		return nil, err
	}

	return &n, nil
}

// GetByCode implements novedad.NovedadRepository.
func (r *novedadRepositoryImpl) GetByCode(ctx context.Context, code string) (*novedad.Novedad, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, description, created_at, updated_at
		FROM novedades
		WHERE code = $1
	`

	var n novedad.Novedad
	err := q.QueryRow(ctx, query, code).Scan(&n.ID, &n.Code, &n.Description, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, novedad.ErrNovedadNotFound
		}
		return nil, err
	}

	return &n, nil
}

// List implements novedad.NovedadRepository.
func (r *novedadRepositoryImpl) List(ctx context.Context) ([]novedad.Novedad, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, description, created_at, updated_at
		FROM novedades
		ORDER BY code
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var novedades []novedad.Novedad
	for rows.Next() {
		var n novedad.Novedad
		if err := rows.Scan(&n.ID, &n.Code, &n.Description, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		novedades = append(novedades, n)
	}

	return novedades, rows.Err()
}

// Create implements novedad.NovedadRepository.
func (r *novedadRepositoryImpl) Create(ctx context.Context, n novedad.Novedad) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO novedades (code, description)
		VALUES ($1, $2)
		RETURNING id
	`

	var id int
	err := q.QueryRow(ctx, query, n.Code, n.Description).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, novedad.ErrCodeExists
		}
		return 0, err
	}

	return id, nil
}

// Update implements novedad.NovedadRepository.
func (r *novedadRepositoryImpl) Update(ctx context.Context, n novedad.Novedad) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE novedades
		SET code = $1, description = $2, updated_at = NOW()
		WHERE id = $3
	`

	tag, err := q.Exec(ctx, query, n.Code, n.Description, n.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return novedad.ErrCodeExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return novedad.ErrNovedadNotFound
	}

	return nil
}

// Delete implements novedad.NovedadRepository.
func (r *novedadRepositoryImpl) Delete(ctx context.Context, id int) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM novedades WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return novedad.ErrNovedadNotFound
	}

	return nil
}
