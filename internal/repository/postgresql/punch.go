package postgresql

import (
	"context"
	"strconv"
	"time"

	"github.com/fichadas/timeclock-backend-go/internal/domain/punch"
	"github.com/fichadas/timeclock-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

const punchColumns = `
	p.id, p.employee_id, p.entry, p.exit, p.total_minutes, p.worked_minutes,
	p.overtime_minutes, p.additional_minutes, p.novedad_id, p.exported,
	p.exported_at, e.name, e.legajo, e.sector_id, s.name, n.code, n.description
`

const punchJoins = `
	FROM punches p
	LEFT JOIN employees e ON e.id = p.employee_id
	LEFT JOIN sectors s ON s.id = e.sector_id
	LEFT JOIN novedades n ON n.id = p.novedad_id
`

func scanPunch(row pgx.Row) (*punch.Punch, error) {
	var p punch.Punch
	err := row.Scan(
		&p.ID,
		&p.EmployeeID,
		&p.Entry,
		&p.Exit,
		&p.TotalMinutes,
		&p.WorkedMinutes,
		&p.OvertimeMinutes,
		&p.AdditionalMinutes,
		&p.NovedadID,
		&p.Exported,
		&p.ExportedAt,
		&p.EmployeeName,
		&p.EmployeeLegajo,
		&p.SectorID,
		&p.SectorName,
		&p.NovedadCode,
		&p.NovedadDesc,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByID implements punch.PunchRepository.
func (r *punchRepositoryImpl) GetByID(ctx context.Context, id int) (*punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + punchColumns + punchJoins + ` WHERE p.id = $1`

	p, err := scanPunch(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, punch.ErrPunchNotFound
		}
		return nil, err
	}
	return p, nil
}

// List implements punch.PunchRepository.
func (r *punchRepositoryImpl) List(ctx context.Context, filter punch.Filter) ([]punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + punchColumns + punchJoins + ` WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.From != nil {
		query += ` AND p.entry >= $` + strconv.Itoa(argPos)
		args = append(args, *filter.From)
		argPos++
	}
	if filter.To != nil {
		query += ` AND p.entry < $` + strconv.Itoa(argPos)
		args = append(args, *filter.To)
		argPos++
	}
	if filter.EmployeeSearch != nil {
		query += ` AND (e.name ILIKE '%' || $` + strconv.Itoa(argPos) + ` || '%' OR e.legajo::text = $` + strconv.Itoa(argPos) + `)`
		args = append(args, *filter.EmployeeSearch)
		argPos++
	}
	if filter.Exported != nil {
		query += ` AND p.exported = $` + strconv.Itoa(argPos)
		args = append(args, *filter.Exported)
		argPos++
	}

	query += ` ORDER BY p.entry DESC NULLS LAST, p.id DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPunches(rows)
}

// ListByEmployee implements punch.PunchRepository.
func (r *punchRepositoryImpl) ListByEmployee(ctx context.Context, employeeID int) ([]punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + punchColumns + punchJoins + ` WHERE p.employee_id = $1 ORDER BY p.entry DESC NULLS LAST, p.id DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPunches(rows)
}

func collectPunches(rows pgx.Rows) ([]punch.Punch, error) {
	var punches []punch.Punch
	for rows.Next() {
		p, err := scanPunch(rows)
		if err != nil {
			return nil, err
		}
		punches = append(punches, *p)
	}
	return punches, rows.Err()
}

// Create implements punch.PunchRepository.
func (r *punchRepositoryImpl) Create(ctx context.Context, p punch.Punch) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punches (
			employee_id, entry, exit, total_minutes, worked_minutes,
			overtime_minutes, additional_minutes, novedad_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id int
	err := q.QueryRow(ctx, query,
		p.EmployeeID,
		p.Entry,
		p.Exit,
		p.TotalMinutes,
		p.WorkedMinutes,
		p.OvertimeMinutes,
		p.AdditionalMinutes,
		p.NovedadID,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// Update implements punch.PunchRepository. Exported punches are filtered out
// here as a second line of defense, the service checks first.
func (r *punchRepositoryImpl) Update(ctx context.Context, p punch.Punch) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE punches
		SET employee_id = $1, entry = $2, exit = $3, total_minutes = $4,
		    worked_minutes = $5, overtime_minutes = $6, additional_minutes = $7,
		    novedad_id = $8, updated_at = NOW()
		WHERE id = $9 AND NOT exported
	`

	tag, err := q.Exec(ctx, query,
		p.EmployeeID,
		p.Entry,
		p.Exit,
		p.TotalMinutes,
		p.WorkedMinutes,
		p.OvertimeMinutes,
		p.AdditionalMinutes,
		p.NovedadID,
		p.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		var exported bool
		if err := q.QueryRow(ctx, `SELECT exported FROM punches WHERE id = $1`, p.ID).Scan(&exported); err != nil {
			return punch.ErrPunchNotFound
		}
		if exported {
			return punch.ErrPunchExported
		}
		return punch.ErrPunchNotFound
	}

	return nil
}

// Delete implements punch.PunchRepository.
func (r *punchRepositoryImpl) Delete(ctx context.Context, id int) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM punches WHERE id = $1 AND NOT exported`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		var exported bool
		if err := q.QueryRow(ctx, `SELECT exported FROM punches WHERE id = $1`, id).Scan(&exported); err != nil {
			return punch.ErrPunchNotFound
		}
		if exported {
			return punch.ErrPunchExported
		}
		return punch.ErrPunchNotFound
	}

	return nil
}

// MarkExported implements punch.PunchRepository.
func (r *punchRepositoryImpl) MarkExported(ctx context.Context, ids []int, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE punches
		SET exported = TRUE, exported_at = $1, updated_at = NOW()
		WHERE id = ANY($2)
	`

	_, err := q.Exec(ctx, query, at, ids)
	return err
}
