package postgresql

import (
	"context"

	"github.com/fichadas/timeclock-backend-go/internal/domain/employee"
	"github.com/fichadas/timeclock-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.name, e.legajo, e.sector_id, e.entry_time, e.exit_time,
	e.rotation_start, e.created_at, e.updated_at, s.name
`

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var emp employee.Employee
	var entryTime, exitTime pgtype.Time

	err := row.Scan(
		&emp.ID,
		&emp.Name,
		&emp.Legajo,
		&emp.SectorID,
		&entryTime,
		&exitTime,
		&emp.RotationStart,
		&emp.CreatedAt,
		&emp.UpdatedAt,
		&emp.SectorName,
	)
	if err != nil {
		return nil, err
	}

	emp.EntryTime = clockFromDB(entryTime)
	emp.ExitTime = clockFromDB(exitTime)
	return &emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id int) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN sectors s ON s.id = e.sector_id
		WHERE e.id = $1
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}
	return emp, nil
}

// GetByLegajo implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByLegajo(ctx context.Context, legajo int) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN sectors s ON s.id = e.sector_id
		WHERE e.legajo = $1
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, legajo))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}
	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN sectors s ON s.id = e.sector_id
		ORDER BY e.legajo NULLS LAST, e.id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *emp)
	}

	return employees, rows.Err()
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (name, legajo, sector_id, entry_time, exit_time, rotation_start)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int
	err := q.QueryRow(ctx, query,
		emp.Name,
		emp.Legajo,
		emp.SectorID,
		clockToDB(emp.EntryTime),
		clockToDB(emp.ExitTime),
		emp.RotationStart,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, employee.ErrLegajoExists
		}
		return 0, err
	}

	return id, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET name = $1, legajo = $2, sector_id = $3, entry_time = $4,
		    exit_time = $5, rotation_start = $6, updated_at = NOW()
		WHERE id = $7
	`

	tag, err := q.Exec(ctx, query,
		emp.Name,
		emp.Legajo,
		emp.SectorID,
		clockToDB(emp.EntryTime),
		clockToDB(emp.ExitTime),
		emp.RotationStart,
		emp.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return employee.ErrLegajoExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id int) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	if pgErr, ok := err.(*pgconn.PgError); ok {
		return pgErr.Code == "23505"
	}
	return false
}
