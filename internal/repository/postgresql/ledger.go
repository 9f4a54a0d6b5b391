package postgresql

import (
	"context"
	"fmt"
	"regexp"

	"github.com/fichadas/timeclock-backend-go/internal/domain/export"
	"github.com/fichadas/timeclock-backend-go/internal/pkg/database"
)

var schemaNameRegex = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

type ledgerRepositoryImpl struct {
	db     *database.DB
	schema string
}

// NewLedgerRepository targets the payroll system's schema inside the same
// PostgreSQL cluster. The schema name comes from configuration and is
// interpolated into queries, so it is validated here once.
func NewLedgerRepository(db *database.DB, schema string) (export.LedgerRepository, error) {
	if !schemaNameRegex.MatchString(schema) {
		return nil, fmt.Errorf("invalid payroll schema name %q", schema)
	}
	return &ledgerRepositoryImpl{db: db, schema: schema}, nil
}

// FetchForExport implements export.LedgerRepository. External identifiers
// resolve by matching the local legajo and novedad codes against the payroll
// schema's own tables; unresolved joins come back as NULL and the export
// service decides what that means per punch.
func (r *ledgerRepositoryImpl) FetchForExport(ctx context.Context, punchIDs []int) ([]export.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT
			p.id, p.employee_id, p.entry, p.exit, p.total_minutes,
			p.worked_minutes, p.overtime_minutes, p.additional_minutes,
			p.novedad_id, p.exported,
			e.legajo, e.sector_id, s.extras_novedad_id,
			n.code, ne.code,
			pe.id, pn.id, pne.id
		FROM punches p
		LEFT JOIN employees e ON e.id = p.employee_id
		LEFT JOIN sectors s ON s.id = e.sector_id
		LEFT JOIN novedades n ON n.id = p.novedad_id
		LEFT JOIN novedades ne ON ne.id = s.extras_novedad_id
		LEFT JOIN %[1]s.employees pe ON pe.legajo = e.legajo
		LEFT JOIN %[1]s.novedades pn ON pn.code = n.code
		LEFT JOIN %[1]s.novedades pne ON pne.code = ne.code
		WHERE p.id = ANY($1)
		ORDER BY p.id
	`, r.schema)

	rows, err := q.Query(ctx, query, punchIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []export.Record
	for rows.Next() {
		var rec export.Record
		err := rows.Scan(
			&rec.PunchID,
			&rec.EmployeeID,
			&rec.Entry,
			&rec.Exit,
			&rec.TotalMinutes,
			&rec.WorkedMinutes,
			&rec.OvertimeMinutes,
			&rec.AdditionalMinutes,
			&rec.NovedadID,
			&rec.Exported,
			&rec.EmployeeLegajo,
			&rec.SectorID,
			&rec.SectorExtrasNovedadID,
			&rec.NovedadCode,
			&rec.ExtrasNovedadCode,
			&rec.ExternalEmployeeID,
			&rec.ExternalNovedadID,
			&rec.ExternalExtrasNovedadID,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Insert implements export.LedgerRepository. The source tag is fixed so the
// payroll side can tell clock-generated rows from manual ones.
func (r *ledgerRepositoryImpl) Insert(ctx context.Context, entry export.LedgerEntry) error {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO %s.novedad_entries (employee_id, novedad_id, effective_date, quantity_hours, source)
		VALUES ($1, $2, $3, $4, 'timeclock')
	`, r.schema)

	_, err := q.Exec(ctx, query,
		entry.ExternalEmployeeID,
		entry.ExternalNovedadID,
		entry.EffectiveDate,
		entry.QuantityHours,
	)
	return err
}
