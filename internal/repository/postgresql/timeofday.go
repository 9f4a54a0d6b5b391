package postgresql

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// Clock columns are TIME WITHOUT TIME ZONE. pgx scans them as
// pgtype.Time (microseconds since midnight), the domain carries them as
// *time.Duration offsets.

func clockFromDB(t pgtype.Time) *time.Duration {
	if !t.Valid {
		return nil
	}
	d := time.Duration(t.Microseconds) * time.Microsecond
	return &d
}

func clockToDB(d *time.Duration) pgtype.Time {
	if d == nil {
		return pgtype.Time{}
	}
	return pgtype.Time{Microseconds: d.Microseconds(), Valid: true}
}
