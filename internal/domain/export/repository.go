package export

import "context"

// LedgerRepository talks to the external payroll ledger. The ledger is an
// opaque one-way sink: this module reads its code tables to resolve external
// identifiers and inserts consolidated novedad rows, nothing else.
type LedgerRepository interface {
	// FetchForExport bulk-loads the requested punches joined with their
	// external-identifier resolution.
	FetchForExport(ctx context.Context, punchIDs []int) ([]Record, error)

	// Insert writes one consolidated ledger row.
	Insert(ctx context.Context, entry LedgerEntry) error
}
