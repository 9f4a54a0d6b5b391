package export

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fichadas/timeclock-backend-go/internal/domain/export"
	"github.com/fichadas/timeclock-backend-go/internal/domain/punch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLedgerRepo struct {
	records  []export.Record
	inserted []export.LedgerEntry

	// failFor rejects inserts for the given external novedad id.
	failFor map[int]bool
}

func (f *fakeLedgerRepo) FetchForExport(ctx context.Context, punchIDs []int) ([]export.Record, error) {
	wanted := make(map[int]bool)
	for _, id := range punchIDs {
		wanted[id] = true
	}
	var out []export.Record
	for _, rec := range f.records {
		if wanted[rec.PunchID] {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeLedgerRepo) Insert(ctx context.Context, entry export.LedgerEntry) error {
	if f.failFor[entry.ExternalNovedadID] {
		return errors.New("ledger rejected the record")
	}
	f.inserted = append(f.inserted, entry)
	return nil
}

type fakePunchRepo struct {
	marked []int
}

func (f *fakePunchRepo) GetByID(ctx context.Context, id int) (*punch.Punch, error) {
	return nil, punch.ErrPunchNotFound
}
func (f *fakePunchRepo) List(ctx context.Context, filter punch.Filter) ([]punch.Punch, error) {
	return nil, nil
}
func (f *fakePunchRepo) ListByEmployee(ctx context.Context, employeeID int) ([]punch.Punch, error) {
	return nil, nil
}
func (f *fakePunchRepo) Create(ctx context.Context, p punch.Punch) (int, error) { return 0, nil }
func (f *fakePunchRepo) Update(ctx context.Context, p punch.Punch) error        { return nil }
func (f *fakePunchRepo) Delete(ctx context.Context, id int) error               { return nil }

func (f *fakePunchRepo) MarkExported(ctx context.Context, ids []int, at time.Time) error {
	f.marked = append(f.marked, ids...)
	return nil
}

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 8, 0, 0, 0, time.UTC)
	return &t
}

// validRecord builds a fully-resolvable record: 120 worked minutes, no
// overtime, both external ids present.
func validRecord(punchID int) export.Record {
	return export.Record{
		PunchID:            punchID,
		EmployeeID:         intPtr(1),
		Entry:              datePtr(2024, 3, 4),
		WorkedMinutes:      intPtr(120),
		OvertimeMinutes:    intPtr(0),
		AdditionalMinutes:  intPtr(0),
		NovedadID:          intPtr(5),
		EmployeeLegajo:     intPtr(100),
		NovedadCode:        strPtr("HN01"),
		ExternalEmployeeID: intPtr(900),
		ExternalNovedadID:  intPtr(50),
	}
}

func newService(ledger *fakeLedgerRepo, punches *fakePunchRepo) export.ExportService {
	svc := NewExportService(ledger, punches)
	impl := svc.(*ExportServiceImpl)
	impl.now = func() time.Time { return time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC) }
	return svc
}

func TestExport_EmptyInputRejected(t *testing.T) {
	svc := newService(&fakeLedgerRepo{}, &fakePunchRepo{})

	result, err := svc.Export(context.Background(), nil)
	require.NoError(t, err)

	assert.Zero(t, result.Exported)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "No punches specified")
}

func TestExport_SinglePunchWorkedOnly(t *testing.T) {
	ledger := &fakeLedgerRepo{records: []export.Record{validRecord(1)}}
	punches := &fakePunchRepo{}
	svc := newService(ledger, punches)

	result, err := svc.Export(context.Background(), []int{1})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Exported)
	assert.Zero(t, result.Failed)
	require.Len(t, ledger.inserted, 1)
	assert.Equal(t, 900, ledger.inserted[0].ExternalEmployeeID)
	assert.Equal(t, 50, ledger.inserted[0].ExternalNovedadID)
	assert.InDelta(t, 2.0, ledger.inserted[0].QuantityHours, 0.001)
	// Effective date is the export day, not the punch day.
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), ledger.inserted[0].EffectiveDate)
	assert.Equal(t, []int{1}, punches.marked)
}

func TestExport_GroupingAcrossDates(t *testing.T) {
	rec1 := validRecord(1)
	rec1.WorkedMinutes = intPtr(120)
	rec2 := validRecord(2)
	rec2.WorkedMinutes = intPtr(180)
	rec2.Entry = datePtr(2024, 3, 5)

	ledger := &fakeLedgerRepo{records: []export.Record{rec1, rec2}}
	punches := &fakePunchRepo{}
	svc := newService(ledger, punches)

	result, err := svc.Export(context.Background(), []int{1, 2})
	require.NoError(t, err)

	// Same employee and novedad on different dates collapse into one row.
	assert.Equal(t, 2, result.Exported)
	require.Len(t, ledger.inserted, 1)
	assert.InDelta(t, 5.0, ledger.inserted[0].QuantityHours, 0.001)
	assert.ElementsMatch(t, []int{1, 2}, punches.marked)
}

func TestExport_ExtrasSplitToSectorNovedad(t *testing.T) {
	rec := validRecord(1)
	rec.OvertimeMinutes = intPtr(60)
	rec.AdditionalMinutes = intPtr(30)
	rec.SectorExtrasNovedadID = intPtr(7)
	rec.ExtrasNovedadCode = strPtr("HE01")
	rec.ExternalExtrasNovedadID = intPtr(70)

	ledger := &fakeLedgerRepo{records: []export.Record{rec}}
	punches := &fakePunchRepo{}
	svc := newService(ledger, punches)

	result, err := svc.Export(context.Background(), []int{1})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Exported)
	require.Len(t, ledger.inserted, 2)

	byNovedad := map[int]float64{}
	for _, entry := range ledger.inserted {
		byNovedad[entry.ExternalNovedadID] = entry.QuantityHours
	}
	assert.InDelta(t, 2.0, byNovedad[50], 0.001) // worked under the punch's novedad
	assert.InDelta(t, 1.5, byNovedad[70], 0.001) // official+additional under the extras novedad
}

func TestExport_AlreadyExportedIsAdvisoryOnly(t *testing.T) {
	rec := validRecord(1)
	rec.Exported = true

	ledger := &fakeLedgerRepo{records: []export.Record{rec}}
	punches := &fakePunchRepo{}
	svc := newService(ledger, punches)

	result, err := svc.Export(context.Background(), []int{1})
	require.NoError(t, err)

	assert.Zero(t, result.Exported)
	assert.Zero(t, result.Failed)
	assert.Empty(t, result.Errors)
	assert.NotEmpty(t, result.Warnings)
	assert.Empty(t, ledger.inserted)
	assert.Empty(t, punches.marked)
}

func TestExport_ValidationFailuresDoNotBlockBatch(t *testing.T) {
	good := validRecord(1)

	noNovedad := validRecord(2)
	noNovedad.NovedadID = nil

	noExternalEmployee := validRecord(3)
	noExternalEmployee.ExternalEmployeeID = nil

	noEntry := validRecord(4)
	noEntry.Entry = nil

	extrasWithoutSectorNovedad := validRecord(5)
	extrasWithoutSectorNovedad.OvertimeMinutes = intPtr(60)

	ledger := &fakeLedgerRepo{records: []export.Record{good, noNovedad, noExternalEmployee, noEntry, extrasWithoutSectorNovedad}}
	punches := &fakePunchRepo{}
	svc := newService(ledger, punches)

	result, err := svc.Export(context.Background(), []int{1, 2, 3, 4, 5})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Exported)
	assert.Equal(t, 4, result.Failed)
	assert.Len(t, result.Errors, 4)
	assert.Equal(t, []int{1}, punches.marked)
}

func TestExport_FailedGroupLeavesPunchesOpen(t *testing.T) {
	// Two employees, one ledger insert fails.
	rec1 := validRecord(1)
	rec2 := validRecord(2)
	rec2.ExternalEmployeeID = intPtr(901)
	rec2.ExternalNovedadID = intPtr(51)

	ledger := &fakeLedgerRepo{
		records: []export.Record{rec1, rec2},
		failFor: map[int]bool{51: true},
	}
	punches := &fakePunchRepo{}
	svc := newService(ledger, punches)

	result, err := svc.Export(context.Background(), []int{1, 2})
	require.NoError(t, err)

	// The failed group's punch stays open for retry, the other exports.
	assert.Equal(t, 1, result.Exported)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, []int{1}, punches.marked)
	require.Len(t, ledger.inserted, 1)
	assert.Equal(t, 900, ledger.inserted[0].ExternalEmployeeID)
}

func TestExport_PunchInFailedExtrasGroupNotMarked(t *testing.T) {
	// Worked group succeeds, extras group fails: the punch must stay open.
	rec := validRecord(1)
	rec.OvertimeMinutes = intPtr(60)
	rec.SectorExtrasNovedadID = intPtr(7)
	rec.ExtrasNovedadCode = strPtr("HE01")
	rec.ExternalExtrasNovedadID = intPtr(70)

	ledger := &fakeLedgerRepo{
		records: []export.Record{rec},
		failFor: map[int]bool{70: true},
	}
	punches := &fakePunchRepo{}
	svc := newService(ledger, punches)

	result, err := svc.Export(context.Background(), []int{1})
	require.NoError(t, err)

	assert.Zero(t, result.Exported)
	assert.Equal(t, 1, result.Failed)
	assert.Empty(t, punches.marked)
}

func TestExport_ZeroMinutePunchProducesNoItems(t *testing.T) {
	rec := validRecord(1)
	rec.WorkedMinutes = intPtr(0)

	ledger := &fakeLedgerRepo{records: []export.Record{rec}}
	punches := &fakePunchRepo{}
	svc := newService(ledger, punches)

	result, err := svc.Export(context.Background(), []int{1})
	require.NoError(t, err)

	assert.Zero(t, result.Exported)
	assert.Empty(t, ledger.inserted)
	assert.Empty(t, punches.marked)
	assert.Contains(t, result.Message, "No hours to export")
}
