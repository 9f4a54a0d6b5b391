package punch

import (
	"context"
	"testing"
	"time"

	"github.com/fichadas/timeclock-backend-go/internal/domain/employee"
	"github.com/fichadas/timeclock-backend-go/internal/domain/hours"
	"github.com/fichadas/timeclock-backend-go/internal/domain/punch"
	"github.com/fichadas/timeclock-backend-go/internal/domain/sector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePunchRepo struct {
	punches map[int]*punch.Punch
	nextID  int
	deleted []int
	updated int
}

func newFakePunchRepo() *fakePunchRepo {
	return &fakePunchRepo{punches: map[int]*punch.Punch{}, nextID: 1}
}

func (f *fakePunchRepo) GetByID(ctx context.Context, id int) (*punch.Punch, error) {
	p, ok := f.punches[id]
	if !ok {
		return nil, punch.ErrPunchNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePunchRepo) List(ctx context.Context, filter punch.Filter) ([]punch.Punch, error) {
	var out []punch.Punch
	for id := 1; id < f.nextID; id++ {
		if p, ok := f.punches[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePunchRepo) ListByEmployee(ctx context.Context, employeeID int) ([]punch.Punch, error) {
	var out []punch.Punch
	for _, p := range f.punches {
		if p.EmployeeID != nil && *p.EmployeeID == employeeID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePunchRepo) Create(ctx context.Context, p punch.Punch) (int, error) {
	p.ID = f.nextID
	f.nextID++
	f.punches[p.ID] = &p
	return p.ID, nil
}

func (f *fakePunchRepo) Update(ctx context.Context, p punch.Punch) error {
	existing, ok := f.punches[p.ID]
	if !ok {
		return punch.ErrPunchNotFound
	}
	if existing.Exported {
		return punch.ErrPunchExported
	}
	p.Exported = existing.Exported
	p.ExportedAt = existing.ExportedAt
	f.punches[p.ID] = &p
	f.updated++
	return nil
}

func (f *fakePunchRepo) Delete(ctx context.Context, id int) error {
	existing, ok := f.punches[id]
	if !ok {
		return punch.ErrPunchNotFound
	}
	if existing.Exported {
		return punch.ErrPunchExported
	}
	delete(f.punches, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakePunchRepo) MarkExported(ctx context.Context, ids []int, at time.Time) error {
	for _, id := range ids {
		if p, ok := f.punches[id]; ok {
			p.Exported = true
			p.ExportedAt = &at
		}
	}
	return nil
}

type fakeEmployeeRepo struct {
	employees map[int]*employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id int) (*employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByLegajo(ctx context.Context, legajo int) (*employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.Legajo != nil && *emp.Legajo == legajo {
			return emp, nil
		}
	}
	return nil, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) { return nil, nil }
func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (int, error) {
	return 0, nil
}
func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error { return nil }
func (f *fakeEmployeeRepo) Delete(ctx context.Context, id int) error                { return nil }

type fakeSectorRepo struct {
	sectors map[int]*sector.Sector
}

func (f *fakeSectorRepo) GetByID(ctx context.Context, id int) (*sector.Sector, error) {
	s, ok := f.sectors[id]
	if !ok {
		return nil, sector.ErrSectorNotFound
	}
	return s, nil
}

func (f *fakeSectorRepo) List(ctx context.Context) ([]sector.Sector, error)        { return nil, nil }
func (f *fakeSectorRepo) Create(ctx context.Context, s sector.Sector) (int, error) { return 0, nil }
func (f *fakeSectorRepo) Update(ctx context.Context, s sector.Sector) error        { return nil }
func (f *fakeSectorRepo) Delete(ctx context.Context, id int) error                 { return nil }

// fakeHoursService hands back a fixed 8-hour split.
type fakeHoursService struct {
	calls int
}

func (f *fakeHoursService) Calculate(ctx context.Context, employeeID int, entry, exit time.Time, isSummer bool) (hours.Result, error) {
	f.calls++
	total := int(exit.Sub(entry).Minutes())
	worked := total
	if worked > 480 {
		worked = 480
	}
	return hours.Result{
		TotalMinutes:    total,
		WorkedMinutes:   worked,
		OvertimeMinutes: total - worked,
	}, nil
}

func intPtr(n int) *int { return &n }

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

type fixture struct {
	punches   *fakePunchRepo
	employees *fakeEmployeeRepo
	sectors   *fakeSectorRepo
	hours     *fakeHoursService
	svc       punch.PunchService
}

func newFixture() *fixture {
	punches := newFakePunchRepo()
	employees := &fakeEmployeeRepo{employees: map[int]*employee.Employee{
		1: {ID: 1, Name: strPtr("Juan Perez"), Legajo: intPtr(100), SectorID: intPtr(10)},
	}}
	sectors := &fakeSectorRepo{sectors: map[int]*sector.Sector{
		10: {ID: 10, Name: strPtr("Planta"), WorkedNovedadID: intPtr(5)},
	}}
	hoursSvc := &fakeHoursService{}
	return &fixture{
		punches:   punches,
		employees: employees,
		sectors:   sectors,
		hours:     hoursSvc,
		svc:       NewPunchService(punches, employees, sectors, hoursSvc),
	}
}

func (fx *fixture) seedPunch(exported bool) int {
	entry := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)
	exit := time.Date(2024, 3, 4, 17, 0, 0, 0, time.UTC)
	id, _ := fx.punches.Create(context.Background(), punch.Punch{
		EmployeeID: intPtr(1),
		Entry:      &entry,
		Exit:       &exit,
		Exported:   exported,
	})
	return id
}

func TestCreate_ComputesBuckets(t *testing.T) {
	fx := newFixture()

	entry := "2024-03-04T08:00:00Z"
	exit := "2024-03-04T18:00:00Z"
	resp, err := fx.svc.Create(context.Background(), punch.UpsertPunchRequest{
		EmployeeID: intPtr(1),
		Entry:      &entry,
		Exit:       &exit,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, fx.hours.calls)
	require.NotNil(t, resp.TotalMinutes)
	assert.Equal(t, 600, *resp.TotalMinutes)
	require.NotNil(t, resp.WorkedMinutes)
	assert.Equal(t, 480, *resp.WorkedMinutes)
	require.NotNil(t, resp.OvertimeMinutes)
	assert.Equal(t, 120, *resp.OvertimeMinutes)
}

func TestCreate_IncompletePunchSkipsCalculation(t *testing.T) {
	fx := newFixture()

	entry := "2024-03-04T08:00:00Z"
	resp, err := fx.svc.Create(context.Background(), punch.UpsertPunchRequest{
		EmployeeID: intPtr(1),
		Entry:      &entry,
	})
	require.NoError(t, err)

	assert.Zero(t, fx.hours.calls)
	assert.Nil(t, resp.TotalMinutes)
}

func TestCreate_RejectsExitBeforeEntry(t *testing.T) {
	fx := newFixture()

	entry := "2024-03-04T18:00:00Z"
	exit := "2024-03-04T08:00:00Z"
	_, err := fx.svc.Create(context.Background(), punch.UpsertPunchRequest{
		EmployeeID: intPtr(1),
		Entry:      &entry,
		Exit:       &exit,
	})
	require.Error(t, err)
}

func TestUpdate_ExportedPunchRejected(t *testing.T) {
	fx := newFixture()
	id := fx.seedPunch(true)

	entry := "2024-03-04T09:00:00Z"
	exit := "2024-03-04T17:00:00Z"
	_, err := fx.svc.Update(context.Background(), id, punch.UpsertPunchRequest{
		EmployeeID: intPtr(1),
		Entry:      &entry,
		Exit:       &exit,
	})
	assert.ErrorIs(t, err, punch.ErrPunchExported)
	assert.Zero(t, fx.punches.updated)
}

func TestDelete_ExportedPunchRejected(t *testing.T) {
	fx := newFixture()
	id := fx.seedPunch(true)

	err := fx.svc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, punch.ErrPunchExported)
	assert.Empty(t, fx.punches.deleted)
}

func TestDelete_OpenPunch(t *testing.T) {
	fx := newFixture()
	id := fx.seedPunch(false)

	err := fx.svc.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, []int{id}, fx.punches.deleted)
}

func TestRecalculate_ExportedPunchRejected(t *testing.T) {
	fx := newFixture()
	id := fx.seedPunch(true)

	_, err := fx.svc.Recalculate(context.Background(), id, false)
	assert.ErrorIs(t, err, punch.ErrPunchExported)
	assert.Zero(t, fx.hours.calls)
	assert.Zero(t, fx.punches.updated)
}

func TestRecalculate_UpdatesBuckets(t *testing.T) {
	fx := newFixture()
	id := fx.seedPunch(false)

	resp, err := fx.svc.Recalculate(context.Background(), id, false)
	require.NoError(t, err)

	assert.Equal(t, 540, resp.TotalMinutes)
	assert.Equal(t, 480, resp.WorkedMinutes)
	assert.Equal(t, 60, resp.OvertimeMinutes)
	assert.Equal(t, 1, fx.punches.updated)
}

func TestRecalculate_MissingTimes(t *testing.T) {
	fx := newFixture()
	id, _ := fx.punches.Create(context.Background(), punch.Punch{EmployeeID: intPtr(1)})

	_, err := fx.svc.Recalculate(context.Background(), id, false)
	assert.ErrorIs(t, err, punch.ErrMissingTimes)
}

func TestRecalculateAll_SkipsExportedAndCollectsWarnings(t *testing.T) {
	fx := newFixture()
	fx.seedPunch(false)
	fx.seedPunch(true)
	fx.punches.Create(context.Background(), punch.Punch{EmployeeID: intPtr(1)}) // no times

	resp, err := fx.svc.RecalculateAll(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Recalculated)
	assert.Equal(t, 1, resp.Skipped)
	assert.Equal(t, 1, resp.Failed)
	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "missing entry/exit")
}

func TestImport_CreatesPunchWithDefaultNovedad(t *testing.T) {
	fx := newFixture()

	result, err := fx.svc.Import(context.Background(), []punch.ImportRow{
		{Legajo: 100, Date: "2024-03-04", PunchPair: "08:00;17:00"},
	}, false)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Imported)
	assert.Zero(t, result.Skipped)

	p, err := fx.punches.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, p.NovedadID)
	assert.Equal(t, 5, *p.NovedadID)
	require.NotNil(t, p.Entry)
	assert.Equal(t, time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC), *p.Entry)
	require.NotNil(t, p.Exit)
	assert.Equal(t, time.Date(2024, 3, 4, 17, 0, 0, 0, time.UTC), *p.Exit)
}

func TestImport_UnknownLegajoSkipped(t *testing.T) {
	fx := newFixture()

	result, err := fx.svc.Import(context.Background(), []punch.ImportRow{
		{Legajo: 999, Date: "2024-03-04", PunchPair: "08:00;17:00"},
	}, false)
	require.NoError(t, err)

	assert.Zero(t, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "legajo 999")
}

func TestImport_BadRowsDoNotBlockGoodRows(t *testing.T) {
	fx := newFixture()

	result, err := fx.svc.Import(context.Background(), []punch.ImportRow{
		{Legajo: 100, Date: "not-a-date", PunchPair: "08:00;17:00"},
		{Legajo: 100, Date: "2024-03-04", PunchPair: "08:00"},
		{Legajo: 100, Date: "2024-03-05", PunchPair: "08:00;17:00"},
	}, false)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 2, result.Skipped)
	assert.Len(t, result.Errors, 2)
}

func TestParsePunchPair_SameDay(t *testing.T) {
	date := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	entry, exit, err := ParsePunchPair("08:00;17:00", date)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC), entry)
	assert.Equal(t, time.Date(2024, 3, 4, 17, 0, 0, 0, time.UTC), exit)
}

func TestParsePunchPair_NextDayExit(t *testing.T) {
	date := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	entry, exit, err := ParsePunchPair("22:00;6+15", date)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 4, 22, 0, 0, 0, time.UTC), entry)
	assert.Equal(t, time.Date(2024, 3, 5, 6, 15, 0, 0, time.UTC), exit)
}

func TestParsePunchPair_Invalid(t *testing.T) {
	date := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	cases := []string{"", "08:00", "25:00;17:00", "08:00;99:99"}
	for _, pair := range cases {
		_, _, err := ParsePunchPair(pair, date)
		assert.Error(t, err, "pair %q", pair)
	}
}
