package calcconfig

import (
	"context"
	"sync"
	"testing"

	"github.com/fichadas/timeclock-backend-go/internal/domain/calcconfig"
	"github.com/fichadas/timeclock-backend-go/internal/domain/sector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConfigRepo struct {
	configs map[int]*calcconfig.Config
	nextID  int
}

func newFakeConfigRepo() *fakeConfigRepo {
	return &fakeConfigRepo{configs: map[int]*calcconfig.Config{}, nextID: 1}
}

func sameKey(a, b calcconfig.Config) bool {
	if a.SectorID != b.SectorID || a.IsSummer != b.IsSummer {
		return false
	}
	if (a.ShiftType == nil) != (b.ShiftType == nil) {
		return false
	}
	return a.ShiftType == nil || *a.ShiftType == *b.ShiftType
}

func (f *fakeConfigRepo) GetByID(ctx context.Context, id int) (*calcconfig.Config, error) {
	cfg, ok := f.configs[id]
	if !ok {
		return nil, calcconfig.ErrConfigNotFound
	}
	cp := *cfg
	return &cp, nil
}

func (f *fakeConfigRepo) List(ctx context.Context) ([]calcconfig.Config, error) {
	var out []calcconfig.Config
	for id := 1; id < f.nextID; id++ {
		if cfg, ok := f.configs[id]; ok {
			out = append(out, *cfg)
		}
	}
	return out, nil
}

func (f *fakeConfigRepo) ListBySector(ctx context.Context, sectorID int) ([]calcconfig.Config, error) {
	all, _ := f.List(ctx)
	var out []calcconfig.Config
	for _, cfg := range all {
		if cfg.SectorID == sectorID {
			out = append(out, cfg)
		}
	}
	return out, nil
}

func (f *fakeConfigRepo) GetActiveBySector(ctx context.Context, sectorID int, isSummer bool) (*calcconfig.Config, error) {
	for _, cfg := range f.configs {
		if cfg.SectorID == sectorID && cfg.IsSummer == isSummer && cfg.ShiftType == nil && cfg.Active {
			cp := *cfg
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeConfigRepo) GetActiveBySectorShift(ctx context.Context, sectorID int, isSummer bool, shiftType string) (*calcconfig.Config, error) {
	for _, cfg := range f.configs {
		if cfg.SectorID == sectorID && cfg.IsSummer == isSummer && cfg.ShiftType != nil && *cfg.ShiftType == shiftType && cfg.Active {
			cp := *cfg
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeConfigRepo) Create(ctx context.Context, cfg calcconfig.Config) (int, error) {
	if cfg.Active {
		for _, existing := range f.configs {
			if existing.Active && sameKey(*existing, cfg) {
				existing.Active = false
			}
		}
	}
	cfg.ID = f.nextID
	f.nextID++
	f.configs[cfg.ID] = &cfg
	return cfg.ID, nil
}

func (f *fakeConfigRepo) Update(ctx context.Context, cfg calcconfig.Config) error {
	if _, ok := f.configs[cfg.ID]; !ok {
		return calcconfig.ErrConfigNotFound
	}
	if cfg.Active {
		for _, existing := range f.configs {
			if existing.ID != cfg.ID && existing.Active && sameKey(*existing, cfg) {
				existing.Active = false
			}
		}
	}
	f.configs[cfg.ID] = &cfg
	return nil
}

func (f *fakeConfigRepo) Delete(ctx context.Context, id int) error {
	if _, ok := f.configs[id]; !ok {
		return calcconfig.ErrConfigNotFound
	}
	delete(f.configs, id)
	return nil
}

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

func strPtr(s string) *string { return &s }

func newService(repo *fakeConfigRepo) calcconfig.ConfigService {
	name := "Planta"
	turnos := "Turnos"
	sectors := &fakeSectorRepo{sectors: map[int]*sector.Sector{
		10: {ID: 10, Name: &name, IsRotating: false},
		20: {ID: 20, Name: &turnos, IsRotating: true},
	}}
	return NewConfigService(repo, sectors)
}

func baseRequest(sectorID int) calcconfig.UpsertConfigRequest {
	return calcconfig.UpsertConfigRequest{
		SectorID:              sectorID,
		NormalHours:           9,
		OfficialOvertimeHours: 2,
		Active:                true,
	}
}

func TestCreate_ShiftRequiredForRotatingSector(t *testing.T) {
	svc := newService(newFakeConfigRepo())

	req := baseRequest(20)
	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, calcconfig.ErrShiftRequired)
}

func TestCreate_ShiftRejectedForFixedSector(t *testing.T) {
	svc := newService(newFakeConfigRepo())

	req := baseRequest(10)
	req.ShiftType = strPtr(calcconfig.ShiftDay)
	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, calcconfig.ErrShiftNotAllowed)
}

func TestCreate_ActivationDeactivatesSibling(t *testing.T) {
	repo := newFakeConfigRepo()
	svc := newService(repo)

	first, err := svc.Create(context.Background(), baseRequest(10))
	require.NoError(t, err)
	assert.True(t, first.Active)

	second, err := svc.Create(context.Background(), baseRequest(10))
	require.NoError(t, err)
	assert.True(t, second.Active)

	stored, err := repo.GetByID(context.Background(), first.ID)
	require.NoError(t, err)
	assert.False(t, stored.Active)
}

func TestCreate_DifferentKeysStayActive(t *testing.T) {
	repo := newFakeConfigRepo()
	svc := newService(repo)

	winter := baseRequest(10)
	summer := baseRequest(10)
	summer.IsSummer = true

	_, err := svc.Create(context.Background(), winter)
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), summer)
	require.NoError(t, err)

	w, err := repo.GetActiveBySector(context.Background(), 10, false)
	require.NoError(t, err)
	assert.NotNil(t, w)

	s, err := repo.GetActiveBySector(context.Background(), 10, true)
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestCreate_RotatingShiftsIndependentlyActive(t *testing.T) {
	repo := newFakeConfigRepo()
	svc := newService(repo)

	day := baseRequest(20)
	day.ShiftType = strPtr(calcconfig.ShiftDay)
	night := baseRequest(20)
	night.ShiftType = strPtr(calcconfig.ShiftNight)

	_, err := svc.Create(context.Background(), day)
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), night)
	require.NoError(t, err)

	d, err := repo.GetActiveBySectorShift(context.Background(), 20, false, calcconfig.ShiftDay)
	require.NoError(t, err)
	assert.NotNil(t, d)

	n, err := repo.GetActiveBySectorShift(context.Background(), 20, false, calcconfig.ShiftNight)
	require.NoError(t, err)
	assert.NotNil(t, n)
}

func TestCreate_ConcurrentActivationsLeaveOneActive(t *testing.T) {
	repo := newFakeConfigRepo()
	svc := newService(repo)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.Create(context.Background(), baseRequest(10))
		}()
	}
	wg.Wait()

	configs, err := repo.ListBySector(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, configs, 10)

	active := 0
	for _, cfg := range configs {
		if cfg.Active {
			active++
		}
	}
	assert.Equal(t, 1, active)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := newService(newFakeConfigRepo())

	_, err := svc.Update(context.Background(), 99, baseRequest(10))
	assert.ErrorIs(t, err, calcconfig.ErrConfigNotFound)
}
