package calcconfig

import (
	"context"
	"fmt"
	"sync"

	"github.com/fichadas/timeclock-backend-go/internal/domain/calcconfig"
	"github.com/fichadas/timeclock-backend-go/internal/domain/sector"
)

type ConfigServiceImpl struct {
	configRepo calcconfig.ConfigRepository
	sectorRepo sector.SectorRepository

	// Activation writes for the same (sector, season, shift) key are
	// serialized so two concurrent activations cannot both leave their
	// row active.
	mu       sync.Mutex
	keyLocks map[string]*sync.Mutex
}

func NewConfigService(configRepo calcconfig.ConfigRepository, sectorRepo sector.SectorRepository) calcconfig.ConfigService {
	return &ConfigServiceImpl{
		configRepo: configRepo,
		sectorRepo: sectorRepo,
		keyLocks:   make(map[string]*sync.Mutex),
	}
}

func (s *ConfigServiceImpl) lockKey(cfg calcconfig.Config) func() {
	key := fmt.Sprintf("%d|%t|%s", cfg.SectorID, cfg.IsSummer, shiftLabel(cfg.ShiftType))

	s.mu.Lock()
	lock, ok := s.keyLocks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.keyLocks[key] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

func shiftLabel(shiftType *string) string {
	if shiftType == nil {
		return "-"
	}
	return *shiftType
}

// Get implements calcconfig.ConfigService.
func (s *ConfigServiceImpl) Get(ctx context.Context, id int) (calcconfig.ConfigResponse, error) {
	cfg, err := s.configRepo.GetByID(ctx, id)
	if err != nil {
		return calcconfig.ConfigResponse{}, err
	}
	return calcconfig.ToResponse(*cfg), nil
}

// List implements calcconfig.ConfigService.
func (s *ConfigServiceImpl) List(ctx context.Context) ([]calcconfig.ConfigResponse, error) {
	configs, err := s.configRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(configs), nil
}

// ListBySector implements calcconfig.ConfigService.
func (s *ConfigServiceImpl) ListBySector(ctx context.Context, sectorID int) ([]calcconfig.ConfigResponse, error) {
	configs, err := s.configRepo.ListBySector(ctx, sectorID)
	if err != nil {
		return nil, err
	}
	return toResponses(configs), nil
}

func toResponses(configs []calcconfig.Config) []calcconfig.ConfigResponse {
	responses := make([]calcconfig.ConfigResponse, 0, len(configs))
	for _, cfg := range configs {
		responses = append(responses, calcconfig.ToResponse(cfg))
	}
	return responses
}

// Create implements calcconfig.ConfigService. Rotating sectors require a
// shift type, fixed sectors reject one.
func (s *ConfigServiceImpl) Create(ctx context.Context, req calcconfig.UpsertConfigRequest) (calcconfig.ConfigResponse, error) {
	if err := req.Validate(); err != nil {
		return calcconfig.ConfigResponse{}, err
	}

	cfg := req.ToEntity()

	if err := s.checkShiftAgainstSector(ctx, cfg); err != nil {
		return calcconfig.ConfigResponse{}, err
	}

	unlock := s.lockKey(cfg)
	defer unlock()

	id, err := s.configRepo.Create(ctx, cfg)
	if err != nil {
		return calcconfig.ConfigResponse{}, err
	}

	created, err := s.configRepo.GetByID(ctx, id)
	if err != nil {
		return calcconfig.ConfigResponse{}, err
	}
	return calcconfig.ToResponse(*created), nil
}

// Update implements calcconfig.ConfigService.
func (s *ConfigServiceImpl) Update(ctx context.Context, id int, req calcconfig.UpsertConfigRequest) (calcconfig.ConfigResponse, error) {
	if err := req.Validate(); err != nil {
		return calcconfig.ConfigResponse{}, err
	}

	if _, err := s.configRepo.GetByID(ctx, id); err != nil {
		return calcconfig.ConfigResponse{}, err
	}

	cfg := req.ToEntity()
	cfg.ID = id

	if err := s.checkShiftAgainstSector(ctx, cfg); err != nil {
		return calcconfig.ConfigResponse{}, err
	}

	unlock := s.lockKey(cfg)
	defer unlock()

	if err := s.configRepo.Update(ctx, cfg); err != nil {
		return calcconfig.ConfigResponse{}, err
	}

	updated, err := s.configRepo.GetByID(ctx, id)
	if err != nil {
		return calcconfig.ConfigResponse{}, err
	}
	return calcconfig.ToResponse(*updated), nil
}

// Delete implements calcconfig.ConfigService.
func (s *ConfigServiceImpl) Delete(ctx context.Context, id int) error {
	return s.configRepo.Delete(ctx, id)
}

func (s *ConfigServiceImpl) checkShiftAgainstSector(ctx context.Context, cfg calcconfig.Config) error {
	sec, err := s.sectorRepo.GetByID(ctx, cfg.SectorID)
	if err != nil {
		return err
	}

	if sec.IsRotating && cfg.ShiftType == nil {
		return calcconfig.ErrShiftRequired
	}
	if !sec.IsRotating && cfg.ShiftType != nil {
		return calcconfig.ErrShiftNotAllowed
	}

	return nil
}
