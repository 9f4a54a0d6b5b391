package punch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fichadas/timeclock-backend-go/internal/domain/employee"
	"github.com/fichadas/timeclock-backend-go/internal/domain/hours"
	"github.com/fichadas/timeclock-backend-go/internal/domain/punch"
	"github.com/fichadas/timeclock-backend-go/internal/domain/sector"
)

type PunchServiceImpl struct {
	punchRepo    punch.PunchRepository
	employeeRepo employee.EmployeeRepository
	sectorRepo   sector.SectorRepository
	hoursSvc     hours.HoursService
}

func NewPunchService(
	punchRepo punch.PunchRepository,
	employeeRepo employee.EmployeeRepository,
	sectorRepo sector.SectorRepository,
	hoursSvc hours.HoursService,
) punch.PunchService {
	return &PunchServiceImpl{
		punchRepo:    punchRepo,
		employeeRepo: employeeRepo,
		sectorRepo:   sectorRepo,
		hoursSvc:     hoursSvc,
	}
}

// Get implements punch.PunchService.
func (s *PunchServiceImpl) Get(ctx context.Context, id int) (punch.PunchResponse, error) {
	p, err := s.punchRepo.GetByID(ctx, id)
	if err != nil {
		return punch.PunchResponse{}, err
	}
	return punch.ToResponse(*p), nil
}

// List implements punch.PunchService.
func (s *PunchServiceImpl) List(ctx context.Context, filter punch.Filter) ([]punch.PunchResponse, error) {
	punches, err := s.punchRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toResponses(punches), nil
}

// ListByEmployee implements punch.PunchService.
func (s *PunchServiceImpl) ListByEmployee(ctx context.Context, employeeID int) ([]punch.PunchResponse, error) {
	punches, err := s.punchRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return toResponses(punches), nil
}

func toResponses(punches []punch.Punch) []punch.PunchResponse {
	responses := make([]punch.PunchResponse, 0, len(punches))
	for _, p := range punches {
		responses = append(responses, punch.ToResponse(p))
	}
	return responses
}

// Create implements punch.PunchService. When the punch carries an employee
// and both timestamps, its minute buckets are computed on the spot.
func (s *PunchServiceImpl) Create(ctx context.Context, req punch.UpsertPunchRequest) (punch.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	p := req.ToEntity()

	if err := s.computeBuckets(ctx, &p, req.IsSummer); err != nil {
		return punch.PunchResponse{}, err
	}

	id, err := s.punchRepo.Create(ctx, p)
	if err != nil {
		return punch.PunchResponse{}, err
	}

	created, err := s.punchRepo.GetByID(ctx, id)
	if err != nil {
		return punch.PunchResponse{}, err
	}
	return punch.ToResponse(*created), nil
}

// Update implements punch.PunchService. Exported punches are frozen.
func (s *PunchServiceImpl) Update(ctx context.Context, id int, req punch.UpsertPunchRequest) (punch.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	existing, err := s.punchRepo.GetByID(ctx, id)
	if err != nil {
		return punch.PunchResponse{}, err
	}
	if existing.Exported {
		return punch.PunchResponse{}, punch.ErrPunchExported
	}

	p := req.ToEntity()
	p.ID = id

	if err := s.computeBuckets(ctx, &p, req.IsSummer); err != nil {
		return punch.PunchResponse{}, err
	}

	if err := s.punchRepo.Update(ctx, p); err != nil {
		return punch.PunchResponse{}, err
	}

	updated, err := s.punchRepo.GetByID(ctx, id)
	if err != nil {
		return punch.PunchResponse{}, err
	}
	return punch.ToResponse(*updated), nil
}

// Delete implements punch.PunchService. Exported punches are frozen.
func (s *PunchServiceImpl) Delete(ctx context.Context, id int) error {
	existing, err := s.punchRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.Exported {
		return punch.ErrPunchExported
	}

	return s.punchRepo.Delete(ctx, id)
}

// Recalculate implements punch.PunchService.
func (s *PunchServiceImpl) Recalculate(ctx context.Context, id int, isSummer bool) (punch.RecalculateResponse, error) {
	p, err := s.punchRepo.GetByID(ctx, id)
	if err != nil {
		return punch.RecalculateResponse{}, err
	}

	if p.Exported {
		return punch.RecalculateResponse{}, punch.ErrPunchExported
	}
	if p.EmployeeID == nil {
		return punch.RecalculateResponse{}, punch.ErrMissingEmployee
	}
	if p.Entry == nil || p.Exit == nil {
		return punch.RecalculateResponse{}, punch.ErrMissingTimes
	}

	result, err := s.hoursSvc.Calculate(ctx, *p.EmployeeID, *p.Entry, *p.Exit, isSummer)
	if err != nil {
		return punch.RecalculateResponse{}, err
	}

	applyResult(p, result)

	if err := s.punchRepo.Update(ctx, *p); err != nil {
		return punch.RecalculateResponse{}, err
	}

	return punch.RecalculateResponse{
		Message:           "Punch recalculated",
		TotalMinutes:      result.TotalMinutes,
		WorkedMinutes:     result.WorkedMinutes,
		OvertimeMinutes:   result.OvertimeMinutes,
		AdditionalMinutes: result.AdditionalMinutes,
		Warnings:          result.Warnings,
	}, nil
}

// RecalculateAll implements punch.PunchService. Exported punches are skipped,
// per-punch problems are collected as warnings and never abort the run.
func (s *PunchServiceImpl) RecalculateAll(ctx context.Context, isSummer bool) (punch.RecalculateAllResponse, error) {
	punches, err := s.punchRepo.List(ctx, punch.Filter{})
	if err != nil {
		return punch.RecalculateAllResponse{}, err
	}

	var resp punch.RecalculateAllResponse

	for _, p := range punches {
		if p.Exported {
			resp.Skipped++
			continue
		}
		if p.EmployeeID == nil {
			resp.Failed++
			resp.Warnings = append(resp.Warnings, fmt.Sprintf("Punch %d: no employee assigned", p.ID))
			continue
		}
		if p.Entry == nil || p.Exit == nil {
			resp.Failed++
			resp.Warnings = append(resp.Warnings, fmt.Sprintf("Punch %d: missing entry/exit time", p.ID))
			continue
		}

		result, err := s.hoursSvc.Calculate(ctx, *p.EmployeeID, *p.Entry, *p.Exit, isSummer)
		if err != nil {
			return resp, err
		}

		applyResult(&p, result)

		if err := s.punchRepo.Update(ctx, p); err != nil {
			resp.Failed++
			resp.Warnings = append(resp.Warnings, fmt.Sprintf("Punch %d: %v", p.ID, err))
			continue
		}
		resp.Recalculated++

		for _, warning := range result.Warnings {
			resp.Warnings = append(resp.Warnings, fmt.Sprintf("Punch %d: %s", p.ID, warning))
		}
	}

	resp.Message = fmt.Sprintf("Recalculated %d punches, %d skipped, %d with errors",
		resp.Recalculated, resp.Skipped, resp.Failed)

	slog.Info("Bulk punch recalculation finished",
		"recalculated", resp.Recalculated,
		"skipped", resp.Skipped,
		"failed", resp.Failed)

	return resp, nil
}

// computeBuckets fills the punch's minute fields when it has enough data for
// a calculation; incomplete punches keep nil buckets until recalculated.
func (s *PunchServiceImpl) computeBuckets(ctx context.Context, p *punch.Punch, isSummer bool) error {
	if p.EmployeeID == nil || p.Entry == nil || p.Exit == nil {
		return nil
	}

	result, err := s.hoursSvc.Calculate(ctx, *p.EmployeeID, *p.Entry, *p.Exit, isSummer)
	if err != nil {
		return err
	}

	applyResult(p, result)

	for _, warning := range result.Warnings {
		slog.Warn("Hours calculation warning", "punch_id", p.ID, "warning", warning)
	}

	return nil
}

func applyResult(p *punch.Punch, result hours.Result) {
	p.TotalMinutes = &result.TotalMinutes
	p.WorkedMinutes = &result.WorkedMinutes
	p.OvertimeMinutes = &result.OvertimeMinutes
	p.AdditionalMinutes = &result.AdditionalMinutes
}
