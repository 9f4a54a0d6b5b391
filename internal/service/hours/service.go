package hours

import (
	"context"
	"fmt"
	"time"

	"github.com/fichadas/timeclock-backend-go/internal/domain/calcconfig"
	"github.com/fichadas/timeclock-backend-go/internal/domain/employee"
	"github.com/fichadas/timeclock-backend-go/internal/domain/hours"
	"github.com/fichadas/timeclock-backend-go/internal/domain/sector"
)

type HoursServiceImpl struct {
	configRepo   calcconfig.ConfigRepository
	employeeRepo employee.EmployeeRepository
	sectorRepo   sector.SectorRepository
}

func NewHoursService(
	configRepo calcconfig.ConfigRepository,
	employeeRepo employee.EmployeeRepository,
	sectorRepo sector.SectorRepository,
) hours.HoursService {
	return &HoursServiceImpl{
		configRepo:   configRepo,
		employeeRepo: employeeRepo,
		sectorRepo:   sectorRepo,
	}
}

// Calculate implements hours.HoursService. Business-data gaps (missing
// employee, sector or configuration) return a zero result with a warning,
// never an error: only infrastructure failures propagate.
func (s *HoursServiceImpl) Calculate(ctx context.Context, employeeID int, entry, exit time.Time, isSummer bool) (hours.Result, error) {
	var result hours.Result

	cfg, warning, err := s.resolveConfig(ctx, employeeID, entry, isSummer)
	if err != nil {
		return result, err
	}
	if cfg == nil {
		result.Warnings = append(result.Warnings, warning)
		return result, nil
	}
	result.Config = cfg

	totalMinutes := int(exit.Sub(entry).Minutes())
	result.TotalMinutes = totalMinutes

	// Late arrival against the expected entry, with tolerance and two
	// deduction tiers.
	deduction := 0
	minutesLate := 0

	if cfg.ExpectedEntry != nil {
		expectedEntry := truncateToDay(entry).Add(*cfg.ExpectedEntry)

		if entry.After(expectedEntry) {
			minutesLate = int(entry.Sub(expectedEntry).Minutes())

			if minutesLate > cfg.ToleranceMinutes {
				minutesOver := minutesLate - cfg.ToleranceMinutes

				if minutesOver >= 31 {
					deduction = cfg.LateDeduction31Plus
				} else if minutesOver >= 6 {
					deduction = cfg.LateDeduction6To30
				}

				if deduction > 0 {
					result.Warnings = append(result.Warnings,
						fmt.Sprintf("Late arrival: %d minutes. Deduction applied: %d minutes", minutesLate, deduction))
				}
			}
		} else if entry.Before(expectedEntry) {
			result.Warnings = append(result.Warnings, "Early arrival does not count as overtime")
		}
	}

	result.LateMinutes = minutesLate
	result.DeductionMinutes = deduction

	effectiveMinutes := totalMinutes - deduction
	if effectiveMinutes < 0 {
		effectiveMinutes = 0
		result.Warnings = append(result.Warnings, "Deductions exceed the time worked")
	}

	// Tiered allocation: normal, then official overtime, then additional
	// overtime. Whatever exceeds the last tier is dropped, not rebucketed.
	normalCap := cfg.NormalHours * 60
	officialCap := cfg.OfficialOvertimeHours * 60
	additionalCap := cfg.AdditionalOvertimeHours * 60

	if effectiveMinutes <= normalCap {
		result.WorkedMinutes = effectiveMinutes
	} else {
		result.WorkedMinutes = normalCap
		remaining := effectiveMinutes - normalCap

		if remaining <= officialCap {
			result.OvertimeMinutes = remaining
		} else {
			result.OvertimeMinutes = officialCap
			remaining -= officialCap

			if additionalCap > 0 {
				if remaining <= additionalCap {
					result.AdditionalMinutes = remaining
				} else {
					result.AdditionalMinutes = additionalCap
					result.Warnings = append(result.Warnings,
						fmt.Sprintf("%d excess minutes left uncategorized", remaining-additionalCap))
				}
			} else {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("This sector/season does not allow additional overtime. %d minutes left uncategorized", remaining))
			}
		}
	}

	if totalMinutes > 720 {
		result.Warnings = append(result.Warnings, "Shift exceeds 12 hours. Check the punch data")
	}
	if totalMinutes < 60 {
		result.Warnings = append(result.Warnings, "Shift under 1 hour. Check the punch data")
	}

	return result, nil
}

// resolveConfig finds the active rule set for the employee's sector, season
// and, for rotating sectors, the inferred shift. A nil config with a warning
// means no rules apply; an error means the lookup itself failed.
func (s *HoursServiceImpl) resolveConfig(ctx context.Context, employeeID int, entry time.Time, isSummer bool) (*calcconfig.Config, string, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if err == employee.ErrEmployeeNotFound {
			return nil, fmt.Sprintf("Employee with id %d not found", employeeID), nil
		}
		return nil, "", err
	}

	if emp.SectorID == nil {
		return nil, fmt.Sprintf("Employee %s (legajo %s) has no sector assigned",
			strOrUnknown(emp.Name), intOrUnknown(emp.Legajo)), nil
	}

	sec, err := s.sectorRepo.GetByID(ctx, *emp.SectorID)
	if err != nil {
		if err == sector.ErrSectorNotFound {
			return nil, fmt.Sprintf("Sector with id %d not found", *emp.SectorID), nil
		}
		return nil, "", err
	}

	if !sec.IsRotating {
		cfg, err := s.configRepo.GetActiveBySector(ctx, sec.ID, isSummer)
		if err != nil {
			return nil, "", err
		}
		if cfg == nil {
			return nil, fmt.Sprintf("No active configuration for sector %d (%s). Configure the calculation rules for this sector",
				sec.ID, seasonLabel(isSummer)), nil
		}
		return cfg, "", nil
	}

	if emp.RotationStart == nil {
		return nil, fmt.Sprintf("Employee %s belongs to a rotating sector but has no rotation start date configured",
			strOrUnknown(emp.Name)), nil
	}

	shiftType := InferShiftType(*emp.RotationStart, entry)

	cfg, err := s.configRepo.GetActiveBySectorShift(ctx, sec.ID, isSummer, shiftType)
	if err != nil {
		return nil, "", err
	}
	if cfg == nil {
		return nil, fmt.Sprintf("No active configuration for rotating sector %s, %s shift (%s). Configure the calculation rules for both shifts",
			strOrUnknown(sec.Name), shiftType, seasonLabel(isSummer)), nil
	}

	// Guard against stale rotation start dates: the clock-in hour must
	// agree with the shift the rotation assigns.
	impliedShift := shiftImpliedByEntry(entry)
	if impliedShift != shiftType {
		return nil, fmt.Sprintf("Entry time (%s) suggests the %s shift but the rotation assigns the %s shift. Check the rotation start date or the punch data",
			entry.Format("15:04"), impliedShift, shiftType), nil
	}

	return cfg, "", nil
}

func seasonLabel(isSummer bool) string {
	if isSummer {
		return "summer season"
	}
	return "winter season"
}

func strOrUnknown(s *string) string {
	if s == nil {
		return "?"
	}
	return *s
}

func intOrUnknown(n *int) string {
	if n == nil {
		return "?"
	}
	return fmt.Sprintf("%d", *n)
}
