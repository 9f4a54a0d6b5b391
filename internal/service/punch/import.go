package punch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fichadas/timeclock-backend-go/internal/domain/employee"
	"github.com/fichadas/timeclock-backend-go/internal/domain/punch"
	"github.com/fichadas/timeclock-backend-go/internal/pkg/validator"
)

// Import implements punch.PunchService. Rows come pre-extracted from the
// clock spreadsheet; this step interprets the punch pair, resolves the
// employee by legajo, computes the buckets and stores the punch with the
// sector's default worked novedad.
func (s *PunchServiceImpl) Import(ctx context.Context, rows []punch.ImportRow, isSummer bool) (punch.ImportResult, error) {
	var result punch.ImportResult

	for i, row := range rows {
		rowLabel := i + 1

		date, ok := validator.IsValidDate(row.Date)
		if !ok {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Row %d: invalid date '%s' for legajo %d", rowLabel, row.Date, row.Legajo))
			result.Skipped++
			continue
		}

		entry, exit, err := ParsePunchPair(row.PunchPair, date)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowLabel, err))
			result.Skipped++
			continue
		}

		emp, err := s.employeeRepo.GetByLegajo(ctx, row.Legajo)
		if err != nil {
			if err == employee.ErrEmployeeNotFound {
				result.Errors = append(result.Errors,
					fmt.Sprintf("Row %d: employee with legajo %d not found", rowLabel, row.Legajo))
				result.Skipped++
				continue
			}
			return result, err
		}

		p := punch.Punch{
			EmployeeID: &emp.ID,
			Entry:      &entry,
			Exit:       &exit,
		}

		// Default the novedad from the sector's worked-hours code.
		if emp.SectorID != nil {
			sec, err := s.sectorRepo.GetByID(ctx, *emp.SectorID)
			if err == nil && sec.WorkedNovedadID != nil {
				p.NovedadID = sec.WorkedNovedadID
			}
		}

		if err := s.computeBuckets(ctx, &p, isSummer); err != nil {
			return result, err
		}

		if _, err := s.punchRepo.Create(ctx, p); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowLabel, err))
			result.Skipped++
			continue
		}
		result.Imported++
	}

	return result, nil
}

// ParsePunchPair interprets the clock file's punch column: two HH:MM times
// separated by ';'. A '+' instead of ':' in the exit time means the employee
// clocked out the next calendar day ("08:00;17+30" is a 17:30 exit tomorrow).
func ParsePunchPair(pair string, date time.Time) (entry, exit time.Time, err error) {
	parts := strings.Split(pair, ";")
	if len(parts) < 2 {
		return entry, exit, fmt.Errorf("punch pair must have at least entry and exit times")
	}

	entryClock, ok := validator.ParseClock(parts[0])
	if !ok {
		return entry, exit, fmt.Errorf("invalid entry time '%s'", parts[0])
	}

	exitStr := parts[1]
	nextDay := strings.Contains(exitStr, "+")
	if nextDay {
		exitStr = strings.Replace(exitStr, "+", ":", 1)
	}

	exitClock, ok := validator.ParseClock(exitStr)
	if !ok {
		return entry, exit, fmt.Errorf("invalid exit time '%s'", parts[1])
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	entry = day.Add(entryClock)
	exit = day.Add(exitClock)
	if nextDay {
		exit = exit.AddDate(0, 0, 1)
	}

	return entry, exit, nil
}
