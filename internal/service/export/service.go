package export

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/fichadas/timeclock-backend-go/internal/domain/export"
	"github.com/fichadas/timeclock-backend-go/internal/domain/punch"
	"github.com/google/uuid"
)

type hourType string

const (
	hourTypeWorked hourType = "worked"
	hourTypeExtras hourType = "extras"
)

// exportItem is one (punch, hour-type) pair headed for the ledger. Worked
// minutes carry the punch's own novedad, extras carry the sector's configured
// extras novedad.
type exportItem struct {
	punchID          int
	externalEmployee int
	externalNovedad  int
	minutes          int
	legajo           int
	novedadCode      string
	hourType         hourType
	punchDate        time.Time
}

type groupKey struct {
	externalEmployee int
	externalNovedad  int
}

type ExportServiceImpl struct {
	ledgerRepo export.LedgerRepository
	punchRepo  punch.PunchRepository
	now        func() time.Time
}

func NewExportService(ledgerRepo export.LedgerRepository, punchRepo punch.PunchRepository) export.ExportService {
	return &ExportServiceImpl{
		ledgerRepo: ledgerRepo,
		punchRepo:  punchRepo,
		now:        time.Now,
	}
}

// Export implements export.ExportService. Validation failures and per-group
// insert failures are collected into the result, they never abort the batch.
// Only punches whose every ledger group succeeded get flagged as exported, so
// a punch caught in a failed insert stays open and can be retried.
func (s *ExportServiceImpl) Export(ctx context.Context, punchIDs []int) (export.Result, error) {
	var result export.Result
	batchID := uuid.NewString()

	if len(punchIDs) == 0 {
		result.Errors = append(result.Errors, "No punches specified for export")
		return result, nil
	}

	records, err := s.ledgerRepo.FetchForExport(ctx, punchIDs)
	if err != nil {
		return result, fmt.Errorf("fetch punches for export: %w", err)
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "The specified punches were not found")
		return result, nil
	}

	valid := s.validate(records, &result)
	if len(valid) == 0 {
		result.Message = "No valid punches to export"
		return result, nil
	}

	items := buildItems(valid)
	if len(items) == 0 {
		result.Message = "No hours to export (worked and extras are both 0)"
		return result, nil
	}

	groups := groupItems(items)

	result.Warnings = append(result.Warnings,
		fmt.Sprintf("Processed %d punches into %d items (worked/extras split) grouped into %d ledger records",
			len(valid), len(items), len(groups)))

	// Per-punch outcome: a punch can sit in both a worked group and an
	// extras group, it only counts as exported when every group holding
	// one of its items succeeded.
	failedPunches := make(map[int]bool)

	for _, key := range sortedKeys(groups) {
		members := groups[key]

		totalHours := 0.0
		for _, item := range members {
			totalHours += float64(item.minutes) / 60.0
		}

		entry := export.LedgerEntry{
			ExternalEmployeeID: key.externalEmployee,
			ExternalNovedadID:  key.externalNovedad,
			EffectiveDate:      truncateToDay(s.now()),
			QuantityHours:      totalHours,
		}

		if err := s.ledgerRepo.Insert(ctx, entry); err != nil {
			for _, item := range members {
				result.Errors = append(result.Errors,
					fmt.Sprintf("Punch %d: failed to export %s hours - %v", item.punchID, item.hourType, err))
				result.Failed++
				failedPunches[item.punchID] = true
			}
			continue
		}

		result.Warnings = append(result.Warnings, groupSummary(members, totalHours, s.now()))
	}

	var exportedIDs []int
	for _, rec := range valid {
		if !failedPunches[rec.PunchID] {
			exportedIDs = append(exportedIDs, rec.PunchID)
		}
	}

	if len(exportedIDs) > 0 {
		if err := s.punchRepo.MarkExported(ctx, exportedIDs, s.now()); err != nil {
			return result, fmt.Errorf("mark punches as exported: %w", err)
		}
	}

	result.Exported = len(exportedIDs)

	if result.Exported > 0 {
		result.Message = fmt.Sprintf("Exported %d punches (%d worked/extras items) grouped into %d ledger records",
			result.Exported, len(items), len(groups))
		if result.Failed > 0 {
			result.Message += fmt.Sprintf(". %d items with errors", result.Failed)
		}
	} else {
		result.Message = "No punches could be exported"
	}

	slog.Info("Punch export finished",
		"batch_id", batchID,
		"requested", len(punchIDs),
		"exported", result.Exported,
		"failed", result.Failed,
		"groups", len(groups))

	return result, nil
}

// validate routes each record to the valid list, the warning list (already
// exported) or the error list. One bad record never blocks the rest.
func (s *ExportServiceImpl) validate(records []export.Record, result *export.Result) []export.Record {
	var valid []export.Record

	for _, rec := range records {
		if rec.Exported {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Punch %d: already exported", rec.PunchID))
			continue
		}

		if rec.NovedadID == nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Punch %d: no novedad assigned", rec.PunchID))
			result.Failed++
			continue
		}

		if rec.ExternalEmployeeID == nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Punch %d: employee with legajo %s does not exist in the payroll system",
					rec.PunchID, intLabel(rec.EmployeeLegajo)))
			result.Failed++
			continue
		}

		if rec.ExternalNovedadID == nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Punch %d: novedad '%s' does not exist in the payroll system",
					rec.PunchID, strLabel(rec.NovedadCode)))
			result.Failed++
			continue
		}

		if rec.Entry == nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Punch %d: no entry time", rec.PunchID))
			result.Failed++
			continue
		}

		if extrasMinutes(rec) > 0 {
			if rec.SectorExtrasNovedadID == nil {
				result.Errors = append(result.Errors,
					fmt.Sprintf("Punch %d: has overtime but the sector has no extras novedad configured", rec.PunchID))
				result.Failed++
				continue
			}
			if rec.ExternalExtrasNovedadID == nil {
				result.Errors = append(result.Errors,
					fmt.Sprintf("Punch %d: extras novedad '%s' does not exist in the payroll system",
						rec.PunchID, strLabel(rec.ExtrasNovedadCode)))
				result.Failed++
				continue
			}
		}

		valid = append(valid, rec)
	}

	return valid
}

// buildItems splits each punch into up to two items. Worked minutes export
// under the punch's novedad, overtime (official plus additional) under the
// sector's extras novedad. Uncategorized time never leaves the system.
func buildItems(records []export.Record) []exportItem {
	var items []exportItem

	for _, rec := range records {
		if rec.WorkedMinutes != nil && *rec.WorkedMinutes > 0 {
			items = append(items, exportItem{
				punchID:          rec.PunchID,
				externalEmployee: *rec.ExternalEmployeeID,
				externalNovedad:  *rec.ExternalNovedadID,
				minutes:          *rec.WorkedMinutes,
				legajo:           *rec.EmployeeLegajo,
				novedadCode:      strLabel(rec.NovedadCode),
				hourType:         hourTypeWorked,
				punchDate:        truncateToDay(*rec.Entry),
			})
		}

		if extras := extrasMinutes(rec); extras > 0 {
			items = append(items, exportItem{
				punchID:          rec.PunchID,
				externalEmployee: *rec.ExternalEmployeeID,
				externalNovedad:  *rec.ExternalExtrasNovedadID,
				minutes:          extras,
				legajo:           *rec.EmployeeLegajo,
				novedadCode:      strLabel(rec.ExtrasNovedadCode),
				hourType:         hourTypeExtras,
				punchDate:        truncateToDay(*rec.Entry),
			})
		}
	}

	return items
}

// groupItems collapses items by (external employee, external novedad),
// deliberately ignoring dates: a week of punches for the same pair becomes
// one ledger row.
func groupItems(items []exportItem) map[groupKey][]exportItem {
	groups := make(map[groupKey][]exportItem)
	for _, item := range items {
		key := groupKey{externalEmployee: item.externalEmployee, externalNovedad: item.externalNovedad}
		groups[key] = append(groups[key], item)
	}
	return groups
}

func sortedKeys(groups map[groupKey][]exportItem) []groupKey {
	keys := make([]groupKey, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].externalEmployee != keys[j].externalEmployee {
			return keys[i].externalEmployee < keys[j].externalEmployee
		}
		return keys[i].externalNovedad < keys[j].externalNovedad
	})
	return keys
}

func groupSummary(items []exportItem, totalHours float64, now time.Time) string {
	first := items[0]

	dates := make([]time.Time, 0, len(items))
	seen := make(map[time.Time]bool)
	for _, item := range items {
		if !seen[item.punchDate] {
			seen[item.punchDate] = true
			dates = append(dates, item.punchDate)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	dateRange := dates[0].Format("02/01/2006")
	if last := dates[len(dates)-1]; !last.Equal(dates[0]) {
		dateRange += " to " + last.Format("02/01/2006")
	}

	types := make([]string, 0, 2)
	seenTypes := make(map[hourType]bool)
	for _, item := range items {
		if !seenTypes[item.hourType] {
			seenTypes[item.hourType] = true
			types = append(types, string(item.hourType))
		}
	}

	return fmt.Sprintf("Legajo %d - Novedad %s (%s): %d items (%s) = %.2f total hours. Export date: %s",
		first.legajo, first.novedadCode, strings.Join(types, ", "),
		len(items), dateRange, totalHours, now.Format("02/01/2006"))
}

// extrasMinutes is the overtime pool that exports under the extras novedad:
// official plus additional. Uncategorized leftovers were already dropped by
// the calculator.
func extrasMinutes(rec export.Record) int {
	extras := 0
	if rec.OvertimeMinutes != nil {
		extras += *rec.OvertimeMinutes
	}
	if rec.AdditionalMinutes != nil {
		extras += *rec.AdditionalMinutes
	}
	return extras
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func intLabel(n *int) string {
	if n == nil {
		return "?"
	}
	return fmt.Sprintf("%d", *n)
}

func strLabel(s *string) string {
	if s == nil {
		return "?"
	}
	return *s
}
