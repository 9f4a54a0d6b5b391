package export

import "context"

type ExportService interface {
	// Export validates, splits, groups and writes the given punches to the
	// external payroll ledger, then marks the successfully exported punches.
	Export(ctx context.Context, punchIDs []int) (Result, error)
}

type Result struct {
	Exported int      `json:"exported"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
	Message  string   `json:"message"`
}

func (r Result) HasErrors() bool {
	return len(r.Errors) > 0
}

type ExportRequest struct {
	PunchIDs []int `json:"punch_ids"`
}
