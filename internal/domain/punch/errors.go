package punch

import "errors"

var (
	ErrPunchNotFound = errors.New("punch record not found")

	// ErrPunchExported guards the Open -> Exported transition: an exported
	// punch cannot be edited, recalculated or deleted.
	ErrPunchExported = errors.New("punch record has already been exported")

	ErrMissingEmployee = errors.New("punch record has no employee assigned")
	ErrMissingTimes    = errors.New("punch record needs both entry and exit times")
)
