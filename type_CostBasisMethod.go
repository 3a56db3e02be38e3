package folio

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMethod is returned when parsing an unsupported cost basis method.
var ErrUnknownMethod = errors.New("unknown cost basis method")

// CostBasisMethod selects which purchases a sale is matched against when
// computing realized gains. Holdings always use the average cost; tax lots
// always use FIFO.
type CostBasisMethod int

const (
	// AverageCost matches sales against the running average price of the
	// position.
	AverageCost CostBasisMethod = iota
	// FIFO matches sales against the oldest open lots first.
	FIFO
)

// String returns the name used in configuration files and reports.
func (m CostBasisMethod) String() string {
	switch m {
	case AverageCost:
		return "average"
	case FIFO:
		return "fifo"
	default:
		return "unknown"
	}
}

// ParseCostBasisMethod parses "average" or "fifo", ignoring case.
func ParseCostBasisMethod(s string) (CostBasisMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "average":
		return AverageCost, nil
	case "fifo":
		return FIFO, nil
	default:
		return 0, fmt.Errorf("%w: %q (use average or fifo)", ErrUnknownMethod, s)
	}
}
