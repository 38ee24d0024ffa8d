package planner

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// maxQuantity caps any calculated purchase regardless of budget.
const maxQuantity = 10

var firstInteger = regexp.MustCompile(`\d+`)

// CalcStrategy is the deterministic fallback used when the AI strategies are
// degraded or unconfigured. It extracts the requested quantity from the task
// text and clamps it to what the budget affords.
type CalcStrategy struct{}

func (CalcStrategy) Name() string { return "calculation" }

func (CalcStrategy) Plan(ctx context.Context, req Request) (*Plan, error) {
	requested := 1
	if m := firstInteger.FindString(req.Task); m != "" {
		n, err := strconv.Atoi(m)
		if err != nil {
			// Literal too large for int; it certainly exceeds the cap.
			n = maxQuantity
		}
		requested = n
	}

	affordable := 1
	if req.UnitPriceUSD > 0 {
		// Converting a huge ratio straight to int overflows, so clamp to
		// the cap first; anything past it is cut off below anyway.
		if ratio := req.MaxUSD / req.UnitPriceUSD; ratio >= maxQuantity {
			affordable = maxQuantity
		} else {
			affordable = int(ratio)
		}
	}

	quantity := requested
	if affordable < quantity {
		quantity = affordable
	}
	if quantity > maxQuantity {
		quantity = maxQuantity
	}

	total := roundUSD(float64(quantity) * req.UnitPriceUSD)

	return &Plan{
		Quantity:     quantity,
		Reason:       fmt.Sprintf("Calculated from task: requested %d, budget allows %d. Using %d units.", requested, affordable, quantity),
		TotalCostUSD: total,
	}, nil
}

// roundUSD rounds to 6 decimal places, enough for micro-priced units.
func roundUSD(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
