// File: pricing/quote.go
package pricing

import (
	"fmt"
	"math"
)

// Mode selects how much of the booking value is due up front.
type Mode string

const (
	// FullBook pays the whole booking value now.
	FullBook Mode = "Book"
	// PreBook reserves the room with a 10% upfront payment.
	PreBook Mode = "PreBook"
)

// Durations a booking may run for, in months.
var ValidDurations = []int{3, 6, 12}

// ValidDuration reports whether months is a bookable duration.
func ValidDuration(months int) bool {
	for _, d := range ValidDurations {
		if d == months {
			return true
		}
	}
	return false
}

// Quote is the price breakdown shown before a booking is submitted. All
// amounts are whole rupees. A quote is derived fresh for each pricing
// screen and never persisted.
type Quote struct {
	MonthlyRent     int64
	DurationMonths  int
	Mode            Mode
	SecurityDeposit int64
	NetPayable      int64
	PreBookAmount   int64
	AmountDueNow    int64
}

// NewQuote derives the price breakdown for a room at monthlyRent over
// durationMonths. The security deposit is two months' rent; the pre-book
// amount is 10% of the net payable, rounded half-up to the nearest rupee.
func NewQuote(monthlyRent int64, durationMonths int, mode Mode) (Quote, error) {
	if monthlyRent <= 0 {
		return Quote{}, fmt.Errorf("monthly rent must be positive, got %d", monthlyRent)
	}
	if !ValidDuration(durationMonths) {
		return Quote{}, fmt.Errorf("duration must be one of %v months, got %d", ValidDurations, durationMonths)
	}
	if mode != FullBook && mode != PreBook {
		return Quote{}, fmt.Errorf("unknown booking mode %q", mode)
	}

	deposit := monthlyRent * 2
	netPayable := monthlyRent*int64(durationMonths) + deposit
	preBook := int64(math.Round(float64(netPayable) * 0.10))

	dueNow := netPayable
	if mode == PreBook {
		dueNow = preBook
	}

	return Quote{
		MonthlyRent:     monthlyRent,
		DurationMonths:  durationMonths,
		Mode:            mode,
		SecurityDeposit: deposit,
		NetPayable:      netPayable,
		PreBookAmount:   preBook,
		AmountDueNow:    dueNow,
	}, nil
}
