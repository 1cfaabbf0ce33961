package calc

import (
	"time"

	"github.com/kathiroli/travel-claim/internal/models"
)

// displayLayout renders dates the way the paper form shows them.
const displayLayout = "02/01/2006"

// InclusiveDays counts the calendar days covered by a date range with both
// endpoints included, so a same-day stay counts as one day. A missing or
// unparsable date yields zero.
func InclusiveDays(from, to string) int {
	start, err := time.Parse(models.DateLayout, from)
	if err != nil {
		return 0
	}
	end, err := time.Parse(models.DateLayout, to)
	if err != nil {
		return 0
	}
	days := int(end.Sub(start).Hours() / 24)
	if days < 0 {
		days = -days
	}
	return days + 1
}

// DisplayDate renders a wire-format date as dd/mm/yyyy, empty when absent.
func DisplayDate(date string) string {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return ""
	}
	return t.Format(displayLayout)
}

// DateRangeText renders a date range the way the statement rows show it.
func DateRangeText(from, to string) string {
	return DisplayDate(from) + " to " + DisplayDate(to)
}
