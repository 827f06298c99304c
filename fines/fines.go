// Package fines computes overdue fines. All arithmetic is exact decimal;
// overdue time is measured in whole calendar days (UTC date components),
// so a return on the due date costs nothing regardless of the hour.
package fines

import (
	"time"

	"github.com/shopspring/decimal"
)

// DayStartUTC truncates t to midnight of its UTC calendar date.
func DayStartUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// OverdueDays is the number of whole calendar days effective lies after due.
// Zero or negative means the return was on time.
func OverdueDays(due, effective time.Time) int {
	return int(DayStartUTC(effective).Sub(DayStartUTC(due)) / (24 * time.Hour))
}

// Calculator charges a flat daily rate per overdue day.
type Calculator struct {
	DailyRate decimal.Decimal
}

func NewCalculator(dailyRate decimal.Decimal) Calculator {
	return Calculator{DailyRate: dailyRate}
}

// CurrentFine is the fine owed at effective for an issue due at due.
// effective is the return date for a closed issue, or "now" for an open one.
func (c Calculator) CurrentFine(due, effective time.Time) decimal.Decimal {
	days := OverdueDays(due, effective)
	if days <= 0 {
		return decimal.Zero
	}
	return c.DailyRate.Mul(decimal.NewFromInt(int64(days)))
}
