package fines_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/RoyPushkar-kun/Library-Management-System/fines"
)

func date(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 0, 0, 0, time.UTC)
}

func TestOverdueDays(t *testing.T) {
	tests := []struct {
		name      string
		due       time.Time
		effective time.Time
		want      int
	}{
		{
			name:      "on_the_due_date",
			due:       date(2025, time.March, 10, 9),
			effective: date(2025, time.March, 10, 9),
			want:      0,
		},
		{
			name:      "same_date_later_hour_still_zero",
			due:       date(2025, time.March, 10, 8),
			effective: date(2025, time.March, 10, 23),
			want:      0,
		},
		{
			name:      "next_day_early_hour_counts_one",
			due:       date(2025, time.March, 10, 23),
			effective: date(2025, time.March, 11, 1),
			want:      1,
		},
		{
			name:      "three_days_late",
			due:       date(2025, time.March, 10, 12),
			effective: date(2025, time.March, 13, 12),
			want:      3,
		},
		{
			name:      "returned_early",
			due:       date(2025, time.March, 10, 12),
			effective: date(2025, time.March, 5, 12),
			want:      -5,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, fines.OverdueDays(tc.due, tc.effective))
		})
	}
}

func TestCurrentFine_ZeroOnDueDate(t *testing.T) {
	for _, rate := range []string{"0", "1.0", "2.50", "1000"} {
		calc := fines.NewCalculator(decimal.RequireFromString(rate))
		due := date(2025, time.June, 1, 14)
		assert.True(t, calc.CurrentFine(due, due).IsZero(), "rate %s", rate)
	}
}

func TestCurrentFine_ExactDecimal(t *testing.T) {
	calc := fines.NewCalculator(decimal.RequireFromString("0.10"))
	due := date(2025, time.June, 1, 0)

	// 0.10 * 3 must be exactly 0.30, no binary float drift
	got := calc.CurrentFine(due, date(2025, time.June, 4, 0))
	assert.True(t, got.Equal(decimal.RequireFromString("0.30")), "got %s", got)
}

func TestCurrentFine_ThreeDaysAtUnitRate(t *testing.T) {
	calc := fines.NewCalculator(decimal.RequireFromString("1.0"))
	due := date(2025, time.June, 1, 10)
	got := calc.CurrentFine(due, due.AddDate(0, 0, 3))
	assert.True(t, got.Equal(decimal.NewFromInt(3)), "got %s", got)
}

func TestCurrentFine_Monotonic(t *testing.T) {
	calc := fines.NewCalculator(decimal.RequireFromString("1.50"))
	due := date(2025, time.June, 1, 10)

	prev := decimal.Zero
	for hours := 0; hours <= 24*10; hours += 6 {
		effective := due.Add(time.Duration(hours) * time.Hour)
		fine := calc.CurrentFine(due, effective)
		assert.False(t, fine.LessThan(prev),
			"fine decreased at +%dh: %s < %s", hours, fine, prev)
		prev = fine
	}
}

func TestCurrentFine_NeverNegative(t *testing.T) {
	calc := fines.NewCalculator(decimal.RequireFromString("2.0"))
	due := date(2025, time.June, 10, 10)
	got := calc.CurrentFine(due, date(2025, time.June, 1, 10))
	assert.True(t, got.IsZero(), "early return must cost nothing, got %s", got)
}
