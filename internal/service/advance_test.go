package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mtlprog/duedate/internal/domain"
)

func TestNextMonday(t *testing.T) {
	monday := time.Date(2020, 1, 27, 10, 5, 0, 0, time.UTC)
	want := time.Date(2020, 2, 3, 10, 5, 0, 0, time.UTC)

	for offset := 0; offset < 7; offset++ {
		day := monday.AddDate(0, 0, offset)
		assert.Equal(t, want, nextMonday(day), "from %s", day.Weekday())
	}
}

func TestRollWeek(t *testing.T) {
	cal := domain.DefaultCalendar()

	tests := []struct {
		name string
		in   progress
		want progress
	}{
		{
			name: "fits in week",
			in:   progress{base: time.Date(2020, 1, 30, 10, 5, 0, 0, time.UTC), remaining: 9, pastToday: 1},
			want: progress{base: time.Date(2020, 1, 30, 10, 5, 0, 0, time.UTC), remaining: 9, pastToday: 1},
		},
		{
			name: "exactly the rest of the week",
			in:   progress{base: time.Date(2020, 1, 31, 16, 5, 0, 0, time.UTC), remaining: 1, pastToday: 7},
			want: progress{base: time.Date(2020, 2, 3, 9, 5, 0, 0, time.UTC), remaining: 0},
		},
		{
			name: "one week from monday",
			in:   progress{base: time.Date(2020, 1, 27, 15, 5, 0, 0, time.UTC), remaining: 40, pastToday: 6},
			want: progress{base: time.Date(2020, 2, 3, 9, 5, 0, 0, time.UTC), remaining: 6},
		},
		{
			name: "several weeks",
			in:   progress{base: time.Date(2020, 1, 31, 9, 0, 0, 0, time.UTC), remaining: 8 + 2*40 + 13},
			want: progress{base: time.Date(2020, 2, 3, 9, 0, 0, 0, time.UTC), remaining: 13, weeks: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rollWeek(cal, tt.in))
		})
	}
}

func TestRollDay(t *testing.T) {
	cal := domain.DefaultCalendar()

	tests := []struct {
		name string
		in   progress
		want progress
	}{
		{
			name: "fits in day",
			in:   progress{base: time.Date(2020, 1, 31, 10, 5, 0, 0, time.UTC), remaining: 3, pastToday: 1},
			want: progress{base: time.Date(2020, 1, 31, 10, 5, 0, 0, time.UTC), remaining: 3, pastToday: 1},
		},
		{
			name: "into next day",
			in:   progress{base: time.Date(2020, 1, 30, 10, 5, 0, 0, time.UTC), remaining: 9, pastToday: 1},
			want: progress{base: time.Date(2020, 1, 31, 9, 5, 0, 0, time.UTC), remaining: 2},
		},
		{
			name: "fresh monday keeps carried weeks",
			in:   progress{base: time.Date(2020, 2, 3, 9, 0, 0, 0, time.UTC), remaining: 30, weeks: 1},
			want: progress{base: time.Date(2020, 2, 4, 9, 0, 0, 0, time.UTC), remaining: 6, weeks: 1, days: 2},
		},
		{
			name: "end of work",
			in:   progress{base: time.Date(2020, 1, 29, 17, 0, 0, 0, time.UTC), remaining: 3, pastToday: 8},
			want: progress{base: time.Date(2020, 1, 30, 9, 0, 0, 0, time.UTC), remaining: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rollDay(cal, tt.in))
		})
	}
}

func TestPlace(t *testing.T) {
	p := progress{
		base:      time.Date(2020, 2, 4, 9, 0, 0, 0, time.UTC),
		remaining: 6,
		weeks:     1,
		days:      2,
	}

	assert.Equal(t, time.Date(2020, 2, 13, 15, 0, 0, 0, time.UTC), place(p))
}

func TestAdvance_MatchesStepping(t *testing.T) {
	calc := NewCalculator(domain.DefaultCalendar())
	start := time.Date(2020, 1, 27, 9, 0, 0, 0, time.UTC)

	// Stepping one hour at a time must agree with a single jump.
	stepped := start
	for h := 1; h <= 120; h++ {
		stepped = calc.advance(stepped, 1)
		assert.Equal(t, stepped, calc.advance(start, h), "turnover %d", h)
	}
}
