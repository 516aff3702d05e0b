package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtlprog/duedate/internal/domain"
)

func TestParseSubmitTime(t *testing.T) {
	want := time.Date(2020, 1, 31, 10, 5, 0, 0, time.UTC)

	inputs := []string{
		"2020-01-31T10:05:00",
		"2020-01-31T10:05",
		"2020-01-31 10:05:00",
		"2020-01-31 10:05",
		"2020-01-31T10:05:00Z",
		"2020-01-31T10:05:00+02:00",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			got, err := domain.ParseSubmitTime(input)
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "got %s", got)
		})
	}
}

func TestParseSubmitTime_Invalid(t *testing.T) {
	for _, input := range []string{"", "yesterday", "2020-13-01 10:00", "31/01/2020 10:05"} {
		_, err := domain.ParseSubmitTime(input)
		assert.ErrorIs(t, err, domain.ErrInvalidTimeFormat, "input %q", input)
	}
}

func TestFormatDueDate(t *testing.T) {
	assert.Equal(t, "2020-02-03 09:05", domain.FormatDueDate(time.Date(2020, 2, 3, 9, 5, 0, 0, time.UTC)))
}

func TestInvalidArgumentError(t *testing.T) {
	err := domain.NewInvalidArgument(domain.MsgTurnoverNotPositive)

	assert.EqualError(t, err, "Turnover cannot be negative or zero!")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	var argErr *domain.InvalidArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, domain.MsgTurnoverNotPositive, argErr.Message)
}
