package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtlprog/duedate/internal/domain"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out

	err := app.Run(append([]string{"duedate", "--log-level", "error"}, args...))
	return out.String(), err
}

func TestCalculate(t *testing.T) {
	out, err := runApp(t, "calculate", "--submit", "2020-01-31 10:05", "--turnover", "9")
	require.NoError(t, err)
	assert.Equal(t, "2020-02-03 11:05\n", out)
}

func TestCalculate_WithCalendarFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calendar.yaml")
	require.NoError(t, os.WriteFile(path, []byte("start_hour: 8\nend_hour: 12\n"), 0o644))

	out, err := runApp(t, "--calendar", path, "calculate", "-s", "2020-01-31T11:00", "-t", "2")
	require.NoError(t, err)
	assert.Equal(t, "2020-02-03 09:00\n", out)
}

func TestCalculate_ZeroTurnover(t *testing.T) {
	_, err := runApp(t, "calculate", "--submit", "2020-01-31 10:05", "--turnover", "0")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.EqualError(t, err, domain.MsgTurnoverNotPositive)
}

func TestCalculate_TurnoverTooLarge(t *testing.T) {
	_, err := runApp(t, "calculate", "--submit", "2020-01-31 10:05", "--turnover", "9223372036854775807")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.EqualError(t, err, domain.MsgTurnoverTooLarge)
}

func TestCalculate_BadSubmitTime(t *testing.T) {
	_, err := runApp(t, "calculate", "--submit", "tomorrow", "--turnover", "3")
	assert.ErrorIs(t, err, domain.ErrInvalidTimeFormat)
}

func TestCalculate_BadCalendar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calendar.yaml")
	require.NoError(t, os.WriteFile(path, []byte("start_hour: 17\nend_hour: 9\n"), 0o644))

	_, err := runApp(t, "--calendar", path, "calculate", "--submit", "2020-01-31 10:05", "--turnover", "3")
	assert.ErrorIs(t, err, domain.ErrInvalidCalendar)
}
