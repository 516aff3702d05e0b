package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mtlprog/duedate/internal/domain"
)

// calendarFile mirrors the YAML calendar file. Pointer fields tell a
// missing key apart from an explicit zero.
type calendarFile struct {
	StartHour *int `yaml:"start_hour"`
	EndHour   *int `yaml:"end_hour"`
}

// LoadCalendar reads a working calendar from a YAML file.
// An empty path returns the default calendar. Missing keys fall back to
// the defaults.
func LoadCalendar(path string) (domain.Calendar, error) {
	if path == "" {
		return domain.DefaultCalendar(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Calendar{}, fmt.Errorf("failed to read calendar file: %w", err)
	}

	return ParseCalendar(data)
}

// ParseCalendar decodes and validates a YAML calendar document.
func ParseCalendar(data []byte) (domain.Calendar, error) {
	var file calendarFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Calendar{}, fmt.Errorf("failed to parse calendar: %w", err)
	}

	cal := domain.DefaultCalendar()
	if file.StartHour != nil {
		cal.StartHour = *file.StartHour
	}
	if file.EndHour != nil {
		cal.EndHour = *file.EndHour
	}

	if err := cal.Validate(); err != nil {
		return domain.Calendar{}, err
	}

	return cal, nil
}
