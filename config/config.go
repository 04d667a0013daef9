// Package config reads and validates the YAML definitions consumed by the
// finmath CLI: curve point sets and schedule requests.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/meenmo/finmath/calendar"
	"github.com/meenmo/finmath/interp"
	"github.com/meenmo/finmath/temporal"
)

var validate = validator.New()

const dateLayout = "2006-01-02"

// Point is a single (x, y) curve node.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Curve defines an interpolated curve: its kind and its nodes. Nodes must be
// listed with strictly increasing x; construction enforces it.
type Curve struct {
	Kind   string  `yaml:"kind" default:"linear" validate:"oneof=linear cubic"`
	Points []Point `yaml:"points" validate:"required,min=2"`
}

// Build fits the configured interpolator over the curve's nodes.
func (c *Curve) Build() (interp.Interpolator, error) {
	xs := make([]float64, len(c.Points))
	ys := make([]float64, len(c.Points))
	for i, p := range c.Points {
		xs[i] = p.X
		ys[i] = p.Y
	}
	switch c.Kind {
	case "cubic":
		return interp.NewCubicSpline(xs, ys)
	default:
		return interp.NewLinear(xs, ys)
	}
}

// Schedule defines a date-sequence request. The include flags are pointers
// so an explicit false survives defaulting.
type Schedule struct {
	Start        string `yaml:"start" validate:"required,datetime=2006-01-02"`
	End          string `yaml:"end" validate:"required,datetime=2006-01-02"`
	Frequency    string `yaml:"frequency" default:"3M"`
	Convention   string `yaml:"convention" default:"ACT/365"`
	IncludeStart *bool  `yaml:"include_start" default:"true"`
	IncludeEnd   *bool  `yaml:"include_end" default:"true"`
}

// Generate parses the schedule fields and produces its date sequence.
func (s *Schedule) Generate() ([]temporal.Timestamp, error) {
	start, err := ParseDate(s.Start)
	if err != nil {
		return nil, fmt.Errorf("Generate: start: %w", err)
	}
	end, err := ParseDate(s.End)
	if err != nil {
		return nil, fmt.Errorf("Generate: end: %w", err)
	}
	freq, err := calendar.ParseTenor(s.Frequency)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	conv, err := calendar.ParseConvention(s.Convention)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	includeStart := s.IncludeStart == nil || *s.IncludeStart
	includeEnd := s.IncludeEnd == nil || *s.IncludeEnd
	return calendar.GenerateSequence(start, freq, conv, includeStart, includeEnd, end)
}

// Config is the root of a finmath YAML definition file.
type Config struct {
	Curve    *Curve    `yaml:"curve"`
	Schedule *Schedule `yaml:"schedule"`
	Holidays []string  `yaml:"holidays" validate:"dive,datetime=2006-01-02"`
}

// HolidayTimestamps parses the configured holiday dates.
func (c *Config) HolidayTimestamps() ([]temporal.Timestamp, error) {
	out := make([]temporal.Timestamp, 0, len(c.Holidays))
	for _, h := range c.Holidays {
		t, err := ParseDate(h)
		if err != nil {
			return nil, fmt.Errorf("HolidayTimestamps: %w", err)
		}
		out = append(out, t)
	}
	return out, nil
}

// Load reads, defaults and validates a YAML definition file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(b)
}

// Parse unmarshals, defaults and validates a YAML definition.
func Parse(b []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("default config: %w", err)
	}
	if err := validate.Struct(&c); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &c, nil
}

// ParseDate converts a YYYY-MM-DD string to a second-precision timestamp at
// local midnight, matching the local-time rule used for civil fields.
func ParseDate(s string) (temporal.Timestamp, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return temporal.Timestamp{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return temporal.FromTime(t, temporal.Seconds)
}
