package logrank

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrMalformed is returned for a log line that does not match
// "DATE HH:MM:SS SEVERITY message".
var ErrMalformed = errors.New("logrank: malformed log line")

// Severity ranks log levels; a higher value is more severe.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
	Critical
)

var severityNames = [...]string{"INFO", "WARNING", "ERROR", "CRITICAL"}

func (s Severity) String() string {
	if s < Info || s > Critical {
		return fmt.Sprintf("Severity(%d)", int(s))
	}
	return severityNames[s]
}

// ParseSeverity accepts the upper-case level names (case-insensitive).
func ParseSeverity(name string) (Severity, error) {
	for i, n := range severityNames {
		if strings.EqualFold(n, name) {
			return Severity(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown severity %q", ErrMalformed, name)
}

// MarshalYAML encodes the level by name.
func (s Severity) MarshalYAML() (interface{}, error) { return s.String(), nil }

// UnmarshalYAML decodes a level name.
func (s *Severity) UnmarshalYAML(n *yaml.Node) error {
	v, err := ParseSeverity(n.Value)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Entry is one parsed log line.
//
// ResponseTime is taken from a trailing duration token such as "1500ms" or
// "(2.5s)"; HasResponseTime reports whether one was present.
type Entry struct {
	Line            string        `yaml:"line"`
	Date            string        `yaml:"date"`
	TimeOfDay       time.Duration `yaml:"time_of_day"`
	Severity        Severity      `yaml:"severity"`
	Message         string        `yaml:"message"`
	ResponseTime    time.Duration `yaml:"response_time,omitempty"`
	HasResponseTime bool          `yaml:"-"`
}

// SlowReport splits entries by response time.
type SlowReport struct {
	Sorted []Entry `yaml:"sorted"`
	Normal []Entry `yaml:"normal"`
	Slow   []Entry `yaml:"slow"`
}
