package logrank

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// ParseLine parses "DATE HH:MM:SS SEVERITY message".
func ParseLine(line string) (Entry, error) {
	line = strings.TrimSpace(line)
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return Entry{}, fmt.Errorf("%w: %q", ErrMalformed, line)
	}

	clock, err := time.Parse("15:04:05", fields[1])
	if err != nil {
		return Entry{}, fmt.Errorf("%w: bad time %q", ErrMalformed, fields[1])
	}
	sev, err := ParseSeverity(fields[2])
	if err != nil {
		return Entry{}, err
	}

	e := Entry{
		Line:      line,
		Date:      fields[0],
		TimeOfDay: time.Duration(clock.Hour())*time.Hour + time.Duration(clock.Minute())*time.Minute + time.Duration(clock.Second())*time.Second,
		Severity:  sev,
		Message:   strings.Join(fields[3:], " "),
	}
	if len(fields) > 3 {
		tok := strings.Trim(fields[len(fields)-1], "()[],")
		if d, err := time.ParseDuration(tok); err == nil && d >= 0 {
			e.ResponseTime, e.HasResponseTime = d, true
		}
	}

	return e, nil
}

// Parse reads one entry per non-blank line of r.
// The error names the 1-based line number of the first bad line.
func Parse(r io.Reader) ([]Entry, error) {
	var out []Entry
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		e, err := ParseLine(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		out = append(out, e)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
