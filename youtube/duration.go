package youtube

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrBadDuration = errors.New("malformed duration")

var durationSegments = []struct {
	c byte
	d time.Duration
	t bool
}{
	{'D', 24 * time.Hour, false},
	{'H', time.Hour, true},
	{'M', time.Minute, true},
	{'S', time.Second, true},
}

// ParseDuration reads an ISO-8601 day/time duration such as "PT1H2M10S"
// or "P1DT2H". Absent components are treated as zero.
func ParseDuration(s string) (time.Duration, error) {
	if len(s) == 0 || s[0] != 'P' {
		return 0, fmt.Errorf("%w: %q", ErrBadDuration, s)
	}

	rest := s[1:]
	inTime := false
	var total time.Duration

	for _, seg := range durationSegments {
		if strings.HasPrefix(rest, "T") && !seg.t {
			continue
		}
		if seg.t && !inTime {
			if !strings.HasPrefix(rest, "T") {
				break
			}
			rest = rest[1:]
			inTime = true
		}
		if len(rest) == 0 {
			break
		}

		i := 0
		sawDot := false
		for i < len(rest) && (rest[i] >= '0' && rest[i] <= '9' || rest[i] == '.' && !sawDot) {
			if rest[i] == '.' {
				sawDot = true
			}
			i++
		}
		if i == 0 || i >= len(rest) || rest[i] != seg.c {
			continue
		}

		value, err := strconv.ParseFloat(rest[:i], 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrBadDuration, s)
		}
		rest = rest[i+1:]
		total += time.Duration(value * float64(seg.d))
	}

	if len(rest) != 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadDuration, s)
	}

	return total, nil
}

// FormatDuration renders an ISO-8601 duration as compact human-readable
// text, dropping zero components: "PT3M33S" becomes "3m33s". A zero
// duration renders as "0s". Fractional seconds are truncated.
func FormatDuration(iso string) (string, error) {
	d, err := ParseDuration(iso)
	if err != nil {
		return "", err
	}

	hours := int(d / time.Hour)
	minutes := int(d % time.Hour / time.Minute)
	seconds := int(d % time.Minute / time.Second)

	var b strings.Builder
	if hours > 0 {
		fmt.Fprintf(&b, "%dh", hours)
	}
	if minutes > 0 {
		fmt.Fprintf(&b, "%dm", minutes)
	}
	if seconds > 0 {
		fmt.Fprintf(&b, "%ds", seconds)
	}
	if b.Len() == 0 {
		return "0s", nil
	}

	return b.String(), nil
}
