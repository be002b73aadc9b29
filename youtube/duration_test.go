package youtube

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var parseDurationTests = []struct {
	name  string
	input string
	value time.Duration
	valid bool
}{
	{
		name:  "seconds only",
		input: "PT45S",
		value: 45 * time.Second,
		valid: true,
	},
	{
		name:  "minutes and seconds",
		input: "PT3M33S",
		value: 3*time.Minute + 33*time.Second,
		valid: true,
	},
	{
		name:  "hours minutes seconds",
		input: "PT1H2M10S",
		value: time.Hour + 2*time.Minute + 10*time.Second,
		valid: true,
	},
	{
		name:  "day component",
		input: "P1DT2H",
		value: 26 * time.Hour,
		valid: true,
	},
	{
		name:  "fractional seconds",
		input: "PT1.5S",
		value: 1500 * time.Millisecond,
		valid: true,
	},
	{
		name:  "zero",
		input: "PT0S",
		value: 0,
		valid: true,
	},
	{
		name:  "missing period designator",
		input: "T45S",
		valid: false,
	},
	{
		name:  "garbage",
		input: "ABC",
		valid: false,
	},
	{
		name:  "trailing digits without unit",
		input: "PT10",
		valid: false,
	},
	{
		name:  "empty",
		input: "",
		valid: false,
	},
}

func TestParseDuration(t *testing.T) {
	for _, tc := range parseDurationTests {
		t.Run(tc.name, func(t *testing.T) {
			a := assert.New(t)

			d, err := ParseDuration(tc.input)

			if !tc.valid {
				a.ErrorIs(err, ErrBadDuration)
				return
			}
			a.NoError(err)
			a.Equal(tc.value, d)
		})
	}
}

var formatDurationTests = []struct {
	name  string
	input string
	value string
}{
	{
		name:  "seconds only drops leading components",
		input: "PT45S",
		value: "45s",
	},
	{
		name:  "minutes and seconds",
		input: "PT3M33S",
		value: "3m33s",
	},
	{
		name:  "full set",
		input: "PT1H2M10S",
		value: "1h2m10s",
	},
	{
		name:  "days fold into hours",
		input: "P1DT2H3M4S",
		value: "26h3m4s",
	},
	{
		name:  "zero duration has a defined rendering",
		input: "PT0S",
		value: "0s",
	},
	{
		name:  "interior zero component is dropped",
		input: "PT1H10S",
		value: "1h10s",
	},
	{
		name:  "fractional seconds truncate",
		input: "PT1.5S",
		value: "1s",
	},
}

func TestFormatDuration(t *testing.T) {
	for _, tc := range formatDurationTests {
		t.Run(tc.name, func(t *testing.T) {
			a := assert.New(t)

			text, err := FormatDuration(tc.input)

			a.NoError(err)
			a.Equal(tc.value, text)
		})
	}

	t.Run("malformed input", func(t *testing.T) {
		a := assert.New(t)

		_, err := FormatDuration("one hour")

		a.ErrorIs(err, ErrBadDuration)
	})
}
