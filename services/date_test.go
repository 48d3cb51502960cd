package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISOString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{
			name:     "Full ISO string",
			input:    "2019-05-21T21:30:45.123",
			expected: time.Date(2019, time.May, 21, 21, 30, 45, 123_000_000, time.UTC),
		},
		{
			name:     "New year month is January",
			input:    "2021-01-01T00:00:00.000",
			expected: time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Slash and space separators",
			input:    "2021/01/01 00:00:00.000",
			expected: time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Date only defaults to midnight",
			input:    "2021-01-01",
			expected: time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Minutes only",
			input:    "2024-06-15T20:30",
			expected: time.Date(2024, time.June, 15, 20, 30, 0, 0, time.UTC),
		},
		{
			name:     "Offset suffix is ignored",
			input:    "2021-01-01T10:00:00.000+05:00",
			expected: time.Date(2021, time.January, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:     "Zulu suffix",
			input:    "2021-03-04T05:06:07Z",
			expected: time.Date(2021, time.March, 4, 5, 6, 7, 0, time.UTC),
		},
		{
			name:     "Leading noise",
			input:    "  on 2021-03-04",
			expected: time.Date(2021, time.March, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Microsecond fraction",
			input:    "2021-03-04 05:06:07.000250",
			expected: time.Date(2021, time.March, 4, 5, 6, 7, 250_000, time.UTC),
		},
		{
			name:     "Fraction beyond nanoseconds is truncated",
			input:    "2021-03-04 05:06:07.1234567899",
			expected: time.Date(2021, time.March, 4, 5, 6, 7, 123_456_789, time.UTC),
		},
		{
			name:     "Two digit year is taken literally",
			input:    "99-01-01",
			expected: time.Date(99, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Leap day",
			input:    "2024-02-29",
			expected: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseISOString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseISOStringSeparatorInsensitive(t *testing.T) {
	a, err := ParseISOString("2021/01/01 00:00:00.000")
	require.NoError(t, err)
	b, err := ParseISOString("2021-01-01T00:00:00.000")
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestParseISOStringInvalid(t *testing.T) {
	inputs := []string{
		"",
		"no digits here",
		"2021-01",
		"2021-13-01",
		"2021-00-10",
		"2021-02-30",
		"2023-02-29",
		"2021-01-01T24:00:00",
		"2021-01-01T23:60:00",
		"2021-01-01T23:59:60",
		"99999999999999999999-01-01",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseISOString(input)
			assert.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidTimestamp))
		})
	}
}

func TestParseISOStringConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := ParseISOString("2022-12-31T23:59:59.999")
			assert.NoError(t, err)
			assert.Equal(t, 999_000_000, got.Nanosecond())
		}()
	}
	wg.Wait()
}

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2035, time.April, 1, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "Sunday April 1, 2035 at 8:00PM", FormatDateTime(ts, "full"))
	assert.Equal(t, "Sun Apr 1, 2035 8:00PM", FormatDateTime(ts, "medium"))
	assert.Equal(t, "2035-04-01", FormatDateTime(ts, "2006-01-02"))
}
