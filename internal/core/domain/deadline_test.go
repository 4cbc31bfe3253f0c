package domain_test

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasklist/internal/core/domain"
)

func TestParseDeadline_Valid(t *testing.T) {
	got, err := domain.ParseDeadline("25-01-2026")
	require.NoError(t, err)
	assert.Equal(t, civil.Date{Year: 2026, Month: time.January, Day: 25}, got)
}

func TestParseDeadline_Rejects(t *testing.T) {
	for _, value := range []string{
		"",
		"25-1-2026",
		"5-01-2026",
		"25-01-26",
		"2026-01-25",
		"31-02-2021",
		"00-01-2021",
		"12-13-2021",
		"25-01-2026 ",
		"25/01/2026",
	} {
		t.Run(value, func(t *testing.T) {
			_, err := domain.ParseDeadline(value)
			require.ErrorIs(t, err, domain.ErrInvalidDate)
		})
	}
}

func TestParseDeadline_LeapDay(t *testing.T) {
	_, err := domain.ParseDeadline("29-02-2024")
	require.NoError(t, err)

	_, err = domain.ParseDeadline("29-02-2023")
	require.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestFormatDeadline(t *testing.T) {
	assert.Equal(t, "05-03-2021", domain.FormatDeadline(civil.Date{Year: 2021, Month: time.March, Day: 5}))
}

func TestFormatDeadline_RoundTrip(t *testing.T) {
	date, err := domain.ParseDeadline("11-11-2021")
	require.NoError(t, err)
	assert.Equal(t, "11-11-2021", domain.FormatDeadline(date))
}
