package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPeriod(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	p, err := NewPeriod(from, to)
	require.NoError(t, err)
	assert.Equal(t, from, p.From)
	assert.Equal(t, to, p.To)

	// Single-day periods are valid.
	_, err = NewPeriod(from, from)
	assert.NoError(t, err)
}

func TestNewPeriodInvertedRangeFailsFast(t *testing.T) {
	from := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := NewPeriod(from, to)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestPeriodDays(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	p, err := NewPeriod(from, from.AddDate(0, 0, 4))
	require.NoError(t, err)

	var dates []string
	p.Days(func(date time.Time) {
		dates = append(dates, date.Format("2006-01-02"))
	})

	assert.Equal(t, []string{
		"2026-03-01", "2026-03-02", "2026-03-03", "2026-03-04", "2026-03-05",
	}, dates)
}

func TestStatisticsRequestValidate(t *testing.T) {
	req := StatisticsRequest{FromDate: "2026-03-01", ToDate: "2026-03-31"}
	assert.NoError(t, req.Validate())

	req = StatisticsRequest{FromDate: "01-03-2026", ToDate: "2026-03-31"}
	assert.Error(t, req.Validate())

	req = StatisticsRequest{}
	assert.Error(t, req.Validate())
}
