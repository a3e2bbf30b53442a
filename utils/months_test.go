package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/privatepenny/privatepennybudget/utils"
)

func TestMonthIndex(t *testing.T) {
	assert.Equal(t, 1, utils.MonthIndex("January"))
	assert.Equal(t, 12, utils.MonthIndex("December"))
	assert.Equal(t, 0, utils.MonthIndex("january"), "month names are case sensitive")
	assert.Equal(t, 0, utils.MonthIndex(""))
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "January", utils.MonthName(1))
	assert.Equal(t, "December", utils.MonthName(12))
	assert.Equal(t, "", utils.MonthName(0))
	assert.Equal(t, "", utils.MonthName(13))
}

func TestParseDate(t *testing.T) {
	want := time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC)

	got, err := utils.ParseDate("2025-03-09")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = utils.ParseDate("2025-03-09T18:45:00Z")
	require.NoError(t, err)
	assert.Equal(t, want, got, "timestamps truncate to the calendar day")

	_, err = utils.ParseDate("09/03/2025")
	assert.Error(t, err)
	_, err = utils.ParseDate("")
	assert.Error(t, err)
}
