package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStayDate(t *testing.T) {
	d, err := ParseStayDate("2026-09-14")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, 14, d.Day())
	assert.Equal(t, 0, d.Hour())

	// RFC3339 input normalizes to midnight
	d, err = ParseStayDate("2026-09-14T18:30:00Z")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, 0, d.Hour())
	assert.Equal(t, 0, d.Minute())

	d, err = ParseStayDate("")
	require.NoError(t, err)
	assert.Nil(t, d)

	_, err = ParseStayDate("14/09/2026")
	assert.Error(t, err)
}

func TestCalculateNights(t *testing.T) {
	day := func(d int) *time.Time {
		t := time.Date(2026, 9, d, 0, 0, 0, 0, time.UTC)
		return &t
	}

	assert.Equal(t, 3, CalculateNights(day(10), day(13)))
	assert.Equal(t, 0, CalculateNights(day(10), day(10)))
	assert.Equal(t, 0, CalculateNights(day(13), day(10)))
	assert.Equal(t, 0, CalculateNights(nil, day(10)))
}

func TestNewReferenceCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code := NewReferenceCode()
		assert.True(t, strings.HasPrefix(code, "BK-"))
		assert.Len(t, code, 11)
		assert.False(t, seen[code], "reference codes must not repeat")
		seen[code] = true
	}
}

func TestEnvBool(t *testing.T) {
	t.Setenv("FLAG_UNDER_TEST", "")
	assert.True(t, EnvBool("FLAG_UNDER_TEST", true))
	assert.False(t, EnvBool("FLAG_UNDER_TEST", false))

	t.Setenv("FLAG_UNDER_TEST", "false")
	assert.False(t, EnvBool("FLAG_UNDER_TEST", true))

	t.Setenv("FLAG_UNDER_TEST", "1")
	assert.True(t, EnvBool("FLAG_UNDER_TEST", false))
}
