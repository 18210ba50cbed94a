package timezone_test

import (
	"testing"
	"time"

	"cleanrate/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNowAndLocation(t *testing.T) {
	assert.False(t, timezone.Now().IsZero())
	assert.NotNil(t, timezone.GetLocation())
	assert.Equal(t, timezone.GetLocation(), timezone.ToAppTime(time.Now().UTC()).Location())
}

func TestParseAndFormat(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", timezone.Format(parsed, "2006-01-02"))

	_, err = timezone.Parse("2006-01-02", "01/01/2024")
	assert.Error(t, err)
}

func TestToday(t *testing.T) {
	assert.Equal(t, timezone.Now().Format("2006-01-02"), timezone.Today())
}
