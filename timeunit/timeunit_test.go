package timeunit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromMillis(t *testing.T) {
	const ms = 61500

	for _, tt := range []struct {
		unit Unit
		want int64
	}{
		{unit: Nanosecond, want: 61_500_000_000},
		{unit: Microsecond, want: 61_500_000},
		{unit: Millisecond, want: 61_500},
		{unit: Second, want: 62},
		{unit: Minute, want: 1},
		{unit: Hour, want: 0},
		{unit: Day, want: 0},
	} {
		t.Run(tt.unit.String(), func(t *testing.T) {
			require.Equal(t, tt.want, tt.unit.FromMillis(ms))
		})
	}
}

func TestFromMillisRoundsHalfAwayFromZero(t *testing.T) {
	require.Equal(t, int64(1), Second.FromMillis(500))
	require.Equal(t, int64(0), Second.FromMillis(499))
	require.Equal(t, int64(2), Second.FromMillis(1500))
	require.Equal(t, int64(1), Minute.FromMillis(30_000))
}

func TestParse(t *testing.T) {
	for _, unit := range []Unit{
		Nanosecond, Microsecond, Millisecond, Second, Minute, Hour, Day,
	} {
		parsed, ok := Parse(unit.String())
		require.True(t, ok)
		require.Equal(t, unit, parsed)
	}

	_, ok := Parse("fortnight")
	require.False(t, ok)
	_, ok = Parse("Second")
	require.False(t, ok)
	_, ok = Parse("")
	require.False(t, ok)
}

func TestValid(t *testing.T) {
	require.True(t, Millisecond.Valid())
	require.True(t, Day.Valid())
	require.False(t, Unit(-1).Valid())
	require.False(t, Unit(7).Valid())
}
