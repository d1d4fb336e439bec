package routingtime_test

import (
	"testing"

	"github.com/griffin-west/delivery-route-planner/internal/routingtime"
	"github.com/stretchr/testify/require"
)

func TestFromClock(t *testing.T) {
	got, err := routingtime.FromClock("08:30:15")
	require.NoError(t, err)
	require.Equal(t, routingtime.Time(8*3600+30*60+15), got)
}

func TestFromClockNoSeconds(t *testing.T) {
	got, err := routingtime.FromClock("08:30")
	require.NoError(t, err)
	require.Equal(t, routingtime.Time(8*3600+30*60), got)
}

func TestFromClockInvalid(t *testing.T) {
	_, err := routingtime.FromClock("not-a-time")
	require.Error(t, err)
}

func TestFromSecondsWraps(t *testing.T) {
	require.Equal(t, routingtime.Time(0), routingtime.FromSeconds(routingtime.SecondsPerDay))
	require.Equal(t, routingtime.Time(routingtime.SecondsPerDay-1), routingtime.FromSeconds(-1))
}

func TestDurationUntilAndAfter(t *testing.T) {
	early := routingtime.FromSeconds(100)
	late := routingtime.FromSeconds(400)

	require.Equal(t, 300, early.DurationUntil(late))
	require.Equal(t, -300, late.DurationUntil(early))
	require.Equal(t, 300, late.DurationAfter(early))
}

func TestString(t *testing.T) {
	tm, err := routingtime.FromClock("08:05:09")
	require.NoError(t, err)
	require.Equal(t, "08:05:09", tm.String())
}
