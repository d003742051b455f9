package listeners

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betaradio/nowplaying/internal/app/station"
	"github.com/betaradio/nowplaying/internal/domain/stats"
)

func newTestSimulator(playing bool, at time.Time, seed int64) (*Simulator, *station.State) {
	st := station.NewState()
	st.SetPlaying(playing)
	sim := &Simulator{
		state: st,
		clock: station.MockClock{MockTime: at},
		loc:   time.UTC,
		rng:   rand.New(rand.NewSource(seed)),
	}
	return sim, st
}

func TestSimulator_FirstSampleWithinHourBand(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		at := time.Date(2021, 6, 12, hour, 30, 0, 0, time.UTC)
		sim, _ := newTestSimulator(true, at, int64(hour)+1)
		band := stats.BandFor(hour)

		sample := sim.Tick()
		assert.GreaterOrEqual(t, sample.Listeners, band.Min, "hour %d", hour)
		assert.LessOrEqual(t, sample.Listeners, band.Max, "hour %d", hour)
		assert.Equal(t, at, sample.Timestamp)
	}
}

func TestSimulator_WalkStaysInBandWithBoundedSteps(t *testing.T) {
	at := time.Date(2021, 6, 12, 20, 0, 0, 0, time.UTC)
	sim, _ := newTestSimulator(true, at, 7)
	band := stats.BandFor(20)
	maxStep := int(float64(band.Width())*walkRatio) + 2

	prev := sim.Tick().Listeners
	for i := 0; i < 200; i++ {
		cur := sim.Tick().Listeners
		assert.GreaterOrEqual(t, cur, band.Min)
		assert.LessOrEqual(t, cur, band.Max)

		diff := cur - prev
		if diff < 0 {
			diff = -diff
		}
		assert.LessOrEqual(t, diff, maxStep)
		prev = cur
	}
}

func TestSimulator_OffAirReportsZeroAndResetsWalk(t *testing.T) {
	at := time.Date(2021, 6, 12, 16, 0, 0, 0, time.UTC)
	sim, st := newTestSimulator(true, at, 3)
	band := stats.BandFor(16)

	first := sim.Tick()
	require.NotZero(t, first.Listeners)

	st.SetPlaying(false)
	sample := sim.Tick()
	assert.Equal(t, 0, sample.Listeners)
	assert.Equal(t, at, sample.Timestamp)

	st.SetPlaying(true)
	resumed := sim.Tick()
	assert.GreaterOrEqual(t, resumed.Listeners, band.Min)
	assert.LessOrEqual(t, resumed.Listeners, band.Max)
}

func TestSimulator_BandFollowsStationZoneTimestampStaysUTC(t *testing.T) {
	// 22:30 UTC is 00:30 station time, which selects the night band.
	loc := time.FixedZone("CEST", 2*60*60)
	at := time.Date(2021, 6, 12, 22, 30, 0, 0, time.UTC)
	st := station.NewState()
	sim := &Simulator{
		state: st,
		clock: station.MockClock{MockTime: at},
		loc:   loc,
		rng:   rand.New(rand.NewSource(1)),
	}

	sample := sim.Tick()
	night := stats.BandFor(0)
	assert.GreaterOrEqual(t, sample.Listeners, night.Min)
	assert.LessOrEqual(t, sample.Listeners, night.Max)
	assert.Equal(t, time.UTC, sample.Timestamp.Location())
	assert.Equal(t, at, sample.Timestamp)
}

func TestSimulator_ConcurrentTicks(t *testing.T) {
	at := time.Date(2021, 6, 12, 10, 0, 0, 0, time.UTC)
	sim, _ := newTestSimulator(true, at, 5)
	band := stats.BandFor(10)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				sample := sim.Tick()
				assert.GreaterOrEqual(t, sample.Listeners, band.Min)
				assert.LessOrEqual(t, sample.Listeners, band.Max)
			}
		}()
	}
	wg.Wait()
}

func TestNew_ProducesWorkingSimulator(t *testing.T) {
	sim := New(station.NewState(), time.UTC)

	sample := sim.Tick()
	assert.GreaterOrEqual(t, sample.Listeners, 10)
	assert.LessOrEqual(t, sample.Listeners, 180)
}
