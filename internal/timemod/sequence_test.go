package timemod

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pders01/timeshift/internal/testutil"
)

func TestBuildSequenceSingleInstant(t *testing.T) {
	ts := int64(1629108000)

	times, err := BuildSequence(StartOfDay, ts, ts, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, []int64{StartOfDay.ApplyUTC(ts)}, times)
}

func TestBuildSequenceEmpty(t *testing.T) {
	end := int64(1629108000)

	for _, m := range Modifiers() {
		times, err := BuildSequence(m, end+1, end, time.UTC)
		require.NoError(t, err)
		assert.Empty(t, times, m.String())
	}

	times, err := BuildSequence(0, 0, end, time.UTC)
	require.NoError(t, err)
	assert.Empty(t, times)
}

func TestBuildSequence(t *testing.T) {
	chicago := testutil.LoadZone(t, testutil.Chicago)
	santiago := testutil.LoadZone(t, testutil.Santiago)
	saoPaulo := testutil.LoadZone(t, testutil.SaoPaulo)
	lordHowe := testutil.LoadZone(t, testutil.LordHowe)

	tests := []struct {
		name     string
		modifier Modifier
		start    int64
		end      int64
		loc      *time.Location
		expected []int64
	}{
		{
			name:     "days",
			modifier: StartOfDay,
			start:    1629108000,
			end:      1629108000 + 2*86400,
			loc:      time.UTC,
			expected: []int64{1629072000, 1629158400, 1629244800},
		},
		{
			name:     "months",
			modifier: StartOfMonth,
			start:    1609459200 + 86400*10,
			end:      1617235200,
			loc:      time.UTC,
			expected: []int64{1609459200, 1612137600, 1614556800, 1617235200},
		},
		{
			name:     "weeks",
			modifier: StartOfWeek,
			start:    1627948289,
			end:      1628985600,
			loc:      time.UTC,
			expected: []int64{1627776000, 1628380800, 1628985600},
		},
		{
			name:     "days across spring forward",
			modifier: StartOfDay,
			start:    1615615200,
			end:      1615784400,
			loc:      chicago,
			expected: []int64{1615615200, 1615701600, 1615784400},
		},
		{
			name:     "hours across fall back",
			modifier: StartOfHour,
			start:    1636261200,
			end:      1636261200 + 3*3600,
			loc:      chicago,
			expected: []int64{1636261200, 1636264800, 1636268400, 1636272000},
		},
		{
			name:     "end of days",
			modifier: EndOfDay,
			start:    1629108000,
			end:      1629108000 + 86400,
			loc:      time.UTC,
			expected: []int64{1629158399, 1629244799},
		},
		{
			name:     "days across midnight gap",
			modifier: StartOfDay,
			start:    1630836000 - 3*86400,
			end:      1630836000 + 86400,
			loc:      santiago,
			expected: []int64{1630555200, 1630641600, 1630728000, 1630814400, 1630897200},
		},
		{
			name:     "end of days across midnight gap",
			modifier: EndOfDay,
			start:    1630836000 - 86400,
			end:      1630836000,
			loc:      santiago,
			expected: []int64{1630814399, 1630897199},
		},
		{
			name:     "weeks from a gap sunday",
			modifier: StartOfWeek,
			start:    1630836000,
			end:      1630836000 + 7*86400,
			loc:      santiago,
			expected: []int64{1630814400, 1631415600},
		},
		{
			name:     "days across sao paulo midnight gap",
			modifier: StartOfDay,
			start:    1541214000 + 3600,
			end:      1541383200 + 3600,
			loc:      saoPaulo,
			expected: []int64{1541214000, 1541300400, 1541383200},
		},
		{
			name:     "hours across half-hour gap",
			modifier: StartOfHour,
			start:    1633185000,
			end:      1633190400,
			loc:      lordHowe,
			expected: []int64{1633185000, 1633188600, 1633190400},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			times, err := BuildSequence(tt.modifier, tt.start, tt.end, tt.loc)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, times)

			again, err := BuildSequence(tt.modifier, tt.start, tt.end, tt.loc)
			require.NoError(t, err)
			assert.Equal(t, times, again)
		})
	}
}

func TestBuildSequenceStrictlyIncreasing(t *testing.T) {
	chicago := testutil.LoadZone(t, testutil.Chicago)
	start := testutil.Epoch(chicago, 2021, time.January, 1, 0, 0, 0)
	end := testutil.Epoch(chicago, 2021, time.December, 31, 23, 0, 0)

	for _, m := range []Modifier{StartOfHour, StartOfDay, EndOfDay, StartOfWeek, StartOfMonth, EndOfMonth} {
		times, err := BuildSequence(m, start, end, chicago)
		require.NoError(t, err, m.String())
		require.NotEmpty(t, times, m.String())

		for i := 1; i < len(times); i++ {
			require.Greater(t, times[i], times[i-1], "%s at %d", m, i)
		}
		assert.Equal(t, m.Apply(start, chicago), times[0], m.String())
		assert.Equal(t, m.Apply(end, chicago), times[len(times)-1], m.String())
	}
}

func TestBuildDailySequence(t *testing.T) {
	times, err := BuildDailySequence(1629108000, 1629108000+86400, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, []int64{1629072000, 1629158400}, times)
}

func TestBuildSequenceNone(t *testing.T) {
	_, err := BuildSequence(None, 0, 10, time.UTC)
	assert.ErrorIs(t, err, ErrNoUnit)
}

func TestBuildSequenceLimit(t *testing.T) {
	start := int64(1629108000)
	end := start + 9*86400

	times, err := BuildSequenceLimit(StartOfDay, start, end, time.UTC, 10)
	require.NoError(t, err)
	assert.Len(t, times, 10)

	_, err = BuildSequenceLimit(StartOfDay, start, end, time.UTC, 9)
	assert.ErrorIs(t, err, ErrSequenceTooLong)
}

func TestBuildSequenceAtRangeEdges(t *testing.T) {
	times, err := BuildSequence(StartOfDay, MaxTimestamp, MaxTimestamp, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, []int64{StartOfDay.ApplyUTC(MaxTimestamp)}, times)

	times, err = BuildSequence(StartOfMonth, MaxTimestamp-86400, MaxTimestamp, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, []int64{StartOfMonth.ApplyUTC(MaxTimestamp)}, times)

	times, err = BuildSequence(EndOfMonth, MaxTimestamp, MaxTimestamp, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, []int64{MaxTimestamp}, times)

	times, err = BuildSequence(StartOfDay, MinTimestamp, MinTimestamp, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, []int64{MinTimestamp}, times)
}

func TestBuildSequenceOverflow(t *testing.T) {
	chicago := testutil.LoadZone(t, testutil.Chicago)

	// the last Chicago day of 9999 ends in UTC year 10000
	_, err := BuildSequence(EndOfDay, MaxTimestamp, MaxTimestamp, chicago)
	assert.ErrorIs(t, err, ErrOverflow)
}
