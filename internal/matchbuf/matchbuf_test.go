package matchbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportAndResultPerMode(t *testing.T) {
	report := func(b *Buffer) {
		b.Report(3, 10, 4)
		b.Report(1, 2, 5)
		b.Report(3, 20, 4)
	}
	cases := []struct {
		mode Mode
		want Result
	}{
		{None, Result{Mode: None}},
		{Which, Result{Mode: Which, Which: []int{1, 3}}},
		{Counts, Result{Mode: Counts, Counts: []int{0, 1, 0, 2}}},
		{Starts, Result{Mode: Starts, Starts: [][]int{nil, {2}, nil, {10, 20}}}},
		{Ends, Result{Mode: Ends, Ends: [][]int{nil, {6}, nil, {13, 23}}}},
		{Ranges, Result{Mode: Ranges,
			Starts: [][]int{nil, {2}, nil, {10, 20}},
			Widths: [][]int{nil, {5}, nil, {4, 4}}}},
	}
	for _, tc := range cases {
		t.Run(tc.mode.String(), func(t *testing.T) {
			b := New(tc.mode, 4)
			report(b)
			assert.Equal(t, tc.want, b.Result())
			// rendering twice gives the same answer
			assert.Equal(t, tc.want, b.Result())
			assert.Equal(t, 2, b.Count(3))
		})
	}
}

func TestFlushResetsTouchedOnly(t *testing.T) {
	b := New(Ranges, 1000)
	b.Report(999, 1, 1)
	b.Report(7, 5, 2)
	b.Flush()
	assert.True(t, b.Empty())
	assert.Zero(t, b.Count(999))
	assert.Nil(t, b.Matches(7))
	assert.Empty(t, b.Which())

	b.Report(7, 9, 3)
	assert.Equal(t, []Match{{Start: 9, Width: 3}}, b.Matches(7))
	assert.Equal(t, 11, b.Matches(7)[0].End())
}

func TestAppendAndFlushShifts(t *testing.T) {
	total := New(Ranges, 3)
	total.Report(0, 1, 2)

	chunk := New(Ranges, 3)
	chunk.Report(2, 5, 3)
	chunk.Report(0, 0, 2)
	total.AppendAndFlush(chunk, 100)

	assert.True(t, chunk.Empty())
	assert.Zero(t, chunk.Count(0))
	assert.Equal(t, []int{0, 2}, total.Which())
	assert.Equal(t, 2, total.Count(0))
	assert.Equal(t, []Match{{1, 2}, {100, 2}}, total.Matches(0))
	assert.Equal(t, []Match{{105, 3}}, total.Matches(2))
}

func TestAppendAndFlushCountsOnly(t *testing.T) {
	a, b := New(Counts, 2), New(Counts, 2)
	b.Report(1, 0, 1)
	b.Report(1, 3, 1)
	a.AppendAndFlush(b, 50)
	assert.Equal(t, []int{0, 2}, a.Result().Counts)
	assert.Nil(t, a.Matches(1))
}

func TestAppendAndFlushNoneIsNoop(t *testing.T) {
	a, b := New(None, 2), New(Starts, 2)
	b.Report(0, 1, 1)
	a.AppendAndFlush(b, 0)
	assert.Equal(t, 1, b.Count(0), "other is left alone")
	assert.Zero(t, a.Count(0))
}

func TestAppendAndFlushIncompatiblePanics(t *testing.T) {
	assert.Panics(t, func() { New(Starts, 2).AppendAndFlush(New(Ranges, 2), 0) })
	assert.Panics(t, func() { New(Starts, 2).AppendAndFlush(New(Starts, 3), 0) })
	assert.Panics(t, func() { New(Mode(42), 1) })
}

func TestReporterShifts(t *testing.T) {
	b := New(Starts, 2)
	r := b.Reporter(1, 1000)
	r.Report(5, 3)
	require.Equal(t, 1, r.Pair())
	assert.Equal(t, [][]int{nil, {1005}}, b.Result().Starts)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("RANGES")
	require.NoError(t, err)
	assert.Equal(t, Ranges, m)
	_, err = ParseMode("coverage")
	assert.Error(t, err)
}
