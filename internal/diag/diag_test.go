package diag

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sublimegame/voxelworld/internal/vec"
)

func TestFormatUptime(t *testing.T) {
	assert.Equal(t, "5с", FormatUptime(5*time.Second))
	assert.Equal(t, "2м 5с", FormatUptime(2*time.Minute+5*time.Second))
	assert.Equal(t, "3ч 0м 1с", FormatUptime(3*time.Hour+time.Second))
	assert.Equal(t, "1д 1ч 0м 0с", FormatUptime(25*time.Hour))
}

func TestSnapshot_Lines(t *testing.T) {
	s := Snapshot{
		RunID:        "abc",
		Seed:         42,
		Ticks:        12345,
		ChunkUpdates: 7,
		SimTime:      2.5,
		Center:       vec.New(1, -2, 3),
		Loaded:       98,
		Updating:     4,
		Drawn:        10,
		Vertices:     1500000,
		RSS:          3 * 1024 * 1024,
		CPU:          12.34,
		Uptime:       65 * time.Second,
	}

	lines := s.Lines()
	assert.Contains(t, lines, "сид: 42")
	assert.Contains(t, lines, "такты: 12,345")
	assert.Contains(t, lines, "центр: 1 -2 3")
	assert.Contains(t, lines, "чанки: нарисовано 10 из 98, в очереди 4")
	assert.Contains(t, lines, "вершины: 1,500,000")
	assert.Contains(t, lines, "память: 3.0 MiB")
	assert.Contains(t, lines, "cpu: 12.3%")
	assert.Contains(t, lines, "аптайм: 1м 5с")
}

func TestProbe_Fill(t *testing.T) {
	p := NewProbe()
	var s Snapshot
	p.Fill(&s)

	rss, err := p.RSS()
	require.NoError(t, err)
	assert.Greater(t, rss, uint64(0))
	assert.GreaterOrEqual(t, s.Uptime, time.Duration(0))
}

func TestProbe_CPUFallbackDoesNotBlock(t *testing.T) {
	p := &Probe{StartTime: time.Now()} // без процесса: системная загрузка

	start := time.Now()
	_, _ = p.CPUPercent()
	_, _ = p.CPUPercent()
	assert.Less(t, time.Since(start), 90*time.Millisecond, "замер CPU не должен ждать интервал")
}
