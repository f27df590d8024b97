package engine

import (
	"context"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sublimegame/voxelworld/internal/metrics"
	"github.com/sublimegame/voxelworld/internal/render"
	"github.com/sublimegame/voxelworld/internal/vec"
	"github.com/sublimegame/voxelworld/internal/world"
	"github.com/sublimegame/voxelworld/internal/world/block"
)

func newTestEngine(t *testing.T, m *metrics.Collector) (*Engine, *render.MemoryDevice) {
	t.Helper()
	w := world.NewWorld(block.DefaultTable())
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				w.AddChunk(world.NewChunk(vec.New(x, y, z)))
			}
		}
	}
	w.SetBlock(8, 8, 8, block.NewFluid(block.WaterBlockID))

	dev := render.NewMemoryDevice()
	cam := render.NewCamera(mgl32.Vec3{-4, 8, 8}, 70, 16.0/9.0, 0.1, 1000)
	e := New(w, dev, cam, Options{
		SimRadius: 1,
		Seed:      42,
		RunID:     "test-run",
		Updater:   world.DefaultUpdaterOptions(),
		Metrics:   m,
	})
	e.Enter()
	return e, dev
}

func TestEngine_EnterBuildsMeshesAroundCamera(t *testing.T) {
	e, _ := newTestEngine(t, nil)

	assert.Equal(t, 27, e.Meshes().Len())
	assert.Equal(t, vec.New(-1, 0, 0), e.World().Center(), "Камера в x=-4 стоит в чанке -1")
	assert.True(t, e.World().IsUpdating(vec.New(0, 0, 0)))

	n, ok := e.Meshes().VertexCount(vec.New(0, 0, 0))
	require.True(t, ok)
	assert.Equal(t, int32(36), n)
}

func TestEngine_FrameTicksRemeshesAndDraws(t *testing.T) {
	e, dev := newTestEngine(t, nil)

	res := e.Frame(context.Background(), 0.1)
	assert.False(t, res.Update.Ticked)
	assert.Equal(t, 0, res.Remeshed)
	assert.Equal(t, 1, res.Drawn)
	dev.TakeDraws()

	res = e.Frame(context.Background(), 0.15)
	require.True(t, res.Update.Ticked)
	assert.Equal(t, 5, res.Update.Committed)
	assert.Equal(t, 1, res.Remeshed)
	assert.Equal(t, 1, res.Drawn)

	n, _ := e.Meshes().VertexCount(vec.New(0, 0, 0))
	assert.Greater(t, n, int32(36), "Меш чанка перестроен с новой водой")
	assert.Len(t, dev.TakeDraws(), 1)
}

func TestEngine_FollowCamera(t *testing.T) {
	e, _ := newTestEngine(t, nil)

	assert.False(t, e.FollowCamera(), "Камера не двигалась")

	e.Camera().Position = mgl32.Vec3{40, 8, 8}
	assert.True(t, e.FollowCamera())
	assert.Equal(t, vec.New(2, 0, 0), e.World().Center())
	for _, c := range e.World().Updating() {
		assert.GreaterOrEqual(t, c.X, 1)
	}
}

func TestEngine_PlaceBlock(t *testing.T) {
	e, _ := newTestEngine(t, nil)

	require.True(t, e.PlaceBlock(15, 2, 2, block.NewID(block.StoneBlockID)))
	n, _ := e.Meshes().VertexCount(vec.New(0, 0, 0))
	assert.Equal(t, int32(72), n)

	assert.False(t, e.PlaceBlock(500, 0, 0, block.NewID(block.StoneBlockID)))
}

func TestEngine_PlaceTorchRemeshesLightRange(t *testing.T) {
	e, _ := newTestEngine(t, nil)

	require.True(t, e.PlaceBlock(-8, 8, 8, block.NewIDOrientation(block.TorchBlockID, block.OrientUp)))
	n, _ := e.Meshes().VertexCount(vec.New(-1, 0, 0))
	assert.Equal(t, int32(36), n)
}

func TestEngine_DebugInfo(t *testing.T) {
	e, _ := newTestEngine(t, nil)
	e.Frame(context.Background(), 0.25)

	info := e.DebugInfo()
	assert.Equal(t, "test-run", info.RunID)
	assert.Equal(t, int64(42), info.Seed)
	assert.Equal(t, uint64(1), info.Ticks)
	assert.Equal(t, uint64(1), info.ChunkUpdates)
	assert.Equal(t, 27, info.Loaded)
	assert.Equal(t, 1, info.Drawn)
	assert.InDelta(t, 0.25, info.SimTime, 1e-9)
	assert.NotEmpty(t, info.Lines())
}

func TestEngine_Metrics(t *testing.T) {
	m := metrics.NewCollector()
	e, _ := newTestEngine(t, m)

	e.Frame(context.Background(), 0.25)
	e.Frame(context.Background(), 0.01)

	expected := `
# HELP voxel_ticks_total Выполнено тактов клеточного автомата.
# TYPE voxel_ticks_total counter
voxel_ticks_total 1
`
	assert.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "voxel_ticks_total"))
}

