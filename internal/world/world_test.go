package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sublimegame/voxelworld/internal/vec"
	"github.com/sublimegame/voxelworld/internal/world/block"
)

// newTestWorld загружает пустые чанки в кубе radius вокруг начала координат
// и делает этот куб активным
func newTestWorld(t *testing.T, radius int) *World {
	t.Helper()
	w := NewWorld(block.DefaultTable())
	for x := -radius; x <= radius; x++ {
		for y := -radius; y <= radius; y++ {
			for z := -radius; z <= radius; z++ {
				w.AddChunk(NewChunk(vec.New(x, y, z)))
			}
		}
	}
	w.SetCenter(vec.New(0, 0, 0))
	w.UpdateSimRange(radius)
	return w
}

func TestWorld_SetGetBlock(t *testing.T) {
	w := newTestWorld(t, 1)

	cases := []vec.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 15, Y: 15, Z: 15},
		{X: -1, Y: -1, Z: -1},
		{X: -16, Y: 5, Z: 31},
		{X: 7, Y: -9, Z: -16},
	}
	for i, pos := range cases {
		b := block.NewIDOrientation(block.LogBlockID, uint8(i%6))
		require.True(t, w.SetBlockAt(pos, b), "Чанк для %v загружен", pos)
		assert.Equal(t, b, w.GetBlockAt(pos), "Блок в %v должен читаться обратно", pos)
	}

	// Отрицательная координата попадает в чанк -1 на локальную 15
	c, ok := w.GetChunk(-1, -1, -1)
	require.True(t, ok)
	assert.Equal(t, block.NewIDOrientation(block.LogBlockID, 2), c.GetBlock(15, 15, 15))
}

func TestWorld_UnloadedChunk(t *testing.T) {
	w := newTestWorld(t, 0)

	assert.Equal(t, block.New(), w.GetBlock(100, 0, 0), "Незагруженная клетка читается как пустая")
	assert.False(t, w.SetBlock(100, 0, 0, block.NewID(block.StoneBlockID)))
	assert.Equal(t, 1, w.ChunkCount(), "SetBlock не создает чанки")

	_, ok := w.GetChunk(6, 0, 0)
	assert.False(t, ok)
}

func TestWorld_ChunkCoordsSorted(t *testing.T) {
	w := NewWorld(nil)
	w.AddChunk(NewChunk(vec.New(2, 0, 0)))
	w.AddChunk(NewChunk(vec.New(-1, 5, 0)))
	w.AddChunk(NewChunk(vec.New(0, 0, 0)))

	assert.Equal(t, []vec.Vec3{{X: -1, Y: 5, Z: 0}, {X: 0, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}}, w.ChunkCoords())
	assert.NotNil(t, w.Table(), "Без таблицы используется встроенная")
}

func TestWorld_UpdateSimRangeSchedulesNewChunks(t *testing.T) {
	w := NewWorld(nil)
	w.UpdateSimRange(1)
	assert.Len(t, w.Updating(), 27, "Все чанки куба новые")

	// Очищаем очередь пустым тактом
	u := NewBlockUpdater(nil, nil, DefaultUpdaterOptions())
	u.Update(w, 1)
	assert.Empty(t, w.Updating())

	// Сдвиг на +1 по X: новыми становятся только 9 чанков слоя x=2
	w.SetCenter(vec.New(1, 0, 0))
	w.UpdateSimRange(1)
	updating := w.Updating()
	assert.Len(t, updating, 9)
	for _, c := range updating {
		assert.Equal(t, 2, c.X)
	}
	assert.False(t, w.InUpdateRange(vec.New(-1, 0, 0)), "Покинувший куб чанк больше не активен")
	assert.True(t, w.InUpdateRange(vec.New(2, 1, -1)))
}

func TestWorld_UpdatingStaysInsideCube(t *testing.T) {
	w := NewWorld(nil)
	w.UpdateSimRange(2)

	w.SetCenter(vec.New(10, 0, 0))
	w.UpdateSimRange(1)
	for _, c := range w.Updating() {
		assert.True(t, inCube(c, w.Center(), w.SimRadius()), "Чанк %v вне куба", c)
	}
}

func TestWorld_UpdateAllChunks(t *testing.T) {
	w := NewWorld(nil)
	far := vec.New(40, 0, 0)
	w.AddChunk(NewChunk(far))
	w.AddChunk(NewChunk(vec.New(0, 0, 0)))

	w.UpdateAllChunks()
	assert.True(t, w.IsUpdating(far))
	assert.True(t, w.InUpdateRange(far))
	assert.Len(t, w.Updating(), 2)
}

func TestWorld_SetBlockSchedulesBoundaryNeighbors(t *testing.T) {
	w := newTestWorld(t, 1)
	u := NewBlockUpdater(nil, nil, DefaultUpdaterOptions())
	u.Update(w, 1)
	require.Empty(t, w.Updating())

	w.SetBlock(15, 8, 8, block.NewID(block.StoneBlockID))
	assert.Equal(t, []vec.Vec3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}}, w.Updating())

	u.Update(w, 1)
	w.SetBlock(8, 8, 8, block.NewID(block.StoneBlockID))
	assert.Equal(t, []vec.Vec3{{X: 0, Y: 0, Z: 0}}, w.Updating())
}

func TestWorld_SetBlockDoesNotScheduleOutsideCube(t *testing.T) {
	w := newTestWorld(t, 1)
	w.AddChunk(NewChunk(vec.New(2, 0, 0)))
	u := NewBlockUpdater(nil, nil, DefaultUpdaterOptions())
	u.Update(w, 1)

	// Чанк 2 загружен, но вне куба
	w.SetBlock(40, 8, 8, block.NewID(block.StoneBlockID))
	assert.Empty(t, w.Updating())

	// Клетка на грани чанков 1 и 2 планирует только чанк 1
	w.SetBlock(32, 8, 8, block.NewID(block.StoneBlockID))
	assert.Equal(t, []vec.Vec3{{X: 1, Y: 0, Z: 0}}, w.Updating())
}
