package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/sublimegame/voxelworld/internal/logging"
	"github.com/sublimegame/voxelworld/internal/vec"
	"github.com/sublimegame/voxelworld/internal/world"
)

// slot - место в таблице мешей. Индекс закрепляется за чанком при Build
// и дальше не переназначается.
type slot struct {
	mesh        MeshHandle
	vertexCount int32
	coords      vec.Vec3
}

// ChunkTable - пул мешей чанков фиксированного размера
type ChunkTable struct {
	device Device
	slots  []slot
	index  map[vec.Vec3]int

	log *logging.Logger
}

// NewChunkTable создаёт пустую таблицу поверх устройства
func NewChunkTable(device Device) *ChunkTable {
	return &ChunkTable{
		device: device,
		index:  make(map[vec.Vec3]int),
		log:    logging.GetRenderLogger(),
	}
}

// Build выделяет по мешу на каждый загруженный чанк и строит геометрию.
// Слоты раздаются в порядке координат чанков.
func (ct *ChunkTable) Build(w *world.World) {
	coords := w.ChunkCoords()
	handles := ct.device.GenMeshes(len(coords))

	ct.slots = make([]slot, len(coords))
	ct.index = make(map[vec.Vec3]int, len(coords))

	var total int64
	for i, c := range coords {
		ct.slots[i] = slot{mesh: handles[i], coords: c}
		ct.index[c] = i
		ct.upload(w, i)
		total += int64(ct.slots[i].vertexCount)
	}
	ct.log.Info("Построены меши: слотов %d, вершин %d", len(ct.slots), total)
}

// upload перестраивает геометрию слота i
func (ct *ChunkTable) upload(w *world.World, i int) {
	s := &ct.slots[i]
	chunk, ok := w.GetChunkAt(s.coords)
	if !ok {
		s.vertexCount = 0
		return
	}
	data := BuildChunkVertices(w.Table(), chunk, NeighborsOf(w, chunk))
	s.vertexCount = int32(len(data) / VertexStride)
	if len(data) > 0 {
		ct.device.Upload(s.mesh, data)
	}
}

// Refresh перестраивает меш чанка coords. Возвращает false, если у чанка нет слота.
func (ct *ChunkTable) Refresh(w *world.World, coords vec.Vec3) bool {
	i, ok := ct.index[coords]
	if !ok {
		ct.log.Trace("Нет слота для чанка %v", coords)
		return false
	}
	ct.upload(w, i)
	return true
}

// RefreshAll перестраивает список чанков и возвращает, сколько из них имели слот
func (ct *ChunkTable) RefreshAll(w *world.World, coords []vec.Vec3) int {
	n := 0
	for _, c := range coords {
		if ct.Refresh(w, c) {
			n++
		}
	}
	return n
}

// RefreshWithNeighbors перестраивает чанк клетки (x, y, z) и соседей,
// которых касается клетка на общей грани, ребре или углу
func (ct *ChunkTable) RefreshWithNeighbors(w *world.World, x, y, z int) int {
	return ct.RefreshAll(w, world.AffectedChunks(vec.New(x, y, z)))
}

// Draw рисует непустые меши, попавшие в пирамиду видимости камеры.
// Возвращает число нарисованных чанков.
func (ct *ChunkTable) Draw(cam *Camera) int {
	frustum := cam.Frustum()
	ct.device.SetViewProjection(cam.View(), cam.Projection())

	const size = float32(world.ChunkSize)
	drawn := 0
	for i := range ct.slots {
		s := &ct.slots[i]
		if s.vertexCount == 0 {
			continue
		}
		lo := mgl32.Vec3{float32(s.coords.X) * size, float32(s.coords.Y) * size, float32(s.coords.Z) * size}
		hi := lo.Add(mgl32.Vec3{size, size, size})
		if !frustum.IntersectsAABB(lo, hi) {
			continue
		}
		ct.device.DrawMesh(s.mesh, lo, s.vertexCount)
		drawn++
	}
	return drawn
}

// Len возвращает количество слотов
func (ct *ChunkTable) Len() int {
	return len(ct.slots)
}

// SlotOf возвращает индекс слота чанка
func (ct *ChunkTable) SlotOf(coords vec.Vec3) (int, bool) {
	i, ok := ct.index[coords]
	return i, ok
}

// VertexCount возвращает число вершин в меше чанка
func (ct *ChunkTable) VertexCount(coords vec.Vec3) (int32, bool) {
	i, ok := ct.index[coords]
	if !ok {
		return 0, false
	}
	return ct.slots[i].vertexCount, true
}

// TotalVertices возвращает сумму вершин по всем слотам
func (ct *ChunkTable) TotalVertices() int64 {
	var total int64
	for _, s := range ct.slots {
		total += int64(s.vertexCount)
	}
	return total
}
