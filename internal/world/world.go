package world

import (
	"github.com/sublimegame/voxelworld/internal/logging"
	"github.com/sublimegame/voxelworld/internal/vec"
	"github.com/sublimegame/voxelworld/internal/world/block"
)

// World - разреженный индекс чанков и состояние симуляции вокруг фокуса
type World struct {
	chunks map[vec.Vec3]*Chunk // Загруженные чанки, не более одного на координату
	table  *block.Table        // Таблица возможностей материалов

	center    vec.Vec3 // Фокусный чанк
	simRadius int      // Радиус симуляции в чанках

	updating      ChunkSet // Чанки, запланированные на следующий проход
	inUpdateRange ChunkSet // Куб чанков на момент последнего пересчета

	ticks            uint64  // Счетчик проходов обновления
	blockUpdateTimer float64 // Время с последнего прохода, сек
	chunkUpdates     uint64  // Сколько перестроений мешей запрошено

	log *logging.Logger
}

// NewWorld создаёт пустой мир. Таблица возможностей строится заранее и дальше не меняется.
func NewWorld(table *block.Table) *World {
	if table == nil {
		table = block.DefaultTable()
	}
	return &World{
		chunks:        make(map[vec.Vec3]*Chunk),
		table:         table,
		updating:      make(ChunkSet),
		inUpdateRange: make(ChunkSet),
		log:           logging.GetWorldLogger(),
	}
}

// Table возвращает таблицу возможностей материалов
func (w *World) Table() *block.Table {
	return w.table
}

// AddChunk добавляет чанк; существующий чанк с теми же координатами заменяется
func (w *World) AddChunk(c *Chunk) {
	w.chunks[c.Coords] = c
}

// GetChunk возвращает чанк по координатам чанка
func (w *World) GetChunk(cx, cy, cz int) (*Chunk, bool) {
	c, ok := w.chunks[vec.Vec3{X: cx, Y: cy, Z: cz}]
	return c, ok
}

// GetChunkAt возвращает чанк по вектору координат чанка
func (w *World) GetChunkAt(coords vec.Vec3) (*Chunk, bool) {
	c, ok := w.chunks[coords]
	return c, ok
}

// ChunkCount возвращает количество загруженных чанков
func (w *World) ChunkCount() int {
	return len(w.chunks)
}

// ChunkCoords возвращает координаты всех загруженных чанков в стабильном порядке
func (w *World) ChunkCoords() []vec.Vec3 {
	set := make(ChunkSet, len(w.chunks))
	for c := range w.chunks {
		set.Add(c)
	}
	return set.Sorted()
}

// GetBlock возвращает блок по абсолютным координатам.
// Клетка в незагруженном чанке читается как пустая.
func (w *World) GetBlock(x, y, z int) block.Block {
	c, ok := w.chunks[vec.Vec3{X: vec.ChunkCoord(x), Y: vec.ChunkCoord(y), Z: vec.ChunkCoord(z)}]
	if !ok {
		return block.New()
	}
	return c.GetBlock(vec.WrapCoord(x), vec.WrapCoord(y), vec.WrapCoord(z))
}

// GetBlockAt - GetBlock для вектора
func (w *World) GetBlockAt(pos vec.Vec3) block.Block {
	return w.GetBlock(pos.X, pos.Y, pos.Z)
}

// SetBlock устанавливает блок по абсолютным координатам и планирует
// на следующий проход чанк клетки и соседей по общей грани.
// Возвращает false, если чанк не загружен: чанки здесь не создаются.
func (w *World) SetBlock(x, y, z int, b block.Block) bool {
	pos := vec.Vec3{X: x, Y: y, Z: z}
	c, ok := w.chunks[pos.ToChunkCoords()]
	if !ok {
		return false
	}
	local := pos.LocalInChunk()
	c.SetBlock(local.X, local.Y, local.Z, b)
	w.schedule(pos)
	return true
}

// SetBlockAt - SetBlock для вектора
func (w *World) SetBlockAt(pos vec.Vec3, b block.Block) bool {
	return w.SetBlock(pos.X, pos.Y, pos.Z, b)
}

// schedule ставит в updating чанки, затронутые клеткой pos, но только
// те, что уже в активном кубе: остальные попадут туда при входе в куб.
func (w *World) schedule(pos vec.Vec3) {
	affected := make(ChunkSet, 8)
	addAffectedChunks(pos, affected)
	for c := range affected {
		if w.inUpdateRange.Has(c) {
			w.updating.Add(c)
		}
	}
}

// Center возвращает фокусный чанк
func (w *World) Center() vec.Vec3 {
	return w.center
}

// SetCenter задает фокусный чанк. Куб симуляции пересчитывается отдельно через UpdateSimRange.
func (w *World) SetCenter(c vec.Vec3) {
	w.center = c
}

// SimRadius возвращает радиус симуляции последнего пересчета
func (w *World) SimRadius() int {
	return w.simRadius
}

// Ticks возвращает количество выполненных проходов обновления
func (w *World) Ticks() uint64 {
	return w.ticks
}

// ChunkUpdates возвращает общее количество запрошенных перестроений мешей
func (w *World) ChunkUpdates() uint64 {
	return w.chunkUpdates
}

// IsUpdating проверяет, запланирован ли чанк на следующий проход
func (w *World) IsUpdating(c vec.Vec3) bool {
	return w.updating.Has(c)
}

// InUpdateRange проверяет, входит ли чанк в активный куб
func (w *World) InUpdateRange(c vec.Vec3) bool {
	return w.inUpdateRange.Has(c)
}

// Updating возвращает запланированные чанки в стабильном порядке
func (w *World) Updating() []vec.Vec3 {
	return w.updating.Sorted()
}
