package world

import (
	"github.com/sublimegame/voxelworld/internal/vec"
	"github.com/sublimegame/voxelworld/internal/world/block"
)

// Размеры чанка
const (
	ChunkSize = 16
	ChunkLen  = ChunkSize * ChunkSize * ChunkSize
)

// Chunk представляет куб мира 16x16x16 клеток
type Chunk struct {
	Coords vec.Vec3 // Координаты чанка в мире

	blocks   [ChunkLen]block.Block
	nonEmpty int // Количество непустых клеток
}

// NewChunk создаёт пустой чанк с указанными координатами
func NewChunk(coords vec.Vec3) *Chunk {
	return &Chunk{Coords: coords}
}

func index(x, y, z int) int {
	return x*ChunkSize*ChunkSize + y*ChunkSize + z
}

// GetBlock возвращает блок по локальным координатам
func (c *Chunk) GetBlock(x, y, z int) block.Block {
	return c.blocks[index(x, y, z)]
}

// SetBlock устанавливает блок по локальным координатам
func (c *Chunk) SetBlock(x, y, z int, b block.Block) {
	i := index(x, y, z)
	old := c.blocks[i]
	if old.IsEmpty() && !b.IsEmpty() {
		c.nonEmpty++
	} else if !old.IsEmpty() && b.IsEmpty() {
		c.nonEmpty--
	}
	if b.IsEmpty() {
		// Геометрия пустой клетки не хранится
		b = block.New()
	}
	c.blocks[i] = b
}

// GetBlockLocal возвращает блок по локальному вектору
func (c *Chunk) GetBlockLocal(local vec.Vec3) block.Block {
	return c.GetBlock(local.X, local.Y, local.Z)
}

// IsEmpty возвращает true, если во всех клетках пусто.
// Пустые чанки пропускаются и при обновлении, и при построении меша.
func (c *Chunk) IsEmpty() bool {
	return c.nonEmpty == 0
}

// BlockCount возвращает количество непустых клеток
func (c *Chunk) BlockCount() int {
	return c.nonEmpty
}

// Origin возвращает абсолютные координаты клетки (0,0,0) чанка
func (c *Chunk) Origin() vec.Vec3 {
	return c.Coords.ChunkOrigin()
}
