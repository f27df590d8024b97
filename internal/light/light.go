// Package light отслеживает источники света мира и сообщает, какие
// чанки надо перестроить, когда рядом с источником что-то меняется.
package light

import (
	"github.com/sublimegame/voxelworld/internal/logging"
	"github.com/sublimegame/voxelworld/internal/vec"
	"github.com/sublimegame/voxelworld/internal/world"
	"github.com/sublimegame/voxelworld/internal/world/block"
)

// MaxLight - наибольший уровень света и дальность его распространения в клетках
const MaxLight = 15

// Engine хранит позиции источников света
type Engine struct {
	emitters map[vec.Vec3]block.LightSrc
	log      *logging.Logger
}

// NewEngine создаёт движок без источников
func NewEngine() *Engine {
	return &Engine{
		emitters: make(map[vec.Vec3]block.LightSrc),
		log:      logging.GetComponentLogger("light"),
	}
}

// Scan заново собирает источники из всех загруженных чанков
func (e *Engine) Scan(w *world.World) int {
	clear(e.emitters)
	for _, coords := range w.ChunkCoords() {
		c, _ := w.GetChunkAt(coords)
		if c.IsEmpty() {
			continue
		}
		origin := c.Origin()
		for x := 0; x < world.ChunkSize; x++ {
			for y := 0; y < world.ChunkSize; y++ {
				for z := 0; z < world.ChunkSize; z++ {
					if src, ok := c.GetBlock(x, y, z).LightSrc(); ok {
						e.emitters[origin.Offset(x, y, z)] = src
					}
				}
			}
		}
	}
	e.log.Debug("Найдено источников света: %d", len(e.emitters))
	return len(e.emitters)
}

// EmitterCount возвращает количество известных источников
func (e *Engine) EmitterCount() int {
	return len(e.emitters)
}

// Emitter возвращает источник в pos, если он есть
func (e *Engine) Emitter(pos vec.Vec3) (block.LightSrc, bool) {
	src, ok := e.emitters[pos]
	return src, ok
}

// UpdateBlockLight обновляет список источников по изменённым клеткам.
// Появившийся или исчезнувший источник затрагивает все загруженные чанки
// в радиусе MaxLight; прочая клетка - только свои чанки, если рядом светит источник.
func (e *Engine) UpdateBlockLight(w *world.World, changed []vec.Vec3) []vec.Vec3 {
	affected := make(world.ChunkSet)
	for _, pos := range changed {
		old, had := e.emitters[pos]
		src, has := w.GetBlockAt(pos).LightSrc()

		switch {
		case has:
			e.emitters[pos] = src
		case had:
			delete(e.emitters, pos)
		}

		if has != had || (has && src != old) {
			e.addInRange(w, pos, affected)
			continue
		}
		if e.litNear(pos) {
			for _, c := range world.AffectedChunks(pos) {
				if _, ok := w.GetChunkAt(c); ok {
					affected.Add(c)
				}
			}
		}
	}

	if len(affected) > 0 {
		e.log.Trace("Свет: изменений %d, затронуто чанков %d", len(changed), len(affected))
	}
	return affected.Sorted()
}

// addInRange добавляет загруженные чанки в кубе MaxLight вокруг pos
func (e *Engine) addInRange(w *world.World, pos vec.Vec3, set world.ChunkSet) {
	for cx := vec.ChunkCoord(pos.X - MaxLight); cx <= vec.ChunkCoord(pos.X+MaxLight); cx++ {
		for cy := vec.ChunkCoord(pos.Y - MaxLight); cy <= vec.ChunkCoord(pos.Y+MaxLight); cy++ {
			for cz := vec.ChunkCoord(pos.Z - MaxLight); cz <= vec.ChunkCoord(pos.Z+MaxLight); cz++ {
				if _, ok := w.GetChunk(cx, cy, cz); ok {
					set.Add(vec.New(cx, cy, cz))
				}
			}
		}
	}
}

// litNear проверяет, есть ли источник в пределах MaxLight по каждой оси
func (e *Engine) litNear(pos vec.Vec3) bool {
	for p := range e.emitters {
		if abs(p.X-pos.X) <= MaxLight && abs(p.Y-pos.Y) <= MaxLight && abs(p.Z-pos.Z) <= MaxLight {
			return true
		}
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
