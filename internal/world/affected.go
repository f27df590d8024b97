package world

import (
	"slices"

	"github.com/sublimegame/voxelworld/internal/vec"
)

// ChunkSet - множество координат чанков
type ChunkSet map[vec.Vec3]struct{}

// Add добавляет координату
func (s ChunkSet) Add(c vec.Vec3) {
	s[c] = struct{}{}
}

// Has проверяет наличие координаты
func (s ChunkSet) Has(c vec.Vec3) bool {
	_, ok := s[c]
	return ok
}

// Sorted возвращает координаты в порядке vec.Compare
func (s ChunkSet) Sorted() []vec.Vec3 {
	out := make([]vec.Vec3, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	slices.SortFunc(out, vec.Compare)
	return out
}

// addAffectedChunks добавляет в set чанки, которые надо перестроить после
// изменения клетки pos: собственный чанк всегда, соседний по оси - только
// если клетка лежит на общей грани (локальная координата 0 или 15).
// Оси независимы, поэтому углы и ребра дают диагональных соседей.
func addAffectedChunks(pos vec.Vec3, set ChunkSet) {
	chunk := pos.ToChunkCoords()
	local := pos.LocalInChunk()

	for dx := -1; dx <= 1; dx++ {
		if !onSharedFace(dx, local.X) {
			continue
		}
		for dy := -1; dy <= 1; dy++ {
			if !onSharedFace(dy, local.Y) {
				continue
			}
			for dz := -1; dz <= 1; dz++ {
				if !onSharedFace(dz, local.Z) {
					continue
				}
				set.Add(chunk.Offset(dx, dy, dz))
			}
		}
	}
}

func onSharedFace(d, local int) bool {
	switch d {
	case -1:
		return local == 0
	case 1:
		return local == ChunkSize-1
	}
	return true
}

// AffectedChunks возвращает отсортированный список чанков, затронутых
// изменением клетки pos
func AffectedChunks(pos vec.Vec3) []vec.Vec3 {
	set := make(ChunkSet, 8)
	addAffectedChunks(pos, set)
	return set.Sorted()
}
