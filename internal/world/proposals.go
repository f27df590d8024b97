package world

import (
	"slices"

	"github.com/sublimegame/voxelworld/internal/vec"
	"github.com/sublimegame/voxelworld/internal/world/block"
)

// proposal - предлагаемое значение клетки за один проход.
// pending отмечает лаву, которая хочет измениться, но ждёт своего такта.
type proposal struct {
	b       block.Block
	pending bool
}

// proposals - карта предложений прохода: координата -> новый блок
type proposals map[vec.Vec3]proposal

// set записывает предложение безусловно
func (p proposals) set(pos vec.Vec3, b block.Block) {
	p[pos] = proposal{b: b}
}

// markPending помечает клетку как ожидающую фиксации, не меняя её значения
func (p proposals) markPending(pos vec.Vec3, current block.Block) {
	p[pos] = proposal{b: current, pending: true}
}

// addFluid предлагает жидкость уровня level. Уже предложенная клетка
// только усиливается: тот же id, строго больший уровень и не стоячая (7).
// Уровень 0 или больше 8 даёт пустую клетку.
func (p proposals) addFluid(t *block.Table, pos vec.Vec3, level uint8, id block.BlockID) {
	fluid := block.NewFluidLevel(id, level)
	if level == block.LevelEmpty || level > block.LevelFalling {
		fluid = block.New()
	}

	existing, ok := p[pos]
	if !ok {
		p[pos] = proposal{b: fluid}
		return
	}
	if existing.pending || !existing.b.IsFluid(t) {
		return
	}
	if existing.b.ID == fluid.ID && existing.b.Level() < fluid.Level() && existing.b.Level() != block.LevelStill {
		p[pos] = proposal{b: fluid}
	}
}

// sortedKeys возвращает координаты предложений в стабильном порядке
func (p proposals) sortedKeys() []vec.Vec3 {
	keys := make([]vec.Vec3, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, vec.Compare)
	return keys
}

// differsFrom проверяет, меняет ли хоть одно предложение состояние мира
func (p proposals) differsFrom(w *World) bool {
	for pos, pr := range p {
		if w.GetBlockAt(pos) != pr.b {
			return true
		}
	}
	return false
}
