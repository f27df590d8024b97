package world

import (
	"github.com/sublimegame/voxelworld/internal/vec"
	"github.com/sublimegame/voxelworld/internal/world/block"
)

// Убывание уровня при растекании
const (
	waterDecrease uint8 = 1
	lavaDecrease  uint8 = 2
)

// cardinal - горизонтальные соседи. Порядок задаёт биты маски забора.
var cardinal = [4]vec.Vec3{
	{X: 1, Y: 0, Z: 0},
	{X: 0, Y: 0, Z: 1},
	{X: -1, Y: 0, Z: 0},
	{X: 0, Y: 0, Z: -1},
}

// isOpenBelow - пустота или та же жидкость под клеткой: дна нет, жидкость стекает
func isOpenBelow(b block.Block, id block.BlockID) bool {
	return b.IsEmpty() || b.ID == id
}

// updateFluid вычисляет растекание жидкости из клетки pos в карту out
func updateFluid(w *World, pos vec.Vec3, out proposals, decrease uint8) {
	t := w.table
	cur := w.GetBlockAt(pos)
	belowPos := pos.Offset(0, -1, 0)
	below := w.GetBlockAt(belowPos)
	level := min(cur.Level(), block.LevelStill)

	switch {
	case cur.Level() < block.LevelStill:
		var maxLevel uint8
		count := 0
		nextToFall := false
		for _, d := range cardinal {
			np := pos.Add(d)
			n := w.GetBlockAt(np)
			if n.ID != cur.ID {
				continue
			}
			// Сосед без опоры сам стекает и не подпитывает клетку
			if isOpenBelow(w.GetBlockAt(np.Offset(0, -1, 0)), cur.ID) && n.Level() != block.LevelStill {
				continue
			}
			if n.Level() == block.LevelFalling {
				nextToFall = true
				continue
			}
			if n.Level() > maxLevel {
				maxLevel = n.Level()
				count = 0
			}
			if n.Level() == maxLevel {
				count++
			}
		}

		switch {
		case maxLevel > 1 && isOpenBelow(below, cur.ID):
			out.addFluid(t, pos, 1, cur.ID)
			if below.Geometry != block.LevelStill {
				out.addFluid(t, belowPos, block.LevelFalling, cur.ID)
			}
			return
		case maxLevel == block.LevelStill && count > 1 && decrease == waterDecrease:
			out.addFluid(t, pos, block.LevelStill, cur.ID)
			return
		case nextToFall && maxLevel < block.LevelStill:
			out.addFluid(t, pos, block.LevelStill-decrease, cur.ID)
		case maxLevel <= 1:
			out.addFluid(t, pos, block.LevelEmpty, cur.ID)
			return
		case maxLevel <= level:
			out.addFluid(t, pos, maxLevel-decrease, cur.ID)
			return
		}
	case cur.Level() == block.LevelFalling && w.GetBlockAt(pos.Offset(0, 1, 0)).ID != cur.ID:
		// Поток сверху иссяк
		out.addFluid(t, pos, block.LevelStill-decrease, cur.ID)
		return
	}

	// Стекание вниз
	if (isOpenBelow(below, cur.ID) || below.FluidDestructible(t)) && level > 0 {
		if below.Geometry != block.LevelStill {
			out.addFluid(t, belowPos, block.LevelFalling, cur.ID)
		}
		if cur.Level() != block.LevelStill {
			return
		}
	}

	if level <= decrease {
		return
	}

	// Растекание в стороны
	for _, d := range cardinal {
		np := pos.Add(d)
		n := w.GetBlockAt(np)
		if !(n.IsEmpty() || (n.ID == cur.ID && n.Level() < cur.Level()-1) || n.FluidDestructible(t)) {
			continue
		}
		spread := level - decrease
		if isOpenBelow(w.GetBlockAt(np.Offset(0, -1, 0)), cur.ID) {
			spread = 1
		}
		out.addFluid(t, np, spread, cur.ID)
	}
}

// waterToStone превращает воду под лавой в камень
func waterToStone(w *World, pos vec.Vec3, out proposals) bool {
	if w.GetBlockAt(pos.Offset(0, 1, 0)).ID != block.LavaBlockID {
		return false
	}
	out.set(pos, block.NewID(block.StoneBlockID))
	return true
}

// freezeLava застужает лаву, если вода сверху или сбоку:
// стоячая лава становится обсидианом, текущая - камнем
func freezeLava(w *World, pos vec.Vec3, out proposals) bool {
	cur := w.GetBlockAt(pos)
	frozen := block.NewID(block.StoneBlockID)
	if cur.Level() == block.LevelStill {
		frozen = block.NewID(block.ObsidianBlockID)
	}

	if w.GetBlockAt(pos.Offset(0, 1, 0)).ID == block.WaterBlockID {
		out.set(pos, frozen)
		return true
	}
	for _, d := range cardinal {
		if w.GetBlockAt(pos.Add(d)).ID == block.WaterBlockID {
			out.set(pos, frozen)
			return true
		}
	}
	return false
}

func updateWater(w *World, pos vec.Vec3, out proposals) {
	if waterToStone(w, pos, out) {
		return
	}
	updateFluid(w, pos, out, waterDecrease)
}

// updateLava считает растекание во временную карту. Раз в lavaPeriod тактов
// она сливается в общую; в остальные такты клетка только помечается как ожидающая.
func (u *BlockUpdater) updateLava(w *World, pos vec.Vec3, out proposals) {
	if freezeLava(w, pos, out) {
		return
	}

	scratch := make(proposals)
	updateFluid(w, pos, scratch, lavaDecrease)
	if len(scratch) == 0 {
		return
	}

	if w.ticks%u.opts.LavaPeriod == 0 {
		for p, pr := range scratch {
			out.addFluid(w.table, p, pr.b.Level(), pr.b.ID)
		}
		return
	}

	if scratch.differsFrom(w) {
		out.markPending(pos, w.GetBlockAt(pos))
	}
}
