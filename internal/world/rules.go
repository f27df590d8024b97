package world

import (
	"github.com/sublimegame/voxelworld/internal/vec"
	"github.com/sublimegame/voxelworld/internal/world/block"
)

// isCheckedDecoration - растения, факелы, лестницы и прочее, что держится на опоре
func isCheckedDecoration(id block.BlockID) bool {
	switch {
	case id >= block.SaplingBlockID && id <= block.BlueFlowerBlockID:
		return true
	case id >= block.TorchBlockID && id <= block.LadderBlockID:
		return true
	}
	switch id {
	case block.SugarCaneBlockID, block.LanternBlockID, block.RailBlockID, block.CarpetBlockID:
		return true
	}
	return false
}

// updateFarmland: пашня под непрозрачным блоком становится землёй
func updateFarmland(w *World, pos vec.Vec3, out proposals) {
	above := w.GetBlockAt(pos.Offset(0, 1, 0))
	if above.IsEmpty() || above.Transparent(w.table) {
		return
	}
	out.set(pos, block.NewID(block.DirtBlockID))
}

// updateDecoration удаляет блок, потерявший опору
func (u *BlockUpdater) updateDecoration(w *World, pos vec.Vec3, id block.BlockID, out proposals) {
	if u.validity == nil {
		return
	}
	check := u.validity.CheckFn(id)
	if check == nil || check(w, pos.X, pos.Y, pos.Z) {
		return
	}
	out.set(pos, block.New())
}

// FenceMask вычисляет 4-битную маску соединений забора в pos.
// Бит i выставлен, если сосед по направлению i непустой, полный куб
// и непрозрачен, либо такой же забор, либо калитка.
func FenceMask(w *World, pos vec.Vec3, id block.BlockID) uint8 {
	var mask uint8
	for i, d := range cardinal {
		n := w.GetBlockAt(pos.Add(d))
		if n.IsEmpty() || n.Shape() != block.ShapeFull {
			continue
		}
		if n.Transparent(w.table) && n.ID != id && n.ID != block.GateBlockID {
			continue
		}
		mask |= 1 << i
	}
	return mask
}

func updateFence(w *World, pos vec.Vec3, out proposals) {
	cur := w.GetBlockAt(pos)
	mask := FenceMask(w, pos, cur.ID)
	if mask == cur.Geometry {
		return
	}
	out.set(pos, block.Block{ID: cur.ID, Geometry: mask})
}
