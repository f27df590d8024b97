// Package support проверяет, держатся ли растения, факелы, лестницы и
// прочие декоративные блоки на своей опоре.
package support

import (
	"github.com/sublimegame/voxelworld/internal/vec"
	"github.com/sublimegame/voxelworld/internal/world"
	"github.com/sublimegame/voxelworld/internal/world/block"
)

// Provider хранит проверки опоры по id материала
type Provider struct {
	checks map[block.BlockID]world.ValidityFunc
}

// NewProvider создаёт пустой набор проверок
func NewProvider() *Provider {
	return &Provider{checks: make(map[block.BlockID]world.ValidityFunc)}
}

// DefaultProvider возвращает набор со встроенными проверками
func DefaultProvider() *Provider {
	p := NewProvider()

	for _, id := range []block.BlockID{
		block.SaplingBlockID, block.TallGrassBlockID,
		block.RedFlowerBlockID, block.YellowFlowerBlockID, block.BlueFlowerBlockID,
	} {
		p.Register(id, onSoil)
	}
	for id := block.WheatStage0BlockID; id <= block.WheatStage3BlockID; id++ {
		p.Register(id, onFarmland)
	}
	p.Register(block.MushroomBlockID, onSolid)
	p.Register(block.SugarCaneBlockID, sugarCane)

	for id := block.TorchBlockID; id <= block.BlueTorchBlockID; id++ {
		p.Register(id, attached)
	}
	p.Register(block.LadderBlockID, attached)

	p.Register(block.LanternBlockID, hanging)
	p.Register(block.RailBlockID, onSolid)
	p.Register(block.CarpetBlockID, onAnything)
	return p
}

// Register задаёт проверку для id, заменяя предыдущую
func (p *Provider) Register(id block.BlockID, fn world.ValidityFunc) {
	p.checks[id] = fn
}

// CheckFn возвращает проверку для id или nil, если материал не проверяется
func (p *Provider) CheckFn(id block.BlockID) world.ValidityFunc {
	return p.checks[id]
}

// solid - непустой, непрозрачный и не жидкость
func solid(w *world.World, pos vec.Vec3) bool {
	b := w.GetBlockAt(pos)
	return !b.IsEmpty() && !b.Transparent(w.Table()) && !b.IsFluid(w.Table())
}

func onSolid(w *world.World, x, y, z int) bool {
	return solid(w, vec.New(x, y-1, z))
}

func onAnything(w *world.World, x, y, z int) bool {
	below := w.GetBlock(x, y-1, z)
	return !below.IsEmpty() && !below.IsFluid(w.Table())
}

func onSoil(w *world.World, x, y, z int) bool {
	switch w.GetBlock(x, y-1, z).ID {
	case block.DirtBlockID, block.FarmlandBlockID, block.FarmlandWetBlockID:
		return true
	}
	return false
}

func onFarmland(w *world.World, x, y, z int) bool {
	id := w.GetBlock(x, y-1, z).ID
	return id == block.FarmlandBlockID || id == block.FarmlandWetBlockID
}

// sugarCane: растет столбом; нижний стебель стоит на земле рядом с водой
func sugarCane(w *world.World, x, y, z int) bool {
	below := w.GetBlock(x, y-1, z)
	if below.ID == block.SugarCaneBlockID {
		return true
	}
	if below.ID != block.DirtBlockID {
		return false
	}
	soil := vec.New(x, y-1, z)
	for _, d := range []vec.Vec3{{X: 1}, {X: -1}, {Z: 1}, {Z: -1}} {
		if w.GetBlockAt(soil.Add(d)).ID == block.WaterBlockID {
			return true
		}
	}
	return false
}

// attached: блок крепится гранью, противоположной своей ориентации
func attached(w *world.World, x, y, z int) bool {
	pos := vec.New(x, y, z)
	normal := block.OrientationToNormal(w.GetBlockAt(pos).Orientation())
	if normal == (vec.Vec3{}) {
		return false
	}
	return solid(w, vec.New(x-normal.X, y-normal.Y, z-normal.Z))
}

// hanging: фонарь стоит на блоке или висит под ним
func hanging(w *world.World, x, y, z int) bool {
	return solid(w, vec.New(x, y-1, z)) || !w.GetBlock(x, y+1, z).IsEmpty()
}
