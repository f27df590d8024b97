package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sublimegame/voxelworld/internal/vec"
)

func TestBlock_Constructors(t *testing.T) {
	assert.True(t, New().IsEmpty())
	assert.Equal(t, Block{ID: StoneBlockID}, NewID(StoneBlockID))
	assert.Equal(t, Block{ID: WaterBlockID, Geometry: 7}, NewFluid(WaterBlockID))
	assert.Equal(t, Block{ID: LogBlockID, Geometry: OrientFront}, NewIDOrientation(LogBlockID, OrientFront))
}

func TestBlock_GeometryFields(t *testing.T) {
	b := NewID(StoneBlockID)

	b.SetShape(ShapeStair6)
	b.SetReflection(1)
	b.SetOrientation(OrientLeft)

	assert.Equal(t, ShapeStair6, b.Shape())
	assert.Equal(t, uint8(1), b.Reflection())
	assert.Equal(t, OrientLeft, b.Orientation())

	// Смена одного поля не трогает остальные
	b.SetOrientation(OrientBack)
	assert.Equal(t, ShapeStair6, b.Shape())
	assert.Equal(t, uint8(1), b.Reflection())

	b.SetReflection(0)
	assert.Equal(t, OrientBack, b.Orientation())
	assert.Equal(t, ShapeStair6, b.Shape())

	b.SetShape(ShapeFull)
	assert.Equal(t, OrientBack, b.Orientation())
	assert.Equal(t, uint8(0), b.Geometry>>5)
}

func TestBlock_CapabilityPassthrough(t *testing.T) {
	table := DefaultTable()

	water := NewFluid(WaterBlockID)
	assert.True(t, water.IsFluid(table))
	assert.True(t, water.Transparent(table))
	assert.True(t, water.CanConnect(table))
	assert.False(t, NewID(StoneBlockID).Transparent(table))
	assert.True(t, NewID(RedFlowerBlockID).IsFlatItem(table))
	assert.True(t, NewID(TorchBlockID).FluidDestructible(table))
	assert.True(t, NewID(ChestBlockID).RotateYOnly(table))
	assert.True(t, NewID(ChestBlockID).CanUse(table))
	assert.True(t, NewID(LogBlockID).CanRotate(table))
	assert.True(t, NewID(TallGrassBlockID).Replaceable(table))
	assert.True(t, NewID(FenceBlockID).NonVoxelGeometry(table))
}

func TestBlock_OpenGateHasNoHitbox(t *testing.T) {
	table := DefaultTable()

	gate := NewID(GateBlockID)
	assert.False(t, gate.NoHitbox(table), "закрытая калитка имеет хитбокс")

	gate.SetReflection(1)
	assert.True(t, gate.NoHitbox(table), "открытая калитка без хитбокса")

	// Отражение у другого блока ничего не меняет
	stone := NewID(StoneBlockID)
	stone.SetReflection(1)
	assert.False(t, stone.NoHitbox(table))
}

func TestBlock_LightSrc(t *testing.T) {
	src, ok := NewFluid(LavaBlockID).LightSrc()
	require.True(t, ok)
	assert.Equal(t, NewLightSrc(15, 8, 0), src)

	src, ok = NewID(BlueTorchBlockID).LightSrc()
	require.True(t, ok)
	assert.Equal(t, NewLightSrc(0, 3, 15), src)

	_, ok = NewFluid(WaterBlockID).LightSrc()
	assert.False(t, ok)
}

func TestOrientationHelpers(t *testing.T) {
	assert.Equal(t, vec.Vec3{Y: 1}, OrientationToNormal(OrientUp))
	assert.Equal(t, vec.Vec3{Z: -1}, OrientationToNormal(OrientBack))
	assert.Equal(t, vec.Vec3{}, OrientationToNormal(7))

	for o := uint8(0); o < 6; o++ {
		assert.Equal(t, o, RotateOrientationReverse(RotateOrientation(o)), "ориентация %d", o)
	}
	assert.Equal(t, OrientUp, RotateOrientation(OrientUp))
}

func TestTable_DuplicateID(t *testing.T) {
	_, err := NewTable([]Def{{ID: 1, Name: "a"}, {ID: 1, Name: "b"}})
	assert.Error(t, err)
}

func TestTable_Name(t *testing.T) {
	table := DefaultTable()
	assert.Equal(t, "water", table.Name(WaterBlockID))
	assert.Equal(t, "block#200", table.Name(200))
}

func TestParseCatalog(t *testing.T) {
	data := []byte(`
blocks:
  - id: 12
    name: water
    flags: [transparent, connect, no_hitbox, fluid]
  - id: 2
    name: stone
`)
	table, err := ParseCatalog(data)
	require.NoError(t, err)
	assert.True(t, table.Has(WaterBlockID, Fluid))
	assert.False(t, table.Has(StoneBlockID, Transparent))
	assert.Equal(t, "connect|fluid|no_hitbox|transparent", table.Flags(WaterBlockID).String())
}

func TestParseCatalog_Errors(t *testing.T) {
	_, err := ParseCatalog([]byte("blocks:\n  - id: 300\n    name: big\n"))
	assert.ErrorContains(t, err, "вне диапазона")

	_, err = ParseCatalog([]byte("blocks:\n  - id: 5\n    name: x\n    flags: [shiny]\n"))
	assert.ErrorContains(t, err, "shiny")

	_, err = ParseCatalog([]byte("blocks: [\n"))
	assert.Error(t, err)
}

func TestLoadCatalog_ShippedMatchesDefault(t *testing.T) {
	loaded, err := LoadCatalog("../../../configs/blocks.yaml")
	require.NoError(t, err)

	def := DefaultTable()
	for id := 0; id < 256; id++ {
		assert.Equal(t, def.Flags(BlockID(id)), loaded.Flags(BlockID(id)), "флаги блока %d", id)
		assert.Equal(t, def.Name(BlockID(id)), loaded.Name(BlockID(id)), "имя блока %d", id)
	}
}
