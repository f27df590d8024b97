package block

// Block - клетка мира: ID материала и байт геометрии.
//
// Для обычных блоков: биты 0-2 - ориентация (0 вверх, 1 вправо, 2 вперед,
// 3 вниз, 4 влево, 5 назад), бит 3 - отражение, биты 5-7 - форма.
// Для жидкостей весь байт - уровень 0-8 (7 - стоячая, 8 - падающая).
// Для пустого блока геометрия не имеет значения.
type Block struct {
	ID       BlockID
	Geometry uint8
}

// New создает пустой блок
func New() Block {
	return Block{}
}

// NewID создает блок с указанным ID
func NewID(id BlockID) Block {
	return Block{ID: id}
}

// NewFluid создает блок жидкости со стоячим уровнем
func NewFluid(id BlockID) Block {
	return Block{ID: id, Geometry: LevelStill}
}

// NewFluidLevel создает блок жидкости с заданным уровнем
func NewFluidLevel(id BlockID, level uint8) Block {
	return Block{ID: id, Geometry: level}
}

// NewIDOrientation создает блок с ID и ориентацией
func NewIDOrientation(id BlockID, orientation uint8) Block {
	return Block{ID: id, Geometry: orientation}
}

// IsEmpty возвращает true для пустой клетки
func (b Block) IsEmpty() bool {
	return b.ID == EmptyBlockID
}

// Orientation возвращает ориентацию блока
func (b Block) Orientation() uint8 {
	return b.Geometry & 7
}

// SetOrientation меняет младшие 3 бита, сохраняя остальные
func (b *Block) SetOrientation(orientation uint8) {
	b.Geometry &= 0xF8
	b.Geometry |= orientation & 7
}

// Shape возвращает форму блока
func (b Block) Shape() uint8 {
	return b.Geometry >> 5
}

// SetShape меняет старшие 3 бита, сохраняя остальные
func (b *Block) SetShape(shape uint8) {
	b.Geometry &= 0x1F
	b.Geometry |= shape << 5
}

// Reflection возвращает бит отражения (0 или 1)
func (b Block) Reflection() uint8 {
	return (b.Geometry >> 3) & 1
}

// SetReflection устанавливает бит отражения (0 или 1)
func (b *Block) SetReflection(reflection uint8) {
	b.Geometry &^= 1 << 3
	b.Geometry |= (reflection & 1) << 3
}

// Level возвращает уровень жидкости
func (b Block) Level() uint8 {
	return b.Geometry
}

// Transparent - прозрачен ли блок
func (b Block) Transparent(t *Table) bool {
	return t.Has(b.ID, Transparent)
}

// CanConnect - не рисуется грань рядом с таким же прозрачным блоком
func (b Block) CanConnect(t *Table) bool {
	return t.Has(b.ID, Connect)
}

// CanRotate - поворачивается ли блок при установке
func (b Block) CanRotate(t *Table) bool {
	return t.Has(b.ID, CanRotate)
}

// NoHitbox - нет ли у блока хитбокса.
// Открытая калитка (ID 78 с отражением) всегда без хитбокса.
func (b Block) NoHitbox(t *Table) bool {
	if b.ID == GateBlockID && b.Reflection() == 1 {
		return true
	}
	return t.Has(b.ID, NoHitbox)
}

// IsFluid - является ли блок жидкостью
func (b Block) IsFluid(t *Table) bool {
	return t.Has(b.ID, Fluid)
}

// RotateYOnly - поворот только вокруг оси Y
func (b Block) RotateYOnly(t *Table) bool {
	return t.Has(b.ID, RotateYOnly)
}

// IsFlatItem - отображается ли блок плоским спрайтом
func (b Block) IsFlatItem(t *Table) bool {
	return t.Has(b.ID, FlatItem)
}

// FluidDestructible - разрушается ли блок жидкостью
func (b Block) FluidDestructible(t *Table) bool {
	return t.Has(b.ID, FluidDestructible)
}

// NonVoxelGeometry - требует ли блок особой геометрии
func (b Block) NonVoxelGeometry(t *Table) bool {
	return t.Has(b.ID, NonVoxel)
}

// Replaceable - заменяется ли блок при установке
func (b Block) Replaceable(t *Table) bool {
	return t.Has(b.ID, Replaceable)
}

// CanUse - можно ли использовать блок
func (b Block) CanUse(t *Table) bool {
	return t.Has(b.ID, CanUse)
}
