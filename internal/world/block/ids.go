package block

// BlockID представляет идентификатор материала блока
type BlockID uint8

// Константы ID блоков
const (
	EmptyBlockID          BlockID = 0 // Пустая клетка
	StoneBlockID          BlockID = 2
	IndestructibleBlockID BlockID = 3
	DirtBlockID           BlockID = 4
	LeavesBlockID         BlockID = 7
	LogBlockID            BlockID = 8
	GlassBlockID          BlockID = 9
	WaterBlockID          BlockID = 12
	LavaBlockID           BlockID = 13
	ObsidianBlockID       BlockID = 14
	ChestBlockID          BlockID = 37
	FurnaceBlockID        BlockID = 40
	FarmlandBlockID       BlockID = 43
	FarmlandWetBlockID    BlockID = 45

	// Растения (47-56)
	SaplingBlockID      BlockID = 47
	MushroomBlockID     BlockID = 48
	TallGrassBlockID    BlockID = 49
	WheatStage0BlockID  BlockID = 50
	WheatStage1BlockID  BlockID = 51
	WheatStage2BlockID  BlockID = 52
	WheatStage3BlockID  BlockID = 53
	RedFlowerBlockID    BlockID = 54
	YellowFlowerBlockID BlockID = 55
	BlueFlowerBlockID   BlockID = 56
	SugarCaneBlockID    BlockID = 69

	// Факелы, лестница, ограда
	TorchBlockID      BlockID = 71
	RedTorchBlockID   BlockID = 72
	GreenTorchBlockID BlockID = 73
	BlueTorchBlockID  BlockID = 74
	LadderBlockID     BlockID = 75
	FenceBlockID      BlockID = 76
	LanternBlockID    BlockID = 77
	GateBlockID       BlockID = 78
	RailBlockID       BlockID = 88
	CarpetBlockID     BlockID = 90
)

// Формы блока (биты 5-7 геометрии)
const (
	ShapeFull   uint8 = 0
	ShapeSlab   uint8 = 1
	ShapeStair5 uint8 = 2 // ступень 5/8
	ShapeStair6 uint8 = 3 // ступень 6/8
	ShapeStair7 uint8 = 4 // ступень 7/8
)

// Уровни жидкости, хранящиеся в байте геометрии
const (
	LevelEmpty   uint8 = 0
	LevelStill   uint8 = 7 // Полная, подпитываемая источником
	LevelFalling uint8 = 8 // Маркер падающей жидкости под стекающей клеткой
)
