package block

import (
	"fmt"
	"sort"
	"strings"
)

// Flags - битовая маска возможностей материала
type Flags uint16

const (
	Transparent       Flags = 1 << iota // Прозрачный
	Connect                             // Не рисует грань рядом с таким же прозрачным блоком
	CanRotate                           // Поворачивается при установке
	NoHitbox                            // Без хитбокса
	Fluid                               // Жидкость
	RotateYOnly                         // Поворот только вокруг оси Y
	FlatItem                            // Отображается плоским спрайтом
	FluidDestructible                   // Разрушается жидкостью
	NonVoxel                            // Невоксельная геометрия
	Replaceable                         // Заменяется при установке блока игроком
	CanUse                              // Можно использовать (ПКМ)
)

var flagNames = map[string]Flags{
	"transparent":        Transparent,
	"connect":            Connect,
	"can_rotate":         CanRotate,
	"no_hitbox":          NoHitbox,
	"fluid":              Fluid,
	"rotate_y_only":      RotateYOnly,
	"flat_item":          FlatItem,
	"fluid_destructible": FluidDestructible,
	"non_voxel":          NonVoxel,
	"replaceable":        Replaceable,
	"can_use":            CanUse,
}

// Has проверяет наличие всех битов f
func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

// String возвращает имена установленных флагов через "|"
func (f Flags) String() string {
	names := make([]string, 0, len(flagNames))
	for name, flag := range flagNames {
		if f&flag != 0 {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}

// ParseFlag возвращает флаг по имени из каталога
func ParseFlag(name string) (Flags, error) {
	flag, ok := flagNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("неизвестный флаг %q", name)
	}
	return flag, nil
}

// Def описывает один материал таблицы
type Def struct {
	ID    BlockID
	Name  string
	Flags Flags
}

// Table - неизменяемая таблица возможностей материалов, индексируемая ID.
// Строится один раз при старте и дальше только читается.
type Table struct {
	flags [256]Flags
	names [256]string
}

// NewTable строит таблицу из описаний. Повторный ID считается ошибкой.
func NewTable(defs []Def) (*Table, error) {
	t := &Table{}
	seen := make(map[BlockID]bool, len(defs))
	for _, def := range defs {
		if seen[def.ID] {
			return nil, fmt.Errorf("блок %d (%s) описан дважды", def.ID, def.Name)
		}
		seen[def.ID] = true
		t.flags[def.ID] = def.Flags
		t.names[def.ID] = def.Name
	}
	return t, nil
}

// Flags возвращает маску возможностей материала
func (t *Table) Flags(id BlockID) Flags {
	return t.flags[id]
}

// Has проверяет флаг материала
func (t *Table) Has(id BlockID, flag Flags) bool {
	return t.flags[id].Has(flag)
}

// Name возвращает имя материала или "block#<id>", если имя не задано
func (t *Table) Name(id BlockID) string {
	if t.names[id] != "" {
		return t.names[id]
	}
	return fmt.Sprintf("block#%d", id)
}

// plantFlags - набор флагов для растений
const plantFlags = Transparent | NoHitbox | FlatItem | FluidDestructible

// DefaultDefs возвращает встроенный каталог материалов
func DefaultDefs() []Def {
	return []Def{
		{ID: EmptyBlockID, Name: "empty"},
		{ID: StoneBlockID, Name: "stone"},
		{ID: IndestructibleBlockID, Name: "indestructible"},
		{ID: DirtBlockID, Name: "dirt"},
		{ID: LeavesBlockID, Name: "leaves", Flags: Transparent},
		{ID: LogBlockID, Name: "log", Flags: CanRotate},
		{ID: GlassBlockID, Name: "glass", Flags: Transparent | Connect},
		{ID: WaterBlockID, Name: "water", Flags: Transparent | Connect | NoHitbox | Fluid | Replaceable},
		{ID: LavaBlockID, Name: "lava", Flags: Transparent | Connect | NoHitbox | Fluid | Replaceable},
		{ID: ObsidianBlockID, Name: "obsidian"},
		{ID: ChestBlockID, Name: "chest", Flags: CanRotate | RotateYOnly | CanUse},
		{ID: FurnaceBlockID, Name: "furnace", Flags: CanRotate | RotateYOnly | CanUse},
		{ID: FarmlandBlockID, Name: "farmland"},
		{ID: FarmlandWetBlockID, Name: "farmland_wet"},
		{ID: SaplingBlockID, Name: "sapling", Flags: plantFlags},
		{ID: MushroomBlockID, Name: "mushroom", Flags: plantFlags},
		{ID: TallGrassBlockID, Name: "tall_grass", Flags: plantFlags | Replaceable},
		{ID: WheatStage0BlockID, Name: "wheat_0", Flags: plantFlags},
		{ID: WheatStage1BlockID, Name: "wheat_1", Flags: plantFlags},
		{ID: WheatStage2BlockID, Name: "wheat_2", Flags: plantFlags},
		{ID: WheatStage3BlockID, Name: "wheat_3", Flags: plantFlags},
		{ID: RedFlowerBlockID, Name: "red_flower", Flags: plantFlags},
		{ID: YellowFlowerBlockID, Name: "yellow_flower", Flags: plantFlags},
		{ID: BlueFlowerBlockID, Name: "blue_flower", Flags: plantFlags},
		{ID: SugarCaneBlockID, Name: "sugar_cane", Flags: plantFlags},
		{ID: TorchBlockID, Name: "torch", Flags: Transparent | NoHitbox | NonVoxel | FluidDestructible},
		{ID: RedTorchBlockID, Name: "red_torch", Flags: Transparent | NoHitbox | NonVoxel | FluidDestructible},
		{ID: GreenTorchBlockID, Name: "green_torch", Flags: Transparent | NoHitbox | NonVoxel | FluidDestructible},
		{ID: BlueTorchBlockID, Name: "blue_torch", Flags: Transparent | NoHitbox | NonVoxel | FluidDestructible},
		{ID: LadderBlockID, Name: "ladder", Flags: Transparent | NoHitbox | NonVoxel | CanRotate | RotateYOnly},
		{ID: FenceBlockID, Name: "fence", Flags: Transparent | NonVoxel},
		{ID: LanternBlockID, Name: "lantern", Flags: Transparent | NonVoxel | FluidDestructible},
		{ID: GateBlockID, Name: "gate", Flags: Transparent | NonVoxel | CanRotate | RotateYOnly | CanUse},
		{ID: RailBlockID, Name: "rail", Flags: Transparent | NoHitbox | NonVoxel | FluidDestructible},
		{ID: CarpetBlockID, Name: "carpet", Flags: Transparent | NonVoxel | FluidDestructible},
	}
}

// DefaultTable возвращает таблицу со встроенным каталогом
func DefaultTable() *Table {
	t, err := NewTable(DefaultDefs())
	if err != nil {
		// Встроенный каталог не содержит дубликатов
		panic(err)
	}
	return t
}
