// Package worldgen заполняет мир ландшафтом на основе шума Перлина
package worldgen

import (
	"math/rand"

	"github.com/aquilax/go-perlin"

	"github.com/sublimegame/voxelworld/internal/logging"
	"github.com/sublimegame/voxelworld/internal/vec"
	"github.com/sublimegame/voxelworld/internal/world"
	"github.com/sublimegame/voxelworld/internal/world/block"
)

// BiomeType представляет тип биома
type BiomeType int

const (
	BiomePlains BiomeType = iota
	BiomeForest
	BiomeMountains
	BiomeWater
)

// Пороги нормированной высоты
const (
	MountainStart = 0.75 // Выше - каменные горы
	dirtDepth     = 3    // Слой земли над камнем
)

// Generator генерирует ландшафт мира
type Generator struct {
	Seed          int64   // Сид для генерации шума
	Height        int     // Высота мира в чанках
	NoiseScale    float64 // Масштаб шума высот
	BiomeScale    float64 // Масштаб шума биомов
	ForestDensity float64 // Доля колонн с деревом в лесу
	FlowerDensity float64 // Доля колонн с растением на равнине
	LavaChance    float64 // Вероятность лавового озера в горной колонне

	height *perlin.Perlin
	biome  *perlin.Perlin
	log    *logging.Logger
}

// NewGenerator создаёт генератор для мира высотой height чанков
func NewGenerator(seed int64, height int) *Generator {
	if height < 1 {
		height = 1
	}
	alpha := 2.0  // Сглаживание шума
	beta := 2.0   // Частота шума
	n := int32(3) // Количество октав
	return &Generator{
		Seed:          seed,
		Height:        height,
		NoiseScale:    0.03,
		BiomeScale:    0.01,
		ForestDensity: 0.04,
		FlowerDensity: 0.08,
		LavaChance:    0.01,
		height:        perlin.NewPerlin(alpha, beta, n, seed),
		biome:         perlin.NewPerlin(alpha, beta, n, seed+42),
		log:           logging.GetComponentLogger("worldgen"),
	}
}

// noise2D возвращает шум в диапазоне [0, 1]
func noise2D(p *perlin.Perlin, x, y float64) float64 {
	v := (p.Noise2D(x, y) + 1.0) / 2.0
	return min(max(v, 0), 1)
}

// MaxY возвращает высоту мира в клетках
func (g *Generator) MaxY() int {
	return g.Height * world.ChunkSize
}

// SeaLevel возвращает уровень моря
func (g *Generator) SeaLevel() int {
	return g.MaxY() * 3 / 8
}

// SurfaceAt возвращает высоту поверхности колонны (x, z) и её биом
func (g *Generator) SurfaceAt(x, z int) (int, BiomeType) {
	h := noise2D(g.height, float64(x)*g.NoiseScale, float64(z)*g.NoiseScale)
	surface := 2 + int(h*float64(g.MaxY()-6))

	if surface < g.SeaLevel() {
		return surface, BiomeWater
	}
	if h > MountainStart {
		return surface, BiomeMountains
	}
	if noise2D(g.biome, float64(x)*g.BiomeScale, float64(z)*g.BiomeScale) > 0.55 {
		return surface, BiomeForest
	}
	return surface, BiomePlains
}

// GenerateChunk генерирует чанк по его координатам
func (g *Generator) GenerateChunk(coords vec.Vec3) *world.Chunk {
	chunk := world.NewChunk(coords)
	origin := chunk.Origin()

	// Свой генератор случайных чисел на чанк для детерминированности
	chunkSeed := g.Seed + int64(coords.X*31) + int64(coords.Y*7) + int64(coords.Z*17)
	rng := rand.New(rand.NewSource(chunkSeed))

	for x := 0; x < world.ChunkSize; x++ {
		for z := 0; z < world.ChunkSize; z++ {
			surface, biome := g.SurfaceAt(origin.X+x, origin.Z+z)
			for y := 0; y < world.ChunkSize; y++ {
				if b := g.blockAt(origin.Y+y, surface, biome); !b.IsEmpty() {
					chunk.SetBlock(x, y, z, b)
				}
			}
			g.decorate(chunk, x, z, surface, biome, rng)
		}
	}
	return chunk
}

// blockAt возвращает блок колонны на высоте y
func (g *Generator) blockAt(y, surface int, biome BiomeType) block.Block {
	switch {
	case y == 0:
		return block.NewID(block.IndestructibleBlockID)
	case y < surface-dirtDepth:
		return block.NewID(block.StoneBlockID)
	case y <= surface:
		if biome == BiomeMountains {
			return block.NewID(block.StoneBlockID)
		}
		return block.NewID(block.DirtBlockID)
	case biome == BiomeWater && y <= g.SeaLevel():
		return block.NewFluid(block.WaterBlockID)
	}
	return block.New()
}

// decorate ставит растения, деревья и лаву над поверхностью, если она внутри чанка
func (g *Generator) decorate(chunk *world.Chunk, x, z, surface int, biome BiomeType, rng *rand.Rand) {
	ly := surface + 1 - chunk.Origin().Y
	if ly < 1 || ly >= world.ChunkSize {
		return
	}

	switch biome {
	case BiomePlains:
		if rng.Float64() >= g.FlowerDensity {
			return
		}
		plants := []block.BlockID{
			block.TallGrassBlockID, block.TallGrassBlockID,
			block.RedFlowerBlockID, block.YellowFlowerBlockID, block.BlueFlowerBlockID,
		}
		chunk.SetBlock(x, ly, z, block.NewID(plants[rng.Intn(len(plants))]))
	case BiomeForest:
		// Дерево целиком внутри чанка: крона 5x5 и ствол высотой 4
		if x < 2 || x > world.ChunkSize-3 || z < 2 || z > world.ChunkSize-3 || ly+5 >= world.ChunkSize {
			return
		}
		if rng.Float64() < g.ForestDensity {
			placeTree(chunk, x, ly, z)
		}
	case BiomeMountains:
		if rng.Float64() < g.LavaChance {
			// Лава в углублении поверхности
			chunk.SetBlock(x, ly-1, z, block.NewFluid(block.LavaBlockID))
		}
	}
}

func placeTree(chunk *world.Chunk, x, y, z int) {
	for dy := 3; dy <= 5; dy++ {
		r := 2
		if dy == 5 {
			r = 1
		}
		for dx := -r; dx <= r; dx++ {
			for dz := -r; dz <= r; dz++ {
				chunk.SetBlock(x+dx, y+dy, z+dz, block.NewID(block.LeavesBlockID))
			}
		}
	}
	for dy := 0; dy < 4; dy++ {
		chunk.SetBlock(x, y+dy, z, block.NewID(block.LogBlockID))
	}
}

// Generate загружает в мир столбцы чанков в радиусе radius вокруг начала координат
func (g *Generator) Generate(w *world.World, radius int) int {
	count := 0
	for cx := -radius; cx <= radius; cx++ {
		for cz := -radius; cz <= radius; cz++ {
			for cy := 0; cy < g.Height; cy++ {
				w.AddChunk(g.GenerateChunk(vec.New(cx, cy, cz)))
				count++
			}
		}
	}
	g.log.Info("Сгенерировано чанков: %d (сид %d, радиус %d, высота %d)", count, g.Seed, radius, g.Height)
	return count
}
