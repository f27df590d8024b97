package render

import (
	"github.com/sublimegame/voxelworld/internal/world"
	"github.com/sublimegame/voxelworld/internal/world/block"
)

// VertexStride - байт на вершину: x, y, z, грань, id блока
const VertexStride = 5

// Грани куба. Порядок совпадает с порядком соседних чанков.
const (
	FaceUp = iota
	FaceDown
	FaceLeft
	FaceRight
	FaceBack
	FaceFront
	faceCount
)

// faceDirs - смещение к соседней клетке для каждой грани
var faceDirs = [faceCount][3]int{
	FaceUp:    {0, 1, 0},
	FaceDown:  {0, -1, 0},
	FaceLeft:  {-1, 0, 0},
	FaceRight: {1, 0, 0},
	FaceBack:  {0, 0, -1},
	FaceFront: {0, 0, 1},
}

// faceCorners - углы грани единичного куба против часовой стрелки, если смотреть снаружи
var faceCorners = [faceCount][4][3]uint8{
	FaceUp:    {{0, 1, 0}, {0, 1, 1}, {1, 1, 1}, {1, 1, 0}},
	FaceDown:  {{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}},
	FaceLeft:  {{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}},
	FaceRight: {{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}},
	FaceBack:  {{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0}},
	FaceFront: {{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}},
}

// Два треугольника на грань
var quadOrder = [6]int{0, 1, 2, 2, 3, 0}

// Neighbors - соседние по граням чанки в порядке граней; nil - не загружен
type Neighbors [faceCount]*world.Chunk

// NeighborsOf собирает соседей чанка из мира
func NeighborsOf(w *world.World, c *world.Chunk) Neighbors {
	var n Neighbors
	for f, d := range faceDirs {
		n[f], _ = w.GetChunkAt(c.Coords.Offset(d[0], d[1], d[2]))
	}
	return n
}

// neighborBlock читает клетку рядом с (x, y, z) через грань f, переходя в соседний чанк
func neighborBlock(c *world.Chunk, adj *Neighbors, x, y, z, f int) block.Block {
	d := faceDirs[f]
	nx, ny, nz := x+d[0], y+d[1], z+d[2]
	if nx >= 0 && nx < world.ChunkSize && ny >= 0 && ny < world.ChunkSize && nz >= 0 && nz < world.ChunkSize {
		return c.GetBlock(nx, ny, nz)
	}
	n := adj[f]
	if n == nil {
		return block.New()
	}
	return n.GetBlock(wrap(nx), wrap(ny), wrap(nz))
}

func wrap(v int) int {
	return v & (world.ChunkSize - 1)
}

// faceVisible: грань видна, если за ней пусто или прозрачный блок.
// Между одинаковыми прозрачными блоками грань скрыта только для материалов с Connect.
func faceVisible(t *block.Table, b, n block.Block) bool {
	if n.IsEmpty() {
		return true
	}
	if !n.Transparent(t) {
		return false
	}
	return n.ID != b.ID || !b.CanConnect(t)
}

// BuildChunkVertices строит поток вершин чанка с отсечением скрытых граней
func BuildChunkVertices(t *block.Table, c *world.Chunk, adj Neighbors) []byte {
	if c.IsEmpty() {
		return nil
	}

	var out []byte
	for x := 0; x < world.ChunkSize; x++ {
		for y := 0; y < world.ChunkSize; y++ {
			for z := 0; z < world.ChunkSize; z++ {
				b := c.GetBlock(x, y, z)
				if b.IsEmpty() {
					continue
				}
				for f := 0; f < faceCount; f++ {
					if !faceVisible(t, b, neighborBlock(c, &adj, x, y, z, f)) {
						continue
					}
					corners := faceCorners[f]
					for _, i := range quadOrder {
						k := corners[i]
						out = append(out,
							uint8(x)+k[0], uint8(y)+k[1], uint8(z)+k[2],
							uint8(f), uint8(b.ID))
					}
				}
			}
		}
	}
	return out
}
