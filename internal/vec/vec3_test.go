package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3_ChunkConversionNegative(t *testing.T) {
	cases := []struct {
		in    int
		chunk int
		local int
	}{
		{0, 0, 0},
		{15, 0, 15},
		{16, 1, 0},
		{-1, -1, 15},
		{-16, -1, 0},
		{-17, -2, 15},
		{33, 2, 1},
	}

	for _, c := range cases {
		assert.Equal(t, c.chunk, ChunkCoord(c.in), "координата чанка для %d", c.in)
		assert.Equal(t, c.local, WrapCoord(c.in), "локальная координата для %d", c.in)
	}
}

func TestVec3_WrapInvariant(t *testing.T) {
	for x := -100; x <= 100; x++ {
		local := WrapCoord(x)
		assert.True(t, local >= 0 && local < 16, "локальная координата вне [0,16) для %d", x)
		assert.Equal(t, 0, (x-local)%16, "x - local должно делиться на 16 для %d", x)
		assert.Equal(t, x, ChunkCoord(x)*16+local)
	}
}

func TestVec3_ChunkOrigin(t *testing.T) {
	p := Vec3{X: -5, Y: 20, Z: 31}
	c := p.ToChunkCoords()
	assert.Equal(t, Vec3{X: -1, Y: 1, Z: 1}, c)
	assert.Equal(t, p, c.ChunkOrigin().Add(p.LocalInChunk()))
}

func TestVec3_Compare(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: 1, Y: 3, Z: 0}
	assert.Equal(t, -1, Compare(a, b))
	assert.Equal(t, 1, Compare(b, a))
	assert.Equal(t, 0, Compare(a, a))
}
