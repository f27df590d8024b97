package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func newTestCamera(pos mgl32.Vec3) *Camera {
	return NewCamera(pos, 70, 16.0/9.0, 0.1, 1000)
}

func TestCamera_Forward(t *testing.T) {
	cam := newTestCamera(mgl32.Vec3{})
	assert.InDelta(t, 1, cam.Forward().X(), 1e-5)
	assert.InDelta(t, 0, cam.Forward().Z(), 1e-5)

	cam.Pitch = mgl32.DegToRad(90)
	assert.InDelta(t, 1, cam.Forward().Y(), 1e-5)
}

func TestFrustum_Points(t *testing.T) {
	f := newTestCamera(mgl32.Vec3{}).Frustum()

	assert.True(t, f.ContainsPoint(mgl32.Vec3{10, 0, 0}))
	assert.False(t, f.ContainsPoint(mgl32.Vec3{-10, 0, 0}), "Позади камеры")
	assert.False(t, f.ContainsPoint(mgl32.Vec3{2000, 0, 0}), "Дальше дальней плоскости")
	assert.False(t, f.ContainsPoint(mgl32.Vec3{10, 100, 0}), "Выше верхней плоскости")
	assert.False(t, f.ContainsPoint(mgl32.Vec3{0.01, 0, 0}), "Ближе ближней плоскости")
}

func TestFrustum_AABB(t *testing.T) {
	f := newTestCamera(mgl32.Vec3{0, 8, 8}).Frustum()

	assert.True(t, f.IntersectsAABB(mgl32.Vec3{32, 0, 0}, mgl32.Vec3{48, 16, 16}))
	assert.False(t, f.IntersectsAABB(mgl32.Vec3{-48, 0, 0}, mgl32.Vec3{-32, 16, 16}), "Чанк позади")
	assert.True(t, f.IntersectsAABB(mgl32.Vec3{-16, 0, 0}, mgl32.Vec3{16, 16, 16}), "Камера внутри коробки")
	assert.False(t, f.IntersectsAABB(mgl32.Vec3{1600, 0, 0}, mgl32.Vec3{1616, 16, 16}), "За дальней плоскостью")
}
