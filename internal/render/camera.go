package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera - точка обзора и параметры перспективы
type Camera struct {
	Position mgl32.Vec3
	Yaw      float32 // Поворот вокруг Y, радианы; 0 смотрит в +X
	Pitch    float32 // Наклон, радианы

	Fov    float32 // Вертикальный угол обзора, градусы
	Aspect float32
	Near   float32
	Far    float32
}

// NewCamera создаёт камеру в точке position, смотрящую вдоль +X
func NewCamera(position mgl32.Vec3, fov, aspect, near, far float32) *Camera {
	return &Camera{
		Position: position,
		Fov:      fov,
		Aspect:   aspect,
		Near:     near,
		Far:      far,
	}
}

// Forward возвращает единичный вектор направления взгляда
func (c *Camera) Forward() mgl32.Vec3 {
	yaw, pitch := float64(c.Yaw), float64(c.Pitch)
	return mgl32.Vec3{
		float32(math.Cos(pitch) * math.Cos(yaw)),
		float32(math.Sin(pitch)),
		float32(math.Cos(pitch) * math.Sin(yaw)),
	}.Normalize()
}

// View возвращает матрицу вида
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Forward()), mgl32.Vec3{0, 1, 0})
}

// Projection возвращает матрицу перспективы
func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Fov), c.Aspect, c.Near, c.Far)
}

// Frustum возвращает пирамиду видимости камеры
func (c *Camera) Frustum() Frustum {
	return NewFrustum(c.Projection().Mul4(c.View()))
}
