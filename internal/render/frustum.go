package render

import "github.com/go-gl/mathgl/mgl32"

// plane: a*x + b*y + c*z + d >= 0 для точек внутри
type plane struct {
	a, b, c, d float32
}

func planeFromRow(v mgl32.Vec4) plane {
	n := v.Vec3().Len()
	if n == 0 {
		return plane{d: v.W()}
	}
	return plane{a: v.X() / n, b: v.Y() / n, c: v.Z() / n, d: v.W() / n}
}

func (p plane) distance(v mgl32.Vec3) float32 {
	return p.a*v.X() + p.b*v.Y() + p.c*v.Z() + p.d
}

// Frustum - шесть плоскостей пирамиды видимости
type Frustum struct {
	planes [6]plane
}

// NewFrustum извлекает плоскости из матрицы проекция*вид
func NewFrustum(m mgl32.Mat4) Frustum {
	r0, r1, r2, r3 := m.Row(0), m.Row(1), m.Row(2), m.Row(3)
	return Frustum{planes: [6]plane{
		planeFromRow(r3.Add(r0)), // левая
		planeFromRow(r3.Sub(r0)), // правая
		planeFromRow(r3.Add(r1)), // нижняя
		planeFromRow(r3.Sub(r1)), // верхняя
		planeFromRow(r3.Add(r2)), // ближняя
		planeFromRow(r3.Sub(r2)), // дальняя
	}}
}

// ContainsPoint проверяет точку
func (f Frustum) ContainsPoint(p mgl32.Vec3) bool {
	for _, pl := range f.planes {
		if pl.distance(p) < 0 {
			return false
		}
	}
	return true
}

// IntersectsAABB возвращает false, только если коробка целиком снаружи
// хотя бы одной плоскости
func (f Frustum) IntersectsAABB(lo, hi mgl32.Vec3) bool {
	for _, pl := range f.planes {
		// Ближайшая к внутренней стороне вершина
		v := lo
		if pl.a >= 0 {
			v[0] = hi.X()
		}
		if pl.b >= 0 {
			v[1] = hi.Y()
		}
		if pl.c >= 0 {
			v[2] = hi.Z()
		}
		if pl.distance(v) < 0 {
			return false
		}
	}
	return true
}
