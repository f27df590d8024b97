package block

import "github.com/sublimegame/voxelworld/internal/vec"

// Ориентации блока
const (
	OrientUp    uint8 = 0
	OrientRight uint8 = 1
	OrientFront uint8 = 2
	OrientDown  uint8 = 3
	OrientLeft  uint8 = 4
	OrientBack  uint8 = 5
)

// OrientationToNormal возвращает единичную нормаль ориентации.
// Для неизвестных значений возвращается нулевой вектор.
func OrientationToNormal(orientation uint8) vec.Vec3 {
	switch orientation {
	case OrientUp:
		return vec.Vec3{X: 0, Y: 1, Z: 0}
	case OrientRight:
		return vec.Vec3{X: 1, Y: 0, Z: 0}
	case OrientFront:
		return vec.Vec3{X: 0, Y: 0, Z: 1}
	case OrientDown:
		return vec.Vec3{X: 0, Y: -1, Z: 0}
	case OrientLeft:
		return vec.Vec3{X: -1, Y: 0, Z: 0}
	case OrientBack:
		return vec.Vec3{X: 0, Y: 0, Z: -1}
	}
	return vec.Vec3{}
}

// RotateOrientation поворачивает горизонтальную ориентацию на 90 градусов вокруг Y
func RotateOrientation(orientation uint8) uint8 {
	switch orientation {
	case OrientRight:
		return OrientBack
	case OrientFront:
		return OrientRight
	case OrientLeft:
		return OrientFront
	case OrientBack:
		return OrientLeft
	}
	return orientation
}

// RotateOrientationReverse - обратный поворот к RotateOrientation
func RotateOrientationReverse(orientation uint8) uint8 {
	switch orientation {
	case OrientRight:
		return OrientFront
	case OrientFront:
		return OrientLeft
	case OrientLeft:
		return OrientBack
	case OrientBack:
		return OrientRight
	}
	return orientation
}
