package vec

// Vec3 представляет трехмерный вектор с целочисленными координатами.
// Используется и для абсолютных координат блоков, и для координат чанков.
type Vec3 struct {
	X int
	Y int
	Z int
}

// New создает Vec3 из трех координат
func New(x, y, z int) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// ToChunkCoords преобразует абсолютные координаты блока в координаты чанка.
// Арифметический сдвиг на знаковом int дает деление с округлением вниз,
// поэтому -1 попадает в чанк -1, а не 0.
func (v Vec3) ToChunkCoords() Vec3 {
	return Vec3{X: v.X >> 4, Y: v.Y >> 4, Z: v.Z >> 4} // Деление на 16
}

// LocalInChunk возвращает локальные координаты внутри чанка в диапазоне [0,16)
func (v Vec3) LocalInChunk() Vec3 {
	return Vec3{X: v.X & 0xF, Y: v.Y & 0xF, Z: v.Z & 0xF} // Модуль 16
}

// ChunkOrigin возвращает абсолютные координаты угла чанка (v - координаты чанка)
func (v Vec3) ChunkOrigin() Vec3 {
	return Vec3{X: v.X << 4, Y: v.Y << 4, Z: v.Z << 4}
}

// WrapCoord приводит одну координату к локальной в [0,16)
func WrapCoord(c int) int {
	return c & 0xF
}

// ChunkCoord возвращает координату чанка для одной абсолютной координаты
func ChunkCoord(c int) int {
	return c >> 4
}

// Add складывает два вектора
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Offset возвращает вектор, сдвинутый на (dx, dy, dz)
func (v Vec3) Offset(dx, dy, dz int) Vec3 {
	return Vec3{X: v.X + dx, Y: v.Y + dy, Z: v.Z + dz}
}

// Less задает порядок X, затем Y, затем Z. Нужен для детерминированного обхода карт.
func (v Vec3) Less(other Vec3) bool {
	if v.X != other.X {
		return v.X < other.X
	}
	if v.Y != other.Y {
		return v.Y < other.Y
	}
	return v.Z < other.Z
}

// Compare возвращает -1, 0 или 1 в порядке Less
func Compare(a, b Vec3) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}
