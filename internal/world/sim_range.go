package world

import "github.com/sublimegame/voxelworld/internal/vec"

// inCube проверяет, лежит ли c в кубе center ± radius
func inCube(c, center vec.Vec3, radius int) bool {
	return c.X >= center.X-radius && c.X <= center.X+radius &&
		c.Y >= center.Y-radius && c.Y <= center.Y+radius &&
		c.Z >= center.Z-radius && c.Z <= center.Z+radius
}

// UpdateSimRange пересчитывает куб чанков в радиусе radius от центра.
// Координаты, впервые вошедшие в куб, планируются в updating;
// уже активные чанки повторно не планируются.
func (w *World) UpdateSimRange(radius int) {
	if radius < 0 {
		radius = 0
	}
	w.simRadius = radius

	side := 2*radius + 1
	updateRange := make(ChunkSet, side*side*side)
	entered := 0
	for x := w.center.X - radius; x <= w.center.X+radius; x++ {
		for y := w.center.Y - radius; y <= w.center.Y+radius; y++ {
			for z := w.center.Z - radius; z <= w.center.Z+radius; z++ {
				c := vec.Vec3{X: x, Y: y, Z: z}
				updateRange.Add(c)
				if !w.inUpdateRange.Has(c) {
					w.updating.Add(c)
					entered++
				}
			}
		}
	}

	// Запланированные ранее чанки вне нового куба не сканируются
	for c := range w.updating {
		if !updateRange.Has(c) {
			delete(w.updating, c)
		}
	}

	w.inUpdateRange = updateRange
	w.log.Debug("Куб симуляции: центр %v, радиус %d, новых чанков %d", w.center, radius, entered)
}

// UpdateAllChunks ставит все загруженные чанки и в updating, и в активный куб.
// Вызывается один раз при входе в мир.
func (w *World) UpdateAllChunks() {
	for c := range w.chunks {
		w.updating.Add(c)
		w.inUpdateRange.Add(c)
	}
	w.log.Debug("Все чанки запланированы на обновление: %d", len(w.chunks))
}
