package world

import (
	"github.com/sublimegame/voxelworld/internal/vec"
	"github.com/sublimegame/voxelworld/internal/world/block"
)

// Значения по умолчанию для прохода обновления
const (
	DefaultUpdateInterval = 0.2 // сек
	DefaultLavaPeriod     = 5   // тактов
)

// ValidityFunc отвечает, стоит ли ещё блок в (x, y, z) на допустимом месте
type ValidityFunc func(w *World, x, y, z int) bool

// ValidityProvider выдаёт проверку опоры для id. nil означает "не проверяется".
type ValidityProvider interface {
	CheckFn(id block.BlockID) ValidityFunc
}

// LightEngine пересчитывает освещение после изменения клеток и
// возвращает чанки, чей вид из-за этого поменялся
type LightEngine interface {
	UpdateBlockLight(w *World, changed []vec.Vec3) []vec.Vec3
}

// UpdaterOptions - настройки прохода обновления
type UpdaterOptions struct {
	Interval   float64 // Период тактов, сек
	LavaPeriod uint64  // Лава сливает свои предложения раз в столько тактов
}

// DefaultUpdaterOptions возвращает настройки по умолчанию
func DefaultUpdaterOptions() UpdaterOptions {
	return UpdaterOptions{
		Interval:   DefaultUpdateInterval,
		LavaPeriod: DefaultLavaPeriod,
	}
}

// UpdateResult - итог одного вызова Update
type UpdateResult struct {
	Ticked        bool       // Был ли такт
	Tick          uint64     // Номер такта
	ScannedChunks int        // Просканировано чанков
	Proposals     int        // Размер карты предложений
	Committed     int        // Применено изменений
	Pending       int        // Отложенных клеток лавы
	Remesh        []vec.Vec3 // Чанки для перестроения мешей, упорядочены
}

// BlockUpdater - клеточный автомат мира. Каждый такт читает замороженное
// состояние, строит карту предложений и применяет её целиком.
type BlockUpdater struct {
	validity ValidityProvider
	light    LightEngine
	opts     UpdaterOptions
}

// NewBlockUpdater создаёт автомат. validity и light могут быть nil.
func NewBlockUpdater(validity ValidityProvider, light LightEngine, opts UpdaterOptions) *BlockUpdater {
	if opts.Interval <= 0 {
		opts.Interval = DefaultUpdateInterval
	}
	if opts.LavaPeriod == 0 {
		opts.LavaPeriod = DefaultLavaPeriod
	}
	return &BlockUpdater{validity: validity, light: light, opts: opts}
}

// Options возвращает действующие настройки
func (u *BlockUpdater) Options() UpdaterOptions {
	return u.opts
}

// Update накапливает dt и, если интервал превышен, выполняет такт
func (u *BlockUpdater) Update(w *World, dt float64) UpdateResult {
	w.blockUpdateTimer += dt
	if w.blockUpdateTimer <= u.opts.Interval {
		return UpdateResult{Tick: w.ticks}
	}

	w.ticks++
	w.blockUpdateTimer = 0
	res := UpdateResult{Ticked: true, Tick: w.ticks}

	// Фаза 1: сканирование по неизменному миру
	out := make(proposals)
	for _, c := range w.updating.Sorted() {
		if !inCube(c, w.center, w.simRadius) {
			continue
		}
		if u.scanChunk(w, c, out) {
			res.ScannedChunks++
		}
	}
	clear(w.updating)
	res.Proposals = len(out)

	// Фаза 2: применение
	remesh := make(ChunkSet)
	var changed []vec.Vec3
	for _, pos := range out.sortedKeys() {
		pr := out[pos]
		if pr.pending && pr.b.IsFluid(w.table) {
			w.schedule(pos)
			res.Pending++
			continue
		}
		if w.GetBlockAt(pos) == pr.b {
			continue
		}
		if !w.SetBlockAt(pos, pr.b) {
			continue
		}
		addAffectedChunks(pos, remesh)
		changed = append(changed, pos)
	}
	res.Committed = len(changed)

	if u.light != nil && len(changed) > 0 {
		for _, c := range u.light.UpdateBlockLight(w, changed) {
			remesh.Add(c)
		}
	}

	res.Remesh = remesh.Sorted()
	w.chunkUpdates += uint64(len(res.Remesh))

	w.log.Debug("Такт %d: чанков %d, предложений %d, применено %d, отложено %d, перестроить %d",
		res.Tick, res.ScannedChunks, res.Proposals, res.Committed, res.Pending, len(res.Remesh))
	return res
}

// scanChunk применяет правила ко всем клеткам чанка. Незагруженные и пустые чанки пропускаются.
func (u *BlockUpdater) scanChunk(w *World, coords vec.Vec3, out proposals) bool {
	c, ok := w.chunks[coords]
	if !ok || c.IsEmpty() {
		return false
	}

	origin := c.Origin()
	for x := 0; x < ChunkSize; x++ {
		for y := 0; y < ChunkSize; y++ {
			for z := 0; z < ChunkSize; z++ {
				b := c.GetBlock(x, y, z)
				if b.IsEmpty() || b.Shape() != block.ShapeFull {
					continue
				}
				u.applyRule(w, origin.Offset(x, y, z), b.ID, out)
			}
		}
	}
	return true
}

// applyRule выбирает правило по материалу
func (u *BlockUpdater) applyRule(w *World, pos vec.Vec3, id block.BlockID, out proposals) {
	switch {
	case id == block.WaterBlockID:
		updateWater(w, pos, out)
	case id == block.LavaBlockID:
		u.updateLava(w, pos, out)
	case id == block.FarmlandBlockID || id == block.FarmlandWetBlockID:
		updateFarmland(w, pos, out)
	case id == block.FenceBlockID:
		updateFence(w, pos, out)
	case isCheckedDecoration(id):
		u.updateDecoration(w, pos, id, out)
	}
}
