// Package engine связывает мир, клеточный автомат, освещение и таблицу
// мешей в покадровый цикл.
package engine

import (
	"context"
	"math"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/sublimegame/voxelworld/internal/diag"
	"github.com/sublimegame/voxelworld/internal/light"
	"github.com/sublimegame/voxelworld/internal/logging"
	"github.com/sublimegame/voxelworld/internal/metrics"
	"github.com/sublimegame/voxelworld/internal/observability"
	"github.com/sublimegame/voxelworld/internal/render"
	"github.com/sublimegame/voxelworld/internal/vec"
	"github.com/sublimegame/voxelworld/internal/world"
	"github.com/sublimegame/voxelworld/internal/world/block"
	"github.com/sublimegame/voxelworld/internal/world/support"
)

// Options - параметры движка
type Options struct {
	SimRadius int
	Seed      int64
	RunID     string
	Updater   world.UpdaterOptions
	Metrics   *metrics.Collector // nil - без метрик
}

// FrameResult - итог одного кадра
type FrameResult struct {
	Update   world.UpdateResult
	Remeshed int // Перестроено мешей
	Drawn    int // Нарисовано чанков
}

// Engine - покадровый цикл симуляции и отрисовки
type Engine struct {
	world   *world.World
	updater *world.BlockUpdater
	light   *light.Engine
	meshes  *render.ChunkTable
	camera  *render.Camera
	metrics *metrics.Collector
	probe   *diag.Probe
	tracer  trace.Tracer

	simRadius int
	seed      int64
	runID     string
	simTime   float64
	lastDrawn int

	log *logging.Logger
}

// New создаёт движок для уже заполненного мира
func New(w *world.World, device render.Device, camera *render.Camera, opts Options) *Engine {
	lightEngine := light.NewEngine()
	return &Engine{
		world:     w,
		updater:   world.NewBlockUpdater(support.DefaultProvider(), lightEngine, opts.Updater),
		light:     lightEngine,
		meshes:    render.NewChunkTable(device),
		camera:    camera,
		metrics:   opts.Metrics,
		probe:     diag.NewProbe(),
		tracer:    observability.Tracer(),
		simRadius: opts.SimRadius,
		seed:      opts.Seed,
		runID:     opts.RunID,
		log:       logging.GetEngineLogger(),
	}
}

// World возвращает мир
func (e *Engine) World() *world.World { return e.world }

// Meshes возвращает таблицу мешей
func (e *Engine) Meshes() *render.ChunkTable { return e.meshes }

// Camera возвращает камеру
func (e *Engine) Camera() *render.Camera { return e.camera }

// Enter выполняет вход в мир: все чанки в очередь, источники света,
// меши и куб симуляции вокруг камеры
func (e *Engine) Enter() {
	e.world.UpdateAllChunks()
	e.light.Scan(e.world)
	e.meshes.Build(e.world)
	e.world.SetCenter(e.cameraChunk())
	e.world.UpdateSimRange(e.simRadius)
	e.log.Info("Вход в мир: чанков %d, слотов %d, центр %v, радиус %d",
		e.world.ChunkCount(), e.meshes.Len(), e.world.Center(), e.simRadius)
}

// cameraChunk возвращает чанк, в котором стоит камера
func (e *Engine) cameraChunk() vec.Vec3 {
	p := e.camera.Position
	toChunk := func(v float32) int {
		return int(math.Floor(float64(v))) >> 4
	}
	return vec.New(toChunk(p.X()), toChunk(p.Y()), toChunk(p.Z()))
}

// SetCenter переносит фокус и пересчитывает куб симуляции, если чанк сменился
func (e *Engine) SetCenter(c vec.Vec3) bool {
	if c == e.world.Center() {
		return false
	}
	e.world.SetCenter(c)
	e.world.UpdateSimRange(e.simRadius)
	return true
}

// FollowCamera ставит фокус в чанк камеры
func (e *Engine) FollowCamera() bool {
	return e.SetCenter(e.cameraChunk())
}

// Frame продвигает симуляцию на dt секунд, перестраивает изменившиеся
// меши и рисует кадр
func (e *Engine) Frame(ctx context.Context, dt float64) FrameResult {
	var res FrameResult
	e.simTime += dt
	e.FollowCamera()

	start := time.Now()
	_, span := e.tracer.Start(ctx, "world.tick")
	res.Update = e.updater.Update(e.world, dt)
	if res.Update.Ticked {
		res.Remeshed = e.meshes.RefreshAll(e.world, res.Update.Remesh)
	}
	span.SetAttributes(
		attribute.Bool("tick.ran", res.Update.Ticked),
		attribute.Int64("tick.number", int64(res.Update.Tick)),
		attribute.Int("tick.committed", res.Update.Committed),
		attribute.Int("tick.remeshed", res.Remeshed),
	)
	span.End()
	if e.metrics != nil {
		e.metrics.ObserveTick(res.Update, res.Remeshed, time.Since(start))
	}

	_, drawSpan := e.tracer.Start(ctx, "render.draw")
	res.Drawn = e.meshes.Draw(e.camera)
	drawSpan.SetAttributes(attribute.Int("chunks.drawn", res.Drawn))
	drawSpan.End()
	e.lastDrawn = res.Drawn

	if e.metrics != nil {
		e.metrics.ObserveFrame(res.Drawn, e.world.ChunkCount(), e.meshes.TotalVertices())
	}
	return res
}

// PlaceBlock ставит блок в обход такта и сразу перестраивает затронутые меши.
// Возвращает false, если чанк не загружен.
func (e *Engine) PlaceBlock(x, y, z int, b block.Block) bool {
	if !e.world.SetBlock(x, y, z, b) {
		return false
	}
	pos := vec.New(x, y, z)
	e.meshes.RefreshWithNeighbors(e.world, x, y, z)
	e.meshes.RefreshAll(e.world, e.light.UpdateBlockLight(e.world, []vec.Vec3{pos}))
	e.log.Debug("Блок %s поставлен в %v", e.world.Table().Name(b.ID), pos)
	return true
}

// DebugInfo собирает отладочную сводку
func (e *Engine) DebugInfo() diag.Snapshot {
	s := diag.Snapshot{
		RunID:        e.runID,
		Seed:         e.seed,
		Ticks:        e.world.Ticks(),
		ChunkUpdates: e.world.ChunkUpdates(),
		SimTime:      e.simTime,
		Center:       e.world.Center(),
		Loaded:       e.world.ChunkCount(),
		Updating:     len(e.world.Updating()),
		Drawn:        e.lastDrawn,
		Vertices:     e.meshes.TotalVertices(),
	}
	e.probe.Fill(&s)
	return s
}
