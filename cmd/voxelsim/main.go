package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/sublimegame/voxelworld/internal/config"
	"github.com/sublimegame/voxelworld/internal/engine"
	"github.com/sublimegame/voxelworld/internal/logging"
	"github.com/sublimegame/voxelworld/internal/metrics"
	"github.com/sublimegame/voxelworld/internal/observability"
	"github.com/sublimegame/voxelworld/internal/render"
	"github.com/sublimegame/voxelworld/internal/world"
	"github.com/sublimegame/voxelworld/internal/world/block"
	"github.com/sublimegame/voxelworld/internal/worldgen"
)

func main() {
	configPath := flag.String("config", "", "путь к YAML конфигурации (по умолчанию $VOXEL_CONFIG)")
	frames := flag.Int("frames", 0, "сколько кадров выполнить; 0 - до сигнала")
	fps := flag.Int("fps", 60, "кадров в секунду")
	debugEvery := flag.Int("debug-every", 300, "как часто печатать отладочную сводку, кадров")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}

	// До установки defer: log.Fatalf их не выполняет
	table, err := loadBlockTable(cfg.World.BlockCatalog)
	if err != nil {
		log.Fatalf("❌ Ошибка загрузки каталога блоков: %v", err)
	}

	logOpts, err := cfg.Logging.LoggingOptions()
	if err != nil {
		log.Fatalf("❌ Ошибка конфигурации логирования: %v", err)
	}
	logging.GetLoggerManager().SetOptions(logOpts)
	if err := logging.InitDefaultLogger("voxelsim", logOpts); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()
	defer logging.GetLoggerManager().CloseAll()

	runID := uuid.New().String()
	logging.Info("🧱 Запуск voxelsim, run=%s", runID)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// === ТЕЛЕМЕТРИЯ И МЕТРИКИ ===
	if cfg.Telemetry.Enabled {
		shutdown, err := observability.InitTelemetry(ctx, observability.Options{
			ServiceName: cfg.Telemetry.ServiceName,
			Endpoint:    cfg.Telemetry.Endpoint,
			RunID:       runID,
		})
		if err != nil {
			logging.Error("❌ Телеметрия недоступна: %v", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logging.Warn("Ошибка остановки телеметрии: %v", err)
				}
			}()
		}
	}

	var collector *metrics.Collector
	if addr := cfg.Metrics.GetMetricsAddr(); addr != "" {
		collector = metrics.NewCollector()
		srv := collector.StartHTTP(addr)
		defer srv.Close()
	}

	// === МИР ===
	if cfg.World.BlockCatalog != "" {
		logging.Info("Каталог блоков загружен из %s", cfg.World.BlockCatalog)
	}

	w := world.NewWorld(table)
	gen := worldgen.NewGenerator(cfg.World.Seed, cfg.World.Height)
	gen.Generate(w, cfg.World.Radius)

	surface, _ := gen.SurfaceAt(0, 0)
	cam := render.NewCamera(mgl32.Vec3{0.5, float32(surface) + 2.6, 0.5},
		cfg.Render.Fov, cfg.Render.Aspect, cfg.Render.Near, cfg.Render.Far)

	eng := engine.New(w, render.NewMemoryDevice(), cam, engine.Options{
		SimRadius: cfg.Simulation.SimRadius,
		Seed:      cfg.World.Seed,
		RunID:     runID,
		Updater: world.UpdaterOptions{
			Interval:   cfg.Simulation.TickInterval,
			LavaPeriod: cfg.Simulation.LavaPeriod,
		},
		Metrics: collector,
	})
	eng.Enter()

	// === ЦИКЛ КАДРОВ ===
	if *fps <= 0 {
		*fps = 60
	}
	frameTime := time.Second / time.Duration(*fps)
	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	last := time.Now()
	for frame := 1; *frames == 0 || frame <= *frames; frame++ {
		select {
		case <-ctx.Done():
			logging.Info("📡 Получен сигнал, завершение работы...")
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			eng.Frame(ctx, dt)
		}

		if *debugEvery > 0 && frame%*debugEvery == 0 {
			for _, line := range eng.DebugInfo().Lines() {
				logging.Debug("%s", line)
			}
		}
	}

	info := eng.DebugInfo()
	logging.Info("✅ Выполнено кадров: %d, тактов: %d, обновлений чанков: %d",
		*frames, info.Ticks, info.ChunkUpdates)
}

// loadBlockTable читает каталог блоков; пустой путь означает встроенную таблицу
func loadBlockTable(path string) (*block.Table, error) {
	if path == "" {
		return block.DefaultTable(), nil
	}
	return block.LoadCatalog(path)
}
