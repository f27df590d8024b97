package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sublimegame/voxelworld/internal/logging"
	"github.com/sublimegame/voxelworld/internal/world"
)

const namespace = "voxel"

// Collector - метрики симуляции и отрисовки в собственном реестре
type Collector struct {
	registry *prometheus.Registry

	ticks        prometheus.Counter
	tickDuration prometheus.Histogram
	committed    prometheus.Counter
	pending      prometheus.Counter
	remeshed     prometheus.Counter
	scanned      prometheus.Counter
	drawn        prometheus.Gauge
	loaded       prometheus.Gauge
	vertices     prometheus.Gauge
}

// NewCollector создаёт и регистрирует метрики
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Выполнено тактов клеточного автомата.",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tick_duration_seconds",
			Help:      "Длительность такта вместе с перестроением мешей.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
		committed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blocks_committed_total",
			Help:      "Применённых изменений клеток.",
		}),
		pending: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lava_pending_total",
			Help:      "Клеток лавы, отложенных до своего такта.",
		}),
		remeshed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chunks_remeshed_total",
			Help:      "Перестроенных мешей чанков.",
		}),
		scanned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chunks_scanned_total",
			Help:      "Просканированных за такты чанков.",
		}),
		drawn: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "chunks_drawn",
			Help:      "Чанков, нарисованных в последнем кадре.",
		}),
		loaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "chunks_loaded",
			Help:      "Загруженных чанков.",
		}),
		vertices: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "mesh_vertices",
			Help:      "Вершин во всех мешах.",
		}),
	}

	c.registry.MustRegister(c.ticks, c.tickDuration, c.committed, c.pending,
		c.remeshed, c.scanned, c.drawn, c.loaded, c.vertices)
	return c
}

// Registry возвращает реестр метрик
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// ObserveTick учитывает такт. Вызовы без такта игнорируются.
func (c *Collector) ObserveTick(res world.UpdateResult, remeshed int, d time.Duration) {
	if !res.Ticked {
		return
	}
	c.ticks.Inc()
	c.tickDuration.Observe(d.Seconds())
	c.committed.Add(float64(res.Committed))
	c.pending.Add(float64(res.Pending))
	c.scanned.Add(float64(res.ScannedChunks))
	c.remeshed.Add(float64(remeshed))
}

// ObserveFrame обновляет показатели кадра
func (c *Collector) ObserveFrame(drawn, loaded int, vertices int64) {
	c.drawn.Set(float64(drawn))
	c.loaded.Set(float64(loaded))
	c.vertices.Set(float64(vertices))
}

// Handler возвращает HTTP-обработчик /metrics
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// StartHTTP запускает эндпоинт /metrics на addr (например, ":2112").
// Метод неблокирующий: сервер работает в отдельной горутине.
func (c *Collector) StartHTTP(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		logging.Info("📈 Prometheus /metrics доступен по адресу %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Error("Ошибка Prometheus HTTP сервера: %v", err)
		}
	}()
	return srv
}
