package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sublimegame/voxelworld/internal/logging"
)

// Config корневая структура конфигурации симулятора
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	World      WorldConfig      `yaml:"world"`
	Render     RenderConfig     `yaml:"render"`
	Logging    LoggingConfig    `yaml:"logging"`
	Metrics    MetricsConfig    `yaml:"metrics"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
}

type SimulationConfig struct {
	TickInterval float64 `yaml:"tick_interval"` // сек
	SimRadius    int     `yaml:"sim_radius"`    // чанков
	LavaPeriod   uint64  `yaml:"lava_period"`   // тактов
}

type WorldConfig struct {
	Seed         int64  `yaml:"seed"`
	Radius       int    `yaml:"radius"` // Радиус генерации вокруг начала, чанков
	Height       int    `yaml:"height"` // Слоёв чанков по вертикали
	BlockCatalog string `yaml:"block_catalog"`
}

type RenderConfig struct {
	Fov    float32 `yaml:"fov"`
	Aspect float32 `yaml:"aspect"`
	Near   float32 `yaml:"near"`
	Far    float32 `yaml:"far"`
}

type LoggingConfig struct {
	Dir          string `yaml:"dir"`
	ConsoleLevel string `yaml:"console_level"`
	FileLevel    string `yaml:"file_level"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

type TelemetryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	ServiceName string `yaml:"service_name"`
	Endpoint    string `yaml:"endpoint"`
}

// Defaults возвращает полностью заполненную конфигурацию по умолчанию
func Defaults() *Config {
	return &Config{
		Simulation: SimulationConfig{
			TickInterval: 0.2,
			SimRadius:    4,
			LavaPeriod:   5,
		},
		World: WorldConfig{
			Seed:   1,
			Radius: 3,
			Height: 2,
		},
		Render: RenderConfig{
			Fov:    70,
			Aspect: 16.0 / 9.0,
			Near:   0.1,
			Far:    1000,
		},
		Logging: LoggingConfig{
			ConsoleLevel: "INFO",
			FileLevel:    "DEBUG",
		},
		Telemetry: TelemetryConfig{
			ServiceName: "voxelsim",
			Endpoint:    "localhost:4318",
		},
	}
}

// GetMetricsAddr возвращает адрес метрик с приоритетом: config -> env -> пусто
func (m *MetricsConfig) GetMetricsAddr() string {
	if m.Addr != "" {
		return m.Addr
	}
	return os.Getenv("VOXEL_METRICS_ADDR")
}

// LoggingOptions переводит секцию logging в опции логгера
func (l *LoggingConfig) LoggingOptions() (logging.Options, error) {
	opts := logging.DefaultOptions()
	opts.Dir = l.Dir

	if l.ConsoleLevel != "" {
		lvl, err := logging.ParseLevel(l.ConsoleLevel)
		if err != nil {
			return opts, fmt.Errorf("logging.console_level: %w", err)
		}
		opts.ConsoleLevel = lvl
	}
	if l.FileLevel != "" {
		lvl, err := logging.ParseLevel(l.FileLevel)
		if err != nil {
			return opts, fmt.Errorf("logging.file_level: %w", err)
		}
		opts.FileLevel = lvl
	}
	return opts, nil
}

// Validate проверяет значения, которые нельзя исправить молча
func (c *Config) Validate() error {
	var problems []string
	if c.Simulation.TickInterval <= 0 {
		problems = append(problems, "simulation.tick_interval должен быть больше 0")
	}
	if c.Simulation.SimRadius < 0 {
		problems = append(problems, "simulation.sim_radius не может быть отрицательным")
	}
	if c.Simulation.LavaPeriod == 0 {
		problems = append(problems, "simulation.lava_period должен быть больше 0")
	}
	if c.World.Radius < 0 || c.World.Height < 1 {
		problems = append(problems, "world.radius >= 0 и world.height >= 1")
	}
	if c.Render.Near <= 0 || c.Render.Far <= c.Render.Near {
		problems = append(problems, "render: требуется 0 < near < far")
	}
	if len(problems) > 0 {
		return fmt.Errorf("некорректная конфигурация: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Load читает YAML файл конфигурации поверх значений по умолчанию.
// Если path == "", берётся ENV VOXEL_CONFIG; если пусто и там, возвращаются дефолты.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		path = os.Getenv("VOXEL_CONFIG")
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("чтение конфигурации %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("разбор конфигурации %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
