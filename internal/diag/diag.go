// Package diag собирает отладочную сводку симулятора: счётчики мира,
// отрисовки и ресурсы процесса.
package diag

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/sublimegame/voxelworld/internal/vec"
)

// Probe снимает показатели текущего процесса
type Probe struct {
	StartTime time.Time
	proc      *process.Process
}

// NewProbe создаёт пробу для текущего процесса
func NewProbe() *Probe {
	p := &Probe{StartTime: time.Now()}
	if proc, err := process.NewProcess(int32(os.Getpid())); err == nil {
		p.proc = proc
	}
	return p
}

// Uptime возвращает время работы
func (p *Probe) Uptime() time.Duration {
	return time.Since(p.StartTime)
}

// FormatUptime форматирует длительность как "1д 2ч 3м 4с", опуская старшие нули
func FormatUptime(uptime time.Duration) string {
	days := int(uptime.Hours()) / 24
	hours := int(uptime.Hours()) % 24
	minutes := int(uptime.Minutes()) % 60
	seconds := int(uptime.Seconds()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dд %dч %dм %dс", days, hours, minutes, seconds)
	case hours > 0:
		return fmt.Sprintf("%dч %dм %dс", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dм %dс", minutes, seconds)
	}
	return fmt.Sprintf("%dс", seconds)
}

// RSS возвращает резидентную память процесса в байтах
func (p *Probe) RSS() (uint64, error) {
	if p.proc == nil {
		return 0, fmt.Errorf("процесс недоступен")
	}
	mem, err := p.proc.MemoryInfo()
	if err != nil {
		return 0, fmt.Errorf("память процесса: %w", err)
	}
	return mem.RSS, nil
}

// CPUPercent возвращает загрузку CPU процессом, при ошибке - системную
// с момента прошлого вызова. Не блокирует кадр.
func (p *Probe) CPUPercent() (float64, error) {
	if p.proc != nil {
		if v, err := p.proc.CPUPercent(); err == nil {
			return v, nil
		}
	}
	percents, err := cpu.Percent(0, false)
	if err != nil || len(percents) == 0 {
		return 0, err
	}
	return percents[0], nil
}

// Snapshot - отладочная сводка одного кадра
type Snapshot struct {
	RunID        string
	Seed         int64
	Ticks        uint64
	ChunkUpdates uint64
	SimTime      float64 // Симулированное время, сек
	Center       vec.Vec3
	Loaded       int
	Updating     int
	Drawn        int
	Vertices     int64
	RSS          uint64
	CPU          float64
	Uptime       time.Duration
}

// Fill дополняет сводку показателями процесса. Ошибки чтения оставляют нули.
func (p *Probe) Fill(s *Snapshot) {
	s.Uptime = p.Uptime()
	if rss, err := p.RSS(); err == nil {
		s.RSS = rss
	}
	if v, err := p.CPUPercent(); err == nil {
		s.CPU = v
	}
}

// Lines возвращает строки отладочной панели
func (s Snapshot) Lines() []string {
	return []string{
		fmt.Sprintf("запуск: %s", s.RunID),
		fmt.Sprintf("сид: %d", s.Seed),
		fmt.Sprintf("такты: %s", humanize.Comma(int64(s.Ticks))),
		fmt.Sprintf("обновлений чанков: %s", humanize.Comma(int64(s.ChunkUpdates))),
		fmt.Sprintf("время: %.2f с", s.SimTime),
		fmt.Sprintf("центр: %d %d %d", s.Center.X, s.Center.Y, s.Center.Z),
		fmt.Sprintf("чанки: нарисовано %d из %d, в очереди %d", s.Drawn, s.Loaded, s.Updating),
		fmt.Sprintf("вершины: %s", humanize.Comma(s.Vertices)),
		fmt.Sprintf("память: %s", humanize.IBytes(s.RSS)),
		fmt.Sprintf("cpu: %.1f%%", s.CPU),
		fmt.Sprintf("аптайм: %s", FormatUptime(s.Uptime)),
	}
}
