package logging

import (
	"fmt"
	"os"
	"sort"
	"sync"
)

// LoggerManager выдаёт по одному логгеру на компонент ("world", "render", "engine")
type LoggerManager struct {
	mu      sync.Mutex
	loggers map[string]*Logger
	opts    Options
}

var (
	globalManager *LoggerManager
	managerOnce   sync.Once
)

func newManager(opts Options) *LoggerManager {
	return &LoggerManager{loggers: make(map[string]*Logger), opts: opts}
}

// GetLoggerManager возвращает глобальный менеджер
func GetLoggerManager() *LoggerManager {
	managerOnce.Do(func() {
		globalManager = newManager(DefaultOptions())
	})
	return globalManager
}

// SetOptions меняет настройки новых логгеров и пороги уже созданных.
// Каталог файлов у созданных логгеров не меняется.
func (lm *LoggerManager) SetOptions(opts Options) {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	lm.opts = opts
	for _, l := range lm.loggers {
		l.setLevels(opts.ConsoleLevel, opts.FileLevel)
	}
}

// GetLogger возвращает логгер компонента, создавая его при первом обращении
func (lm *LoggerManager) GetLogger(component string) (*Logger, error) {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	if l, ok := lm.loggers[component]; ok {
		return l, nil
	}
	l, err := NewLogger(component, lm.opts)
	if err != nil {
		return nil, fmt.Errorf("логгер компонента %s: %w", component, err)
	}
	lm.loggers[component] = l
	return l, nil
}

// MustGetLogger никогда не падает: при ошибке отдаёт консольный логгер в stderr
func (lm *LoggerManager) MustGetLogger(component string) *Logger {
	l, err := lm.GetLogger(component)
	if err != nil {
		return newWriterLogger(component, os.Stderr, INFO)
	}
	return l
}

// CloseAll закрывает файлы всех логгеров и забывает их
func (lm *LoggerManager) CloseAll() error {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	var firstErr error
	for component, l := range lm.loggers {
		if err := l.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("закрытие логгера %s: %w", component, err)
		}
	}
	clear(lm.loggers)
	return firstErr
}

// ListComponents возвращает имена компонентов по алфавиту
func (lm *LoggerManager) ListComponents() []string {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	names := make([]string, 0, len(lm.loggers))
	for name := range lm.loggers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetLogLevel меняет пороги одного компонента
func (lm *LoggerManager) SetLogLevel(component string, consoleLevel, fileLevel LogLevel) error {
	lm.mu.Lock()
	l, ok := lm.loggers[component]
	lm.mu.Unlock()
	if !ok {
		return fmt.Errorf("логгер компонента %s не создан", component)
	}
	l.setLevels(consoleLevel, fileLevel)
	return nil
}

func GetComponentLogger(component string) *Logger {
	return GetLoggerManager().MustGetLogger(component)
}

func GetWorldLogger() *Logger  { return GetComponentLogger("world") }
func GetRenderLogger() *Logger { return GetComponentLogger("render") }
func GetEngineLogger() *Logger { return GetComponentLogger("engine") }
