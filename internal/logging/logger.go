package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// LogLevel определяет уровни логирования
type LogLevel int

const (
	TRACE LogLevel = iota
	DEBUG
	INFO
	WARN
	ERROR
)

// String возвращает строковое представление уровня логирования
func (l LogLevel) String() string {
	switch l {
	case TRACE:
		return "TRACE"
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger пишет в консоль и, если открыт файл, в файл.
// В файл уходят все уровни от minFileLevel, в консоль - от minConsoleLevel.
type Logger struct {
	component       string
	consoleLogger   *log.Logger
	fileLogger      *log.Logger
	file            *os.File
	minConsoleLevel LogLevel
	minFileLevel    LogLevel
}

// Глобальный экземпляр логгера. До InitLogger пишет только в консоль.
var globalLogger = NewConsoleLogger("", os.Stdout)

// NewConsoleLogger создаёт логгер без файла
func NewConsoleLogger(component string, w io.Writer) *Logger {
	return &Logger{
		component:       component,
		consoleLogger:   log.New(w, "", log.LstdFlags),
		minConsoleLevel: INFO,
		minFileLevel:    TRACE,
	}
}

// NewLogger создаёт логгер компонента с файлом в директории dir
func NewLogger(dir, component string) (*Logger, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("ошибка создания директории %s: %w", dir, err)
	}

	// Создаем файл для логов с временной меткой
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	name := component
	if name == "" {
		name = "vec2d"
	}
	filename := filepath.Join(dir, fmt.Sprintf("%s_%s.log", name, timestamp))

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания файла логов: %w", err)
	}

	logger := NewConsoleLogger(component, os.Stdout)
	logger.fileLogger = log.New(file, "", log.LstdFlags)
	logger.file = file
	return logger, nil
}

// InitLogger подключает файл логов к глобальному логгеру
func InitLogger(dir string) error {
	logger, err := NewLogger(dir, "")
	if err != nil {
		return err
	}
	globalLogger = logger
	return nil
}

// CloseLogger закрывает систему логирования
func CloseLogger() {
	if err := globalLogger.Close(); err != nil {
		log.Printf("ошибка закрытия файла логов: %v", err)
	}
	globalLogger = NewConsoleLogger("", os.Stdout)
}

// SetConsoleOutput перенаправляет консольный вывод глобального логгера
func SetConsoleOutput(w io.Writer) {
	globalLogger.consoleLogger.SetOutput(w)
}

// SetLevels задаёт минимальные уровни глобального логгера
func SetLevels(consoleLevel, fileLevel LogLevel) {
	globalLogger.SetLevels(consoleLevel, fileLevel)
}

// SetLevels задаёт минимальные уровни для консоли и файла
func (l *Logger) SetLevels(consoleLevel, fileLevel LogLevel) {
	l.minConsoleLevel = consoleLevel
	l.minFileLevel = fileLevel
}

// Close закрывает файл логгера, если он был открыт
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	l.fileLogger = nil
	return err
}

func (l *Logger) Trace(format string, args ...interface{}) { l.log(TRACE, format, args...) }
func (l *Logger) Debug(format string, args ...interface{}) { l.log(DEBUG, format, args...) }
func (l *Logger) Info(format string, args ...interface{})  { l.log(INFO, format, args...) }
func (l *Logger) Warn(format string, args ...interface{})  { l.log(WARN, format, args...) }
func (l *Logger) Error(format string, args ...interface{}) { l.log(ERROR, format, args...) }

func (l *Logger) log(level LogLevel, format string, args ...interface{}) {
	text := fmt.Sprintf(format, args...)
	message := fmt.Sprintf("[%s] %s", level.String(), text)
	if l.component != "" {
		message = fmt.Sprintf("[%s] [%s] %s", level.String(), l.component, text)
	}

	if l.fileLogger != nil && level >= l.minFileLevel {
		l.fileLogger.Println(message)
	}

	if level >= l.minConsoleLevel {
		l.consoleLogger.Println(message)
	}
}

// LogTrace логирует сообщение уровня TRACE
func LogTrace(format string, args ...interface{}) {
	globalLogger.log(TRACE, format, args...)
}

// LogDebug логирует сообщение уровня DEBUG
func LogDebug(format string, args ...interface{}) {
	globalLogger.log(DEBUG, format, args...)
}

// LogInfo логирует сообщение уровня INFO
func LogInfo(format string, args ...interface{}) {
	globalLogger.log(INFO, format, args...)
}

// LogWarn логирует сообщение уровня WARN
func LogWarn(format string, args ...interface{}) {
	globalLogger.log(WARN, format, args...)
}

// LogError логирует сообщение уровня ERROR
func LogError(format string, args ...interface{}) {
	globalLogger.log(ERROR, format, args...)
}

// LogVectorStep логирует шаг движения вектора в логгер компонента
func LogVectorStep(l *Logger, step int, fromX, fromY, toX, toY, angle float64) {
	l.Trace("Step %d: (%.3f,%.3f) -> (%.3f,%.3f) angle:%.2f",
		step, fromX, fromY, toX, toY, angle)
}
