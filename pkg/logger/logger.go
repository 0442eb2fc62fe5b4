package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего ядра.
var Log = logrus.New()

// Options описывает настройки логгера.
type Options struct {
	Level  string // "debug", "info", "warn"...
	Format string // "json" или "text"
	Output io.Writer
}

// Init инициализирует глобальный логгер.
// Вызывается один раз при старте приложения в main.go (и в TestMain пакетов).
func Init(opts ...Options) {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}

	Log = logrus.New()

	// 1. Уровень. По умолчанию - "info"; если не задан явно, смотрим LOG_LEVEL.
	logLevel := o.Level
	if logLevel == "" {
		logLevel = os.Getenv("LOG_LEVEL")
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// 2. Форматтер.
	// "json" - для продакшена и сбора логов.
	// "text" - для удобной разработки.
	logFormat := o.Format
	if logFormat == "" {
		logFormat = os.Getenv("LOG_FORMAT")
	}
	if strings.ToLower(logFormat) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	// 3. Куда писать.
	if o.Output != nil {
		Log.SetOutput(o.Output)
	} else {
		Log.SetOutput(os.Stdout)
	}
}

// For возвращает логгер с полем component.
func For(component string) *logrus.Entry {
	return Log.WithField("component", component)
}
