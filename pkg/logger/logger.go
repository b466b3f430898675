package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log - глобальный логгер сервера.
// До вызова Init пишет в stderr с настройками logrus по умолчанию, так что пакеты
// можно использовать и из тестов без подготовки.
var Log = logrus.New()

// Init настраивает глобальный логгер из окружения.
// Вызывается один раз при старте в main.go (и в TestMain).
func Init() {
	InitWithOutput(os.Stdout)
}

// InitWithOutput - то же самое, но с явным приемником (тесты, файл лога)
func InitWithOutput(out io.Writer) {
	Log = logrus.New()

	// 1. Уровень из LOG_LEVEL, по умолчанию info
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// 2. Форматтер: json для сбора логов, text для разработки
	logFormat := strings.ToLower(os.Getenv("LOG_FORMAT"))
	if logFormat == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	Log.SetOutput(out)
}

// Component возвращает запись с заполненным полем component
func Component(name string) *logrus.Entry {
	return Log.WithField("component", name)
}
