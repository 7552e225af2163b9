package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log — общий логгер процесса. До Init работает с настройками logrus по умолчанию.
var Log = logrus.New()

// Init настраивает Log из окружения:
//
//	LOG_LEVEL  — уровень logrus, по умолчанию info;
//	LOG_FORMAT — json или text;
//	LOG_FILE   — дописывать в файл вместо stderr.
//
// Stdout остается за выводом симулятора.
func Init() {
	Log = logrus.New()
	Log.SetLevel(levelFromEnv())

	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   os.Getenv("LOG_FILE") == "",
		})
	}

	Log.SetOutput(outputFromEnv())
}

func levelFromEnv() logrus.Level {
	name, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		return logrus.InfoLevel
	}
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func outputFromEnv() io.Writer {
	path := os.Getenv("LOG_FILE")
	if path == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logrus.WithError(err).WithField("path", path).Warn("log file unavailable, using stderr")
		return os.Stderr
	}
	return f
}

// For возвращает логгер подсистемы с полем component.
func For(component string) *logrus.Entry {
	return Log.WithField("component", component)
}
