package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log общий логгер приложения
var Log = logrus.New()

func Init(env string) {
	Log.SetOutput(os.Stdout)
	Log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05Z07:00",
	})

	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		Log.SetLevel(logrus.DebugLevel)
	case "warn":
		Log.SetLevel(logrus.WarnLevel)
	case "error":
		Log.SetLevel(logrus.ErrorLevel)
	default:
		Log.SetLevel(logrus.InfoLevel)
	}

	//в разработке json мешает читать логи
	if env != "production" {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
