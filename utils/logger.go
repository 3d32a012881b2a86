package utils

import (
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

func InitLogger(level string) {
	Log.SetFormatter(&logrus.JSONFormatter{})
	if lvl, err := logrus.ParseLevel(level); err == nil {
		Log.SetLevel(lvl)
	}
}
