package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Init configures the global logrus logger: JSON output at the given level,
// written to stdout and, when file is non-empty, to a size-rotated log file.
func Init(level, file string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.JSONFormatter{})

	writers := []io.Writer{os.Stdout}
	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			logrus.WithError(err).Warn("cannot create log directory")
		} else {
			writers = append(writers, &lumberjack.Logger{
				Filename:   file,
				MaxSize:    50, // MB
				MaxAge:     30, // days
				MaxBackups: 5,
				Compress:   true,
			})
		}
	}
	logrus.SetOutput(io.MultiWriter(writers...))
}
