package logger

import (
	"io"
	"os"
	"time"

	"github.com/natefinch/lumberjack"
	"github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"

	"train_routes/internal/config"
)

// New builds the application logger writing to a rotating file. The logger
// is handed to each component instead of configuring the logrus globals.
func New(cfg *config.Config) (*logrus.Logger, error) {
	// 1) Lumberjack for file rotation
	rotator := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    10, // megabytes
		MaxBackups: 7,  // keep up to 7 old files
		MaxAge:     7,  // days
		Compress:   true,
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	// 2) Configure Logrus to write to that file
	var out io.Writer = rotator
	if cfg.LogStderr {
		out = io.MultiWriter(rotator, os.Stderr)
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	log.SetLevel(level)

	return log, nil
}

// GormLogger routes gorm's statement logging through the given logrus logger.
func GormLogger(log *logrus.Logger) gormlogger.Interface {
	level := gormlogger.Warn
	if log.IsLevelEnabled(logrus.DebugLevel) {
		level = gormlogger.Info
	}

	return gormlogger.New(log, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
