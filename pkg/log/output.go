package log

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-trends-api/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// SetupOutput direciona os logs para stdout e, quando LOG_FILE estiver definido,
// também para um arquivo com rotação. O writer retornado deve ser fechado no shutdown.
func SetupOutput(cfg config.Log) (io.Closer, error) {
	if cfg.File == "" {
		logrus.SetOutput(os.Stdout)
		return io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, err
	}

	rotating := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	}

	logrus.SetOutput(io.MultiWriter(os.Stdout, rotating))

	return rotating, nil
}
