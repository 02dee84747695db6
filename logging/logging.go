package logging

import (
	"log"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger
	once   sync.Once
)

// Init builds the process-wide logger. Production config when
// APP_ENV=production, colored development config otherwise.
func Init() *zap.Logger {
	once.Do(func() {
		var cfg zap.Config
		if os.Getenv("APP_ENV") == "production" {
			cfg = zap.NewProductionConfig()
			cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		} else {
			cfg = zap.NewDevelopmentConfig()
			cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
			cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}

		var err error
		logger, err = cfg.Build()
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
	})
	return logger
}

// L returns the global logger, initializing it on first use.
func L() *zap.Logger {
	if logger == nil {
		return Init()
	}
	return logger
}
