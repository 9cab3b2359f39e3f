package logger

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ordersys/order-backend/config"
)

// Initialize builds the global zap logger from the configured level.
func Initialize(cfg config.Config) error {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("error while setting atomic level to zap logger")
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = level

	log, err := zapConfig.Build()
	if err != nil {
		return fmt.Errorf("error while building zap logger")
	}

	zap.ReplaceGlobals(log)

	return nil
}
