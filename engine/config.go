package engine

import (
	"log/slog"
	"os"
	"time"

	"github.com/mosburgers/poscore/receipt"
	"github.com/mosburgers/poscore/snapshot"
	"github.com/mosburgers/poscore/telemetry"
)

// Environment variables understood by ConfigFromEnv.
const (
	EnvDataFile   = "POSCORE_DATA_FILE"
	EnvReceiptDir = "POSCORE_RECEIPT_DIR"
)

// Config wires the engine's collaborators. Snapshots, Receipts and
// Metrics may be nil: persistence, receipt publication and
// instrumentation are then skipped.
type Config struct {
	Snapshots         snapshot.Store
	Receipts          receipt.Sink
	Logger            *slog.Logger
	Metrics           *telemetry.Metrics
	LowStockThreshold int
	Clock             func() time.Time
}

// ConfigFromEnv builds a config backed by a bbolt snapshot file and a
// filesystem receipt sink, with paths taken from the environment.
func ConfigFromEnv(logger *slog.Logger) (Config, error) {
	store, err := snapshot.OpenBolt(getEnv(EnvDataFile, "poscore.db"))
	if err != nil {
		return Config{}, err
	}

	sink, err := receipt.NewFileSink(getEnv(EnvReceiptDir, "receipts"))
	if err != nil {
		_ = store.Close()
		return Config{}, err
	}

	return Config{
		Snapshots: store,
		Receipts:  sink,
		Logger:    logger,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
