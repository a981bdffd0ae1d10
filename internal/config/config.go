package config

import (
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds process-wide defaults that are cheap to override via .env
// or environment variables without touching CLI invocations — paths,
// pool sizing, logging. Per-run parameters (year, competition, iteration
// count) are CLI arguments, not config, and are parsed by cmd/simulate
// and cmd/debug directly.
type Config struct {
	// Data roots
	DataRoot    string // data/<year>/<comp>/teams.csv lives under here
	ResultsRoot string // default output CSV directory
	FailuresRoot string // per-iteration failure fixture dumps

	// Worker pools
	OuterPoolSize int // concurrent draws in simulation mode; 0 = GOMAXPROCS
	InnerPoolMult int // inner (DFS worker) pool size = InnerPoolMult * OuterPoolSize

	// Checkpointing
	CheckpointPath string // optional SQLite path; "" disables checkpointing
	CheckpointEverySec int

	// Telemetry
	LogLevel string
}

func Load() *Config {
	_ = godotenv.Load()

	outer := envInt("OUTER_POOL_SIZE", 0)
	if outer <= 0 {
		outer = runtime.GOMAXPROCS(0)
	}

	return &Config{
		DataRoot:     envStr("DRAW_DATA_ROOT", "data"),
		ResultsRoot:  envStr("DRAW_RESULTS_ROOT", "results"),
		FailuresRoot: envStr("DRAW_FAILURES_ROOT", "failures"),

		OuterPoolSize: outer,
		InnerPoolMult: envInt("INNER_POOL_MULT", 3),

		CheckpointPath:     envStr("DRAW_CHECKPOINT_PATH", ""),
		CheckpointEverySec: envInt("DRAW_CHECKPOINT_EVERY_SEC", 30),

		LogLevel: envStr("LOG_LEVEL", "info"),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
