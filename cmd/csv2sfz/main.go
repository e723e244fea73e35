package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"

	"github.com/momoluna444/csv2sfz/config"
	"github.com/momoluna444/csv2sfz/metrics"
	"github.com/momoluna444/csv2sfz/runner"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	cfg := &config.Config{}
	flag.IntVar(&cfg.Jobs, "jobs", 0, "concurrent file conversions (default: number of CPUs)")
	flag.BoolVar(&cfg.Doctor, "doctor", false, "probe WAV files under the root and report instead of converting")
	flag.Parse()

	cfg.Root = flag.Arg(0)
	if cfg.Root == "" {
		cfg.Root = "."
	}
	cfg.FromEnv()

	if info, err := os.Stat(cfg.Root); err != nil || !info.IsDir() {
		log.Fatalf("❌ ERROR: %s is not a directory", cfg.Root)
	}

	// Initialize Sentry when a DSN is configured
	sentryEnabled := cfg.SentryDSN != ""
	if sentryEnabled {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			TracesSampleRate: 1.0,
		})
		if err != nil {
			log.Printf("⚠️  Warning: Sentry init failed: %v", err)
			sentryEnabled = false
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	m := metrics.NewSentryMetrics(sentryEnabled)
	ctx := context.Background()

	if cfg.Doctor {
		if err := runner.Doctor(cfg); err != nil {
			log.Fatalf("❌ %v", err)
		}
		return
	}

	if err := runner.Run(ctx, cfg, m); err != nil {
		log.Fatalf("❌ %v", err)
	}
}
