// Command probetable runs the collision-resolution demonstration from an
// interactive menu.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MikhailWahib/probetable/internal/config"
	"github.com/MikhailWahib/probetable/internal/engine"
	"github.com/MikhailWahib/probetable/internal/metrics"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env vars")
	}

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	var (
		sizeFlag    = flag.Int("size", cfg.Size, "number of table slots")
		verboseFlag = flag.Bool("v", cfg.Verbose, "log rejected inserts")
		metricsFlag = flag.Bool("metrics", false, "print Prometheus metrics on exit")
	)
	flag.Parse()

	cfg.Size = *sizeFlag
	cfg.Verbose = *verboseFlag
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	var rec engine.Recorder
	reg := prometheus.NewRegistry()
	if *metricsFlag {
		rec = metrics.NewRecorder(reg)
	}

	if err := runMenu(os.Stdin, os.Stdout, cfg, rec); err != nil {
		log.Fatalf("Menu failed: %v", err)
	}

	if *metricsFlag {
		if err := metrics.Dump(os.Stdout, reg); err != nil {
			log.Fatalf("Failed to write metrics: %v", err)
		}
	}
}
