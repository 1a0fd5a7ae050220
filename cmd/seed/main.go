// Command seed loads the vehicle emission factor table into the configured
// store. Existing rows for the same type are overwritten.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/aussiebroadwan/carbon/internal/carbon/app"
	"github.com/aussiebroadwan/carbon/internal/carbon/domain"
	"github.com/aussiebroadwan/carbon/internal/carbon/service"
	"github.com/aussiebroadwan/carbon/pkg/carbonsdk"
	"github.com/aussiebroadwan/carbon/pkg/slogx"
)

func main() {
	file := flag.String("file", "", "JSON array of {type, emissionFactor}; defaults to the built-in table")
	timeout := flag.Duration("timeout", 30*time.Second, "overall deadline")
	flag.Parse()

	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := slogx.New(slogx.Config{
		Service: "carbon-seed",
		Version: app.BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	vehicles := domain.DefaultVehicles
	if *file != "" {
		if vehicles, err = readVehicles(*file); err != nil {
			log.Fatalf("failed to read %s: %v", *file, err)
		}
	}

	if err := run(*timeout, cfg.DatabaseURL, vehicles, logger); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	logger.Info("vehicles seeded", "count", len(vehicles))
}

func run(timeout time.Duration, dsn string, vehicles []domain.Vehicle, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	st, err := app.OpenStore(ctx, dsn)
	if err != nil {
		return err
	}
	defer st.Close()

	svc := &service.EmissionService{Store: st}
	return svc.Seed(slogx.WithContext(ctx, logger), vehicles)
}

func readVehicles(path string) ([]domain.Vehicle, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var in []carbonsdk.Vehicle
	if err := json.Unmarshal(b, &in); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	out := make([]domain.Vehicle, 0, len(in))
	for _, v := range in {
		out = append(out, domain.Vehicle{Type: v.Type, EmissionFactor: v.EmissionFactor})
	}
	return out, nil
}
