package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/aussiebroadwan/carbon/internal/carbon/domain"
	"github.com/aussiebroadwan/carbon/internal/carbon/store"
)

var (
	ErrMissingTrip      = errors.New("missing_trip_fields")
	ErrInvalidDistance  = errors.New("invalid_distance")
	ErrVehicleNotFound  = errors.New("vehicle_not_found")
	ErrNegativeEmission = errors.New("negative_emission_factor")
)

// Recorder observes successful calculations. The metrics package implements
// it; a nil Recorder is fine.
type Recorder interface {
	ObserveCalculation(vehicleType string)
}

type EmissionService struct {
	Store    store.Store
	Recorder Recorder
}

// Calculate returns factor × distance for vehicleType, unrounded. Unknown
// types are ErrVehicleNotFound, never a zero factor.
func (s *EmissionService) Calculate(ctx context.Context, vehicleType string, distance float64) (float64, error) {
	if strings.TrimSpace(vehicleType) == "" {
		return 0, ErrMissingTrip
	}
	if math.IsNaN(distance) || math.IsInf(distance, 0) || distance < 0 {
		return 0, ErrInvalidDistance
	}

	v, err := s.Store.Vehicles().GetVehicleByType(ctx, vehicleType)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return 0, ErrVehicleNotFound
		}
		return 0, fmt.Errorf("lookup vehicle: %w", err)
	}

	emission := v.EmissionFactor * distance
	if math.IsInf(emission, 0) || math.IsNaN(emission) {
		return 0, ErrInvalidDistance
	}

	if s.Recorder != nil {
		s.Recorder.ObserveCalculation(v.Type)
	}
	return emission, nil
}

func (s *EmissionService) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	return s.Store.Vehicles().ListVehicles(ctx)
}

// Seed upserts vehicles, rejecting negative factors before anything is
// written.
func (s *EmissionService) Seed(ctx context.Context, vehicles []domain.Vehicle) error {
	for _, v := range vehicles {
		if v.Type == "" {
			return ErrMissingTrip
		}
		if v.EmissionFactor < 0 || math.IsNaN(v.EmissionFactor) || math.IsInf(v.EmissionFactor, 0) {
			return fmt.Errorf("%w: %s", ErrNegativeEmission, v.Type)
		}
	}
	for _, v := range vehicles {
		if err := s.Store.Vehicles().UpsertVehicle(ctx, v); err != nil {
			return fmt.Errorf("upsert %s: %w", v.Type, err)
		}
	}
	return nil
}
