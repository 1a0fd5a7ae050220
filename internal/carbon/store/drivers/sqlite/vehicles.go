package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/carbon/internal/carbon/domain"
)

type vehiclesRepo struct {
	db *sql.DB
}

func (r *vehiclesRepo) GetVehicleByType(ctx context.Context, vehicleType string) (domain.Vehicle, error) {
	var v domain.Vehicle
	err := r.db.QueryRowContext(ctx,
		`SELECT type, emission_factor FROM vehicles WHERE type = ?`, vehicleType,
	).Scan(&v.Type, &v.EmissionFactor)
	if err != nil {
		return domain.Vehicle{}, mapNotFound(err)
	}
	return v, nil
}

func (r *vehiclesRepo) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT type, emission_factor FROM vehicles ORDER BY type`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Vehicle, 0)
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.Type, &v.EmissionFactor); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *vehiclesRepo) UpsertVehicle(ctx context.Context, v domain.Vehicle) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO vehicles (type, emission_factor) VALUES (?, ?)
		 ON CONFLICT (type) DO UPDATE SET emission_factor = excluded.emission_factor`,
		v.Type, v.EmissionFactor,
	)
	return err
}
