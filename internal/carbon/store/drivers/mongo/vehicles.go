package mongo

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/carbon/internal/carbon/domain"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ErrNegativeFactor mirrors the CHECK constraint the SQL drivers have.
var ErrNegativeFactor = errors.New("mongo: emission factor must be non-negative")

// vehicleDoc keys on the vehicle type so lookups and upserts hit _id.
type vehicleDoc struct {
	Type           string  `bson:"_id"`
	EmissionFactor float64 `bson:"emission_factor"`
}

type vehiclesRepo struct {
	coll *mongo.Collection
}

func (r *vehiclesRepo) GetVehicleByType(ctx context.Context, vehicleType string) (domain.Vehicle, error) {
	var doc vehicleDoc
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: vehicleType}}).Decode(&doc); err != nil {
		return domain.Vehicle{}, mapNotFound(err)
	}
	return domain.Vehicle{Type: doc.Type, EmissionFactor: doc.EmissionFactor}, nil
}

func (r *vehiclesRepo) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]domain.Vehicle, 0)
	for cur.Next(ctx) {
		var doc vehicleDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, domain.Vehicle{Type: doc.Type, EmissionFactor: doc.EmissionFactor})
	}
	return out, cur.Err()
}

func (r *vehiclesRepo) UpsertVehicle(ctx context.Context, v domain.Vehicle) error {
	if v.EmissionFactor < 0 {
		return ErrNegativeFactor
	}

	_, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: v.Type}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "emission_factor", Value: v.EmissionFactor}}}},
		options.UpdateOne().SetUpsert(true),
	)
	return err
}
