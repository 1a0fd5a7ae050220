package mongo

import (
	"context"
	"time"

	"github.com/aussiebroadwan/carbon/internal/carbon/domain"
	"github.com/aussiebroadwan/carbon/internal/carbon/store"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type quizDoc struct {
	Transportation   string `bson:"transportation"`
	MeatConsumption  string `bson:"meat_consumption"`
	Recycling        string `bson:"recycling"`
	EnergyEfficiency string `bson:"energy_efficiency"`
	ElectricityUsage string `bson:"electricity_usage"`
}

type userDoc struct {
	ID           string    `bson:"_id"`
	Username     string    `bson:"username"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	QuizAnswers  *quizDoc  `bson:"quiz_answers,omitempty"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func toQuizDoc(q domain.QuizAnswers) *quizDoc {
	return &quizDoc{
		Transportation:   q.Transportation,
		MeatConsumption:  q.MeatConsumption,
		Recycling:        q.Recycling,
		EnergyEfficiency: q.EnergyEfficiency,
		ElectricityUsage: q.ElectricityUsage,
	}
}

func (d userDoc) toDomain() domain.User {
	u := domain.User{
		ID:           d.ID,
		Username:     d.Username,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
	if q := d.QuizAnswers; q != nil {
		u.QuizAnswers = &domain.QuizAnswers{
			Transportation:   q.Transportation,
			MeatConsumption:  q.MeatConsumption,
			Recycling:        q.Recycling,
			EnergyEfficiency: q.EnergyEfficiency,
			ElectricityUsage: q.ElectricityUsage,
		}
	}
	return u
}

type usersRepo struct {
	coll *mongo.Collection
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	doc := userDoc{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if u.QuizAnswers != nil {
		doc.QuizAnswers = toQuizDoc(*u.QuizAnswers)
	}

	_, err := r.coll.InsertOne(ctx, doc)
	return mapDuplicateKey(err)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return r.findOne(ctx, bson.D{{Key: "_id", Value: id}})
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

func (r *usersRepo) UpdateQuizAnswers(ctx context.Context, userID string, answers domain.QuizAnswers) error {
	return r.setOne(ctx, userID, bson.E{Key: "quiz_answers", Value: toQuizDoc(answers)})
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID, passwordHash string) error {
	return r.setOne(ctx, userID, bson.E{Key: "password_hash", Value: passwordHash})
}

// setOne $sets field (and updated_at) on the user with userID.
func (r *usersRepo) setOne(ctx context.Context, userID string, field bson.E) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		field,
		{Key: "updated_at", Value: time.Now().UTC()},
	}}}

	res, err := r.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: userID}}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) findOne(ctx context.Context, filter bson.D) (domain.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return doc.toDomain(), nil
}
