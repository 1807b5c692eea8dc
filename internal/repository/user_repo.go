package repository

import (
	"context"
	"fmt"

	"github.com/YazanAlgaleez/flowmart-ai/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(mdb *mongo.Database) *UserRepository {
	return &UserRepository{col: mdb.Collection("users")}
}

// EnsureIndexes crea los índices únicos de username y userId. Sin el
// índice único, dos registros concurrentes del mismo username podrían
// insertarse los dos; con él, el segundo insert falla con duplicate key.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	return err
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.UserDoc, error) {
	var u models.UserDoc
	err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepository) FindByID(ctx context.Context, userID string) (*models.UserDoc, error) {
	var u models.UserDoc
	err := r.col.FindOne(ctx, bson.M{"userId": userID}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &u, err
}

// NextUserID genera ids secuenciales estilo user_001.
func (r *UserRepository) NextUserID(ctx context.Context) (string, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("user_%03d", n+1), nil
}

func (r *UserRepository) Insert(ctx context.Context, u *models.UserDoc) error {
	_, err := r.col.InsertOne(ctx, u)
	return err
}

// UpdateByID aplica un $set parcial sobre el usuario.
func (r *UserRepository) UpdateByID(ctx context.Context, userID string, update bson.M) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"userId": userID},
		bson.M{"$set": update},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context, limit int64) ([]models.UserDoc, error) {
	opts := options.Find().SetSort(bson.D{{Key: "userId", Value: 1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.UserDoc
	for cur.Next(ctx) {
		var u models.UserDoc
		if err := cur.Decode(&u); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, cur.Err()
}
