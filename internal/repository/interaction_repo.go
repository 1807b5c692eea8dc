package repository

import (
	"context"

	"github.com/YazanAlgaleez/flowmart-ai/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type InteractionRepository struct {
	col *mongo.Collection
}

func NewInteractionRepository(mdb *mongo.Database) *InteractionRepository {
	return &InteractionRepository{col: mdb.Collection("interactions")}
}

func (r *InteractionRepository) Insert(ctx context.Context, doc *models.InteractionDoc) error {
	_, err := r.col.InsertOne(ctx, doc)
	return err
}

// ListByUser devuelve los eventos del usuario en orden de inserción
// (para reconstruir el perfil al levantar la API).
func (r *InteractionRepository) ListByUser(ctx context.Context, userID string, limit int64) ([]models.InteractionDoc, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := r.col.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.InteractionDoc
	for cur.Next(ctx) {
		var doc models.InteractionDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, cur.Err()
}

// ListAll trae todos los eventos (rehidratación de tendencias).
func (r *InteractionRepository) ListAll(ctx context.Context, limit int64) ([]models.InteractionDoc, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.InteractionDoc
	for cur.Next(ctx) {
		var doc models.InteractionDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, cur.Err()
}
