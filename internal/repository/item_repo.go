package repository

import (
	"context"

	"github.com/YazanAlgaleez/flowmart-ai/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ItemRepository struct {
	col *mongo.Collection
}

func NewItemRepository(mdb *mongo.Database) *ItemRepository {
	return &ItemRepository{col: mdb.Collection("items")}
}

func (r *ItemRepository) GetByName(ctx context.Context, name string) (*models.ItemDoc, error) {
	var it models.ItemDoc
	err := r.col.FindOne(ctx, bson.M{"name": name}).Decode(&it)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &it, err
}

// List devuelve el catálogo completo (limit <= 0 trae todo).
func (r *ItemRepository) List(ctx context.Context, limit int64) ([]models.ItemDoc, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ItemDoc
	for cur.Next(ctx) {
		var it models.ItemDoc
		if err := cur.Decode(&it); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, cur.Err()
}

// UpsertCounters persiste los contadores mutables de un item.
func (r *ItemRepository) UpsertCounters(ctx context.Context, name string, views, likes int, popularity float64) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"name": name},
		bson.M{"$set": bson.M{
			"views":      views,
			"likes":      likes,
			"popularity": popularity,
		}},
		options.Update().SetUpsert(false),
	)
	return err
}

// SeedIfEmpty inserta el dataset local si la colección está vacía.
func (r *ItemRepository) SeedIfEmpty(ctx context.Context, items []models.ItemDoc) (bool, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	docs := make([]any, 0, len(items))
	for _, it := range items {
		docs = append(docs, it)
	}
	_, err = r.col.InsertMany(ctx, docs)
	return err == nil, err
}
