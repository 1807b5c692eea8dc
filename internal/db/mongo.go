package db

import (
	"context"
	"fmt"
	"time"

	"github.com/YazanAlgaleez/flowmart-ai/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect abre la conexión a Mongo y verifica con un ping. No hace
// Fatal: si Mongo no está, el caller degrada al dataset local
// (ver catalog_service).
func Connect(cfg *config.Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("conectando a mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping a mongo: %w", err)
	}

	return client.Database(cfg.MongoDB), nil
}
