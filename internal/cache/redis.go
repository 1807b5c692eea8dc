package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/YazanAlgaleez/flowmart-ai/internal/config"

	"github.com/redis/go-redis/v9"
)

// Cache envuelve el cliente Redis. Un Cache con client nil es válido y
// todas las operaciones son no-op (la API funciona sin Redis, solo que
// sin cache).
type Cache struct {
	client *redis.Client
}

// New conecta a Redis. Si el ping falla devuelve un cache deshabilitado
// en vez de tumbar el proceso.
func New(cfg *config.Config) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("[redis] no disponible (%v), siguiendo sin cache", err)
		return &Cache{}
	}

	log.Println("[redis] OK")
	return &Cache{client: client}
}

// Disabled devuelve un cache no-op (para la consola y los tests).
func Disabled() *Cache { return &Cache{} }

// =======================================================
//  Helpers JSON para usar desde los servicios
// =======================================================

// GetJSON lee una key, si existe deserializa el JSON en `dest`.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if c.client == nil {
		return false, nil
	}

	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		// no existe la clave
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON serializa `value` a JSON y lo guarda con TTL en segundos.
func (c *Cache) SetJSON(ctx context.Context, key string, value any, ttlSeconds int) error {
	if c.client == nil {
		return nil
	}

	b, err := json.Marshal(value)
	if err != nil {
		return err
	}

	ttl := time.Duration(ttlSeconds) * time.Second
	return c.client.Set(ctx, key, b, ttl).Err()
}

// Del borra keys (invalidación tras una interacción nueva).
func (c *Cache) Del(ctx context.Context, keys ...string) error {
	if c.client == nil || len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
