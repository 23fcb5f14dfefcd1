package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"festiloc/internal/catalog"
	"festiloc/internal/models"

	"github.com/redis/go-redis/v9"
)

// TTLs. Cart and comparison payloads are the server-side counterpart of the
// browser's local storage: carts survive 30 days, comparison sets never
// expire on their own, and the category tree stays fresh for 10 minutes.
const (
	CartTTL    = 30 * 24 * time.Hour
	TreeTTL    = 10 * time.Minute
	ProductTTL = 15 * time.Minute
)

type CacheService interface {
	// Session cart persistence
	GetCart(ctx context.Context, sessionID string) (*models.Cart, error)
	SetCart(ctx context.Context, cart *models.Cart) error
	DeleteCart(ctx context.Context, sessionID string) error

	// Comparison set persistence
	GetComparison(ctx context.Context, sessionID string) (*models.ComparisonSet, error)
	SetComparison(ctx context.Context, set *models.ComparisonSet) error
	DeleteComparison(ctx context.Context, sessionID string) error

	// Category tree cache (mega-menu)
	GetTree(ctx context.Context) (*catalog.Tree, error)
	SetTree(ctx context.Context, tree *catalog.Tree) error
	DeleteTree(ctx context.Context) error

	// Product detail cache
	GetProduct(ctx context.Context, slug string) (*models.Product, error)
	SetProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, slug string) error

	InvalidateCatalog(ctx context.Context) error
	Ping(ctx context.Context) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	// Accept redis://host:port URLs as well as bare host:port
	parsedAddr := addr
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		parsedAddr = strings.TrimPrefix(strings.TrimPrefix(addr, "redis://"), "rediss://")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     parsedAddr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("WARN: Redis ping failed on initialization: %v (address: %s)", err, parsedAddr)
	}

	return &redisCacheService{client: client}
}

func cartKey(sessionID string) string    { return fmt.Sprintf("festiloc:cart:%s", sessionID) }
func compareKey(sessionID string) string { return fmt.Sprintf("festiloc:compare:%s", sessionID) }
func productKey(slug string) string      { return fmt.Sprintf("festiloc:product:%s", slug) }

const treeKey = "festiloc:categories:tree"

// getJSON unmarshals the value at key into dst. A missing key returns
// (false, nil); a corrupt payload is treated the same way, so malformed
// stored state degrades to "not cached" instead of surfacing an error.
func (r *redisCacheService) getJSON(ctx context.Context, key string, dst interface{}) (bool, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		log.Printf("WARN: discarding corrupt cache payload at %s: %v", key, err)
		return false, nil
	}
	return true, nil
}

func (r *redisCacheService) setJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, ttl).Err()
}

func (r *redisCacheService) GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	var cart models.Cart
	ok, err := r.getJSON(ctx, cartKey(sessionID), &cart)
	if err != nil || !ok {
		return nil, err
	}
	return &cart, nil
}

func (r *redisCacheService) SetCart(ctx context.Context, cart *models.Cart) error {
	return r.setJSON(ctx, cartKey(cart.SessionID), cart, CartTTL)
}

func (r *redisCacheService) DeleteCart(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, cartKey(sessionID)).Err()
}

func (r *redisCacheService) GetComparison(ctx context.Context, sessionID string) (*models.ComparisonSet, error) {
	var set models.ComparisonSet
	ok, err := r.getJSON(ctx, compareKey(sessionID), &set)
	if err != nil || !ok {
		return nil, err
	}
	return &set, nil
}

func (r *redisCacheService) SetComparison(ctx context.Context, set *models.ComparisonSet) error {
	// no TTL: comparison sets persist until cleared
	return r.setJSON(ctx, compareKey(set.SessionID), set, 0)
}

func (r *redisCacheService) DeleteComparison(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, compareKey(sessionID)).Err()
}

func (r *redisCacheService) GetTree(ctx context.Context) (*catalog.Tree, error) {
	var tree catalog.Tree
	ok, err := r.getJSON(ctx, treeKey, &tree)
	if err != nil || !ok {
		return nil, err
	}
	return &tree, nil
}

func (r *redisCacheService) SetTree(ctx context.Context, tree *catalog.Tree) error {
	return r.setJSON(ctx, treeKey, tree, TreeTTL)
}

func (r *redisCacheService) DeleteTree(ctx context.Context) error {
	return r.client.Del(ctx, treeKey).Err()
}

func (r *redisCacheService) GetProduct(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	ok, err := r.getJSON(ctx, productKey(slug), &product)
	if err != nil || !ok {
		return nil, err
	}
	return &product, nil
}

func (r *redisCacheService) SetProduct(ctx context.Context, product *models.Product) error {
	return r.setJSON(ctx, productKey(product.Slug), product, ProductTTL)
}

func (r *redisCacheService) DeleteProduct(ctx context.Context, slug string) error {
	return r.client.Del(ctx, productKey(slug)).Err()
}

// InvalidateCatalog drops the tree and every cached product after an admin
// catalog write. Session state (carts, comparisons) is left alone.
func (r *redisCacheService) InvalidateCatalog(ctx context.Context) error {
	keys, err := r.client.Keys(ctx, "festiloc:product:*").Result()
	if err != nil {
		return err
	}
	keys = append(keys, treeKey)
	return r.client.Del(ctx, keys...).Err()
}

func (r *redisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
