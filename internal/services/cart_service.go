package services

import (
	"context"
	"errors"
	"log"
	"time"

	"festiloc/internal/caching"
	"festiloc/internal/models"

	"github.com/google/uuid"
)

// CartService maintains the per-session quote cart. The cart is written
// back to Redis on every mutation and rehydrated on every read; a missing
// or corrupt payload yields an empty cart, never an error.
type CartService interface {
	Get(ctx context.Context, sessionID string) (*models.Cart, error)
	Add(ctx context.Context, sessionID string, item models.CartItem) (*models.Cart, error)
	Remove(ctx context.Context, sessionID string, productID uuid.UUID) (*models.Cart, error)
	UpdateQuantity(ctx context.Context, sessionID string, productID uuid.UUID, quantity int) (*models.Cart, error)
	Clear(ctx context.Context, sessionID string) error
	Summary(ctx context.Context, sessionID string) (*models.CartSummary, error)
}

type cartService struct {
	cache caching.CacheService
}

func NewCartService(cache caching.CacheService) CartService {
	return &cartService{cache: cache}
}

func (s *cartService) Get(ctx context.Context, sessionID string) (*models.Cart, error) {
	cart, err := s.cache.GetCart(ctx, sessionID)
	if err != nil {
		// fail soft: an unreachable store degrades to an empty cart
		log.Printf("cart load failed for session %s: %v", sessionID, err)
	}
	if cart == nil {
		cart = &models.Cart{SessionID: sessionID, Items: []models.CartItem{}}
	}
	return cart, nil
}

// Add appends a new line, or increments the quantity when a line with the
// same product id already exists.
func (s *cartService) Add(ctx context.Context, sessionID string, item models.CartItem) (*models.Cart, error) {
	if item.ProductID == uuid.Nil {
		return nil, errors.New("product id is required")
	}
	if item.Quantity < 1 {
		return nil, errors.New("quantity must be at least 1")
	}

	cart, _ := s.Get(ctx, sessionID)
	merged := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == item.ProductID {
			cart.Items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, item)
	}
	return cart, s.persist(ctx, cart)
}

func (s *cartService) Remove(ctx context.Context, sessionID string, productID uuid.UUID) (*models.Cart, error) {
	cart, _ := s.Get(ctx, sessionID)
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			return cart, s.persist(ctx, cart)
		}
	}
	// absent id is a no-op
	return cart, nil
}

// UpdateQuantity sets a line's quantity. A quantity below 1 removes the
// line, matching the storefront's minus-button behavior.
func (s *cartService) UpdateQuantity(ctx context.Context, sessionID string, productID uuid.UUID, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return s.Remove(ctx, sessionID, productID)
	}

	cart, _ := s.Get(ctx, sessionID)
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = quantity
			return cart, s.persist(ctx, cart)
		}
	}
	return nil, errors.New("product not in cart")
}

func (s *cartService) Clear(ctx context.Context, sessionID string) error {
	return s.cache.DeleteCart(ctx, sessionID)
}

// Summary reports both counts the storefront uses: the badge shows
// LineCount, the cart page shows TotalQuantity and the running total.
func (s *cartService) Summary(ctx context.Context, sessionID string) (*models.CartSummary, error) {
	cart, _ := s.Get(ctx, sessionID)
	summary := &models.CartSummary{LineCount: len(cart.Items)}
	for _, item := range cart.Items {
		summary.TotalQuantity += item.Quantity
		summary.TotalTTC += item.PriceTTC * float64(item.Quantity)
	}
	return summary, nil
}

func (s *cartService) persist(ctx context.Context, cart *models.Cart) error {
	cart.UpdatedAt = time.Now()
	return s.cache.SetCart(ctx, cart)
}
