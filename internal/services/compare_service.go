package services

import (
	"context"
	"log"

	"festiloc/internal/caching"
	"festiloc/internal/models"
	"festiloc/internal/repositories"

	"github.com/google/uuid"
)

// CompareService maintains the bounded comparison selection: at most
// models.MaxComparisonProducts products, deduplicated by id, order
// preserved. Adding past capacity or re-adding a member is a silent no-op,
// mirroring the storefront buttons which simply stop responding.
type CompareService interface {
	Get(ctx context.Context, sessionID string) (*models.ComparisonSet, error)
	Add(ctx context.Context, sessionID string, productID uuid.UUID) (*models.ComparisonSet, error)
	Remove(ctx context.Context, sessionID string, productID uuid.UUID) (*models.ComparisonSet, error)
	Clear(ctx context.Context, sessionID string) error
	Contains(ctx context.Context, sessionID string, productID uuid.UUID) (bool, error)
}

type compareService struct {
	productRepo repositories.ProductRepository
	cache       caching.CacheService
}

func NewCompareService(productRepo repositories.ProductRepository, cache caching.CacheService) CompareService {
	return &compareService{productRepo: productRepo, cache: cache}
}

func (s *compareService) Get(ctx context.Context, sessionID string) (*models.ComparisonSet, error) {
	set, err := s.cache.GetComparison(ctx, sessionID)
	if err != nil {
		// fail soft, same contract as the cart
		log.Printf("comparison load failed for session %s: %v", sessionID, err)
	}
	if set == nil {
		set = &models.ComparisonSet{SessionID: sessionID, Items: []models.ComparisonItem{}}
	}
	return set, nil
}

func (s *compareService) Add(ctx context.Context, sessionID string, productID uuid.UUID) (*models.ComparisonSet, error) {
	set, _ := s.Get(ctx, sessionID)
	if len(set.Items) >= models.MaxComparisonProducts || set.Contains(productID) {
		return set, nil
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	set.Items = append(set.Items, models.ComparisonItem{
		ProductID: product.ID,
		Name:      product.Name,
		Slug:      product.Slug,
		PriceTTC:  product.PriceTTC,
		Image:     product.MainImage(),
	})
	return set, s.cache.SetComparison(ctx, set)
}

func (s *compareService) Remove(ctx context.Context, sessionID string, productID uuid.UUID) (*models.ComparisonSet, error) {
	set, _ := s.Get(ctx, sessionID)
	for i := range set.Items {
		if set.Items[i].ProductID == productID {
			set.Items = append(set.Items[:i], set.Items[i+1:]...)
			return set, s.cache.SetComparison(ctx, set)
		}
	}
	return set, nil
}

func (s *compareService) Clear(ctx context.Context, sessionID string) error {
	return s.cache.DeleteComparison(ctx, sessionID)
}

func (s *compareService) Contains(ctx context.Context, sessionID string, productID uuid.UUID) (bool, error) {
	set, _ := s.Get(ctx, sessionID)
	return set.Contains(productID), nil
}
