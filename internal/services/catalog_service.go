package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"festiloc/internal/caching"
	"festiloc/internal/catalog"
	"festiloc/internal/models"
	"festiloc/internal/repositories"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// ErrCategoryNotFound is returned when a slug path does not resolve in the
// category tree.
var ErrCategoryNotFound = errors.New("category path not found")

// ListQuery is one storefront listing request: an optional fixed category
// route, the user's filter state, and the requested page.
type ListQuery struct {
	CategoryPath []string
	Filter       catalog.FilterState
	Page         int
	PageSize     int
}

// ProductListing is the assembled listing response: one page of filtered
// products plus everything the filter panel and breadcrumb need.
type ProductListing struct {
	Products   []*models.Product      `json:"products"`
	Page       int                    `json:"page"`
	TotalPages int                    `json:"total_pages"`
	TotalItems int                    `json:"total_items"`
	PriceMin   float64                `json:"price_min"`
	PriceMax   float64                `json:"price_max"`
	Breadcrumb []catalog.Crumb        `json:"breadcrumb,omitempty"`
	Filters    *models.FilterMetadata `json:"filters"`
}

type CatalogService interface {
	Tree(ctx context.Context) (*catalog.Tree, error)
	RefreshTree(ctx context.Context) (*catalog.Tree, error)
	ListProducts(ctx context.Context, q ListQuery) (*ProductListing, error)
	GetProduct(ctx context.Context, productSlug string) (*models.Product, error)

	CreateProduct(ctx context.Context, product *models.Product) error
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	SearchProducts(ctx context.Context, query string, limit, offset int) ([]*models.Product, error)

	UploadProductImage(ctx context.Context, productID uuid.UUID, filename string, reader io.Reader, size int64) (*models.Product, error)
	ProductImageURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}

type catalogService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	storage      StorageService
	cache        caching.CacheService
}

func NewCatalogService(productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository,
	storage StorageService, cache caching.CacheService) CatalogService {
	return &catalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		storage:      storage,
		cache:        cache,
	}
}

// Tree returns the navigation tree, served from the 10-minute cache when
// fresh. Cache failures fall through to the database.
func (s *catalogService) Tree(ctx context.Context) (*catalog.Tree, error) {
	if tree, err := s.cache.GetTree(ctx); tree != nil {
		return tree, nil
	} else if err != nil {
		log.Printf("tree cache read failed: %v", err)
	}
	return s.RefreshTree(ctx)
}

// RefreshTree rebuilds the tree from the database and re-caches it.
func (s *catalogService) RefreshTree(ctx context.Context) (*catalog.Tree, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	subcategories, err := s.categoryRepo.ListSubcategories(ctx)
	if err != nil {
		return nil, err
	}
	subsubs, err := s.categoryRepo.ListSubSubcategories(ctx)
	if err != nil {
		return nil, err
	}

	tree := catalog.BuildTree(categories, subcategories, subsubs)
	if err := s.cache.SetTree(ctx, tree); err != nil {
		log.Printf("tree cache write failed: %v", err)
	}
	return tree, nil
}

// ListProducts runs the full listing pipeline: scope to the category route,
// clamp the price range into the live bounds, filter, sort, paginate.
func (s *catalogService) ListProducts(ctx context.Context, q ListQuery) (*ProductListing, error) {
	var breadcrumb []catalog.Crumb

	products, err := s.scopedProducts(ctx, q.CategoryPath, &breadcrumb)
	if err != nil {
		return nil, err
	}

	state := q.Filter
	state.CategoryScoped = len(q.CategoryPath) > 0

	boundMin, boundMax := catalog.PriceBounds(products)
	if state.PriceMax > 0 {
		state.PriceMin, state.PriceMax = catalog.ClampRange(state.PriceMin, state.PriceMax, boundMin, boundMax)
	}

	filtered := catalog.Apply(products, state)

	pager := catalog.NewPaginator(q.PageSize)
	pager.SetTotal(len(filtered))
	pager.SetPage(q.Page)
	page := catalog.PageSlice(pager, filtered)

	return &ProductListing{
		Products:   page,
		Page:       pager.Page(),
		TotalPages: pager.TotalPages(),
		TotalItems: len(filtered),
		PriceMin:   boundMin,
		PriceMax:   boundMax,
		Breadcrumb: breadcrumb,
		Filters:    catalog.Metadata(products),
	}, nil
}

func (s *catalogService) scopedProducts(ctx context.Context, path []string, breadcrumb *[]catalog.Crumb) ([]*models.Product, error) {
	if len(path) == 0 {
		return s.productRepo.List(ctx)
	}

	tree, err := s.Tree(ctx)
	if err != nil {
		return nil, err
	}
	resolved, ok := tree.Resolve(path...)
	if !ok {
		return nil, ErrCategoryNotFound
	}
	*breadcrumb = resolved.Breadcrumb()

	switch {
	case resolved.SubSubcategory != nil:
		return s.productRepo.ListBySubSubcategory(ctx, resolved.SubSubcategory.ID)
	case resolved.Subcategory != nil:
		return s.productRepo.ListBySubcategory(ctx, resolved.Subcategory.ID)
	default:
		return s.productRepo.ListByCategory(ctx, resolved.Category.ID)
	}
}

func (s *catalogService) GetProduct(ctx context.Context, productSlug string) (*models.Product, error) {
	if cached, err := s.cache.GetProduct(ctx, productSlug); cached != nil {
		return cached, nil
	} else if err != nil {
		log.Printf("product cache read failed for %s: %v", productSlug, err)
	}

	product, err := s.productRepo.GetBySlug(ctx, productSlug)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetProduct(ctx, product); err != nil {
		log.Printf("product cache write failed for %s: %v", productSlug, err)
	}
	return product, nil
}

func (s *catalogService) CreateProduct(ctx context.Context, product *models.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	product.ID = uuid.New()
	if product.Slug == "" {
		product.Slug = slug.Make(product.Name)
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, product *models.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	existing, err := s.productRepo.GetByID(ctx, product.ID)
	if err != nil {
		return err
	}
	if product.Slug == "" {
		product.Slug = existing.Slug
	}
	if err := s.productRepo.Update(ctx, product); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	for _, image := range product.Images {
		if err := s.storage.DeleteImage(ctx, image); err != nil {
			log.Printf("failed to delete image %s: %v", image, err)
		}
	}
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *catalogService) SearchProducts(ctx context.Context, query string, limit, offset int) ([]*models.Product, error) {
	if strings.TrimSpace(query) == "" {
		return s.productRepo.List(ctx)
	}
	return s.productRepo.Search(ctx, query, limit, offset)
}

// UploadProductImage stores the file and appends it to the product's image
// sequence. The first uploaded image becomes the main image.
func (s *catalogService) UploadProductImage(ctx context.Context, productID uuid.UUID, filename string, reader io.Reader, size int64) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("product not found: %w", err)
	}

	fileExt := filepath.Ext(filename)
	objectName := fmt.Sprintf("%s/%d%s", product.Slug, time.Now().UnixNano(), fileExt)

	if err := s.storage.EnsureBucket(ctx); err != nil {
		return nil, err
	}
	if err := s.storage.UploadImage(ctx, objectName, reader, size); err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	product.Images = append(product.Images, objectName)
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return product, nil
}

func (s *catalogService) ProductImageURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	return s.storage.GetPresignedURL(ctx, objectName, expiry)
}

func (s *catalogService) invalidate(ctx context.Context) {
	if err := s.cache.InvalidateCatalog(ctx); err != nil {
		log.Printf("catalog cache invalidation failed: %v", err)
	}
}

func validateProduct(product *models.Product) error {
	if strings.TrimSpace(product.Name) == "" {
		return errors.New("product name is required")
	}
	if product.PriceTTC <= 0 {
		return errors.New("daily price must be positive")
	}
	if product.MainImageIndex < 0 {
		return errors.New("main image index cannot be negative")
	}
	return nil
}
