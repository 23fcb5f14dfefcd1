package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"festiloc/internal/models"
	"festiloc/internal/repositories"

	"github.com/google/uuid"
)

// Admin listing retry policy: three attempts with linear backoff.
const (
	listRetryAttempts = 3
	listRetryBackoff  = 500 * time.Millisecond
)

// SubmitQuoteInput is the storefront quote form payload plus the session
// whose cart is being submitted.
type SubmitQuoteInput struct {
	SessionID string
	FirstName string
	LastName  string
	Email     string
	Phone     *string
	EventDate *time.Time
	Message   *string
}

type QuoteService interface {
	Submit(ctx context.Context, input SubmitQuoteInput) (*models.QuoteRequest, error)
	Get(ctx context.Context, id uuid.UUID) (*models.QuoteRequest, error)
	List(ctx context.Context, status string, limit, offset int) ([]*models.QuoteRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type quoteService struct {
	quoteRepo    repositories.QuoteRepository
	customerRepo repositories.CustomerRepository
	carts        CartService
	sleep        func(time.Duration) // swapped out in tests
}

func NewQuoteService(quoteRepo repositories.QuoteRepository, customerRepo repositories.CustomerRepository, carts CartService) QuoteService {
	return &quoteService{
		quoteRepo:    quoteRepo,
		customerRepo: customerRepo,
		carts:        carts,
		sleep:        time.Sleep,
	}
}

// Submit copies the session cart into a quote request, links or creates the
// customer record by email, and clears the cart on success.
func (s *quoteService) Submit(ctx context.Context, input SubmitQuoteInput) (*models.QuoteRequest, error) {
	cart, err := s.carts.Get(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, errors.New("cart is empty")
	}

	customerID, err := s.ensureCustomer(ctx, input)
	if err != nil {
		return nil, err
	}

	quote := &models.QuoteRequest{
		ID:         uuid.New(),
		CustomerID: customerID,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Email:      input.Email,
		Phone:      input.Phone,
		EventDate:  input.EventDate,
		Message:    input.Message,
		Status:     models.QuoteStatusNew,
	}
	for _, line := range cart.Items {
		quote.Items = append(quote.Items, models.QuoteRequestItem{
			ID:             uuid.New(),
			QuoteRequestID: quote.ID,
			ProductID:      line.ProductID,
			ProductName:    line.Name,
			PriceTTC:       line.PriceTTC,
			Quantity:       line.Quantity,
		})
	}

	if err := s.quoteRepo.Create(ctx, quote); err != nil {
		return nil, err
	}

	if err := s.carts.Clear(ctx, input.SessionID); err != nil {
		// the quote is in; a lingering cart is only a cosmetic leftover
		log.Printf("failed to clear cart after quote %s: %v", quote.ID, err)
	}
	return quote, nil
}

// ensureCustomer reuses an existing customer record matched by email, or
// creates one from the form fields.
func (s *quoteService) ensureCustomer(ctx context.Context, input SubmitQuoteInput) (*uuid.UUID, error) {
	existing, err := s.customerRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return &existing.ID, nil
	}

	customer := &models.Customer{
		ID:        uuid.New(),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     strings.ToLower(input.Email),
		Phone:     input.Phone,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to record customer: %w", err)
	}
	return &customer.ID, nil
}

func (s *quoteService) Get(ctx context.Context, id uuid.UUID) (*models.QuoteRequest, error) {
	return s.quoteRepo.GetByID(ctx, id)
}

// List fetches the admin quote-request listing, retrying transient failures
// with linear backoff before giving up.
func (s *quoteService) List(ctx context.Context, status string, limit, offset int) ([]*models.QuoteRequest, error) {
	if status != "" && !models.ValidQuoteStatus(status) {
		return nil, fmt.Errorf("unknown quote status %q", status)
	}

	var lastErr error
	for attempt := 1; attempt <= listRetryAttempts; attempt++ {
		quotes, err := s.quoteRepo.List(ctx, status, limit, offset)
		if err == nil {
			return quotes, nil
		}
		lastErr = err
		if attempt < listRetryAttempts {
			log.Printf("quote listing attempt %d failed: %v", attempt, err)
			s.sleep(time.Duration(attempt) * listRetryBackoff)
		}
	}
	return nil, fmt.Errorf("quote listing failed after %d attempts: %w", listRetryAttempts, lastErr)
}

func (s *quoteService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	if !models.ValidQuoteStatus(status) {
		return fmt.Errorf("unknown quote status %q", status)
	}
	if _, err := s.quoteRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.quoteRepo.UpdateStatus(ctx, id, status)
}

func (s *quoteService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.quoteRepo.Delete(ctx, id)
}
