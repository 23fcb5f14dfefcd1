package services

import (
	"context"
	"errors"
	"strings"

	"festiloc/internal/models"
	"festiloc/internal/repositories"

	"github.com/google/uuid"
)

type CustomerService interface {
	Create(ctx context.Context, customer *models.Customer) error
	Get(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.Customer, error)
	Search(ctx context.Context, query string, limit, offset int) ([]*models.Customer, error)
}

type customerService struct {
	customerRepo repositories.CustomerRepository
}

func NewCustomerService(customerRepo repositories.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) Create(ctx context.Context, customer *models.Customer) error {
	if err := validateCustomer(customer); err != nil {
		return err
	}
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	customer.Email = strings.ToLower(strings.TrimSpace(customer.Email))
	if _, err := s.customerRepo.GetByEmail(ctx, customer.Email); err == nil {
		return errors.New("a customer with this email already exists")
	}
	return s.customerRepo.Create(ctx, customer)
}

func (s *customerService) Get(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *customerService) Update(ctx context.Context, customer *models.Customer) error {
	if err := validateCustomer(customer); err != nil {
		return err
	}
	customer.Email = strings.ToLower(strings.TrimSpace(customer.Email))
	return s.customerRepo.Update(ctx, customer)
}

func (s *customerService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.customerRepo.Delete(ctx, id)
}

func (s *customerService) List(ctx context.Context, limit, offset int) ([]*models.Customer, error) {
	return s.customerRepo.List(ctx, limit, offset)
}

func (s *customerService) Search(ctx context.Context, query string, limit, offset int) ([]*models.Customer, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.customerRepo.List(ctx, limit, offset)
	}
	return s.customerRepo.Search(ctx, query, limit, offset)
}

func validateCustomer(customer *models.Customer) error {
	if customer.FirstName == "" || customer.LastName == "" {
		return errors.New("customer name is required")
	}
	if !strings.Contains(customer.Email, "@") {
		return errors.New("a valid email is required")
	}
	return nil
}
