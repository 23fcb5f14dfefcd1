package services

import (
	"context"
	"errors"
	"testing"

	"festiloc/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CompareServiceTestSuite struct {
	suite.Suite
	productRepo *MockProductRepository
	cache       *MockCacheService
	service     CompareService
	ctx         context.Context
}

func (suite *CompareServiceTestSuite) SetupTest() {
	suite.productRepo = new(MockProductRepository)
	suite.cache = new(MockCacheService)
	suite.service = NewCompareService(suite.productRepo, suite.cache)
	suite.ctx = context.Background()
}

func (suite *CompareServiceTestSuite) TearDownTest() {
	suite.productRepo.AssertExpectations(suite.T())
	suite.cache.AssertExpectations(suite.T())
}

func TestCompareServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CompareServiceTestSuite))
}

func comparisonWith(sessionID string, ids ...uuid.UUID) *models.ComparisonSet {
	set := &models.ComparisonSet{SessionID: sessionID}
	for _, id := range ids {
		set.Items = append(set.Items, models.ComparisonItem{ProductID: id})
	}
	return set
}

func (suite *CompareServiceTestSuite) TestAdd_Success() {
	productID := uuid.New()
	suite.cache.On("GetComparison", suite.ctx, "s1").Return(nil, nil)
	suite.productRepo.On("GetByID", suite.ctx, productID).Return(&models.Product{
		ID:       productID,
		Name:     "Barnum 3x3",
		Slug:     "barnum-3x3",
		PriceTTC: 45,
		Images:   []string{"barnum.jpg"},
	}, nil)
	suite.cache.On("SetComparison", suite.ctx, mock.AnythingOfType("*models.ComparisonSet")).Return(nil)

	set, err := suite.service.Add(suite.ctx, "s1", productID)

	suite.NoError(err)
	suite.Len(set.Items, 1)
	suite.Equal("barnum.jpg", set.Items[0].Image)
}

func (suite *CompareServiceTestSuite) TestAdd_AtCapacityIsNoOp() {
	full := comparisonWith("s1", uuid.New(), uuid.New(), uuid.New())
	suite.cache.On("GetComparison", suite.ctx, "s1").Return(full, nil)

	set, err := suite.service.Add(suite.ctx, "s1", uuid.New())

	suite.NoError(err)
	suite.Len(set.Items, models.MaxComparisonProducts)
	suite.cache.AssertNotCalled(suite.T(), "SetComparison", mock.Anything, mock.Anything)
	suite.productRepo.AssertNotCalled(suite.T(), "GetByID", mock.Anything, mock.Anything)
}

func (suite *CompareServiceTestSuite) TestAdd_DuplicateIsNoOp() {
	productID := uuid.New()
	suite.cache.On("GetComparison", suite.ctx, "s1").Return(comparisonWith("s1", productID), nil)

	set, err := suite.service.Add(suite.ctx, "s1", productID)

	suite.NoError(err)
	suite.Len(set.Items, 1)
	suite.cache.AssertNotCalled(suite.T(), "SetComparison", mock.Anything, mock.Anything)
}

func (suite *CompareServiceTestSuite) TestAdd_UnknownProduct() {
	productID := uuid.New()
	suite.cache.On("GetComparison", suite.ctx, "s1").Return(nil, nil)
	suite.productRepo.On("GetByID", suite.ctx, productID).Return(nil, errors.New("no rows"))

	_, err := suite.service.Add(suite.ctx, "s1", productID)

	suite.Error(err)
}

func (suite *CompareServiceTestSuite) TestRemove_KeepsOrder() {
	first, second, third := uuid.New(), uuid.New(), uuid.New()
	suite.cache.On("GetComparison", suite.ctx, "s1").Return(comparisonWith("s1", first, second, third), nil)
	suite.cache.On("SetComparison", suite.ctx, mock.AnythingOfType("*models.ComparisonSet")).Return(nil)

	set, err := suite.service.Remove(suite.ctx, "s1", second)

	suite.NoError(err)
	suite.Len(set.Items, 2)
	suite.Equal(first, set.Items[0].ProductID)
	suite.Equal(third, set.Items[1].ProductID)
}

func (suite *CompareServiceTestSuite) TestContains() {
	productID := uuid.New()
	suite.cache.On("GetComparison", suite.ctx, "s1").Return(comparisonWith("s1", productID), nil).Twice()

	found, err := suite.service.Contains(suite.ctx, "s1", productID)
	suite.NoError(err)
	suite.True(found)

	found, err = suite.service.Contains(suite.ctx, "s1", uuid.New())
	suite.NoError(err)
	suite.False(found)
}
