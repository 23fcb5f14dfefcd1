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

type CartServiceTestSuite struct {
	suite.Suite
	cache   *MockCacheService
	service CartService
	ctx     context.Context
}

func (suite *CartServiceTestSuite) SetupTest() {
	suite.cache = new(MockCacheService)
	suite.service = NewCartService(suite.cache)
	suite.ctx = context.Background()
}

func (suite *CartServiceTestSuite) TearDownTest() {
	suite.cache.AssertExpectations(suite.T())
}

func TestCartServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CartServiceTestSuite))
}

func cartWith(sessionID string, items ...models.CartItem) *models.Cart {
	return &models.Cart{SessionID: sessionID, Items: items}
}

func (suite *CartServiceTestSuite) TestGet_EmptyWhenMissing() {
	suite.cache.On("GetCart", suite.ctx, "s1").Return(nil, nil)

	cart, err := suite.service.Get(suite.ctx, "s1")

	suite.NoError(err)
	suite.Equal("s1", cart.SessionID)
	suite.Empty(cart.Items)
}

func (suite *CartServiceTestSuite) TestGet_FailSoftOnStoreError() {
	suite.cache.On("GetCart", suite.ctx, "s1").Return(nil, errors.New("connection refused"))

	cart, err := suite.service.Get(suite.ctx, "s1")

	suite.NoError(err)
	suite.Empty(cart.Items)
}

func (suite *CartServiceTestSuite) TestAdd_NewLine() {
	productID := uuid.New()
	suite.cache.On("GetCart", suite.ctx, "s1").Return(nil, nil)
	suite.cache.On("SetCart", suite.ctx, mock.AnythingOfType("*models.Cart")).Return(nil)

	cart, err := suite.service.Add(suite.ctx, "s1", models.CartItem{
		ProductID: productID,
		Name:      "Table pliante",
		PriceTTC:  12.5,
		Quantity:  2,
	})

	suite.NoError(err)
	suite.Len(cart.Items, 1)
	suite.Equal(2, cart.Items[0].Quantity)
}

func (suite *CartServiceTestSuite) TestAdd_MergesDuplicateProduct() {
	productID := uuid.New()
	existing := cartWith("s1", models.CartItem{ProductID: productID, Name: "Chaise", PriceTTC: 3, Quantity: 4})
	suite.cache.On("GetCart", suite.ctx, "s1").Return(existing, nil)
	suite.cache.On("SetCart", suite.ctx, mock.AnythingOfType("*models.Cart")).Return(nil)

	cart, err := suite.service.Add(suite.ctx, "s1", models.CartItem{ProductID: productID, Name: "Chaise", PriceTTC: 3, Quantity: 2})

	suite.NoError(err)
	suite.Len(cart.Items, 1)
	suite.Equal(6, cart.Items[0].Quantity)
}

func (suite *CartServiceTestSuite) TestAdd_RejectsZeroQuantity() {
	_, err := suite.service.Add(suite.ctx, "s1", models.CartItem{ProductID: uuid.New(), Quantity: 0})
	suite.Error(err)
}

func (suite *CartServiceTestSuite) TestRemove_AbsentProductIsNoOp() {
	existing := cartWith("s1", models.CartItem{ProductID: uuid.New(), Quantity: 1})
	suite.cache.On("GetCart", suite.ctx, "s1").Return(existing, nil)

	cart, err := suite.service.Remove(suite.ctx, "s1", uuid.New())

	suite.NoError(err)
	suite.Len(cart.Items, 1)
	suite.cache.AssertNotCalled(suite.T(), "SetCart", mock.Anything, mock.Anything)
}

func (suite *CartServiceTestSuite) TestUpdateQuantity_BelowOneRemovesLine() {
	productID := uuid.New()
	existing := cartWith("s1",
		models.CartItem{ProductID: productID, Quantity: 3},
		models.CartItem{ProductID: uuid.New(), Quantity: 1},
	)
	suite.cache.On("GetCart", suite.ctx, "s1").Return(existing, nil)
	suite.cache.On("SetCart", suite.ctx, mock.AnythingOfType("*models.Cart")).Return(nil)

	cart, err := suite.service.UpdateQuantity(suite.ctx, "s1", productID, 0)

	suite.NoError(err)
	suite.Len(cart.Items, 1)
	suite.NotEqual(productID, cart.Items[0].ProductID)
}

func (suite *CartServiceTestSuite) TestUpdateQuantity_UnknownProduct() {
	suite.cache.On("GetCart", suite.ctx, "s1").Return(nil, nil)

	_, err := suite.service.UpdateQuantity(suite.ctx, "s1", uuid.New(), 2)

	suite.Error(err)
}

func (suite *CartServiceTestSuite) TestSummary_CountsLinesAndQuantities() {
	existing := cartWith("s1",
		models.CartItem{ProductID: uuid.New(), PriceTTC: 10, Quantity: 2},
		models.CartItem{ProductID: uuid.New(), PriceTTC: 4.5, Quantity: 3},
	)
	suite.cache.On("GetCart", suite.ctx, "s1").Return(existing, nil)

	summary, err := suite.service.Summary(suite.ctx, "s1")

	suite.NoError(err)
	suite.Equal(2, summary.LineCount)
	suite.Equal(5, summary.TotalQuantity)
	suite.InDelta(33.5, summary.TotalTTC, 0.001)
}

func (suite *CartServiceTestSuite) TestClear_DeletesSessionCart() {
	suite.cache.On("DeleteCart", suite.ctx, "s1").Return(nil)

	suite.NoError(suite.service.Clear(suite.ctx, "s1"))
}
