package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"festiloc/internal/models"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type QuoteRepoTestSuite struct {
	suite.Suite
	mock pgxmock.PgxPoolIface
	repo QuoteRepository
	ctx  context.Context
}

func (suite *QuoteRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewQuoteRepo(mock)
	suite.ctx = context.Background()
}

func (suite *QuoteRepoTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestQuoteRepoTestSuite(t *testing.T) {
	suite.Run(t, new(QuoteRepoTestSuite))
}

func sampleQuote() *models.QuoteRequest {
	quoteID := uuid.New()
	return &models.QuoteRequest{
		ID:        quoteID,
		FirstName: "Marie",
		LastName:  "Durand",
		Email:     "marie@example.com",
		Status:    models.QuoteStatusNew,
		Items: []models.QuoteRequestItem{
			{
				ID:             uuid.New(),
				QuoteRequestID: quoteID,
				ProductID:      uuid.New(),
				ProductName:    "Barnum 3x3",
				PriceTTC:       45,
				Quantity:       2,
			},
		},
	}
}

func (suite *QuoteRepoTestSuite) TestCreate_CommitsHeaderAndItems() {
	quote := sampleQuote()
	item := quote.Items[0]

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`INSERT INTO quote_requests`).
		WithArgs(quote.ID, quote.CustomerID, quote.FirstName, quote.LastName,
			quote.Email, quote.Phone, quote.EventDate, quote.Message, quote.Status).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	suite.mock.ExpectExec(`INSERT INTO quote_request_items`).
		WithArgs(item.ID, item.QuoteRequestID, item.ProductID,
			item.ProductName, item.PriceTTC, item.Quantity).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	suite.mock.ExpectCommit()
	suite.mock.ExpectRollback()

	err := suite.repo.Create(suite.ctx, quote)
	assert.NoError(suite.T(), err)
}

func (suite *QuoteRepoTestSuite) TestCreate_RollsBackOnItemFailure() {
	quote := sampleQuote()
	item := quote.Items[0]

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`INSERT INTO quote_requests`).
		WithArgs(quote.ID, quote.CustomerID, quote.FirstName, quote.LastName,
			quote.Email, quote.Phone, quote.EventDate, quote.Message, quote.Status).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	suite.mock.ExpectExec(`INSERT INTO quote_request_items`).
		WithArgs(item.ID, item.QuoteRequestID, item.ProductID,
			item.ProductName, item.PriceTTC, item.Quantity).
		WillReturnError(errors.New("foreign key violation"))
	suite.mock.ExpectRollback()

	err := suite.repo.Create(suite.ctx, quote)
	assert.Error(suite.T(), err)
}

func (suite *QuoteRepoTestSuite) TestUpdateStatus_Success() {
	id := uuid.New()
	suite.mock.ExpectExec(`UPDATE quote_requests SET status`).
		WithArgs(models.QuoteStatusQuoted, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := suite.repo.UpdateStatus(suite.ctx, id, models.QuoteStatusQuoted)
	assert.NoError(suite.T(), err)
}

func (suite *QuoteRepoTestSuite) TestList_WithStatusFilter() {
	rows := pgxmock.NewRows([]string{
		"id", "customer_id", "first_name", "last_name", "email", "phone",
		"event_date", "message", "status", "created_at", "updated_at",
	})
	now := time.Now()
	rows = rows.AddRow(
		uuid.New(), nil, "Marie", "Durand", "marie@example.com", nil,
		nil, nil, models.QuoteStatusNew, now, now,
	)
	suite.mock.ExpectQuery(`SELECT .+ FROM quote_requests WHERE status = \$1`).
		WithArgs(models.QuoteStatusNew, 20, 0).
		WillReturnRows(rows)

	quotes, err := suite.repo.List(suite.ctx, models.QuoteStatusNew, 20, 0)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), quotes, 1)
	assert.Equal(suite.T(), "Marie", quotes[0].FirstName)
}
