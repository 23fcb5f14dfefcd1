package handlers

import (
	"net/http"
	"time"

	"festiloc/internal/common"
	"festiloc/internal/services"

	"github.com/labstack/echo/v4"
)

// QuoteHandlers covers both sides of the quote workflow: the public
// submission form and the back-office follow-up.
type QuoteHandlers struct {
	quoteService services.QuoteService
}

func NewQuoteHandlers(quoteService services.QuoteService) *QuoteHandlers {
	return &QuoteHandlers{quoteService: quoteService}
}

type submitQuoteRequest struct {
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	Phone     *string `json:"phone"`
	EventDate *string `json:"event_date"`
	Message   *string `json:"message"`
}

// SubmitQuote handles POST /quotes: the cart becomes a quote request.
func (h *QuoteHandlers) SubmitQuote(c echo.Context) error {
	session, err := sessionID(c)
	if err != nil {
		return err
	}

	var req submitQuoteRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendClientError(c, err.Error())
	}

	input := services.SubmitQuoteInput{
		SessionID: session,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
	}
	if req.EventDate != nil && *req.EventDate != "" {
		eventDate, err := time.Parse("2006-01-02", *req.EventDate)
		if err != nil {
			return common.SendValidationError(c, "event_date", "expected YYYY-MM-DD")
		}
		input.EventDate = &eventDate
	}

	quote, err := h.quoteService.Submit(c.Request().Context(), input)
	if err != nil {
		return common.SendClientError(c, err.Error())
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Quote request submitted successfully",
		"quote":   quote,
	})
}

// ListQuotes handles GET /admin/quotes?status=
func (h *QuoteHandlers) ListQuotes(c echo.Context) error {
	limit, offset := common.ParsePaginationParams(c, 20)
	status := c.QueryParam("status")

	quotes, err := h.quoteService.List(c.Request().Context(), status, limit, offset)
	if err != nil {
		return common.SendServerError(c, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"quotes": quotes,
		"limit":  limit,
		"offset": offset,
	})
}

// GetQuote handles GET /admin/quotes/:id
func (h *QuoteHandlers) GetQuote(c echo.Context) error {
	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	quote, err := h.quoteService.Get(c.Request().Context(), id)
	if err != nil {
		return common.SendNotFoundError(c, "Quote request")
	}
	return c.JSON(http.StatusOK, quote)
}

type updateQuoteStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateQuoteStatus handles PUT /admin/quotes/:id/status
func (h *QuoteHandlers) UpdateQuoteStatus(c echo.Context) error {
	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	var req updateQuoteStatusRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendClientError(c, err.Error())
	}

	if err := h.quoteService.UpdateStatus(c.Request().Context(), id, req.Status); err != nil {
		return common.SendClientError(c, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Quote status updated"})
}

// DeleteQuote handles DELETE /admin/quotes/:id
func (h *QuoteHandlers) DeleteQuote(c echo.Context) error {
	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}
	if err := h.quoteService.Delete(c.Request().Context(), id); err != nil {
		return common.SendServerError(c, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Quote request deleted"})
}
