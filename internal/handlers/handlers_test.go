package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type testValidator struct {
	validator *validator.Validate
}

func (tv *testValidator) Validate(i interface{}) error {
	if err := tv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func assertBadRequest(t *testing.T, err error) {
	t.Helper()
	assert.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

// Malformed bodies must come back as 400s, never reach the service layer.
// The handlers below are built without dependencies so any slip past the
// request parsing would fail loudly.

func TestCreateCategory_MalformedBody(t *testing.T) {
	h := NewCategoryHandlers(nil, nil)
	c, _ := newTestContext(http.MethodPost, "/admin/categories", `{invalid`)

	assertBadRequest(t, h.CreateCategory(c))
}

func TestCreateCategory_MissingName(t *testing.T) {
	h := NewCategoryHandlers(nil, nil)
	c, _ := newTestContext(http.MethodPost, "/admin/categories", `{}`)

	assertBadRequest(t, h.CreateCategory(c))
}

func TestUpdateSubcategory_MalformedBody(t *testing.T) {
	h := NewCategoryHandlers(nil, nil)
	c, _ := newTestContext(http.MethodPut, "/admin/subcategories/x", `{invalid`)
	c.SetParamNames("id")
	c.SetParamValues("7c9e6679-7425-40de-944b-e07fc1f90ae7")

	assertBadRequest(t, h.UpdateSubcategory(c))
}

func TestCreateSubSubcategory_MalformedBody(t *testing.T) {
	h := NewCategoryHandlers(nil, nil)
	c, _ := newTestContext(http.MethodPost, "/admin/subsubcategories", `{invalid`)

	assertBadRequest(t, h.CreateSubSubcategory(c))
}

func TestCreateSubcategory_MissingParent(t *testing.T) {
	h := NewCategoryHandlers(nil, nil)
	c, _ := newTestContext(http.MethodPost, "/admin/subcategories", `{"name":"Tables"}`)

	assertBadRequest(t, h.CreateSubcategory(c))
}

func TestCreateAnnouncement_InvalidStartsAt(t *testing.T) {
	h := NewContentHandlers(nil)
	c, rec := newTestContext(http.MethodPost, "/admin/announcements",
		`{"message":"hello","starts_at":"not-a-date"}`)

	err := h.CreateAnnouncement(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "starts_at")
}

func TestUpdateAnnouncement_InvalidEndsAt(t *testing.T) {
	h := NewContentHandlers(nil)
	c, rec := newTestContext(http.MethodPut, "/admin/announcements/x",
		`{"message":"hello","ends_at":"2026-13-45"}`)
	c.SetParamNames("id")
	c.SetParamValues("7c9e6679-7425-40de-944b-e07fc1f90ae7")

	err := h.UpdateAnnouncement(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "ends_at")
}
