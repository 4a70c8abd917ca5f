package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"storefront/internal/delivery/http/validator"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCustomerUsecase is a canned-response CustomerUsecase for handler tests.
type stubCustomerUsecase struct {
	listOutput *usecase.CustomerListOutput
	registered *entity.Customer
	lastInput  *usecase.RegisterCustomerInput
	err        error
}

func (s *stubCustomerUsecase) List(ctx context.Context, page int) (*usecase.CustomerListOutput, error) {
	return s.listOutput, s.err
}

func (s *stubCustomerUsecase) Register(ctx context.Context, input *usecase.RegisterCustomerInput) (*entity.Customer, error) {
	s.lastInput = input

	return s.registered, s.err
}

func (s *stubCustomerUsecase) Profile(ctx context.Context, custNo int) (*usecase.CustomerProfileOutput, error) {
	return nil, s.err
}

func (s *stubCustomerUsecase) DeletePreview(ctx context.Context, custNo int) (*usecase.CustomerDeletePreview, error) {
	return nil, s.err
}

func (s *stubCustomerUsecase) Delete(ctx context.Context, custNo int) error {
	return s.err
}

func newCustomerHandlerTest(uc usecase.CustomerUsecase) *CustomerHandler {
	return NewCustomerHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCustomerHandler_List_JSONAccept(t *testing.T) {
	uc := &stubCustomerUsecase{
		listOutput: &usecase.CustomerListOutput{
			Customers:  []*entity.Customer{{CustNo: 1, Name: "Alice Smith"}},
			Page:       1,
			TotalPages: 1,
		},
	}
	h := newCustomerHandlerTest(uc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/customers", nil)
	req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body usecase.CustomerListOutput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Customers, 1)
	assert.Equal(t, "Alice Smith", body.Customers[0].Name)
}

func TestCustomerHandler_List_BrowserGetsEnvelope(t *testing.T) {
	uc := &stubCustomerUsecase{listOutput: &usecase.CustomerListOutput{Page: 1, TotalPages: 0}}
	h := newCustomerHandlerTest(uc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/customers", nil)
	req.Header.Set(echo.HeaderAccept, "text/html,application/xhtml+xml")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.List(c))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Contains(t, body, "data")
}

func TestCustomerHandler_Register_FormRedirects(t *testing.T) {
	uc := &stubCustomerUsecase{registered: &entity.Customer{CustNo: 42}}
	h := newCustomerHandlerTest(uc)

	form := url.Values{}
	form.Set("name", "Alice Smith")
	form.Set("email", "alice@example.com")
	form.Set("phone", "0123456789")
	form.Set("address", "1 Main Street")

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/customers/register", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/customers", rec.Header().Get(echo.HeaderLocation))
	require.NotNil(t, uc.lastInput)
	assert.Equal(t, "Alice Smith", uc.lastInput.Name)
	assert.Equal(t, "alice@example.com", uc.lastInput.Email)
}

func TestCustomerHandler_Register_MissingFieldRejected(t *testing.T) {
	uc := &stubCustomerUsecase{registered: &entity.Customer{CustNo: 42}}
	h := newCustomerHandlerTest(uc)

	form := url.Values{}
	form.Set("name", "Alice Smith")
	form.Set("phone", "0123456789")
	form.Set("address", "1 Main Street")

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/customers/register", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.lastInput)
}

func TestCustomerHandler_Profile_BadCustNo(t *testing.T) {
	h := newCustomerHandlerTest(&stubCustomerUsecase{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("cust_no")
	c.SetParamValues("abc")

	err := h.Profile(c)
	require.Error(t, err)
}
