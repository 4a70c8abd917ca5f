package handler

import (
	"context"
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

// stubProductUsecase is a canned-response ProductUsecase for handler tests.
type stubProductUsecase struct {
	registered   *entity.Product
	lastRegister *usecase.RegisterProductInput
	lastUpdate   *usecase.UpdateProductInput
	err          error
}

func (s *stubProductUsecase) List(ctx context.Context, page int) (*usecase.ProductListOutput, error) {
	return nil, s.err
}

func (s *stubProductUsecase) Storefront(ctx context.Context, page int) (*usecase.ProductListOutput, error) {
	return nil, s.err
}

func (s *stubProductUsecase) Register(ctx context.Context, input *usecase.RegisterProductInput) (*entity.Product, error) {
	s.lastRegister = input

	return s.registered, s.err
}

func (s *stubProductUsecase) Get(ctx context.Context, sku string) (*entity.Product, error) {
	return nil, s.err
}

func (s *stubProductUsecase) Update(ctx context.Context, sku string, input *usecase.UpdateProductInput) error {
	s.lastUpdate = input

	return s.err
}

func (s *stubProductUsecase) DeletePreview(ctx context.Context, sku string) (*usecase.ProductDeletePreview, error) {
	return nil, s.err
}

func (s *stubProductUsecase) Delete(ctx context.Context, sku string) error {
	return s.err
}

func newProductHandlerTest(uc usecase.ProductUsecase) *ProductHandler {
	return NewProductHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func postForm(e *echo.Echo, target string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestProductHandler_Register_FormRedirects(t *testing.T) {
	uc := &stubProductUsecase{registered: &entity.Product{SKU: "SKU1"}}
	h := newProductHandlerTest(uc)

	form := url.Values{}
	form.Set("sku", "SKU1")
	form.Set("name", "Widget")
	form.Set("description", "A widget")
	form.Set("price", "9.99")

	e := echo.New()
	e.Validator = validator.New()
	c, rec := postForm(e, "/product/register", form)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/products", rec.Header().Get(echo.HeaderLocation))
	require.NotNil(t, uc.lastRegister)
	assert.Equal(t, "SKU1", uc.lastRegister.SKU)
	assert.Equal(t, "9.99", uc.lastRegister.Price)
}

func TestProductHandler_Register_MissingFieldRejected(t *testing.T) {
	uc := &stubProductUsecase{registered: &entity.Product{SKU: "SKU1"}}
	h := newProductHandlerTest(uc)

	form := url.Values{}
	form.Set("sku", "SKU1")
	form.Set("name", "Widget")
	form.Set("price", "9.99")

	e := echo.New()
	e.Validator = validator.New()
	c, rec := postForm(e, "/product/register", form)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.lastRegister)
}

func TestProductHandler_Edit_FormBindsSubmittedFieldsOnly(t *testing.T) {
	uc := &stubProductUsecase{}
	h := newProductHandlerTest(uc)

	form := url.Values{}
	form.Set("price", "19.5")

	e := echo.New()
	c, rec := postForm(e, "/products/SKU1/edit", form)
	c.SetParamNames("sku")
	c.SetParamValues("SKU1")

	require.NoError(t, h.Edit(c))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/products", rec.Header().Get(echo.HeaderLocation))
	require.NotNil(t, uc.lastUpdate)
	require.NotNil(t, uc.lastUpdate.Price)
	assert.Equal(t, "19.5", *uc.lastUpdate.Price)
	assert.Nil(t, uc.lastUpdate.Description)
}
