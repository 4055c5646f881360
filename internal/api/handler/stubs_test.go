package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/orderdesk/orders-api/internal/core/ports"
)

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type stubAuthService struct {
	registerFn func(ctx context.Context, username, email, password string) (*ports.AuthResult, error)
	loginFn    func(ctx context.Context, email, password string) (*ports.AuthResult, error)
}

func (s *stubAuthService) Register(ctx context.Context, username, email, password string) (*ports.AuthResult, error) {
	return s.registerFn(ctx, username, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

type stubClientService struct {
	listFn   func(ctx context.Context) ([]ports.ClientDTO, error)
	getFn    func(ctx context.Context, id string) (*ports.ClientDTO, error)
	createFn func(ctx context.Context, input ports.ClientInput) (*ports.ClientDTO, error)
	updateFn func(ctx context.Context, id string, input ports.ClientInput) error
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubClientService) List(ctx context.Context) ([]ports.ClientDTO, error) {
	return s.listFn(ctx)
}

func (s *stubClientService) Get(ctx context.Context, id string) (*ports.ClientDTO, error) {
	return s.getFn(ctx, id)
}

func (s *stubClientService) Create(ctx context.Context, input ports.ClientInput) (*ports.ClientDTO, error) {
	return s.createFn(ctx, input)
}

func (s *stubClientService) Update(ctx context.Context, id string, input ports.ClientInput) error {
	return s.updateFn(ctx, id, input)
}

func (s *stubClientService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

type stubOrderService struct {
	listFn         func(ctx context.Context) ([]ports.OrderDTO, error)
	getFn          func(ctx context.Context, id string) (*ports.OrderDTO, error)
	listByClientFn func(ctx context.Context, clientID string) ([]ports.OrderDTO, error)
	createFn       func(ctx context.Context, input ports.CreateOrderInput) (*ports.OrderDTO, error)
	updateFn       func(ctx context.Context, id string, input ports.UpdateOrderInput) error
	deleteFn       func(ctx context.Context, id string) error
}

func (s *stubOrderService) List(ctx context.Context) ([]ports.OrderDTO, error) {
	return s.listFn(ctx)
}

func (s *stubOrderService) Get(ctx context.Context, id string) (*ports.OrderDTO, error) {
	return s.getFn(ctx, id)
}

func (s *stubOrderService) ListByClient(ctx context.Context, clientID string) ([]ports.OrderDTO, error) {
	return s.listByClientFn(ctx, clientID)
}

func (s *stubOrderService) Create(ctx context.Context, input ports.CreateOrderInput) (*ports.OrderDTO, error) {
	return s.createFn(ctx, input)
}

func (s *stubOrderService) Update(ctx context.Context, id string, input ports.UpdateOrderInput) error {
	return s.updateFn(ctx, id, input)
}

func (s *stubOrderService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}
