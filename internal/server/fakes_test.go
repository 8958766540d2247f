package server

import (
	"context"

	"github.com/google/uuid"
	addressdomain "github.com/smallbiznis/coffeestore/internal/address/domain"
	auditdomain "github.com/smallbiznis/coffeestore/internal/audit/domain"
	clientdomain "github.com/smallbiznis/coffeestore/internal/client/domain"
	coffeedomain "github.com/smallbiznis/coffeestore/internal/coffee/domain"
	"github.com/stretchr/testify/mock"
)

type fakeCoffeeService struct {
	items           map[uuid.UUID]coffeedomain.Response
	err             error
	activateCalls   int
	inactivateCalls int
}

func newFakeCoffeeService() *fakeCoffeeService {
	return &fakeCoffeeService{items: map[uuid.UUID]coffeedomain.Response{}}
}

func (f *fakeCoffeeService) Create(ctx context.Context, req coffeedomain.CreateCoffeeRequest) (*coffeedomain.Response, error) {
	_ = ctx
	if f.err != nil {
		return nil, f.err
	}
	if !req.Size.Valid() {
		return nil, coffeedomain.ErrInvalidSize
	}
	id := uuid.New()
	resp := coffeedomain.Response{ID: id.String(), Name: req.Name, Size: req.Size, Price: coffeedomain.NewPrice(req.Price), Enabled: true}
	f.items[id] = resp
	return &resp, nil
}

func (f *fakeCoffeeService) FindAll(ctx context.Context) ([]coffeedomain.Response, error) {
	_ = ctx
	out := make([]coffeedomain.Response, 0, len(f.items))
	for _, item := range f.items {
		out = append(out, item)
	}
	return out, f.err
}

func (f *fakeCoffeeService) FindByID(ctx context.Context, id uuid.UUID) (*coffeedomain.Response, error) {
	_ = ctx
	if f.err != nil {
		return nil, f.err
	}
	item, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (f *fakeCoffeeService) Update(ctx context.Context, id uuid.UUID, req coffeedomain.UpdateCoffeeRequest) (*coffeedomain.Response, error) {
	_ = ctx
	item, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	item.Name, item.Size, item.Price = req.Name, req.Size, coffeedomain.NewPrice(req.Price)
	f.items[id] = item
	return &item, nil
}

func (f *fakeCoffeeService) Activate(ctx context.Context, id uuid.UUID) error {
	_ = ctx
	_ = id
	f.activateCalls++
	return f.err
}

func (f *fakeCoffeeService) Inactivate(ctx context.Context, id uuid.UUID) error {
	_ = ctx
	_ = id
	f.inactivateCalls++
	return f.err
}

type fakeClientService struct {
	items     map[uuid.UUID]clientdomain.Response
	addresses map[uuid.UUID][]addressdomain.Response
}

func newFakeClientService() *fakeClientService {
	return &fakeClientService{
		items:     map[uuid.UUID]clientdomain.Response{},
		addresses: map[uuid.UUID][]addressdomain.Response{},
	}
}

func (f *fakeClientService) Create(ctx context.Context, req clientdomain.CreateClientRequest) (*clientdomain.Response, error) {
	_ = ctx
	id := uuid.New()
	resp := clientdomain.Response{ID: id.String(), Name: req.Name, Email: req.Email, Enabled: true, Addresses: []addressdomain.Response{}}
	f.items[id] = resp
	return &resp, nil
}

func (f *fakeClientService) FindAll(ctx context.Context) ([]clientdomain.Response, error) {
	_ = ctx
	out := make([]clientdomain.Response, 0, len(f.items))
	for _, item := range f.items {
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeClientService) FindByID(ctx context.Context, id uuid.UUID) (*clientdomain.Response, error) {
	_ = ctx
	item, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (f *fakeClientService) Update(ctx context.Context, id uuid.UUID, req clientdomain.UpdateClientRequest) (*clientdomain.Response, error) {
	_ = ctx
	item, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	item.Name, item.Email = req.Name, req.Email
	f.items[id] = item
	return &item, nil
}

func (f *fakeClientService) Activate(ctx context.Context, id uuid.UUID) error {
	_ = ctx
	_ = id
	return nil
}

func (f *fakeClientService) Inactivate(ctx context.Context, id uuid.UUID) error {
	_ = ctx
	_ = id
	return nil
}

func (f *fakeClientService) FindAddresses(ctx context.Context, clientID uuid.UUID) ([]addressdomain.Response, error) {
	_ = ctx
	return f.addresses[clientID], nil
}

func (f *fakeClientService) AddAddress(ctx context.Context, clientID uuid.UUID, req addressdomain.CreateAddressRequest) (*addressdomain.Response, error) {
	_ = ctx
	if _, ok := f.items[clientID]; !ok {
		return nil, nil
	}
	resp := addressdomain.Response{ID: uuid.NewString(), Street: req.Street, City: req.City, ClientID: clientID.String()}
	f.addresses[clientID] = append(f.addresses[clientID], resp)
	return &resp, nil
}

type fakeAddressService struct {
	deleted []uuid.UUID
}

func (f *fakeAddressService) Create(ctx context.Context, clientID uuid.UUID, req addressdomain.CreateAddressRequest) (*addressdomain.Response, error) {
	_ = ctx
	_ = req
	return &addressdomain.Response{ID: uuid.NewString(), ClientID: clientID.String()}, nil
}

func (f *fakeAddressService) ListByClient(ctx context.Context, clientID uuid.UUID) ([]addressdomain.Response, error) {
	_ = ctx
	_ = clientID
	return nil, nil
}

func (f *fakeAddressService) ListByClients(ctx context.Context, clientIDs []uuid.UUID) (map[uuid.UUID][]addressdomain.Response, error) {
	_ = ctx
	_ = clientIDs
	return map[uuid.UUID][]addressdomain.Response{}, nil
}

func (f *fakeAddressService) DeleteByID(ctx context.Context, id uuid.UUID) error {
	_ = ctx
	f.deleted = append(f.deleted, id)
	return nil
}

type mockAuditService struct {
	mock.Mock
}

func (m *mockAuditService) AuditLog(ctx context.Context, action string, targetType string, targetID *string, metadata map[string]any) error {
	args := m.Called(ctx, action, targetType, targetID, metadata)
	return args.Error(0)
}

func (m *mockAuditService) ListByTarget(ctx context.Context, targetType, targetID string) ([]auditdomain.AuditLog, error) {
	args := m.Called(ctx, targetType, targetID)
	logs, _ := args.Get(0).([]auditdomain.AuditLog)
	return logs, args.Error(1)
}
