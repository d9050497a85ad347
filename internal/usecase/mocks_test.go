package usecase

import (
	"context"
	"io"
	"sort"
	"sync"

	"order-management/internal/data/entity"
	"order-management/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) CreateWithCustomer(ctx context.Context, user *entity.User, customer *entity.Customer) error {
	args := m.Called(ctx, user, customer)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id uuid.UUID, role entity.UserRole) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}

// MockSessionRepository is a mock implementation of repository.SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *entity.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) FindValidSession(ctx context.Context, token uuid.UUID) (*entity.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Session), args.Error(1)
}

func (m *MockSessionRepository) Revoke(ctx context.Context, token uuid.UUID) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockSessionRepository) RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSessionRepository) CleanExpiredSessions(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// memStore backs the customer, product and order fakes with plain slices so
// the services can be exercised end to end without a database.
type memStore struct {
	mu        sync.Mutex
	customers []*entity.Customer
	products  []*entity.Product
	orders    []*entity.Order
}

func newTestRepository(users *MockUserRepository, sessions *MockSessionRepository) (*repository.Repository, *memStore) {
	store := &memStore{}
	return &repository.Repository{
		User:     users,
		Session:  sessions,
		Customer: &fakeCustomerRepo{store},
		Product:  &fakeProductRepo{store},
		Order:    &fakeOrderRepo{store},
	}, store
}

func (s *memStore) addCustomer(name string, userID *uuid.UUID) *entity.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := &entity.Customer{BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()}, UserID: userID, Name: name}
	s.customers = append(s.customers, c)
	return c
}

func (s *memStore) addProduct(name string) *entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := &entity.Product{ID: uuid.New(), Name: name, Category: entity.CategoryIndoor}
	s.products = append(s.products, p)
	return p
}

func (s *memStore) addOrder(customer *entity.Customer, product *entity.Product, status entity.OrderStatus) *entity.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := &entity.Order{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		CustomerID:   customer.ID,
		ProductID:    product.ID,
		Status:       status,
	}
	s.orders = append(s.orders, o)
	return o
}

func (s *memStore) order(id uuid.UUID) *entity.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			cp := *o
			return &cp
		}
	}
	return nil
}

func (s *memStore) detail(o *entity.Order) *entity.OrderDetail {
	d := &entity.OrderDetail{Order: *o}
	for _, c := range s.customers {
		if c.ID == o.CustomerID {
			d.CustomerName = c.Name
		}
	}
	for _, p := range s.products {
		if p.ID == o.ProductID {
			d.ProductName = p.Name
		}
	}
	return d
}

type fakeCustomerRepo struct{ s *memStore }

func (r *fakeCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *customer
	r.s.customers = append(r.s.customers, &cp)
	return nil
}

func (r *fakeCustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.customers {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.customers {
		if c.UserID != nil && *c.UserID == userID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) FindAll(ctx context.Context) ([]*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Customer, len(r.s.customers))
	for i, c := range r.s.customers {
		cp := *c
		out[i] = &cp
	}
	return out, nil
}

func (r *fakeCustomerRepo) CountAll(ctx context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.customers)), nil
}

func (r *fakeCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, c := range r.s.customers {
		if c.ID == customer.ID {
			cp := *customer
			r.s.customers[i] = &cp
			return nil
		}
	}
	return repository.ErrNoRows
}

type fakeProductRepo struct{ s *memStore }

func (r *fakeProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.products {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if offset >= len(r.s.products) {
		return nil, nil
	}
	end := min(offset+limit, len(r.s.products))
	return append([]*entity.Product(nil), r.s.products[offset:end]...), nil
}

func (r *fakeProductRepo) ListAll(ctx context.Context) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := append([]*entity.Product(nil), r.s.products...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeProductRepo) CountAll(ctx context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.products)), nil
}

type fakeOrderRepo struct{ s *memStore }

func (r *fakeOrderRepo) CreateMany(ctx context.Context, orders []*entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, o := range orders {
		cp := *o
		r.s.orders = append(r.s.orders, &cp)
	}
	return nil
}

func (r *fakeOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.OrderDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, o := range r.s.orders {
		if o.ID == id {
			return r.s.detail(o), nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) FindRecent(ctx context.Context, limit int) ([]*entity.OrderDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.OrderDetail
	for i := len(r.s.orders) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.s.detail(r.s.orders[i]))
	}
	return out, nil
}

func (r *fakeOrderRepo) FindByCustomerID(ctx context.Context, customerID uuid.UUID, filter entity.OrderFilter) ([]*entity.OrderDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.OrderDetail
	for _, o := range r.s.orders {
		switch {
		case o.CustomerID != customerID:
		case filter.Status != "" && o.Status != filter.Status:
		case filter.ProductID != uuid.Nil && o.ProductID != filter.ProductID:
		case filter.StartDate != nil && o.CreatedAt.Before(*filter.StartDate):
		case filter.EndDate != nil && !o.CreatedAt.Before(*filter.EndDate):
		default:
			out = append(out, r.s.detail(o))
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) CountByStatus(ctx context.Context, customerID *uuid.UUID) (entity.OrderStatusCounts, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var counts entity.OrderStatusCounts
	for _, o := range r.s.orders {
		if customerID != nil && o.CustomerID != *customerID {
			continue
		}
		counts.Total++
		switch o.Status {
		case entity.OrderStatusPending:
			counts.Pending++
		case entity.OrderStatusOutForDelivery:
			counts.OutForDelivery++
		case entity.OrderStatusDelivered:
			counts.Delivered++
		}
	}
	return counts, nil
}

func (r *fakeOrderRepo) Update(ctx context.Context, order *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, o := range r.s.orders {
		if o.ID == order.ID {
			cp := *order
			r.s.orders[i] = &cp
			return nil
		}
	}
	return repository.ErrNoRows
}

func (r *fakeOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, o := range r.s.orders {
		if o.ID == id {
			r.s.orders = append(r.s.orders[:i], r.s.orders[i+1:]...)
			return nil
		}
	}
	return repository.ErrNoRows
}

// fakeMedia records saved files instead of writing them.
type fakeMedia struct {
	saved   []string
	removed []string
	err     error
}

func (m *fakeMedia) Save(dir, filename string, body io.Reader) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	if _, err := io.ReadAll(body); err != nil {
		return "", err
	}
	rel := dir + "/" + filename
	m.saved = append(m.saved, rel)
	return rel, nil
}

func (m *fakeMedia) Remove(rel string) error {
	m.removed = append(m.removed, rel)
	return nil
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
