package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"order-management/internal/data/entity"
	"order-management/internal/dto/request"
	"order-management/pkg/media"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerService_UpdateAccount(t *testing.T) {
	t.Run("saves profile and replaces the picture", func(t *testing.T) {
		repo, store := newTestRepository(new(MockUserRepository), new(MockSessionRepository))
		userID := uuid.New()
		customer := store.addCustomer("alice", &userID)
		old := "profile_pics/old.png"
		customer.ProfilePic = &old

		files := &fakeMedia{}
		service := NewCustomerService(repo, files, testLogger())

		resp, err := service.UpdateAccount(context.Background(), userID, &request.CustomerRequest{
			Name:  " Alice Liddell ",
			Phone: "555-0100",
			Email: "alice@example.com",
			ProfilePic: &request.Upload{
				Filename: "me.png",
				Body:     strings.NewReader("png"),
			},
		})
		require.NoError(t, err)

		assert.Equal(t, "Alice Liddell", resp.Name)
		assert.Equal(t, "/media/profile_pics/me.png", resp.ProfilePicURL)
		assert.Equal(t, []string{"profile_pics/me.png"}, files.saved)
		assert.Equal(t, []string{old}, files.removed)
	})

	t.Run("rejects unsupported uploads", func(t *testing.T) {
		repo, store := newTestRepository(new(MockUserRepository), new(MockSessionRepository))
		userID := uuid.New()
		store.addCustomer("alice", &userID)

		service := NewCustomerService(repo, &fakeMedia{err: media.ErrUnsupportedType}, testLogger())
		_, err := service.UpdateAccount(context.Background(), userID, &request.CustomerRequest{
			Name:       "alice",
			ProfilePic: &request.Upload{Filename: "virus.exe", Body: strings.NewReader("MZ")},
		})

		ve, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, ve.Fields, "profile_pic")
	})

	t.Run("name is required", func(t *testing.T) {
		repo, store := newTestRepository(new(MockUserRepository), new(MockSessionRepository))
		userID := uuid.New()
		store.addCustomer("alice", &userID)

		service := NewCustomerService(repo, &fakeMedia{}, testLogger())
		_, err := service.UpdateAccount(context.Background(), userID, &request.CustomerRequest{Name: "   "})

		ve, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, ve.Fields, "name")
	})
}

func TestCustomerService_GetCustomerDetail(t *testing.T) {
	repo, store := newTestRepository(new(MockUserRepository), new(MockSessionRepository))
	alice := store.addCustomer("alice", nil)
	lamp := store.addProduct("Lamp")
	ball := store.addProduct("Ball")

	day := func(d int) time.Time { return time.Date(2024, 3, d, 15, 0, 0, 0, time.UTC) }
	store.addOrder(alice, lamp, entity.OrderStatusPending).CreatedAt = day(1)
	store.addOrder(alice, ball, entity.OrderStatusDelivered).CreatedAt = day(5)
	store.addOrder(alice, lamp, entity.OrderStatusDelivered).CreatedAt = day(10)

	service := NewCustomerService(repo, &fakeMedia{}, testLogger())
	ctx := context.Background()

	t.Run("no filter", func(t *testing.T) {
		detail, err := service.GetCustomerDetail(ctx, alice.ID.String(), &request.OrderFilterRequest{})
		require.NoError(t, err)
		assert.Equal(t, "alice", detail.Customer.Name)
		assert.Equal(t, int64(3), detail.OrdersCount)
		assert.Len(t, detail.Orders, 3)
		assert.Empty(t, detail.FilterErrors)
	})

	t.Run("status and product", func(t *testing.T) {
		detail, err := service.GetCustomerDetail(ctx, alice.ID.String(), &request.OrderFilterRequest{
			Status:    string(entity.OrderStatusDelivered),
			ProductID: lamp.ID.String(),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(3), detail.OrdersCount)
		require.Len(t, detail.Orders, 1)
		assert.Equal(t, "Lamp", detail.Orders[0].ProductName)
	})

	t.Run("end date is inclusive", func(t *testing.T) {
		detail, err := service.GetCustomerDetail(ctx, alice.ID.String(), &request.OrderFilterRequest{
			StartDate: "2024-03-05",
			EndDate:   "2024-03-10",
		})
		require.NoError(t, err)
		assert.Len(t, detail.Orders, 2)
	})

	t.Run("invalid filter is reported and ignored", func(t *testing.T) {
		detail, err := service.GetCustomerDetail(ctx, alice.ID.String(), &request.OrderFilterRequest{
			Status:    "Lost",
			StartDate: "yesterday",
		})
		require.NoError(t, err)
		assert.Contains(t, detail.FilterErrors, "status")
		assert.Contains(t, detail.FilterErrors, "start_date")
		assert.Len(t, detail.Orders, 3)
	})

	t.Run("unknown customer", func(t *testing.T) {
		_, err := service.GetCustomerDetail(ctx, uuid.NewString(), nil)
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = service.GetCustomerDetail(ctx, "not-a-uuid", nil)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestParseOrderFilter(t *testing.T) {
	filter, errs := parseOrderFilter(&request.OrderFilterRequest{
		Status:    "Pending",
		StartDate: "2024-05-01",
		EndDate:   "2024-05-03",
	})
	require.Empty(t, errs)
	assert.Equal(t, entity.OrderStatusPending, filter.Status)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), *filter.StartDate)
	assert.Equal(t, time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC), *filter.EndDate)

	filter, errs = parseOrderFilter(&request.OrderFilterRequest{EndDate: "03/05/2024"})
	assert.Contains(t, errs, "end_date")
	assert.Nil(t, filter.EndDate)
}
