package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestOrderService(t *testing.T) (
	usecase.OrderUsecase,
	*mockRepo.MockTransactionManager,
	*mockRepo.MockOrderRepository,
	*mockSvc.MockEventPublisher,
	*mockSvc.MockQRCodeService,
) {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	orderService := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		Publisher: publisher,
		QRService: qrService,
		Logger:    logger,
	})

	return orderService, txManager, orderRepo, publisher, qrService
}

// passthroughTx wires the mock transaction manager to run the callback
// against the given factory, standing in for a real transaction.
func passthroughTx(txManager *mockRepo.MockTransactionManager, ctx context.Context, factory *mockRepo.MockRepositoryFactory) {
	txManager.EXPECT().Execute(ctx, mock.Anything).RunAndReturn(
		func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	orderService, txManager, orderRepo, publisher, _ := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	adminID := uuid.New()
	productID := uuid.New()
	variantID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)

	passthroughTx(txManager, ctx, factory)
	factory.EXPECT().ProductRepo().Return(productRepo)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	factory.EXPECT().UserRepo().Return(userRepo)
	factory.EXPECT().NotificationRepo().Return(notificationRepo)

	product := &entity.Product{
		ID:    productID,
		Price: 4.5,
		Variants: []entity.ProductVariant{
			{ID: variantID, ProductID: productID, Name: "Large", Price: 5.5},
		},
	}
	productRepo.EXPECT().FindByID(ctx, productID).Return(product, nil)
	productRepo.EXPECT().IncrementSold(ctx, productID, 2).Return(nil)

	txOrderRepo.EXPECT().Create(ctx, mock.Anything).Run(func(_ context.Context, order *entity.Order) {
		assert.Equal(t, entity.OrderStatusPending, order.Status)
		require.Len(t, order.Items, 1)
		// The variant price is snapshotted, not the base product price.
		assert.Equal(t, 5.5, order.Items[0].UnitPrice)
		assert.Equal(t, 2, order.Items[0].Quantity)
		order.ID = orderID
	}).Return(nil)

	userRepo.EXPECT().ListAdmins(ctx).Return([]*entity.User{{ID: adminID, IsAdmin: true}}, nil)
	notificationRepo.EXPECT().Create(ctx, mock.Anything).Run(func(_ context.Context, notification *entity.Notification) {
		assert.Equal(t, adminID, notification.RecipientID)
		assert.Equal(t, entity.NotificationTypeNewOrder, notification.Type)
		assert.Equal(t, orderID.String(), notification.Data["order_id"])
	}).Return(nil)

	hydrated := &entity.Order{
		ID:     orderID,
		UserID: userID,
		Status: entity.OrderStatusPending,
		Items:  []entity.OrderItem{{ProductID: productID, Quantity: 2, UnitPrice: 5.5}},
	}
	orderRepo.EXPECT().FindByID(ctx, orderID).Return(hydrated, nil)

	publisher.EXPECT().PublishOrderCreated(ctx, mock.Anything).Run(func(_ context.Context, event *service.OrderCreatedEvent) {
		assert.Equal(t, orderID.String(), event.OrderID)
		assert.Equal(t, 1, event.ItemCount)
		assert.Equal(t, 11.0, event.Total)
	}).Return(nil)

	order, err := orderService.CreateOrder(ctx, userID, &usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{
			{ProductID: productID, VariantID: &variantID, Quantity: 2},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
}

func TestOrderService_CreateOrder_EmptyAndNonPositiveQuantity(t *testing.T) {
	orderService, _, _, _, _ := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	_, err := orderService.CreateOrder(ctx, userID, &usecase.CreateOrderInput{})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	_, err = orderService.CreateOrder(ctx, userID, &usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{{ProductID: uuid.New(), Quantity: 0}},
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestOrderService_CreateOrder_UnknownProduct(t *testing.T) {
	orderService, txManager, _, _, _ := createTestOrderService(t)

	ctx := context.Background()
	productID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	passthroughTx(txManager, ctx, factory)
	factory.EXPECT().ProductRepo().Return(productRepo)
	productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	order, err := orderService.CreateOrder(ctx, uuid.New(), &usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{{ProductID: productID, Quantity: 1}},
	})

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestOrderService_CreateOrder_ForeignVariant(t *testing.T) {
	orderService, txManager, _, _, _ := createTestOrderService(t)

	ctx := context.Background()
	productID := uuid.New()
	foreignVariantID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	passthroughTx(txManager, ctx, factory)
	factory.EXPECT().ProductRepo().Return(productRepo)
	productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID, Price: 4.5}, nil)

	order, err := orderService.CreateOrder(ctx, uuid.New(), &usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{{ProductID: productID, VariantID: &foreignVariantID, Quantity: 1}},
	})

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestOrderService_CreateOrder_PublishFailureDoesNotFailOrder(t *testing.T) {
	orderService, txManager, orderRepo, publisher, _ := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	productID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)

	passthroughTx(txManager, ctx, factory)
	factory.EXPECT().ProductRepo().Return(productRepo)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	factory.EXPECT().UserRepo().Return(userRepo)
	factory.EXPECT().NotificationRepo().Return(notificationRepo)

	productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID, Price: 3.0}, nil)
	productRepo.EXPECT().IncrementSold(ctx, productID, 1).Return(nil)
	txOrderRepo.EXPECT().Create(ctx, mock.Anything).Run(func(_ context.Context, order *entity.Order) {
		order.ID = orderID
	}).Return(nil)
	userRepo.EXPECT().ListAdmins(ctx).Return(nil, nil)

	orderRepo.EXPECT().FindByID(ctx, orderID).Return(&entity.Order{ID: orderID, UserID: userID}, nil)
	publisher.EXPECT().PublishOrderCreated(ctx, mock.Anything).Return(errors.New("broker unavailable"))

	order, err := orderService.CreateOrder(ctx, userID, &usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{{ProductID: productID, Quantity: 1}},
	})

	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
}

func TestOrderService_GetOrder_ForeignOrderHiddenFromNonAdmin(t *testing.T) {
	orderService, _, orderRepo, _, _ := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	ownerID := uuid.New()
	strangerID := uuid.New()

	orderRepo.EXPECT().FindByID(ctx, orderID).Return(&entity.Order{ID: orderID, UserID: ownerID}, nil).Twice()

	_, err := orderService.GetOrder(ctx, strangerID, false, orderID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)

	order, err := orderService.GetOrder(ctx, strangerID, true, orderID)
	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
}

func TestOrderService_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	orderService, _, _, _, _ := createTestOrderService(t)

	order, err := orderService.UpdateStatus(context.Background(), uuid.New(), "shipped")

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestOrderService_UpdateStatus_Success(t *testing.T) {
	orderService, _, orderRepo, _, _ := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	orderRepo.EXPECT().UpdateStatus(ctx, orderID, entity.OrderStatusDelivered).Return(nil)
	orderRepo.EXPECT().FindByID(ctx, orderID).Return(&entity.Order{ID: orderID, Status: entity.OrderStatusDelivered}, nil)

	order, err := orderService.UpdateStatus(ctx, orderID, "delivered")

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, order.Status)
}

func TestOrderService_ListMyOrders_Pagination(t *testing.T) {
	orderService, _, orderRepo, _, _ := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	orderRepo.EXPECT().ListByUser(ctx, userID, 0, 10).Return([]*entity.Order{{ID: uuid.New()}}, nil)
	orderRepo.EXPECT().CountByUser(ctx, userID).Return(int64(25), nil)

	page, err := orderService.ListMyOrders(ctx, userID, 0, 10)

	require.NoError(t, err)
	assert.Equal(t, int64(25), page.Total)
	require.NotNil(t, page.NextSkip)
	assert.Equal(t, 10, *page.NextSkip)
}

func TestOrderService_OrderQR_OwnerOnly(t *testing.T) {
	orderService, _, orderRepo, _, qrService := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	ownerID := uuid.New()

	orderRepo.EXPECT().FindByID(ctx, orderID).Return(&entity.Order{ID: orderID, UserID: ownerID}, nil)
	qrService.EXPECT().GenerateOrderQR(orderID).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := orderService.OrderQR(ctx, ownerID, false, orderID)

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
