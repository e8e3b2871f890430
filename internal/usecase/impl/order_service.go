package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	publisher service.EventPublisher
	qrService service.QRCodeService
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	QRService service.QRCodeService
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		publisher: params.Publisher,
		qrService: params.QRService,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder places an order. Line validation, price snapshots, sold
// counter bumps, the order graph and every admin notification commit in
// a single transaction; any failure leaves no partial writes behind.
func (srv *orderService) CreateOrder(ctx context.Context, userID uuid.UUID, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("order must contain at least one item")
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, domainerrors.ErrInvalidInput.WrapMessage("item quantity must be greater than zero")
		}
	}

	order := &entity.Order{
		UserID:              userID,
		Status:              entity.OrderStatusPending,
		DeliveryAddressText: input.DeliveryAddressText,
		DeliveryLat:         input.DeliveryLat,
		DeliveryLng:         input.DeliveryLng,
		DeliveryNote:        input.DeliveryNote,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		for _, line := range input.Items {
			product, err := productRepo.FindByID(ctx, line.ProductID)
			if err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					return domainerrors.ErrProductNotFound.WrapMessage(
						fmt.Sprintf("product %s does not exist", line.ProductID))
				}

				return errors.Wrap(err, "failed to find product")
			}

			// The unit price snapshot: the variant price when a variant is
			// ordered, the product price otherwise. Never recomputed later.
			unitPrice := product.Price
			if line.VariantID != nil {
				variant := product.VariantByID(*line.VariantID)
				if variant == nil {
					return domainerrors.ErrInvalidInput.WrapMessage(
						fmt.Sprintf("variant %s does not belong to product %s", *line.VariantID, line.ProductID))
				}
				unitPrice = variant.Price
			}

			if err := productRepo.IncrementSold(ctx, line.ProductID, line.Quantity); err != nil {
				return errors.Wrap(err, "failed to increment sold count")
			}

			order.Items = append(order.Items, entity.OrderItem{
				ProductID: line.ProductID,
				VariantID: line.VariantID,
				Quantity:  line.Quantity,
				UnitPrice: unitPrice,
			})
		}

		if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		// One notification per admin, in the same transaction as the order.
		admins, err := repoFactory.UserRepo().ListAdmins(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list admins")
		}
		notificationRepo := repoFactory.NotificationRepo()
		for _, admin := range admins {
			notification := &entity.Notification{
				RecipientID: admin.ID,
				Type:        entity.NotificationTypeNewOrder,
				Title:       "New order received",
				Body:        fmt.Sprintf("Order %s was placed", order.ID),
				Data:        map[string]any{"order_id": order.ID.String()},
			}
			if err := notificationRepo.Create(ctx, notification); err != nil {
				return errors.Wrap(err, "failed to create admin notification")
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute order transaction",
			slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	hydrated, err := srv.orderRepo.FindByID(ctx, order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload created order")
	}

	// Best-effort post-commit event; a failed publish never fails the order.
	srv.publishOrderCreated(ctx, hydrated)

	srv.log(ctx).Info("Order created",
		slog.Any("orderID", order.ID),
		slog.Any("userID", userID),
		slog.Int("items", len(hydrated.Items)),
	)

	return hydrated, nil
}

func (srv *orderService) publishOrderCreated(ctx context.Context, order *entity.Order) {
	var total float64
	for _, item := range order.Items {
		total += item.UnitPrice * float64(item.Quantity)
	}

	event := &service.OrderCreatedEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:   order.ID.String(),
		UserID:    order.UserID.String(),
		ItemCount: len(order.Items),
		Total:     total,
	}

	if err := srv.publisher.PublishOrderCreated(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order created event",
			slog.Any("orderID", order.ID), slog.Any("error", err))
	}
}

// GetOrder returns the hydrated order. Foreign orders are indistinguishable
// from missing ones for non-admin callers.
func (srv *orderService) GetOrder(ctx context.Context, requesterID uuid.UUID, isAdmin bool, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if !isAdmin && order.UserID != requesterID {
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

// ListMyOrders returns one page of the user's orders.
func (srv *orderService) ListMyOrders(ctx context.Context, userID uuid.UUID, skip, limit int) (*usecase.OrderPage, error) {
	skip, limit = normalizePage(skip, limit)

	orders, err := srv.orderRepo.ListByUser(ctx, userID, skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	total, err := srv.orderRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders")
	}

	return &usecase.OrderPage{
		Orders:   orders,
		Total:    total,
		NextSkip: usecase.NextSkip(skip, limit, total),
	}, nil
}

// ListAllOrders returns one page across every user (admin listing).
func (srv *orderService) ListAllOrders(ctx context.Context, skip, limit int) (*usecase.OrderPage, error) {
	skip, limit = normalizePage(skip, limit)

	orders, err := srv.orderRepo.ListAll(ctx, skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	total, err := srv.orderRepo.CountAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders")
	}

	return &usecase.OrderPage{
		Orders:   orders,
		Total:    total,
		NextSkip: usecase.NextSkip(skip, limit, total),
	}, nil
}

// UpdateStatus transitions an order; only the canonical lowercase status
// set passes validation.
func (srv *orderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) (*entity.Order, error) {
	newStatus := entity.OrderStatus(status)
	if !newStatus.Valid() {
		return nil, domainerrors.ErrInvalidInput.WrapMessage(
			fmt.Sprintf("unknown order status %q", status))
	}

	if err := srv.orderRepo.UpdateStatus(ctx, orderID, newStatus); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to update order status")
	}

	srv.log(ctx).Info("Order status updated",
		slog.Any("orderID", orderID), slog.String("status", status))

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload order")
	}

	return order, nil
}

// OrderQR renders the pickup QR code PNG for the order.
func (srv *orderService) OrderQR(ctx context.Context, requesterID uuid.UUID, isAdmin bool, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.GetOrder(ctx, requesterID, isAdmin, orderID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateOrderQR(order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate order QR code")
	}

	return png, nil
}
