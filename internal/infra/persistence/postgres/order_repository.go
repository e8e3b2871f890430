package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists the order row together with all its items.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("order references an unknown product or user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	for i := range orderM.Items {
		order.Items[i].ID = orderM.Items[i].ID
		order.Items[i].OrderID = orderM.Items[i].OrderID
		order.Items[i].CreatedAt = orderM.Items[i].CreatedAt
	}

	return nil
}

// FindByID retrieves an order with items hydrated (product, variant).
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Variant").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// ListByUser retrieves a user's orders, newest first, with pagination.
func (repo *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID, skip, limit int) ([]*entity.Order, error) {
	var models []model.OrderModel
	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Variant").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders by user")
	}

	return toOrderDomainSlice(models), nil
}

// CountByUser returns the number of orders placed by the user.
func (repo *orderRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders by user")
	}

	return count, nil
}

// ListAll retrieves all orders, newest first, with pagination.
func (repo *orderRepository) ListAll(ctx context.Context, skip, limit int) ([]*entity.Order, error) {
	var models []model.OrderModel
	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Variant").
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return toOrderDomainSlice(models), nil
}

// CountAll returns the total number of orders.
func (repo *orderRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.OrderModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}

// UpdateStatus transitions an order to the given status.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		UpdateColumn("status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for i := range data.Items {
		itemM := &data.Items[i]

		var variant *entity.ProductVariant
		if itemM.Variant != nil {
			v := toVariantDomain(itemM.Variant)
			variant = &v
		}

		items = append(items, entity.OrderItem{
			ID:        itemM.ID,
			OrderID:   itemM.OrderID,
			ProductID: itemM.ProductID,
			VariantID: itemM.VariantID,
			Product:   toProductDomain(itemM.Product),
			Variant:   variant,
			Quantity:  itemM.Quantity,
			UnitPrice: itemM.UnitPrice,
			CreatedAt: itemM.CreatedAt,
		})
	}

	return &entity.Order{
		ID:                  data.ID,
		UserID:              data.UserID,
		Status:              entity.OrderStatus(data.Status),
		Items:               items,
		DeliveryAddressText: data.DeliveryAddressText,
		DeliveryLat:         data.DeliveryLat,
		DeliveryLng:         data.DeliveryLng,
		DeliveryNote:        data.DeliveryNote,
		CreatedAt:           data.CreatedAt,
	}
}

func toOrderDomainSlice(models []model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(models))
	for i := range models {
		orders = append(orders, toOrderDomain(&models[i]))
	}

	return orders
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for i := range data.Items {
		items = append(items, model.OrderItemModel{
			ProductID: data.Items[i].ProductID,
			VariantID: data.Items[i].VariantID,
			Quantity:  data.Items[i].Quantity,
			UnitPrice: data.Items[i].UnitPrice,
		})
	}

	return &model.OrderModel{
		ID:                  data.ID,
		UserID:              data.UserID,
		Status:              string(data.Status),
		DeliveryAddressText: data.DeliveryAddressText,
		DeliveryLat:         data.DeliveryLat,
		DeliveryLng:         data.DeliveryLng,
		DeliveryNote:        data.DeliveryNote,
		Items:               items,
	}
}
