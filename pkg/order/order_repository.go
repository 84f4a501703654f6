package order

import (
	"context"

	"cooknextdoor/entities"

	"gorm.io/gorm"
)

type (
	OrderRepository interface {
		CreateOrder(ctx context.Context, order *entities.Order) error
		GetOrderByID(ctx context.Context, id string) (*entities.Order, error)
		UpdateOrder(ctx context.Context, order *entities.Order) error
		GetOrdersByBuyer(ctx context.Context, buyerID string) ([]*entities.Order, error)
		GetOrdersBySeller(ctx context.Context, sellerID string) ([]*entities.Order, error)
		CountOrders(ctx context.Context, ownerField, ownerID, status string) (int64, error)
		SumOrderTotals(ctx context.Context, ownerField, ownerID string) (float64, error)
	}

	orderRepository struct {
		db *gorm.DB
	}
)

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateOrder(ctx context.Context, order *entities.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id string) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) UpdateOrder(ctx context.Context, order *entities.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *orderRepository) GetOrdersByBuyer(ctx context.Context, buyerID string) ([]*entities.Order, error) {
	var orders []*entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Meal").
		Preload("Seller").
		Where("buyer_id = ?", buyerID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) GetOrdersBySeller(ctx context.Context, sellerID string) ([]*entities.Order, error) {
	var orders []*entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Meal").
		Preload("Buyer").
		Where("seller_id = ?", sellerID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// CountOrders counts a user's orders, optionally narrowed to one status.
// ownerField is either "buyer_id" or "seller_id".
func (r *orderRepository) CountOrders(ctx context.Context, ownerField, ownerID, status string) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entities.Order{}).
		Where(ownerField+" = ?", ownerID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *orderRepository) SumOrderTotals(ctx context.Context, ownerField, ownerID string) (float64, error) {
	var total float64
	if err := r.db.WithContext(ctx).Model(&entities.Order{}).
		Where(ownerField+" = ?", ownerID).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
