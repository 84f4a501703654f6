package order

import (
	"context"
	"errors"
	"log"

	"cooknextdoor/domain"
	"cooknextdoor/entities"
	"cooknextdoor/internal/utils/mailing"
	"cooknextdoor/pkg/meal"
	"cooknextdoor/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	OrderService interface {
		PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest, userID string) (domain.OrderResponse, error)
		UpdateOrderStatus(ctx context.Context, id string, req domain.UpdateOrderStatusRequest, userID string) (domain.OrderResponse, error)
		GetOrdersByBuyer(ctx context.Context, userID string) ([]domain.OrderResponse, error)
		GetOrdersBySeller(ctx context.Context, userID string) ([]domain.OrderResponse, error)
		GetSellerDashboard(ctx context.Context, userID string) (domain.SellerDashboardResponse, error)
		GetBuyerDashboard(ctx context.Context, userID string) (domain.BuyerDashboardResponse, error)
	}

	orderService struct {
		orderRepository OrderRepository
		mealRepository  meal.MealRepository
		userRepository  user.UserRepository
	}
)

func NewOrderService(
	orderRepository OrderRepository,
	mealRepository meal.MealRepository,
	userRepository user.UserRepository,
) OrderService {
	return &orderService{
		orderRepository: orderRepository,
		mealRepository:  mealRepository,
		userRepository:  userRepository,
	}
}

func (s *orderService) PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest, userID string) (domain.OrderResponse, error) {
	buyerUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.OrderResponse{}, domain.ErrParseUUID
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return domain.OrderResponse{}, domain.ErrInvalidQuantity
	}

	mealItem, err := s.mealRepository.GetMealByID(ctx, req.MealID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderResponse{}, domain.ErrMealNotFound
		}
		return domain.OrderResponse{}, err
	}

	// Price and seller are captured here once. Later meal edits never touch
	// existing orders.
	order := &entities.Order{
		ID:         uuid.New(),
		BuyerID:    buyerUUID,
		SellerID:   mealItem.SellerID,
		MealID:     mealItem.ID,
		Quantity:   quantity,
		TotalPrice: mealItem.Price * float64(quantity),
		Status:     entities.OrderStatusPending,
	}

	if err := s.orderRepository.CreateOrder(ctx, order); err != nil {
		return domain.OrderResponse{}, err
	}

	s.notifySeller(ctx, order, mealItem)

	order.Meal = mealItem
	return orderResponse(order), nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, id string, req domain.UpdateOrderStatusRequest, userID string) (domain.OrderResponse, error) {
	if !entities.ValidOrderStatus(req.Status) {
		return domain.OrderResponse{}, domain.ErrInvalidOrderStatus
	}

	order, err := s.orderRepository.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderResponse{}, domain.ErrOrderNotFound
		}
		return domain.OrderResponse{}, err
	}

	if !domain.Owns(userID, order) {
		return domain.OrderResponse{}, domain.ErrNotAuthorized
	}

	order.Status = req.Status
	if err := s.orderRepository.UpdateOrder(ctx, order); err != nil {
		return domain.OrderResponse{}, err
	}

	return orderResponse(order), nil
}

func (s *orderService) GetOrdersByBuyer(ctx context.Context, userID string) ([]domain.OrderResponse, error) {
	orders, err := s.orderRepository.GetOrdersByBuyer(ctx, userID)
	if err != nil {
		return nil, err
	}
	return orderResponses(orders), nil
}

func (s *orderService) GetOrdersBySeller(ctx context.Context, userID string) ([]domain.OrderResponse, error) {
	orders, err := s.orderRepository.GetOrdersBySeller(ctx, userID)
	if err != nil {
		return nil, err
	}
	return orderResponses(orders), nil
}

func (s *orderService) GetSellerDashboard(ctx context.Context, userID string) (domain.SellerDashboardResponse, error) {
	var res domain.SellerDashboardResponse
	var err error

	if res.TotalMeals, err = s.mealRepository.CountMealsBySeller(ctx, userID); err != nil {
		return res, err
	}
	if res.TotalOrders, err = s.orderRepository.CountOrders(ctx, "seller_id", userID, ""); err != nil {
		return res, err
	}
	if res.PendingOrders, err = s.orderRepository.CountOrders(ctx, "seller_id", userID, entities.OrderStatusPending); err != nil {
		return res, err
	}
	if res.ConfirmedOrders, err = s.orderRepository.CountOrders(ctx, "seller_id", userID, entities.OrderStatusConfirmed); err != nil {
		return res, err
	}
	if res.DeliveredOrders, err = s.orderRepository.CountOrders(ctx, "seller_id", userID, entities.OrderStatusDelivered); err != nil {
		return res, err
	}
	if res.TotalRevenue, err = s.orderRepository.SumOrderTotals(ctx, "seller_id", userID); err != nil {
		return res, err
	}
	return res, nil
}

func (s *orderService) GetBuyerDashboard(ctx context.Context, userID string) (domain.BuyerDashboardResponse, error) {
	var res domain.BuyerDashboardResponse
	var err error

	if res.TotalOrders, err = s.orderRepository.CountOrders(ctx, "buyer_id", userID, ""); err != nil {
		return res, err
	}
	if res.PendingOrders, err = s.orderRepository.CountOrders(ctx, "buyer_id", userID, entities.OrderStatusPending); err != nil {
		return res, err
	}
	if res.ConfirmedOrders, err = s.orderRepository.CountOrders(ctx, "buyer_id", userID, entities.OrderStatusConfirmed); err != nil {
		return res, err
	}
	if res.DeliveredOrders, err = s.orderRepository.CountOrders(ctx, "buyer_id", userID, entities.OrderStatusDelivered); err != nil {
		return res, err
	}
	if res.TotalSpent, err = s.orderRepository.SumOrderTotals(ctx, "buyer_id", userID); err != nil {
		return res, err
	}
	return res, nil
}

// notifySeller sends a best-effort mail; a failed or unconfigured mailer never
// fails the order.
func (s *orderService) notifySeller(ctx context.Context, order *entities.Order, mealItem *entities.Meal) {
	seller, err := s.userRepository.GetUserByID(ctx, order.SellerID.String())
	if err != nil {
		return
	}

	go func() {
		if err := mailing.SendOrderNotification(seller.Email, mealItem.Name, order.Quantity, order.TotalPrice); err != nil {
			log.Printf("order notification mail failed: %v", err)
		}
	}()
}

func orderResponse(o *entities.Order) domain.OrderResponse {
	res := domain.OrderResponse{
		ID:         o.ID.String(),
		BuyerID:    o.BuyerID.String(),
		SellerID:   o.SellerID.String(),
		Quantity:   o.Quantity,
		TotalPrice: o.TotalPrice,
		Status:     o.Status,
		CreatedAt:  o.CreatedAt,
	}
	if o.Meal != nil {
		res.Meal = &domain.OrderMealResponse{
			ID:    o.Meal.ID.String(),
			Name:  o.Meal.Name,
			Price: o.Meal.Price,
		}
	}
	if o.Buyer != nil {
		res.Buyer = &domain.OrderPartyResponse{
			ID:   o.Buyer.ID.String(),
			Name: o.Buyer.Name,
		}
	}
	if o.Seller != nil {
		res.Seller = &domain.OrderPartyResponse{
			ID:   o.Seller.ID.String(),
			Name: o.Seller.Name,
		}
	}
	return res
}

func orderResponses(orders []*entities.Order) []domain.OrderResponse {
	res := make([]domain.OrderResponse, 0, len(orders))
	for _, o := range orders {
		res = append(res, orderResponse(o))
	}
	return res
}
