package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ordo-labs/order-api/internal/core/domain"
	"github.com/ordo-labs/order-api/internal/core/dto"
	"github.com/ordo-labs/order-api/internal/core/logger"
	"github.com/ordo-labs/order-api/internal/core/port"
	"github.com/ordo-labs/order-api/internal/core/serviceerrors"
	"github.com/ordo-labs/order-api/internal/core/utils"
)

const (
	ORDER_MAX_ITEMS = 100

	orderEntityName = "order"
	orderCacheTTL   = 15 * time.Minute
)

type OrderService struct {
	orderRepository port.OrderPort
	productService  *ProductService
	customerService *CustomerService
	auditService    *AuditService
	orderCache      port.CachePort[domain.Order]
	idempotency     *IdempotencyService[domain.Order]
}

func NewOrderService(
	orderRepository port.OrderPort,
	productService *ProductService,
	customerService *CustomerService,
	auditService *AuditService,
	orderCache port.CachePort[domain.Order],
	idempotency *IdempotencyService[domain.Order],
) *OrderService {
	return &OrderService{
		orderRepository: orderRepository,
		productService:  productService,
		customerService: customerService,
		auditService:    auditService,
		orderCache:      orderCache,
		idempotency:     idempotency,
	}
}

func (s *OrderService) getCacheKey(orderID domain.ID) string {
	return fmt.Sprintf("order:%s", orderID)
}

func (s *OrderService) cacheOrder(ctx context.Context, order *domain.Order) {
	if err := s.orderCache.Set(ctx, s.getCacheKey(order.ID), order, orderCacheTTL); err != nil {
		logger.Error(ctx, "cache: set order failed", err, map[string]any{
			"order_id": order.ID,
		})
	}
}

func (s *OrderService) evictOrder(ctx context.Context, orderID domain.ID) {
	if err := s.orderCache.Del(ctx, s.getCacheKey(orderID)); err != nil {
		logger.Error(ctx, "cache: delete order failed", err, map[string]any{
			"order_id": orderID,
		})
	}
}

func (s *OrderService) processOrder(ctx context.Context, request *dto.CreateOrderRequest) (*domain.Order, error) {
	if len(request.Items) > ORDER_MAX_ITEMS {
		return nil, serviceerrors.NewUnprocessableEntityError("order items limit exceeded")
	}

	if _, err := s.customerService.GetByID(ctx, request.CustomerID); err != nil {
		return nil, err
	}

	items := make([]*domain.Item, 0, len(request.Items))
	total := 0.0
	for _, requested := range request.Items {
		product, err := s.productService.GetByID(ctx, requested.ProductID)
		if err != nil {
			return nil, err
		}

		item, err := domain.NewItem(requested.ProductID, requested.Quantity)
		if err != nil {
			return nil, err
		}
		if err := item.AttachProduct(product); err != nil {
			return nil, err
		}

		total += product.Price() * float64(requested.Quantity)
		items = append(items, item)
	}

	order, err := domain.NewOrder(request.CustomerID, items)
	if err != nil {
		return nil, err
	}
	if err := order.SetTotalPrice(total); err != nil {
		return nil, err
	}

	if err := s.orderRepository.Create(ctx, order); err != nil {
		logger.Error(ctx, "order: create failed", err, map[string]any{
			"customer_id": request.CustomerID,
		})
		return nil, err
	}

	s.cacheOrder(ctx, order)
	s.auditService.Record(ctx, orderEntityName, order.ID, domain.AuditActionCreate, utils.ToJSON(nil), utils.ToJSON(order))

	logger.Info(ctx, "Order created", map[string]any{
		"order_id":    order.ID,
		"total_price": order.TotalPrice(),
	})
	return order, nil
}

func (s *OrderService) Create(ctx context.Context, idempotencyKey string, request *dto.CreateOrderRequest) (*domain.Order, error) {
	if idempotencyKey == "" {
		return s.processOrder(ctx, request)
	}

	payloadHash := utils.HashJSON(request)

	existing, err := s.idempotency.Claim(ctx, idempotencyKey, payloadHash)
	if err != nil {
		logger.Error(ctx, "idempotency: claim failed", err, map[string]any{
			"idempotency_key": idempotencyKey,
		})
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	order, err := s.processOrder(ctx, request)
	if err != nil {
		s.idempotency.Release(ctx, idempotencyKey)
		return nil, err
	}

	s.idempotency.Complete(ctx, idempotencyKey, payloadHash, order)

	return order, nil
}

func (s *OrderService) GetByID(ctx context.Context, orderID domain.ID) (*domain.Order, error) {
	cached, err := s.orderCache.Get(ctx, s.getCacheKey(orderID))
	if err != nil {
		logger.Error(ctx, "cache: get order failed", err, map[string]any{
			"order_id": orderID,
		})
	}
	if cached != nil {
		return cached, nil
	}

	order, err := s.orderRepository.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	s.cacheOrder(ctx, order)
	return order, nil
}

func (s *OrderService) List(ctx context.Context, request *dto.ListOrdersRequest) ([]*domain.Order, int64, error) {
	request.Normalize()

	query := port.OrderQuery{
		OrderDateStart: request.OrderDateStart,
		OrderDateEnd:   request.OrderDateEnd,
		SortDescending: request.SortDescending,
		PageIndex:      request.PageIndex,
		PageLength:     request.PageLength,
	}
	if request.CustomerID != "" {
		if !domain.ValidateID(request.CustomerID) {
			return nil, 0, serviceerrors.NewInvalidRequestError("invalid customer id")
		}
		customerID := domain.ID(request.CustomerID)
		query.CustomerID = &customerID
	}

	return s.orderRepository.Find(ctx, query)
}

func (s *OrderService) Delete(ctx context.Context, orderID domain.ID) error {
	order, err := s.orderRepository.GetByID(ctx, orderID)
	if err != nil {
		return err
	}

	if err := s.orderRepository.Delete(ctx, orderID); err != nil {
		logger.Error(ctx, "order: delete failed", err, map[string]any{
			"order_id": orderID,
		})
		return err
	}

	s.evictOrder(ctx, orderID)
	s.auditService.Record(ctx, orderEntityName, orderID, domain.AuditActionDelete, utils.ToJSON(order), utils.ToJSON(nil))

	logger.Info(ctx, "Order deleted", map[string]any{"order_id": orderID})
	return nil
}

// AddItem merges the quantity into an existing item or appends a new one,
// increasing the total by the product's current price times the added
// quantity.
func (s *OrderService) AddItem(ctx context.Context, orderID domain.ID, request *dto.AddOrderItemRequest) (*domain.Order, error) {
	order, err := s.orderRepository.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	product, err := s.productService.GetByID(ctx, request.ProductID)
	if err != nil {
		return nil, err
	}

	oldValue := utils.ToJSON(order)

	if err := order.AddItem(request.ProductID, request.Quantity); err != nil {
		return nil, err
	}
	item := order.FindItem(request.ProductID)
	if item.Product() == nil {
		if err := item.AttachProduct(product); err != nil {
			return nil, err
		}
	}
	if err := order.IncreaseTotalPrice(product.Price() * float64(request.Quantity)); err != nil {
		return nil, err
	}
	order.SetUpdatedAt()

	if err := s.orderRepository.Update(ctx, order); err != nil {
		logger.Error(ctx, "order: add item failed", err, map[string]any{
			"order_id":   orderID,
			"product_id": request.ProductID,
		})
		return nil, err
	}

	s.cacheOrder(ctx, order)
	s.auditService.Record(ctx, orderEntityName, order.ID, domain.AuditActionUpdate, oldValue, utils.ToJSON(order))

	logger.Info(ctx, "Order item added", map[string]any{
		"order_id":   orderID,
		"product_id": request.ProductID,
		"quantity":   request.Quantity,
	})
	return order, nil
}

// UpdateItem sets an item quantity absolutely and applies the signed price
// delta to the total. A quantity equal to the current one is a no-op.
func (s *OrderService) UpdateItem(ctx context.Context, orderID domain.ID, request *dto.UpdateOrderItemRequest) (*domain.Order, error) {
	order, err := s.orderRepository.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	product, err := s.productService.GetByID(ctx, request.ProductID)
	if err != nil {
		return nil, err
	}

	item := order.FindItem(request.ProductID)
	if item == nil {
		return nil, serviceerrors.NewNotFoundError("order item not found")
	}
	if item.Quantity() == request.Quantity {
		return order, nil
	}
	currentQuantity := item.Quantity()

	oldValue := utils.ToJSON(order)

	if err := order.UpdateItem(request.ProductID, request.Quantity); err != nil {
		return nil, err
	}

	delta := float64(request.Quantity-currentQuantity) * product.Price()
	if delta >= 0 {
		err = order.IncreaseTotalPrice(delta)
	} else {
		err = order.DecreaseTotalPrice(-delta)
	}
	if err != nil {
		return nil, err
	}
	order.SetUpdatedAt()

	if err := s.orderRepository.Update(ctx, order); err != nil {
		logger.Error(ctx, "order: update item failed", err, map[string]any{
			"order_id":   orderID,
			"product_id": request.ProductID,
		})
		return nil, err
	}

	s.cacheOrder(ctx, order)
	s.auditService.Record(ctx, orderEntityName, order.ID, domain.AuditActionUpdate, oldValue, utils.ToJSON(order))

	logger.Info(ctx, "Order item updated", map[string]any{
		"order_id":   orderID,
		"product_id": request.ProductID,
		"quantity":   request.Quantity,
	})
	return order, nil
}

// RemoveItem drops the item and lets the aggregate decrease its own total.
// Removing the last item deletes the whole order.
func (s *OrderService) RemoveItem(ctx context.Context, orderID, productID domain.ID) (*domain.Order, error) {
	order, err := s.orderRepository.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if _, err := s.productService.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	oldValue := utils.ToJSON(order)

	if err := order.RemoveItem(productID); err != nil {
		return nil, err
	}

	if len(order.Items()) == 0 {
		if err := s.orderRepository.Delete(ctx, orderID); err != nil {
			logger.Error(ctx, "order: delete after last item failed", err, map[string]any{
				"order_id": orderID,
			})
			return nil, err
		}

		s.evictOrder(ctx, orderID)
		s.auditService.Record(ctx, orderEntityName, orderID, domain.AuditActionDelete, oldValue, utils.ToJSON(nil))

		logger.Info(ctx, "Order deleted after removing its last item", map[string]any{
			"order_id": orderID,
		})
		return nil, nil
	}

	order.SetUpdatedAt()
	if err := s.orderRepository.Update(ctx, order); err != nil {
		logger.Error(ctx, "order: remove item failed", err, map[string]any{
			"order_id":   orderID,
			"product_id": productID,
		})
		return nil, err
	}

	s.cacheOrder(ctx, order)
	s.auditService.Record(ctx, orderEntityName, order.ID, domain.AuditActionUpdate, oldValue, utils.ToJSON(order))

	logger.Info(ctx, "Order item removed", map[string]any{
		"order_id":   orderID,
		"product_id": productID,
	})
	return order, nil
}
