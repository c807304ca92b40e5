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
	productEntityName = "product"
	productCacheTTL   = 15 * time.Minute
)

type ProductService struct {
	productRepository port.ProductPort
	productCache      port.CachePort[domain.Product]
	auditService      *AuditService
}

func NewProductService(
	productRepository port.ProductPort,
	productCache port.CachePort[domain.Product],
	auditService *AuditService,
) *ProductService {
	return &ProductService{
		productRepository: productRepository,
		productCache:      productCache,
		auditService:      auditService,
	}
}

func (s *ProductService) getCacheKey(productID domain.ID) string {
	return fmt.Sprintf("product:%s", productID)
}

func (s *ProductService) Create(ctx context.Context, request *dto.CreateProductRequest) (*domain.Product, error) {
	existing, err := s.productRepository.FindOneByName(ctx, request.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serviceerrors.NewConflictError("a product with the same name already exists")
	}

	product, err := domain.NewProduct(request.Name, request.Price)
	if err != nil {
		return nil, err
	}

	if err := s.productRepository.Create(ctx, product); err != nil {
		logger.Error(ctx, "product: create failed", err, map[string]any{
			"name":  request.Name,
			"price": request.Price,
		})
		return nil, err
	}

	s.auditService.Record(ctx, productEntityName, product.ID, domain.AuditActionCreate, utils.ToJSON(nil), utils.ToJSON(product))

	logger.Info(ctx, "Product created", map[string]any{"product_id": product.ID})
	return product, nil
}

func (s *ProductService) GetByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	cached, err := s.productCache.Get(ctx, s.getCacheKey(id))
	if err != nil {
		logger.Error(ctx, "cache: get product failed", err, map[string]any{
			"product_id": id,
		})
	}
	if cached != nil {
		return cached, nil
	}

	product, err := s.productRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.productCache.Set(ctx, s.getCacheKey(id), product, productCacheTTL); err != nil {
		logger.Error(ctx, "cache: set product failed", err, map[string]any{
			"product_id": id,
		})
	}

	return product, nil
}

func (s *ProductService) List(ctx context.Context, request *dto.ListProductsRequest) ([]*domain.Product, int64, error) {
	request.Normalize()
	return s.productRepository.Find(ctx, port.ProductQuery{
		Name:       request.Name,
		PageIndex:  request.PageIndex,
		PageLength: request.PageLength,
	})
}

func (s *ProductService) Update(ctx context.Context, id domain.ID, request *dto.UpdateProductRequest) (*domain.Product, error) {
	product, err := s.productRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	taken, err := s.productRepository.ExistsOtherWithName(ctx, id, request.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, serviceerrors.NewConflictError("another product with the same name already exists")
	}

	oldValue := utils.ToJSON(product)

	if err := product.SetName(request.Name); err != nil {
		return nil, err
	}
	if err := product.SetPrice(request.Price); err != nil {
		return nil, err
	}
	product.SetUpdatedAt()

	if err := s.productRepository.Update(ctx, product); err != nil {
		logger.Error(ctx, "product: update failed", err, map[string]any{
			"product_id": id,
		})
		return nil, err
	}

	if err := s.productCache.Set(ctx, s.getCacheKey(id), product, productCacheTTL); err != nil {
		logger.Error(ctx, "cache: update product failed", err, map[string]any{
			"product_id": id,
		})
	}

	s.auditService.Record(ctx, productEntityName, product.ID, domain.AuditActionUpdate, oldValue, utils.ToJSON(product))

	logger.Info(ctx, "Product updated", map[string]any{"product_id": id})
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id domain.ID) error {
	product, err := s.productRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.productRepository.Delete(ctx, id); err != nil {
		logger.Error(ctx, "product: delete failed", err, map[string]any{
			"product_id": id,
		})
		return err
	}

	if err := s.productCache.Del(ctx, s.getCacheKey(id)); err != nil {
		logger.Error(ctx, "cache: delete product failed", err, map[string]any{
			"product_id": id,
		})
	}

	s.auditService.Record(ctx, productEntityName, id, domain.AuditActionDelete, utils.ToJSON(product), utils.ToJSON(nil))

	logger.Info(ctx, "Product deleted", map[string]any{"product_id": id})
	return nil
}
