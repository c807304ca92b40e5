package service

import (
	"context"

	"github.com/ordo-labs/order-api/internal/core/domain"
	"github.com/ordo-labs/order-api/internal/core/dto"
	"github.com/ordo-labs/order-api/internal/core/logger"
	"github.com/ordo-labs/order-api/internal/core/port"
	"github.com/ordo-labs/order-api/internal/core/serviceerrors"
	"github.com/ordo-labs/order-api/internal/core/utils"
)

const customerEntityName = "customer"

type CustomerService struct {
	customerRepository port.CustomerPort
	auditService       *AuditService
}

func NewCustomerService(customerRepository port.CustomerPort, auditService *AuditService) *CustomerService {
	return &CustomerService{
		customerRepository: customerRepository,
		auditService:       auditService,
	}
}

func (s *CustomerService) Create(ctx context.Context, request *dto.CreateCustomerRequest) (*domain.Customer, error) {
	existing, err := s.customerRepository.FindOneByName(ctx, request.Name, request.LastName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serviceerrors.NewConflictError("a customer with the same name already exists")
	}

	customer, err := domain.NewCustomer(request.Name, request.LastName, request.Address, request.PostalCode)
	if err != nil {
		return nil, err
	}

	if err := s.customerRepository.Create(ctx, customer); err != nil {
		logger.Error(ctx, "customer: create failed", err, map[string]any{
			"name":      request.Name,
			"last_name": request.LastName,
		})
		return nil, err
	}

	s.auditService.Record(ctx, customerEntityName, customer.ID, domain.AuditActionCreate, utils.ToJSON(nil), utils.ToJSON(customer))

	logger.Info(ctx, "Customer created", map[string]any{"customer_id": customer.ID})
	return customer, nil
}

func (s *CustomerService) GetByID(ctx context.Context, id domain.ID) (*domain.Customer, error) {
	return s.customerRepository.GetByID(ctx, id)
}

func (s *CustomerService) List(ctx context.Context, request *dto.ListCustomersRequest) ([]*domain.Customer, int64, error) {
	request.Normalize()
	return s.customerRepository.Find(ctx, port.CustomerQuery{
		Name:       request.Name,
		LastName:   request.LastName,
		Address:    request.Address,
		PostalCode: request.PostalCode,
		PageIndex:  request.PageIndex,
		PageLength: request.PageLength,
	})
}

func (s *CustomerService) Update(ctx context.Context, id domain.ID, request *dto.UpdateCustomerRequest) (*domain.Customer, error) {
	customer, err := s.customerRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	taken, err := s.customerRepository.ExistsOther(ctx, id, request.Name, request.LastName, request.Address, request.PostalCode)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, serviceerrors.NewConflictError("another customer with the same data already exists")
	}

	oldValue := utils.ToJSON(customer)

	if err := customer.SetName(request.Name); err != nil {
		return nil, err
	}
	if err := customer.SetLastName(request.LastName); err != nil {
		return nil, err
	}
	if err := customer.SetAddress(request.Address); err != nil {
		return nil, err
	}
	if err := customer.SetPostalCode(request.PostalCode); err != nil {
		return nil, err
	}
	customer.SetUpdatedAt()

	if err := s.customerRepository.Update(ctx, customer); err != nil {
		logger.Error(ctx, "customer: update failed", err, map[string]any{
			"customer_id": id,
		})
		return nil, err
	}

	s.auditService.Record(ctx, customerEntityName, customer.ID, domain.AuditActionUpdate, oldValue, utils.ToJSON(customer))

	logger.Info(ctx, "Customer updated", map[string]any{"customer_id": id})
	return customer, nil
}

func (s *CustomerService) Delete(ctx context.Context, id domain.ID) error {
	customer, err := s.customerRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.customerRepository.Delete(ctx, id); err != nil {
		logger.Error(ctx, "customer: delete failed", err, map[string]any{
			"customer_id": id,
		})
		return err
	}

	s.auditService.Record(ctx, customerEntityName, id, domain.AuditActionDelete, utils.ToJSON(customer), utils.ToJSON(nil))

	logger.Info(ctx, "Customer deleted", map[string]any{"customer_id": id})
	return nil
}
