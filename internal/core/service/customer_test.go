package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ordo-labs/order-api/internal/core/domain"
	"github.com/ordo-labs/order-api/internal/core/dto"
	"github.com/ordo-labs/order-api/internal/core/port"
	"github.com/ordo-labs/order-api/internal/core/port/mock"
	"github.com/ordo-labs/order-api/internal/core/serviceerrors"
	"go.uber.org/mock/gomock"
)

type customerMocks struct {
	customerRepo *mock.MockCustomerPort
	auditRepo    *mock.MockAuditLogPort
}

func setupCustomerService(t *testing.T) (*CustomerService, *customerMocks) {
	ctrl := gomock.NewController(t)

	customerRepo := mock.NewMockCustomerPort(ctrl)
	auditRepo := mock.NewMockAuditLogPort(ctrl)

	svc := NewCustomerService(customerRepo, NewAuditService(auditRepo))

	return svc, &customerMocks{
		customerRepo: customerRepo,
		auditRepo:    auditRepo,
	}
}

func hydratedCustomer(id domain.ID) *domain.Customer {
	return domain.HydrateCustomer(id, "John", "Doe", "42 Main Street", "12345", time.Now().UTC(), nil)
}

func TestCustomerService_Create(t *testing.T) {
	customerID := domain.ID("aabbccddee112233aabbccdd")
	request := &dto.CreateCustomerRequest{
		Name:       "John",
		LastName:   "Doe",
		Address:    "42 Main Street",
		PostalCode: "12345",
	}

	t.Run("success", func(t *testing.T) {
		svc, m := setupCustomerService(t)

		m.customerRepo.EXPECT().
			FindOneByName(gomock.Any(), "John", "Doe").
			Return(nil, nil)

		m.customerRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, customer *domain.Customer) error {
				return customer.SetID(customerID)
			})

		m.auditRepo.EXPECT().
			CreateWithOutbox(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, log *domain.AuditLog, _ domain.Event) error {
				if log.ActionType != domain.AuditActionCreate {
					t.Fatalf("expected create audit, got %q", log.ActionType)
				}
				if log.OldValue != "{}" {
					t.Fatalf("expected empty old value, got %q", log.OldValue)
				}
				return nil
			})

		customer, err := svc.Create(context.Background(), request)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if customer.ID != customerID {
			t.Fatalf("expected customer id %s, got %s", customerID, customer.ID)
		}
		if customer.Name() != "John" {
			t.Fatalf("expected name 'John', got %q", customer.Name())
		}
	})

	t.Run("duplicate name", func(t *testing.T) {
		svc, m := setupCustomerService(t)

		m.customerRepo.EXPECT().
			FindOneByName(gomock.Any(), "John", "Doe").
			Return(hydratedCustomer(customerID), nil)

		_, err := svc.Create(context.Background(), request)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !serviceerrors.IsOfKind(err, serviceerrors.KindConflict) {
			t.Fatalf("expected KindConflict, got %v", err)
		}
	})

	t.Run("lookup error", func(t *testing.T) {
		svc, m := setupCustomerService(t)

		m.customerRepo.EXPECT().
			FindOneByName(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db error"))

		_, err := svc.Create(context.Background(), request)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("invalid field fails domain validation", func(t *testing.T) {
		svc, m := setupCustomerService(t)

		m.customerRepo.EXPECT().
			FindOneByName(gomock.Any(), "J", "Doe").
			Return(nil, nil)

		_, err := svc.Create(context.Background(), &dto.CreateCustomerRequest{
			Name:       "J",
			LastName:   "Doe",
			Address:    "42 Main Street",
			PostalCode: "12345",
		})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		var ruleErr *domain.BusinessRuleError
		if !errors.As(err, &ruleErr) {
			t.Fatalf("expected BusinessRuleError, got %T", err)
		}
	})

	t.Run("repo create error", func(t *testing.T) {
		svc, m := setupCustomerService(t)

		m.customerRepo.EXPECT().
			FindOneByName(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)
		m.customerRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(errors.New("insert failed"))

		_, err := svc.Create(context.Background(), request)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestCustomerService_GetByID(t *testing.T) {
	svc, m := setupCustomerService(t)
	customerID := domain.ID("aabbccddee112233aabbccdd")

	m.customerRepo.EXPECT().
		GetByID(gomock.Any(), customerID).
		Return(hydratedCustomer(customerID), nil)

	customer, err := svc.GetByID(context.Background(), customerID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if customer.ID != customerID {
		t.Fatalf("expected customer id %s, got %s", customerID, customer.ID)
	}
}

func TestCustomerService_List(t *testing.T) {
	t.Run("applies default pagination", func(t *testing.T) {
		svc, m := setupCustomerService(t)

		m.customerRepo.EXPECT().
			Find(gomock.Any(), port.CustomerQuery{Name: "John", PageIndex: 0, PageLength: 20}).
			Return([]*domain.Customer{}, int64(0), nil)

		_, total, err := svc.List(context.Background(), &dto.ListCustomersRequest{Name: "John"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if total != 0 {
			t.Fatalf("expected total 0, got %d", total)
		}
	})

	t.Run("caps page length", func(t *testing.T) {
		svc, m := setupCustomerService(t)

		m.customerRepo.EXPECT().
			Find(gomock.Any(), port.CustomerQuery{PageIndex: 2, PageLength: 100}).
			Return([]*domain.Customer{}, int64(500), nil)

		request := &dto.ListCustomersRequest{}
		request.PageIndex = 2
		request.PageLength = 1000

		_, total, err := svc.List(context.Background(), request)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if total != 500 {
			t.Fatalf("expected total 500, got %d", total)
		}
	})
}

func TestCustomerService_Update(t *testing.T) {
	customerID := domain.ID("aabbccddee112233aabbccdd")
	request := &dto.UpdateCustomerRequest{
		Name:       "Jane",
		LastName:   "Smith",
		Address:    "7 Side Road",
		PostalCode: "54321",
	}

	t.Run("success", func(t *testing.T) {
		svc, m := setupCustomerService(t)

		m.customerRepo.EXPECT().
			GetByID(gomock.Any(), customerID).
			Return(hydratedCustomer(customerID), nil)
		m.customerRepo.EXPECT().
			ExistsOther(gomock.Any(), customerID, "Jane", "Smith", "7 Side Road", "54321").
			Return(false, nil)
		m.customerRepo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			Return(nil)

		m.auditRepo.EXPECT().
			CreateWithOutbox(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, log *domain.AuditLog, _ domain.Event) error {
				if log.ActionType != domain.AuditActionUpdate {
					t.Fatalf("expected update audit, got %q", log.ActionType)
				}
				if log.OldValue == log.NewValue {
					t.Fatal("expected old and new snapshots to differ")
				}
				return nil
			})

		customer, err := svc.Update(context.Background(), customerID, request)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if customer.Name() != "Jane" || customer.LastName() != "Smith" {
			t.Fatalf("expected updated names, got %q %q", customer.Name(), customer.LastName())
		}
		if customer.UpdatedAt == nil {
			t.Fatal("expected UpdatedAt set")
		}
	})

	t.Run("not found", func(t *testing.T) {
		svc, m := setupCustomerService(t)

		m.customerRepo.EXPECT().
			GetByID(gomock.Any(), customerID).
			Return(nil, serviceerrors.NewNotFoundError("customer not found"))

		_, err := svc.Update(context.Background(), customerID, request)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})

	t.Run("conflict with another customer", func(t *testing.T) {
		svc, m := setupCustomerService(t)

		m.customerRepo.EXPECT().
			GetByID(gomock.Any(), customerID).
			Return(hydratedCustomer(customerID), nil)
		m.customerRepo.EXPECT().
			ExistsOther(gomock.Any(), customerID, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true, nil)

		_, err := svc.Update(context.Background(), customerID, request)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindConflict) {
			t.Fatalf("expected KindConflict, got %v", err)
		}
	})

	t.Run("repo update error", func(t *testing.T) {
		svc, m := setupCustomerService(t)

		m.customerRepo.EXPECT().
			GetByID(gomock.Any(), customerID).
			Return(hydratedCustomer(customerID), nil)
		m.customerRepo.EXPECT().
			ExistsOther(gomock.Any(), customerID, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, nil)
		m.customerRepo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			Return(errors.New("db error"))

		_, err := svc.Update(context.Background(), customerID, request)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestCustomerService_Delete(t *testing.T) {
	customerID := domain.ID("aabbccddee112233aabbccdd")

	t.Run("success", func(t *testing.T) {
		svc, m := setupCustomerService(t)

		m.customerRepo.EXPECT().
			GetByID(gomock.Any(), customerID).
			Return(hydratedCustomer(customerID), nil)
		m.customerRepo.EXPECT().
			Delete(gomock.Any(), customerID).
			Return(nil)

		m.auditRepo.EXPECT().
			CreateWithOutbox(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, log *domain.AuditLog, _ domain.Event) error {
				if log.ActionType != domain.AuditActionDelete {
					t.Fatalf("expected delete audit, got %q", log.ActionType)
				}
				if log.NewValue != "{}" {
					t.Fatalf("expected empty new value, got %q", log.NewValue)
				}
				return nil
			})

		if err := svc.Delete(context.Background(), customerID); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		svc, m := setupCustomerService(t)

		m.customerRepo.EXPECT().
			GetByID(gomock.Any(), customerID).
			Return(nil, serviceerrors.NewNotFoundError("customer not found"))

		err := svc.Delete(context.Background(), customerID)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})

	t.Run("repo delete error", func(t *testing.T) {
		svc, m := setupCustomerService(t)

		m.customerRepo.EXPECT().
			GetByID(gomock.Any(), customerID).
			Return(hydratedCustomer(customerID), nil)
		m.customerRepo.EXPECT().
			Delete(gomock.Any(), customerID).
			Return(errors.New("db error"))

		if err := svc.Delete(context.Background(), customerID); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
