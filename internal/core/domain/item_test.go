package domain

import (
	"errors"
	"testing"
)

const testProductID = ID("aabbccddee112233aabbccdd")

func TestNewItem(t *testing.T) {
	item, err := NewItem(testProductID, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if item.ProductID != testProductID {
		t.Fatalf("expected product id %q, got %q", testProductID, item.ProductID)
	}
	if item.Quantity() != 3 {
		t.Fatalf("expected quantity 3, got %d", item.Quantity())
	}
	if item.Product() != nil {
		t.Fatal("expected no product attached to a new item")
	}
}

func TestNewItem_Validation(t *testing.T) {
	tests := []struct {
		name      string
		productID ID
		quantity  int
	}{
		{"invalid product id", "short", 1},
		{"empty product id", "", 1},
		{"zero quantity", testProductID, 0},
		{"negative quantity", testProductID, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewItem(tt.productID, tt.quantity)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var argErr *ArgumentError
			if !errors.As(err, &argErr) {
				t.Fatalf("expected ArgumentError, got %T", err)
			}
		})
	}
}

func TestItem_SetQuantity(t *testing.T) {
	item, err := NewItem(testProductID, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := item.SetQuantity(7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Quantity() != 7 {
		t.Fatalf("expected quantity 7, got %d", item.Quantity())
	}

	for _, quantity := range []int{0, -2} {
		err := item.SetQuantity(quantity)
		if err == nil {
			t.Fatalf("expected error for quantity %d, got nil", quantity)
		}
		var ruleErr *BusinessRuleError
		if !errors.As(err, &ruleErr) {
			t.Fatalf("expected BusinessRuleError, got %T", err)
		}
	}
	if item.Quantity() != 7 {
		t.Fatalf("expected quantity unchanged after failed setters, got %d", item.Quantity())
	}
}

func TestItem_IncreaseQuantity(t *testing.T) {
	item, err := NewItem(testProductID, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := item.IncreaseQuantity(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Quantity() != 5 {
		t.Fatalf("expected quantity 5, got %d", item.Quantity())
	}

	if err := item.IncreaseQuantity(0); err == nil {
		t.Fatal("expected error for zero increase, got nil")
	}
	if err := item.IncreaseQuantity(-1); err == nil {
		t.Fatal("expected error for negative increase, got nil")
	}
}

func TestItem_DecreaseQuantity(t *testing.T) {
	item, err := NewItem(testProductID, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := item.DecreaseQuantity(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Quantity() != 3 {
		t.Fatalf("expected quantity 3, got %d", item.Quantity())
	}

	// dropping to zero or below must be rejected
	if err := item.DecreaseQuantity(3); err == nil {
		t.Fatal("expected error for decrease to zero, got nil")
	}
	if err := item.DecreaseQuantity(4); err == nil {
		t.Fatal("expected error for decrease below zero, got nil")
	}
	if item.Quantity() != 3 {
		t.Fatalf("expected quantity unchanged after failed decreases, got %d", item.Quantity())
	}
}

func TestItem_AttachProduct(t *testing.T) {
	item, err := NewItem(testProductID, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := item.AttachProduct(nil); err == nil {
		t.Fatal("expected error for nil product, got nil")
	}

	product, err := NewProduct("Wireless Mouse", 25.50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := item.AttachProduct(product); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Product() != product {
		t.Fatal("expected attached product returned by Product()")
	}
}
