package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestNewProduct(t *testing.T) {
	product, err := NewProduct("Mechanical Keyboard", 99.99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if product.Name() != "Mechanical Keyboard" {
		t.Fatalf("expected name 'Mechanical Keyboard', got %q", product.Name())
	}
	if product.Price() != 99.99 {
		t.Fatalf("expected price 99.99, got %v", product.Price())
	}
	if product.ID != "" {
		t.Fatalf("expected empty ID, got %q", product.ID)
	}
}

func TestNewProduct_NegativePrice(t *testing.T) {
	_, err := NewProduct("Mechanical Keyboard", -1)
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var argErr *ArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("expected ArgumentError, got %T", err)
	}
}

func TestNewProduct_ZeroPrice(t *testing.T) {
	product, err := NewProduct("Free Sample Pack", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.Price() != 0 {
		t.Fatalf("expected price 0, got %v", product.Price())
	}
}

func TestProduct_SetName(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		wantArg  bool
		wantRule bool
	}{
		{"valid name", "Wireless Mouse", false, false},
		{"exactly 5 chars", "Mouse", false, false},
		{"empty", "", true, false},
		{"whitespace only", "   ", true, false},
		{"4 chars", "Poof", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product, err := NewProduct("Placeholder", 10)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			err = product.SetName(tt.value)
			if !tt.wantArg && !tt.wantRule {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if product.Name() != tt.value {
					t.Fatalf("expected name %q, got %q", tt.value, product.Name())
				}
				return
			}

			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var argErr *ArgumentError
			if got := errors.As(err, &argErr); got != tt.wantArg {
				t.Errorf("ArgumentError = %v, want %v", got, tt.wantArg)
			}
			var ruleErr *BusinessRuleError
			if got := errors.As(err, &ruleErr); got != tt.wantRule {
				t.Errorf("BusinessRuleError = %v, want %v", got, tt.wantRule)
			}
		})
	}
}

func TestProduct_SetPrice(t *testing.T) {
	product, err := NewProduct("Wireless Mouse", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := product.SetPrice(25.50); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.Price() != 25.50 {
		t.Fatalf("expected price 25.50, got %v", product.Price())
	}

	err = product.SetPrice(-0.01)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var ruleErr *BusinessRuleError
	if !errors.As(err, &ruleErr) {
		t.Fatalf("expected BusinessRuleError, got %T", err)
	}
	if product.Price() != 25.50 {
		t.Fatalf("expected price unchanged after failed setter, got %v", product.Price())
	}
}

func TestProduct_JSONRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	updated := now.Add(time.Hour)
	original := HydrateProduct("aabbccddee112233aabbccdd", "Wireless Mouse", 25.50, now, &updated)

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var restored Product
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if restored.ID != original.ID {
		t.Fatalf("expected ID %q, got %q", original.ID, restored.ID)
	}
	if restored.Name() != "Wireless Mouse" {
		t.Fatalf("expected name round-trip, got %q", restored.Name())
	}
	if restored.Price() != 25.50 {
		t.Fatalf("expected price round-trip, got %v", restored.Price())
	}
	if restored.UpdatedAt == nil || !restored.UpdatedAt.Equal(updated) {
		t.Fatalf("expected UpdatedAt %v, got %v", updated, restored.UpdatedAt)
	}
}
