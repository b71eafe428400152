package service

import (
	"errors"
	"testing"
)

func TestCartAddItemRejectsQuantityAboveStock(t *testing.T) {
	env := setupCheckoutTest(t)
	env.createProduct(t, "Cheese", 100, 5, 0.2, nil)
	env.createCustomer(t, "alice", 1000)
	cart := env.openCart(t, "alice")

	_, err := env.cartService.AddItem(AddCartItemInput{CartNo: cart.CartNo, ProductName: "Cheese", Quantity: 6})
	if !errors.Is(err, ErrNotEnoughStock) {
		t.Fatalf("expected ErrNotEnoughStock, got %v", err)
	}

	got, err := env.cartService.Get(cart.CartNo)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(got.Items) != 0 {
		t.Fatalf("failed add must leave cart unchanged, got %d lines", len(got.Items))
	}
}

func TestCartAddItemAcceptsQuantityEqualToStock(t *testing.T) {
	env := setupCheckoutTest(t)
	env.createProduct(t, "Cheese", 100, 5, 0.2, nil)
	env.createCustomer(t, "alice", 1000)
	cart := env.openCart(t, "alice")

	item, err := env.cartService.AddItem(AddCartItemInput{CartNo: cart.CartNo, ProductName: "Cheese", Quantity: 5})
	if err != nil {
		t.Fatalf("quantity equal to stock must be accepted: %v", err)
	}
	if item.Quantity != 5 {
		t.Fatalf("unexpected line quantity: %d", item.Quantity)
	}
}

func TestCartAddItemDoesNotMergeRepeatedProducts(t *testing.T) {
	env := setupCheckoutTest(t)
	env.createProduct(t, "ScratchCard", 50, 10, 0, nil)
	env.createCustomer(t, "alice", 1000)
	cart := env.openCart(t, "alice")

	for i := 0; i < 2; i++ {
		if _, err := env.cartService.AddItem(AddCartItemInput{CartNo: cart.CartNo, ProductName: "ScratchCard", Quantity: 1}); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}

	got, err := env.cartService.Get(cart.CartNo)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(got.Items) != 2 {
		t.Fatalf("repeated adds must produce two lines, got %d", len(got.Items))
	}
}

func TestCartAddItemValidation(t *testing.T) {
	env := setupCheckoutTest(t)
	env.createProduct(t, "Cheese", 100, 5, 0.2, nil)
	env.createCustomer(t, "alice", 1000)
	cart := env.openCart(t, "alice")

	_, err := env.cartService.AddItem(AddCartItemInput{CartNo: cart.CartNo, ProductName: "Cheese", Quantity: 0})
	if !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	_, err = env.cartService.AddItem(AddCartItemInput{CartNo: cart.CartNo, ProductName: "Unknown", Quantity: 1})
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	_, err = env.cartService.AddItem(AddCartItemInput{CartNo: "missing", ProductName: "Cheese", Quantity: 1})
	if !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("expected ErrCartNotFound, got %v", err)
	}
}

func TestCartAddItemMatchesProductNameCaseInsensitively(t *testing.T) {
	env := setupCheckoutTest(t)
	env.createProduct(t, "Cheese", 100, 5, 0.2, nil)
	env.createCustomer(t, "alice", 1000)
	cart := env.openCart(t, "alice")

	item, err := env.cartService.AddItem(AddCartItemInput{CartNo: cart.CartNo, ProductName: "cheese", Quantity: 1})
	if err != nil {
		t.Fatalf("case-insensitive lookup failed: %v", err)
	}
	if item.Product == nil || item.Product.Name != "Cheese" {
		t.Fatalf("unexpected product: %+v", item.Product)
	}
}

func TestCartOpenRequiresKnownCustomer(t *testing.T) {
	env := setupCheckoutTest(t)
	_, err := env.cartService.Open("nobody")
	if !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}
