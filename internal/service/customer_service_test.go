package service

import (
	"errors"
	"testing"

	"github.com/kiosk-next/internal/models"

	"github.com/shopspring/decimal"
)

func TestCustomerRegister(t *testing.T) {
	env := setupCheckoutTest(t)
	svc := NewCustomerService(env.customerRepo)

	customer, err := svc.Register(RegisterCustomerInput{Name: "alice", Balance: models.NewMoneyFromInt(1000)})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if !customer.Balance.Decimal.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("balance want 1000 got %s", customer.Balance)
	}

	// 顾客名大小写不敏感，重复登记冲突
	_, err = svc.Register(RegisterCustomerInput{Name: "ALICE", Balance: models.NewMoneyFromInt(500)})
	if !errors.Is(err, ErrCustomerExists) {
		t.Fatalf("expected ErrCustomerExists, got %v", err)
	}
}

func TestCustomerRegisterRejectsNegativeBalance(t *testing.T) {
	env := setupCheckoutTest(t)
	svc := NewCustomerService(env.customerRepo)

	_, err := svc.Register(RegisterCustomerInput{Name: "bob", Balance: models.NewMoneyFromInt(-1)})
	if !errors.Is(err, ErrInvalidBalance) {
		t.Fatalf("expected ErrInvalidBalance, got %v", err)
	}
}

func TestCustomerGetByNameCaseInsensitive(t *testing.T) {
	env := setupCheckoutTest(t)
	svc := NewCustomerService(env.customerRepo)

	if _, err := svc.Register(RegisterCustomerInput{Name: "Carol", Balance: models.NewMoneyFromInt(10)}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	customer, err := svc.GetByName("carol")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if customer.Name != "Carol" {
		t.Fatalf("stored casing must be preserved, got %s", customer.Name)
	}
}
