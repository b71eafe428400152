package service

import "errors"

// 业务错误哨兵变量，供 handler 层用 errors.Is 归类
var (
	ErrProductNotFound     = errors.New("product not found")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrCustomerExists      = errors.New("customer already exists")
	ErrCartNotFound        = errors.New("cart not found")
	ErrCartConsumed        = errors.New("cart already checked out")
	ErrInvalidQuantity     = errors.New("invalid quantity")
	ErrInvalidBalance      = errors.New("invalid balance")
	ErrNotEnoughStock      = errors.New("not enough stock")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrProductExpired      = errors.New("product expired")
	ErrOutOfStock          = errors.New("out of stock")
	ErrInsufficientBalance = errors.New("insufficient balance")
)
