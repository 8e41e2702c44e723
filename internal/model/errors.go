package model

import "errors"

var (
	// ErrInsufficientFunds - на балансе не хватает денег на ставку. Ожидаемый исход, не авария
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInsufficientSymbols - в каталоге меньше символов, чем видимых рядов
	ErrInsufficientSymbols = errors.New("not enough distinct symbols in catalog")
	// ErrUnknownSymbol - выигрышный символ отсутствует в каталоге
	ErrUnknownSymbol = errors.New("unknown symbol")
	// ErrInvalidBet - ставка не положительная или меньше минимальной
	ErrInvalidBet = errors.New("invalid bet amount")
)
