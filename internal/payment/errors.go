package payment

import "errors"

var (
	ErrBudgetExceeded = errors.New("budget exceeded")
)
