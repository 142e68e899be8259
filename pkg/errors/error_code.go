package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeInvalidOrder         ErrorCode = 102
	ErrCodeInvalidExitPrice     ErrorCode = 103
	ErrCodeInvalidCandle        ErrorCode = 104
	ErrCodeInvalidExitRule      ErrorCode = 105
	ErrCodeInsufficientData     ErrorCode = 106
	ErrCodeInvalidPeriod        ErrorCode = 107
	ErrCodeInvalidVersion       ErrorCode = 108

	// Data errors (200-299)
	ErrCodeCandleDataEmpty   ErrorCode = 200
	ErrCodeDataReadFailed    ErrorCode = 201
	ErrCodeDataParseFailed   ErrorCode = 202
	ErrCodeUnsupportedFormat ErrorCode = 203
	ErrCodeDataWriteFailed   ErrorCode = 204

	// Strategy errors (400-499)
	ErrCodeStrategyNotFound     ErrorCode = 400
	ErrCodeStrategyRuntimeError ErrorCode = 401
	ErrCodeTransformFailed      ErrorCode = 402

	// Trading errors (500-599)
	ErrCodeInsufficientFunds   ErrorCode = 500
	ErrCodeOrderNotFound       ErrorCode = 501
	ErrCodePositionNotFound    ErrorCode = 502
	ErrCodeUnsupportedExitRule ErrorCode = 503
	ErrCodeInvalidWalletState  ErrorCode = 504

	// Backtest errors (600-699)
	ErrCodeBacktestInitFailed ErrorCode = 600
	ErrCodeNonPositiveBalance ErrorCode = 601
	ErrCodeVersionMismatch    ErrorCode = 602

	// Optimizer errors (700-799)
	ErrCodeOptimizerNoCombinations ErrorCode = 700
	ErrCodeOptimizerWorkerFailed   ErrorCode = 701

	// Callback errors (800-899)
	ErrCodeCallbackFailed ErrorCode = 800
)

// Category groups error codes by their hundreds.
type Category string

const (
	CategoryUnknown    Category = "unknown"
	CategoryValidation Category = "validation"
	CategoryData       Category = "data"
	CategoryStrategy   Category = "strategy"
	CategoryTrading    Category = "trading"
	CategoryBacktest   Category = "backtest"
	CategoryOptimizer  Category = "optimizer"
	CategoryCallback   Category = "callback"
)

// Category returns the group of the code, CategoryUnknown for codes outside every group.
func (c ErrorCode) Category() Category {
	switch c / 100 {
	case 1:
		return CategoryValidation
	case 2:
		return CategoryData
	case 4:
		return CategoryStrategy
	case 5:
		return CategoryTrading
	case 6:
		return CategoryBacktest
	case 7:
		return CategoryOptimizer
	case 8:
		return CategoryCallback
	default:
		return CategoryUnknown
	}
}
