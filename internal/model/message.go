package model

type CalculationMessage struct {
	ID      int    `json:"id"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
)

// Message codes for input-validation failures.
const (
	CodeNegativeIncome    = "NEGATIVE_INCOME"
	CodeNegativeDeduction = "NEGATIVE_DEDUCTION"
)
