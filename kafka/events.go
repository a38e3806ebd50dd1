package kafka

import "time"

// StockAdjustedEvent is emitted after every committed stock adjustment
type StockAdjustedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	ProductID uint      `json:"product_id"`
	OldStock  int       `json:"old_stock"`
	NewStock  int       `json:"new_stock"`
	Timestamp time.Time `json:"timestamp"`
}

// LowStockAlertEvent is emitted for products surfaced by a low-stock scan
type LowStockAlertEvent struct {
	EventID      string    `json:"event_id"`
	EventType    string    `json:"event_type"`
	ProductID    uint      `json:"product_id"`
	ProductName  string    `json:"product_name"`
	CurrentStock int       `json:"current_stock"`
	Threshold    int       `json:"threshold"`
	Timestamp    time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeStockAdjusted = "stock.adjusted"
	EventTypeLowStockAlert = "stock.low"
)

// Kafka topics
const (
	TopicStockAdjusted = "stock-adjusted"
	TopicLowStockAlert = "stock-low"
)
