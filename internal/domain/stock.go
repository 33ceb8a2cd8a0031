package domain

import "time"

type StockLevel string

const (
	StockLevelLow    StockLevel = "Low"
	StockLevelMedium StockLevel = "Medium"
	StockLevelHigh   StockLevel = "High"
)

type Stock struct {
	StockID   uint      `gorm:"primaryKey;autoIncrement" json:"stock_id"`
	SizeID    uint      `gorm:"uniqueIndex" json:"size_id"`
	Stock     int       `gorm:"column:stock;not null;default:0" json:"stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Level is derived from the count on every read, never stored.
	Level StockLevel `gorm:"-" json:"stock_level"`
}

// ClassifyStock buckets a raw count into the three-tier level. Total
// over all integers; negative counts classify as Low.
func ClassifyStock(stock int) StockLevel {
	switch {
	case stock > 100:
		return StockLevelHigh
	case stock > 50:
		return StockLevelMedium
	default:
		return StockLevelLow
	}
}

// Decorate recomputes the derived level on every stock row of the
// aggregate. Readers call this before surfacing a product.
func (p *Product) Decorate() *Product {
	for i := range p.Items {
		for j := range p.Items[i].Sizes {
			s := &p.Items[i].Sizes[j].Stock
			s.Level = ClassifyStock(s.Stock)
		}
	}
	return p
}
