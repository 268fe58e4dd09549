package models

import (
	"time"
)

// Product - one catalog entry. Sales never reference it directly; they
// capture name/price/unit as text at checkout time so history survives
// renames and deletions.
type Product struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:120;not null" json:"name"`
	Price     float64   `gorm:"not null" json:"price"`
	Unit      string    `gorm:"size:30;not null;default:item" json:"unit"`
	CreatedAt time.Time `json:"created_at"`
}

// Settings - the single store-wide configuration row, id fixed at 1.
// The logo travels base64-encoded over JSON and is kept as raw bytes here.
type Settings struct {
	ID             uint     `gorm:"primaryKey" json:"-"`
	RestaurantName string   `json:"restaurant_name"`
	Address        string   `json:"address"`
	Phone          string   `json:"phone"`
	Email          string   `json:"email"`
	TaxRate        *float64 `json:"tax_rate"`
	Currency       string   `gorm:"size:3" json:"currency"`
	OpeningTime    string   `gorm:"size:5" json:"opening_time"`
	ClosingTime    string   `gorm:"size:5" json:"closing_time"`
	ReceiptFooter  string   `json:"receipt_footer"`
	Logo           []byte   `gorm:"type:blob" json:"logo,omitempty"`
}

// Sale - the transaction header. TotalAmount is always recomputed from the
// lines before commit; the id doubles as the default receipt number.
type Sale struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	TotalAmount float64    `gorm:"not null" json:"total_amount"`
	Currency    string     `gorm:"size:3;not null" json:"currency"`
	Date        string     `gorm:"size:10;not null;index" json:"date"` // YYYY-MM-DD, assigned at commit
	Time        string     `gorm:"size:8;not null" json:"time"`        // HH:MM:SS, assigned at commit
	CreatedAt   time.Time  `json:"created_at"`
	Items       []SaleLine `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE" json:"items"`
}

// SaleLine - one line of a sale, a point-in-time snapshot of the product.
type SaleLine struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	SaleID      uint    `gorm:"index;not null" json:"sale_id"`
	ProductName string  `gorm:"size:120;not null" json:"name"`
	UnitPrice   float64 `gorm:"not null" json:"price"`
	Quantity    float64 `gorm:"not null" json:"quantity"`
	Unit        string  `gorm:"size:30;not null" json:"unit"`
	Subtotal    float64 `gorm:"not null" json:"subtotal"`
}

// SaleLineInput is what checkout submits for one line. Subtotals are never
// accepted from the client.
type SaleLineInput struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
}

// DateRange bounds an analytics or transaction query. Zero values mean
// unbounded on that side.
type DateRange struct {
	From time.Time
	To   time.Time
}

func (r DateRange) IsZero() bool { return r.From.IsZero() && r.To.IsZero() }

// DailyRevenue is one calendar-date bucket. Dates without sales are not
// synthesized; charting callers treat gaps as zero.
type DailyRevenue struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Orders  int64   `json:"orders"`
}

// TopProduct aggregates sale lines by captured product name.
type TopProduct struct {
	Name    string  `json:"name"`
	Sales   float64 `json:"sales"`
	Revenue float64 `json:"revenue"`
}

// ProductShare is the untruncated quantity distribution used for
// share-of-total charts.
type ProductShare struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type AnalyticsSummary struct {
	TotalOrders       int64   `json:"total_orders"`
	TotalRevenue      float64 `json:"total_revenue"`
	AverageOrderValue float64 `json:"average_order_value"`
}

// Analytics is the full computed view; nothing in it is persisted.
type Analytics struct {
	DailyRevenue        []DailyRevenue   `json:"daily_revenue"`
	TopProducts         []TopProduct     `json:"top_products"`
	ProductDistribution []ProductShare   `json:"product_distribution"`
	Summary             AnalyticsSummary `json:"summary"`
}

// GrowthRate derives the revenue growth between the first and last daily
// buckets as a percentage. Fewer than two buckets, or a zero first bucket,
// yield 0 rather than a division error.
func GrowthRate(daily []DailyRevenue) float64 {
	if len(daily) < 2 {
		return 0
	}
	first := daily[0].Revenue
	if first == 0 {
		return 0
	}
	return (daily[len(daily)-1].Revenue - first) / first * 100
}
