package queries

import (
	"time"

	"github.com/google/uuid"
)

// OrderLineView is the read-side shape of one order line snapshot. It mirrors
// the JSONB stored at purchase time byte for byte; nothing recomputes it from
// the catalog.
type OrderLineView struct {
	ProductID            uuid.UUID `json:"product_id"`
	ProductName          string    `json:"product_name"`
	Image                string    `json:"image"`
	PriceAtPurchaseCents int64     `json:"price_at_purchase_cents"`
	Quantity             int32     `json:"quantity"`
	Size                 string    `json:"size"`
}

// OrderView represents read-optimized order data
type OrderView struct {
	ID             uuid.UUID       `json:"id"`
	UserID         uuid.UUID       `json:"user_id"`
	Items          []OrderLineView `json:"items"`
	TotalCents     int64           `json:"total_cents"`
	DeliveryStatus string          `json:"delivery_status"`
	PaymentStatus  *string         `json:"payment_status,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// AdminOrderListItem enriches an order with purchaser display data for the
// back-office listing.
type AdminOrderListItem struct {
	OrderView
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
}

// ProductView represents read-optimized catalog data
type ProductView struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Category           string    `json:"category"`
	PriceCents         int64     `json:"price_cents"`
	DiscountPercentage float64   `json:"discount_percentage"`
	StockQuantity      int32     `json:"stock_quantity"`
	Images             []string  `json:"images"`
	Description        string    `json:"description"`
	IsFeatured         bool      `json:"is_featured"`
	AvailableSizes     []string  `json:"available_sizes"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
}

// DashboardStats aggregates the back-office landing numbers.
type DashboardStats struct {
	TotalProducts   int64 `json:"total_products"`
	TotalOrders     int64 `json:"total_orders"`
	TotalSalesCents int64 `json:"total_sales_cents"`
	LowStockItems   int64 `json:"low_stock_items"`
}

// PaymentOverviewItem is one row of the payments read model.
type PaymentOverviewItem struct {
	OrderID       uuid.UUID `json:"order_id"`
	CustomerName  *string   `json:"customer_name,omitempty"`
	CustomerEmail *string   `json:"customer_email,omitempty"`
	TotalCents    int64     `json:"total_cents"`
	PaymentStatus *string   `json:"payment_status,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
