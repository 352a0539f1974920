package response

import (
	"time"

	"shoestore-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type DashboardStatsResponse struct {
	TotalProducts   int64 `json:"total_products"`
	TotalOrders     int64 `json:"total_orders"`
	TotalSalesCents int64 `json:"total_sales_cents"`
	LowStockItems   int64 `json:"low_stock_items"`
}

type PaymentOverviewResponse struct {
	OrderID       uuid.UUID `json:"order_id"`
	CustomerName  *string   `json:"customer_name,omitempty"`
	CustomerEmail *string   `json:"customer_email,omitempty"`
	TotalCents    int64     `json:"total_cents"`
	PaymentStatus *string   `json:"payment_status,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromDashboardStats(stats *queries.DashboardStats) *DashboardStatsResponse {
	var resp DashboardStatsResponse
	_ = copier.Copy(&resp, stats)
	return &resp
}

func FromPaymentOverview(items []*queries.PaymentOverviewItem) []*PaymentOverviewResponse {
	out := make([]*PaymentOverviewResponse, len(items))
	for i, item := range items {
		out[i] = &PaymentOverviewResponse{
			OrderID:       item.OrderID,
			CustomerName:  item.CustomerName,
			CustomerEmail: item.CustomerEmail,
			TotalCents:    item.TotalCents,
			PaymentStatus: item.PaymentStatus,
			CreatedAt:     item.CreatedAt,
		}
	}
	return out
}
