package api

import (
	"net/http"

	resdto "shoestore-api/internal/handler/dto/response"
	"shoestore-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardQueries queries.DashboardQueries
}

func NewDashboardHandler(dashboardQueries queries.DashboardQueries) *DashboardHandler {
	return &DashboardHandler{
		dashboardQueries: dashboardQueries,
	}
}

// @Summary Dashboard stats
// @Description Aggregate catalog and order numbers (admin only)
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DashboardStatsResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardQueries.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromDashboardStats(stats))
}

// @Summary Payments overview
// @Description Per-order payment listing, newest first (admin only)
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PaymentOverviewResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/dashboard/payments [get]
func (h *DashboardHandler) GetPaymentsOverview(c *gin.Context) {
	items, err := h.dashboardQueries.PaymentsOverview(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentOverview(items))
}
