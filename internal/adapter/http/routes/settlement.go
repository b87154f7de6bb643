package routes

import (
	"notesbytes_settlement/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSettlements = "/settlements"
	PathOrders      = "/orders"
)

func addSettlementRoutes(rg *gin.RouterGroup, opsHandler *handlers.SettlementOpsHandler) {
	settlements := rg.Group(PathSettlements)
	{
		settlements.GET("/stale", opsHandler.ListStale)
		settlements.GET("/:id", opsHandler.GetRevenue)
		settlements.PATCH("/:id/reset", opsHandler.ResetForRetry)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("/:order_id/payment-logs", opsHandler.ListLogs)
	}
}
