package routes

import (
	"log"
	"strconv"

	"notesbytes_settlement/internal/adapter/http/handlers"
	"notesbytes_settlement/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var router = gin.Default()

const PORT = 8080

// Run starts the internal operator HTTP surface and blocks. The public
// marketplace API lives in a separate service; this listener only
// carries health, metrics and settlement-review endpoints.
func Run(opsUseCase usecase.ISettlementOpsUseCase) {
	setMiddlewares()
	getRoutes(opsUseCase)

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(opsUseCase usecase.ISettlementOpsUseCase) {
	opsHandler := handlers.NewSettlementOpsHandler(opsUseCase)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSettlementRoutes(v1, opsHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
