package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marsnewbie/kiwipure-cleaning/internal/adapter/http/handlers"
)

const (
	PathPing      = "/ping"
	PathEstimates = "/estimates"
	PathPricing   = "/pricing"
	PathQuotes    = "/quotes"
	PathContact   = "/contact"
	PathDeposits  = "/deposits"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addEstimateRoutes(rg *gin.RouterGroup, h *handlers.EstimateHandler) {
	rg.POST(PathEstimates+"/preview", h.PreviewEstimate)
	rg.GET(PathPricing+"/variants", h.ListVariants)
}

func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteHandler, limit gin.HandlerFunc) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", limit, h.CreateQuote)
		quotes.GET("/export", h.ExportQuotes)
		quotes.GET("/:id", h.GetQuote)
		quotes.GET("/:id/pdf", h.GetQuotePDF)
	}
}

func addContactRoutes(rg *gin.RouterGroup, h *handlers.ContactHandler, limit gin.HandlerFunc) {
	contact := rg.Group(PathContact)
	{
		contact.POST("", limit, h.CreateContact)
		contact.GET("/:id", h.GetContact)
	}
}

func addDepositRoutes(rg *gin.RouterGroup, h *handlers.DepositHandler) {
	deposits := rg.Group(PathDeposits)
	{
		deposits.POST("/:quote_id", h.CreateDeposit)
		deposits.GET("/:quote_id", h.GetDeposit)
	}
}
