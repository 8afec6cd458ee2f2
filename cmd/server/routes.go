package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"vehicle-finance.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	leadHandler       *handlers.LeadHandler
	extractionHandler *handlers.ExtractionHandler
	syncHandler       *handlers.SyncHandler
	viewHandler       *handlers.ViewHandler
	idempotency       gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Lead routes
		leads := v1.Group("/leads")
		{
			leads.POST("", d.idempotency, d.leadHandler.CreateLead)
			leads.GET("", d.leadHandler.ListLeads)
			leads.GET("/:id", d.leadHandler.GetLead)
			leads.PUT("/:id/process", d.leadHandler.ProcessLead)
			leads.GET("/:id/agreement", d.leadHandler.GetAgreement)
		}

		// Document extraction
		v1.POST("/extractions", d.extractionHandler.Extract)

		// Sync indicator
		v1.GET("/sync/status", d.syncHandler.GetStatus)

		// Navigation state
		view := v1.Group("/view")
		{
			view.GET("", d.viewHandler.GetView)
			view.PUT("", d.viewHandler.SetView)
		}
	}
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "vehicle-finance-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Idempotency-Key, X-Request-ID")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}
