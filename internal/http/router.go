package api

import (
	"log"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	"rental-backend/internal/app"
	h "rental-backend/internal/http/handlers"
	"rental-backend/internal/http/middleware"
)

func NewRouter(a *app.App) *gin.Engine {
	h.RegisterValidators()

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		gin.Recovery(),
		middleware.Metrics(a.Metrics),
		middleware.CORS(a.Env.CORSAllowedOrigins),
		middleware.Actor([]byte(a.Env.JWTSecret)),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":      "route not found",
			"code":       "not_found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": middleware.GetRequestID(c),
		})
	})

	r.GET("/metrics", gin.WrapH(a.Metrics.Handler()))

	sys := h.System{DB: a.DB, Driver: a.Env.DBDriver, Routes: r.Routes}
	api := r.Group("/api")
	{
		api.GET("/health", sys.Health)
		api.GET("/db-check", sys.DBCheck)
		api.GET("/routes", sys.ListRoutes)

		// Properties
		properties := api.Group("/properties")
		h.NewCrud("property", a.Properties).Mount(properties)
		extra := h.Properties{Props: a.Properties, Reviews: a.Reviews, Images: a.Images}
		properties.POST("/:id/archive", extra.Archive)
		properties.POST("/:id/restore", extra.Restore)
		properties.GET("/:id/reviews", extra.ListReviews)
		properties.POST("/:id/images", extra.UploadImage)

		// Tenants
		h.NewCrud("tenant", a.Tenants).Mount(api.Group("/tenants"))

		// Bookings
		bookings := api.Group("/bookings")
		h.NewCrud("booking", a.Bookings).Mount(bookings)
		bookings.POST("/:id/cancel", h.CancelBooking(a.Bookings))

		// Payments
		payments := api.Group("/payments")
		h.NewCrud("payment", a.Payments).Mount(payments)
		payments.GET("/:id/receipt", h.PaymentReceipt(a.Payments))

		// Reviews, maintenance, images
		h.NewCrud("review", a.Reviews).Mount(api.Group("/reviews"))
		h.NewCrud("maintenance request", a.Maintenance).Mount(api.Group("/maintenance"))
		h.NewCrud("image", a.Images).Mount(api.Group("/images"))
	}

	return r
}
