package router

import (
	"net/http"

	"github.com/bondtrack/backend/internal/interfaces/http/dto"
	"github.com/bondtrack/backend/internal/interfaces/http/handler"
	"github.com/gin-gonic/gin"
)

// Handlers collects every HTTP handler the router wires up.
type Handlers struct {
	Auth       *handler.AuthHandler
	Tenant     *handler.TenantHandler
	Person     *handler.PersonHandler
	Indemnitor *handler.IndemnitorHandler
	Reference  *handler.ReferenceHandler
	CourtDate  *handler.CourtDateHandler
	CheckIn    *handler.CheckInHandler
	Bond       *handler.BondHandler
	Invoice    *handler.InvoiceHandler
	Receipt    *handler.ReceiptHandler
	Widget     *handler.WidgetHandler
	Print      *handler.PrintHandler
	Health     *handler.HealthHandler
}

// Setup registers all routes on the engine. The apiMiddleware chain is
// applied to the versioned API group only; the bare /health probe stays
// outside it so load balancers can hit it without credentials.
func Setup(engine *gin.Engine, h Handlers, apiMiddleware ...gin.HandlerFunc) {
	engine.HandleMethodNotAllowed = true
	engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, dto.NewErrorResponseWithRequestID(
			dto.ErrCodeMethodNotAllowed,
			"Method not allowed",
			c.GetString("request_id"),
		))
	})
	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponseWithRequestID(
			dto.ErrCodeNotFound,
			"Resource not found",
			c.GetString("request_id"),
		))
	})

	engine.GET("/health", h.Health.Check)

	api := engine.Group("/api/v1")
	api.Use(apiMiddleware...)

	api.GET("/health", h.Health.Check)

	auth := api.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.Refresh)

	api.GET("/tenant", h.Tenant.Get)
	api.PUT("/tenant", h.Tenant.Update)

	people := api.Group("/people")
	people.GET("", h.Person.List)
	people.POST("", h.Person.Create)

	person := people.Group("/:id")
	person.GET("", h.Person.Get)
	person.PUT("", h.Person.Update)
	person.DELETE("", h.Person.Delete)

	indemnitors := person.Group("/indemnitors")
	indemnitors.GET("", h.Indemnitor.List)
	indemnitors.POST("", h.Indemnitor.Create)
	indemnitors.GET("/:childID", h.Indemnitor.Get)
	indemnitors.PUT("/:childID", h.Indemnitor.Update)
	indemnitors.DELETE("/:childID", h.Indemnitor.Delete)

	references := person.Group("/references")
	references.GET("", h.Reference.List)
	references.POST("", h.Reference.Create)
	references.GET("/:childID", h.Reference.Get)
	references.PUT("/:childID", h.Reference.Update)
	references.DELETE("/:childID", h.Reference.Delete)

	courtDates := person.Group("/court-dates")
	courtDates.GET("", h.CourtDate.List)
	courtDates.POST("", h.CourtDate.Create)
	courtDates.GET("/:childID", h.CourtDate.Get)
	courtDates.PUT("/:childID", h.CourtDate.Update)
	courtDates.DELETE("/:childID", h.CourtDate.Delete)

	checkIns := person.Group("/check-ins")
	checkIns.GET("", h.CheckIn.List)
	checkIns.POST("", h.CheckIn.Create)
	checkIns.GET("/:childID", h.CheckIn.Get)
	checkIns.PUT("/:childID", h.CheckIn.Update)
	checkIns.DELETE("/:childID", h.CheckIn.Delete)

	bonds := person.Group("/bonds")
	bonds.GET("", h.Bond.List)
	bonds.POST("", h.Bond.Create)
	bonds.GET("/:childID", h.Bond.Get)
	bonds.PUT("/:childID", h.Bond.Update)
	bonds.DELETE("/:childID", h.Bond.Delete)

	person.GET("/billing", h.Invoice.BillingContext)

	invoices := person.Group("/invoices")
	invoices.GET("", h.Invoice.List)
	invoices.POST("", h.Invoice.Create)
	invoices.GET("/:invoiceID", h.Invoice.Get)
	invoices.PUT("/:invoiceID", h.Invoice.Update)
	invoices.DELETE("/:invoiceID", h.Invoice.Delete)

	receipts := invoices.Group("/:invoiceID/receipts")
	receipts.GET("", h.Receipt.List)
	receipts.POST("", h.Receipt.Create)
	receipts.PUT("/:receiptID", h.Receipt.Update)
	receipts.DELETE("/:receiptID", h.Receipt.Delete)

	widgets := person.Group("/widgets")
	widgets.GET("/billing-summary", h.Widget.BillingSummary)
	widgets.GET("/recent-court-date", h.Widget.RecentCourtDate)
	widgets.GET("/last-check-in", h.Widget.LastCheckIn)

	printGroup := api.Group("/print")
	printGroup.GET("/court-dates/:id/notice", h.Print.CourtNotice)
	printGroup.GET("/receipts/:id", h.Print.Receipt)
}
