package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/psds-microservice/helpy/paths"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/psds-microservice/repairshop-service/api"
	"github.com/psds-microservice/repairshop-service/internal/handler"
)

// Handlers collects the per-resource handlers the router wires up.
type Handlers struct {
	Clients  *handler.ClientHandler
	Catalog  *handler.CatalogHandler
	Tickets  *handler.TicketHandler
	Products *handler.ProductHandler
	Orders   *handler.OrderHandler
	Invoices *handler.InvoiceHandler
	Stats    *handler.StatsHandler
}

func New(h Handlers) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET(paths.PathHealth, handler.Health)
	r.GET(paths.PathReady, handler.Ready)
	r.GET(paths.PathSwagger, func(c *gin.Context) { c.Redirect(http.StatusFound, paths.PathSwagger+"/") })
	r.GET(paths.PathSwagger+"/*any", func(c *gin.Context) {
		if strings.TrimPrefix(c.Param("any"), "/") == "openapi.json" {
			c.Data(http.StatusOK, "application/json", api.OpenAPISpec)
			return
		}
		if strings.TrimPrefix(c.Param("any"), "/") == "" {
			c.Request.URL.Path = paths.PathSwagger + "/index.html"
			c.Request.RequestURI = paths.PathSwagger + "/index.html"
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/openapi.json"))(c)
	})

	v1 := r.Group("/api/v1")
	{
		v1.POST("/clients", h.Clients.Create)
		v1.GET("/clients", h.Clients.List)
		v1.GET("/clients/:id", h.Clients.Get)
		v1.PUT("/clients/:id", h.Clients.Update)

		v1.GET("/catalog", h.Catalog.Get)
		v1.POST("/catalog/device-types", h.Catalog.AddDeviceType)
		v1.PUT("/catalog/device-types", h.Catalog.RenameDeviceType)
		v1.DELETE("/catalog/device-types/:value", h.Catalog.RemoveDeviceType)
		v1.POST("/catalog/brands", h.Catalog.AddBrand)
		v1.PUT("/catalog/brands", h.Catalog.RenameBrand)
		v1.DELETE("/catalog/brands/:value", h.Catalog.RemoveBrand)
		v1.POST("/catalog/models", h.Catalog.AddModel)
		v1.PUT("/catalog/models/:id", h.Catalog.RenameModel)
		v1.DELETE("/catalog/models/:id", h.Catalog.RemoveModel)
		v1.POST("/catalog/tasks", h.Catalog.AddTask)
		v1.PUT("/catalog/tasks", h.Catalog.RenameTask)
		v1.DELETE("/catalog/tasks/:value", h.Catalog.RemoveTask)

		v1.POST("/tickets", h.Tickets.Create)
		v1.GET("/tickets", h.Tickets.List)
		v1.GET("/tickets/:id", h.Tickets.Get)
		v1.PUT("/tickets/:id", h.Tickets.Update)
		v1.GET("/popular-tasks", h.Tickets.PopularTasks)

		v1.POST("/products", h.Products.Create)
		v1.GET("/products", h.Products.List)
		v1.GET("/products/:id", h.Products.Get)
		v1.PUT("/products/:id", h.Products.Update)
		v1.POST("/products/:id/stock", h.Products.AdjustStock)

		v1.GET("/cart", h.Orders.GetCart)
		v1.POST("/cart/items", h.Orders.AddToCart)
		v1.DELETE("/cart/items/:productId", h.Orders.RemoveFromCart)
		v1.DELETE("/cart", h.Orders.ClearCart)

		v1.POST("/orders", h.Orders.Create)
		v1.GET("/orders", h.Orders.List)
		v1.GET("/orders/:id", h.Orders.Get)
		v1.PATCH("/orders/:id/status", h.Orders.UpdateStatus)
		v1.DELETE("/orders/:id", h.Orders.Delete)
		v1.GET("/orders/:id/receipt", h.Orders.Receipt)

		v1.POST("/invoices", h.Invoices.Create)
		v1.GET("/invoices", h.Invoices.List)
		v1.GET("/invoices/:id", h.Invoices.Get)
		v1.PUT("/invoices/:id", h.Invoices.Update)
		v1.PATCH("/invoices/:id/status", h.Invoices.UpdateStatus)
		v1.GET("/invoices/:id/receipt", h.Invoices.Receipt)

		v1.GET("/stats", h.Stats.Get)
	}

	return r
}
