package routes

import (
	"assistec/internal/adapter/http/handlers"
	"assistec/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomers = "/clientes"
	PathOrders    = "/ordens"
	PathProducts  = "/produtos"
	PathFinance   = "/financeiro"
	PathBackup    = "/backup"
	PathWhatsApp  = "/whatsapp"
	PathDashboard = "/dashboard"
)

func addCustomerRoutes(rg *gin.RouterGroup, h *handlers.CustomerHandler) {
	customers := rg.Group(PathCustomers)
	{
		customers.GET("", h.List)
		customers.POST("", h.Create)
		customers.GET("/:id", h.Get)
		customers.PUT("/:id", h.Update)
		customers.DELETE("/:id", h.Delete)
	}
}

func addOrderRoutes(rg *gin.RouterGroup, h *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("", h.List)
		orders.POST("", h.Create)
		orders.GET("/stats", h.Stats)
		orders.GET("/:id", h.Get)
		orders.PUT("/:id", h.Update)
		orders.DELETE("/:id", h.Delete)
		orders.PATCH("/:id/status", h.UpdateStatus)
		orders.GET("/:id/historico", h.History)
		orders.POST("/:id/fotos", h.UploadPhotos)
		orders.DELETE("/:id/fotos/:photoId", h.DeletePhoto)
	}
}

func addProductRoutes(rg *gin.RouterGroup, h *handlers.ProductHandler) {
	products := rg.Group(PathProducts)
	{
		products.GET("", h.List)
		products.POST("", h.Create)
		products.GET("/categorias", h.Categories)
		products.POST("/categorias", h.CreateCategory)
		products.GET("/alertas", h.Alerts)
		products.GET("/:id", h.Get)
		products.PUT("/:id", h.Update)
		products.DELETE("/:id", h.Delete)
		products.POST("/:id/movimentar", h.MoveStock)
		products.GET("/:id/movimentacoes", h.Movements)
	}
}

func addFinanceRoutes(rg *gin.RouterGroup, h *handlers.FinanceHandler) {
	finance := rg.Group(PathFinance)
	finance.GET("/categorias", h.Categories)
	finance.GET("/resumo", h.Summary)

	for _, kind := range []entities.EntryKind{entities.EntryKindCashFlow, entities.EntryKindPayable, entities.EntryKindReceivable} {
		book := finance.Group("/" + string(kind))
		book.GET("", h.List(kind))
		book.POST("", h.Create(kind))
		book.PUT("/:id", h.Update(kind))
		book.DELETE("/:id", h.Delete(kind))
		switch kind {
		case entities.EntryKindPayable:
			book.PATCH("/:id/pagar", h.Settle(kind))
		case entities.EntryKindReceivable:
			book.PATCH("/:id/receber", h.Settle(kind))
		}
	}
}

func addBackupRoutes(rg *gin.RouterGroup, h *handlers.BackupHandler) {
	backup := rg.Group(PathBackup)
	{
		backup.GET("", h.List)
		backup.GET("/status", h.Status)
		backup.POST("/create", h.Create)
		backup.POST("/restore/:filename", h.Restore)
		backup.GET("/download/:filename", h.Download)
		backup.DELETE("/:filename", h.Delete)
	}
}

func addWhatsAppRoutes(rg *gin.RouterGroup, h *handlers.WhatsAppHandler) {
	whatsapp := rg.Group(PathWhatsApp)
	{
		whatsapp.GET("/status", h.Status)
		whatsapp.GET("/qrcode", h.QRCode)
		whatsapp.POST("/disconnect", h.Disconnect)
		whatsapp.POST("/send", h.Send)
		whatsapp.GET("/bot/config", h.BotConfig)
		whatsapp.PUT("/bot/config", h.UpdateBotConfig)
		whatsapp.POST("/bot/simulate", h.SimulateBot)
	}
}

func addDashboardRoutes(rg *gin.RouterGroup, h *handlers.DashboardHandler) {
	rg.GET(PathDashboard, h.Get)
}
