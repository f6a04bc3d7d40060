package routes

import (
	"assistec/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBilling = "/billing"
)

func addBillingRoutes(rg *gin.RouterGroup, billingHandler *handlers.BillingHandler, paymentHandler *handlers.InvoicePaymentHandler) {
	billing := rg.Group(PathBilling)
	{
		billing.GET("/planos", billingHandler.Plans)
		billing.GET("/assinatura", billingHandler.Subscription)
		billing.PUT("/assinatura", billingHandler.ChangePlan)
		billing.DELETE("/assinatura", billingHandler.CancelSubscription)
		billing.GET("/faturas", billingHandler.Invoices)
		billing.GET("/faturas/:id", billingHandler.Invoice)
	}

	payments := billing.Group("/faturas/:id/pagamentos")
	{
		// Pagamento da fatura via Mercado Pago.
		payments.POST("", paymentHandler.PayInvoice)
		payments.GET("", paymentHandler.ListByInvoice)
		payments.GET("/:paymentId", paymentHandler.Get)
	}
}
