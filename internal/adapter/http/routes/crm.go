package routes

import (
	"editora_prisma/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathLeads    = "/leads"
	PathClients  = "/clients"
	PathQuotes   = "/quotes"
	PathProjects = "/projects"
	PathOrders   = "/orders"
	PathInvoices = "/invoices"
)

func addCRMRoutes(
	rg *gin.RouterGroup,
	leadHandler *handlers.LeadHandler,
	clientHandler *handlers.ClientHandler,
	quoteHandler *handlers.QuoteHandler,
	projectHandler *handlers.ProjectHandler,
	orderHandler *handlers.OrderHandler,
	invoiceHandler *handlers.InvoiceHandler,
) {
	leads := rg.Group(PathLeads)
	{
		leads.POST("", leadHandler.CreateLead)
		leads.GET("", leadHandler.ListLeads)
		leads.GET("/:id", leadHandler.GetLead)
		leads.PATCH("/:id/stage", leadHandler.UpdateLeadStage)
	}

	clients := rg.Group(PathClients)
	{
		clients.POST("", clientHandler.CreateClient)
		clients.GET("", clientHandler.ListClients)
		clients.GET("/:id", clientHandler.GetClient)
		clients.PATCH("/:id/status", clientHandler.UpdateClientStatus)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.PATCH("/:id/send", quoteHandler.SendQuote)
		quotes.PATCH("/:id/reject", quoteHandler.RejectQuote)
		quotes.GET("/:id/order", orderHandler.GetOrderByQuote)

		// Front-end callable endpoints.
		quotes.POST("/:id/approve", quoteHandler.ApproveQuote)
		quotes.POST("/:id/pdf", quoteHandler.GenerateQuotePDF)
	}

	projects := rg.Group(PathProjects)
	{
		projects.POST("", projectHandler.CreateProject)
		projects.GET("", projectHandler.ListProjects)
		projects.GET("/:id", projectHandler.GetProject)
		projects.PATCH("/:id/status", projectHandler.UpdateProjectStatus)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("/:id", orderHandler.GetOrder)
		orders.GET("/:id/invoices", invoiceHandler.ListInvoicesByOrder)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("/:id", invoiceHandler.GetInvoice)
		invoices.POST("/:id/payments", invoiceHandler.CollectInvoicePayment)
	}
}
