package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/caja-pos/internal/application/auth"
	"github.com/tu-usuario/caja-pos/internal/application/billing"
	"github.com/tu-usuario/caja-pos/internal/application/catalog"
	"github.com/tu-usuario/caja-pos/internal/application/returns"
	"github.com/tu-usuario/caja-pos/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC *catalog.CatalogUseCase
	InvoiceUC *billing.InvoiceUseCase
	ReceiptUC *billing.ReceiptUseCase
	ReturnUC  *returns.ReturnUseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo (protegido). El lookup es la ruta caliente de la caja.
	productHandler := NewProductHandler(deps.CatalogUC)
	protected.Get("/catalog/lookup", productHandler.Lookup)

	products := protected.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", RequireRole(entity.RoleAdmin, entity.RoleGerente), productHandler.Create)
	products.Put("/:id", RequireRole(entity.RoleAdmin, entity.RoleGerente), productHandler.Update)

	// Facturas y recibos (protegido)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.ReceiptUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/receipt", invoiceHandler.ReceiptHTML)
	invoices.Get("/:id/receipt.pdf", invoiceHandler.ReceiptPDF)
	invoices.Delete("/:id", RequireRole(entity.RoleAdmin), invoiceHandler.Delete)

	// Devoluciones (protegido)
	returnsGroup := protected.Group("/returns")
	returnHandler := NewReturnHandler(deps.ReturnUC, deps.ReceiptUC)
	returnsGroup.Get("/lookup", returnHandler.Lookup)
	returnsGroup.Post("/", returnHandler.Create)
	returnsGroup.Get("/:id", returnHandler.GetByID)
	returnsGroup.Get("/:id/receipt", returnHandler.ReceiptHTML)
}
