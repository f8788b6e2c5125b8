package http

import (
	"net/http"

	"marketplace/internal/auth"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// CommandHandlers are the write use cases exposed over HTTP.
type CommandHandlers struct {
	SignUp               commands.SignUpCommandHandler
	Login                commands.LoginCommandHandler
	CreateOrder          commands.CreateOrderCommandHandler
	AddCartItem          commands.AddCartItemCommandHandler
	RemoveCartItem       commands.RemoveCartItemCommandHandler
	Checkout             commands.CheckoutCommandHandler
	RegisterSupplier     commands.RegisterSupplierCommandHandler
	CreateProduct        commands.CreateProductCommandHandler
	UpdateProduct        commands.UpdateProductCommandHandler
	DeleteProduct        commands.DeleteProductCommandHandler
	MarkOrderReady       commands.MarkOrderReadyCommandHandler
	UpdateDelivery       commands.UpdateDeliveryCommandHandler
	ChangeDeliveryStatus commands.ChangeDeliveryStatusCommandHandler
	CreateSupplier       commands.CreateSupplierCommandHandler
	UpdateSupplier       commands.UpdateSupplierCommandHandler
	DeleteSupplier       commands.DeleteSupplierCommandHandler
	SetSupplierApproval  commands.SetSupplierApprovalCommandHandler
}

// QueryHandlers are the read use cases exposed over HTTP.
type QueryHandlers struct {
	GetPrincipal           queries.GetPrincipalQueryHandler
	ListProducts           queries.ListProductsQueryHandler
	GetProduct             queries.GetProductQueryHandler
	GetCart                queries.GetCartQueryHandler
	GetOrder               queries.GetOrderQueryHandler
	ListCustomerOrders     queries.ListCustomerOrdersQueryHandler
	ListOrders             queries.ListOrdersQueryHandler
	ListDeliveries         queries.ListDeliveriesQueryHandler
	ListSupplierProducts   queries.ListSupplierProductsQueryHandler
	ListSupplierOrders     queries.ListSupplierOrdersQueryHandler
	ListSupplierDeliveries queries.ListSupplierDeliveriesQueryHandler
	GetSupplierDashboard   queries.GetSupplierDashboardQueryHandler
	GetSupplierSales       queries.GetSupplierSalesQueryHandler
	ListSuppliers          queries.ListSuppliersQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
	tokens   *auth.TokenIssuer
}

func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers, tokens *auth.TokenIssuer) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
		tokens:   tokens,
	}
}

// NewRouter builds the echo instance serving every route of s.
// It fails when the embedded OpenAPI document is invalid.
func NewRouter(s *Server) (*echo.Echo, error) {
	doc, err := loadOpenAPI()
	if err != nil {
		return nil, err
	}
	registerSwaggerDoc()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newRequestValidator()
	e.HTTPErrorHandler = errorHandler
	e.Use(requestLogger(), s.identify)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, doc)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.POST("/signup", s.SignUp)
	e.POST("/login", s.Login)

	e.GET("/products", s.ListProducts)
	e.GET("/products/:slug", s.GetProduct)
	e.POST("/products/:slug/orders", s.CreateOrder)
	e.GET("/orders/:id", s.GetOrder)

	e.GET("/cart", s.GetCart)
	e.POST("/cart/items/:productID", s.AddCartItem)
	e.DELETE("/cart/items/:productID", s.RemoveCartItem)
	e.POST("/checkout", s.Checkout, requireAuth)

	e.GET("/me/orders", s.ListMyOrders, requireAuth)

	e.POST("/supplier/register", s.RegisterSupplier, requireAuth)
	supplier := e.Group("/supplier", requireSupplier)
	supplier.GET("/dashboard", s.GetSupplierDashboard)
	supplier.GET("/products", s.ListSupplierProducts)
	supplier.POST("/products", s.CreateProduct)
	supplier.PUT("/products/:id", s.UpdateProduct)
	supplier.DELETE("/products/:id", s.DeleteProduct)
	supplier.GET("/sales", s.GetSupplierSales)
	supplier.GET("/orders", s.ListSupplierOrders)
	supplier.GET("/deliveries", s.ListSupplierDeliveries)
	supplier.POST("/orders/:id/ready", s.MarkOrderReady)

	backoffice := e.Group("/backoffice", requireStaff)
	backoffice.GET("/orders", s.ListOrders)
	backoffice.GET("/orders/export.csv", s.ExportOrdersCSV)
	backoffice.GET("/orders/export.json", s.ExportOrdersJSON)
	backoffice.PUT("/orders/:id/delivery", s.UpdateDelivery)
	backoffice.GET("/deliveries", s.ListDeliveries)
	backoffice.POST("/deliveries/:id/status/:status", s.ChangeDeliveryStatus)
	backoffice.GET("/suppliers", s.ListSuppliers)
	backoffice.POST("/suppliers", s.CreateSupplier)
	backoffice.PUT("/suppliers/:id", s.UpdateSupplier)
	backoffice.DELETE("/suppliers/:id", s.DeleteSupplier)
	backoffice.POST("/suppliers/:id/approve", s.ApproveSupplier)
	backoffice.POST("/suppliers/:id/revoke", s.RevokeSupplier)

	return e, nil
}
