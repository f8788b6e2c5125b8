package cmd

import (
	"context"

	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/mail"
	"marketplace/internal/adapters/out/memory"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/redis"
	"marketplace/internal/auth"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/ports"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	carts      ports.CartStore
	notifier   ports.Notifier
	tokens     *auth.TokenIssuer
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, carts ports.CartStore, notifier ports.Notifier) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		carts:      carts,
		notifier:   notifier,
		tokens:     auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL),
	}
}

// NewCartStore keeps carts in Redis when REDIS_HOST is set and in process
// memory otherwise. The returned close function releases the connection.
func NewCartStore(ctx context.Context, cfg Config) (ports.CartStore, func() error, error) {
	if cfg.RedisHost == "" {
		log.Warn().Msg("REDIS_HOST is not set, carts are kept in memory")
		return memory.NewCartStore(), func() error { return nil }, nil
	}

	client, err := redis.NewClient(ctx, redis.Options{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return nil, nil, err
	}
	return redis.NewCartStore(client, cfg.CartTTL), client.Close, nil
}

// NewNotifier sends confirmations over SMTP when SMTP_HOST is set and drops
// them otherwise.
func NewNotifier(cfg Config) ports.Notifier {
	if cfg.SMTPHost == "" {
		log.Warn().Msg("SMTP_HOST is not set, order confirmations are not sent")
		return mail.NopNotifier{}
	}
	return mail.NewNotifier(mail.Options{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.MailFrom,
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderingUoWFactory() commands.OrderingUoWFactory {
	return FuncOrderingUoWFactory(func() commands.OrderingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) accountUoWFactory() commands.AccountUoWFactory {
	return FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateSignUpCommandHandler() commands.SignUpCommandHandler {
	return commands.NewSignUpCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateRegisterSupplierCommandHandler() commands.RegisterSupplierCommandHandler {
	return commands.NewRegisterSupplierCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderingUoWFactory())
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	return commands.NewAddCartItemCommandHandler(c.catalogUoWFactory(), c.carts)
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	return commands.NewRemoveCartItemCommandHandler(c.carts)
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	return commands.NewCheckoutCommandHandler(c.orderingUoWFactory(), c.carts, c.notifier)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return commands.NewDeleteProductCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateMarkOrderReadyCommandHandler() commands.MarkOrderReadyCommandHandler {
	return commands.NewMarkOrderReadyCommandHandler(c.orderingUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDeliveryCommandHandler() commands.UpdateDeliveryCommandHandler {
	return commands.NewUpdateDeliveryCommandHandler(c.orderingUoWFactory())
}

func (c *CompositionRoot) CreateChangeDeliveryStatusCommandHandler() commands.ChangeDeliveryStatusCommandHandler {
	return commands.NewChangeDeliveryStatusCommandHandler(c.orderingUoWFactory())
}

func (c *CompositionRoot) CreateCreateSupplierCommandHandler() commands.CreateSupplierCommandHandler {
	return commands.NewCreateSupplierCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateUpdateSupplierCommandHandler() commands.UpdateSupplierCommandHandler {
	return commands.NewUpdateSupplierCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateDeleteSupplierCommandHandler() commands.DeleteSupplierCommandHandler {
	return commands.NewDeleteSupplierCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateSetSupplierApprovalCommandHandler() commands.SetSupplierApprovalCommandHandler {
	return commands.NewSetSupplierApprovalCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.carts, c.uowFactory)
}

// CreateServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	commandHandlers := httpin.CommandHandlers{
		SignUp:               c.CreateSignUpCommandHandler(),
		Login:                c.CreateLoginCommandHandler(),
		CreateOrder:          c.CreateCreateOrderCommandHandler(),
		AddCartItem:          c.CreateAddCartItemCommandHandler(),
		RemoveCartItem:       c.CreateRemoveCartItemCommandHandler(),
		Checkout:             c.CreateCheckoutCommandHandler(),
		RegisterSupplier:     c.CreateRegisterSupplierCommandHandler(),
		CreateProduct:        c.CreateCreateProductCommandHandler(),
		UpdateProduct:        c.CreateUpdateProductCommandHandler(),
		DeleteProduct:        c.CreateDeleteProductCommandHandler(),
		MarkOrderReady:       c.CreateMarkOrderReadyCommandHandler(),
		UpdateDelivery:       c.CreateUpdateDeliveryCommandHandler(),
		ChangeDeliveryStatus: c.CreateChangeDeliveryStatusCommandHandler(),
		CreateSupplier:       c.CreateCreateSupplierCommandHandler(),
		UpdateSupplier:       c.CreateUpdateSupplierCommandHandler(),
		DeleteSupplier:       c.CreateDeleteSupplierCommandHandler(),
		SetSupplierApproval:  c.CreateSetSupplierApprovalCommandHandler(),
	}

	queryHandlers := httpin.QueryHandlers{
		GetPrincipal:           queries.NewGetPrincipalQueryHandler(c.gormDB),
		ListProducts:           queries.NewListProductsQueryHandler(c.gormDB),
		GetProduct:             queries.NewGetProductQueryHandler(c.gormDB),
		GetCart:                c.CreateGetCartQueryHandler(),
		GetOrder:               queries.NewGetOrderQueryHandler(c.gormDB),
		ListCustomerOrders:     queries.NewListCustomerOrdersQueryHandler(c.gormDB),
		ListOrders:             queries.NewListOrdersQueryHandler(c.gormDB),
		ListDeliveries:         queries.NewListDeliveriesQueryHandler(c.gormDB),
		ListSupplierProducts:   queries.NewListSupplierProductsQueryHandler(c.gormDB),
		ListSupplierOrders:     queries.NewListSupplierOrdersQueryHandler(c.gormDB),
		ListSupplierDeliveries: queries.NewListSupplierDeliveriesQueryHandler(c.gormDB),
		GetSupplierDashboard:   queries.NewGetSupplierDashboardQueryHandler(c.gormDB),
		GetSupplierSales:       queries.NewGetSupplierSalesQueryHandler(c.gormDB),
		ListSuppliers:          queries.NewListSuppliersQueryHandler(c.gormDB),
	}

	return httpin.NewServer(commandHandlers, queryHandlers, c.tokens)
}

// FuncCatalogUoWFactory adapts a function to commands.CatalogUoWFactory.
type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

// FuncOrderingUoWFactory adapts a function to commands.OrderingUoWFactory.
type FuncOrderingUoWFactory func() commands.OrderingUoW

func (f FuncOrderingUoWFactory) Create() commands.OrderingUoW {
	return f()
}

// FuncAccountUoWFactory adapts a function to commands.AccountUoWFactory.
type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}
