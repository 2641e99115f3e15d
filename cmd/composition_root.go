package cmd

import (
	"context"
	"fmt"
	"net"

	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/events"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/security"
	"storefront/internal/adapters/out/sessionstore"
	"storefront/internal/core/application/checkout"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/analytics"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/partner"
	"storefront/internal/core/domain/model/payment"
	"storefront/internal/core/domain/model/shipping"
	"storefront/internal/core/ports"
	"storefront/internal/jobs"
	"storefront/internal/pkg/websession"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CompositionRoot owns the long-lived dependencies and builds handlers on
// demand.
type CompositionRoot struct {
	cfg        Config
	logger     *zap.Logger
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	redis      redis.UniversalClient
	publisher  ports.EventPublisher
	closers    []func() error

	strategy partner.Strategy
	hasher   *security.BcryptHasher
	tokens   *security.JWTService
}

func NewCompositionRoot(cfg Config, logger *zap.Logger, gormDB *gorm.DB) (*CompositionRoot, error) {
	rate, err := decimal.NewFromString(cfg.Tax.Rate)
	if err != nil {
		return nil, fmt.Errorf("tax rate: %w", err)
	}
	var tax partner.TaxPolicy = partner.NoTax{}
	if rate.IsPositive() {
		tax = partner.FixedRateTax{Rate: rate}
	}

	tokens, err := security.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	if err != nil {
		return nil, err
	}

	c := &CompositionRoot{
		cfg:        cfg,
		logger:     logger,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		strategy:   partner.NewStrategy(tax),
		hasher:     security.NewBcryptHasher(cfg.Auth.BcryptCost),
		tokens:     tokens,
	}

	if len(cfg.Kafka.Brokers) > 0 {
		kafka, err := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.TopicPrefix)
		if err != nil {
			return nil, err
		}
		c.publisher = kafka
		c.closers = append(c.closers, kafka.Close)
	} else {
		c.publisher = events.NewLogPublisher(logger)
	}
	return c, nil
}

// Close releases connections opened by the root, last opened first.
func (c *CompositionRoot) Close() error {
	var firstErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (c *CompositionRoot) Redis() redis.UniversalClient {
	if c.redis == nil {
		c.redis = redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs:    c.cfg.Redis.Addrs,
			Password: c.cfg.Redis.Password,
			DB:       c.cfg.Redis.DB,
		})
		c.closers = append(c.closers, c.redis.Close)
	}
	return c.redis
}

func (c *CompositionRoot) CreateShippingRepository() *shipping.Repository {
	return shipping.NewRepository(shippingMethodSource{uowFactory: c.uowFactory}, shipping.Free{})
}

func (c *CompositionRoot) CreatePaymentRepository() (*payment.Repository, error) {
	if len(c.cfg.Payment.Methods) == 0 {
		return payment.NewRepository(payment.NoFeePayment{}), nil
	}

	methods := make([]payment.Method, 0, len(c.cfg.Payment.Methods))
	for _, m := range c.cfg.Payment.Methods {
		method, err := newPaymentMethod(m)
		if err != nil {
			return nil, fmt.Errorf("payment method %q: %w", m.Code, err)
		}
		methods = append(methods, method)
	}
	return payment.NewRepository(methods...), nil
}

func newPaymentMethod(m PaymentMethodConfig) (payment.Method, error) {
	switch m.Kind {
	case "", "no_fee":
		return payment.NoFeePayment{}, nil
	case "fixed":
		fee, err := decimal.NewFromString(m.Fee)
		if err != nil {
			return nil, err
		}
		tax := decimal.Zero
		if m.Tax != "" {
			if tax, err = decimal.NewFromString(m.Tax); err != nil {
				return nil, err
			}
		}
		return payment.NewFixedFeePayment(m.Code, m.Name, m.Description, fee, tax)
	case "percentage":
		percentage, err := decimal.NewFromString(m.Percentage)
		if err != nil {
			return nil, err
		}
		return payment.NewPercentageFeePayment(m.Code, m.Name, m.Description, percentage)
	default:
		return nil, fmt.Errorf("unknown kind %q", m.Kind)
	}
}

func (c *CompositionRoot) CreateCheckoutFlow() (*checkout.Flow, error) {
	payments, err := c.CreatePaymentRepository()
	if err != nil {
		return nil, err
	}
	return checkout.NewFlow(c.strategy, c.CreateShippingRepository(), payments, addressBook{uowFactory: c.uowFactory}), nil
}

func (c *CompositionRoot) CreateTrackingPolicy() (*analytics.TrackingPolicy, error) {
	if !c.cfg.Tracking.Enabled {
		return nil, nil
	}
	t := c.cfg.Tracking
	return analytics.NewTrackingPolicy(analytics.TrackingSettings{
		TrackAjaxRequests: t.TrackAjaxRequests,
		TrackAnonymous:    t.TrackAnonymous,
		TrackSuperusers:   t.TrackSuperusers,
		IgnoreStatusCodes: t.IgnoreStatusCodes,
		IgnoreURLs:        t.IgnoreURLs,
		IgnoreUserAgents:  t.IgnoreUserAgents,
	})
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.catalogueUoWFactory())
}

func (c *CompositionRoot) CreateCreateShippingMethodCommandHandler() commands.CreateShippingMethodCommandHandler {
	return commands.NewCreateShippingMethodCommandHandler(c.shippingUoWFactory())
}

func (c *CompositionRoot) CreateWeightBandCommandHandler() commands.WeightBandCommandHandler {
	return commands.NewWeightBandCommandHandler(c.shippingUoWFactory())
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.accountUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateTrackingCommandHandler() commands.TrackingCommandHandler {
	return commands.NewTrackingCommandHandler(c.trackingUoWFactory())
}

func (c *CompositionRoot) CreateCommands(flow *checkout.Flow) httpin.Commands {
	var resolver analytics.Resolver
	if len(c.cfg.Tracking.BotHostnames) > 0 {
		resolver = net.DefaultResolver
	}

	return httpin.Commands{
		AddToBasket:          commands.NewAddToBasketCommandHandler(c.basketUoWFactory(), c.strategy),
		UpdateBasketLine:     commands.NewUpdateBasketLineCommandHandler(c.basketUoWFactory(), c.strategy),
		PlaceOrder:           commands.NewPlaceOrderCommandHandler(c.checkoutUoWFactory(), flow, c.publisher, c.logger),
		RegisterUser:         c.CreateRegisterUserCommandHandler(),
		Login:                commands.NewLoginCommandHandler(c.accountUoWFactory(), c.hasher, c.tokens),
		UserAddresses:        commands.NewUserAddressCommandHandler(c.addressUoWFactory()),
		Reviews:              commands.NewReviewCommandHandler(c.reviewUoWFactory(), commands.ReviewSettings(c.cfg.Reviews)),
		CreateProduct:        c.CreateCreateProductCommandHandler(),
		SetProductEnabled:    commands.NewSetProductEnabledCommandHandler(c.catalogueUoWFactory()),
		AddOrderNote:         commands.NewAddOrderNoteCommandHandler(c.orderUoWFactory()),
		ChangeOrderStatus:    commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory()),
		CreateShippingMethod: c.CreateCreateShippingMethodCommandHandler(),
		UpdateShippingMethod: commands.NewUpdateShippingMethodCommandHandler(c.shippingUoWFactory()),
		DeleteShippingMethod: commands.NewDeleteShippingMethodCommandHandler(c.shippingUoWFactory()),
		WeightBands:          c.CreateWeightBandCommandHandler(),
		TrackVisit:           commands.NewTrackVisitCommandHandler(c.trackingUoWFactory(), c.cfg.Tracking.BotHostnames, resolver, c.logger),
		Tracking:             c.CreateTrackingCommandHandler(),
	}
}

func (c *CompositionRoot) CreateQueries() httpin.Queries {
	return httpin.Queries{
		Products:          queries.NewGetProductsQueryHandler(c.gormDB),
		Orders:            queries.NewGetOrdersQueryHandler(c.gormDB),
		Reviews:           queries.NewGetReviewsQueryHandler(c.gormDB),
		ProductAnalytics:  queries.NewGetProductAnalyticsQueryHandler(c.gormDB),
		CustomerAnalytics: queries.NewGetCustomerAnalyticsQueryHandler(c.gormDB),
		Searches:          queries.NewGetSearchesQueryHandler(c.gormDB),
		AbandonedCarts:    queries.NewGetAbandonedCartsQueryHandler(c.gormDB),
		Visitors:          queries.NewGetVisitorsQueryHandler(c.gormDB),
		PageViews:         queries.NewGetPageViewsQueryHandler(c.gormDB),
	}
}

// CreateServer wires the web layer. Process metrics are exported next to
// the request metrics.
func (c *CompositionRoot) CreateServer() (*httpin.Server, error) {
	flow, err := c.CreateCheckoutFlow()
	if err != nil {
		return nil, err
	}
	policy, err := c.CreateTrackingPolicy()
	if err != nil {
		return nil, err
	}
	var cookies httpin.CookieCodec
	if policy != nil {
		codec, err := security.NewTrackingCookieCodec(c.cfg.Tracking.CookieSecret)
		if err != nil {
			return nil, err
		}
		cookies = codec
	}
	store, err := sessionstore.NewRedisStore(c.Redis(), c.cfg.Redis.KeyPrefix)
	if err != nil {
		return nil, err
	}
	sessions := websession.NewManager(store, websession.Options{
		CookieName: c.cfg.Session.CookieName,
		Lifetime:   c.cfg.Session.Age,
		Secure:     c.cfg.Session.SecureCookies,
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return httpin.NewServer(httpin.Deps{
		Settings: httpin.Settings{
			Currency:           c.cfg.App.Currency,
			SecureCookies:      c.cfg.Session.SecureCookies,
			TrackingCookieName: c.cfg.Tracking.CookieName,
			TrackPageViews:     c.cfg.Tracking.TrackPageViews,
			TrackReferer:       c.cfg.Tracking.TrackReferer,
			TrackQueryString:   c.cfg.Tracking.TrackQueryString,
			RateLimit:          c.cfg.HTTP.RateLimit,
			RateBurst:          c.cfg.HTTP.RateBurst,
		},
		Logger:     c.logger,
		UoWFactory: c.uowFactory,
		Sessions:   sessions,
		Tokens:     c.tokens,
		Cookies:    cookies,
		Tracking:   policy,
		Flow:       flow,
		Strategy:   c.strategy,
		Commands:   c.CreateCommands(flow),
		Queries:    c.CreateQueries(),
		Registry:   registry,
	}), nil
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateTrackingCommandHandler(), jobs.Schedules{
		ProductScores:       c.cfg.Jobs.ProductScores,
		ProductScoreTimeout: c.cfg.Jobs.ProductScoreTimeout,
		VisitorCleanup:      c.cfg.Jobs.VisitorCleanup,
		VisitorRetention:    c.cfg.Jobs.VisitorRetention,
	}, c.logger)
}

// UnitOfWork hands out a full unit of work for one-off admin tasks.
func (c *CompositionRoot) UnitOfWork() ports.UnitOfWork {
	return c.uowFactory.Create()
}

func (c *CompositionRoot) catalogueUoWFactory() commands.CatalogueUoWFactory {
	return FuncCatalogueUoWFactory(func() commands.CatalogueUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) basketUoWFactory() commands.BasketUoWFactory {
	return FuncBasketUoWFactory(func() commands.BasketUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) checkoutUoWFactory() commands.CheckoutUoWFactory {
	return FuncCheckoutUoWFactory(func() commands.CheckoutUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) addressUoWFactory() commands.AddressUoWFactory {
	return FuncAddressUoWFactory(func() commands.AddressUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) shippingUoWFactory() commands.ShippingUoWFactory {
	return FuncShippingUoWFactory(func() commands.ShippingUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) trackingUoWFactory() commands.TrackingUoWFactory {
	return FuncTrackingUoWFactory(func() commands.TrackingUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) accountUoWFactory() commands.AccountUoWFactory {
	return FuncAccountUoWFactory(func() commands.AccountUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) reviewUoWFactory() commands.ReviewUoWFactory {
	return FuncReviewUoWFactory(func() commands.ReviewUoW { return c.uowFactory.Create() })
}

type FuncCatalogueUoWFactory func() commands.CatalogueUoW

func (f FuncCatalogueUoWFactory) Create() commands.CatalogueUoW { return f() }

type FuncBasketUoWFactory func() commands.BasketUoW

func (f FuncBasketUoWFactory) Create() commands.BasketUoW { return f() }

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW { return f() }

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW { return f() }

type FuncAddressUoWFactory func() commands.AddressUoW

func (f FuncAddressUoWFactory) Create() commands.AddressUoW { return f() }

type FuncShippingUoWFactory func() commands.ShippingUoW

func (f FuncShippingUoWFactory) Create() commands.ShippingUoW { return f() }

type FuncTrackingUoWFactory func() commands.TrackingUoW

func (f FuncTrackingUoWFactory) Create() commands.TrackingUoW { return f() }

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW { return f() }

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW { return f() }

// shippingMethodSource reads the configured methods outside any transaction.
type shippingMethodSource struct {
	uowFactory ports.UnitOfWorkFactory
}

func (s shippingMethodSource) EnabledMethods(ctx context.Context) ([]shipping.Method, error) {
	return s.uowFactory.Create().ShippingMethodRepository().EnabledMethods(ctx)
}

type addressBook struct {
	uowFactory ports.UnitOfWorkFactory
}

func (b addressBook) Get(ctx context.Context, id kernel.UUID) (*address.UserAddress, error) {
	return b.uowFactory.Create().UserAddressRepository().Get(ctx, id)
}

func (b addressBook) ListForUser(ctx context.Context, userID kernel.UUID) ([]*address.UserAddress, error) {
	return b.uowFactory.Create().UserAddressRepository().ListForUser(ctx, userID)
}
