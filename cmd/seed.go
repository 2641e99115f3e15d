package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/shipping"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// SeedFile is the YAML layout read by the seed command.
type SeedFile struct {
	Products        []SeedProduct        `yaml:"products"`
	ShippingMethods []SeedShippingMethod `yaml:"shipping_methods"`
	Users           []SeedUser           `yaml:"users"`
}

type SeedProduct struct {
	Title              string            `yaml:"title"`
	UPC                string            `yaml:"upc"`
	Description        string            `yaml:"description"`
	IsShippingRequired *bool             `yaml:"is_shipping_required"`
	Attributes         map[string]string `yaml:"attributes"`
	PartnerSKU         string            `yaml:"partner_sku"`
	Price              decimal.Decimal   `yaml:"price"`
	NumInStock         int               `yaml:"num_in_stock"`
}

type SeedWeightBand struct {
	UpperLimit decimal.Decimal `yaml:"upper_limit"`
	Charge     decimal.Decimal `yaml:"charge"`
}

type SeedShippingMethod struct {
	Kind                  shipping.Kind    `yaml:"kind"`
	Name                  string           `yaml:"name"`
	Description           string           `yaml:"description"`
	Countries             []string         `yaml:"countries"`
	Disabled              bool             `yaml:"disabled"`
	PricePerOrder         decimal.Decimal  `yaml:"price_per_order"`
	PricePerItem          decimal.Decimal  `yaml:"price_per_item"`
	FreeShippingThreshold *decimal.Decimal `yaml:"free_shipping_threshold"`
	DefaultWeight         decimal.Decimal  `yaml:"default_weight"`
	Bands                 []SeedWeightBand `yaml:"bands"`
}

type SeedUser struct {
	Email     string `yaml:"email"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Password  string `yaml:"password"`
	Superuser bool   `yaml:"superuser"`
}

func ReadSeedFile(path string) (SeedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return SeedFile{}, err
	}
	var f SeedFile
	if err = yaml.Unmarshal(raw, &f); err != nil {
		return SeedFile{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return f, nil
}

// FakeProducts invents n in-stock products. A fixed seed gives the same
// catalogue every run.
func FakeProducts(n int, seed uint64) []SeedProduct {
	f := gofakeit.New(seed)
	products := make([]SeedProduct, 0, n)
	for range n {
		products = append(products, SeedProduct{
			Title:       f.ProductName(),
			UPC:         f.Numerify("############"),
			Description: f.ProductDescription(),
			Attributes: map[string]string{
				"colour": f.Color(),
				"weight": fmt.Sprintf("%.2f", f.Float64Range(0.1, 5)),
			},
			PartnerSKU: strings.ToUpper(f.Lexify("???-")) + f.Numerify("#####"),
			Price:      decimal.NewFromFloat(f.Price(1, 200)).Round(2),
			NumInStock: f.Number(0, 50),
		})
	}
	return products
}

// Seeder loads fixtures through the same command handlers the API uses.
type Seeder struct {
	root     *CompositionRoot
	currency string
	logger   *zap.Logger
}

func NewSeeder(root *CompositionRoot, currency string, logger *zap.Logger) *Seeder {
	return &Seeder{root: root, currency: currency, logger: logger}
}

func (s *Seeder) Seed(ctx context.Context, f SeedFile) error {
	for _, p := range f.Products {
		if err := s.addProduct(ctx, p); err != nil {
			return fmt.Errorf("product %q: %w", p.Title, err)
		}
	}
	for _, m := range f.ShippingMethods {
		if err := s.addShippingMethod(ctx, m); err != nil {
			return fmt.Errorf("shipping method %q: %w", m.Name, err)
		}
	}
	for _, u := range f.Users {
		if err := s.addUser(ctx, u); err != nil {
			return fmt.Errorf("user %q: %w", u.Email, err)
		}
	}
	s.logger.Info("seed loaded",
		zap.Int("products", len(f.Products)),
		zap.Int("shipping_methods", len(f.ShippingMethods)),
		zap.Int("users", len(f.Users)))
	return nil
}

func (s *Seeder) addProduct(ctx context.Context, p SeedProduct) error {
	shippingRequired := true
	if p.IsShippingRequired != nil {
		shippingRequired = *p.IsShippingRequired
	}
	cmd, err := commands.NewCreateProductCommand(
		kernel.NewUUID(), p.Title, p.UPC, p.Description, shippingRequired, p.Attributes,
		commands.StockInput{
			StockRecordID: kernel.NewUUID(),
			PartnerSKU:    p.PartnerSKU,
			Currency:      s.currency,
			PriceExclTax:  p.Price,
			NumInStock:    p.NumInStock,
		},
	)
	if err != nil {
		return err
	}
	return s.root.CreateCreateProductCommandHandler().Handle(ctx, cmd)
}

func (s *Seeder) addShippingMethod(ctx context.Context, m SeedShippingMethod) error {
	methodID := kernel.NewUUID()
	cmd, err := commands.NewCreateShippingMethodCommand(methodID, m.Kind,
		commands.MethodDetails{
			Name:        m.Name,
			Description: m.Description,
			Countries:   m.Countries,
			IsEnabled:   !m.Disabled,
		},
		commands.Charges{
			PricePerOrder:         m.PricePerOrder,
			PricePerItem:          m.PricePerItem,
			FreeShippingThreshold: m.FreeShippingThreshold,
			DefaultWeight:         m.DefaultWeight,
		},
	)
	if err != nil {
		return err
	}
	if _, err = s.root.CreateCreateShippingMethodCommandHandler().Handle(ctx, cmd); err != nil {
		return err
	}

	bands := s.root.CreateWeightBandCommandHandler()
	for _, b := range m.Bands {
		add, err := commands.NewAddWeightBandCommand(methodID, kernel.NewUUID(), b.UpperLimit, b.Charge)
		if err != nil {
			return err
		}
		if err = bands.HandleAdd(ctx, add); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) addUser(ctx context.Context, u SeedUser) error {
	cmd, err := commands.NewRegisterUserCommand(kernel.NewUUID(), u.Email, u.FirstName, u.LastName, u.Password)
	if err != nil {
		return err
	}
	created, err := s.root.CreateRegisterUserCommandHandler().Handle(ctx, cmd)
	if err != nil {
		return err
	}
	if !u.Superuser {
		return nil
	}

	uow := s.root.UnitOfWork()
	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	created.PromoteToSuperuser()
	if err = uow.UserRepository().Update(ctx, created); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

// SeedTimeout bounds a whole seed run.
const SeedTimeout = 5 * time.Minute
