// Package service provides the computer shop facade.
package service

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/guttosm/computer-shop/internal/builder"
	"github.com/guttosm/computer-shop/internal/catalog"
	"github.com/guttosm/computer-shop/internal/domain/model"
	"github.com/guttosm/computer-shop/internal/i18n"
	"github.com/guttosm/computer-shop/internal/logger"
	"github.com/guttosm/computer-shop/internal/metrics"
	"github.com/rs/zerolog"
)

var orderHeaders = map[model.Variant]string{
	model.Gaming: i18n.KeyOrderHeaderGaming,
	model.Office: i18n.KeyOrderHeaderOffice,
}

// Shop defines the customer-facing shop operations.
type Shop interface {
	ShowCatalog()
	BuyGamingPC() model.Order
	BuyOfficePC() model.Order
}

// Option configures a ComputerShop.
type Option func(*ComputerShop)

// ComputerShop composes the director, the catalog and one builder per variant
// behind three console operations. All parts are created once and kept for
// the shop's lifetime.
type ComputerShop struct {
	director   *builder.Director
	catalog    catalog.Container
	builders   map[model.Variant]builder.ComputerBuilder
	out        io.Writer
	translator *i18n.Translator
	locale     string
	log        zerolog.Logger
}

// NewComputerShop creates a ComputerShop writing to stdout in the default locale.
func NewComputerShop(opts ...Option) *ComputerShop {
	s := &ComputerShop{
		director: builder.NewDirector(),
		catalog:  catalog.NewWarehouse(),
		builders: map[model.Variant]builder.ComputerBuilder{
			model.Gaming: builder.NewGamingBuilder(),
			model.Office: builder.NewOfficeBuilder(),
		},
		out:        os.Stdout,
		translator: i18n.GetTranslator(),
		locale:     i18n.DefaultLocale,
		log:        logger.Component("shop"),
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithOutput sets the writer receiving console lines.
func WithOutput(w io.Writer) Option {
	return func(s *ComputerShop) {
		if w != nil {
			s.out = w
		}
	}
}

// WithLocale sets the language of headers and confirmations.
func WithLocale(locale string) Option {
	return func(s *ComputerShop) {
		s.locale = i18n.ResolveLocale(locale)
	}
}

// WithTranslator overrides the message translator.
func WithTranslator(t *i18n.Translator) Option {
	return func(s *ComputerShop) {
		if t != nil {
			s.translator = t
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *ComputerShop) {
		s.log = l
	}
}

// WithCatalog replaces the warehouse listed by ShowCatalog.
func WithCatalog(c catalog.Container) Option {
	return func(s *ComputerShop) {
		if c != nil {
			s.catalog = c
		}
	}
}

// WithBuilder replaces the builder used for a variant.
func WithBuilder(variant model.Variant, b builder.ComputerBuilder) Option {
	return func(s *ComputerShop) {
		s.builders[variant] = b
	}
}

// ShowCatalog writes one line per catalog item, in catalog order.
func (s *ComputerShop) ShowCatalog() {
	it := s.catalog.Iterator()
	listed := 0
	for it.HasNext() {
		item, ok := it.Next()
		if !ok {
			break
		}
		s.println(s.translator.Translatef(i18n.KeyCatalogItem, s.locale, item.String()))
		listed++
	}

	metrics.RecordCatalogView(listed)
	s.log.Debug().Int("items", listed).Msg("catalog listed")
}

// BuyGamingPC assembles and reports a gaming computer.
func (s *ComputerShop) BuyGamingPC() model.Order {
	return s.mustBuy(model.Gaming)
}

// BuyOfficePC assembles and reports an office computer.
func (s *ComputerShop) BuyOfficePC() model.Order {
	return s.mustBuy(model.Office)
}

// Buy assembles a computer of the given variant, writes the order report and
// returns the completed order.
func (s *ComputerShop) Buy(variant model.Variant) (model.Order, error) {
	b, ok := s.builders[variant]
	if !ok {
		return model.Order{}, fmt.Errorf("%w: %s", builder.ErrUnknownVariant, variant)
	}

	s.println("")
	s.println(s.translator.Translate(orderHeaders[variant], s.locale))

	start := time.Now()
	s.director.SetBuilder(b)
	pc, err := s.director.Construct()
	if err != nil {
		return model.Order{}, fmt.Errorf("assemble %s computer: %w", variant, err)
	}
	metrics.RecordOrder(variant.String(), time.Since(start))

	s.println(s.translator.Translatef(i18n.KeyOrderAssembled, s.locale, pc.String()))
	s.println(s.translator.Translate(i18n.KeyOrderCompleted, s.locale))

	order := model.NewOrder(variant, pc)
	s.log.Info().
		Str("order_id", order.ID).
		Str("variant", variant.String()).
		Str("cpu", pc.CPU).
		Msg("order completed")
	return order, nil
}

// mustBuy panics if a built-in variant cannot be assembled; the shop wires
// a builder for every built-in variant at construction.
func (s *ComputerShop) mustBuy(variant model.Variant) model.Order {
	order, err := s.Buy(variant)
	if err != nil {
		panic(err)
	}
	return order
}

func (s *ComputerShop) println(line string) {
	if _, err := fmt.Fprintln(s.out, line); err != nil {
		s.log.Error().Err(err).Msg("failed to write console output")
	}
}
