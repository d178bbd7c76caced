package services

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/eshwarmore1993/invoice-generator/internal/core/domain"
	"github.com/eshwarmore1993/invoice-generator/internal/core/ports/driven"
	"github.com/eshwarmore1993/invoice-generator/internal/core/ports/driving"
)

// Ensure ConfigService implements the interface.
var _ driving.ConfigService = (*ConfigService)(nil)

// Config keys for render configuration.
const (
	keyIssuerName     = "issuer.name"
	keyIssuerAddress  = "issuer.address"
	keyIssuerCityLine = "issuer.city_line"
	keyIssuerContact  = "issuer.contact"
	keyIssuerEmail    = "issuer.email"
	keyIssuerGST      = "issuer.gst_number"
	keyIssuerPAN      = "issuer.pan_number"
	keyIssuerLogo     = "issuer.logo_path"
	keyTaxComponents  = "tax_components"
	keyWordsLocale    = "words.locale"
	keyFooterText     = "footer.text"
	keyLayoutMargin   = "layout.margin"
	keyLayoutRowH     = "layout.row_height"
	keyLayoutTable    = "layout.table_top"
	keyLayoutCustomer = "layout.customer_top"
	keyLayoutFooterY  = "layout.footer_y"
	keyColumnItem     = "layout.columns.item"
	keyColumnCode     = "layout.columns.code"
	keyColumnRate     = "layout.columns.rate"
	keyColumnQuantity = "layout.columns.quantity"
)

// settableKeys are the keys Set accepts, mapped to whether they are numeric.
// tax_components is an array of tables and is edited in the file.
var settableKeys = map[string]bool{
	keyIssuerName:     false,
	keyIssuerAddress:  false,
	keyIssuerCityLine: false,
	keyIssuerContact:  false,
	keyIssuerEmail:    false,
	keyIssuerGST:      false,
	keyIssuerPAN:      false,
	keyIssuerLogo:     false,
	keyWordsLocale:    false,
	keyFooterText:     false,
	keyLayoutMargin:   true,
	keyLayoutRowH:     true,
	keyLayoutTable:    true,
	keyLayoutCustomer: true,
	keyLayoutFooterY:  true,
	keyColumnItem:     true,
	keyColumnCode:     true,
	keyColumnRate:     true,
	keyColumnQuantity: true,
}

// ConfigService resolves the render configuration from a ConfigStore.
type ConfigService struct {
	configStore driven.ConfigStore
}

// NewConfigService creates a new config service.
func NewConfigService(configStore driven.ConfigStore) *ConfigService {
	return &ConfigService{configStore: configStore}
}

// GetDefaults returns the built-in configuration.
func (s *ConfigService) GetDefaults() domain.Config {
	return domain.DefaultConfig()
}

// Path returns the configuration file path.
func (s *ConfigService) Path() string {
	if s.configStore == nil {
		return ""
	}
	return s.configStore.Path()
}

// Get returns stored values layered over the defaults.
func (s *ConfigService) Get() (*domain.Config, error) {
	cfg := domain.DefaultConfig()
	if s.configStore == nil {
		return &cfg, nil
	}

	cfg.Issuer = domain.Issuer{
		Name:      s.getString(keyIssuerName, cfg.Issuer.Name),
		Address:   s.getString(keyIssuerAddress, cfg.Issuer.Address),
		CityLine:  s.getString(keyIssuerCityLine, cfg.Issuer.CityLine),
		Contact:   s.getString(keyIssuerContact, cfg.Issuer.Contact),
		Email:     s.getString(keyIssuerEmail, cfg.Issuer.Email),
		GSTNumber: s.getString(keyIssuerGST, cfg.Issuer.GSTNumber),
		PANNumber: s.getString(keyIssuerPAN, cfg.Issuer.PANNumber),
		LogoPath:  s.getString(keyIssuerLogo, cfg.Issuer.LogoPath),
	}
	cfg.WordsLocale = s.getString(keyWordsLocale, cfg.WordsLocale)
	cfg.FooterText = s.getString(keyFooterText, cfg.FooterText)

	taxes, err := s.getTaxComponents(cfg.TaxComponents)
	if err != nil {
		return nil, err
	}
	cfg.TaxComponents = taxes

	// Derived anchors first, so explicit table_top and column keys win.
	l := &cfg.Layout
	l.SetMargin(s.getFloat(keyLayoutMargin, l.Margin))
	l.SetCustomerTop(s.getFloat(keyLayoutCustomer, l.CustomerTop))
	l.RowHeight = s.getFloat(keyLayoutRowH, l.RowHeight)
	l.TableTop = s.getFloat(keyLayoutTable, l.TableTop)
	l.FooterY = s.getFloat(keyLayoutFooterY, l.FooterY)
	l.ItemColumn.X = s.getFloat(keyColumnItem, l.ItemColumn.X)
	l.CodeColumn.X = s.getFloat(keyColumnCode, l.CodeColumn.X)
	l.RateColumn.X = s.getFloat(keyColumnRate, l.RateColumn.X)
	l.QuantityColumn.X = s.getFloat(keyColumnQuantity, l.QuantityColumn.X)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Set parses value for key and persists it. The configuration is resolved
// with the new value first, and nothing is written if that fails.
func (s *ConfigService) Set(key, value string) error {
	if s.configStore == nil {
		return fmt.Errorf("%w: no configuration store", domain.ErrNotImplemented)
	}
	numeric, ok := settableKeys[key]
	if !ok {
		return fmt.Errorf("%w: unknown configuration key %q", domain.ErrInvalidInput, key)
	}

	var v any = value
	if numeric {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: %s must be a number, got %q", domain.ErrInvalidInput, key, value)
		}
		v = f
	}
	if key == keyWordsLocale {
		if _, err := ResolveWordsLocale(value); err != nil {
			return err
		}
	}

	candidate := NewConfigService(overlayStore{ConfigStore: s.configStore, key: key, value: v})
	if _, err := candidate.Get(); err != nil {
		return err
	}
	return s.configStore.Set(key, v)
}

// getTaxComponents reads [[tax_components]] tables. A missing key keeps the
// defaults; an empty array means no tax.
func (s *ConfigService) getTaxComponents(defaults []domain.TaxComponent) ([]domain.TaxComponent, error) {
	raw, ok := s.configStore.Get(keyTaxComponents)
	if !ok {
		return defaults, nil
	}

	var entries []any
	switch v := raw.(type) {
	case []any:
		entries = v
	case []map[string]any:
		for _, m := range v {
			entries = append(entries, m)
		}
	default:
		return nil, fmt.Errorf("%w: %s must be an array of tables", domain.ErrInvalidInput, keyTaxComponents)
	}

	taxes := make([]domain.TaxComponent, 0, len(entries))
	for i, entry := range entries {
		table, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s[%d] must be a table", domain.ErrInvalidInput, keyTaxComponents, i)
		}
		label, _ := table["label"].(string)
		rate, err := toDecimal(table["rate"])
		if err != nil {
			return nil, fmt.Errorf("%w: %s[%d].rate: %v", domain.ErrInvalidInput, keyTaxComponents, i, err)
		}
		taxes = append(taxes, domain.TaxComponent{Label: label, Rate: rate})
	}
	return taxes, nil
}

func (s *ConfigService) getString(key, defaultVal string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}

func (s *ConfigService) getFloat(key string, defaultVal float64) float64 {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

// toDecimal accepts the number and string forms a TOML file can hold.
func toDecimal(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case string:
		return decimal.NewFromString(n)
	case nil:
		return decimal.Decimal{}, errors.New("missing")
	default:
		return decimal.Decimal{}, fmt.Errorf("unsupported type %T", v)
	}
}

// overlayStore reads through to a ConfigStore with one key replaced.
// It never writes.
type overlayStore struct {
	driven.ConfigStore
	key   string
	value any
}

func (o overlayStore) Get(key string) (any, bool) {
	if key == o.key {
		return o.value, true
	}
	return o.ConfigStore.Get(key)
}

func (o overlayStore) GetString(key string) string {
	if key == o.key {
		str, _ := o.value.(string)
		return str
	}
	return o.ConfigStore.GetString(key)
}

func (o overlayStore) GetFloat(key string) float64 {
	if key == o.key {
		f, _ := o.value.(float64)
		return f
	}
	return o.ConfigStore.GetFloat(key)
}

func (o overlayStore) Set(string, any) error {
	return domain.ErrNotImplemented
}
