package config

import (
	"coffeeInventory/src/entities"
	"coffeeInventory/src/logging"
	"coffeeInventory/src/repository/resourcemanager"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "coffeemachine"

var defaults = map[string]interface{}{
	"log.level":             "info",
	"log.development":       false,
	"retry.attempts":        3,
	"retry.delay":           "1ms",
	"inventory.water":       0,
	"inventory.milk":        0,
	"inventory.coffeebeans": 0,
}

// flags that may override file values, keyed by config key
var flagKeys = map[string]string{
	"log.level":       "log-level",
	"log.development": "log-dev",
}

// Config is one machine session: the starting inventory, the order batch and the
// refills applied between processing rounds
type Config struct {
	Log       logging.Config  `mapstructure:"log"`
	Retry     RetryConfig     `mapstructure:"retry"`
	Inventory InventoryConfig `mapstructure:"inventory"`
	Orders    []OrderConfig   `mapstructure:"orders"`
	Refills   []RefillConfig  `mapstructure:"refills"`
}

type RetryConfig struct {
	Attempts uint          `mapstructure:"attempts"`
	Delay    time.Duration `mapstructure:"delay"`
}

// Quantities are kept untyped so non-numeric input can be reported as such
type InventoryConfig struct {
	Water       interface{} `mapstructure:"water"`
	Milk        interface{} `mapstructure:"milk"`
	CoffeeBeans interface{} `mapstructure:"coffeebeans"`
}

type OrderConfig struct {
	Type     string      `mapstructure:"type"`
	Quantity interface{} `mapstructure:"quantity"`
}

type RefillConfig struct {
	Ingredient string `mapstructure:"ingredient"`
	Amount     int    `mapstructure:"amount"`
}

// Load reads the batch file at path. An empty path looks for coffeemachine.yaml in
// the working directory and falls back to defaults when there is none.
// Environment variables (COFFEEMACHINE_LOG_LEVEL, ...) override the file, flags override both.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("coffeemachine")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &c, nil
}

// InitialInventory converts the configured starting quantities
func (c *Config) InitialInventory() (entities.Quantities, error) {
	raw := map[entities.IngredientID]interface{}{
		entities.IngredientWater:       c.Inventory.Water,
		entities.IngredientMilk:        c.Inventory.Milk,
		entities.IngredientCoffeeBeans: c.Inventory.CoffeeBeans,
	}

	out := entities.Quantities{}
	for _, id := range entities.Ingredients {
		qty, ok := toQuantity(raw[id])
		if !ok {
			return entities.Quantities{}, entities.ErrInvalidIngredient{IngredientID: id, Reason: entities.ReasonNotNumeric}
		}
		out = out.With(id, qty)
	}
	return out, nil
}

// OrderRequests converts the configured orders. Only the numeric shape of the
// quantity is checked here, the type is passed on as written for the order manager.
func (c *Config) OrderRequests() ([]entities.OrderRequest, error) {
	requests := make([]entities.OrderRequest, 0, len(c.Orders))
	for idx, order := range c.Orders {
		qty, ok := toQuantity(order.Quantity)
		if !ok || order.Quantity == nil {
			return nil, entities.ErrInvalidOrder{Index: idx, Field: "quantity", Value: order.Quantity}
		}
		requests = append(requests, entities.OrderRequest{
			Type:     entities.DrinkType(order.Type),
			Quantity: qty,
		})
	}
	return requests, nil
}

func (c *Config) RefillRequests() []resourcemanager.RefillRequest {
	requests := make([]resourcemanager.RefillRequest, 0, len(c.Refills))
	for _, refill := range c.Refills {
		requests = append(requests, resourcemanager.RefillRequest{
			IngredientID: entities.IngredientID(refill.Ingredient),
			Amount:       refill.Amount,
		})
	}
	return requests
}

// toQuantity accepts whole numbers only. Strings are rejected even when they
// hold digits, cast would otherwise parse them.
func toQuantity(raw interface{}) (int, bool) {
	switch v := raw.(type) {
	case nil:
		return 0, true
	case bool, string:
		return 0, false
	case float32:
		return toQuantity(float64(v))
	case float64:
		if v != math.Trunc(v) || math.Abs(v) >= math.MaxInt64 {
			return 0, false
		}
	}
	qty, err := cast.ToIntE(raw)
	return qty, err == nil
}
