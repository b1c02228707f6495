package config

import (
	"coffeeInventory/src/entities"
	"coffeeInventory/src/repository/recipecatalog"
	"coffeeInventory/src/repository/resourcemanager"
	"coffeeInventory/src/services/ordermanager"
	"context"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		env    map[string]string
		flags  []string
		assert func(c *Config, err error)
	}{
		{
			name: "success | full batch file",
			path: "testdata/batch.yaml",
			assert: func(c *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, "warn", c.Log.Level)
				assert.Equal(t, uint(5), c.Retry.Attempts)
				assert.Equal(t, 2*time.Millisecond, c.Retry.Delay)
				assert.Len(t, c.Orders, 3)
				assert.Len(t, c.Refills, 3)
			},
		},
		{
			name: "success | env overrides file",
			path: "testdata/batch.yaml",
			env:  map[string]string{"COFFEEMACHINE_LOG_LEVEL": "debug"},
			assert: func(c *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, "debug", c.Log.Level)
			},
		},
		{
			name:  "success | flag overrides env and file",
			path:  "testdata/batch.yaml",
			env:   map[string]string{"COFFEEMACHINE_LOG_LEVEL": "debug"},
			flags: []string{"--log-level=error"},
			assert: func(c *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, "error", c.Log.Level)
			},
		},
		{
			name: "error | missing explicit file",
			path: "testdata/does-not-exist.yaml",
			assert: func(c *Config, err error) {
				assert.Error(t, err)
				assert.Nil(t, c)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
			flags.String("log-level", "info", "")
			flags.Bool("log-dev", false, "")
			require.NoError(t, flags.Parse(tt.flags))

			got, err := Load(tt.path, flags)
			tt.assert(got, err)
		})
	}
}

func TestConfig_InitialInventory(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		inventory *InventoryConfig
		assert    func(q entities.Quantities, err error)
	}{
		{
			name: "success | numbers",
			path: "testdata/batch.yaml",
			assert: func(q entities.Quantities, err error) {
				assert.NoError(t, err)
				assert.Equal(t, entities.Quantities{Water: 500, Milk: 300, CoffeeBeans: 100}, q)
			},
		},
		{
			name:      "success | whole float",
			inventory: &InventoryConfig{Water: 500.0, Milk: 300, CoffeeBeans: 100},
			assert: func(q entities.Quantities, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 500, q.Water)
			},
		},
		{
			name: "error | milk is not a number",
			path: "testdata/bad_inventory.yaml",
			assert: func(q entities.Quantities, err error) {
				assert.Equal(t, entities.ErrInvalidIngredient{IngredientID: entities.IngredientMilk, Reason: entities.ReasonNotNumeric}, err)
				assert.Contains(t, err.Error(), "must be numbers")
			},
		},
		{
			name:      "error | numeric string",
			inventory: &InventoryConfig{Water: "3", Milk: 300, CoffeeBeans: 100},
			assert: func(q entities.Quantities, err error) {
				assert.Equal(t, entities.ErrInvalidIngredient{IngredientID: entities.IngredientWater, Reason: entities.ReasonNotNumeric}, err)
			},
		},
		{
			name:      "error | fractional quantity",
			inventory: &InventoryConfig{Water: 500, Milk: 300, CoffeeBeans: 2.5},
			assert: func(q entities.Quantities, err error) {
				assert.Equal(t, entities.ErrInvalidIngredient{IngredientID: entities.IngredientCoffeeBeans, Reason: entities.ReasonNotNumeric}, err)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{}
			if tt.path != "" {
				var err error
				c, err = Load(tt.path, nil)
				require.NoError(t, err)
			}
			if tt.inventory != nil {
				c.Inventory = *tt.inventory
			}
			tt.assert(c.InitialInventory())
		})
	}
}

func TestConfig_OrderRequests(t *testing.T) {
	c, err := Load("testdata/batch.yaml", nil)
	require.NoError(t, err)

	requests, err := c.OrderRequests()
	require.NoError(t, err)
	assert.Equal(t, []entities.OrderRequest{
		{Type: entities.DrinkEspresso, Quantity: 2},
		{Type: entities.DrinkLatte, Quantity: 1},
		{Type: entities.DrinkCappuccino, Quantity: 3},
	}, requests)

	c, err = Load("testdata/bad_quantity.yaml", nil)
	require.NoError(t, err)

	_, err = c.OrderRequests()
	assert.Equal(t, entities.ErrInvalidOrder{Index: 1, Field: "quantity", Value: "lots"}, err)

	tests := []struct {
		name     string
		quantity interface{}
	}{
		{name: "missing", quantity: nil},
		{name: "bool", quantity: true},
		{name: "numeric string", quantity: "3"},
		{name: "hex string", quantity: "0x10"},
		{name: "fraction", quantity: 2.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{Orders: []OrderConfig{{Type: "espresso", Quantity: 1}, {Type: "latte", Quantity: tt.quantity}}}
			_, err := c.OrderRequests()
			assert.Equal(t, entities.ErrInvalidOrder{Index: 1, Field: "quantity", Value: tt.quantity}, err)
		})
	}
}

func TestConfig_OrderRequests_typeIsNotNormalised(t *testing.T) {
	c := &Config{Orders: []OrderConfig{{Type: "espresso", Quantity: 1}, {Type: "Cappuccino", Quantity: 2}}}

	requests, err := c.OrderRequests()
	require.NoError(t, err)
	assert.Equal(t, entities.DrinkType("Cappuccino"), requests[1].Type)

	err = ordermanager.New(ordermanager.Params{RecipeCatalog: recipecatalog.New()}).Validate(context.Background(), requests)
	assert.Equal(t, entities.ErrInvalidOrder{Index: 1, Field: "type", Value: entities.DrinkType("Cappuccino")}, err)
}

func TestConfig_RefillRequests(t *testing.T) {
	c, err := Load("testdata/batch.yaml", nil)
	require.NoError(t, err)

	assert.Equal(t, []resourcemanager.RefillRequest{
		{IngredientID: entities.IngredientWater, Amount: 100},
		{IngredientID: entities.IngredientMilk, Amount: 50},
		{IngredientID: entities.IngredientCoffeeBeans, Amount: 20},
	}, c.RefillRequests())
}

func TestConfig_RefillRequests_namesAreNotIngredientIDs(t *testing.T) {
	c := &Config{Refills: []RefillConfig{{Ingredient: "milk", Amount: 50}}}

	requests := c.RefillRequests()
	require.Len(t, requests, 1)
	assert.Equal(t, entities.IngredientID("milk"), requests[0].IngredientID)

	store, err := resourcemanager.New(500, 300, 100)
	require.NoError(t, err)
	_, err = store.Refill(context.Background(), requests[0])
	assert.Equal(t, entities.ErrUnknownIngredient{IngredientID: "milk"}, err)
}
