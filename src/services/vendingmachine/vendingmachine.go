package vendingmachine

import (
	"coffeeInventory/src/entities"
	"coffeeInventory/src/repository/recipecatalog"
	"coffeeInventory/src/repository/resourcemanager"
	"coffeeInventory/src/services/notifier"
	"context"
	"time"

	"github.com/avast/retry-go"
)

const (
	defaultRetryAttempts = 3
	defaultRetryDelay    = time.Millisecond
)

// CoffeeMachine is the interface which exposes functionalities of our coffee-machine
type CoffeeMachine interface {
	ProcessAll(ctx context.Context, orders []*entities.Order) []*entities.OrderResponse
	Make(ctx context.Context, drink entities.DrinkType) *entities.MakeResponse
	Refill(ctx context.Context, ingredientID entities.IngredientID, amount int) (entities.Quantities, error)
	Inventory(ctx context.Context) entities.Quantities
}

type coffeeMachineImpl struct {
	resourceManager resourcemanager.Repository
	recipeCatalog   recipecatalog.Repository
	notifier        notifier.Notifier
	retryAttempts   uint
	retryDelay      time.Duration
}

type Params struct {
	ResourceManager resourcemanager.Repository
	RecipeCatalog   recipecatalog.Repository
	Notifier        notifier.Notifier
	RetryAttempts   uint
	RetryDelay      time.Duration
}

func New(p Params) CoffeeMachine {
	c := &coffeeMachineImpl{
		resourceManager: p.ResourceManager,
		recipeCatalog:   p.RecipeCatalog,
		notifier:        p.Notifier,
		retryAttempts:   p.RetryAttempts,
		retryDelay:      p.RetryDelay,
	}
	if c.notifier == nil {
		c.notifier = notifier.NewNop()
	}
	if c.retryAttempts == 0 {
		c.retryAttempts = defaultRetryAttempts
	}
	if c.retryDelay == 0 {
		c.retryDelay = defaultRetryDelay
	}
	return c
}

/*
	ProcessAll works through the orders one at a time, in the given order.
	For every order it keeps making single units until the order is fulfilled or an
	attempt fails. A failed attempt stalls that order for this call only, the next
	order is still attempted against whatever is left in the store.

	Calling it again with the same orders resumes from their served counts, so units
	that were already made are never made twice.
*/
func (c *coffeeMachineImpl) ProcessAll(ctx context.Context, orders []*entities.Order) []*entities.OrderResponse {
	responses := make([]*entities.OrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, c.processOrder(ctx, order))
	}
	return responses
}

func (c *coffeeMachineImpl) processOrder(ctx context.Context, order *entities.Order) *entities.OrderResponse {
	clampServedCount(order)

	for !order.Fulfilled() {
		resp := c.Make(ctx, order.Type)
		if resp.Outcome == entities.MakeOutcomeNotPrepared {
			c.notifier.MakeFailed(ctx, order, resp.Err)
			return toOrderResponse(order, entities.OrderStateStalled, resp.RejectReasons)
		}
		order.ServedCount++
		c.notifier.DrinkMade(ctx, order)
	}
	return toOrderResponse(order, entities.OrderStateFulfilled, nil)
}

// served counts come from the caller, keep them inside [0, quantity]
func clampServedCount(order *entities.Order) {
	if order.ServedCount < 0 {
		order.ServedCount = 0
	}
	if order.Quantity >= 0 && order.ServedCount > order.Quantity {
		order.ServedCount = order.Quantity
	}
}

// Make tries to make one unit of drink.
// Note - retry is done only in case of ErrResourceTemporarilyNotAvailable
// since it is the only transient error the store returns
func (c *coffeeMachineImpl) Make(ctx context.Context, drink entities.DrinkType) *entities.MakeResponse {
	recipe, err := c.recipeCatalog.Lookup(ctx, drink)
	if err != nil {
		return toMakeResponse(drink, err)
	}

	err = retry.Do(
		func() error {
			_, err := c.resourceManager.Consume(ctx, recipe)
			return err
		},
		retry.RetryIf(func(err error) bool {
			if _, ok := err.(entities.ErrResourceTemporarilyNotAvailable); ok {
				return true
			}
			return false
		}),
		retry.Attempts(c.retryAttempts),
		retry.Delay(c.retryDelay),
		retry.LastErrorOnly(true),
	)

	return toMakeResponse(drink, err)
}

func toMakeResponse(drink entities.DrinkType, err error) *entities.MakeResponse {
	if err == nil {
		return &entities.MakeResponse{
			Drink:   drink,
			Outcome: entities.MakeOutcomePrepared,
		}
	}
	return &entities.MakeResponse{
		Drink:   drink,
		Outcome: entities.MakeOutcomeNotPrepared,
		Err:     err,
		RejectReasons: []entities.RejectReason{
			{
				RejectReasonMsg: err.Error(),
			},
		},
	}
}

func toOrderResponse(order *entities.Order, state entities.OrderState, reasons []entities.RejectReason) *entities.OrderResponse {
	return &entities.OrderResponse{
		OrderID:       order.ID,
		Drink:         order.Type,
		Quantity:      order.Quantity,
		ServedCount:   order.ServedCount,
		State:         state,
		RejectReasons: reasons,
	}
}

// Refill allows refilling some ingredient
func (c *coffeeMachineImpl) Refill(ctx context.Context, ingredientID entities.IngredientID, amount int) (entities.Quantities, error) {
	refillReq := resourcemanager.RefillRequest{
		IngredientID: ingredientID,
		Amount:       amount,
	}
	return c.resourceManager.Refill(ctx, refillReq)
}

func (c *coffeeMachineImpl) Inventory(ctx context.Context) entities.Quantities {
	return c.resourceManager.Inventory(ctx)
}
