package resourcemanager

//go:generate mockgen -source=resourcemanager.go -destination=mock_resourcemanager.go -package=resourcemanager

import (
	"coffeeInventory/src/entities"
	"context"
	"sync"
)

// Repository manages the ingredient inventory - provides methods to consume, refill and inspect it
type Repository interface {
	Consume(ctx context.Context, recipe entities.Recipe) (entities.Quantities, error)
	Refill(ctx context.Context, refillReq RefillRequest) (entities.Quantities, error)
	Inventory(ctx context.Context) entities.Quantities
}

/*
	Current quantities are stored in a fixed vector, one slot per ingredient.
	Every write takes the exclusive lock for the whole check-then-commit, so a
	failed consume or refill never leaves a partial update behind.
*/
type repositoryImpl struct {
	mutex     sync.RWMutex
	available entities.Quantities
	capacity  entities.Quantities
}

// New creates a store holding the given initial quantities
func New(water, milk, coffeeBeans int) (Repository, error) {
	initial := entities.Quantities{
		Water:       water,
		Milk:        milk,
		CoffeeBeans: coffeeBeans,
	}
	if err := validateInitial(initial, capacity); err != nil {
		return nil, err
	}
	return &repositoryImpl{
		mutex:     sync.RWMutex{},
		available: initial,
		capacity:  capacity,
	}, nil
}

func validateInitial(initial, capacity entities.Quantities) error {
	for _, id := range entities.Ingredients {
		qty, _ := initial.Get(id)
		if qty < 0 {
			return entities.ErrInvalidIngredient{IngredientID: id, Reason: entities.ReasonNegative}
		}
		limit, _ := capacity.Get(id)
		if qty > limit {
			return entities.ErrInvalidIngredient{IngredientID: id, Reason: entities.ReasonOverflow}
		}
	}
	return nil
}

// Consume takes the recipe's requirements out of the store, or nothing at all.
// It does not wait for a busy store, the caller decides whether to retry.
func (m *repositoryImpl) Consume(ctx context.Context, recipe entities.Recipe) (entities.Quantities, error) {
	if !m.mutex.TryLock() {
		return entities.Quantities{}, entities.ErrResourceTemporarilyNotAvailable{ResourceID: string(recipe.Drink)}
	}
	defer m.mutex.Unlock()

	for _, id := range entities.Ingredients {
		need, _ := recipe.Requirements.Get(id)
		have, _ := m.available.Get(id)
		if have < need {
			return m.available, entities.ErrInsufficientIngredients{Drink: recipe.Drink, IngredientID: id}
		}
	}

	m.available = m.available.Sub(recipe.Requirements)
	return m.available, nil
}

func (m *repositoryImpl) Refill(ctx context.Context, refillReq RefillRequest) (entities.Quantities, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	current, ok := m.available.Get(refillReq.IngredientID)
	if !ok {
		return m.available, entities.ErrUnknownIngredient{IngredientID: refillReq.IngredientID}
	}
	if refillReq.Amount < 0 {
		return m.available, entities.ErrInvalidAmount{IngredientID: refillReq.IngredientID, Amount: refillReq.Amount}
	}
	limit, _ := m.capacity.Get(refillReq.IngredientID)
	if refillReq.Amount > limit-current {
		return m.available, entities.ErrCapacityExceeded{IngredientID: refillReq.IngredientID, Capacity: limit}
	}

	m.available = m.available.With(refillReq.IngredientID, current+refillReq.Amount)
	return m.available, nil
}

// Inventory returns a copy of the current quantities
func (m *repositoryImpl) Inventory(ctx context.Context) entities.Quantities {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return m.available
}
