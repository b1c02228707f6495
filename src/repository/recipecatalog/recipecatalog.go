package recipecatalog

//go:generate mockgen -source=recipecatalog.go -destination=mock_recipecatalog.go -package=recipecatalog

import (
	"coffeeInventory/src/entities"
	"context"
)

// Repository is the read-only list of drinks the machine knows how to make
type Repository interface {
	Lookup(ctx context.Context, drink entities.DrinkType) (entities.Recipe, error)
	DrinkTypes(ctx context.Context) []entities.DrinkType
}

// recipes never change after startup, so no locking is needed
var recipes = map[entities.DrinkType]entities.Quantities{
	entities.DrinkEspresso:   {Water: 50, Milk: 0, CoffeeBeans: 18},
	entities.DrinkLatte:      {Water: 30, Milk: 150, CoffeeBeans: 18},
	entities.DrinkCappuccino: {Water: 30, Milk: 100, CoffeeBeans: 18},
}

var drinkTypes = []entities.DrinkType{
	entities.DrinkEspresso,
	entities.DrinkLatte,
	entities.DrinkCappuccino,
}

type repositoryImpl struct{}

func New() Repository {
	return repositoryImpl{}
}

func (repositoryImpl) Lookup(ctx context.Context, drink entities.DrinkType) (entities.Recipe, error) {
	requirements, ok := recipes[drink]
	if !ok {
		return entities.Recipe{}, entities.ErrUnknownDrinkType{Drink: drink}
	}
	return entities.Recipe{Drink: drink, Requirements: requirements}, nil
}

// DrinkTypes returns the known drinks in menu order
func (repositoryImpl) DrinkTypes(ctx context.Context) []entities.DrinkType {
	out := make([]entities.DrinkType, len(drinkTypes))
	copy(out, drinkTypes)
	return out
}
