package demandcalculator

import (
	"coffeeInventory/src/entities"
	"coffeeInventory/src/repository/recipecatalog"
	"context"
)

// Calculator reports how much of each ingredient a batch asks for
type Calculator interface {
	TotalRequired(ctx context.Context, orders []*entities.Order) (entities.Quantities, error)
}

type calculatorImpl struct {
	recipeCatalog recipecatalog.Repository
}

func New(recipeCatalog recipecatalog.Repository) Calculator {
	return &calculatorImpl{recipeCatalog: recipeCatalog}
}

// TotalRequired sums the requested quantity of every order. Served counts and the
// machine's inventory play no part in it.
func (c *calculatorImpl) TotalRequired(ctx context.Context, orders []*entities.Order) (entities.Quantities, error) {
	total := entities.Quantities{}
	for _, order := range orders {
		recipe, err := c.recipeCatalog.Lookup(ctx, order.Type)
		if err != nil {
			return entities.Quantities{}, err
		}
		total = total.Add(recipe.Requirements.Scale(order.Quantity))
	}
	return total, nil
}
