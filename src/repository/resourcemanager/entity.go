package resourcemanager

import "coffeeInventory/src/entities"

var capacity = entities.Quantities{
	Water:       1000,
	Milk:        1000,
	CoffeeBeans: 1000,
}

// Capacity is the most the machine can hold of every ingredient
func Capacity() entities.Quantities {
	return capacity
}

type RefillRequest struct {
	IngredientID entities.IngredientID
	Amount       int
}
