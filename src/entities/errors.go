package entities

import "fmt"

const (
	ReasonNotNumeric = "ingredient values must be numbers"
	ReasonNegative   = "ingredient values must be >= 0"
	ReasonOverflow   = "ingredient values must not exceed the capacity"
)

// ErrInvalidIngredient is returned when a store is built from bad initial quantities
type ErrInvalidIngredient struct {
	IngredientID IngredientID
	Reason       string
}

func (e ErrInvalidIngredient) Error() string {
	if e.IngredientID == "" {
		return e.Reason
	}
	return e.Reason + ", ingredient : " + e.IngredientID.Name()
}

type ErrInsufficientIngredients struct {
	Drink        DrinkType
	IngredientID IngredientID
}

func (e ErrInsufficientIngredients) Error() string {
	return "not enough ingredients to make " + string(e.Drink) + ", missing : " + e.IngredientID.Name()
}

type ErrUnknownIngredient struct {
	IngredientID IngredientID
}

func (e ErrUnknownIngredient) Error() string {
	return fmt.Sprintf("refill for %s failed: the ingredient is not available", e.IngredientID)
}

type ErrInvalidAmount struct {
	IngredientID IngredientID
	Amount       int
}

func (e ErrInvalidAmount) Error() string {
	return fmt.Sprintf("refill for %s failed: the amount must be positive, got %d", e.IngredientID, e.Amount)
}

type ErrCapacityExceeded struct {
	IngredientID IngredientID
	Capacity     int
}

func (e ErrCapacityExceeded) Error() string {
	return fmt.Sprintf("refill for %s failed: the maximum capacity (%d) has been exceeded", e.IngredientID, e.Capacity)
}

type ErrUnknownDrinkType struct {
	Drink DrinkType
}

func (e ErrUnknownDrinkType) Error() string {
	return "unknown coffee type: " + string(e.Drink)
}

// ErrInvalidOrder points at the first malformed order of a batch
type ErrInvalidOrder struct {
	Index int
	Field string
	Value interface{}
}

func (e ErrInvalidOrder) Error() string {
	return fmt.Sprintf("order at index %d has an invalid %s: %v", e.Index, e.Field, e.Value)
}

// ErrResourceTemporarilyNotAvailable is transient, the store was busy with another writer
type ErrResourceTemporarilyNotAvailable struct {
	ResourceID string
}

func (e ErrResourceTemporarilyNotAvailable) Error() string {
	return "resource temporarily unavailable, resource-id : " + e.ResourceID
}
