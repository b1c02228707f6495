package entities

import (
	"fmt"
	"strings"

	"github.com/gofrs/uuid"
)

// IngredientID identifies one of the consumables held by the machine
type IngredientID string

const (
	IngredientWater       IngredientID = "w"
	IngredientMilk        IngredientID = "m"
	IngredientCoffeeBeans IngredientID = "c"
)

// Ingredients lists every known ingredient in inventory order
var Ingredients = []IngredientID{IngredientWater, IngredientMilk, IngredientCoffeeBeans}

// Name returns the human readable name used in inventory snapshots
func (i IngredientID) Name() string {
	switch i {
	case IngredientWater:
		return "water"
	case IngredientMilk:
		return "milk"
	case IngredientCoffeeBeans:
		return "coffeeBeans"
	}
	return string(i)
}

func (i IngredientID) Valid() bool {
	switch i {
	case IngredientWater, IngredientMilk, IngredientCoffeeBeans:
		return true
	}
	return false
}

// Quantities is an amount per ingredient. It backs recipes, inventory snapshots and demand totals.
type Quantities struct {
	Water       int `json:"water"`
	Milk        int `json:"milk"`
	CoffeeBeans int `json:"coffeeBeans"`
}

func (q Quantities) Get(id IngredientID) (int, bool) {
	switch id {
	case IngredientWater:
		return q.Water, true
	case IngredientMilk:
		return q.Milk, true
	case IngredientCoffeeBeans:
		return q.CoffeeBeans, true
	}
	return 0, false
}

// With returns a copy of q with the quantity for id replaced
func (q Quantities) With(id IngredientID, quantity int) Quantities {
	switch id {
	case IngredientWater:
		q.Water = quantity
	case IngredientMilk:
		q.Milk = quantity
	case IngredientCoffeeBeans:
		q.CoffeeBeans = quantity
	}
	return q
}

func (q Quantities) Add(o Quantities) Quantities {
	return Quantities{
		Water:       q.Water + o.Water,
		Milk:        q.Milk + o.Milk,
		CoffeeBeans: q.CoffeeBeans + o.CoffeeBeans,
	}
}

func (q Quantities) Sub(o Quantities) Quantities {
	return Quantities{
		Water:       q.Water - o.Water,
		Milk:        q.Milk - o.Milk,
		CoffeeBeans: q.CoffeeBeans - o.CoffeeBeans,
	}
}

func (q Quantities) Scale(n int) Quantities {
	return Quantities{
		Water:       q.Water * n,
		Milk:        q.Milk * n,
		CoffeeBeans: q.CoffeeBeans * n,
	}
}

func (q Quantities) String() string {
	return fmt.Sprintf("water=%d milk=%d coffeeBeans=%d", q.Water, q.Milk, q.CoffeeBeans)
}

type DrinkType string

const (
	DrinkEspresso   DrinkType = "espresso"
	DrinkLatte      DrinkType = "latte"
	DrinkCappuccino DrinkType = "cappuccino"
)

// Recipe is the amount of every ingredient needed for one unit of a drink
type Recipe struct {
	Drink        DrinkType
	Requirements Quantities
}

// OrderRequest is what a caller asks for, before validation
type OrderRequest struct {
	Type     DrinkType
	Quantity int
}

// Order is a validated request together with its fulfillment progress
type Order struct {
	ID          uuid.UUID
	Type        DrinkType
	Quantity    int
	ServedCount int
}

func (o *Order) Remaining() int {
	return o.Quantity - o.ServedCount
}

func (o *Order) Fulfilled() bool {
	return o.ServedCount >= o.Quantity
}

type OrderState string

var (
	OrderStatePending   OrderState = "PENDING"
	OrderStateFulfilled OrderState = "FULFILLED"
	OrderStateStalled   OrderState = "STALLED"
)

// State is derived from the counts alone. Stalled is only known to the processing
// pass that saw the failure, see OrderResponse.
func (o *Order) State() OrderState {
	if o.Fulfilled() {
		return OrderStateFulfilled
	}
	return OrderStatePending
}

type RejectReason struct {
	RejectReasonMsg string
}

func (r RejectReason) String() string {
	return r.RejectReasonMsg
}

type MakeOutcome string

var (
	MakeOutcomePrepared    MakeOutcome = "PREPARED"
	MakeOutcomeNotPrepared MakeOutcome = "NOT_PREPARED"
)

// MakeResponse is the outcome of a single attempt to make one unit of a drink
type MakeResponse struct {
	Drink         DrinkType
	Outcome       MakeOutcome
	Err           error
	RejectReasons []RejectReason
}

func (m MakeResponse) String() string {
	resp := strings.Join([]string{string(m.Drink), string(m.Outcome), " "}, " : ")
	if m.Outcome == MakeOutcomeNotPrepared {
		for _, reason := range m.RejectReasons {
			resp = resp + reason.String()
		}
	}
	return resp
}

// OrderResponse reports where an order stands after a processing pass
type OrderResponse struct {
	OrderID       uuid.UUID
	Drink         DrinkType
	Quantity      int
	ServedCount   int
	State         OrderState
	RejectReasons []RejectReason
}

func (o OrderResponse) String() string {
	resp := strings.Join([]string{
		string(o.Drink),
		fmt.Sprintf("%d/%d", o.ServedCount, o.Quantity),
		string(o.State),
		" ",
	}, " : ")
	if o.State == OrderStateStalled {
		for _, reason := range o.RejectReasons {
			resp = resp + reason.String()
		}
	}
	resp += "\n"
	return resp
}
