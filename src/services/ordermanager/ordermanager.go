package ordermanager

import (
	"coffeeInventory/src/entities"
	"coffeeInventory/src/repository/recipecatalog"
	"coffeeInventory/src/services/notifier"
	"context"
	"fmt"

	"github.com/gofrs/uuid"
)

// Manager checks incoming order batches and turns them into trackable orders
type Manager interface {
	Validate(ctx context.Context, requests []entities.OrderRequest) error
	Prepare(ctx context.Context, requests []entities.OrderRequest) ([]*entities.Order, error)
}

type managerImpl struct {
	recipeCatalog recipecatalog.Repository
	notifier      notifier.Notifier
}

type Params struct {
	RecipeCatalog recipecatalog.Repository
	Notifier      notifier.Notifier
}

func New(p Params) Manager {
	n := p.Notifier
	if n == nil {
		n = notifier.NewNop()
	}
	return &managerImpl{
		recipeCatalog: p.RecipeCatalog,
		notifier:      n,
	}
}

// Validate stops at the first bad order, the error carries its index
func (m *managerImpl) Validate(ctx context.Context, requests []entities.OrderRequest) error {
	for idx, request := range requests {
		if _, err := m.recipeCatalog.Lookup(ctx, request.Type); err != nil {
			return entities.ErrInvalidOrder{Index: idx, Field: "type", Value: request.Type}
		}
		if request.Quantity < 0 {
			return entities.ErrInvalidOrder{Index: idx, Field: "quantity", Value: request.Quantity}
		}
	}
	return nil
}

/*
	Prepare validates the batch and returns a fresh set of orders, each with a new id
	and a served count of zero. The requests themselves are left untouched.

	It must be called once per batch: preparing the same requests again produces a
	new batch that knows nothing about what the previous one already served.
*/
func (m *managerImpl) Prepare(ctx context.Context, requests []entities.OrderRequest) ([]*entities.Order, error) {
	if err := m.Validate(ctx, requests); err != nil {
		return nil, err
	}

	orders := make([]*entities.Order, 0, len(requests))
	for _, request := range requests {
		id, err := uuid.NewV4()
		if err != nil {
			return nil, fmt.Errorf("generating order id: %w", err)
		}
		orders = append(orders, &entities.Order{
			ID:          id,
			Type:        request.Type,
			Quantity:    request.Quantity,
			ServedCount: 0,
		})
	}

	m.notifier.OrdersReceived(ctx, orders)
	return orders, nil
}
