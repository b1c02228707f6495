package notifier

import (
	"coffeeInventory/src/entities"
	"context"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogNotifier(t *testing.T) {
	ctx := context.Background()
	order := &entities.Order{
		ID:          uuid.Must(uuid.NewV4()),
		Type:        entities.DrinkLatte,
		Quantity:    2,
		ServedCount: 1,
	}

	tests := []struct {
		name   string
		notify func(n Notifier)
		assert func(logs *observer.ObservedLogs)
	}{
		{
			name: "success | drink made",
			notify: func(n Notifier) {
				n.DrinkMade(ctx, order)
			},
			assert: func(logs *observer.ObservedLogs) {
				require.Equal(t, 1, logs.Len())
				entry := logs.All()[0]
				assert.Equal(t, zapcore.InfoLevel, entry.Level)
				assert.Equal(t, "latte made", entry.Message)
				assert.Equal(t, order.ID.String(), entry.ContextMap()["order_id"])
			},
		},
		{
			name: "success | make failed",
			notify: func(n Notifier) {
				n.MakeFailed(ctx, order, entities.ErrInsufficientIngredients{Drink: entities.DrinkLatte, IngredientID: entities.IngredientMilk})
			},
			assert: func(logs *observer.ObservedLogs) {
				require.Equal(t, 1, logs.Len())
				entry := logs.All()[0]
				assert.Equal(t, zapcore.WarnLevel, entry.Level)
				assert.Contains(t, entry.Message, "not enough ingredients")
			},
		},
		{
			name: "success | orders received",
			notify: func(n Notifier) {
				n.OrdersReceived(ctx, []*entities.Order{order, order})
			},
			assert: func(logs *observer.ObservedLogs) {
				require.Equal(t, 1, logs.Len())
				assert.EqualValues(t, 2, logs.All()[0].ContextMap()["count"])
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			tt.notify(NewLogNotifier(zap.New(core)))
			tt.assert(logs)
		})
	}
}

func TestNewNop(t *testing.T) {
	n := NewNop()
	assert.NotPanics(t, func() {
		n.DrinkMade(context.Background(), &entities.Order{Type: entities.DrinkEspresso})
	})
}
