package notifier

//go:generate mockgen -source=notifier.go -destination=mock_notifier.go -package=notifier

import (
	"coffeeInventory/src/entities"
	"context"

	"go.uber.org/zap"
)

// Notifier receives human readable status from the machine. Nothing reads it back.
type Notifier interface {
	OrdersReceived(ctx context.Context, orders []*entities.Order)
	DrinkMade(ctx context.Context, order *entities.Order)
	MakeFailed(ctx context.Context, order *entities.Order, err error)
}

type logNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier writes every notification to logger
func NewLogNotifier(logger *zap.Logger) Notifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) OrdersReceived(ctx context.Context, orders []*entities.Order) {
	ids := make([]string, 0, len(orders))
	for _, order := range orders {
		ids = append(ids, order.ID.String())
	}
	n.logger.Info("orders received",
		zap.Int("count", len(orders)),
		zap.Strings("order_ids", ids),
	)
}

func (n *logNotifier) DrinkMade(ctx context.Context, order *entities.Order) {
	n.logger.Info(string(order.Type)+" made",
		zap.String("drink", string(order.Type)),
		zap.String("order_id", order.ID.String()),
		zap.Int("served", order.ServedCount),
		zap.Int("quantity", order.Quantity),
	)
}

func (n *logNotifier) MakeFailed(ctx context.Context, order *entities.Order, err error) {
	n.logger.Warn(err.Error(),
		zap.String("drink", string(order.Type)),
		zap.String("order_id", order.ID.String()),
		zap.Int("served", order.ServedCount),
		zap.Int("quantity", order.Quantity),
	)
}

// NewNop returns a Notifier that drops everything
func NewNop() Notifier {
	return NewLogNotifier(zap.NewNop())
}
