package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/events"
)

// OrderFeedHandler decodes orders.created messages and hands each event to
// consume. A message that does not decode into a usable event is logged and
// rejected; the feed keeps running.
func OrderFeedHandler(logger apt.Logger, consume func(OrderCreated)) events.HandlerFunc {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	return func(ctx context.Context, msg []byte) error {
		var evt OrderCreated
		if err := json.Unmarshal(msg, &evt); err != nil {
			logger.Error("cannot decode order event", "error", err)
			return fmt.Errorf("cannot decode order event: %w", err)
		}
		if evt.OrderID == "" || evt.ShopID == "" {
			logger.Error("discarding order event without ids")
			return fmt.Errorf("order event is missing ids")
		}
		consume(evt)
		return nil
	}
}
