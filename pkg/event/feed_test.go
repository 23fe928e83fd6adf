package event

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

func TestOrderFeedHandler(t *testing.T) {
	created := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	msg, err := json.Marshal(OrderCreated{
		OrderID:     "ord_1",
		ShopID:      "shop_1",
		Type:        "DINE_IN",
		TotalAmount: 46000,
		CreatedAt:   created,
	})
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}

	var got *OrderCreated
	handler := OrderFeedHandler(nil, func(evt OrderCreated) { got = &evt })

	if err := handler(context.Background(), msg); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if got == nil {
		t.Fatal("consume was not called")
	}
	if got.OrderID != "ord_1" || got.ShopID != "shop_1" || got.TotalAmount != 46000 {
		t.Errorf("consumed event = %+v", got)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("createdAt = %v, want %v", got.CreatedAt, created)
	}
}

func TestOrderFeedHandlerRejectsBadMessages(t *testing.T) {
	tests := []struct {
		name string
		msg  []byte
	}{
		{
			name: "malformedJSON",
			msg:  []byte("not json"),
		},
		{
			name: "missingIDs",
			msg:  []byte(`{"type":"DINE_IN","total_amount":100}`),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			consumed := false
			handler := OrderFeedHandler(nil, func(OrderCreated) { consumed = true })

			if err := handler(context.Background(), tt.msg); err == nil {
				t.Error("handler error = nil, want rejection")
			}
			if consumed {
				t.Error("consume ran for a rejected message")
			}
		})
	}
}
