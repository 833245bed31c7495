package e2e

import (
	"context"
	"encoding/json"
	"net/http"
	"regexp"
	"strconv"
	"testing"
	"time"
)

var trackingNumberRe = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

type purchaseCartPayload struct {
	ID         int64 `json:"id"`
	CustomerID int64 `json:"customer_id"`
}

type purchaseItemPayload struct {
	Quantity  int64 `json:"quantity"`
	UnitPrice int64 `json:"unit_price"`
}

type purchaseRequest struct {
	Cart      purchaseCartPayload   `json:"cart"`
	CartItems []purchaseItemPayload `json:"cartItems"`
}

func TestCheckout_Purchase_ReturnsTrackingNumber(t *testing.T) {
	c := NewTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	req := purchaseRequest{
		Cart: purchaseCartPayload{CustomerID: 1},
		CartItems: []purchaseItemPayload{
			{Quantity: 2, UnitPrice: 1500},
			{Quantity: 1, UnitPrice: 300},
		},
	}

	resp, body := c.doJSON(ctx, t, http.MethodPost, "/api/checkout/purchase", mustMarshal(t, req))
	requireStatus(t, resp, http.StatusOK, body)

	out := mustDecodePurchase(t, body)
	if out.OrderTrackingNumber == "" {
		t.Fatalf("orderTrackingNumber is empty: body=%s", string(body))
	}
	if !trackingNumberRe.MatchString(out.OrderTrackingNumber) {
		t.Fatalf("orderTrackingNumber is not a canonical UUID: %s", out.OrderTrackingNumber)
	}
}

// 保存されたカートは返却された追跡番号を持ち、明細は全部そのカートに付く
func TestCheckout_Purchase_PersistsCartAndItems(t *testing.T) {
	c := NewTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	req := purchaseRequest{
		Cart: purchaseCartPayload{CustomerID: 1},
		CartItems: []purchaseItemPayload{
			{Quantity: 3, UnitPrice: 500},
			{Quantity: 1, UnitPrice: 1200},
			{Quantity: 2, UnitPrice: 80},
		},
	}

	resp, body := c.doJSON(ctx, t, http.MethodPost, "/api/checkout/purchase", mustMarshal(t, req))
	requireStatus(t, resp, http.StatusOK, body)
	out := mustDecodePurchase(t, body)

	//追跡番号でカートを探す
	resp, body = c.doJSON(ctx, t, http.MethodGet, "/api/carts", nil)
	requireStatus(t, resp, http.StatusOK, body)

	var carts []CartDTO
	if err := json.Unmarshal(body, &carts); err != nil {
		t.Fatalf("json.Unmarshal([]CartDTO) failed: %v body=%s", err, string(body))
	}

	var found *CartDTO
	for i := range carts {
		if carts[i].OrderTrackingNumber != nil && *carts[i].OrderTrackingNumber == out.OrderTrackingNumber {
			found = &carts[i]
			break
		}
	}
	if found == nil {
		t.Fatalf("cart with tracking number %s not found", out.OrderTrackingNumber)
	}
	if found.Status != "ORDERED" {
		t.Fatalf("cart status=%s want=ORDERED", found.Status)
	}

	//明細は3件、すべてこのカートのid
	resp, body = c.doJSON(ctx, t, http.MethodGet, "/api/carts/"+strconv.FormatInt(found.ID, 10)+"/items", nil)
	requireStatus(t, resp, http.StatusOK, body)

	var items []CartItemDTO
	if err := json.Unmarshal(body, &items); err != nil {
		t.Fatalf("json.Unmarshal([]CartItemDTO) failed: %v body=%s", err, string(body))
	}
	if len(items) != 3 {
		t.Fatalf("items=%d want=3 body=%s", len(items), string(body))
	}
	for _, it := range items {
		if it.CartID != found.ID {
			t.Fatalf("item %d cart_id=%d want=%d", it.ID, it.CartID, found.ID)
		}
	}
}

// 同じカートをもう一度チェックアウトすると追跡番号は別になる（冪等ではない）
func TestCheckout_Purchase_NotIdempotent(t *testing.T) {
	c := NewTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	req := purchaseRequest{
		Cart:      purchaseCartPayload{CustomerID: 1},
		CartItems: []purchaseItemPayload{{Quantity: 1, UnitPrice: 100}},
	}

	resp, body := c.doJSON(ctx, t, http.MethodPost, "/api/checkout/purchase", mustMarshal(t, req))
	requireStatus(t, resp, http.StatusOK, body)
	first := mustDecodePurchase(t, body)

	//保存済みカートのidを取って再送
	resp, body = c.doJSON(ctx, t, http.MethodGet, "/api/carts", nil)
	requireStatus(t, resp, http.StatusOK, body)

	var carts []CartDTO
	if err := json.Unmarshal(body, &carts); err != nil {
		t.Fatalf("json.Unmarshal([]CartDTO) failed: %v", err)
	}
	var cartID int64
	for _, cart := range carts {
		if cart.OrderTrackingNumber != nil && *cart.OrderTrackingNumber == first.OrderTrackingNumber {
			cartID = cart.ID
			break
		}
	}
	if cartID == 0 {
		t.Fatalf("cart for tracking number %s not found", first.OrderTrackingNumber)
	}

	req.Cart.ID = cartID
	resp, body = c.doJSON(ctx, t, http.MethodPost, "/api/checkout/purchase", mustMarshal(t, req))
	requireStatus(t, resp, http.StatusOK, body)
	second := mustDecodePurchase(t, body)

	if first.OrderTrackingNumber == second.OrderTrackingNumber {
		t.Fatalf("expected a fresh tracking number, got the same: %s", first.OrderTrackingNumber)
	}
}

func TestCheckout_Purchase_InvalidQuantity(t *testing.T) {
	c := NewTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	req := purchaseRequest{
		Cart:      purchaseCartPayload{CustomerID: 1},
		CartItems: []purchaseItemPayload{{Quantity: 0, UnitPrice: 100}},
	}

	resp, body := c.doJSON(ctx, t, http.MethodPost, "/api/checkout/purchase", mustMarshal(t, req))
	requireStatus(t, resp, http.StatusBadRequest, body)

	errResp := mustDecodeError(t, body)
	if errResp.Error == "" {
		t.Fatalf("expected error message, body=%s", string(body))
	}
}
