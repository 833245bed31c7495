package e2e

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"
)

type customerRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Address    string `json:"address,omitempty"`
	PostalCode string `json:"postal_code"`
	Phone      string `json:"phone"`
	DivisionID int64  `json:"division_id"`
}

// addressが無いと400でフィールド別エラーが返る
func TestCustomers_Create_MissingAddress(t *testing.T) {
	c := NewTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	req := customerRequest{
		FirstName:  "Taro",
		LastName:   "Yamada",
		PostalCode: "100-0001",
		Phone:      "(03)555-0606",
		DivisionID: 4,
	}

	resp, body := c.doJSON(ctx, t, http.MethodPost, "/api/customers", mustMarshal(t, req))
	requireStatus(t, resp, http.StatusBadRequest, body)

	errResp := mustDecodeError(t, body)
	if _, ok := errResp.Fields["address"]; !ok {
		t.Fatalf("expected field error for address, body=%s", string(body))
	}
}

func TestCustomers_Create_UnknownDivision(t *testing.T) {
	c := NewTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	req := customerRequest{
		FirstName:  "Taro",
		LastName:   "Yamada",
		Address:    "1-1-1 Chiyoda",
		PostalCode: "100-0001",
		Phone:      "(03)555-0606",
		DivisionID: 99999,
	}

	resp, body := c.doJSON(ctx, t, http.MethodPost, "/api/customers", mustMarshal(t, req))
	requireStatus(t, resp, http.StatusBadRequest, body)
}

// シード済みの5顧客と5 Divisionが見える
func TestCustomers_SeededData(t *testing.T) {
	c := NewTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, body := c.doJSON(ctx, t, http.MethodGet, "/api/customers", nil)
	requireStatus(t, resp, http.StatusOK, body)

	var customers []CustomerDTO
	if err := json.Unmarshal(body, &customers); err != nil {
		t.Fatalf("json.Unmarshal([]CustomerDTO) failed: %v body=%s", err, string(body))
	}

	wantDivisions := map[string]int64{
		"Patel":  4,
		"Chen":   42,
		"Sharma": 9,
		"Tanaka": 31,
		"Wong":   12,
	}
	seen := 0
	for _, cu := range customers {
		if want, ok := wantDivisions[cu.LastName]; ok && cu.DivisionID == want {
			seen++
		}
	}
	if seen < len(wantDivisions) {
		t.Fatalf("seeded customers missing: found %d of %d", seen, len(wantDivisions))
	}

	resp, body = c.doJSON(ctx, t, http.MethodGet, "/api/divisions", nil)
	requireStatus(t, resp, http.StatusOK, body)

	var divisions []DivisionDTO
	if err := json.Unmarshal(body, &divisions); err != nil {
		t.Fatalf("json.Unmarshal([]DivisionDTO) failed: %v body=%s", err, string(body))
	}

	ids := map[int64]bool{}
	for _, d := range divisions {
		ids[d.ID] = true
	}
	for _, id := range []int64{4, 9, 12, 31, 42} {
		if !ids[id] {
			t.Fatalf("division %d not seeded", id)
		}
	}
}

func TestCustomers_Detail_NotFound(t *testing.T) {
	c := NewTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, body := c.doJSON(ctx, t, http.MethodGet, "/api/customers/99999999", nil)
	requireStatus(t, resp, http.StatusNotFound, body)
}
