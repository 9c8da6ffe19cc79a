package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetStatistics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/admin/statistics", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(Statistics{
			TotalUsers:   120,
			ActiveUsers:  45,
			TotalRevenue: 10500,
			RevenueByPlan: []PlanRevenue{
				{PlanType: "monthly", Count: 30, Total: 9000},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithToken("secret"))

	stats, err := client.GetStatistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(120), stats.TotalUsers)
	assert.Equal(t, int64(45), stats.ActiveUsers)
	require.Len(t, stats.RevenueByPlan, 1)
	assert.Equal(t, "monthly", stats.RevenueByPlan[0].PlanType)
}

func TestClient_ListUsers_QueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/users", r.URL.Path)
		assert.Equal(t, "25", r.URL.Query().Get("limit"))
		assert.Equal(t, "50", r.URL.Query().Get("skip"))
		assert.Equal(t, "alice", r.URL.Query().Get("search"))
		assert.Equal(t, "active", r.URL.Query().Get("status"))

		json.NewEncoder(w).Encode(UserList{
			Users: []User{{TelegramID: 12345, TelegramUsername: "alice"}},
			Total: 1,
			Limit: 25,
			Skip:  50,
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	users, err := client.ListUsers(context.Background(), ListUsersParams{
		Limit:  25,
		Skip:   50,
		Search: "alice",
		Status: "active",
	})
	require.NoError(t, err)
	require.Len(t, users.Users, 1)
	assert.Equal(t, int64(12345), users.Users[0].TelegramID)
}

func TestClient_ListUsers_OmitsEmptyParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		json.NewEncoder(w).Encode(UserList{Users: []User{}})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	_, err := client.ListUsers(context.Background(), ListUsersParams{})
	require.NoError(t, err)
}

func TestClient_GetUserDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/users/12345", r.URL.Path)

		json.NewEncoder(w).Encode(UserDetail{
			User:     User{TelegramID: 12345},
			Payments: []Payment{{PaymentID: "pay_1", Status: "pending"}},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	detail, err := client.GetUserDetail(context.Background(), 12345)
	require.NoError(t, err)
	assert.Equal(t, int64(12345), detail.User.TelegramID)
	require.Len(t, detail.Payments, 1)
	assert.Equal(t, "pay_1", detail.Payments[0].PaymentID)
}

func TestClient_ApprovePayment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/admin/payments/pay_abc/approve", r.URL.Path)

		json.NewEncoder(w).Encode(ActionResult{Message: "Payment approved", PaymentID: "pay_abc"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	result, err := client.ApprovePayment(context.Background(), "pay_abc")
	require.NoError(t, err)
	assert.Equal(t, "Payment approved", result.Message)
}

func TestClient_RejectPayment_ReasonInQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/payments/pay_abc/reject", r.URL.Path)
		assert.Equal(t, "Blurry screenshot", r.URL.Query().Get("reason"))

		json.NewEncoder(w).Encode(ActionResult{Message: "Payment rejected", PaymentID: "pay_abc"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	result, err := client.RejectPayment(context.Background(), "pay_abc", "Blurry screenshot")
	require.NoError(t, err)
	assert.Equal(t, "Payment rejected", result.Message)
}

func TestClient_SendBroadcast(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/admin/broadcast", r.URL.Path)

		var req BroadcastRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "hello", req.Message)
		assert.Equal(t, "all", req.Target)

		json.NewEncoder(w).Encode(BroadcastReceipt{
			Message:        "Broadcast queued",
			BroadcastID:    "bc_1",
			RecipientCount: 99,
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	receipt, err := client.SendBroadcast(context.Background(), BroadcastRequest{Message: "hello", Target: "all"})
	require.NoError(t, err)
	assert.Equal(t, "bc_1", receipt.BroadcastID)
	assert.Equal(t, 99, receipt.RecipientCount)
}

func TestClient_DecodesErrorDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Payment not found"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	_, err := client.ApprovePayment(context.Background(), "pay_missing")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Payment not found", apiErr.Detail)
}

func TestClient_NonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	err := client.Health(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "upstream down", apiErr.Detail)
}

func TestClient_TrimsTrailingSlash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL + "/")

	require.NoError(t, client.Health(context.Background()))
}
