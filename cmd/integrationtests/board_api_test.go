package integrationtests

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"testing"

	model "auction-board/internal/models"
	"auction-board/internal/store"
	"auction-board/services/board/helpers"

	"github.com/PuerkitoBio/goquery"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// Dashboard page tests
func TestDashboardPage(t *testing.T) {
	router, _ := SetupTestRouter(t, nil)

	w := ExecuteRequest(router, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	doc, err := goquery.NewDocumentFromReader(w.Body)
	require.NoError(t, err)

	var stats []string
	doc.Find(".stat-value").Each(func(_ int, s *goquery.Selection) {
		stats = append(stats, strings.TrimSpace(s.Text()))
	})
	require.Equal(t, []string{"2", "1", "51", "0"}, stats)
	require.Equal(t, "1", doc.Find("#users-total").Text())

	var numbers []string
	doc.Find("tr[data-auction-id] .auction-number").Each(func(_ int, s *goquery.Selection) {
		numbers = append(numbers, s.Text())
	})
	require.Equal(t, []string{"AUC-2024-001", "AUC-2024-002", "AUC-2024-003", "AUC-2023-045", "AUC-2024-004", "AUC-2024-005"}, numbers)

	first := doc.Find(`tr[data-auction-id="1"]`)
	require.Equal(t, "₹125,000", first.Find(".current-bid").Text())
	require.Equal(t, "Dec 20, 2024", first.Find(".start-date").Text())
	require.Equal(t, "Dec 27, 2024", first.Find(".end-date").Text())

	require.Equal(t, 4, doc.Find("#recent-activity li").Length())
	require.Contains(t, doc.Find("#recent-activity li").First().Text(), "minutes ago")
}

// Shared counter tests
func TestSharedCounter(t *testing.T) {
	tests := []struct {
		name      string
		actions   []string
		wantValue float64
	}{
		{name: "Increment_Increment_Decrement", actions: []string{"increment", "increment", "decrement"}, wantValue: 1},
		{name: "Below_Zero", actions: []string{"decrement", "decrement"}, wantValue: -2},
		{name: "Reset", actions: []string{"increment", "increment", "increment", "reset"}, wantValue: 0},
		{name: "No_Actions", actions: nil, wantValue: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := SetupTestRouter(t, nil)

			for _, action := range tt.actions {
				resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/api/counter/"+action, nil)
				require.Equal(t, http.StatusOK, w.Code)
				require.Contains(t, resp, "data")
			}

			resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/api/counter", nil)
			require.Equal(t, http.StatusOK, w.Code)
			require.Equal(t, tt.wantValue, resp["data"].(map[string]any)["value"])

			// the page and the live stat card agree with the API
			page := ExecuteRequest(router, http.MethodGet, "/", nil)
			doc, err := goquery.NewDocumentFromReader(page.Body)
			require.NoError(t, err)
			require.Equal(t, resp["data"].(map[string]any)["value"], mustFloat(t, doc.Find("#counter-value").Text()))
			require.Equal(t, resp["data"].(map[string]any)["value"], mustFloat(t, doc.Find(`.stat-value[data-live="counter"]`).Text()))
		})
	}
}

// Shared user registry tests
func TestSharedUsers(t *testing.T) {
	t.Run("Add_Auctioneer", func(t *testing.T) {
		router, _ := SetupTestRouter(t, nil)

		before, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/api/users", nil)
		require.Equal(t, http.StatusOK, w.Code)
		n := before["data"].(map[string]any)["total_count"].(float64)

		resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/api/users/auctioneer", nil)
		require.Equal(t, http.StatusCreated, w.Code)
		data := resp["data"].(map[string]any)
		require.Equal(t, n+1, data["total_count"])

		user := data["user"].(map[string]any)
		require.Equal(t, "Auctioneer", user["role"])
		require.True(t, strings.HasPrefix(user["name"].(string), "Auctioneer "))
		require.True(t, strings.HasSuffix(user["email"].(string), "@customs.gov"))

		after, _ := ExecuteRequestAndParse(t, router, http.MethodGet, "/api/users", nil)
		records := after["data"].(map[string]any)["records"].([]any)
		require.Len(t, records, int(n)+1)
		require.Equal(t, user["id"], records[len(records)-1].(map[string]any)["id"], "new records are appended")
	})

	tests := []struct {
		name       string
		request    any
		wantStatus int
	}{
		{
			name:       "Valid_User",
			request:    helpers.AddUserRequest{Name: "Jane Officer", Email: "jane@customs.gov", Role: "Officer"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "Explicit_ID",
			request:    helpers.AddUserRequest{ID: "officer-777", Name: "Officer 777", Email: "o777@customs.gov", Role: "Officer"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "Missing_Email",
			request:    helpers.AddUserRequest{Name: "No Mail", Role: "Officer"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Blank_Name",
			request:    helpers.AddUserRequest{Name: "   ", Email: "blank@customs.gov", Role: "Officer"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Invalid_JSON",
			request:    "{name: 'missing quotes'}",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, s := SetupTestRouter(t, nil)

			resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/api/users", tt.request)
			require.Equal(t, tt.wantStatus, w.Code)

			users, err := s.Users(context.Background())
			require.NoError(t, err)
			if tt.wantStatus == http.StatusCreated {
				require.Equal(t, 2, users.TotalCount)
				require.NotEmpty(t, resp["data"].(map[string]any)["user"].(map[string]any)["id"])
				return
			}
			require.Equal(t, 1, users.TotalCount, "rejected users are not stored")
			require.NotEmpty(t, resp["error"])
		})
	}
}

// Auction read endpoint tests
func TestAuctionEndpoints(t *testing.T) {
	router, _ := SetupTestRouter(t, nil)

	tests := []struct {
		name       string
		url        string
		wantStatus int
		wantCount  int
	}{
		{name: "All", url: "/api/auctions", wantStatus: http.StatusOK, wantCount: 6},
		{name: "Live", url: "/api/auctions?status=Live", wantStatus: http.StatusOK, wantCount: 2},
		{name: "Upcoming", url: "/api/auctions?status=Upcoming", wantStatus: http.StatusOK, wantCount: 1},
		{name: "Closed", url: "/api/auctions?status=Closed", wantStatus: http.StatusOK, wantCount: 2},
		{name: "Unknown_Status", url: "/api/auctions?status=Paused", wantStatus: http.StatusBadRequest},
		{name: "Activities", url: "/api/activities", wantStatus: http.StatusOK, wantCount: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, tt.url, nil)
			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				require.Len(t, resp["data"], tt.wantCount)
			}
		})
	}

	t.Run("Get_By_ID", func(t *testing.T) {
		resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/api/auctions/3", nil)
		require.Equal(t, http.StatusOK, w.Code)
		data := resp["data"].(map[string]any)
		require.Equal(t, "AUC-2024-003", data["auction_number"])
		require.Equal(t, string(model.StatusUpcoming), data["status"])
	})

	t.Run("Get_Missing", func(t *testing.T) {
		resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/api/auctions/42", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		require.Equal(t, "auction not found", resp["message"])
	})

	t.Run("Dashboard_JSON", func(t *testing.T) {
		resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/api/dashboard", nil)
		require.Equal(t, http.StatusOK, w.Code)
		summary := resp["data"].(map[string]any)["summary"].(map[string]any)
		require.Equal(t, 2.0, summary["live_count"])
		require.Equal(t, 1.0, summary["upcoming_count"])
		require.Equal(t, 51.0, summary["total_bids"])
	})
}

// Two board instances sharing one Redis see the same counter and registry
func TestRedisBackedInstances(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	newInstance := func() *store.RedisStore {
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { client.Close() })
		rs := store.NewRedisStore(client, "it", store.WithInitialUsers(store.DefaultInitialUsers()...))
		require.NoError(t, rs.Seed(ctx))
		return rs
	}

	routerA, _ := SetupTestRouter(t, newInstance())
	routerB, _ := SetupTestRouter(t, newInstance())

	for _, path := range []string{"/api/counter/increment", "/api/counter/increment"} {
		require.Equal(t, http.StatusOK, ExecuteRequest(routerA, http.MethodPost, path, nil).Code)
	}
	require.Equal(t, http.StatusOK, ExecuteRequest(routerB, http.MethodPost, "/api/counter/decrement", nil).Code)
	require.Equal(t, http.StatusCreated, ExecuteRequest(routerB, http.MethodPost, "/api/users/auctioneer", nil).Code)

	respA, _ := ExecuteRequestAndParse(t, routerA, http.MethodGet, "/api/counter", nil)
	respB, _ := ExecuteRequestAndParse(t, routerB, http.MethodGet, "/api/counter", nil)
	require.Equal(t, 1.0, respA["data"].(map[string]any)["value"])
	require.Equal(t, respA["data"], respB["data"])

	usersA, _ := ExecuteRequestAndParse(t, routerA, http.MethodGet, "/api/users", nil)
	require.Equal(t, 2.0, usersA["data"].(map[string]any)["total_count"])
}

// Metrics endpoint reflects store mutations and requests
func TestMetricsEndpoint(t *testing.T) {
	router, _ := SetupTestRouter(t, nil)

	require.Equal(t, http.StatusOK, ExecuteRequest(router, http.MethodPost, "/api/counter/increment", nil).Code)
	require.Equal(t, http.StatusCreated, ExecuteRequest(router, http.MethodPost, "/api/users/auctioneer", nil).Code)

	w := ExecuteRequest(router, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	require.Contains(t, body, `auction_board_store_mutations_total{action="users/addUser"} 1`)
	require.Contains(t, body, "auction_board_users_total 2")
	require.Contains(t, body, `route="/api/counter/increment",status="200"`)
}

func mustFloat(t *testing.T, s string) float64 {
	t.Helper()
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	require.NoError(t, err)
	return v
}

// Health check
func TestHealth(t *testing.T) {
	router, _ := SetupTestRouter(t, nil)
	w := ExecuteRequest(router, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
