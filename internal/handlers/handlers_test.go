package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kograph/internal/models"
	"kograph/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOrderID = "AbCdEfGhIjKlMnOpQrSt"

// mockDB merekam semua tulisan yang dilakukan handler.
type mockDB struct {
	orders          []*models.Order
	notifications   []*models.Notification
	statsIncrements int

	createOrderErr  error
	statsErr        error
	notificationErr error

	settings *models.SiteSettings
	stats    *models.Stats
	products []models.Product
}

func (m *mockDB) CreateOrder(ctx context.Context, order *models.Order) (string, error) {
	if m.createOrderErr != nil {
		return "", m.createOrderErr
	}
	now := time.Now()
	order.ID = testOrderID
	order.PaymentStatus = models.PaymentStatusPendingVerification
	order.Status = models.OrderStatusPending
	order.Rated = false
	order.CreatedAt = now
	order.UpdatedAt = now
	m.orders = append(m.orders, order)
	return order.ID, nil
}

func (m *mockDB) IncrementProjectsCompleted(ctx context.Context) error {
	if m.statsErr != nil {
		return m.statsErr
	}
	m.statsIncrements++
	return nil
}

func (m *mockDB) CreateNotification(ctx context.Context, n *models.Notification) error {
	if m.notificationErr != nil {
		return m.notificationErr
	}
	n.ID = fmt.Sprintf("notif-%d", len(m.notifications)+1)
	n.CreatedAt = time.Now()
	m.notifications = append(m.notifications, n)
	return nil
}

func (m *mockDB) GetNotificationsByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	out := []models.Notification{}
	for _, n := range m.notifications {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (m *mockDB) GetStats(ctx context.Context) (*models.Stats, error) {
	if m.stats == nil {
		return nil, errors.New("stats not found")
	}
	return m.stats, nil
}

func (m *mockDB) GetSettings(ctx context.Context) (*models.SiteSettings, error) {
	if m.settings == nil {
		return nil, errors.New("settings not found")
	}
	return m.settings, nil
}

func (m *mockDB) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return m.products, nil
}

func (m *mockDB) WatchSettings(ctx context.Context) (<-chan models.SiteSettings, error) {
	ch := make(chan models.SiteSettings)
	close(ch)
	return ch, nil
}

func newTestRouter(db DBInterface, telegram *services.TelegramService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(db, telegram, services.NewEmailService(services.EmailConfig{}))

	r := gin.New()
	r.POST("/api/orders", h.CreateOrder)
	r.POST("/api/telegram", h.SendTelegramMessage)
	r.GET("/api/settings", h.GetSettings)
	r.GET("/api/stats", h.GetStats)
	r.GET("/api/products", h.GetProducts)
	r.GET("/api/notifications", h.GetNotifications)
	return r
}

func disabledTelegram() *services.TelegramService {
	return services.NewTelegramService(services.TelegramConfig{})
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validOrderRequest() models.OrderRequest {
	return models.OrderRequest{
		UserID:    "u1",
		UserName:  "Budi",
		UserEmail: "budi@x.com",
		Items: []models.OrderItem{
			{ProductName: "Bot", Price: 500000, Quantity: 1},
		},
		TotalAmount:  500000,
		OrderDetails: models.OrderDetails{Phone: "081234567890", Notes: ""},
		PaymentProof: "proof.png",
	}
}

func TestCreateOrderEmptyCart(t *testing.T) {
	db := &mockDB{}
	r := newTestRouter(db, disabledTelegram())

	req := validOrderRequest()
	req.Items = []models.OrderItem{}
	w := postJSON(r, "/api/orders", req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Cart is empty"}`, w.Body.String())
	assert.Empty(t, db.orders)
	assert.Empty(t, db.notifications)
	assert.Zero(t, db.statsIncrements)
}

func TestCreateOrderMissingPaymentProof(t *testing.T) {
	db := &mockDB{}
	r := newTestRouter(db, disabledTelegram())

	req := validOrderRequest()
	req.PaymentProof = ""
	w := postJSON(r, "/api/orders", req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Payment proof is required"}`, w.Body.String())
	assert.Empty(t, db.orders)
	assert.Empty(t, db.notifications)
	assert.Zero(t, db.statsIncrements)
}

func TestCreateOrderNullPaymentProof(t *testing.T) {
	db := &mockDB{}
	r := newTestRouter(db, disabledTelegram())

	body := map[string]interface{}{
		"userId":       "u1",
		"userName":     "Budi",
		"userEmail":    "budi@x.com",
		"items":        []map[string]interface{}{{"productName": "Bot", "price": 500000, "quantity": 1}},
		"totalAmount":  500000,
		"orderDetails": map[string]interface{}{"phone": "0812", "notes": ""},
		"paymentProof": nil,
	}
	w := postJSON(r, "/api/orders", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Payment proof is required"}`, w.Body.String())
	assert.Empty(t, db.orders)
}

func TestCreateOrderSuccess(t *testing.T) {
	db := &mockDB{}
	r := newTestRouter(db, disabledTelegram())

	w := postJSON(r, "/api/orders", validOrderRequest())

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		OrderID string `json:"orderId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.OrderID, 20)

	require.Len(t, db.orders, 1)
	order := db.orders[0]
	assert.Equal(t, models.PaymentStatusPendingVerification, order.PaymentStatus)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.False(t, order.Rated)
	assert.Equal(t, float64(500000), order.TotalAmount)
	assert.WithinDuration(t, time.Now(), order.CreatedAt, time.Minute)
	assert.WithinDuration(t, time.Now(), order.UpdatedAt, time.Minute)

	assert.Equal(t, 1, db.statsIncrements)
	require.Len(t, db.notifications, 2)

	customer := db.notifications[0]
	assert.Equal(t, "u1", customer.UserID)
	assert.Equal(t, "order", customer.Type)
	assert.Equal(t, "Pesanan Diterima", customer.Title)
	assert.Contains(t, customer.Message, testOrderID[:8])
	assert.Equal(t, "/profile", customer.Link)
	assert.False(t, customer.Read)

	admin := db.notifications[1]
	assert.Equal(t, models.AdminUserID, admin.UserID)
	assert.Contains(t, admin.Message, "Budi")
	assert.Contains(t, admin.Message, "Rp 500.000")
	assert.Equal(t, "/admin", admin.Link)
}

func TestCreateOrderGuestSkipsCustomerNotification(t *testing.T) {
	for _, userID := range []string{models.GuestUserID, ""} {
		db := &mockDB{}
		r := newTestRouter(db, disabledTelegram())

		req := validOrderRequest()
		req.UserID = userID
		w := postJSON(r, "/api/orders", req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, db.notifications, 1, "userID=%q", userID)
		assert.Equal(t, models.AdminUserID, db.notifications[0].UserID)
	}
}

func TestCreateOrderPersistFailure(t *testing.T) {
	db := &mockDB{createOrderErr: errors.New("connection reset")}
	r := newTestRouter(db, disabledTelegram())

	w := postJSON(r, "/api/orders", validOrderRequest())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to create order"}`, w.Body.String())
	assert.Zero(t, db.statsIncrements)
	assert.Empty(t, db.notifications)
}

func TestCreateOrderNotificationFailureIsNonFatal(t *testing.T) {
	db := &mockDB{notificationErr: errors.New("write denied")}
	r := newTestRouter(db, disabledTelegram())

	w := postJSON(r, "/api/orders", validOrderRequest())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), testOrderID)
	require.Len(t, db.orders, 1)
}

func TestCreateOrderStatsFailureIsNonFatal(t *testing.T) {
	db := &mockDB{statsErr: errors.New("stats down")}
	r := newTestRouter(db, disabledTelegram())

	w := postJSON(r, "/api/orders", validOrderRequest())

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, db.orders, 1)
	require.Len(t, db.notifications, 2)
}

func TestCreateOrderSendsTelegramAlert(t *testing.T) {
	var captured struct {
		ChatID    string `json:"chat_id"`
		Text      string `json:"text"`
		ParseMode string `json:"parse_mode"`
	}
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&captured)
		fmt.Fprint(w, `{"ok":true}`)
	}))
	defer server.Close()

	telegram := services.NewTelegramService(services.TelegramConfig{
		BotToken: "test-token",
		ChatID:   "12345",
		BaseURL:  server.URL,
	})
	db := &mockDB{}
	r := newTestRouter(db, telegram)

	req := validOrderRequest()
	req.OrderDetails.Notes = "Tolong dipercepat"
	w := postJSON(r, "/api/orders", req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/bottest-token/sendMessage", path)
	assert.Equal(t, "12345", captured.ChatID)
	assert.Equal(t, "HTML", captured.ParseMode)
	assert.Contains(t, captured.Text, "PESANAN BARU - KOGRAPH APPS")
	assert.Contains(t, captured.Text, "Budi")
	assert.Contains(t, captured.Text, "budi@x.com")
	assert.Contains(t, captured.Text, "• Bot x1 - Rp 500.000")
	assert.Contains(t, captured.Text, "Total: Rp 500.000")
	assert.Contains(t, captured.Text, "Catatan: Tolong dipercepat")
}

func TestCreateOrderTelegramNotConfigured(t *testing.T) {
	db := &mockDB{}
	r := newTestRouter(db, disabledTelegram())

	w := postJSON(r, "/api/orders", validOrderRequest())

	// Tanpa kredensial relay, pesanan tetap sukses
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), testOrderID)
	require.Len(t, db.orders, 1)
	assert.Equal(t, 1, db.statsIncrements)
}

func TestSendTelegramMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"ok":true}`)
	}))
	defer server.Close()

	telegram := services.NewTelegramService(services.TelegramConfig{
		BotToken: "test-token",
		ChatID:   "12345",
		BaseURL:  server.URL,
	})
	r := newTestRouter(&mockDB{}, telegram)

	w := postJSON(r, "/api/telegram", map[string]string{"message": "halo"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
}

func TestSendTelegramMessageNotConfigured(t *testing.T) {
	r := newTestRouter(&mockDB{}, disabledTelegram())

	w := postJSON(r, "/api/telegram", map[string]string{"message": "halo"})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to send Telegram message")
}

func TestSendTelegramMessageEmpty(t *testing.T) {
	r := newTestRouter(&mockDB{}, disabledTelegram())

	w := postJSON(r, "/api/telegram", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSettingsHidesRelayCredentials(t *testing.T) {
	db := &mockDB{settings: &models.SiteSettings{
		AboutUs:          "Tentang kami",
		FAQ:              []models.FAQItem{{Question: "Q1", Answer: "A1"}},
		TelegramBotToken: "secret-token",
		TelegramChatID:   "secret-chat",
	}}
	r := newTestRouter(db, disabledTelegram())

	req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Q1")
	assert.NotContains(t, w.Body.String(), "secret-token")
	assert.NotContains(t, w.Body.String(), "secret-chat")
}

func TestGetNotificationsRequiresUserID(t *testing.T) {
	r := newTestRouter(&mockDB{}, disabledTelegram())

	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetNotificationsByUser(t *testing.T) {
	db := &mockDB{}
	require.NoError(t, db.CreateNotification(context.Background(), &models.Notification{UserID: "u1", Title: "a"}))
	require.NoError(t, db.CreateNotification(context.Background(), &models.Notification{UserID: models.AdminUserID, Title: "b"}))
	r := newTestRouter(db, disabledTelegram())

	req := httptest.NewRequest(http.MethodGet, "/api/notifications?userId=u1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var notifications []models.Notification
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &notifications))
	require.Len(t, notifications, 1)
	assert.Equal(t, "a", notifications[0].Title)
}

func TestBuildOrderAlert(t *testing.T) {
	order := &models.Order{
		ID:        testOrderID,
		UserName:  "Budi",
		UserEmail: "budi@x.com",
		Items: []models.OrderItem{
			{ProductName: "Premium Bot Discord", Price: 500000, Quantity: 2},
			{ProductName: "Landing Page Premium", Price: 1200000, Quantity: 1},
		},
		TotalAmount:  2200000,
		OrderDetails: models.OrderDetails{Phone: "0812", Notes: ""},
	}

	msg := buildOrderAlert(order)
	assert.Contains(t, msg, "Order ID: "+testOrderID[:8])
	assert.Contains(t, msg, "• Premium Bot Discord x2 - Rp 1.000.000")
	assert.Contains(t, msg, "• Landing Page Premium x1 - Rp 1.200.000")
	assert.Contains(t, msg, "Total: Rp 2.200.000")
	assert.NotContains(t, msg, "Catatan:")

	order.OrderDetails.Notes = "warna biru"
	assert.Contains(t, buildOrderAlert(order), "Catatan: warna biru")
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "AbCdEfGh", shortID(testOrderID))
	assert.Equal(t, "abc", shortID("abc"))
}

func TestFormatRupiah(t *testing.T) {
	cases := map[float64]string{
		0:       "0",
		500:     "500",
		500000:  "500.000",
		1200000: "1.200.000",
		2200000: "2.200.000",
	}
	for amount, want := range cases {
		assert.Equal(t, want, services.FormatRupiah(amount), "amount=%v", amount)
	}
}
