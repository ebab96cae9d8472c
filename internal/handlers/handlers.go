package handlers

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"strings"

	"kograph/internal/models"
	"kograph/internal/services"

	"github.com/gin-gonic/gin"
)

// DBInterface, operasi penyimpanan dokumen yang dibutuhkan handler.
type DBInterface interface {
	CreateOrder(ctx context.Context, order *models.Order) (string, error)
	IncrementProjectsCompleted(ctx context.Context) error
	CreateNotification(ctx context.Context, n *models.Notification) error
	GetNotificationsByUser(ctx context.Context, userID string) ([]models.Notification, error)
	GetStats(ctx context.Context) (*models.Stats, error)
	GetSettings(ctx context.Context) (*models.SiteSettings, error)
	GetAllProducts(ctx context.Context) ([]models.Product, error)
	WatchSettings(ctx context.Context) (<-chan models.SiteSettings, error)
}

// Handler, menangani seluruh HTTP request.
type Handler struct {
	db       DBInterface
	telegram *services.TelegramService
	email    *services.EmailService
}

// NewHandler, membuat Handler baru.
func NewHandler(db DBInterface, telegram *services.TelegramService, email *services.EmailService) *Handler {
	return &Handler{
		db:       db,
		telegram: telegram,
		email:    email,
	}
}

// TemplateFuncs, fungsi bantu untuk template HTML.
var TemplateFuncs = template.FuncMap{
	"rupiah": services.FormatRupiah,
}

// CreateOrder, menangani POST /api/orders.
//
// Setelah pesanan tersimpan, setiap langkah susulan (stats, notifikasi,
// Telegram, email) berjalan best-effort: kegagalan dikumpulkan sebagai
// diagnostik dan dicatat, tidak pernah mengubah respons ke pembeli.
func (h *Handler) CreateOrder(c *gin.Context) {
	var req models.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("CreateOrder - Body bind error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if len(req.Items) == 0 {
		log.Printf("CreateOrder - Empty cart from user: %s", req.UserID)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}

	if req.PaymentProof == "" {
		log.Printf("CreateOrder - Missing payment proof from user: %s", req.UserID)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payment proof is required"})
		return
	}

	ctx := c.Request.Context()
	order := &models.Order{
		UserID:       req.UserID,
		UserName:     req.UserName,
		UserEmail:    req.UserEmail,
		Items:        req.Items,
		TotalAmount:  req.TotalAmount,
		OrderDetails: req.OrderDetails,
		PaymentProof: req.PaymentProof,
	}

	orderID, err := h.db.CreateOrder(ctx, order)
	if err != nil {
		log.Printf("CreateOrder - Order save error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}
	log.Printf("CreateOrder - Order created: ID=%s, Customer=%s, Total=%.0f", orderID, req.UserName, req.TotalAmount)

	var effects []models.SideEffectResult
	record := func(step string, err error) {
		if err != nil {
			log.Printf("CreateOrder - %s error: %v", step, err)
			effects = append(effects, models.SideEffectResult{Step: step, Error: err.Error()})
			return
		}
		effects = append(effects, models.SideEffectResult{Step: step, OK: true})
	}

	record("stats", h.db.IncrementProjectsCompleted(ctx))

	if req.UserID != "" && req.UserID != models.GuestUserID {
		record("customer notification", h.db.CreateNotification(ctx, &models.Notification{
			UserID:  req.UserID,
			Type:    "order",
			Title:   "Pesanan Diterima",
			Message: fmt.Sprintf("Pesanan Anda dengan ID %s sedang diproses. Pembayaran sedang diverifikasi.", shortID(orderID)),
			Link:    "/profile",
		}))
	}

	record("admin notification", h.db.CreateNotification(ctx, &models.Notification{
		UserID:  models.AdminUserID,
		Type:    "order",
		Title:   "Pesanan Baru dengan Pembayaran!",
		Message: fmt.Sprintf("Order baru dari %s - Total: Rp %s - Verifikasi pembayaran diperlukan!", req.UserName, services.FormatRupiah(req.TotalAmount)),
		Link:    "/admin",
	}))

	record("telegram", h.telegram.SendMessage(ctx, buildOrderAlert(order)))
	record("email", h.email.SendAdminOrderAlert(order))

	failed := 0
	for _, effect := range effects {
		if !effect.OK {
			failed++
		}
	}
	if failed > 0 {
		log.Printf("CreateOrder - Order %s tersimpan, %d dari %d langkah susulan gagal", orderID, failed, len(effects))
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "orderId": orderID})
}

// SendTelegramMessage, menangani POST /api/telegram.
func (h *Handler) SendTelegramMessage(c *gin.Context) {
	var req struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	if err := h.telegram.SendMessage(c.Request.Context(), req.Message); err != nil {
		log.Printf("SendTelegramMessage - Relay error: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send Telegram message"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetSettings, menangani GET /api/settings.
func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := h.db.GetSettings(c.Request.Context())
	if err != nil {
		log.Printf("GetSettings - Error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// StreamSettings, menangani GET /api/settings/stream sebagai SSE.
// Snapshot awal dikirim lebih dulu supaya klien tidak menunggu perubahan
// pertama, seperti perilaku langganan dokumen di frontend lama.
func (h *Handler) StreamSettings(c *gin.Context) {
	ctx := c.Request.Context()

	updates, err := h.db.WatchSettings(ctx)
	if err != nil {
		log.Printf("StreamSettings - Watch error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe to settings"})
		return
	}

	if settings, err := h.db.GetSettings(ctx); err == nil {
		c.SSEvent("settings", settings)
		c.Writer.Flush()
	}

	c.Stream(func(w io.Writer) bool {
		select {
		case settings, ok := <-updates:
			if !ok {
				return false
			}
			c.SSEvent("settings", settings)
			return true
		case <-ctx.Done():
			return false
		}
	})
}

// GetStats, menangani GET /api/stats.
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.db.GetStats(c.Request.Context())
	if err != nil {
		log.Printf("GetStats - Error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetProducts, menangani GET /api/products.
func (h *Handler) GetProducts(c *gin.Context) {
	products, err := h.db.GetAllProducts(c.Request.Context())
	if err != nil {
		log.Printf("GetProducts - Error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetNotifications, menangani GET /api/notifications?userId=...
func (h *Handler) GetNotifications(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	notifications, err := h.db.GetNotificationsByUser(c.Request.Context(), userID)
	if err != nil {
		log.Printf("GetNotifications - Error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load notifications"})
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// HomePage, menampilkan halaman depan dengan stats dan katalog.
func (h *Handler) HomePage(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.db.GetStats(ctx)
	if err != nil {
		log.Printf("HomePage - Stats error: %v", err)
		stats = &models.Stats{}
	}

	products, err := h.db.GetAllProducts(ctx)
	if err != nil {
		log.Printf("HomePage - Products error: %v", err)
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"title":    "KOGRAPH APPS - Aplikasi & Layanan Digital",
		"stats":    stats,
		"products": products,
	})
}

// FAQPage, menampilkan halaman FAQ dari dokumen settings.
func (h *Handler) FAQPage(c *gin.Context) {
	settings, err := h.db.GetSettings(c.Request.Context())
	if err != nil {
		log.Printf("FAQPage - Settings error: %v", err)
		settings = &models.SiteSettings{}
	}

	c.HTML(http.StatusOK, "faq.html", gin.H{
		"title":    "FAQ - KOGRAPH APPS",
		"settings": settings,
	})
}

// shortID, potongan 8 karakter pertama id pesanan untuk tampilan.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// buildOrderAlert, menyusun ringkasan pesanan untuk relay Telegram.
func buildOrderAlert(order *models.Order) string {
	var items strings.Builder
	for _, item := range order.Items {
		fmt.Fprintf(&items, "• %s x%d - Rp %s\n",
			item.ProductName, item.Quantity, services.FormatRupiah(item.Price*float64(item.Quantity)))
	}

	var b strings.Builder
	b.WriteString("🔔 <b>PESANAN BARU - KOGRAPH APPS</b> 🔔\n\n")
	fmt.Fprintf(&b, "📦 Order ID: %s\n", shortID(order.ID))
	fmt.Fprintf(&b, "👤 Customer: %s\n", order.UserName)
	fmt.Fprintf(&b, "📧 Email: %s\n", order.UserEmail)
	fmt.Fprintf(&b, "📱 Phone: %s\n\n", order.OrderDetails.Phone)
	b.WriteString("<b>Items:</b>\n")
	b.WriteString(items.String())
	fmt.Fprintf(&b, "\n💰 <b>Total: Rp %s</b>\n", services.FormatRupiah(order.TotalAmount))
	b.WriteString("💳 <b>Status Pembayaran: Menunggu Verifikasi</b>\n")
	b.WriteString("🖼️ <b>Bukti Transfer: Sudah Diupload</b>\n")
	if order.OrderDetails.Notes != "" {
		fmt.Fprintf(&b, "\n📝 Catatan: %s\n", order.OrderDetails.Notes)
	}
	b.WriteString("\n⚡ Segera verifikasi pembayaran dan kirim akun ke customer!")
	return b.String()
}
