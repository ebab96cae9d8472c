package services

import (
	"fmt"
	"log"
	"strings"

	"kograph/internal/models"

	"gopkg.in/gomail.v2"
)

// EmailConfig, pengaturan SMTP untuk notifikasi email admin.
type EmailConfig struct {
	Host       string
	Port       int
	User       string
	Pass       string
	AdminEmail string
}

// EmailService, mengirim email pemberitahuan pesanan ke admin.
type EmailService struct {
	dialer     *gomail.Dialer
	from       string
	adminEmail string
}

// NewEmailService, membuat EmailService baru. Tanpa kredensial SMTP,
// pengiriman email dinonaktifkan dan hanya dicatat ke log.
func NewEmailService(cfg EmailConfig) *EmailService {
	if cfg.User == "" || cfg.Pass == "" {
		log.Println("SMTP belum diatur. Notifikasi email dinonaktifkan.")
		return &EmailService{adminEmail: cfg.AdminEmail}
	}

	return &EmailService{
		dialer:     gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass),
		from:       cfg.User,
		adminEmail: cfg.AdminEmail,
	}
}

// SendAdminOrderAlert, mengirim ringkasan pesanan baru ke email admin.
func (es *EmailService) SendAdminOrderAlert(order *models.Order) error {
	if es.dialer == nil || es.adminEmail == "" {
		log.Printf("Email dinonaktifkan. Pesanan baru: %s dari %s", order.ID, order.UserName)
		return nil
	}

	var items strings.Builder
	for _, item := range order.Items {
		fmt.Fprintf(&items, "<li>%s x%d - Rp %s</li>",
			item.ProductName, item.Quantity, FormatRupiah(item.Price*float64(item.Quantity)))
	}

	subject := fmt.Sprintf("Pesanan Baru %s - KOGRAPH APPS", shortOrderID(order.ID))
	body := fmt.Sprintf(`
		<h2>Pesanan Baru dengan Pembayaran!</h2>
		<p>Order baru dari <b>%s</b> (%s, %s)</p>
		<ul>%s</ul>
		<p><b>Total: Rp %s</b></p>
		<p>Status pembayaran: Menunggu Verifikasi. Bukti transfer sudah diupload.</p>
		<p>Segera verifikasi pembayaran melalui dashboard admin.</p>
	`, order.UserName, order.UserEmail, order.OrderDetails.Phone, items.String(), FormatRupiah(order.TotalAmount))

	m := gomail.NewMessage()
	m.SetHeader("From", es.from)
	m.SetHeader("To", es.adminEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send admin email: %w", err)
	}

	log.Printf("Email pesanan baru terkirim ke admin: %s", order.ID)
	return nil
}

// shortOrderID, potongan 8 karakter pertama id pesanan untuk tampilan.
func shortOrderID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// FormatRupiah, memformat nominal rupiah dengan pemisah ribuan.
func FormatRupiah(amount float64) string {
	digits := fmt.Sprintf("%d", int64(amount))
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	rem := len(digits) % 3
	if rem > 0 {
		b.WriteString(digits[:rem])
	}
	for i := rem; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
