package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

const defaultTelegramBaseURL = "https://api.telegram.org"

// TelegramConfig, kredensial dan endpoint untuk relay pesan Telegram.
// BaseURL hanya diubah oleh test.
type TelegramConfig struct {
	BotToken string
	ChatID   string
	BaseURL  string
}

// TelegramService, mengirim pesan teks ke bot Telegram admin.
type TelegramService struct {
	cfg    TelegramConfig
	client *http.Client
}

// NewTelegramService, membuat TelegramService baru. Jika kredensial belum
// diatur, service tetap dibuat tapi pengiriman dinonaktifkan.
func NewTelegramService(cfg TelegramConfig) *TelegramService {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultTelegramBaseURL
	}
	if cfg.BotToken == "" || cfg.ChatID == "" {
		log.Println("Kredensial Telegram belum diatur. Relay pesan dinonaktifkan.")
	}
	return &TelegramService{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled, melaporkan apakah kredensial relay lengkap.
func (ts *TelegramService) Enabled() bool {
	return ts.cfg.BotToken != "" && ts.cfg.ChatID != ""
}

// SendMessage, mengirim satu pesan HTML ke chat tujuan. Tanpa kredensial
// fungsi ini langsung mengembalikan error tanpa memanggil jaringan.
// Tidak pernah ada retry.
func (ts *TelegramService) SendMessage(ctx context.Context, message string) error {
	if !ts.Enabled() {
		return fmt.Errorf("telegram not configured")
	}

	payload, err := json.Marshal(map[string]string{
		"chat_id":    ts.cfg.ChatID,
		"text":       message,
		"parse_mode": "HTML",
	})
	if err != nil {
		return fmt.Errorf("marshal telegram payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", ts.cfg.BaseURL, ts.cfg.BotToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := ts.client.Do(req)
	if err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram API error: %s", resp.Status)
	}
	return nil
}
