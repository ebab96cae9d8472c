package models

import "time"

// FAQItem, satu pasang tanya-jawab pada halaman FAQ.
type FAQItem struct {
	Question string `json:"question" bson:"question"`
	Answer   string `json:"answer" bson:"answer"`
}

// SiteSettings, dokumen tunggal berisi konten situs yang bisa diubah admin.
// Kredensial Telegram tidak pernah ikut keluar lewat JSON publik.
type SiteSettings struct {
	ID               string    `json:"-" bson:"_id"`
	AboutUs          string    `json:"aboutUs" bson:"aboutUs"`
	ContactEmail     string    `json:"contactEmail" bson:"contactEmail"`
	ContactPhone     string    `json:"contactPhone" bson:"contactPhone"`
	ContactWhatsapp  string    `json:"contactWhatsapp" bson:"contactWhatsapp"`
	FAQ              []FAQItem `json:"faq" bson:"faq"`
	PrivacyPolicy    string    `json:"privacyPolicy" bson:"privacyPolicy"`
	TelegramBotToken string    `json:"-" bson:"telegramBotToken"`
	TelegramChatID   string    `json:"-" bson:"telegramChatId"`
	UpdatedAt        time.Time `json:"updatedAt" bson:"updatedAt"`
}
