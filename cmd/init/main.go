// Program sekali-jalan untuk mengisi koleksi default: stats/main,
// settings/main dan katalog produk contoh. Dijalankan sebelum deploy pertama.
package main

import (
	"context"
	"log"
	"time"

	"kograph/internal/config"
	"kograph/internal/database"
	"kograph/internal/models"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.NewDatabase(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("Database tidak dapat dibuka: %v", err)
	}
	defer db.Close(ctx)

	log.Println("Inisialisasi database...")

	if err := db.SeedStats(ctx, &models.Stats{
		ClientsSatisfied:  150,
		ProjectsCompleted: 200,
		AverageRating:     4.9,
		ResponseTime:      5,
		ActiveUsers:       0,
	}); err != nil {
		log.Fatalf("Gagal mengisi stats: %v", err)
	}
	log.Println("✓ Stats terisi")

	if err := db.SeedSettings(ctx, defaultSettings(cfg)); err != nil {
		log.Fatalf("Gagal mengisi settings: %v", err)
	}
	log.Println("✓ Pengaturan situs terisi")

	if err := db.SeedProducts(ctx, defaultProducts()); err != nil {
		log.Fatalf("Gagal mengisi produk: %v", err)
	}
	log.Println("✓ Katalog produk terisi")

	log.Println("🎉 Inisialisasi selesai! Admin dapat mengubah semua konten melalui dashboard.")
}

func defaultSettings(cfg config.Config) *models.SiteSettings {
	return &models.SiteSettings{
		AboutUs: "KOGRAPH - APPS adalah platform terpercaya untuk menyediakan aplikasi dan layanan digital " +
			"berkualitas premium. Kami berdedikasi untuk menghadirkan solusi teknologi terbaik yang membantu " +
			"bisnis Anda berkembang. Dengan tim profesional berpengalaman lebih dari 5 tahun, kami telah " +
			"melayani ratusan klien dari berbagai industri dengan tingkat kepuasan mencapai 98%. Setiap " +
			"project dikerjakan dengan detail, passion, dan komitmen untuk memberikan hasil terbaik.",
		ContactEmail:    "contact@kograph.com",
		ContactPhone:    "+62 812-3456-7890",
		ContactWhatsapp: "6281234567890",
		FAQ: []models.FAQItem{
			{
				Question: "Bagaimana cara memesan aplikasi atau layanan?",
				Answer: "Sangat mudah! Pilih produk atau layanan yang Anda inginkan, klik 'Tambah ke Keranjang', " +
					"kemudian lanjutkan ke halaman checkout. Isi detail pesanan Anda dengan lengkap, dan tim kami " +
					"akan segera menghubungi Anda untuk konfirmasi dan pembayaran.",
			},
			{
				Question: "Metode pembayaran apa saja yang tersedia?",
				Answer: "Kami menerima berbagai metode pembayaran untuk kemudahan Anda: Transfer Bank (BCA, " +
					"Mandiri, BRI, BNI), E-Wallet (GoPay, OVO, DANA, ShopeePay), dan QRIS. Semua transaksi aman " +
					"dan terpercaya.",
			},
			{
				Question: "Berapa lama waktu pengerjaan project?",
				Answer: "Waktu pengerjaan bervariasi tergantung kompleksitas project. Website sederhana biasanya " +
					"3-7 hari kerja, aplikasi mobile 14-30 hari kerja, dan bot atau automation 1-5 hari kerja. " +
					"Kami selalu berusaha menyelesaikan project tepat waktu tanpa mengurangi kualitas.",
			},
			{
				Question: "Apakah ada garansi atau after-sales service?",
				Answer: "Ya! Setiap project dilengkapi dengan garansi 30 hari untuk bug fixing dan penyesuaian " +
					"minor. Kami juga menyediakan layanan maintenance dan support berkelanjutan dengan biaya " +
					"terjangkau. Kepuasan Anda adalah prioritas kami.",
			},
			{
				Question: "Apakah saya bisa request fitur custom?",
				Answer: "Tentu saja! Kami sangat terbuka untuk request fitur custom sesuai kebutuhan bisnis Anda. " +
					"Tim kami akan mendiskusikan requirement Anda secara detail dan memberikan solusi terbaik. " +
					"Hubungi kami untuk konsultasi gratis.",
			},
			{
				Question: "Bagaimana cara tracking progress pengerjaan?",
				Answer: "Kami memberikan update berkala melalui WhatsApp dan email. Anda juga dapat login ke " +
					"dashboard untuk melihat status order dan history pesanan Anda. Transparansi adalah kunci " +
					"kepercayaan kami kepada klien.",
			},
		},
		PrivacyPolicy: "Kami di KOGRAPH - APPS sangat menghargai privasi dan keamanan data Anda. Semua informasi " +
			"pribadi yang Anda berikan (nama, email, nomor telepon) hanya akan digunakan untuk keperluan " +
			"transaksi dan komunikasi terkait layanan kami. Kami tidak akan membagikan, menjual, atau " +
			"menyebarkan data Anda kepada pihak ketiga tanpa izin Anda. Data transaksi disimpan dengan " +
			"enkripsi dan sistem keamanan tingkat tinggi. Kami berkomitmen untuk menjaga kepercayaan Anda " +
			"dengan melindungi setiap informasi yang Anda percayakan kepada kami.",
		TelegramBotToken: cfg.TelegramBotToken,
		TelegramChatID:   cfg.TelegramChatID,
	}
}

func defaultProducts() []models.Product {
	return []models.Product{
		{
			Name: "Premium Bot Discord",
			Description: "Bot Discord custom dengan fitur lengkap untuk server Anda. Dilengkapi dengan moderasi " +
				"otomatis, sistem leveling, music player berkualitas tinggi, custom commands, auto-response, " +
				"welcome message, dan masih banyak lagi. Cocok untuk gaming community, study group, atau bisnis server.",
			Price:    500000,
			Category: "Bot",
			ImageURL: "/pixel-art-discord-bot.jpg",
			Stock:    10,
			Features: []string{
				"Custom Commands & Slash Commands",
				"Auto Moderation System",
				"High Quality Music Player",
				"Leveling & Economy System",
				"Auto Response & Welcome",
				"Dashboard Web Panel",
				"24/7 Uptime Guaranteed",
				"Free Updates & Support",
			},
		},
		{
			Name: "Website Toko Online Premium",
			Description: "Website toko online profesional dengan admin dashboard yang powerful. Dilengkapi dengan " +
				"sistem pembayaran otomatis, notifikasi real-time, manajemen produk unlimited, analitik penjualan, " +
				"responsive design untuk semua device, dan optimasi SEO untuk meningkatkan visibility di Google.",
			Price:    2000000,
			Category: "Website",
			ImageURL: "/pixel-art-online-store.jpg",
			Stock:    5,
			Features: []string{
				"Responsive & Mobile Friendly",
				"Admin Dashboard Lengkap",
				"Payment Gateway Integration",
				"Real-time Notifications",
				"SEO Optimized",
				"Product Management",
				"Order Tracking System",
				"Analytics & Reports",
			},
		},
		{
			Name: "Mobile App Android Premium",
			Description: "Aplikasi Android native dengan performa maksimal dan UI modern mengikuti Material Design " +
				"guidelines. Mendukung push notifications, offline mode, cloud sync, dan integrasi dengan berbagai " +
				"API. Siap publish ke Google Play Store dengan dokumentasi lengkap.",
			Price:    3000000,
			Category: "Mobile App",
			ImageURL: "/pixel-art-android-app.jpg",
			Stock:    3,
			Features: []string{
				"Native Android Performance",
				"Material Design UI/UX",
				"Push Notifications",
				"Offline Mode Support",
				"Cloud Sync Integration",
				"Multi-language Support",
				"Google Play Ready",
				"Documentation Included",
			},
		},
		{
			Name: "Telegram Bot Automation",
			Description: "Bot Telegram pintar untuk automasi bisnis Anda. Bisa digunakan untuk customer service " +
				"otomatis, broadcast message, scheduling posts, form collection, payment notification, dan " +
				"integrasi dengan sistem Anda. Mudah digunakan dan efisien untuk meningkatkan produktivitas.",
			Price:    750000,
			Category: "Bot",
			ImageURL: "/pixel-art-discord-bot.jpg",
			Stock:    15,
			Features: []string{
				"Auto Response System",
				"Broadcast Messages",
				"Inline Keyboard Menu",
				"Payment Notifications",
				"Data Collection Forms",
				"API Integration Ready",
				"Multi-admin Support",
				"Cloud Hosted",
			},
		},
		{
			Name: "Landing Page Premium",
			Description: "Landing page yang menarik dan conversion-focused untuk produk atau layanan Anda. Desain " +
				"modern dengan animasi smooth, loading cepat, SEO optimized, dan mobile responsive. Termasuk form " +
				"contact, integration dengan analytics, dan A/B testing ready.",
			Price:    1200000,
			Category: "Website",
			ImageURL: "/pixel-art-online-store.jpg",
			Stock:    8,
			Features: []string{
				"Modern & Attractive Design",
				"Conversion Optimized",
				"Fast Loading Speed",
				"SEO & Analytics Ready",
				"Contact Form Integration",
				"A/B Testing Support",
				"Responsive Design",
				"Easy Content Update",
			},
		},
	}
}
