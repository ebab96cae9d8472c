package main

import (
	"context"
	"html/template"
	"log"

	"kograph/internal/config"
	"kograph/internal/database"
	"kograph/internal/handlers"
	"kograph/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	cfg := config.Load()
	ctx := context.Background()

	db, err := database.NewDatabase(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("Database tidak dapat dibuka: %v", err)
	}
	defer db.Close(ctx)

	telegram := services.NewTelegramService(services.TelegramConfig{
		BotToken: cfg.TelegramBotToken,
		ChatID:   cfg.TelegramChatID,
	})
	email := services.NewEmailService(services.EmailConfig{
		Host:       cfg.SMTPHost,
		Port:       cfg.SMTPPort,
		User:       cfg.SMTPUser,
		Pass:       cfg.SMTPPass,
		AdminEmail: cfg.AdminEmail,
	})

	h := handlers.NewHandler(db, telegram, email)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	// Set template terpisah per halaman
	templates := map[string]*template.Template{}
	templateFiles := map[string][]string{
		"home.html": {"templates/home.html", "templates/base.html"},
		"faq.html":  {"templates/faq.html", "templates/base.html"},
	}
	for name, files := range templateFiles {
		tmpl, err := template.New(name).Funcs(handlers.TemplateFuncs).ParseFiles(files...)
		if err != nil {
			log.Fatalf("Template gagal dimuat %s: %v", name, err)
		}
		templates[name] = tmpl
	}
	r.HTMLRender = &handlers.HTMLRenderer{Templates: templates}

	r.Static("/static", "./static")

	r.GET("/", h.HomePage)
	r.GET("/faq", h.FAQPage)

	api := r.Group("/api")
	{
		api.POST("/orders", h.CreateOrder)
		api.POST("/telegram", h.SendTelegramMessage)
		api.GET("/settings", h.GetSettings)
		api.GET("/settings/stream", h.StreamSettings)
		api.GET("/stats", h.GetStats)
		api.GET("/products", h.GetProducts)
		api.GET("/notifications", h.GetNotifications)
	}

	// Render.com / platform lain memberi PORT lewat environment
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("HTTP Server berjalan di port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("HTTP Server gagal dijalankan: %v", err)
	}
}
