package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"kograph/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Nama dokumen tunggal pada koleksi stats dan settings.
const singletonDocID = "main"

// Database, mengelola akses ke koleksi MongoDB.
type Database struct {
	client        *mongo.Client
	orders        *mongo.Collection
	stats         *mongo.Collection
	notifications *mongo.Collection
	settings      *mongo.Collection
	products      *mongo.Collection
}

// NewDatabase, membuka koneksi MongoDB dan menyiapkan semua koleksi.
func NewDatabase(ctx context.Context, uri, dbName string) (*Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(dbName)
	return &Database{
		client:        client,
		orders:        db.Collection("orders"),
		stats:         db.Collection("stats"),
		notifications: db.Collection("notifications"),
		settings:      db.Collection("settings"),
		products:      db.Collection("products"),
	}, nil
}

// Close, menutup koneksi ke MongoDB.
func (db *Database) Close(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}

const docIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// newDocumentID, menghasilkan id dokumen 20 karakter alfanumerik.
func newDocumentID() string {
	a := uuid.New()
	b := uuid.New()
	raw := append(a[:], b[:]...)

	id := make([]byte, 20)
	for i := range id {
		id[i] = docIDAlphabet[int(raw[i])%len(docIDAlphabet)]
	}
	return string(id)
}

// CreateOrder, menyimpan pesanan baru dan mengembalikan id yang dibuat.
// Status awal dan timestamp diisi di sini, bukan oleh pemanggil.
func (db *Database) CreateOrder(ctx context.Context, order *models.Order) (string, error) {
	now := time.Now()
	order.ID = newDocumentID()
	order.PaymentStatus = models.PaymentStatusPendingVerification
	order.Status = models.OrderStatusPending
	order.Rated = false
	order.CreatedAt = now
	order.UpdatedAt = now

	if _, err := db.orders.InsertOne(ctx, order); err != nil {
		return "", fmt.Errorf("insert order: %w", err)
	}
	return order.ID, nil
}

// IncrementProjectsCompleted, menaikkan counter pesanan selesai satu langkah
// secara atomik dan menyegarkan updatedAt.
func (db *Database) IncrementProjectsCompleted(ctx context.Context) error {
	_, err := db.stats.UpdateOne(ctx,
		bson.M{"_id": singletonDocID},
		bson.M{
			"$inc": bson.M{"projectsCompleted": 1},
			"$set": bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return fmt.Errorf("update stats: %w", err)
	}
	return nil
}

// CreateNotification, menambahkan satu record notifikasi untuk penerima.
func (db *Database) CreateNotification(ctx context.Context, n *models.Notification) error {
	n.ID = newDocumentID()
	n.Read = false
	n.CreatedAt = time.Now()

	if _, err := db.notifications.InsertOne(ctx, n); err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// GetNotificationsByUser, mengembalikan notifikasi milik satu user,
// terbaru lebih dulu.
func (db *Database) GetNotificationsByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	cur, err := db.notifications.Find(ctx,
		bson.M{"userId": userID},
		options.Find().SetSort(bson.M{"createdAt": -1}),
	)
	if err != nil {
		return nil, fmt.Errorf("find notifications: %w", err)
	}

	notifications := []models.Notification{}
	if err := cur.All(ctx, &notifications); err != nil {
		return nil, fmt.Errorf("decode notifications: %w", err)
	}
	return notifications, nil
}

// GetStats, membaca dokumen counter agregat.
func (db *Database) GetStats(ctx context.Context) (*models.Stats, error) {
	var stats models.Stats
	if err := db.stats.FindOne(ctx, bson.M{"_id": singletonDocID}).Decode(&stats); err != nil {
		return nil, fmt.Errorf("find stats: %w", err)
	}
	return &stats, nil
}

// GetSettings, membaca dokumen pengaturan situs.
func (db *Database) GetSettings(ctx context.Context) (*models.SiteSettings, error) {
	var settings models.SiteSettings
	if err := db.settings.FindOne(ctx, bson.M{"_id": singletonDocID}).Decode(&settings); err != nil {
		return nil, fmt.Errorf("find settings: %w", err)
	}
	return &settings, nil
}

// GetAllProducts, mengembalikan seluruh katalog produk.
func (db *Database) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	cur, err := db.products.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"createdAt": 1}))
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}

	products := []models.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

// WatchSettings, membuka langganan perubahan dokumen settings/main lewat
// change stream. Channel ditutup saat ctx selesai atau stream berakhir.
func (db *Database) WatchSettings(ctx context.Context) (<-chan models.SiteSettings, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "documentKey._id", Value: singletonDocID}}}},
	}
	stream, err := db.settings.Watch(ctx, pipeline,
		options.ChangeStream().SetFullDocument(options.UpdateLookup))
	if err != nil {
		return nil, fmt.Errorf("watch settings: %w", err)
	}

	updates := make(chan models.SiteSettings)
	go func() {
		defer close(updates)
		defer stream.Close(context.Background())

		for stream.Next(ctx) {
			var event struct {
				FullDocument models.SiteSettings `bson:"fullDocument"`
			}
			if err := stream.Decode(&event); err != nil {
				log.Printf("WatchSettings - Decode error: %v", err)
				continue
			}
			select {
			case updates <- event.FullDocument:
			case <-ctx.Done():
				return
			}
		}
	}()
	return updates, nil
}

// SeedStats, menulis dokumen stats/main (dipakai cmd/init).
func (db *Database) SeedStats(ctx context.Context, stats *models.Stats) error {
	stats.ID = singletonDocID
	stats.UpdatedAt = time.Now()
	_, err := db.stats.ReplaceOne(ctx,
		bson.M{"_id": singletonDocID}, stats,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("seed stats: %w", err)
	}
	return nil
}

// SeedSettings, menulis dokumen settings/main (dipakai cmd/init).
func (db *Database) SeedSettings(ctx context.Context, settings *models.SiteSettings) error {
	settings.ID = singletonDocID
	settings.UpdatedAt = time.Now()
	_, err := db.settings.ReplaceOne(ctx,
		bson.M{"_id": singletonDocID}, settings,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}
	return nil
}

// SeedProducts, menambahkan katalog produk contoh (dipakai cmd/init).
func (db *Database) SeedProducts(ctx context.Context, products []models.Product) error {
	now := time.Now()
	for i := range products {
		products[i].ID = newDocumentID()
		products[i].CreatedAt = now
		products[i].UpdatedAt = now
		if _, err := db.products.InsertOne(ctx, products[i]); err != nil {
			return fmt.Errorf("seed product %q: %w", products[i].Name, err)
		}
	}
	return nil
}
