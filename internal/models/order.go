package models

import "time"

// Status pembayaran pada sebuah pesanan.
const (
	PaymentStatusPendingVerification = "pending_verification"
	PaymentStatusVerified            = "verified"
	PaymentStatusRejected            = "rejected"
)

// OrderStatusPending, status awal pesanan sebelum diproses admin.
const OrderStatusPending = "pending"

// GuestUserID, sentinel untuk checkout tanpa login.
const GuestUserID = "guest"

// OrderItem, satu baris produk di dalam pesanan.
type OrderItem struct {
	ProductName string  `json:"productName" bson:"productName"`
	Price       float64 `json:"price" bson:"price"`
	Quantity    int     `json:"quantity" bson:"quantity"`
}

// OrderDetails, detail pengiriman/kontak yang diisi pembeli saat checkout.
type OrderDetails struct {
	Phone   string `json:"phone" bson:"phone"`
	Address string `json:"address,omitempty" bson:"address,omitempty"`
	Notes   string `json:"notes" bson:"notes"`
}

// Order, pesanan pelanggan beserta bukti pembayarannya.
type Order struct {
	ID            string       `json:"id" bson:"_id"`
	UserID        string       `json:"userId" bson:"userId"`
	UserName      string       `json:"userName" bson:"userName"`
	UserEmail     string       `json:"userEmail" bson:"userEmail"`
	Items         []OrderItem  `json:"items" bson:"items"`
	TotalAmount   float64      `json:"totalAmount" bson:"totalAmount"`
	OrderDetails  OrderDetails `json:"orderDetails" bson:"orderDetails"`
	PaymentProof  string       `json:"paymentProof" bson:"paymentProof"`
	PaymentStatus string       `json:"paymentStatus" bson:"paymentStatus"`
	Status        string       `json:"status" bson:"status"`
	Rated         bool         `json:"rated" bson:"rated"`
	CreatedAt     time.Time    `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt" bson:"updatedAt"`
}

// OrderRequest, body JSON dari POST /api/orders.
type OrderRequest struct {
	UserID       string       `json:"userId"`
	UserName     string       `json:"userName"`
	UserEmail    string       `json:"userEmail"`
	Items        []OrderItem  `json:"items"`
	TotalAmount  float64      `json:"totalAmount"`
	OrderDetails OrderDetails `json:"orderDetails"`
	PaymentProof string       `json:"paymentProof"`
}

// SideEffectResult, hasil satu langkah best-effort setelah pesanan tersimpan.
// Kegagalan di sini dicatat sebagai diagnostik, tidak mengubah respons.
type SideEffectResult struct {
	Step  string `json:"step"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}
