package domain

import "time"

// Order statuses, in intake order. Only review moves an order past Received.
const (
	// OrderedStatus заказ создан, ждём скрин личного кабинета.
	OrderedStatus string = "ordered"
	// CheckWaitStatus скрин получен, ждём фото чека.
	CheckWaitStatus string = "check_wait"
	// NumberWaitStatus чек получен, ждём номер чека текстом.
	NumberWaitStatus string = "number_wait"
	// ReceivedStatus всё собрано, заказ на ручной проверке.
	ReceivedStatus string = "received"
	// ApprovedStatus кэшбэк выплачен.
	ApprovedStatus string = "approved"
	// RejectedStatus заказ отклонён, без выплаты.
	RejectedStatus string = "rejected"
)

// Withdrawal request statuses.
const (
	WithdrawalPending  string = "pending"
	WithdrawalPaid     string = "paid"
	WithdrawalRejected string = "rejected"
)

type User struct {
	ID             int       `db:"id"`
	TelegramID     int64     `db:"telegram_id"`
	Username       string    `db:"username"`
	Balance        float64   `db:"balance"`
	PaymentDetails string    `db:"payment_details"`
	CreatedAt      time.Time `db:"created_at"`
}

type Product struct {
	ID              int     `db:"id"`
	Name            string  `db:"name"`
	Article         string  `db:"article"`
	WBPrice         float64 `db:"wb_price"`
	CashbackPercent int     `db:"cashback_percent"`
	Price           float64 `db:"price"`
	Description     string  `db:"description"`
	Image           string  `db:"image"`
	Active          bool    `db:"active"`
	IsArchived      bool    `db:"is_archived"`

	Images []ProductImage `db:"-"`
}

// Cashback is the payout amount for one order of this product,
// truncated to whole currency units.
func (p Product) Cashback() int {
	return int(p.WBPrice * float64(p.CashbackPercent) / 100)
}

type ProductImage struct {
	ID        int    `db:"id"`
	ProductID int    `db:"product_id"`
	Image     string `db:"image"`
}

type Order struct {
	ID                int       `db:"id"`
	UserID            int       `db:"user_id"`
	ProductID         int       `db:"product_id"`
	Status            string    `db:"status"`
	Screenshot        string    `db:"screenshot"`
	ReceiptScreenshot string    `db:"receipt_screenshot"`
	CheckNumber       string    `db:"check_number"`
	CreatedAt         time.Time `db:"created_at"`
	IsArchived        bool      `db:"is_archived"`
}

type CartItem struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	ProductID int       `db:"product_id"`
	CreatedAt time.Time `db:"created_at"`
}

type WithdrawalRequest struct {
	ID             int       `db:"id"`
	UserID         int       `db:"user_id"`
	Amount         float64   `db:"amount"`
	PaymentDetails string    `db:"payment_details"`
	Status         string    `db:"status"`
	CreatedAt      time.Time `db:"created_at"`
}
