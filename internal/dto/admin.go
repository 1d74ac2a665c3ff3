package dto

type LoginRequest struct {
	Login    string `json:"login" example:"admin"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type OrderIDsRequest struct {
	IDs []int `json:"ids"`
}

type ArchiveRequest struct {
	IDs      []int `json:"ids"`
	Archived bool  `json:"archived"`
}

type ApproveResponse struct {
	Paid int `json:"paid"`
}

type OrderAdminDTO struct {
	ID                int    `json:"id"`
	UserID            int    `json:"user_id"`
	ProductID         int    `json:"product_id"`
	Status            string `json:"status"`
	Screenshot        string `json:"screenshot,omitempty"`
	ReceiptScreenshot string `json:"receipt_screenshot,omitempty"`
	CheckNumber       string `json:"check_number,omitempty"`
	CreatedAt         string `json:"created_at"`
	IsArchived        bool   `json:"is_archived"`
}

type WithdrawalStatusRequest struct {
	IDs    []int  `json:"ids"`
	Status string `json:"status" example:"paid"`
}

type WithdrawalAdminDTO struct {
	ID             int     `json:"id"`
	UserID         int     `json:"user_id"`
	Amount         float64 `json:"amount"`
	PaymentDetails string  `json:"payment_details"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"created_at"`
}

type ProductRequest struct {
	ID              int     `json:"id,omitempty"`
	Name            string  `json:"name"`
	Article         string  `json:"article"`
	WBPrice         float64 `json:"wb_price"`
	CashbackPercent int     `json:"cashback_percent"`
	Price           float64 `json:"price"`
	Description     string  `json:"description"`
	Image           string  `json:"image"`
	Active          bool    `json:"active"`
}

type ProductAdminDTO struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Article         string  `json:"article"`
	WBPrice         float64 `json:"wb_price"`
	CashbackPercent int     `json:"cashback_percent"`
	Price           float64 `json:"price"`
	Description     string  `json:"description"`
	Image           string  `json:"image"`
	Active          bool    `json:"active"`
	IsArchived      bool    `json:"is_archived"`
}
