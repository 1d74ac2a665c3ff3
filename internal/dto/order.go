package dto

type CreateOrderRequest struct {
	UserID   int64  `json:"user_id" example:"123456789"`
	Products string `json:"products" example:"1,2,3"`
}

type CreateOrderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type SaveDetailsRequest struct {
	UserID  int64  `json:"user_id" example:"123456789"`
	Details string `json:"details" example:"+7 900 000-00-00 Сбербанк"`
}

type WithdrawalRequestDTO struct {
	UserID int64   `json:"user_id" example:"123456789"`
	Amount float64 `json:"amount" example:"500"`
}
