package dto

type UpdateCartRequest struct {
	UserID    int64  `json:"user_id" example:"123456789"`
	ProductID int    `json:"product_id" example:"1"`
	Action    string `json:"action" example:"add"`
}

type OkResponse struct {
	OK bool `json:"ok"`
}

// CartItemDTO mirrors the shape the webapp script expects: id and price are
// strings.
type CartItemDTO struct {
	ID    string `json:"id" example:"1"`
	Name  string `json:"name" example:"Кепка"`
	Price string `json:"price" example:"990"`
	Img   string `json:"img" example:"products/cap.jpg"`
}

type GetCartResponse struct {
	Cart           []CartItemDTO `json:"cart"`
	PaymentDetails string        `json:"payment_details"`
}
