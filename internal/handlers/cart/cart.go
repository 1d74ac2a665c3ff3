package cart

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/avkuzmin/wbcashback/internal/domain"
	"github.com/avkuzmin/wbcashback/internal/dto"
	"github.com/avkuzmin/wbcashback/pkg/utils"
)

type Service interface {
	Get(ctx context.Context, telegramID int64) ([]domain.Product, string)
	Update(ctx context.Context, telegramID int64, productID int, action string) error
}

type UserService interface {
	SaveDetails(ctx context.Context, telegramID int64, details string) error
}

type CartHandler struct {
	cartService Service
	userService UserService
}

func New(cartService Service, userService UserService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		userService: userService,
	}
}

// GetCart godoc
//
//	@Summary	Get current cart contents for a user
//	@Tags		Cart
//	@Produce	json
//	@Param		user_id	query		string	true	"Telegram user id"
//	@Success	200		{object}	dto.GetCartResponse
//	@Router		/api/get-cart/ [get]
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	telegramID, err := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
	if err != nil {
		utils.RespondWithJSON(w, http.StatusOK, dto.GetCartResponse{Cart: []dto.CartItemDTO{}})
		return
	}

	products, details := h.cartService.Get(r.Context(), telegramID)

	resp := dto.GetCartResponse{Cart: make([]dto.CartItemDTO, 0, len(products)), PaymentDetails: details}
	for _, p := range products {
		resp.Cart = append(resp.Cart, dto.CartItemDTO{
			ID:    strconv.Itoa(p.ID),
			Name:  p.Name,
			Price: strconv.FormatFloat(p.Price, 'f', -1, 64),
			Img:   p.Image,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// UpdateCart godoc
//
//	@Summary	Add or remove one product in the cart
//	@Tags		Cart
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.UpdateCartRequest	true	"Cart mutation"
//	@Success	200		{object}	dto.OkResponse
//	@Router		/api/update-cart/ [post]
func (h *CartHandler) UpdateCart(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithJSON(w, http.StatusOK, dto.OkResponse{OK: false})
		return
	}
	if req.UserID == 0 || req.ProductID == 0 {
		utils.RespondWithJSON(w, http.StatusOK, dto.OkResponse{OK: false})
		return
	}

	if err := h.cartService.Update(r.Context(), req.UserID, req.ProductID, req.Action); err != nil {
		utils.RespondWithJSON(w, http.StatusOK, dto.OkResponse{OK: false})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.OkResponse{OK: true})
}

// SaveDetails godoc
//
//	@Summary	Save the user's payment details
//	@Tags		Cart
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.SaveDetailsRequest	true	"Payment details"
//	@Success	200		{object}	dto.OkResponse
//	@Router		/api/save-details/ [post]
func (h *CartHandler) SaveDetails(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithJSON(w, http.StatusOK, dto.OkResponse{OK: false})
		return
	}

	if err := h.userService.SaveDetails(r.Context(), req.UserID, req.Details); err != nil {
		utils.RespondWithJSON(w, http.StatusOK, dto.OkResponse{OK: false})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.OkResponse{OK: true})
}
