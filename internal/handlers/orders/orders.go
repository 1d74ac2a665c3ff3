package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/avkuzmin/wbcashback/internal/dto"
	orderservice "github.com/avkuzmin/wbcashback/internal/service/orderservice"
	"github.com/avkuzmin/wbcashback/pkg/utils"
)

type Service interface {
	CreateBatch(ctx context.Context, telegramID int64, productIDs []int) ([]string, error)
}

type WithdrawalService interface {
	Create(ctx context.Context, telegramID int64, amount float64) error
}

type OrderHandler struct {
	orderService      Service
	withdrawalService WithdrawalService
}

func New(orderService Service, withdrawalService WithdrawalService) *OrderHandler {
	return &OrderHandler{
		orderService:      orderService,
		withdrawalService: withdrawalService,
	}
}

// CreateOrder godoc
//
//	@Summary		Create an order batch from a product id list
//	@Description	One order per product not yet ordered by this user; duplicates are skipped. The cart is cleared when at least one order was created.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateOrderRequest	true	"Order batch"
//	@Success		200		{object}	dto.CreateOrderResponse
//	@Failure		400		{object}	dto.CreateOrderResponse	"Bad request"
//	@Failure		404		{object}	dto.CreateOrderResponse	"Unknown user"
//	@Router			/api/create-order/ [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, dto.CreateOrderResponse{Error: "Invalid JSON"})
		return
	}
	if req.UserID == 0 {
		utils.RespondWithJSON(w, http.StatusBadRequest, dto.CreateOrderResponse{Error: "User ID is required"})
		return
	}

	productIDs := parseProductIDs(req.Products)
	if len(productIDs) == 0 {
		utils.RespondWithJSON(w, http.StatusBadRequest, dto.CreateOrderResponse{Error: "No products selected"})
		return
	}

	created, err := h.orderService.CreateBatch(r.Context(), req.UserID, productIDs)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrUserNotFound):
			utils.RespondWithJSON(w, http.StatusNotFound, dto.CreateOrderResponse{Error: "User not found"})
		default:
			utils.RespondWithJSON(w, http.StatusInternalServerError, dto.CreateOrderResponse{Error: "Internal server error"})
		}
		return
	}

	if len(created) == 0 {
		utils.RespondWithJSON(w, http.StatusOK, dto.CreateOrderResponse{Success: true, Message: "Дубликаты"})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CreateOrderResponse{Success: true, Message: "Заказ создан"})
}

func parseProductIDs(s string) []int {
	var ids []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// RequestWithdrawal godoc
//
//	@Summary	File a withdrawal request for accumulated cashback
//	@Tags		Orders
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.WithdrawalRequestDTO	true	"Withdrawal"
//	@Success	200		{object}	dto.OkResponse
//	@Router		/api/request-withdrawal/ [post]
func (h *OrderHandler) RequestWithdrawal(w http.ResponseWriter, r *http.Request) {
	var req dto.WithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithJSON(w, http.StatusOK, dto.OkResponse{OK: false})
		return
	}

	if err := h.withdrawalService.Create(r.Context(), req.UserID, req.Amount); err != nil {
		utils.RespondWithJSON(w, http.StatusOK, dto.OkResponse{OK: false})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.OkResponse{OK: true})
}
