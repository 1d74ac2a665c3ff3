package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/avkuzmin/wbcashback/internal/domain"
	"github.com/avkuzmin/wbcashback/internal/dto"
	"github.com/avkuzmin/wbcashback/internal/service/productservice"
	"github.com/avkuzmin/wbcashback/internal/service/withdrawalservice"
	"github.com/avkuzmin/wbcashback/pkg/auth"
	"github.com/avkuzmin/wbcashback/pkg/utils"
)

const tokenTTL = 24 * time.Hour

type ReviewService interface {
	Approve(ctx context.Context, orderIDs []int) (int, error)
	Reject(ctx context.Context, orderIDs []int) error
	SetArchived(ctx context.Context, orderIDs []int, archived bool) error
	ListByStatus(ctx context.Context, status string, includeArchived bool) ([]domain.Order, error)
}

type WithdrawalService interface {
	List(ctx context.Context) ([]domain.WithdrawalRequest, error)
	SetStatus(ctx context.Context, ids []int, status string) error
}

type ProductService interface {
	List(ctx context.Context, includeArchived bool) ([]domain.Product, error)
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	SetArchived(ctx context.Context, ids []int, archived bool) error
}

// Credentials is the single operator account, held in config.
type Credentials struct {
	Login        string
	PasswordHash string
}

type AdminHandler struct {
	reviewService     ReviewService
	withdrawalService WithdrawalService
	productService    ProductService
	jwtService        *auth.JWTService
	creds             Credentials
}

func New(review ReviewService, withdrawal WithdrawalService, product ProductService, jwtService *auth.JWTService, creds Credentials) *AdminHandler {
	return &AdminHandler{
		reviewService:     review,
		withdrawalService: withdrawal,
		productService:    product,
		jwtService:        jwtService,
		creds:             creds,
	}
}

// Login godoc
//
//	@Summary	Operator login
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.LoginRequest	true	"Credentials"
//	@Success	200		{object}	dto.TokenResponse
//	@Failure	401		{object}	utils.Response	"Wrong credentials"
//	@Router		/api/admin/login [post]
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Login != h.creds.Login || !auth.ComparePassword(h.creds.PasswordHash, req.Password) {
		utils.RespondWithError(w, http.StatusUnauthorized, "Wrong login or password")
		return
	}

	token, err := h.jwtService.GenerateJWT(req.Login, time.Now().Add(tokenTTL))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TokenResponse{Token: token})
}

// ListOrders godoc
//
//	@Summary	List orders for review
//	@Tags		Admin
//	@Produce	json
//	@Param		status		query		string	false	"Order status"	default(received)
//	@Param		archived	query		bool	false	"Include archived"
//	@Security	BearerAuth
//	@Success	200	{array}	dto.OrderAdminDTO
//	@Router		/api/admin/orders [get]
func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		status = domain.ReceivedStatus
	}
	includeArchived, _ := strconv.ParseBool(r.URL.Query().Get("archived"))

	orders, err := h.reviewService.ListByStatus(r.Context(), status, includeArchived)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.OrderAdminDTO, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, dto.OrderAdminDTO{
			ID:                o.ID,
			UserID:            o.UserID,
			ProductID:         o.ProductID,
			Status:            o.Status,
			Screenshot:        o.Screenshot,
			ReceiptScreenshot: o.ReceiptScreenshot,
			CheckNumber:       o.CheckNumber,
			CreatedAt:         o.CreatedAt.Format(time.RFC3339),
			IsArchived:        o.IsArchived,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// ApproveOrders godoc
//
//	@Summary		Approve orders and pay out cashback
//	@Description	Skips orders that are already approved, so repeating the same selection never double-credits.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.OrderIDsRequest	true	"Order ids"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ApproveResponse
//	@Router			/api/admin/orders/approve [post]
func (h *AdminHandler) ApproveOrders(w http.ResponseWriter, r *http.Request) {
	ids, ok := decodeIDs(w, r)
	if !ok {
		return
	}

	paid, err := h.reviewService.Approve(r.Context(), ids)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ApproveResponse{Paid: paid})
}

// RejectOrders godoc
//
//	@Summary	Reject orders without payout
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		request	body	dto.OrderIDsRequest	true	"Order ids"
//	@Security	BearerAuth
//	@Success	200	{object}	utils.Response
//	@Router		/api/admin/orders/reject [post]
func (h *AdminHandler) RejectOrders(w http.ResponseWriter, r *http.Request) {
	ids, ok := decodeIDs(w, r)
	if !ok {
		return
	}

	if err := h.reviewService.Reject(r.Context(), ids); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithError(w, http.StatusOK, "Rejected")
}

// ArchiveOrders godoc
//
//	@Summary	Set the archive visibility flag on orders
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		request	body	dto.ArchiveRequest	true	"Order ids and flag"
//	@Security	BearerAuth
//	@Success	200	{object}	utils.Response
//	@Router		/api/admin/orders/archive [post]
func (h *AdminHandler) ArchiveOrders(w http.ResponseWriter, r *http.Request) {
	var req dto.ArchiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.IDs) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.reviewService.SetArchived(r.Context(), req.IDs, req.Archived); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithError(w, http.StatusOK, "Updated")
}

// ListWithdrawals godoc
//
//	@Summary	List withdrawal requests
//	@Tags		Admin
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	dto.WithdrawalAdminDTO
//	@Router		/api/admin/withdrawals [get]
func (h *AdminHandler) ListWithdrawals(w http.ResponseWriter, r *http.Request) {
	withdrawals, err := h.withdrawalService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.WithdrawalAdminDTO, 0, len(withdrawals))
	for _, wd := range withdrawals {
		resp = append(resp, dto.WithdrawalAdminDTO{
			ID:             wd.ID,
			UserID:         wd.UserID,
			Amount:         wd.Amount,
			PaymentDetails: wd.PaymentDetails,
			Status:         wd.Status,
			CreatedAt:      wd.CreatedAt.Format(time.RFC3339),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// SetWithdrawalStatus godoc
//
//	@Summary	Flip withdrawal request status
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		request	body	dto.WithdrawalStatusRequest	true	"Ids and status"
//	@Security	BearerAuth
//	@Success	200	{object}	utils.Response
//	@Router		/api/admin/withdrawals/status [post]
func (h *AdminHandler) SetWithdrawalStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.WithdrawalStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.IDs) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.withdrawalService.SetStatus(r.Context(), req.IDs, req.Status)
	if err != nil {
		if errors.Is(err, withdrawalservice.ErrUnknownStatus) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithError(w, http.StatusOK, "Updated")
}

// ListProducts godoc
//
//	@Summary	List products, archived included on demand
//	@Tags		Admin
//	@Produce	json
//	@Param		archived	query	bool	false	"Include archived"
//	@Security	BearerAuth
//	@Success	200	{array}	dto.ProductAdminDTO
//	@Router		/api/admin/products [get]
func (h *AdminHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	includeArchived, _ := strconv.ParseBool(r.URL.Query().Get("archived"))

	products, err := h.productService.List(r.Context(), includeArchived)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.ProductAdminDTO, 0, len(products))
	for _, p := range products {
		resp = append(resp, dto.ProductAdminDTO{
			ID:              p.ID,
			Name:            p.Name,
			Article:         p.Article,
			WBPrice:         p.WBPrice,
			CashbackPercent: p.CashbackPercent,
			Price:           p.Price,
			Description:     p.Description,
			Image:           p.Image,
			Active:          p.Active,
			IsArchived:      p.IsArchived,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// CreateProduct godoc
//
//	@Summary	Create a product
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		request	body	dto.ProductRequest	true	"Product"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.ProductAdminDTO
//	@Router		/api/admin/products [post]
func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	product, ok := decodeProduct(w, r)
	if !ok {
		return
	}

	if err := h.productService.Create(r.Context(), product); err != nil {
		respondProductError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ProductAdminDTO{ID: product.ID, Name: product.Name})
}

// UpdateProduct godoc
//
//	@Summary	Update a product
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		request	body	dto.ProductRequest	true	"Product with id"
//	@Security	BearerAuth
//	@Success	200	{object}	utils.Response
//	@Router		/api/admin/products [put]
func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	product, ok := decodeProduct(w, r)
	if !ok {
		return
	}

	if err := h.productService.Update(r.Context(), product); err != nil {
		respondProductError(w, err)
		return
	}
	utils.RespondWithError(w, http.StatusOK, "Updated")
}

// ArchiveProducts godoc
//
//	@Summary	Set the archive visibility flag on products
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		request	body	dto.ArchiveRequest	true	"Product ids and flag"
//	@Security	BearerAuth
//	@Success	200	{object}	utils.Response
//	@Router		/api/admin/products/archive [post]
func (h *AdminHandler) ArchiveProducts(w http.ResponseWriter, r *http.Request) {
	var req dto.ArchiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.IDs) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.productService.SetArchived(r.Context(), req.IDs, req.Archived); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithError(w, http.StatusOK, "Updated")
}

func decodeIDs(w http.ResponseWriter, r *http.Request) ([]int, bool) {
	var req dto.OrderIDsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.IDs) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	return req.IDs, true
}

func decodeProduct(w http.ResponseWriter, r *http.Request) (*domain.Product, bool) {
	var req dto.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	return &domain.Product{
		ID:              req.ID,
		Name:            req.Name,
		Article:         req.Article,
		WBPrice:         req.WBPrice,
		CashbackPercent: req.CashbackPercent,
		Price:           req.Price,
		Description:     req.Description,
		Image:           req.Image,
		Active:          req.Active,
	}, true
}

func respondProductError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, productservice.ErrInvalidPercent):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, productservice.ErrProductNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
