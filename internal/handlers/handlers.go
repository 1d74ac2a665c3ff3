package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/avkuzmin/wbcashback/docs"
	adminhandlers "github.com/avkuzmin/wbcashback/internal/handlers/admin"
	carthandlers "github.com/avkuzmin/wbcashback/internal/handlers/cart"
	ordershandlers "github.com/avkuzmin/wbcashback/internal/handlers/orders"
	webapphandlers "github.com/avkuzmin/wbcashback/internal/handlers/webapp"
	"github.com/avkuzmin/wbcashback/internal/metrics"
	"github.com/avkuzmin/wbcashback/internal/service"
	"github.com/avkuzmin/wbcashback/pkg/auth"
)

type WebAppHandler interface {
	Catalog(w http.ResponseWriter, r *http.Request)
}

type CartHandler interface {
	GetCart(w http.ResponseWriter, r *http.Request)
	UpdateCart(w http.ResponseWriter, r *http.Request)
	SaveDetails(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	CreateOrder(w http.ResponseWriter, r *http.Request)
	RequestWithdrawal(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	ListOrders(w http.ResponseWriter, r *http.Request)
	ApproveOrders(w http.ResponseWriter, r *http.Request)
	RejectOrders(w http.ResponseWriter, r *http.Request)
	ArchiveOrders(w http.ResponseWriter, r *http.Request)
	ListWithdrawals(w http.ResponseWriter, r *http.Request)
	SetWithdrawalStatus(w http.ResponseWriter, r *http.Request)
	ListProducts(w http.ResponseWriter, r *http.Request)
	CreateProduct(w http.ResponseWriter, r *http.Request)
	UpdateProduct(w http.ResponseWriter, r *http.Request)
	ArchiveProducts(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	WebApp WebAppHandler
	Cart   CartHandler
	Orders OrderHandler
	Admin  AdminHandler

	jwtService *auth.JWTService
}

func New(s *service.Services, jwtService *auth.JWTService, creds adminhandlers.Credentials) *Handlers {
	return &Handlers{
		WebApp:     webapphandlers.New(s.Catalog),
		Cart:       carthandlers.New(s.Cart, s.User),
		Orders:     ordershandlers.New(s.Order, s.Withdrawal),
		Admin:      adminhandlers.New(s.Review, s.Withdrawal, s.Product, jwtService, creds),
		jwtService: jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", metrics.Handler())

	r.Get("/webapp/", h.WebApp.Catalog)

	r.Route("/api", func(r chi.Router) {
		r.Post("/create-order/", h.Orders.CreateOrder)
		r.Get("/get-cart/", h.Cart.GetCart)
		r.Post("/update-cart/", h.Cart.UpdateCart)
		r.Post("/save-details/", h.Cart.SaveDetails)
		r.Post("/request-withdrawal/", h.Orders.RequestWithdrawal)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", h.Admin.Login)

			r.Group(func(r chi.Router) {
				r.Use(auth.Middleware(h.jwtService))
				r.Route("/orders", func(r chi.Router) {
					r.Get("/", h.Admin.ListOrders)
					r.Post("/approve", h.Admin.ApproveOrders)
					r.Post("/reject", h.Admin.RejectOrders)
					r.Post("/archive", h.Admin.ArchiveOrders)
				})
				r.Route("/withdrawals", func(r chi.Router) {
					r.Get("/", h.Admin.ListWithdrawals)
					r.Post("/status", h.Admin.SetWithdrawalStatus)
				})
				r.Route("/products", func(r chi.Router) {
					r.Get("/", h.Admin.ListProducts)
					r.Post("/", h.Admin.CreateProduct)
					r.Put("/", h.Admin.UpdateProduct)
					r.Post("/archive", h.Admin.ArchiveProducts)
				})
			})
		})
	})

	return r
}
