package webapp

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"strconv"

	"github.com/avkuzmin/wbcashback/internal/service/catalogservice"
	"go.uber.org/zap"
)

//go:embed templates/catalog.html
var templates embed.FS

type Service interface {
	GetView(ctx context.Context, telegramID int64) (*catalogservice.View, error)
}

type WebAppHandler struct {
	catalogService Service
	tmpl           *template.Template
}

func New(catalogService Service) *WebAppHandler {
	return &WebAppHandler{
		catalogService: catalogService,
		tmpl:           template.Must(template.ParseFS(templates, "templates/catalog.html")),
	}
}

// Catalog godoc
//
//	@Summary	Rendered catalog page for the Telegram WebApp
//	@Tags		WebApp
//	@Produce	html
//	@Param		user_id	query	string	false	"Telegram user id"
//	@Success	200
//	@Router		/webapp/ [get]
func (h *WebAppHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	// unknown or absent user_id renders the anonymous view
	telegramID, _ := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)

	view, err := h.catalogService.GetView(r.Context(), telegramID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Execute(w, view); err != nil {
		zap.L().Error("can't render catalog page", zap.Error(err))
	}
}
