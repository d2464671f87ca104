package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"ItemKeeper/internal/config"
	"ItemKeeper/internal/service"

	"go.uber.org/zap"
)

// ItemHandler обрабатывает list/create для ресурса Item.
type ItemHandler struct {
	ItemService *service.ItemService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

// NewItemHandler создаёт хендлер items
func NewItemHandler(itemService *service.ItemService, logger *zap.SugaredLogger, cfg *config.Config) *ItemHandler {
	return &ItemHandler{ItemService: itemService, Logger: logger, Config: cfg}
}

// ItemDTO — элемент ответа.
type ItemDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ListResponse — ответ GET /items.
type ListResponse struct {
	Items []ItemDTO `json:"items"`
}

// CreateRequest — тело POST /items.
type CreateRequest struct {
	Name *string `json:"name"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// List возвращает все элементы.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.ItemService.List(r.Context())
	if err != nil {
		h.Logger.Errorw("List: storage error", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := ListResponse{Items: make([]ItemDTO, 0, len(items))}
	for _, it := range items {
		resp.Items = append(resp.Items, ItemDTO{ID: it.ID, Name: it.Name})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create валидирует тело и вставляет новый элемент.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "name" {
			writeError(w, http.StatusBadRequest, `"name" must be a string`)
			return
		}
		h.Logger.Warnw("Create: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var name string
	if req.Name != nil {
		name = *req.Name
	}

	item, err := h.ItemService.Create(r.Context(), name)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Message)
			return
		}
		h.Logger.Errorw("Create: storage error", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, ItemDTO{ID: item.ID, Name: item.Name})
}
