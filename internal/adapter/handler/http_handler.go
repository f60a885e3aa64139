package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/rl1809/stockroom/internal/core/domain"
	"github.com/rl1809/stockroom/internal/core/service"
)

// HTTPHandler translates the JSON resource surface into service calls.
// One method per (resource, verb) pair; no shared logic beyond the services.
type HTTPHandler struct {
	inventory *service.InventoryService
	auth      *service.AuthService
	logger    *zap.Logger
}

type itemRequest struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type signUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type messageResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

type signInResponse struct {
	Message string          `json:"message"`
	User    domain.Identity `json:"user"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewHTTPHandler(inventory *service.InventoryService, auth *service.AuthService, logger *zap.Logger) *HTTPHandler {
	return &HTTPHandler{inventory: inventory, auth: auth, logger: logger}
}

// Register mounts every resource route on the mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/get-all-inventory", h.ListItems)
	mux.HandleFunc("GET /api/get-inventory/{id}", h.GetItem)
	mux.HandleFunc("POST /api/add-inventory", h.AddItem)
	mux.HandleFunc("PUT /api/update-inventory/{id}", h.UpdateItem)
	mux.HandleFunc("DELETE /api/delete-inventory/{id}", h.DeleteItem)
	mux.HandleFunc("POST /api/signup", h.SignUp)
	mux.HandleFunc("POST /api/signin", h.SignIn)
	mux.HandleFunc("GET /health", h.HealthCheck)
}

func (h *HTTPHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.inventory.ListItems(r.Context())
	if err != nil {
		h.logger.Error("list items failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, items)
}

func (h *HTTPHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.inventory.GetItem(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "inventory item not found"})
			return
		}
		h.logger.Error("get item failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (h *HTTPHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	id, err := h.inventory.AddItem(r.Context(), domain.ItemInput(req))
	if err != nil {
		if errors.Is(err, service.ErrInvalidItem) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid input"})
			return
		}
		h.logger.Error("add item failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{
		Message: "Inventory item created successfully",
		ID:      id,
	})
}

func (h *HTTPHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	err := h.inventory.UpdateItem(r.Context(), r.PathValue("id"), domain.ItemInput(req))
	if err != nil {
		if errors.Is(err, service.ErrInvalidItem) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid input"})
			return
		}
		if errors.Is(err, service.ErrItemNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "inventory item not found"})
			return
		}
		h.logger.Error("update item failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Inventory item updated successfully"})
}

func (h *HTTPHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	err := h.inventory.DeleteItem(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "inventory item not found"})
			return
		}
		h.logger.Error("delete item failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Inventory item deleted successfully"})
}

func (h *HTTPHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "name, email, and password are required"})
		return
	}

	if err := h.auth.SignUp(r.Context(), req.Name, req.Email, req.Password); err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "email already in use"})
			return
		}
		h.logger.Error("sign-up failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{Message: "User created successfully"})
}

func (h *HTTPHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "email and password are required"})
		return
	}

	identity, err := h.auth.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "user not found"})
			return
		}
		if errors.Is(err, service.ErrInvalidPassword) {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid password"})
			return
		}
		h.logger.Error("sign-in failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, signInResponse{
		Message: "Sign-in successful",
		User:    identity,
	})
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
