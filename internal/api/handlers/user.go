package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Harshitk-cp/tenancy/internal/domain"
	"github.com/Harshitk-cp/tenancy/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	svc    *service.UserService
	logger *zap.Logger
}

func NewUserHandler(svc *service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{svc: svc, logger: logger}
}

type createUserRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	CompanyID int64  `json:"company_id"`
}

type updateUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := int64Param(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to get user")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(chi.URLParam(r, "email"))
	if email == "" {
		writeError(w, http.StatusBadRequest, "invalid email")
		return
	}

	user, err := h.svc.GetByEmail(r.Context(), email)
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to get user")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) ListByCompany(w http.ResponseWriter, r *http.Request) {
	companyID, ok := int64Param(r, "company_id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid company id")
		return
	}

	users, err := h.svc.ListByCompany(r.Context(), companyID)
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to list users")
		return
	}
	if users == nil {
		users = []domain.User{}
	}
	writeJSON(w, http.StatusOK, users)
}

// Create returns 201 with the new user, or 200 with the stored user when the
// email is already registered. With ?strict=true an existing email is a 409
// instead.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	strict, err := strconv.ParseBool(r.URL.Query().Get("strict"))
	if err != nil && r.URL.Query().Has("strict") {
		writeError(w, http.StatusBadRequest, "invalid strict parameter")
		return
	}

	var req createUserRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user := &domain.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		CompanyID: req.CompanyID,
	}
	if strict {
		if err := h.svc.Create(r.Context(), user); err != nil {
			writeServiceError(w, h.logger, err, "failed to create user")
			return
		}
		writeJSON(w, http.StatusCreated, user)
		return
	}

	created, err := h.svc.CreateIfNotExists(r.Context(), user)
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to create user")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, user)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := int64Param(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req updateUserRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.svc.UpdateNames(r.Context(), id, domain.UserUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to update user")
		return
	}
	writeJSON(w, http.StatusOK, user)
}
