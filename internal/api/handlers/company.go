package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/Harshitk-cp/tenancy/internal/domain"
	"github.com/Harshitk-cp/tenancy/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CompanyHandler struct {
	svc        *service.CompanyService
	industries *service.IndustryService
	logger     *zap.Logger
}

func NewCompanyHandler(svc *service.CompanyService, industries *service.IndustryService, logger *zap.Logger) *CompanyHandler {
	return &CompanyHandler{svc: svc, industries: industries, logger: logger}
}

type createCompanyRequest struct {
	FriendlyName     string             `json:"friendly_name"`
	EstimatedRevenue float64            `json:"estimated_revenue"`
	IndustryID       *int64             `json:"industry_id"`
	Billing          domain.BillingInfo `json:"billing_info"`
}

type updateCompanyRequest struct {
	FriendlyName     *string  `json:"friendly_name"`
	IndustryID       *int64   `json:"industry_id"`
	EstimatedRevenue *float64 `json:"estimated_revenue"`
}

// InvitedUserConfirmation is returned after an invitation is sent.
type InvitedUserConfirmation struct {
	UserInvitationID string    `json:"user_invitation_id"`
	OrganizationID   int64     `json:"organization_id"`
	InviteURL        string    `json:"invite_url"`
	ExpiresAt        time.Time `json:"expires_at"`
}

func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	companies, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to list companies")
		return
	}
	if companies == nil {
		companies = []domain.Company{}
	}
	writeJSON(w, http.StatusOK, companies)
}

func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCompanyRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	company, err := h.svc.Create(r.Context(), service.CreateCompanyInput{
		FriendlyName:     req.FriendlyName,
		EstimatedRevenue: req.EstimatedRevenue,
		IndustryID:       req.IndustryID,
		Billing:          req.Billing,
	})
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to create company")
		return
	}

	writeJSON(w, http.StatusCreated, company)
}

func (h *CompanyHandler) Industries(w http.ResponseWriter, r *http.Request) {
	hierarchy, err := h.industries.Hierarchy(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to list industries")
		return
	}
	writeJSON(w, http.StatusOK, hierarchy)
}

func (h *CompanyHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(chi.URLParam(r, "name"))
	if name == "" {
		writeError(w, http.StatusBadRequest, "invalid company name")
		return
	}

	company, err := h.svc.GetByName(r.Context(), name)
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to get company")
		return
	}
	writeJSON(w, http.StatusOK, company)
}

func (h *CompanyHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := int64Param(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid company id")
		return
	}

	company, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to get company")
		return
	}
	writeJSON(w, http.StatusOK, company)
}

func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := int64Param(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid company id")
		return
	}

	var req updateCompanyRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	company, err := h.svc.Update(r.Context(), id, domain.CompanyUpdate{
		FriendlyName:     req.FriendlyName,
		IndustryID:       req.IndustryID,
		EstimatedRevenue: req.EstimatedRevenue,
	})
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to update company")
		return
	}
	writeJSON(w, http.StatusOK, company)
}

func (h *CompanyHandler) Invite(w http.ResponseWriter, r *http.Request) {
	id, ok := int64Param(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid company id")
		return
	}
	email := strings.TrimSpace(r.URL.Query().Get("user_email"))
	if email == "" {
		writeError(w, http.StatusBadRequest, "user_email is required")
		return
	}

	invite, err := h.svc.InviteUser(r.Context(), id, email)
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to invite user")
		return
	}

	writeJSON(w, http.StatusCreated, InvitedUserConfirmation{
		UserInvitationID: invite.Invitation.ID,
		OrganizationID:   invite.Company.ID,
		InviteURL:        invite.Invitation.InvitationURL,
		ExpiresAt:        invite.Invitation.ExpiresAt,
	})
}
