package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"kpireport/models"
	service "kpireport/services"
	"kpireport/utils"
)

type KPIHandler struct {
	catalog     service.CatalogService
	submissions service.SubmissionService
	reviews     service.ReviewService
	stats       service.StatsService
	timeout     time.Duration
}

func NewKPIHandler(catalog service.CatalogService, submissions service.SubmissionService, reviews service.ReviewService, stats service.StatsService, timeout time.Duration) *KPIHandler {
	return &KPIHandler{
		catalog:     catalog,
		submissions: submissions,
		reviews:     reviews,
		stats:       stats,
		timeout:     timeout,
	}
}

// handleServiceError maps the service failure taxonomy onto HTTP statuses.
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrKPINotFound), errors.Is(err, service.ErrUpdateNotFound):
		utils.HandleMessageResponse(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrUnitMismatch):
		utils.HandleMessageResponse(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, service.ErrInvalidStatus):
		utils.HandleMessageResponse(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrAlreadyReviewed):
		utils.HandleMessageResponse(w, err.Error(), http.StatusConflict)
	default:
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *KPIHandler) Root(w http.ResponseWriter, r *http.Request) {
	utils.HandleMessageResponse(w, "KPI reporting API running", http.StatusOK)
}

func (h *KPIHandler) GetAllKPIs(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	defs, err := h.catalog.ListAll(ctx)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "KPI definitions retrieved successfully", defs, http.StatusOK)
}

func (h *KPIHandler) GetKPIsByUnit(w http.ResponseWriter, r *http.Request) {
	unitSlug := r.PathValue("unit_slug")

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	defs, err := h.catalog.ListByUnit(ctx, unitSlug)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "KPI definitions retrieved successfully", defs, http.StatusOK)
}

func (h *KPIHandler) GetUpdatesByUnit(w http.ResponseWriter, r *http.Request) {
	unitSlug := r.PathValue("unit_slug")

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	updates, err := h.submissions.ListByUnit(ctx, unitSlug)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "KPI updates retrieved successfully", updates, http.StatusOK)
}

func (h *KPIHandler) SubmitUpdate(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitUpdateRequest
	if err := utils.DecodeAndValidate(w, r, &req); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	update, err := h.submissions.Submit(ctx, &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := models.SubmitUpdateResponse{
		ID:     update.ID,
		Status: update.Status,
	}
	utils.HandleDataResponse(w, "KPI update submitted successfully", resp, http.StatusCreated)
}

func (h *KPIHandler) ReviewUpdate(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("update_id")
	updateID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid update ID format", http.StatusBadRequest)
		return
	}

	var req models.ReviewRequest
	if err := utils.DecodeAndValidate(w, r, &req); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	update, err := h.reviews.Review(ctx, updateID, req.Status, req.Reviewer)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	msg := fmt.Sprintf("KPI update %d %s", update.ID, update.Status)
	utils.HandleMessageResponse(w, msg, http.StatusOK)
}

func (h *KPIHandler) GetUnitStats(w http.ResponseWriter, r *http.Request) {
	unitSlug := r.PathValue("unit_slug")

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	summary, err := h.stats.UnitStats(ctx, unitSlug)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Unit statistics retrieved successfully", summary, http.StatusOK)
}
