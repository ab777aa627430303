package bookings

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"hotel/internal/domain"
	"hotel/internal/pkg/response"
	"hotel/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.List)
	rg.GET("/bookings/period", h.Period)
	rg.GET("/bookings/:id", h.Get)
	rg.POST("/bookings", h.Add)
	rg.PUT("/bookings/:id", h.Edit)
	rg.DELETE("/bookings/:id", h.Delete)
	rg.POST("/bookings/:id/cancel", h.Cancel)
	rg.POST("/bookings/:id/complete", h.Complete)
}

func parseListParams(c *gin.Context) (ListParams, map[string]string) {
	var p ListParams
	applied := map[string]string{}

	if v := c.Query("id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil && id > 0 {
			p.ID = id
			applied["id"] = v
		}
	}
	if v := c.Query("client_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil && id > 0 {
			p.ClientID = id
			applied["client_id"] = v
		}
	}
	if v := c.Query("room_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil && id > 0 {
			p.RoomID = id
			applied["room_id"] = v
		}
	}
	if v := c.Query("status"); v != "" {
		p.Status = v
		applied["status"] = v
	}
	if v := c.Query("from"); v != "" {
		if t, err := domain.ParseDate(v, "from"); err == nil {
			p.From = t
			applied["from"] = v
		}
	}
	if v := c.Query("to"); v != "" {
		if t, err := domain.ParseDate(v, "to"); err == nil {
			p.To = t
			applied["to"] = v
		}
	}
	if v := c.Query("total_min"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			p.TotalMin = f
			applied["total_min"] = v
		}
	}
	if v := c.Query("total_max"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			p.TotalMax = f
			applied["total_max"] = v
		}
	}

	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			p.Page = n
		}
	}
	if v := c.Query("page_size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			p.PageSize = n
		}
	}

	if v := c.Query("sort_by"); v != "" {
		if _, ok := Sorters[v]; ok {
			p.SortBy = v
		}
	}
	p.SortDesc = c.Query("sort_order") == "desc"

	return p, applied
}

func listMeta(p ListParams, applied map[string]string, total int) response.ListMeta {
	meta := response.ListMeta{
		Total:          total,
		Page:           p.Page,
		PageSize:       p.PageSize,
		FiltersApplied: applied,
		SortBy:         p.SortBy,
	}
	if meta.Page < 1 {
		meta.Page = 1
	}
	if p.PageSize <= 0 {
		meta.Page = 1
		meta.PageSize = total
	}
	if p.SortBy != "" {
		meta.SortOrder = "asc"
		if p.SortDesc {
			meta.SortOrder = "desc"
		}
	}
	return meta
}

func (h *Handler) List(c *gin.Context) {
	p, applied := parseListParams(c)

	items, total, err := h.service.List(c.Request.Context(), p)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to list bookings")
		return
	}

	response.List(c, items, listMeta(p, applied, total))
}

func (h *Handler) Period(c *gin.Context) {
	from, err := domain.ParseDate(c.Query("from"), "from")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	to, err := domain.ParseDate(c.Query("to"), "to")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	items, err := h.service.ForPeriod(c.Request.Context(), from, to)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", ve.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to list bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": items})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	booking, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to get booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": booking})
}

func (h *Handler) Add(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationFailed(c, http.StatusBadRequest, "Missing required fields", fields)
		return
	}

	booking, fieldErrs, err := h.service.Add(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrRoomBusy) {
			response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "Room is not available for the selected dates")
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to create booking")
		return
	}
	if fieldErrs != nil {
		response.ValidationFailed(c, http.StatusBadRequest, "Invalid booking fields", fieldErrs)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": booking})
}

func (h *Handler) Edit(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationFailed(c, http.StatusBadRequest, "Missing required fields", fields)
		return
	}

	booking, fieldErrs, err := h.service.Edit(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrRoomBusy):
			response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "Room is not available for the selected dates")
		default:
			response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to edit booking")
		}
		return
	}
	if fieldErrs != nil {
		response.ValidationFailed(c, http.StatusBadRequest, "Invalid booking fields", fieldErrs)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": booking})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to delete booking")
		return
	}

	response.Message(c, http.StatusOK, "Booking deleted")
}

func (h *Handler) Cancel(c *gin.Context) {
	h.transition(c, h.service.Cancel)
}

func (h *Handler) Complete(c *gin.Context) {
	h.transition(c, h.service.Complete)
}

func (h *Handler) transition(c *gin.Context, op func(ctx context.Context, id int64) (*domain.Booking, error)) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	booking, err := op(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrInvalidStatusTransition):
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Booking status does not allow this transition")
		default:
			response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to update booking status")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": booking})
}
