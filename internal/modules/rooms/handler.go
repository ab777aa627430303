package rooms

import (
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
	rg.GET("/rooms", h.List)
	rg.GET("/rooms/available", h.Available)
	rg.GET("/rooms/:id", h.Get)
	rg.POST("/rooms", h.Add)
	rg.PUT("/rooms/:id", h.Edit)
	rg.DELETE("/rooms/:id", h.Delete)
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
	if v := c.Query("category"); v != "" {
		p.Category = v
		applied["category"] = v
	}
	if v := c.Query("capacity_min"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			p.CapacityMin = n
			applied["capacity_min"] = v
		}
	}
	if v := c.Query("capacity_max"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			p.CapacityMax = n
			applied["capacity_max"] = v
		}
	}
	if v := c.Query("price_min"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			p.PriceMin = f
			applied["price_min"] = v
		}
	}
	if v := c.Query("price_max"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			p.PriceMax = f
			applied["price_max"] = v
		}
	}
	if v := c.Query("is_available"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			p.Available = &b
			applied["is_available"] = v
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
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to list rooms")
		return
	}

	response.List(c, items, listMeta(p, applied, total))
}

func (h *Handler) Available(c *gin.Context) {
	checkIn, err := domain.ParseDate(c.Query("check_in"), "check_in")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	checkOut, err := domain.ParseDate(c.Query("check_out"), "check_out")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	rooms, err := h.service.AvailableForDates(c.Request.Context(), checkIn, checkOut)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", ve.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to check availability")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
		return
	}

	room, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to get room")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"room": room})
}

func (h *Handler) Add(c *gin.Context) {
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationFailed(c, http.StatusBadRequest, "Missing required fields", fields)
		return
	}

	room, fieldErrs, err := h.service.Add(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrNumberTaken) {
			response.Error(c, http.StatusConflict, "NUMBER_TAKEN", "Room number already taken")
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to add room")
		return
	}
	if fieldErrs != nil {
		response.ValidationFailed(c, http.StatusBadRequest, "Invalid room fields", fieldErrs)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"room": room})
}

func (h *Handler) Edit(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
		return
	}

	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationFailed(c, http.StatusBadRequest, "Missing required fields", fields)
		return
	}

	room, fieldErrs, err := h.service.Edit(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
		case errors.Is(err, ErrNumberTaken):
			response.Error(c, http.StatusConflict, "NUMBER_TAKEN", "Room number already taken")
		default:
			response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to edit room")
		}
		return
	}
	if fieldErrs != nil {
		response.ValidationFailed(c, http.StatusBadRequest, "Invalid room fields", fieldErrs)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"room": room})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to delete room")
		return
	}

	response.Message(c, http.StatusOK, "Room deleted")
}
