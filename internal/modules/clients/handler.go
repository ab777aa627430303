package clients

import (
	"errors"
	"net/http"
	"strconv"

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
	rg.GET("/clients", h.List)
	rg.GET("/clients/short", h.ShortList)
	rg.GET("/clients/export", h.Export)
	rg.POST("/clients/import", h.Import)
	rg.GET("/clients/:id", h.Get)
	rg.POST("/clients", h.Add)
	rg.PUT("/clients/:id", h.Edit)
	rg.DELETE("/clients/:id", h.Delete)
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
	if v := c.Query("surname"); v != "" {
		p.SurnamePrefix = v
		applied["surname"] = v
	}
	if v := c.Query("name"); v != "" {
		p.NameContains = v
		applied["name"] = v
	}
	if v := c.Query("phone"); v != "" {
		p.PhonePrefix = v
		applied["phone"] = v
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
	// No pagination means one page holding everything.
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
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to list clients")
		return
	}

	response.List(c, items, listMeta(p, applied, total))
}

func (h *Handler) ShortList(c *gin.Context) {
	p, applied := parseListParams(c)

	items, total, err := h.service.ShortList(c.Request.Context(), p)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to list clients")
		return
	}

	response.List(c, items, listMeta(p, applied, total))
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid client ID")
		return
	}

	client, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Client not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to get client")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"client": client})
}

func (h *Handler) Add(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationFailed(c, http.StatusBadRequest, "Missing required fields", fields)
		return
	}

	client, fieldErrs, err := h.service.Add(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrDuplicate) {
			response.Error(c, http.StatusConflict, "DUPLICATE", "Identical client already exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to add client")
		return
	}
	if fieldErrs != nil {
		response.ValidationFailed(c, http.StatusBadRequest, "Invalid client fields", fieldErrs)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"client": client})
}

func (h *Handler) Edit(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid client ID")
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationFailed(c, http.StatusBadRequest, "Missing required fields", fields)
		return
	}

	client, fieldErrs, err := h.service.Edit(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Client not found")
		case errors.Is(err, ErrDuplicate):
			response.Error(c, http.StatusConflict, "DUPLICATE", "Identical client already exists")
		default:
			response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to edit client")
		}
		return
	}
	if fieldErrs != nil {
		response.ValidationFailed(c, http.StatusBadRequest, "Invalid client fields", fieldErrs)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"client": client})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid client ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Client not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to delete client")
		return
	}

	response.Message(c, http.StatusOK, "Client deleted")
}

func (h *Handler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "json")

	data, contentType, err := h.service.Export(c.Request.Context(), format)
	if err != nil {
		if errors.Is(err, ErrBadFormat) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Format must be json or yaml")
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to export clients")
		return
	}

	c.Data(http.StatusOK, contentType, data)
}

func (h *Handler) Import(c *gin.Context) {
	var items []ClientRequest
	if err := c.ShouldBindJSON(&items); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Body must be an array of clients")
		return
	}

	added, skipped, err := h.service.Import(c.Request.Context(), items)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to import clients")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"added": added, "skipped": skipped})
}
