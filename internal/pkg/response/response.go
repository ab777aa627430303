package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// Message is the add/edit/delete result shape: success plus a human text.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"message": message,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// ValidationFailed reports a per-field error map under details.
func ValidationFailed(c *gin.Context, statusCode int, message string, fields map[string]string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "VALIDATION_ERROR",
			"message": message,
			"details": fields,
		},
	})
}

// ListMeta is the pagination/filter echo attached to every list response.
type ListMeta struct {
	Total          int               `json:"total"`
	Page           int               `json:"page"`
	PageSize       int               `json:"page_size"`
	FiltersApplied map[string]string `json:"filters_applied"`
	SortBy         string            `json:"sort_by,omitempty"`
	SortOrder      string            `json:"sort_order,omitempty"`
}

func List(c *gin.Context, items interface{}, meta ListMeta) {
	if meta.FiltersApplied == nil {
		meta.FiltersApplied = map[string]string{}
	}
	c.JSON(200, gin.H{
		"success": true,
		"data": gin.H{
			"items":           items,
			"total":           meta.Total,
			"page":            meta.Page,
			"page_size":       meta.PageSize,
			"filters_applied": meta.FiltersApplied,
			"sort_by":         meta.SortBy,
			"sort_order":      meta.SortOrder,
		},
	})
}
