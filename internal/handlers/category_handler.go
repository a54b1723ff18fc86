package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kharcha/internal/models"
)

// CategoryHandler serves the fixed category set.
type CategoryHandler struct{}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// CategoryResponse represents a category in the response
type CategoryResponse struct {
	Name  models.Category `json:"name"`
	Color string          `json:"color"`
}

// GetCategories returns the fixed category set
// @Summary     Get categories
// @Description Get the fixed set of spending categories with their chart colors, in display order
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} CategoryResponse "List of categories"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories := make([]CategoryResponse, 0, len(models.Categories))
	for _, name := range models.Categories {
		categories = append(categories, CategoryResponse{
			Name:  name,
			Color: models.CategoryColors[name],
		})
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
