package handlers

import (
	"net/http"
	"time"

	"findit/internal/db"
	"findit/internal/models"
	"findit/internal/utils"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

const categoriesCacheKey = "categories:list"

// List handles GET /api/categories. The table is seed data, so the result
// is served from a short-lived cache; only the live item counts go stale.
func (h *CategoryHandler) List(c *gin.Context) {
	if cached := utils.GetCache().Get(categoriesCacheKey); cached != nil {
		if list, ok := cached.([]gin.H); ok {
			Success(c, gin.H{"categories": list, "count": len(list)})
			return
		}
	}

	var categories []models.Category
	if err := db.DB.Order("id ASC").Find(&categories).Error; err != nil {
		Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	list := make([]gin.H, 0, len(categories))
	for _, category := range categories {
		var itemCount int64
		db.DB.Model(&models.Item{}).Where("category = ?", category.Name).Count(&itemCount)
		list = append(list, gin.H{
			"id":          category.ID,
			"name":        category.Name,
			"emoji":       category.Emoji,
			"description": category.Description,
			"item_count":  itemCount,
		})
	}

	utils.GetCache().Set(categoriesCacheKey, list, 1*time.Minute)

	Success(c, gin.H{"categories": list, "count": len(list)})
}
