package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"findit/internal/db"
	"findit/internal/models"
	"findit/internal/services"
	"findit/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ItemHandler struct {
	uploads *services.UploadService
}

func NewItemHandler() *ItemHandler {
	return &ItemHandler{
		uploads: services.NewUploadService(),
	}
}

// itemSummary shapes an item for list responses.
func itemSummary(item models.Item) gin.H {
	return gin.H{
		"id":            item.ID,
		"title":         item.Title,
		"description":   item.Description,
		"status":        item.Status,
		"category":      item.Category,
		"location":      item.Location,
		"date":          item.Date,
		"time":          item.Time,
		"posted_by":     item.PostedBy,
		"contact":       item.Contact,
		"reward":        item.Reward,
		"image_path":    item.ImagePath,
		"image":         utils.CategoryEmoji(item.Category),
		"views":         item.Views,
		"date_reported": item.CreatedAt.Format(time.RFC3339),
	}
}

// itemDetail adds the fields only the detail page shows.
func itemDetail(item models.Item) gin.H {
	detail := itemSummary(item)
	detail["additional_info"] = item.AdditionalInfo
	detail["current_location"] = item.CurrentLocation
	detail["user_id"] = item.UserID
	return detail
}

// List handles GET /api/items. Filters combine with AND; unmatched filters
// are simply absent.
func (h *ItemHandler) List(c *gin.Context) {
	query := db.DB.Model(&models.Item{}).Order("created_at DESC")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if userID := c.Query("user_id"); userID != "" {
		query = query.Where("user_id = ?", utils.StringToInt(userID))
	}
	if search := c.Query("search"); search != "" {
		// LOWER/LIKE instead of ILIKE so the same query runs on SQLite
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var items []models.Item
	if err := query.Find(&items).Error; err != nil {
		Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	list := make([]gin.H, 0, len(items))
	for _, item := range items {
		list = append(list, itemSummary(item))
	}

	Success(c, gin.H{"items": list, "count": len(list)})
}

// Detail handles GET /api/items/:id. Every successful read counts a view.
func (h *ItemHandler) Detail(c *gin.Context) {
	id, ok := utils.StringToUint(c.Param("id"))
	if !ok {
		Fail(c, http.StatusNotFound, "Item not found")
		return
	}

	var item models.Item
	if err := db.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			Fail(c, http.StatusNotFound, "Item not found")
			return
		}
		Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	// DB-side increment so concurrent reads never lose a view
	if err := db.DB.Model(&item).UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		Fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	item.Views++

	Success(c, gin.H{"item": itemDetail(item)})
}

// ReportLost handles POST /api/report-lost (multipart).
func (h *ItemHandler) ReportLost(c *gin.Context) {
	h.report(c, models.ItemStatusLost)
}

// ReportFound handles POST /api/report-found (multipart).
func (h *ItemHandler) ReportFound(c *gin.Context) {
	h.report(c, models.ItemStatusFound)
}

func (h *ItemHandler) report(c *gin.Context, status models.ItemStatus) {
	dateField, timeField := "dateLost", "timeLost"
	message := "Lost item reported successfully!"
	if status == models.ItemStatusFound {
		dateField, timeField = "dateFound", "timeFound"
		message = "Found item reported successfully!"
	}

	required := []string{"itemName", "category", "description", "location", dateField, "contactInfo"}
	for _, field := range required {
		if _, ok := c.GetPostForm(field); !ok {
			Fail(c, http.StatusBadRequest, "Missing required field: "+field)
			return
		}
	}

	imagePath := ""
	if file, header, err := c.Request.FormFile("itemImage"); err == nil {
		defer file.Close()

		if ct := header.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
			Fail(c, http.StatusBadRequest, "Only image uploads are allowed")
			return
		}
		if header.Size > 10*1024*1024 {
			Fail(c, http.StatusBadRequest, "Image must be smaller than 10MB")
			return
		}

		stored, err := h.uploads.Store(file, header)
		if err != nil {
			Fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		imagePath = stored
	}

	// An unknown user_id is ignored, not an error: reports may be anonymous.
	var ownerID *uint
	if raw := c.PostForm("user_id"); raw != "" {
		if id, ok := utils.StringToUint(raw); ok {
			var owner models.User
			if err := db.DB.First(&owner, id).Error; err == nil {
				ownerID = &owner.ID
			}
		}
	}

	contact := c.PostForm("contactInfo")
	item := models.Item{
		UserID:         ownerID,
		Title:          c.PostForm("itemName"),
		Description:    utils.CleanText(c.PostForm("description")),
		Status:         status,
		Category:       c.PostForm("category"),
		Location:       c.PostForm("location"),
		Date:           c.PostForm(dateField),
		Time:           c.PostForm(timeField),
		PostedBy:       utils.DisplayNameFromContact(contact),
		Contact:        contact,
		AdditionalInfo: utils.CleanText(c.PostForm("additionalInfo")),
		ImagePath:      imagePath,
	}
	if status == models.ItemStatusLost {
		item.Reward = c.PostForm("reward")
	} else {
		item.CurrentLocation = c.PostForm("currentLocation")
	}

	if err := db.DB.Create(&item).Error; err != nil {
		Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	services.RecordActivity(ownerID, &item.ID, "report_"+string(status), item.Title, c.ClientIP())

	Success(c, gin.H{"message": message, "item_id": item.ID})
}

// Delete handles DELETE /api/items/:id. Claims go with the item;
// notifications keep their row but lose the item reference.
func (h *ItemHandler) Delete(c *gin.Context) {
	id, ok := utils.StringToUint(c.Param("id"))
	if !ok {
		Fail(c, http.StatusNotFound, "Item not found")
		return
	}

	var item models.Item
	if err := db.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			Fail(c, http.StatusNotFound, "Item not found")
			return
		}
		Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("item_id = ?", item.ID).Delete(&models.Claim{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Notification{}).Where("item_id = ?", item.ID).Update("item_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.ActivityLog{}).Where("item_id = ?", item.ID).Update("item_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
	if err != nil {
		Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	services.RecordActivity(item.UserID, nil, "delete_item", item.Title, c.ClientIP())

	Success(c, gin.H{"message": "Item deleted successfully"})
}

// Recover handles POST /api/items/:id/recover. No transition guard: any
// status goes straight to recovered.
func (h *ItemHandler) Recover(c *gin.Context) {
	id, ok := utils.StringToUint(c.Param("id"))
	if !ok {
		Fail(c, http.StatusNotFound, "Item not found")
		return
	}

	var item models.Item
	if err := db.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			Fail(c, http.StatusNotFound, "Item not found")
			return
		}
		Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	if err := db.DB.Model(&item).Update("status", models.ItemStatusRecovered).Error; err != nil {
		Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	services.RecordActivity(item.UserID, &item.ID, "recover_item", item.Title, c.ClientIP())

	Success(c, gin.H{"message": "Item marked as recovered"})
}
