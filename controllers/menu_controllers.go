package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"restaurant-backoffice/models"
	"restaurant-backoffice/utils"
)

type MenuController struct {
	DB        *gorm.DB
	UploadDir string
}

func NewMenuController(db *gorm.DB, uploadDir string) *MenuController {
	return &MenuController{DB: db, UploadDir: uploadDir}
}

type menuInput struct {
	Name        string
	Description string
	Category    string
	IsVisible   bool
	ImageURL    string
	ProductIDs  []int
}

var errInvalidProductIDs = errors.New("invalid product_ids format")

// bindMenuInput accepts a multipart form (product_ids as a JSON-encoded
// array string) or a JSON body. Visibility defaults to true and category to
// "main" when absent.
func (mc *MenuController) bindMenuInput(c *gin.Context) (menuInput, error) {
	var in menuInput

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if file, err := c.FormFile("image"); err == nil {
			in.ImageURL = utils.SaveImage(c, file, mc.UploadDir)
		}
		in.Name = strings.TrimSpace(c.PostForm("name"))
		in.Description = c.PostForm("description")
		in.Category = c.DefaultPostForm("category", "main")
		in.IsVisible = strings.ToLower(c.DefaultPostForm("is_visible", "true")) == "true"

		raw := c.DefaultPostForm("product_ids", "[]")
		var ids []interface{}
		if err := json.Unmarshal([]byte(raw), &ids); err != nil {
			return in, errInvalidProductIDs
		}
		for _, id := range ids {
			in.ProductIDs = append(in.ProductIDs, utils.SafeInt(id))
		}
		return in, nil
	}

	var body struct {
		Name        string        `json:"name"`
		Description string        `json:"description"`
		Category    string        `json:"category"`
		IsVisible   *bool         `json:"is_visible"`
		ProductIDs  []interface{} `json:"product_ids"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		return in, err
	}
	in.Name = strings.TrimSpace(body.Name)
	in.Description = body.Description
	in.Category = body.Category
	if in.Category == "" {
		in.Category = "main"
	}
	in.IsVisible = body.IsVisible == nil || *body.IsVisible
	for _, id := range body.ProductIDs {
		in.ProductIDs = append(in.ProductIDs, utils.SafeInt(id))
	}
	return in, nil
}

// resolveProductIDs keeps only ids that exist in the catalog. Non-positive
// and unknown ids are dropped without complaint.
func resolveProductIDs(tx *gorm.DB, ids []int) ([]uint, error) {
	var candidates []int
	for _, id := range ids {
		if id > 0 {
			candidates = append(candidates, id)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	var resolved []uint
	err := tx.Model(&models.Product{}).Where("id IN ?", candidates).Pluck("id", &resolved).Error
	return resolved, err
}

// GetAllMenus -> menus newest first, each with its products sorted by name.
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	var menus []models.Menu
	err := mc.DB.Order("created_at DESC").
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Order("products.name")
		}).
		Find(&menus).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	for i := range menus {
		if menus[i].Products == nil {
			menus[i].Products = []models.Product{}
		}
	}
	c.JSON(http.StatusOK, menus)
}

// CreateMenu -> requires a name and at least one product id. Ids that do not
// resolve are skipped, so the stored set may end up smaller than requested.
func (mc *MenuController) CreateMenu(c *gin.Context) {
	in, err := mc.bindMenuInput(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if in.Name == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("menu name is required"))
		return
	}
	if len(in.ProductIDs) == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("at least one product must be selected"))
		return
	}

	menu := models.Menu{
		Name:        in.Name,
		Description: in.Description,
		IsVisible:   in.IsVisible,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		CreatedAt:   time.Now(),
	}

	err = mc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Products").Create(&menu).Error; err != nil {
			return err
		}
		resolved, err := resolveProductIDs(tx, in.ProductIDs)
		if err != nil {
			return err
		}
		for _, pid := range resolved {
			if err := tx.Exec("INSERT INTO menu_products (menu_id, product_id) VALUES (?, ?)", menu.ID, pid).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Menu created successfully",
		"id":      menu.ID,
	})
}

// UpdateMenu -> replaces the association set wholesale: delete all links,
// insert the new set. Unlike creation, an empty set is legal here.
func (mc *MenuController) UpdateMenu(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("menu_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu id"))
		return
	}

	in, err := mc.bindMenuInput(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if in.Name == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("menu name is required"))
		return
	}

	if in.ImageURL == "" {
		var existing models.Menu
		if err := mc.DB.Select("image_url").First(&existing, id).Error; err == nil {
			in.ImageURL = existing.ImageURL
		}
	}

	err = mc.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"name":        in.Name,
			"description": in.Description,
			"is_visible":  in.IsVisible,
			"category":    in.Category,
			"image_url":   in.ImageURL,
		}
		if err := tx.Model(&models.Menu{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}

		if err := tx.Exec("DELETE FROM menu_products WHERE menu_id = ?", id).Error; err != nil {
			return err
		}
		resolved, err := resolveProductIDs(tx, in.ProductIDs)
		if err != nil {
			return err
		}
		for _, pid := range resolved {
			if err := tx.Exec("INSERT INTO menu_products (menu_id, product_id) VALUES (?, ?)", id, pid).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Menu updated successfully"})
}

// DeleteMenu -> drops the menu together with its association rows.
func (mc *MenuController) DeleteMenu(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("menu_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu id"))
		return
	}

	if err := mc.DB.Select(clause.Associations).Delete(&models.Menu{ID: uint(id)}).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Menu deleted successfully"})
}
