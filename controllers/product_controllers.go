package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"restaurant-backoffice/models"
	"restaurant-backoffice/utils"
)

type ProductController struct {
	DB        *gorm.DB
	UploadDir string
}

func NewProductController(db *gorm.DB, uploadDir string) *ProductController {
	return &ProductController{DB: db, UploadDir: uploadDir}
}

// productInput is the common shape of the multipart and JSON request bodies.
type productInput struct {
	Name        string
	Category    string
	Description string
	Price       float64
	ImageURL    string
}

// bindProductInput accepts either a multipart form (with an optional "image"
// file) or a JSON body. An upload with a disallowed extension is silently
// dropped, never an error.
func (pc *ProductController) bindProductInput(c *gin.Context) (productInput, error) {
	var in productInput

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if file, err := c.FormFile("image"); err == nil {
			in.ImageURL = utils.SaveImage(c, file, pc.UploadDir)
		}
		in.Name = strings.TrimSpace(c.PostForm("name"))
		in.Category = strings.TrimSpace(c.PostForm("category"))
		in.Description = strings.TrimSpace(c.PostForm("description"))
		in.Price = utils.SafeFloat(c.PostForm("price"))
		return in, nil
	}

	var body struct {
		Name        string      `json:"name"`
		Category    string      `json:"category"`
		Description string      `json:"description"`
		Price       interface{} `json:"price"`
		ImageURL    string      `json:"image_url"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		return in, err
	}
	in.Name = strings.TrimSpace(body.Name)
	in.Category = strings.TrimSpace(body.Category)
	in.Description = strings.TrimSpace(body.Description)
	in.Price = utils.SafeFloat(body.Price)
	in.ImageURL = body.ImageURL
	return in, nil
}

// GetAllProducts -> full catalog, newest first.
func (pc *ProductController) GetAllProducts(c *gin.Context) {
	var products []models.Product
	if err := pc.DB.Order("created_at DESC").Find(&products).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// CreateProduct -> new catalog entry with optional image upload.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	in, err := pc.bindProductInput(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if in.Name == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("product name is required"))
		return
	}
	if in.Price <= 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("price must be greater than 0"))
		return
	}

	product := models.Product{
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		CreatedAt:   time.Now(),
	}
	if err := pc.DB.Create(&product).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"id":      product.ID,
		"product": product,
	})
}

// UpdateProduct -> in-place update; an omitted image keeps the stored one.
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("product_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid product id"))
		return
	}

	in, err := pc.bindProductInput(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if in.ImageURL == "" {
		var existing models.Product
		if err := pc.DB.Select("image_url").First(&existing, id).Error; err == nil {
			in.ImageURL = existing.ImageURL
		}
	}

	updates := map[string]interface{}{
		"name":        in.Name,
		"category":    in.Category,
		"description": in.Description,
		"price":       in.Price,
		"image_url":   in.ImageURL,
	}
	if err := pc.DB.Model(&models.Product{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
}

// DeleteProduct -> removes the product and everything referencing it.
// Menu associations and order-item rows must go first or the product delete
// trips the foreign keys.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("product_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid product id"))
		return
	}

	err = pc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM menu_products WHERE product_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, id).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
