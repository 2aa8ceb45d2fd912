package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"restaurant-backoffice/models"
)

func TestCreateMenuValidation(t *testing.T) {
	db := setupTestDB(t)
	r, _ := newTestRouter(t, db)

	w := doJSON(t, r, http.MethodPost, "/api/menus", map[string]interface{}{
		"name":        "Main Menu",
		"product_ids": []int{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/menus", map[string]interface{}{
		"product_ids": []int{1},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.EqualValues(t, 0, countRows(t, db, "menus"))
}

func TestCreateMenuSkipsUnresolvableIDs(t *testing.T) {
	db := setupTestDB(t)
	r, _ := newTestRouter(t, db)

	product := createProduct(t, db, "Burger", 9.99)

	w := doJSON(t, r, http.MethodPost, "/api/menus", map[string]interface{}{
		"name":        "Lunch Specials",
		"category":    "lunch",
		"product_ids": []interface{}{product.ID, 9999, 0, -3},
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeBody(t, w)
	assert.Contains(t, resp, "id")

	assert.EqualValues(t, 1, countRows(t, db, "menu_products"))
}

func TestListMenusWithProductsSortedByName(t *testing.T) {
	db := setupTestDB(t)
	r, _ := newTestRouter(t, db)

	burger := createProduct(t, db, "Burger", 9.99)
	pie := createProduct(t, db, "Apple Pie", 4.99)
	salad := createProduct(t, db, "Caesar Salad", 7.99)

	menu := models.Menu{Name: "Main Menu", IsVisible: true, Category: "main"}
	assert.NoError(t, db.Omit("Products").Create(&menu).Error)
	for _, p := range []models.Product{burger, pie, salad} {
		linkMenuProduct(t, db, menu.ID, p.ID)
	}

	w := doJSON(t, r, http.MethodGet, "/api/menus", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var menus []struct {
		Name     string `json:"name"`
		Products []struct {
			Name string `json:"name"`
		} `json:"products"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &menus))
	assert.Len(t, menus, 1)
	assert.Len(t, menus[0].Products, 3)
	assert.Equal(t, "Apple Pie", menus[0].Products[0].Name)
	assert.Equal(t, "Burger", menus[0].Products[1].Name)
	assert.Equal(t, "Caesar Salad", menus[0].Products[2].Name)
}

func TestUpdateMenuReplacesAssociations(t *testing.T) {
	db := setupTestDB(t)
	r, _ := newTestRouter(t, db)

	first := createProduct(t, db, "Burger", 9.99)
	second := createProduct(t, db, "Salad", 7.99)

	menu := models.Menu{Name: "Main Menu", IsVisible: true, Category: "main"}
	assert.NoError(t, db.Omit("Products").Create(&menu).Error)
	linkMenuProduct(t, db, menu.ID, first.ID)

	w := doJSON(t, r, http.MethodPut, "/api/menus/1", map[string]interface{}{
		"name":        "Main Menu",
		"product_ids": []interface{}{second.ID},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var linked []uint
	assert.NoError(t, db.Table("menu_products").Where("menu_id = ?", menu.ID).Pluck("product_id", &linked).Error)
	assert.Equal(t, []uint{second.ID}, linked)
}

func TestUpdateMenuAcceptsEmptyProductSet(t *testing.T) {
	db := setupTestDB(t)
	r, _ := newTestRouter(t, db)

	product := createProduct(t, db, "Burger", 9.99)
	menu := models.Menu{Name: "Main Menu", IsVisible: true, Category: "main"}
	assert.NoError(t, db.Omit("Products").Create(&menu).Error)
	linkMenuProduct(t, db, menu.ID, product.ID)

	// Only creation enforces a non-empty set; an update may clear it.
	w := doJSON(t, r, http.MethodPut, "/api/menus/1", map[string]interface{}{
		"name":        "Main Menu",
		"product_ids": []interface{}{},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, countRows(t, db, "menu_products"))
	assert.EqualValues(t, 1, countRows(t, db, "menus"))
}

func TestDeleteMenuRemovesAssociations(t *testing.T) {
	db := setupTestDB(t)
	r, _ := newTestRouter(t, db)

	product := createProduct(t, db, "Burger", 9.99)
	menu := models.Menu{Name: "Main Menu", IsVisible: true, Category: "main"}
	assert.NoError(t, db.Omit("Products").Create(&menu).Error)
	linkMenuProduct(t, db, menu.ID, product.ID)

	w := doJSON(t, r, http.MethodDelete, "/api/menus/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	assert.EqualValues(t, 0, countRows(t, db, "menus"))
	assert.EqualValues(t, 0, countRows(t, db, "menu_products"))
	assert.EqualValues(t, 1, countRows(t, db, "products"))
}
