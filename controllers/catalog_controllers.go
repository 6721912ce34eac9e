package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/ecommerce-api/repository"
	"github.com/yeremiapane/ecommerce-api/utils"
)

type CatalogController struct {
	Catalog *repository.CatalogRepository
}

func NewCatalogController(catalog *repository.CatalogRepository) *CatalogController {
	return &CatalogController{Catalog: catalog}
}

// GetAllItems -> semua item katalog, urut berdasarkan id
func (cc *CatalogController) GetAllItems(c *gin.Context) {
	items, err := cc.Catalog.List(c.Request.Context())
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of catalog items", NewCatalogItemResponses(items))
}

// GetItemByID -> 404 kalau item tidak ada
func (cc *CatalogController) GetItemByID(c *gin.Context) {
	id, err := paramID(c, "item_id")
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	item, err := cc.Catalog.Get(c.Request.Context(), id)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Catalog item detail", NewCatalogItemResponse(item))
}

// CreateItem -> nama harus unik, harga tidak boleh negatif
func (cc *CatalogController) CreateItem(c *gin.Context) {
	var req repository.CatalogItemInput
	if err := bindJSON(c, &req); err != nil {
		utils.RespondAppError(c, err)
		return
	}

	item, err := cc.Catalog.Create(c.Request.Context(), req)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Catalog item created", NewCatalogItemResponse(item))
}

// UpdateItem -> mengganti nama dan harga item
func (cc *CatalogController) UpdateItem(c *gin.Context) {
	id, err := paramID(c, "item_id")
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	var req repository.CatalogItemInput
	if err := bindJSON(c, &req); err != nil {
		utils.RespondAppError(c, err)
		return
	}

	item, err := cc.Catalog.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Catalog item updated", NewCatalogItemResponse(item))
}

// DeleteItem -> item juga dilepas dari semua order
func (cc *CatalogController) DeleteItem(c *gin.Context) {
	id, err := paramID(c, "item_id")
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	if err := cc.Catalog.Delete(c.Request.Context(), id); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Catalog item deleted", gin.H{"item_id": id})
}
