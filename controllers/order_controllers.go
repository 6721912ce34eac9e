package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/ecommerce-api/repository"
	"github.com/yeremiapane/ecommerce-api/utils"
)

type OrderController struct {
	Orders *repository.OrderRepository
	Assoc  *repository.AssociationManager
}

func NewOrderController(orders *repository.OrderRepository, assoc *repository.AssociationManager) *OrderController {
	return &OrderController{Orders: orders, Assoc: assoc}
}

// GetAllOrders -> semua order, urut berdasarkan id
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.Orders.List(c.Request.Context())
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", NewOrderResponses(orders))
}

// CreateOrder -> butuh customer_id yang valid, order_date opsional
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req repository.OrderInput
	if err := bindJSON(c, &req); err != nil {
		utils.RespondAppError(c, err)
		return
	}

	order, err := oc.Assoc.CreateOrder(c.Request.Context(), req)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Order created", NewOrderResponse(order))
}

// GetOrderByID -> 404 kalau order tidak ada
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, err := paramID(c, "order_id")
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	order, err := oc.Orders.Get(c.Request.Context(), id)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", NewOrderResponse(order))
}

// UpdateOrder changes the order date. The owning customer cannot change.
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	id, err := paramID(c, "order_id")
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	var req repository.OrderUpdateInput
	if err := bindJSON(c, &req); err != nil {
		utils.RespondAppError(c, err)
		return
	}

	order, err := oc.Orders.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order updated", NewOrderResponse(order))
}

// DeleteOrder -> ikut melepas semua item dari order
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, err := paramID(c, "order_id")
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	if err := oc.Orders.Delete(c.Request.Context(), id); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order deleted", gin.H{"order_id": id})
}

/*
========================================
 ORDER ITEMS
========================================
*/

// GetOrderItems -> semua item katalog di dalam order
func (oc *OrderController) GetOrderItems(c *gin.Context) {
	id, err := paramID(c, "order_id")
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	items, err := oc.Assoc.ListItemsForOrder(c.Request.Context(), id)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Items in order", NewCatalogItemResponses(items))
}

// AttachItem -> 409 kalau item sudah ada di order
func (oc *OrderController) AttachItem(c *gin.Context) {
	orderID, itemID, err := orderItemParams(c)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	link, err := oc.Assoc.AttachItem(c.Request.Context(), orderID, itemID)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Item added to order", NewOrderItemResponse(link))
}

// DetachItem -> 404 kalau item tidak ada di order
func (oc *OrderController) DetachItem(c *gin.Context) {
	orderID, itemID, err := orderItemParams(c)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	if err := oc.Assoc.DetachItem(c.Request.Context(), orderID, itemID); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item removed from order", OrderItemResponse{OrderID: orderID, ItemID: itemID})
}

func orderItemParams(c *gin.Context) (orderID, itemID uint, err error) {
	if orderID, err = paramID(c, "order_id"); err != nil {
		return 0, 0, err
	}
	if itemID, err = paramID(c, "item_id"); err != nil {
		return 0, 0, err
	}
	return orderID, itemID, nil
}
