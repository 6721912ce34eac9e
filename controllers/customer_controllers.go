package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/ecommerce-api/repository"
	"github.com/yeremiapane/ecommerce-api/utils"
)

type CustomerController struct {
	Customers *repository.CustomerRepository
	Orders    *repository.AssociationManager
}

func NewCustomerController(customers *repository.CustomerRepository, assoc *repository.AssociationManager) *CustomerController {
	return &CustomerController{Customers: customers, Orders: assoc}
}

// GetAllCustomers -> semua customer, urut berdasarkan id
func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	customers, err := cc.Customers.List(c.Request.Context())
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of customers", NewCustomerResponses(customers))
}

// GetCustomerByID -> 404 kalau customer tidak ada
func (cc *CustomerController) GetCustomerByID(c *gin.Context) {
	id, err := paramID(c, "customer_id")
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	customer, err := cc.Customers.Get(c.Request.Context(), id)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customer detail", NewCustomerResponse(customer))
}

// CreateCustomer -> email harus unik (tanpa beda huruf besar/kecil)
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var req repository.CustomerInput
	if err := bindJSON(c, &req); err != nil {
		utils.RespondAppError(c, err)
		return
	}

	customer, err := cc.Customers.Create(c.Request.Context(), req)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Customer created", NewCustomerResponse(customer))
}

// UpdateCustomer replaces every customer field.
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	id, err := paramID(c, "customer_id")
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	var req repository.CustomerInput
	if err := bindJSON(c, &req); err != nil {
		utils.RespondAppError(c, err)
		return
	}

	customer, err := cc.Customers.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customer updated", NewCustomerResponse(customer))
}

// DeleteCustomer -> ikut menghapus semua order milik customer
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	id, err := paramID(c, "customer_id")
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	if err := cc.Customers.Delete(c.Request.Context(), id); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customer deleted", gin.H{"customer_id": id})
}

// GetCustomerOrders -> semua order milik satu customer
func (cc *CustomerController) GetCustomerOrders(c *gin.Context) {
	id, err := paramID(c, "customer_id")
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	orders, err := cc.Orders.ListOrdersForCustomer(c.Request.Context(), id)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Orders for customer", NewOrderResponses(orders))
}
