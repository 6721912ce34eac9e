package controllers

import (
	"time"

	"github.com/yeremiapane/ecommerce-api/models"
)

// Response shapes are written out by hand so the JSON contract does not move
// when a model grows a column.

type CustomerResponse struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zip_code"`
	Email         string `json:"email"`
}

type CatalogItemResponse struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type OrderResponse struct {
	ID         uint      `json:"id"`
	OrderDate  time.Time `json:"order_date"`
	CustomerID uint      `json:"customer_id"`
}

type OrderItemResponse struct {
	OrderID uint `json:"order_id"`
	ItemID  uint `json:"item_id"`
}

func NewCustomerResponse(c models.Customer) CustomerResponse {
	return CustomerResponse{
		ID:            c.ID,
		Name:          c.Name,
		StreetAddress: c.StreetAddress,
		City:          c.City,
		State:         c.State,
		ZipCode:       c.ZipCode,
		Email:         c.Email,
	}
}

func NewCustomerResponses(customers []models.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, NewCustomerResponse(c))
	}
	return out
}

func NewCatalogItemResponse(item models.CatalogItem) CatalogItemResponse {
	return CatalogItemResponse{
		ID:    item.ID,
		Name:  item.Name,
		Price: item.Price,
	}
}

func NewCatalogItemResponses(items []models.CatalogItem) []CatalogItemResponse {
	out := make([]CatalogItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, NewCatalogItemResponse(item))
	}
	return out
}

func NewOrderResponse(o models.Order) OrderResponse {
	return OrderResponse{
		ID:         o.ID,
		OrderDate:  o.OrderDate.UTC(),
		CustomerID: o.CustomerID,
	}
}

func NewOrderResponses(orders []models.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, NewOrderResponse(o))
	}
	return out
}

func NewOrderItemResponse(link models.OrderItem) OrderItemResponse {
	return OrderItemResponse{OrderID: link.OrderID, ItemID: link.CatalogItemID}
}
