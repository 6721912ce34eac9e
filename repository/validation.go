package repository

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/yeremiapane/ecommerce-api/utils"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Pakai nama field JSON di pesan error
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// CustomerInput carries every mutable customer field for create and update.
type CustomerInput struct {
	Name          string `json:"name" validate:"required,max=50"`
	StreetAddress string `json:"street_address" validate:"required,max=50"`
	City          string `json:"city" validate:"required,max=20"`
	State         string `json:"state" validate:"required,len=2,alpha"`
	ZipCode       string `json:"zip_code" validate:"required,len=5,number"`
	Email         string `json:"email" validate:"required,max=200,email"`
}

func (in *CustomerInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.StreetAddress = strings.TrimSpace(in.StreetAddress)
	in.City = strings.TrimSpace(in.City)
	in.State = strings.ToUpper(strings.TrimSpace(in.State))
	in.ZipCode = strings.TrimSpace(in.ZipCode)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
}

type CatalogItemInput struct {
	Name  string   `json:"name" validate:"required,max=50"`
	Price *float64 `json:"price" validate:"required,gte=0,lte=99999999.99"`
}

func (in *CatalogItemInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
}

// OrderInput creates an order. OrderDate defaults to the creation time.
type OrderInput struct {
	CustomerID uint       `json:"customer_id" validate:"required"`
	OrderDate  *time.Time `json:"order_date"`
}

// OrderUpdateInput holds the only mutable order field; the owning customer
// cannot be changed.
type OrderUpdateInput struct {
	OrderDate *time.Time `json:"order_date" validate:"required"`
}

func validateInput(in interface{}) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return utils.ErrValidation.Wrap(err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return &utils.CustomError{
		Kind:    utils.KindValidation,
		Message: "invalid input: " + strings.Join(msgs, "; "),
		Err:     err,
	}
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", fe.Field(), fe.Param())
	case "email":
		return fe.Field() + " must be a valid email address"
	case "alpha":
		return fe.Field() + " must contain only letters"
	case "number":
		return fe.Field() + " must contain only digits"
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
