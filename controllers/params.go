package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/ecommerce-api/utils"
)

// paramID reads a positive integer id from the path.
func paramID(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, utils.Validationf("invalid %s %q", name, raw)
	}
	return uint(id), nil
}

func bindJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return &utils.CustomError{
			Kind:    utils.KindValidation,
			Message: "invalid request body: " + err.Error(),
			Err:     err,
		}
	}
	return nil
}
