package dto

import (
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var errEmptyBody = errors.New("request body is empty")

// BindJSON decodes the request body into obj, trims it with SanitizeStruct
// and only then runs the binding rules, so padded input is judged by its
// trimmed value.
func BindJSON(c *gin.Context, obj interface{}) error {
	if c.Request == nil || c.Request.Body == nil {
		return errEmptyBody
	}
	if err := json.NewDecoder(c.Request.Body).Decode(obj); err != nil {
		return err
	}
	SanitizeStruct(obj)
	return binding.Validator.ValidateStruct(obj)
}
