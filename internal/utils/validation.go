package utils

import (
	"github.com/gin-gonic/gin"
)

// BindAndValidate binds the request body to a struct, running the binding
// rules declared on its fields. On failure it sends a BadRequest response and
// returns false.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		BadRequest(c, "Invalid request payload: "+err.Error())
		return false
	}
	return true
}
