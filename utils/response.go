package utils

import "github.com/gin-gonic/gin"

// Uniform response envelope: {success, message, data?, errors?}.

func JSONSuccess(c *gin.Context, code int, message string, data interface{}) {
	body := gin.H{"success": true, "message": message}
	if data != nil {
		body["data"] = data
	}
	c.JSON(code, body)
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "message": message})
}

// JSONValidationError carries field-level detail alongside the message.
func JSONValidationError(c *gin.Context, code int, message string, errs interface{}) {
	c.JSON(code, gin.H{"success": false, "message": message, "errors": errs})
}
