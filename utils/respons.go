package utils

import (
	"time"

	"github.com/gin-gonic/gin"
)

// JSONResponse is the envelope wrapped around every API response.
type JSONResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

func RespondJSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, JSONResponse{
		Success:   code >= 200 && code < 300,
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Success:   false,
		Error:     err.Error(),
		Timestamp: time.Now().UTC(),
	})
}
