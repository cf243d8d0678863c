package middlewares

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lastortilhas/restaurant-api/utils"
)

// Recovery converts panics anywhere below the router into a 500
// envelope. The panic detail is only echoed to the client outside
// production.
func Recovery(production bool) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		utils.ErrorLogger.Printf("panic in %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)

		err := errors.New("internal server error")
		if !production {
			err = fmt.Errorf("internal server error: %v", recovered)
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		c.Abort()
	})
}
