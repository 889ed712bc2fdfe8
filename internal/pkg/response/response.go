package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// Invalid reports request-validation failures as a 400 with one message
// per failing field.
func Invalid(c *gin.Context, errs []string) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
}
