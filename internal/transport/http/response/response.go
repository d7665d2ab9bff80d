package response

import "github.com/gin-gonic/gin"

// Bodies match the public API contract directly: failures are
// {"error": message}, successes carry a message plus any payload fields.

type ErrorBody struct {
	Error string `json:"error"`
}

func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, ErrorBody{Error: message})
}

func Message(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, gin.H{"message": message})
}
