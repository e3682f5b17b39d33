package response

import (
	"github.com/gin-gonic/gin"

	apiError "dormwatch/errors"
)

// JSON writes the API response. Errors always come out as {"error": <msg>}
// with a safe message; internal detail never reaches the body. Success data
// is emitted as-is, with the message merged in when both are present.
func JSON(c *gin.Context, message string, status int, data interface{}, err error) {
	if err != nil {
		c.JSON(status, gin.H{"error": errMessage(message, err)})
		return
	}

	switch body := data.(type) {
	case nil:
		c.JSON(status, gin.H{"message": message})
	case gin.H:
		if message != "" {
			body["message"] = message
		}
		c.JSON(status, body)
	default:
		c.JSON(status, body)
	}
}

func errMessage(message string, err error) string {
	if apiErr, ok := err.(*apiError.Error); ok {
		return apiErr.Message
	}
	if message != "" {
		return message
	}
	return apiError.ErrInternalServerError.Message
}
