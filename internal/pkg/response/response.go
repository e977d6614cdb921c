package response

import "github.com/gin-gonic/gin"

// Success отправляет конверт {"status":"success"} с дополнительными полями.
func Success(c *gin.Context, statusCode int, extra gin.H) {
	payload := gin.H{"status": "success"}
	for k, v := range extra {
		payload[k] = v
	}
	c.JSON(statusCode, payload)
}

// SuccessMessage отправляет успешный конверт с одним сообщением.
func SuccessMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"status":  "success",
		"message": message,
	})
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"status":  "error",
		"message": message,
	})
}
