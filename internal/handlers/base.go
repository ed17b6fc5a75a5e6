package handlers

import (
	"github.com/gin-gonic/gin"
)

// JSONError writes the short error body the REST surface uses. REST clients
// get explicit status codes and do their own retry; the frame surface never
// uses this (it degrades to the entry document instead).
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}
