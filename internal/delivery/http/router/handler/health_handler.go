package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Ping is a simple handler to check if the service is up.
func Ping(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "pong!",
		"status":  "success",
	})
}
