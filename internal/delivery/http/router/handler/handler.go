// Package handler contains the HTTP handlers for the application.
package handler

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// prefersJSON reports whether the request's Accept header ranks
// application/json ahead of text/html. API clients get the bare payload,
// browsers get the standard envelope.
func prefersJSON(c echo.Context) bool {
	accept := c.Request().Header.Get(echo.HeaderAccept)
	jsonIdx := strings.Index(accept, echo.MIMEApplicationJSON)
	if jsonIdx < 0 {
		return false
	}
	htmlIdx := strings.Index(accept, echo.MIMETextHTML)

	return htmlIdx < 0 || jsonIdx < htmlIdx
}

// pageParam reads the 1-based ?page query parameter, defaulting to 1.
func pageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}

	return page
}
