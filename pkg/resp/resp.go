package resp

import (
	"net/http"

	"foodorder/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": msg})
}
func ServerError(c *gin.Context, err error) {
	log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal error"})
}

// StatusOf maps a service error kind to an HTTP status.
func StatusOf(err error) int {
	switch services.KindOf(err) {
	case services.KindValidation:
		return http.StatusBadRequest
	case services.KindAuthorization:
		return http.StatusForbidden
	case services.KindNotFound:
		return http.StatusNotFound
	case services.KindConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// Error writes a service error; infrastructure errors are logged and hidden.
func Error(c *gin.Context, err error) {
	code := StatusOf(err)
	if code == http.StatusInternalServerError {
		ServerError(c, err)
		return
	}
	c.JSON(code, gin.H{"ok": false, "error": err.Error()})
}

// Flash writes the result of a dispatched action: the flash message, where
// the page should go next, and the data for the page.
func Flash(c *gin.Context, code int, kind, msg, redirect string, data any) {
	body := gin.H{"ok": code < 400, "redirect": redirect}
	if msg != "" {
		body["flash"] = gin.H{"kind": kind, "message": msg}
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(code, body)
}
