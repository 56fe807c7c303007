package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var ErrRouteNotFound = errors.New("route not found")

// Response is the JSON error body. Detail carries structured context such as
// the conflicting windows of a rejected reservation.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, msg string, detail any) Response {
	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail
	return resp
}

// Record attaches err to the context as a public error carrying the response
// body. The error middleware renders it when nothing has been written yet.
func Record(c *gin.Context, status int, err error, msg string, detail any) Response {
	if err == nil {
		panic("httperr.Record: err cannot be nil")
	}
	resp := NewResponse(status, msg, detail)
	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	return resp
}

// AbortWithError records err and writes the response immediately.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	resp := Record(c, status, err, msg, detail)
	c.AbortWithStatusJSON(status, resp)
}

// NoRoute answers unknown paths with the standard error body.
func NoRoute(c *gin.Context) {
	Record(c, http.StatusNotFound, ErrRouteNotFound, "Route not found", gin.H{"path": c.Request.URL.Path})
}
