package response

import (
	"encoding/xml"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
)

// ErrorDetails is the body of every failed request.
type ErrorDetails struct {
	StatusCode int    `json:"statusCode" xml:"statusCode"`
	Message    string `json:"message" xml:"message"`
}

// List wraps slices for XML, which has no bare array form.
type List struct {
	XMLName xml.Name `xml:"list"`
	Items   any      `xml:"item"`
}

var offered = []string{gin.MIMEJSON, gin.MIMEXML}

// render honours the Accept header: XML when the client asks for it, JSON
// for everything else including unmatched types.
func render(c *gin.Context, status int, data any) {
	if c.NegotiateFormat(offered...) != gin.MIMEXML {
		c.JSON(status, data)
		return
	}
	if v := reflect.ValueOf(data); v.Kind() == reflect.Slice {
		data = List{Items: data}
	}
	c.XML(status, data)
}

func Success(c *gin.Context, status int, data any) {
	render(c, status, data)
}

// Created writes a 201 with a Location header pointing at the new resource.
func Created(c *gin.Context, location string, data any) {
	c.Header("Location", location)
	render(c, http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func Error(c *gin.Context, status int, message string) {
	c.Abort()
	render(c, status, ErrorDetails{
		StatusCode: status,
		Message:    message,
	})
}
