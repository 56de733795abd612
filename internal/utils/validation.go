package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// DateLayout is the wire format for dates in query strings and payloads.
const DateLayout = "2006-01-02"

// Validate performs validation on a struct.
func Validate(s interface{}) error {
	validate := validator.New()
	return validate.Struct(s)
}

// FormatValidationError formats validation errors into a readable string.
func FormatValidationError(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok {
		var errorMessages []string
		for _, e := range errs {
			errorMessages = append(errorMessages, fmt.Sprintf("%s failed on %s", e.Field(), e.Tag()))
		}
		return strings.Join(errorMessages, ", ")
	}
	return err.Error()
}

// BindAndValidate binds the request body to a struct and validates it.
// If validation fails, it sends a BadRequest response and returns false.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		BadRequest(c, "Invalid request payload: "+err.Error())
		return false
	}
	if err := Validate(obj); err != nil {
		BadRequest(c, "Validation failed: "+FormatValidationError(err))
		return false
	}
	return true
}

// ParseDateQuery reads a required date query parameter. On failure it sends
// a BadRequest response and returns false.
func ParseDateQuery(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		BadRequest(c, "Missing required query parameter: "+name)
		return time.Time{}, false
	}
	date, err := time.ParseInLocation(DateLayout, raw, time.Local)
	if err != nil {
		BadRequest(c, "Invalid date "+raw+", expected YYYY-MM-DD")
		return time.Time{}, false
	}
	return date, true
}

// ParseUintQuery reads a required numeric query parameter. On failure it
// sends a BadRequest response and returns false.
func ParseUintQuery(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		BadRequest(c, "Missing required query parameter: "+name)
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		BadRequest(c, "Invalid numeric value for "+name)
		return 0, false
	}
	return uint(id), true
}

// ParseUintParam reads a numeric path parameter. On failure it sends a
// BadRequest response and returns false.
func ParseUintParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		BadRequest(c, "Invalid "+name+" in path")
		return 0, false
	}
	return uint(id), true
}
