package api

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes
	"reflect"  // Struct field reflection for tag names
	"strings"  // Tag parsing
	"time"     // Date parsing

	"github.com/gin-gonic/gin"               // Gin web framework
	"github.com/go-playground/validator/v10" // Struct validation
)

var validate = newValidator()

// dateLayouts are the accepted tgl_pemeriksaan formats, most specific first
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func newValidator() *validator.Validate {
	v := validator.New()
	// Report JSON field names instead of Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("tanggal", func(fl validator.FieldLevel) bool {
		_, err := parseTanggal(fl.Field().String())
		return err == nil
	})
	return v
}

// parseTanggal parses a date or date-time; values without a zone are local
func parseTanggal(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("unrecognized date format")
}

// ValidationError describes one rejected field
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// ValidateRequest runs struct validation and returns nil when obj is valid
func ValidateRequest(obj any) []ValidationError {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []ValidationError{{Message: err.Error(), Type: "invalid"}}
	}
	out := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{Field: fe.Field(), Message: errorMessage(fe), Type: fe.Tag()})
	}
	return out
}

func errorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "oneof":
		return "Value must be one of: " + fe.Param()
	case "gt":
		return "Value must be greater than " + fe.Param()
	case "gte":
		return "Value must be greater than or equal to " + fe.Param()
	case "tanggal":
		return "Invalid date, use YYYY-MM-DD or RFC3339"
	default:
		return "Invalid value"
	}
}

// bindAndValidate decodes the JSON body into req and validates it, writing a
// 400 response and returning false on failure
func bindAndValidate(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if errs := ValidateRequest(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data", "details": errs})
		return false
	}
	return true
}

// RespondWithError writes a {message} body with the given status
func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// respondInternalError logs the cause server-side and hides it from the caller
func respondInternalError(c *gin.Context, msg string, err error) {
	logEntry(c).WithError(err).Error(msg)
	RespondWithError(c, http.StatusInternalServerError, "Internal Server Error")
}
