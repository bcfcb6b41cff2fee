package handler

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"course-marketplace-api/internal/response"
)

var (
	thumbnailPattern = regexp.MustCompile(`^\d+s$`)
	registerOnce     sync.Once
	registerErr      error
)

// RegisterValidators installs the custom binding rules on gin's validator.
// Field errors are reported under their JSON names.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("unexpected binding validator engine")
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
		registerErr = v.RegisterValidation("thumbnail", func(fl validator.FieldLevel) bool {
			return thumbnailPattern.MatchString(fl.Field().String())
		})
	})
	return registerErr
}

func jsonFieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// bindingFailure converts a request binding error into a classified failure
func bindingFailure(err error) *response.AppError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return response.NewBadRequestError("Invalid request body")
	}
	fields := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		key := fieldPath(fe)
		fields[key] = append(fields[key], fieldMessage(fe))
	}
	return response.NewValidationError("One or more validation errors occurred.", fields)
}

// fieldPath drops the top-level struct name from the namespace
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return "must be at most " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "email":
		return "must be a valid email address"
	case "thumbnail":
		return "must be a number of seconds such as 12s"
	default:
		return "failed the " + fe.Tag() + " rule"
	}
}

// bindJSON binds the request body and writes a failure response when it is invalid
func (w *ResultWriter) bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		w.Fail(c, bindingFailure(err))
		return false
	}
	return true
}

// bindPage binds the paging query parameters
func (w *ResultWriter) bindPage(c *gin.Context, q interface{}) bool {
	if err := c.ShouldBindQuery(q); err != nil {
		w.Fail(c, bindingFailure(err))
		return false
	}
	return true
}

// pathID parses a uuid path parameter and writes a 400 when it is malformed
func (w *ResultWriter) pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		w.Fail(c, response.NewBadRequestError("Invalid "+name))
		return uuid.Nil, false
	}
	return id, true
}
