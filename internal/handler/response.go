package handler

import (
	"errors"
	"net/http"

	"github.com/stephenkhoza/powerhouse-stokvel-backend/pkg/errorx"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ResponseData is the uniform response envelope.
type ResponseData struct {
	Code int `json:"code"`           // business code
	Msg  any `json:"msg"`            // reason or "success"
	Data any `json:"data,omitempty"` // payload
}

// HandleSuccess answers 200 with a success envelope.
func HandleSuccess(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{
		"code": errorx.CodeSuccess,
		"msg":  "success",
		"data": data,
	})
}

// HandleCreated answers 201 with a success envelope.
func HandleCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{
		"code": errorx.CodeSuccess,
		"msg":  "success",
		"data": data,
	})
}

// httpStatus maps a business code onto the HTTP status the API answers
// with. Unknown codes are treated as internal failures.
func httpStatus(code int) int {
	switch code {
	case errorx.CodeInvalidArgument:
		return http.StatusBadRequest
	case errorx.CodeUnauthenticated:
		return http.StatusUnauthorized
	case errorx.CodeForbidden:
		return http.StatusForbidden
	case errorx.CodeNotFound:
		return http.StatusNotFound
	case errorx.CodeConflict:
		return http.StatusConflict
	case errorx.CodeResourceExhausted:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// HandleError answers with the status and message carried by a business
// error. Non-business errors are logged and answered as 500.
func HandleError(c *gin.Context, err error) {
	var codeErr *errorx.CodeError
	if errors.As(err, &codeErr) {
		c.JSON(httpStatus(codeErr.Code), gin.H{
			"code": codeErr.Code,
			"msg":  codeErr.Msg,
			"data": nil,
		})
		return
	}

	zap.L().Error("unclassified error",
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{
		"code": errorx.CodeInternal,
		"msg":  errorx.ErrInternal.Msg,
		"data": nil,
	})
}

// HandleParamError answers 400 for a binding failure, translating
// validator errors into field-keyed messages.
func HandleParamError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		translatedErrs := RemoveTopStruct(validationErrs.Translate(Trans))
		c.JSON(http.StatusBadRequest, gin.H{
			"code": errorx.CodeInvalidArgument,
			"msg":  translatedErrs,
			"data": nil,
		})
		return
	}

	// Not a validation failure, e.g. malformed JSON.
	zap.L().Error("param bind error", zap.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{
		"code": errorx.CodeInvalidArgument,
		"msg":  errorx.ErrInvalidArgument.Msg,
		"data": nil,
	})
}
