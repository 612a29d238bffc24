package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"transaction-monitoring-api/internal/adapter/http/dto"
	"transaction-monitoring-api/pkg/apperror"
	"transaction-monitoring-api/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindQuery binds the query string into each target and trims string
// fields. On failure it writes a 400 response and returns false.
func bindQuery(c *gin.Context, targets ...any) bool {
	for _, target := range targets {
		if err := c.ShouldBindQuery(target); err != nil {
			response.Error(c, apperror.ErrInvalidQuery(describeBindingError(err)))
			return false
		}
		dto.TrimStrings(target)
	}
	return true
}

// pathID parses the :id path parameter. On failure it writes a 400 response.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, apperror.ErrInvalidQuery(fmt.Sprintf("invalid transaction id %q", c.Param("id"))))
		return 0, false
	}
	return id, true
}

func describeBindingError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
		return "invalid query parameter: " + strings.Join(fields, ", ")
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return fmt.Sprintf("invalid query parameter: %q is not a number", numErr.Num)
	}
	return "invalid query parameters"
}
