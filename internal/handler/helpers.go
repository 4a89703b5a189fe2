package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	appErr "github.com/mkarren/noteserv/internal/pkg/errors"
	"github.com/mkarren/noteserv/internal/pkg/response"
)

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid", "id must be an integer")
		return 0, false
	}
	return id, true
}

func handleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	requestID, _ := c.Get("request_id")
	logutil.GetLogger(c.Request.Context()).Warn("request failed",
		zap.Any("request_id", requestID),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	switch {
	case appErr.IsNotFound(err):
		response.Error(c, http.StatusNotFound, "not_found", "note not found")
	case appErr.IsInvalid(err):
		response.Error(c, http.StatusBadRequest, "invalid", "invalid request")
	default:
		response.Error(c, http.StatusInternalServerError, "internal", "internal error")
	}
}
