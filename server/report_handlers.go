package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	errs "dormwatch/errors"
	"dormwatch/models"
	"dormwatch/server/response"
)

func (s *Server) handleCreateReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		var request models.CreateReportRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, bindError(err, "room and content required"))
			return
		}

		report, err := s.ReportService.CreateReport(&request)
		if err != nil {
			response.JSON(c, "", err.Status, nil, err)
			return
		}

		response.JSON(c, "", http.StatusCreated, report.EscapedResponse(), nil)
	}
}

func (s *Server) handleGetAllReports() gin.HandlerFunc {
	return func(c *gin.Context) {
		reports, err := s.ReportService.GetAllReports()
		if err != nil {
			response.JSON(c, "", err.Status, nil, err)
			return
		}

		response.JSON(c, "", http.StatusOK, reports, nil)
	}
}

func (s *Server) handleLikeReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDCtx, ok := c.Get("userID")
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.ErrUnauthorized)
			return
		}
		userID, ok := userIDCtx.(uint)
		if !ok {
			response.JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
			return
		}

		// A non-numeric id cannot name an existing report.
		reportID, parseErr := strconv.ParseUint(c.Param("id"), 10, 64)
		if parseErr != nil {
			response.JSON(c, "", http.StatusNotFound, nil, errs.ErrReportNotFound)
			return
		}

		likes, err := s.ReportService.LikeReport(userID, uint(reportID))
		if err != nil {
			response.JSON(c, "", err.Status, nil, err)
			return
		}

		response.JSON(c, "", http.StatusOK, gin.H{"likes": likes}, nil)
	}
}
