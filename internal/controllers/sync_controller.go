package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/examplan/examplan_backend/internal/usv"
)

type SyncController struct {
	Syncer *usv.Syncer
	Logger *zap.Logger
}

// Run triggers the one-shot timetable import. The call blocks until the
// import finishes and returns what was created.
func (s *SyncController) Run(c *gin.Context) {
	report, err := s.Syncer.SyncAll(c.Request.Context())
	if err != nil {
		s.Logger.Error("timetable sync failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "timetable sync failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "sync completed", "report": report})
}
