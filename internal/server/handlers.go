package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/maumlab/maumlog/internal/journal"
	"github.com/maumlab/maumlog/internal/report"
	"github.com/maumlab/maumlog/internal/store"
)

// addLogRequest is the body of POST /api/logs. Date defaults to today.
type addLogRequest struct {
	Date  string `json:"date"`
	Field string `json:"field" binding:"required"`
	Delta int    `json:"delta"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// POST /api/logs adjusts one counter for a day and returns the updated
// day summary.
func (s *Server) handleAddLog(c *gin.Context) {
	var req addLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !journal.IsField(req.Field) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown counter field: " + req.Field})
		return
	}

	day := req.Date
	if day == "" {
		day = time.Now().Format(store.DayFormat)
	} else if _, err := time.Parse(store.DayFormat, day); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}
	if req.Delta == 0 {
		req.Delta = 1
	}

	if err := s.db.AddDelta(day, req.Field, req.Delta); err != nil {
		s.log.Error("adding counter delta", zap.String("day", day), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save log"})
		return
	}

	sum, err := s.db.GetDay(day)
	if err != nil {
		s.log.Error("reading day summary", zap.String("day", day), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read log"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": day, "summary": sum})
}

// GET /api/logs/:date returns the counters logged for one day.
func (s *Server) handleGetDay(c *gin.Context) {
	day := c.Param("date")
	if _, err := time.Parse(store.DayFormat, day); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	sum, err := s.db.GetDay(day)
	if err != nil {
		s.log.Error("reading day summary", zap.String("day", day), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read log"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": day, "summary": sum})
}

// GET /api/reports/:period returns the aggregated report for the period
// containing the anchor date (query param "date", default today).
func (s *Server) handleReport(c *gin.Context) {
	period := journal.ParsePeriod(c.Param("period"))
	anchor, ok := s.anchorDate(c)
	if !ok {
		return
	}

	rep, err := report.Build(s.db, period, anchor)
	if err != nil {
		s.log.Error("building report", zap.String("period", string(period)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build report"})
		return
	}
	c.JSON(http.StatusOK, rep)
}

// GET /api/advice returns the coaching advice for a period. The engine
// contract guarantees a displayable string, so this always responds 200.
func (s *Server) handleAdvice(c *gin.Context) {
	period := journal.ParsePeriod(c.DefaultQuery("period", string(journal.PeriodDaily)))
	anchor, ok := s.anchorDate(c)
	if !ok {
		return
	}

	rep, err := report.Build(s.db, period, anchor)
	if err != nil {
		s.log.Error("building report for advice", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"label": period.Label(anchor), "advice": s.engine.Generate(c.Request.Context(), nil, "")})
		return
	}

	text := s.engine.Generate(c.Request.Context(), rep.Summary, rep.Label)
	c.JSON(http.StatusOK, gin.H{"label": rep.Label, "advice": text})
}

// POST /api/advice/reload refetches the advice and ad datasets. This is
// the explicit recovery path after a failed sheet fetch.
func (s *Server) handleReload(c *gin.Context) {
	records, err := s.loader.Reload(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to reload advice dataset"})
		return
	}
	if err := s.banners.Reload(c.Request.Context()); err != nil {
		s.log.Warn("reloading ad banners", zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"records": len(records)})
}

// GET /api/ads/banner returns the next banner in rotation, or 204 when
// no banners are available.
func (s *Server) handleBanner(c *gin.Context) {
	banner := s.banners.Next(c.Request.Context())
	if banner == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, banner)
}

// anchorDate parses the optional "date" query param, responding 400 on
// a malformed value.
func (s *Server) anchorDate(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now(), true
	}
	t, err := time.Parse(store.DayFormat, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return time.Time{}, false
	}
	return t, true
}
