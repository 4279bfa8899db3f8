package server

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"strconv"
	"strings"
	"time"

	"stock-dashboard/src/chart"
	"stock-dashboard/src/helpers"
	"stock-dashboard/src/models"
	"stock-dashboard/src/utils"

	"github.com/gin-gonic/gin"
)

// -----------------------------------------------------------------------------
// Dashboard page
// -----------------------------------------------------------------------------

func (s *DashboardServer) getIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title": s.Config.Name,
	})
}

// -----------------------------------------------------------------------------
// Analysis pipeline
// -----------------------------------------------------------------------------

// analyze is the single trigger: it validates the sidebar values, runs the
// linear fetch-compute-render sequence synchronously, publishes the result
// to connected tabs, and returns it.
func (s *DashboardServer) analyze(c *gin.Context) {
	req, err := s.parseAnalysisRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := s.runPipeline(c.Request.Context(), req)

	s.Broadcast(result)
	c.JSON(http.StatusOK, result)
}

// -----------------------------------------------------------------------------

// parseAnalysisRequest builds the immutable per-run configuration from query
// parameters, falling back to the configured defaults for absent ones.
func (s *DashboardServer) parseAnalysisRequest(c *gin.Context) (models.MAnalysisRequest, error) {
	d := s.Config.Dashboard

	req := models.MAnalysisRequest{
		Symbol:   strings.ToUpper(strings.TrimSpace(c.DefaultQuery("symbol", d.DefaultSymbol))),
		Period:   c.DefaultQuery("period", d.DefaultPeriod),
		Interval: c.DefaultQuery("interval", d.DefaultInterval),
		Window:   d.DefaultWindow,
		StdDev:   d.DefaultStdDev,
	}

	if req.Symbol == "" {
		return req, helpers.NewValidationError("symbol cannot be empty")
	}
	if !s.Config.ValidPeriod(req.Period) {
		return req, helpers.NewValidationError("period %q is not one of %v", req.Period, d.Periods)
	}
	if !s.Config.ValidInterval(req.Interval) {
		return req, helpers.NewValidationError("interval %q is not one of %v", req.Interval, d.Intervals)
	}

	if raw := c.Query("window"); raw != "" {
		window, err := strconv.Atoi(raw)
		if err != nil || window < 1 {
			return req, helpers.NewValidationError("window must be a positive integer, got %q", raw)
		}
		req.Window = window
	}

	if raw := c.Query("std_dev"); raw != "" {
		stdDev, err := strconv.ParseFloat(raw, 64)
		if err != nil || stdDev <= 0 {
			return req, helpers.NewValidationError("std_dev must be a positive number, got %q", raw)
		}
		req.StdDev = stdDev
	}

	return req, nil
}

// -----------------------------------------------------------------------------

// runPipeline executes one fetch-compute-render sequence. The fundamentals
// and history domains fail independently: an error on either side lands in
// its own field and the other side proceeds untouched.
func (s *DashboardServer) runPipeline(ctx context.Context, req models.MAnalysisRequest) *models.MAnalysisResult {
	result := &models.MAnalysisResult{Request: req}

	// 1. Fundamentals
	quote, err := s.Quote.FetchQuote(ctx, req.Symbol)
	if err != nil {
		s.Logger.Warning("Quote fetch for %s failed: %v", req.Symbol, err)
		result.QuoteError = fmt.Sprintf("Could not retrieve fundamentals: %v", err)
	} else {
		result.Quote = quote
	}

	market := utils.MarketStatus(req.Symbol, time.Now())
	result.Market = &market

	// 2. History + indicators + figure
	fetchInterval, bucketSeconds := s.History.NormalizeInterval(req.Interval)

	bars, err := s.History.FetchHistory(ctx, req.Symbol, req.Period, fetchInterval)
	switch {
	case err != nil:
		s.Logger.Warning("History fetch for %s failed: %v", req.Symbol, err)
		result.ChartError = fmt.Sprintf("Error retrieving history: %v", err)

	case len(bars) == 0:
		result.Warning = "No historical price data found."

	default:
		if bucketSeconds > 0 {
			bars = s.Analyzer.ResampleBars(bars, bucketSeconds)
		}

		series, err := s.Analyzer.BuildSeries(req, bars)
		if err != nil {
			s.Logger.Warning("Indicator computation for %s failed: %v", req.Symbol, err)
			result.ChartError = fmt.Sprintf("Error calculating technicals: %v", err)
			break
		}

		result.Figure = chart.BuildFigure(series)
		result.BarCount = len(bars)
	}

	result.Timestamp = time.Now().Unix()

	// A store failure must never fail the run.
	lookup := models.MLookup{
		Symbol:      req.Symbol,
		Period:      req.Period,
		Interval:    req.Interval,
		Window:      req.Window,
		StdDev:      req.StdDev,
		BarCount:    result.BarCount,
		RequestedAt: time.Now().UTC(),
	}
	if err := s.DB.RecordLookup(lookup); err != nil {
		s.Logger.Error("Failed to record lookup for %s: %v", req.Symbol, err)
	}

	return result
}

// -----------------------------------------------------------------------------
// Supporting endpoints
// -----------------------------------------------------------------------------

func (s *DashboardServer) getConfig(c *gin.Context) {
	d := s.Config.Dashboard
	c.JSON(http.StatusOK, gin.H{
		"periods":   d.Periods,
		"intervals": d.Intervals,
		"defaults": gin.H{
			"symbol":   d.DefaultSymbol,
			"period":   d.DefaultPeriod,
			"interval": d.DefaultInterval,
			"window":   d.DefaultWindow,
			"std_dev":  d.DefaultStdDev,
		},
	})
}

// -----------------------------------------------------------------------------

func (s *DashboardServer) getHealth(c *gin.Context) {
	s.stateMutex.RLock()
	connections := len(s.clients)
	timestamp := s.latestState.Timestamp
	s.stateMutex.RUnlock()

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	c.JSON(http.StatusOK, gin.H{
		"status":          "ok",
		"uptime_seconds":  int64(time.Since(s.startedAt).Seconds()),
		"connections":     connections,
		"latest_update":   timestamp,
		"memory_alloc_mb": memStats.Alloc / 1024 / 1024,
	})
}

// -----------------------------------------------------------------------------

func (s *DashboardServer) getRecent(c *gin.Context) {
	lookups, err := s.DB.RecentLookups(s.Config.Storage.RecentLookupLimit)
	if err != nil {
		s.Logger.Error("Failed to load recent lookups: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load recent lookups"})
		return
	}

	if lookups == nil {
		lookups = []models.MLookup{}
	}
	c.JSON(http.StatusOK, gin.H{"lookups": lookups})
}
