package analysis

import (
	"stock-dashboard/src/helpers"
	"stock-dashboard/src/logger"
	"stock-dashboard/src/models"
)

// -----------------------------------------------------------------------------
// AnalysisFacade
// -----------------------------------------------------------------------------

// AnalysisFacade turns a fetched bar sequence into the augmented price series
// the chart consumes. Pure computation; a fresh series is built per request
// and never cached.
type AnalysisFacade struct {
	Logger    *logger.Logger
	resampler *TimeSeriesResampler
}

// -----------------------------------------------------------------------------

func NewAnalysisFacade(log *logger.Logger) *AnalysisFacade {
	return &AnalysisFacade{
		Logger:    log,
		resampler: &TimeSeriesResampler{},
	}
}

// -----------------------------------------------------------------------------

// ResampleBars buckets finer bars into coarser ones of widthSeconds.
func (a *AnalysisFacade) ResampleBars(bars []models.MBar, widthSeconds int64) []models.MBar {
	return a.resampler.Resample(bars, widthSeconds)
}

// -----------------------------------------------------------------------------

// BuildSeries computes the derived indicator columns for the request's
// Bollinger settings plus the fixed-period RSI.
func (a *AnalysisFacade) BuildSeries(req models.MAnalysisRequest, bars []models.MBar) (*models.MPriceSeries, error) {
	if len(bars) == 0 {
		return nil, helpers.NewValidationError("cannot analyze an empty bar sequence")
	}
	if req.Window < 1 {
		return nil, helpers.NewValidationError("bollinger window must be at least 1, got %d", req.Window)
	}

	series := &models.MPriceSeries{
		Symbol:   req.Symbol,
		Interval: req.Interval,
		Bars:     bars,
	}

	closes := series.Closes()
	series.SMA, series.Std, series.Upper, series.Lower = BollingerBands(closes, req.Window, req.StdDev)
	series.RSI = RSI(closes, RSIPeriod)

	a.Logger.Debug("Built series for %s: %d bars, window=%d, std_dev=%.2f",
		req.Symbol, len(bars), req.Window, req.StdDev)

	return series, nil
}
