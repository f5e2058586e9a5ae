package estimators

import "fmt"

const DefaultSESAlpha = 0.2

// NaiveForecaster repeats the last observed value over the whole
// horizon.
type NaiveForecaster struct {
	last   float64
	fitted bool
}

func NewNaiveForecaster() *NaiveForecaster { return &NaiveForecaster{} }

func (f *NaiveForecaster) Name() string   { return "naive" }
func (f *NaiveForecaster) Params() string { return "" }

func (f *NaiveForecaster) Fit(series []float64) error {
	if len(series) == 0 {
		return fmt.Errorf("cannot fit on an empty series")
	}
	f.last = series[len(series)-1]
	f.fitted = true
	return nil
}

func (f *NaiveForecaster) Forecast(horizon int) ([]float64, error) {
	if !f.fitted {
		return nil, fmt.Errorf("forecaster is not fitted")
	}
	if horizon < 1 {
		return nil, fmt.Errorf("horizon must be at least 1, got %d", horizon)
	}
	out := make([]float64, horizon)
	for i := range out {
		out[i] = f.last
	}
	return out, nil
}

// SESForecaster is simple exponential smoothing. The forecast is the
// final smoothed level repeated over the horizon.
type SESForecaster struct {
	Alpha float64

	level  float64
	fitted bool
}

func NewSESForecaster(alpha float64) (*SESForecaster, error) {
	if alpha <= 0 || alpha > 1 {
		return nil, fmt.Errorf("alpha must be in (0, 1], got %v", alpha)
	}
	return &SESForecaster{Alpha: alpha}, nil
}

func (f *SESForecaster) Name() string { return "ses" }

func (f *SESForecaster) Params() string {
	return flowParams(struct {
		Alpha float64 `yaml:"alpha"`
	}{f.Alpha})
}

func (f *SESForecaster) Fit(series []float64) error {
	if len(series) == 0 {
		return fmt.Errorf("cannot fit on an empty series")
	}
	level := series[0]
	for _, v := range series[1:] {
		level = f.Alpha*v + (1-f.Alpha)*level
	}
	f.level = level
	f.fitted = true
	return nil
}

func (f *SESForecaster) Forecast(horizon int) ([]float64, error) {
	if !f.fitted {
		return nil, fmt.Errorf("forecaster is not fitted")
	}
	if horizon < 1 {
		return nil, fmt.Errorf("horizon must be at least 1, got %d", horizon)
	}
	out := make([]float64, horizon)
	for i := range out {
		out[i] = f.level
	}
	return out, nil
}
