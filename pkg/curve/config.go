package curve

import "fmt"

// Config carries every tunable of the engine. It is passed in explicitly at
// construction so that multiple configurations (e.g. backtests sweeping
// thresholds) can coexist in one process.
type Config struct {
	// Spread weights: curve = WeightA*A - WeightB*B
	WeightA float64 `yaml:"weight_a"`
	WeightB float64 `yaml:"weight_b"`

	// Rolling windows
	ZLookback     int `yaml:"z_lookback"`     // mean/stdev window for the z-score
	ATRWindow     int `yaml:"atr_window"`     // trailing window for the volatility proxy
	TrendWindow   int `yaml:"trend_window"`   // long-horizon trend moving average
	SlopeLookback int `yaml:"slope_lookback"` // lag for the trend slope

	// Signal thresholds
	EntryZ       float64 `yaml:"entry_z"`       // |z| entry threshold, symmetric
	StopZ        float64 `yaml:"stop_z"`        // |z| stop threshold for open positions
	ATRThreshold float64 `yaml:"atr_threshold"` // grind regime: ATR below this
	SlopeCap     float64 `yaml:"slope_cap"`     // grind regime: slope below this

	// Execution space: curve_exec = ContractsA*A*PointValueA - ContractsB*B*PointValueB
	ContractsA  float64 `yaml:"contracts_a"`
	ContractsB  float64 `yaml:"contracts_b"`
	PointValueA float64 `yaml:"point_value_a"` // dollars per point, leg A
	PointValueB float64 `yaml:"point_value_b"` // dollars per point, leg B

	// Exit targets in z-score space
	LongTargetZ  float64 `yaml:"long_target_z"`  // full reversion to the mean
	ShortTargetZ float64 `yaml:"short_target_z"` // partial reversion
}

// DefaultConfig returns the documented defaults for the ZN/ZT treasury curve.
func DefaultConfig() Config {
	return Config{
		WeightA:       1.0,
		WeightB:       3.0,
		ZLookback:     120,
		ATRWindow:     20,
		TrendWindow:   200,
		SlopeLookback: 5,
		EntryZ:        1.5,
		StopZ:         2.2,
		ATRThreshold:  0.13,
		SlopeCap:      0.10,
		ContractsA:    2,
		ContractsB:    3,
		PointValueA:   1000,
		PointValueB:   2000,
		LongTargetZ:   0.0,
		ShortTargetZ:  -1.0,
	}
}

// Validate rejects configurations the engine cannot evaluate.
func (c Config) Validate() error {
	if c.ZLookback < 2 {
		return fmt.Errorf("z_lookback must be >= 2, got %d", c.ZLookback)
	}
	if c.ATRWindow < 1 {
		return fmt.Errorf("atr_window must be >= 1, got %d", c.ATRWindow)
	}
	if c.TrendWindow < 1 {
		return fmt.Errorf("trend_window must be >= 1, got %d", c.TrendWindow)
	}
	if c.SlopeLookback < 1 {
		return fmt.Errorf("slope_lookback must be >= 1, got %d", c.SlopeLookback)
	}
	if c.EntryZ <= 0 {
		return fmt.Errorf("entry_z must be positive, got %v", c.EntryZ)
	}
	if c.StopZ <= 0 {
		return fmt.Errorf("stop_z must be positive, got %v", c.StopZ)
	}
	return nil
}
