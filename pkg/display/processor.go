package display

import (
	"fmt"
	"math"

	"github.com/ajitpratap0/prism/pkg/models"
	"github.com/ajitpratap0/prism/pkg/reducers"
	stringpool "github.com/ajitpratap0/prism/pkg/strings"
)

// noValueText is shown for missing values when the configuration does not
// override it
const noValueText = "-"

// Options parameterize a display processor
type Options struct {
	Type   models.FieldType
	Config *models.FieldConfig
	Theme  *Theme
}

// Build constructs a display processor for a resolved field configuration.
// The processor formats numbers with the configured decimals, appends the
// unit string verbatim, substitutes the no-value text for nils, and resolves
// color from the active threshold step.
func Build(opts Options) models.DisplayProcessor {
	cfg := opts.Config
	if cfg == nil {
		cfg = &models.FieldConfig{}
	}
	theme := opts.Theme
	if theme == nil {
		theme = DefaultTheme()
	}

	noValue := cfg.NoValue
	if noValue == "" {
		noValue = noValueText
	}

	decimals := -1
	if cfg.Decimals != nil {
		decimals = *cfg.Decimals
	}

	return func(value interface{}) models.DisplayValue {
		if value == nil {
			return models.DisplayValue{Text: noValue}
		}

		n, ok := reducers.ToFloat(value)
		if !ok {
			return models.DisplayValue{Text: stringpool.Sprintf("%v", value)}
		}

		out := models.DisplayValue{
			Numeric:    n,
			HasNumeric: true,
			Text:       formatNumber(n, decimals, cfg.Unit),
		}
		if color, ok := thresholdColor(cfg, theme, n); ok {
			out.Color = color
		}
		return out
	}
}

func formatNumber(n float64, decimals int, unit string) string {
	if math.IsInf(n, 0) || math.IsNaN(n) {
		return fmt.Sprint(n)
	}

	b := stringpool.GetBuilder()
	defer stringpool.PutBuilder(b)

	b.WriteFloat(n, decimals)
	if unit != "" {
		b.WriteByte(' ')
		b.WriteString(unit)
	}
	return b.String()
}

// thresholdColor picks the color of the last step whose value is not above n.
// The baseline step of a resolved configuration sits at -Inf, so any number
// matches at least one step.
func thresholdColor(cfg *models.FieldConfig, theme *Theme, n float64) (string, bool) {
	if cfg.Thresholds == nil || len(cfg.Thresholds.Steps) == 0 {
		return "", false
	}

	probe := n
	if cfg.Thresholds.Mode == models.ThresholdsModePercentage {
		min, max := 0.0, 100.0
		if cfg.Min != nil {
			min = *cfg.Min
		}
		if cfg.Max != nil {
			max = *cfg.Max
		}
		if max == min {
			return "", false
		}
		probe = (n - min) / (max - min) * 100
	}

	steps := cfg.Thresholds.Steps
	active := steps[0]
	for _, step := range steps[1:] {
		if probe < step.Value {
			break
		}
		active = step
	}
	return theme.Color(active.Color), true
}
