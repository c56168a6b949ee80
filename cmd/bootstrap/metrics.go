package bootstrap

import (
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/metrics"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
	),
)

func NewMetrics(_ config.Config) *metrics.Metrics {
	return metrics.New("venue-booking")
}
