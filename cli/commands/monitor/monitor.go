package monitor

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/satlayer/satlayer-bvs/bvs-crypto/cli/conf"
	"github.com/satlayer/satlayer-bvs/bvs-crypto/logger"
	"github.com/satlayer/satlayer-bvs/bvs-crypto/metrics"
	"github.com/satlayer/satlayer-bvs/bvs-crypto/metrics/indicators/g2codec"
)

const serviceName = "bvs-crypto-metrics"

// Serve runs the prometheus endpoint on the configured address until
// interrupted.
func Serve() {
	c := conf.Load()

	var l logger.Logger
	if c.Logstash != "" {
		l = logger.NewELKLogger(serviceName, c.Logstash)
	} else {
		l = logger.NewMockELKLogger()
	}
	l.SetLogLevel(c.LogLevel)

	reg := prometheus.NewRegistry()
	g2codec.NewPromIndicators(serviceName, reg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errChan := metrics.NewSatLayerMetrics(c.Metrics.Address, l).Start(ctx, reg)
	if err := <-errChan; err != nil {
		panic(err)
	}
}
