package point

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/satlayer/satlayer-bvs/bvs-crypto/bls12381"
	"github.com/satlayer/satlayer-bvs/bvs-crypto/cli/conf"
	"github.com/satlayer/satlayer-bvs/bvs-crypto/logger"
	"github.com/satlayer/satlayer-bvs/bvs-crypto/metrics/indicators/g2codec"
)

const serviceName = "bvs-crypto-cli"

type Service struct {
	Logger     logger.Logger
	Arith      bls12381.Arithmetic
	Group      *bls12381.G2Group
	Indicators *g2codec.PromIndicators
}

func NewService() *Service {
	c := conf.Load()

	var l logger.Logger
	if c.Logstash != "" {
		l = logger.NewELKLogger(serviceName, c.Logstash)
	} else {
		l = logger.NewMockELKLogger()
	}
	l.SetLogLevel(c.LogLevel)

	arith := bls12381.NewGnarkArithmetic()
	return &Service{
		Logger:     l,
		Arith:      arith,
		Group:      bls12381.NewG2Group(arith),
		Indicators: g2codec.NewPromIndicators(serviceName, prometheus.NewRegistry()),
	}
}
