package metrics_test

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/satlayer/satlayer-bvs/bvs-crypto/logger"
	"github.com/satlayer/satlayer-bvs/bvs-crypto/metrics"
	"github.com/satlayer/satlayer-bvs/bvs-crypto/metrics/indicators/g2codec"
)

type SatlayerMetricsTestSuite struct {
	suite.Suite
	reg         *prometheus.Registry
	logger      logger.Logger
	testAddress string
	serviceName string
}

func (suite *SatlayerMetricsTestSuite) SetupTest() {
	suite.reg = prometheus.NewRegistry()
	suite.logger = logger.NewMockELKLogger()
	suite.testAddress = "localhost:8091"
	suite.serviceName = "localtest"
}

func (suite *SatlayerMetricsTestSuite) Test_Start() {
	// add indicators
	indicators := g2codec.NewPromIndicators(suite.serviceName, suite.reg)
	indicators.AddDeserializeTotal("uncompressed", g2codec.ResultOK)
	indicators.AddSerializeTotal()

	metricsServer := metrics.NewSatLayerMetrics(suite.testAddress, suite.logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errChan := metricsServer.Start(ctx, suite.reg)

	// Wait for the server to start
	time.Sleep(1 * time.Second)

	resp, err := http.Get("http://" + suite.testAddress + "/metrics")
	assert.NoError(suite.T(), err, "failed to make request to /metrics")
	defer resp.Body.Close()

	assert.Equal(suite.T(), http.StatusOK, resp.StatusCode, "metrics endpoint should return 200 OK")

	body, err := io.ReadAll(resp.Body)
	assert.NoError(suite.T(), err)

	assert.Contains(suite.T(), string(body), "satlayer_g2_deserialize_total")
	assert.Contains(suite.T(), string(body), "satlayer_g2_serialize_total")

	// Cancel the context to test if the server can gracefully shut down
	cancel()

	select {
	case err := <-errChan:
		if err != nil {
			suite.T().Fatalf("server failed with error: %v", err)
		}
	case <-time.After(2 * time.Second):
		suite.T().Fatal("server shutdown timed out")
	}
}

func TestSatlayerMetricsTestSuite(t *testing.T) {
	suite.Run(t, new(SatlayerMetricsTestSuite))
}
