package g2codec

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/satlayer/satlayer-bvs/bvs-crypto/metrics/consts"
)

// Result label values.
const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
)

// PromIndicators counts G2 codec and group-operation activity.
type PromIndicators struct {
	deserializeTotal *prometheus.CounterVec
	serializeTotal   prometheus.Counter
	groupOpTotal     *prometheus.CounterVec
}

func NewPromIndicators(serviceName string, reg prometheus.Registerer) *PromIndicators {
	return &PromIndicators{
		deserializeTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   consts.SatLayerPromNamespace,
				Name:        "g2_deserialize_total",
				Help:        "Total number of G2 point decode attempts by <encoding> and <result>",
				ConstLabels: prometheus.Labels{"service_name": serviceName},
			},
			[]string{"encoding", "result"},
		),
		serializeTotal: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Namespace:   consts.SatLayerPromNamespace,
				Name:        "g2_serialize_total",
				Help:        "Total number of G2 points serialized to the compressed form",
				ConstLabels: prometheus.Labels{"service_name": serviceName},
			},
		),
		groupOpTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   consts.SatLayerPromNamespace,
				Name:        "g2_group_op_total",
				Help:        "Total number of G2 group operations by <op> and <result>",
				ConstLabels: prometheus.Labels{"service_name": serviceName},
			},
			[]string{"op", "result"},
		),
	}
}

// AddDeserializeTotal records one decode attempt for an encoding
// ("uncompressed" or "compressed").
func (p *PromIndicators) AddDeserializeTotal(encoding, result string) {
	p.deserializeTotal.With(prometheus.Labels{
		"encoding": encoding,
		"result":   result,
	}).Inc()
}

// AddSerializeTotal records one compressed serialization.
func (p *PromIndicators) AddSerializeTotal() {
	p.serializeTotal.Inc()
}

// AddGroupOpTotal records one group operation ("add", "mul" or "map").
func (p *PromIndicators) AddGroupOpTotal(op, result string) {
	p.groupOpTotal.With(prometheus.Labels{
		"op":     op,
		"result": result,
	}).Inc()
}
