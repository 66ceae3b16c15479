package metrics

import (
	"net/http"
	"strconv"
	"time"
)

// outboundTransport http.RoundTripper, записывающий метрики исходящих
// запросов к интеграции. Ошибки транспорта учитываются со статусом "error".
type outboundTransport struct {
	integration string
	metrics     *Metrics
	base        http.RoundTripper
}

// NewOutboundTransport оборачивает дефолтный транспорт метриками исходящих
// запросов. При выключенных метриках (m == nil) возвращает nil, и http.Client
// использует http.DefaultTransport напрямую.
func NewOutboundTransport(integration string, m *Metrics) http.RoundTripper {
	if m == nil {
		return nil
	}
	return &outboundTransport{
		integration: integration,
		metrics:     m,
		base:        http.DefaultTransport,
	}
}

func (t *outboundTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := t.base.RoundTrip(req)

	t.metrics.OutboundRequestDuration.WithLabelValues(t.integration).Observe(time.Since(start).Seconds())

	status := "error"
	if err == nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	t.metrics.OutboundRequestsTotal.WithLabelValues(t.integration, status).Inc()

	return resp, err
}
