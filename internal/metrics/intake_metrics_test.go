package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func gatherCounter(t *testing.T, registry *prometheus.Registry, name string) float64 {
	t.Helper()

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		var total float64
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
		return total
	}
	t.Fatalf("metric family %s not found", name)
	return 0
}

func TestIntakeMetrics_Counters(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewIntakeMetricsWithRegisterer(registry)

	m.RecordOrderCreated()
	m.RecordOrderCreated()
	m.RecordInvoiceUploaded()
	m.RecordNotificationFailed()
	m.RecordCreateFailed(FailureReasonValidation)
	m.RecordCreateFailed(FailureReasonRecordStore)
	m.RecordCreateDuration(25 * time.Millisecond)

	if got := gatherCounter(t, registry, "ois_orders_created_total"); got != 2 {
		t.Errorf("expected 2 created, got %v", got)
	}
	if got := gatherCounter(t, registry, "ois_invoice_uploads_total"); got != 1 {
		t.Errorf("expected 1 upload, got %v", got)
	}
	if got := gatherCounter(t, registry, "ois_notifications_failed_total"); got != 1 {
		t.Errorf("expected 1 failed notification, got %v", got)
	}
	if got := gatherCounter(t, registry, "ois_order_create_failures_total"); got != 2 {
		t.Errorf("expected 2 failures across reasons, got %v", got)
	}
}

func TestIntakeMetrics_FailureReasonLabels(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewIntakeMetricsWithRegisterer(registry)

	m.RecordCreateFailed(FailureReasonFileStore)

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}

	var found *dto.Metric
	for _, mf := range families {
		if mf.GetName() != "ois_order_create_failures_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "reason" && label.GetValue() == FailureReasonFileStore {
					found = metric
				}
			}
		}
	}
	if found == nil {
		t.Fatal("expected a file_store-labeled failure metric")
	}
	if found.GetCounter().GetValue() != 1 {
		t.Fatalf("expected 1, got %v", found.GetCounter().GetValue())
	}
}

func TestIntakeMetrics_DoubleRegistration(t *testing.T) {
	registry := prometheus.NewRegistry()

	first := NewIntakeMetricsWithRegisterer(registry)
	second := NewIntakeMetricsWithRegisterer(registry)

	first.RecordOrderCreated()
	second.RecordOrderCreated()

	// Повторная регистрация должна переиспользовать коллекторы.
	if got := gatherCounter(t, registry, "ois_orders_created_total"); got != 2 {
		t.Fatalf("expected shared counter value 2, got %v", got)
	}
}
