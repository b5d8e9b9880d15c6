package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestStats_Record(t *testing.T) {
	st := &stats{}

	st.record(10*time.Millisecond, true)
	st.record(20*time.Millisecond, false)
	st.record(30*time.Millisecond, true)

	if got := st.success.Load(); got != 2 {
		t.Errorf("expected 2 successes, got %d", got)
	}
	if got := st.failed.Load(); got != 1 {
		t.Errorf("expected 1 failure, got %d", got)
	}
	if len(st.latencies) != 3 {
		t.Errorf("expected 3 recorded latencies, got %d", len(st.latencies))
	}
}

func TestCreateOrder_SendsMultipartForm(t *testing.T) {
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("failed to parse multipart form: %v", err)
		}
		if r.FormValue("customerName") == "" {
			t.Error("expected customerName field")
		}
		if r.FormValue("orderAmount") == "" {
			t.Error("expected orderAmount field")
		}
		if r.FormValue("orderDate") == "" {
			t.Error("expected orderDate field")
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := &http.Client{Timeout: time.Second}
	ok, latency := createOrder(client, config{addr: srv.URL}, 1)

	if !ok {
		t.Error("expected successful create")
	}
	if latency <= 0 {
		t.Error("expected positive latency")
	}
	if gotContentType == "" {
		t.Error("expected multipart content type header")
	}
}

func TestCreateOrder_FailureStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	client := &http.Client{Timeout: time.Second}
	ok, _ := createOrder(client, config{addr: srv.URL}, 1)

	if ok {
		t.Error("expected failure for non-201 status")
	}
}
