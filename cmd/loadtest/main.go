package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
)

type config struct {
	addr        string
	total       int
	concurrency int
	timeout     time.Duration
	withInvoice bool
}

type stats struct {
	success atomic.Int64
	failed  atomic.Int64

	mu        sync.Mutex
	latencies []time.Duration
}

func (s *stats) record(latency time.Duration, ok bool) {
	if ok {
		s.success.Add(1)
	} else {
		s.failed.Add(1)
	}
	s.mu.Lock()
	s.latencies = append(s.latencies, latency)
	s.mu.Unlock()
}

func main() {
	var cfg config
	flag.StringVar(&cfg.addr, "addr", "http://localhost:8080", "service base URL")
	flag.IntVar(&cfg.total, "requests", 100, "total number of create requests")
	flag.IntVar(&cfg.concurrency, "concurrency", 10, "number of concurrent workers")
	flag.DurationVar(&cfg.timeout, "timeout", 10*time.Second, "per-request timeout")
	flag.BoolVar(&cfg.withInvoice, "with-invoice", false, "attach a generated document to every order")
	flag.Parse()

	if cfg.total <= 0 || cfg.concurrency <= 0 {
		fmt.Fprintln(os.Stderr, "requests and concurrency must be positive")
		os.Exit(1)
	}

	client := &http.Client{Timeout: cfg.timeout}
	st := &stats{}
	jobs := make(chan int)

	start := time.Now()
	var wg sync.WaitGroup
	for w := 0; w < cfg.concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := range jobs {
				ok, latency := createOrder(client, cfg, n)
				st.record(latency, ok)
			}
		}()
	}

	for n := 0; n < cfg.total; n++ {
		jobs <- n
	}
	close(jobs)
	wg.Wait()
	elapsed := time.Since(start)

	printReport(st, cfg.total, elapsed)
	if st.failed.Load() > 0 {
		os.Exit(1)
	}
}

func createOrder(client *http.Client, cfg config, n int) (bool, time.Duration) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	_ = mw.WriteField("customerName", "loadtest-customer-"+strconv.Itoa(n))
	_ = mw.WriteField("orderAmount", strconv.FormatFloat(10+rand.Float64()*990, 'f', 2, 64))
	_ = mw.WriteField("orderDate", time.Now().UTC().Format("2006-01-02"))
	if cfg.withInvoice {
		fw, err := mw.CreateFormFile("invoiceFile", "invoice.pdf")
		if err == nil {
			_, _ = fw.Write([]byte("%PDF-1.4 generated load document " + strconv.Itoa(n)))
		}
	}
	_ = mw.Close()

	start := time.Now()
	resp, err := client.Post(cfg.addr+"/orders", mw.FormDataContentType(), &body)
	latency := time.Since(start)
	if err != nil {
		return false, latency
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode == http.StatusCreated, latency
}

func printReport(st *stats, total int, elapsed time.Duration) {
	st.mu.Lock()
	var sum time.Duration
	min, max := time.Duration(0), time.Duration(0)
	for i, l := range st.latencies {
		sum += l
		if i == 0 || l < min {
			min = l
		}
		if l > max {
			max = l
		}
	}
	count := len(st.latencies)
	st.mu.Unlock()

	avg := time.Duration(0)
	if count > 0 {
		avg = sum / time.Duration(count)
	}

	fmt.Printf("requests: %d, success: %d, failed: %d\n", total, st.success.Load(), st.failed.Load())
	fmt.Printf("elapsed: %s, rps: %.1f\n", elapsed.Round(time.Millisecond), float64(total)/elapsed.Seconds())
	fmt.Printf("latency: min=%s avg=%s max=%s\n",
		min.Round(time.Millisecond), avg.Round(time.Millisecond), max.Round(time.Millisecond))
}
