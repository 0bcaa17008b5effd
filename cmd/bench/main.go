// Command bench runs a synthetic workload against the cache and exposes
// optional pprof/Prometheus endpoints. With -impl=hashicorp the same
// workload runs against hashicorp/golang-lru as a reference point.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on DefaultServeMux
	"strconv"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/IvanBrykalov/lrudict/cache"
	pmet "github.com/IvanBrykalov/lrudict/metrics/prom"
)

// workload is the operation surface both implementations are driven through.
type workload interface {
	get(k string) bool
	set(k, v string)
	len() int
}

type lrudictBench struct{ c *cache.Cache[string, string] }

func (b lrudictBench) get(k string) bool {
	_, err := b.c.Get(k)
	return err == nil
}
func (b lrudictBench) set(k, v string) { _ = b.c.Set(k, v) }
func (b lrudictBench) len() int        { return b.c.Len() }

type hashicorpBench struct{ c *lru.Cache[string, string] }

func (b hashicorpBench) get(k string) bool { _, ok := b.c.Get(k); return ok }
func (b hashicorpBench) set(k, v string)   { b.c.Add(k, v) }
func (b hashicorpBench) len() int          { return b.c.Len() }

func main() {
	// ---- Flags ----
	var (
		capacity = flag.Int("cap", 100_000, "cache capacity (entries)")
		impl     = flag.String("impl", "lrudict", "implementation: lrudict | hashicorp")

		duration = flag.Duration("duration", 10*time.Second, "benchmark duration")
		readPct  = flag.Int("reads", 80, "read percentage [0..100]")

		keys    = flag.Int("keys", 1_000_000, "keyspace size")
		zipfS   = flag.Float64("zipf_s", 1.1, "Zipf s > 1 (skew)")
		zipfV   = flag.Float64("zipf_v", 1.0, "Zipf v")
		seed    = flag.Int64("seed", time.Now().UnixNano(), "random seed")
		preload = flag.Int("preload", 0, "preload entries (0 = cap/2)")

		pprofAddr   = flag.String("pprof", "", "serve pprof at addr (e.g. :6060); empty = disabled")
		metricsAddr = flag.String("http", ":8080", "serve Prometheus metrics at addr")
	)
	flag.Parse()

	// ---- pprof server (on DefaultServeMux) ----
	if *pprofAddr != "" {
		go func() {
			log.Printf("pprof: serving at %s", *pprofAddr)
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	// ---- Prometheus metrics (on DefaultServeMux) ----
	metrics := pmet.New(nil, "lrudict", "bench", nil)
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Printf("metrics: serving at %s", *metricsAddr)
		log.Println(http.ListenAndServe(*metricsAddr, nil))
	}()

	// ---- Build the implementation under test ----
	var w workload
	switch *impl {
	case "lrudict":
		c, err := cache.New[string, string](cache.Options[string, string]{
			Capacity: *capacity,
			Metrics:  metrics,
		})
		if err != nil {
			log.Fatalf("cache.New: %v", err)
		}
		w = lrudictBench{c: c}
	case "hashicorp":
		c, err := lru.New[string, string](*capacity)
		if err != nil {
			log.Fatalf("lru.New: %v", err)
		}
		w = hashicorpBench{c: c}
	default:
		log.Fatalf("unknown impl: %q (use lrudict or hashicorp)", *impl)
	}

	// ---- Preload half capacity to get a realistic hit-rate ----
	pl := *preload
	if pl == 0 {
		pl = *capacity / 2
	}
	for i := 0; i < pl; i++ {
		w.set("k:"+strconv.Itoa(i), "v"+strconv.Itoa(i))
	}

	// ---- Load generation ----
	// Single driver goroutine: the cache is single-mutator by contract, and
	// a lone goroutine keeps the comparison across impls apples-to-apples.
	r := rand.New(rand.NewSource(*seed))
	zipf := rand.NewZipf(r, *zipfS, *zipfV, uint64(*keys-1))
	keyByZipf := func() string {
		return "k:" + strconv.FormatUint(zipf.Uint64(), 10)
	}

	var reads, writes, hits, misses, total uint64
	deadline := time.Now().Add(*duration)
	start := time.Now()
	for time.Now().Before(deadline) {
		total++
		if int(r.Int31n(100)) < *readPct {
			reads++
			if w.get(keyByZipf()) {
				hits++
			} else {
				misses++
			}
		} else {
			writes++
			w.set(keyByZipf(), "v"+strconv.Itoa(r.Int()))
		}
	}
	elapsed := time.Since(start)

	// ---- Report ----
	hitRate := 0.0
	if reads > 0 {
		hitRate = float64(hits) / float64(reads) * 100
	}
	fmt.Printf("impl=%s cap=%d keys=%d dur=%v seed=%d\n",
		*impl, *capacity, *keys, elapsed, *seed)
	fmt.Printf("ops=%d (%.0f ops/s)  reads=%d  writes=%d\n",
		total, float64(total)/elapsed.Seconds(), reads, writes)
	fmt.Printf("hits=%d  misses=%d  hit-rate=%.2f%%\n", hits, misses, hitRate)
	fmt.Printf("Len()=%d\n", w.len())
}
