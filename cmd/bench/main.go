// Command bench runs a synthetic resolver workload against the cache and
// exposes optional pprof/Prometheus endpoints.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on DefaultServeMux
	"runtime"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/IvanBrykalov/dnscache/cache"
	pmet "github.com/IvanBrykalov/dnscache/metrics/prom"
	"github.com/IvanBrykalov/dnscache/policy"
	"github.com/IvanBrykalov/dnscache/policy/cursor"
	"github.com/IvanBrykalov/dnscache/policy/fifo"
	"github.com/IvanBrykalov/dnscache/policy/lru"
	"github.com/IvanBrykalov/dnscache/policy/twoq"
)

func main() {
	// ---- Flags ----
	var (
		capacity = flag.Int("cap", cache.DefaultCapacity, "cache capacity (entries)")
		shards   = flag.Int("shards", cache.DefaultShards, "number of shards")
		polName  = flag.String("policy", "fifo", "eviction policy: fifo | lru | 2q | cursor")

		workers  = flag.Int("workers", 2*runtime.GOMAXPROCS(0), "number of worker goroutines")
		duration = flag.Duration("duration", 10*time.Second, "benchmark duration")
		readPct  = flag.Int("reads", 80, "read percentage [0..100]")

		hosts = flag.Int("hosts", 1_000, "distinct hostnames")
		zipfS = flag.Float64("zipf_s", 1.1, "Zipf s > 1 (skew)")
		zipfV = flag.Float64("zipf_v", 1.0, "Zipf v")
		seed  = flag.Int64("seed", time.Now().UnixNano(), "random seed")

		pprofAddr   = flag.String("pprof", "", "serve pprof at addr (e.g. :6060); empty = disabled")
		metricsAddr = flag.String("http", ":8080", "serve Prometheus metrics at addr; empty = disabled")
	)
	flag.Parse()

	pol, err := policyByName(*polName)
	if err != nil {
		log.Fatal(err)
	}

	// ---- pprof server (on DefaultServeMux) ----
	if *pprofAddr != "" {
		go func() {
			log.Printf("pprof: serving at %s", *pprofAddr)
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	// ---- Prometheus metrics (on DefaultServeMux) ----
	metrics := pmet.New(nil, "dnscache", "bench", nil)
	if *metricsAddr != "" {
		http.Handle("/metrics", promhttp.Handler())
		go func() {
			log.Printf("metrics: serving at %s", *metricsAddr)
			log.Println(http.ListenAndServe(*metricsAddr, nil))
		}()
	}

	// ---- Build cache ----
	c := cache.New(cache.Options{
		Capacity: *capacity,
		Shards:   *shards,
		Policy:   pol,
		Metrics:  metrics,
	})

	// ---- Snapshot flags for goroutines ----
	readPctVal := *readPct
	hostsMax := uint64(max(*hosts-1, 1))
	seedBase := *seed
	workersN := max(*workers, 1)

	// ---- Load generation ----
	var reads, writes, hits, total atomic.Uint64
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workersN; w++ {
		g.Go(func() error {
			// Each worker gets its own RNG + Zipf (rand.Rand is NOT goroutine-safe).
			r := rand.New(rand.NewSource(seedBase + int64(w)*9973))
			zipf := rand.NewZipf(r, *zipfS, *zipfV, hostsMax)

			for ctx.Err() == nil {
				n := zipf.Uint64()
				host := "host-" + strconv.FormatUint(n, 10) + ".example"
				total.Add(1)
				if int(r.Int31n(100)) < readPctVal {
					reads.Add(1)
					if c.Resolve(host) != "" {
						hits.Add(1)
					}
					continue
				}
				writes.Add(1)
				c.Update(host, addrFor(n))
			}
			return nil
		})
	}
	_ = g.Wait()
	elapsed := time.Since(start)

	// ---- Report ----
	readsN := reads.Load()
	hitRate := 0.0
	if readsN > 0 {
		hitRate = float64(hits.Load()) / float64(readsN) * 100
	}
	st := c.Stats()

	fmt.Printf("policy=%s cap=%d shards=%d workers=%d hosts=%d dur=%v seed=%d\n",
		*polName, st.Capacity, st.Shards, workersN, *hosts, elapsed, seedBase)
	fmt.Printf("ops=%d (%.0f ops/s)  reads=%d  writes=%d\n",
		total.Load(), float64(total.Load())/elapsed.Seconds(), readsN, writes.Load())
	fmt.Printf("hits=%d  hit-rate=%.2f%%  evictions=%d\n", hits.Load(), hitRate, st.Evictions)
	fmt.Printf("Len()=%d\n", st.Size)
}

func policyByName(name string) (policy.Policy[string], error) {
	switch name {
	case "fifo":
		return fifo.New[string](), nil
	case "lru":
		return lru.New[string](), nil
	case "2q":
		return twoq.New[string](0, 0), nil
	case "cursor":
		return cursor.New[string](), nil
	default:
		return nil, fmt.Errorf("unknown policy: %q (use fifo, lru, 2q or cursor)", name)
	}
}

// addrFor fabricates a stable IPv4 address for host n.
func addrFor(n uint64) string {
	return fmt.Sprintf("10.%d.%d.%d", (n>>16)&0xff, (n>>8)&0xff, n&0xff)
}
