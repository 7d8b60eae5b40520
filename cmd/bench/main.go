package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/viniciusth/suffixtree"
)

type variant struct {
	name   string
	config func(*suffixtree.Builder) *suffixtree.Builder
}

var variants = map[string]variant{
	"full":     {name: "full", config: func(b *suffixtree.Builder) *suffixtree.Builder { return b }},
	"no_index": {name: "no_index", config: func(b *suffixtree.Builder) *suffixtree.Builder { return b.SkipIndex() }},
	"utf8": {name: "utf8", config: func(b *suffixtree.Builder) *suffixtree.Builder {
		return b.FoldCase().Normalize()
	}},
}

type densityType string

const (
	densityLow  densityType = "low"
	densityHigh densityType = "high"
)

type memMonitor struct {
	maxAlloc uint64
	stop     chan struct{}
	done     chan struct{}
}

func newMemMonitor() *memMonitor {
	mm := &memMonitor{stop: make(chan struct{}), done: make(chan struct{})}
	go func() {
		defer close(mm.done)
		for {
			var m runtime.MemStats
			runtime.ReadMemStats(&m)
			if m.Alloc > mm.maxAlloc {
				mm.maxAlloc = m.Alloc
			}
			select {
			case <-mm.stop:
				return
			default:
				time.Sleep(10 * time.Millisecond)
			}
		}
	}()
	return mm
}

// Stop waits for the sampler to exit before reading the peak.
func (mm *memMonitor) Stop() uint64 {
	close(mm.stop)
	<-mm.done
	return mm.maxAlloc
}

func getCurrentAlloc() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}

func measureBuild(first, second string, config func(*suffixtree.Builder) *suffixtree.Builder) (time.Duration, uint64, uint64, *suffixtree.CommonSubstrings) {
	runtime.GC()
	mm := newMemMonitor()
	start := time.Now()
	builder := config(suffixtree.NewBuilder(first, second))
	cs, err := builder.Build()
	if err != nil {
		panic(err)
	}
	dur := time.Since(start)
	peak := mm.Stop()
	runtime.GC()
	alloc := getCurrentAlloc()
	return dur, peak, alloc, cs
}

func measureQuery(cs *suffixtree.CommonSubstrings, ranks []int) (time.Duration, uint64, uint64) {
	runtime.GC()
	mm := newMemMonitor()
	start := time.Now()
	for _, k := range ranks {
		_, _ = cs.Kth(k)
	}
	dur := time.Since(start)
	peak := mm.Stop()
	runtime.GC()
	alloc := getCurrentAlloc()
	return dur, peak, alloc
}

func randomString(r *rand.Rand, n, alphabet int) []byte {
	s := make([]byte, n)
	for i := range s {
		s[i] = byte(r.Intn(alphabet) + 'a')
	}
	return s
}

// In high density runs the second string is the first one with a few
// mutations, so most of their substrings are shared.
func runBenchmark(v variant, N, A, Q, runs int, density densityType) {
	for run := 0; run < runs; run++ {
		r := rand.New(rand.NewSource(int64(run)))
		first := randomString(r, N, A)
		var second []byte
		if density == densityHigh {
			second = append([]byte{}, first...)
			for i := 0; i < N/100+1; i++ {
				second[r.Intn(N)] = byte(r.Intn(A) + 'a')
			}
		} else {
			second = randomString(r, N, A)
		}

		bt, bp, ba, cs := measureBuild(string(first), string(second), v.config)
		ranks := make([]int, Q)
		for i := range ranks {
			if c := cs.Count(); c > 0 {
				ranks[i] = r.Intn(c)
			}
		}
		qt, qp, qa := measureQuery(cs, ranks)
		fmt.Printf("%s,%d,%d,%d,%s,%d,%.0f,%d,%d,%.0f,%d,%d\n",
			v.name, N, A, Q, density, cs.Count(),
			float64(bt.Nanoseconds()), bp, ba,
			float64(qt.Nanoseconds()), qp, qa)
	}
}

func main() {
	variantName := flag.String("variant", "", "Variant to benchmark")
	n := flag.Int("n", 0, "Length N of each string")
	a := flag.Int("a", 26, "Alphabet size A")
	q := flag.Int("q", 0, "Number of rank queries Q")
	runs := flag.Int("runs", 3, "Number of runs for averaging")
	d := flag.String("d", "low", "Density: low or high")
	cpuprofile := flag.String("cpuprofile", "", "Write CPU profile to file")
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not create CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "could not start CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	if *variantName == "" || *n <= 0 || *q <= 0 || *a <= 0 || *a > 26 {
		fmt.Println("Usage: go run main.go -variant=<variant> -n=<N> -a=<A> -q=<Q> -d=<density> [-runs=<runs>]")
		fmt.Println("Available variants:", variants)
		os.Exit(1)
	}

	v, ok := variants[*variantName]
	if !ok {
		fmt.Println("Invalid variant:", *variantName)
		os.Exit(1)
	}

	runBenchmark(v, *n, *a, *q, *runs, densityType(*d))
}
