// Command suffixidx is a benchmarking driver, not part of the library's
// core contract. It builds either index family over an input file and
// reports wall time and peak allocation.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/arevalo-dev/suffixidx"
)

type memMonitor struct {
	maxAlloc uint64
	stop     chan struct{}
}

func newMemMonitor() *memMonitor {
	mm := &memMonitor{stop: make(chan struct{})}
	go func() {
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

func (mm *memMonitor) Stop() uint64 {
	close(mm.stop)
	return mm.maxAlloc
}

// loadText reads path, optionally NFC-normalises it (the one legitimate
// use of Unicode normalisation this module makes — ahead of indexing, not
// inside it, since the core treats bytes as opaque), and appends the
// sentinel byte the core requires.
func loadText(path string, normalize bool) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if normalize {
		raw = norm.NFC.Bytes(raw)
	}
	for _, b := range raw {
		if b == 0 {
			return nil, fmt.Errorf("suffixidx: input file contains a zero byte, which collides with the sentinel")
		}
	}
	return append(raw, 0), nil
}

func runArray(text []byte, variant string) {
	mm := newMemMonitor()
	start := time.Now()
	builder := suffixidx.NewSuffixArrayBuilder[uint32](text)
	if variant == "recursive" {
		builder = builder.Recursive()
	}
	idx, err := builder.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "build failed:", err)
		os.Exit(1)
	}
	dur := time.Since(start)
	peak := mm.Stop()
	fmt.Printf("suffix-array,%s,%d,%s,%d,sa_len=%d\n", variant, len(text), dur, peak, idx.Len())
}

func runTree(text []byte) {
	mm := newMemMonitor()
	start := time.Now()
	_, err := suffixidx.NewSuffixTreeBuilder(text).Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "build failed:", err)
		os.Exit(1)
	}
	dur := time.Since(start)
	peak := mm.Stop()
	fmt.Printf("suffix-tree,ukkonen,%d,%s,%d\n", len(text), dur, peak)
}

func main() {
	kind := flag.String("kind", "array", "index kind: array or tree")
	variant := flag.String("variant", "stack", "suffix array SA-IS variant: stack or recursive")
	normalize := flag.Bool("normalize", false, "NFC-normalise input text before indexing")
	path := flag.String("file", "", "input text file")
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "usage: suffixidx -file=<path> [-kind=array|tree] [-variant=stack|recursive] [-normalize]")
		os.Exit(1)
	}

	text, err := loadText(*path, *normalize)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	switch *kind {
	case "tree":
		runTree(text)
	default:
		runArray(text, *variant)
	}
}
