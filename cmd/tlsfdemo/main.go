// Command tlsfdemo acquires a region, initializes a pool over it, runs
// a handful of allocate/free cycles, and reports usage statistics.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"unsafe"

	"github.com/go-tlsf/tlsf"
	"github.com/go-tlsf/tlsf/region"
)

// demoConfig holds the knobs runDemo needs, kept separate from flag.FlagSet
// so the demo logic itself can be driven directly from a test.
type demoConfig struct {
	poolSize  int
	extraSize int
	allocSize int64
	verbose   bool
}

func main() {
	cfg := demoConfig{}
	flag.IntVar(&cfg.poolSize, "pool-size", 64*1024, "bytes to acquire for the pool's first area")
	flag.IntVar(&cfg.extraSize, "extra-size", 0, "bytes to acquire for a second area added via AddArea (0 to skip)")
	flag.Int64Var(&cfg.allocSize, "alloc-size", 256, "bytes requested per demo allocation")
	flag.BoolVar(&cfg.verbose, "verbose", false, "log each allocate/free step")
	flag.Parse()

	if err := runDemo(cfg, os.Stdout); err != nil {
		log.Fatalf("tlsfdemo: %v", err)
	}
}

// runDemo wires region, tlsf, and (optionally) a second area together
// end to end, writing a line per step to out when cfg.verbose is set
// and always printing the final usage totals.
func runDemo(cfg demoConfig, out io.Writer) error {
	r, err := region.Acquire(cfg.poolSize)
	if err != nil {
		return fmt.Errorf("acquire region: %w", err)
	}
	defer r.Release()

	pool, usable, err := tlsf.Init(r.Bytes())
	if err != nil {
		return fmt.Errorf("init pool: %w", err)
	}
	if cfg.verbose {
		fmt.Fprintf(out, "init: pool=%d bytes usable=%d bytes\n", cfg.poolSize, usable)
	}

	if cfg.extraSize > 0 {
		extra, err := region.Acquire(cfg.extraSize)
		if err != nil {
			return fmt.Errorf("acquire extra area: %w", err)
		}
		defer extra.Release()

		added, err := pool.AddArea(extra.Bytes())
		if err != nil {
			return fmt.Errorf("add area: %w", err)
		}
		if cfg.verbose {
			fmt.Fprintf(out, "add-area: extra=%d bytes added=%d bytes\n", cfg.extraSize, added)
		}
	}

	const demoAllocs = 4
	pointers := make([]unsafe.Pointer, 0, demoAllocs)
	for i := 0; i < demoAllocs; i++ {
		p, err := pool.Allocate(cfg.allocSize)
		if err != nil {
			fmt.Fprintf(out, "allocate #%d failed: %v (used=%d max=%d)\n", i, err, pool.UsedSize(), pool.MaxSize())
			break
		}
		if cfg.verbose {
			fmt.Fprintf(out, "allocate #%d: used=%d max=%d\n", i, pool.UsedSize(), pool.MaxSize())
		}
		pointers = append(pointers, p)
	}

	for i, p := range pointers {
		pool.Free(p)
		if cfg.verbose {
			fmt.Fprintf(out, "free #%d: used=%d max=%d\n", i, pool.UsedSize(), pool.MaxSize())
		}
	}

	fmt.Fprintf(out, "final: used=%d max=%d\n", pool.UsedSize(), pool.MaxSize())
	return nil
}
