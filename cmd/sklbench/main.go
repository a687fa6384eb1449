// sklbench runs synthetic workloads against the skiplist map and reports
// throughput, average search cost, and the resulting level distribution.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/yplusplus/skiplist"
)

var (
	entries = flag.Int("entries", 100_000, "Number of keys preloaded before the timed run.")
	ops     = flag.Int("ops", 500_000, "Number of timed operations per workload.")
	seed    = flag.Int64("seed", 42, "Seed for the workload key streams (node heights are fixed by the map's contract).")
	dists   = flag.String("dists", "uniform,ascending,zipf", "Comma-separated key distributions to run.")
)

// workloads are read/write mixes expressed as a write percentage.
var workloads = []struct {
	name         string
	writePercent int
}{
	{name: "ReadMostly", writePercent: 5},
	{name: "Mixed", writePercent: 50},
	{name: "WriteHeavy", writePercent: 90},
}

type keyStream func() int

func newKeyStream(dist string, keyRange int, seed int64) (keyStream, error) {
	rng := rand.New(rand.NewSource(seed))
	switch dist {
	case "uniform":
		return func() int { return rng.Intn(keyRange) }, nil
	case "ascending":
		next := 0
		return func() int {
			next++
			return next
		}, nil
	case "zipf":
		z := rand.NewZipf(rng, 1.2, 1, uint64(keyRange-1))
		return func() int { return int(z.Uint64()) }, nil
	default:
		return nil, fmt.Errorf("unknown distribution %q", dist)
	}
}

type runResult struct {
	dist, workload string
	elapsed        time.Duration
	stepsPerSearch float64
	finalLen       int
}

func runWorkload(dist, workload string, writePercent int) (runResult, error) {
	keyRange := *entries * 2
	keys, err := newKeyStream(dist, keyRange, *seed)
	if err != nil {
		return runResult{}, err
	}

	m := skiplist.New[int, int]()
	preload, err := newKeyStream(dist, keyRange, *seed+1)
	if err != nil {
		return runResult{}, err
	}
	for i := 0; i < *entries; i++ {
		m.Insert(preload(), i)
	}

	decide := rand.New(rand.NewSource(*seed + 2))
	before := m.Stats()

	start := time.Now()
	for i := 0; i < *ops; i++ {
		k := keys()
		if decide.Intn(100) < writePercent {
			if decide.Intn(2) == 0 {
				m.Insert(k, i)
			} else {
				m.Delete(k)
			}
		} else {
			m.Get(k)
		}
	}
	elapsed := time.Since(start)

	after := m.Stats()
	searches := after.Searches - before.Searches
	steps := after.Steps - before.Steps
	stepsPerSearch := 0.0
	if searches > 0 {
		stepsPerSearch = float64(steps) / float64(searches)
	}

	return runResult{
		dist:           dist,
		workload:       workload,
		elapsed:        elapsed,
		stepsPerSearch: stepsPerSearch,
		finalLen:       m.Len(),
	}, nil
}

func renderResults(results []runResult) {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		ms := float64(r.elapsed.Microseconds()) / 1000.0
		thr := float64(*ops) / r.elapsed.Seconds()
		rows = append(rows, []string{
			r.dist,
			r.workload,
			fmt.Sprintf("%d", *ops),
			fmt.Sprintf("%.3f", ms),
			fmt.Sprintf("%.0f", thr),
			fmt.Sprintf("%.2f", r.stepsPerSearch),
			fmt.Sprintf("%d", r.finalLen),
		})
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Dist", "Workload", "Ops", "Elapsed(ms)", "Ops/s", "Steps/Search", "Final Len"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
}

// renderHeightDistribution prints how node heights spread over the levels
// after a plain ascending load.
func renderHeightDistribution() {
	m := skiplist.New[int, int]()
	for i := 0; i < *entries; i++ {
		m.Insert(i, i)
	}

	hist := m.HeightHistogram()
	top := len(hist)
	for top > 0 && hist[top-1] == 0 {
		top--
	}

	rows := make([][]string, 0, top)
	for h := 0; h < top; h++ {
		pct := 100 * float64(hist[h]) / float64(m.Len())
		rows = append(rows, []string{
			fmt.Sprintf("%d", h+1),
			fmt.Sprintf("%d", hist[h]),
			fmt.Sprintf("%.3f%%", pct),
		})
	}

	fmt.Printf("height distribution over %d entries:\n", m.Len())
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Height", "Nodes", "Share"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.AppendBulk(rows)
	table.Render()
}

func main() {
	flag.Parse()

	var results []runResult
	for _, dist := range strings.Split(*dists, ",") {
		dist = strings.TrimSpace(dist)
		if dist == "" {
			continue
		}
		for _, workload := range workloads {
			r, err := runWorkload(dist, workload.name, workload.writePercent)
			if err != nil {
				slog.Error("Workload failed.", "dist", dist, "workload", workload.name, "err", err)
				os.Exit(1)
			}
			results = append(results, r)
		}
	}

	renderResults(results)
	fmt.Println()
	renderHeightDistribution()
}
