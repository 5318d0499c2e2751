/* ============================================================= *\
   batch.go

   "batch" subcommand: run many independent simulation scenarios
   concurrently across a worker pool, one single-threaded engine per
   scenario. Grounded on rib.go's parse_ribs/pool.Launch_pool(16,
   collectors, f) pattern: the pool parallelizes across independent
   units of work, never within one.
\* ============================================================= */

package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	pool "github.com/Emeline-1/pool"
)

// batchScenario is one manifest row: relationships,announcements,rov-asns,output.
// rov-asns and output may be empty; output defaults to "<key>-ribs.csv",
// e.g. "scenario-1-ribs.csv".
type batchScenario struct {
	key             string
	relationships   string
	announcements   string
	rovASNs         string
	output          string
}

// errorCollector gathers per-scenario failures under a mutex, the way
// safeset.go's SafeSet protects concurrent writers.
type errorCollector struct {
	mu     sync.Mutex
	errors []string
}

func (c *errorCollector) add(key string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errors = append(c.errors, fmt.Sprintf("%s: %v", key, err))
}

func runBatch(manifestFile string, concurrency int) int {
	scenarios, err := loadManifest(manifestFile)
	if err != nil {
		log.Println("Error:", err)
		return 1
	}
	if len(scenarios) == 0 {
		log.Println("Error: manifest has no scenarios")
		return 1
	}

	byKey := make(map[string]batchScenario, len(scenarios))
	keys := make([]string, 0, len(scenarios))
	for _, s := range scenarios {
		byKey[s.key] = s
		keys = append(keys, s.key)
	}

	failures := &errorCollector{}
	worker := func(key string) {
		s := byKey[key]
		if err := runOne(s); err != nil {
			failures.add(key, err)
		}
	}

	log.Printf("Running %d scenarios with concurrency %d...\n", len(keys), concurrency)
	pool.Launch_pool(concurrency, keys, worker)

	if len(failures.errors) > 0 {
		for _, msg := range failures.errors {
			log.Println("Error:", msg)
		}
		return 1
	}
	log.Println("All scenarios converged.")
	return 0
}

func runOne(s batchScenario) error {
	output := s.output
	if output == "" {
		output = s.key + "-ribs.csv"
	}
	return simulate(s.relationships, s.announcements, s.rovASNs, output, false, "")
}

// loadManifest reads a CSV-ish manifest: one scenario per line,
// fields relationships,announcements,rov-asns,output. Blank lines and
// lines starting with '#' are skipped. The key is the 1-based line
// number among data lines, matching the teacher's convention of
// keying pool work items by a stable string (collector names, ASes of
// interest).
func loadManifest(filename string) ([]batchScenario, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening manifest: %w", err)
	}
	defer f.Close()

	var scenarios []batchScenario
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		line++
		fields := strings.Split(text, ",")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("manifest line %d: need at least relationships,announcements", line)
		}
		s := batchScenario{
			key:           "scenario-" + strconv.Itoa(line),
			relationships: fields[0],
			announcements: fields[1],
		}
		if len(fields) >= 3 {
			s.rovASNs = fields[2]
		}
		if len(fields) >= 4 {
			s.output = fields[3]
		}
		scenarios = append(scenarios, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning manifest: %w", err)
	}
	return scenarios, nil
}
