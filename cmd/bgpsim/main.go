/* ============================================================= *\
   main.go

   CLI entry point and subcommand dispatch, in the teacher's
   switch-on-os.Args[1] style (see the original anaximander_simulator
   main.go).
\* ============================================================= */

package main

import (
	"flag"
	"log"
	"os"
)

func usage() {
	println("\nUsage of bgpsim:\n")
	println("  ./bgpsim run --relationships FILE --announcements FILE [--rov-asns FILE] [--out FILE] [--stats]")
	println("      Propagate routes to a fixed point and write the resulting RIB to a CSV file (default ribs.csv).")
	println("")
	println("  ./bgpsim batch --manifest FILE [--concurrency N]")
	println("      Run many independent scenarios concurrently, one per manifest line.")
	println("")
	println("Type")
	println("  ./bgpsim [mode] -h")
	println("for further information on each mode.")
}

func main() {
	log.SetFlags(0)
	if len(os.Args) == 1 {
		usage()
		return
	}

	switch command := os.Args[1]; command {
	case "run":
		os.Exit(runRunCommand(os.Args[2:]))
	case "batch":
		os.Exit(runBatchCommand(os.Args[2:]))
	case "-h", "--help", "help":
		usage()
	default:
		log.Println("Unknown command:", command)
		log.Println("Type './bgpsim -h' for help.")
		os.Exit(1)
	}
}

func runRunCommand(args []string) int {
	cmd := flag.NewFlagSet("run", flag.ExitOnError)

	var relationships, announcements, rovASNs, out, coneReport string
	var stats bool

	cmd.StringVar(&relationships, "relationships", "", "Path to the AS relationships file (CAIDA format, required)")
	cmd.StringVar(&announcements, "announcements", "", "Path to the announcements CSV file (required)")
	cmd.StringVar(&rovASNs, "rov-asns", "", "Path to the ROV-enabled ASNs file (optional)")
	cmd.StringVar(&out, "out", "ribs.csv", "Path to write the resulting RIB CSV")
	cmd.StringVar(&coneReport, "cone-report", "", "Optional path to write a customer-cone-size report")
	cmd.BoolVar(&stats, "stats", false, "Print graph/rank/convergence diagnostics")

	cmd.Parse(args)

	if relationships == "" || announcements == "" {
		log.Println("Error: --relationships and --announcements are required")
		usage()
		return 1
	}

	if err := simulate(relationships, announcements, rovASNs, out, stats, coneReport); err != nil {
		log.Println("Error:", err)
		return 1
	}
	return 0
}

func runBatchCommand(args []string) int {
	cmd := flag.NewFlagSet("batch", flag.ExitOnError)

	var manifest string
	var concurrency int

	cmd.StringVar(&manifest, "manifest", "", "Path to the manifest file (required): one relationships,announcements[,rov-asns[,output]] line per scenario")
	cmd.IntVar(&concurrency, "concurrency", 8, "Number of scenarios to run concurrently")

	cmd.Parse(args)

	if manifest == "" {
		log.Println("Error: --manifest is required")
		usage()
		return 1
	}
	if concurrency <= 0 {
		concurrency = 1
	}

	return runBatch(manifest, concurrency)
}
