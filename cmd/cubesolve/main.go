// Command cubesolve drives the T-tetracube cube-tiling enumerator: it
// runs the solver end to end and reports progress to stderr, with an
// optional JSON dump of the distinct solutions to stdout.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/EricSpencer00/cubed-pack-solve/solver"
)

func main() {
	var (
		max      = flag.Int("max", 0, "stop after this many distinct solutions (0 = unlimited)")
		tutorial = flag.Bool("tutorial", false, "attach a gravity-safe assembly order to each solution")
		jsonOut  = flag.Bool("json", false, "dump the full result as JSON to stdout")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := []solver.Option{
		solver.WithContext(ctx),
		solver.WithTutorial(*tutorial),
		solver.WithProgress(func(r solver.Report) {
			fmt.Fprintf(os.Stderr, "pulled=%d accepted=%d unique=%d elapsed=%s\n",
				r.Pulled, r.Accepted, r.Unique, r.Elapsed.Round(time.Millisecond))
		}),
	}
	if *max > 0 {
		opts = append(opts, solver.WithMaxSolutions(*max))
	}

	result, err := solver.Run(opts...)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "cubesolve:", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "done: %d distinct solution(s) in %s\n",
		len(result.Solutions), result.Final.Elapsed.Round(time.Millisecond))

	if *jsonOut {
		meta := solver.NewResultMetadata(result, time.Now().UTC().Format(time.RFC3339))
		out := struct {
			Metadata  solver.ResultMetadata    `json:"metadata"`
			Solutions []solver.SolutionPayload `json:"solutions"`
		}{
			Metadata:  meta,
			Solutions: result.Solutions,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintln(os.Stderr, "cubesolve: encoding result:", err)
			os.Exit(1)
		}
	}
}
