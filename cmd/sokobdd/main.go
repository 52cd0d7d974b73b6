// Command sokobdd solves a Sokoban puzzle by symbolic reachability over a
// reduced ordered binary decision diagram.
//
// Usage:
//
//	sokobdd [-verbose] [-timeout DURATION] [PATH]
//
// With PATH given, the puzzle is read from that file; otherwise it is read
// from standard input. Exit status is 0 on a found solution, non-zero on a
// parse error, a structurally impossible board, or an exhausted search.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/sokobdd/annotate"
	"github.com/katalvlaran/sokobdd/bddfacade"
	"github.com/katalvlaran/sokobdd/sokoboard"
	"github.com/katalvlaran/sokobdd/solve"
)

// Exit codes distinguish a malformed input file, a structurally impossible
// board, a correctly-parsed board with no solution, and an internal solver
// failure.
const (
	exitOK = iota
	exitParseError
	exitStructuralError
	exitNoSolution
	exitInternalError
)

// Engine sizing. These are fixed constants rather than flags: table/cache
// sizing is a tuning knob internal to the opaque BDD engine, not something
// a puzzle solver's end user needs to control.
const (
	defaultTableSize   = 1 << 16
	defaultCacheSize   = 1 << 14
	defaultGranularity = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sokobdd", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("verbose", false, "print fixpoint iteration diagnostics")
	timeout := fs.Duration("timeout", 0, "abort the search after this duration (0 = no timeout)")
	if err := fs.Parse(args); err != nil {
		return exitParseError
	}

	r, closeFn, err := openInput(fs.Args(), stderr)
	if err != nil {
		return exitParseError
	}
	defer closeFn()

	fmt.Fprintln(stdout, "Starting")

	board, err := sokoboard.ParseBoard(r)
	if err != nil {
		fmt.Fprintf(stderr, "parse error: %v\n", err)
		return exitParseError
	}

	ab, err := annotate.Annotate(board)
	if err != nil {
		var structural *annotate.StructuralError
		if errors.As(err, &structural) {
			fmt.Fprintf(stderr, "impossible board: %v\n", err)
			return exitStructuralError
		}
		fmt.Fprintf(stderr, "internal error: %v\n", err)
		return exitInternalError
	}

	engine, err := bddfacade.Init(ab.VarCount, defaultTableSize, defaultCacheSize, defaultGranularity)
	if err != nil {
		fmt.Fprintf(stderr, "internal error: %v\n", err)
		return exitInternalError
	}
	if *verbose {
		cfg := engine.Stats()
		fmt.Fprintf(stdout, "  engine: tableSize=%d cacheSize=%d granularity=%d\n", cfg.TableSize, cfg.CacheSize, cfg.Granularity)
	}

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	opts := []solve.Option{solve.WithContext(ctx)}
	if *verbose {
		opts = append(opts, solve.WithOnIteration(func(step, nodeCount int) {
			fmt.Fprintf(stdout, "  iteration %d: frontier has %d nodes\n", step, nodeCount)
		}))
	}

	result, err := solve.Solve(engine, ab, opts...)
	if err != nil {
		fmt.Fprintf(stderr, "internal error: %v\n", err)
		return exitInternalError
	}

	if !result.Won {
		fmt.Fprintln(stdout, "no solution")
		if *verbose && result.ReachableStates != nil {
			fmt.Fprintf(stdout, "  reachable configurations: %s\n", result.ReachableStates.String())
		}
		return exitNoSolution
	}

	fmt.Fprintf(stdout, "Won in %d steps\n", result.Steps)
	fmt.Fprintf(stdout, "Solution: %s\n", result.Moves)
	if *verbose && result.ReachableStates != nil {
		fmt.Fprintf(stdout, "  reachable configurations: %s\n", result.ReachableStates.String())
	}
	return exitOK
}

// openInput returns a reader over PATH (the sole positional argument) or
// stdin if none was given, plus a matching close function.
func openInput(positional []string, stderr io.Writer) (io.Reader, func(), error) {
	if len(positional) == 0 {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(positional[0])
	if err != nil {
		fmt.Fprintf(stderr, "cannot open %s: %v\n", positional[0], err)
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
