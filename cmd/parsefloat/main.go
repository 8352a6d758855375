// Command parsefloat is a small demonstration binary for the parsefloat
// library (spec §9 supplemented feature), in the pack's convention of
// shipping a CLI alongside a library (scigolib-hdf5/cmd,
// mshafiee-bigmath/examples). It parses <integer> <fraction> <exponent>
// triples into float64 and float32 and reports which strategy resolved
// each one, or reads one triple per line from stdin when given "-".
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/parsefloat/parsefloat"
)

func asBits64(v float64) uint64 { return math.Float64bits(v) }
func asBits32(v float32) uint32 { return math.Float32bits(v) }

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: parsefloat <integer> <fraction> <exponent>")
		fmt.Fprintln(os.Stderr, "       parsefloat -   (read \"integer fraction exponent\" lines from stdin)")
	}
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	args := flag.Args()
	switch {
	case len(args) == 1 && args[0] == "-":
		runStdin(logger)
	case len(args) == 3:
		runOne(logger, args[0], args[1], args[2])
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func runStdin(logger *slog.Logger) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 3 {
			logger.Error("malformed line, want 3 fields", "line", scanner.Text())
			continue
		}
		runOne(logger, fields[0], fields[1], fields[2])
	}
	if err := scanner.Err(); err != nil {
		logger.Error("reading stdin", "err", err)
		os.Exit(1)
	}
}

func runOne(logger *slog.Logger, integer, fraction, exponentStr string) {
	exponent, err := strconv.ParseInt(exponentStr, 10, 32)
	if err != nil {
		logger.Error("invalid exponent", "exponent", exponentStr, "err", err)
		return
	}

	parsefloat.ResetStats()
	v64 := parsefloat.ParseFloat[float64]([]byte(integer), []byte(fraction), int32(exponent))
	stats64 := parsefloat.Stats()

	parsefloat.ResetStats()
	v32 := parsefloat.ParseFloat[float32]([]byte(integer), []byte(fraction), int32(exponent))
	stats32 := parsefloat.Stats()

	logger.Info("parsed",
		"integer", integer,
		"fraction", fraction,
		"exponent", exponent,
		"float64", v64,
		"float64_bits", fmt.Sprintf("%#016x", asBits64(v64)),
		"float64_strategy", strategyName(stats64),
		"float32", v32,
		"float32_bits", fmt.Sprintf("%#08x", asBits32(v32)),
		"float32_strategy", strategyName(stats32),
	)
}

func strategyName(s parsefloat.StrategyStats) string {
	switch {
	case s.FastPath != 0:
		return "fast"
	case s.ModeratePath != 0:
		return "moderate"
	case s.SlowPath != 0:
		return "slow"
	default:
		return "unknown"
	}
}
