//go:build avogen
// +build avogen

package main

import (
	"flag"
	"strings"

	. "github.com/mmcloughlin/avo/build"
)

var (
	component = flag.String("component", "all", "component to generate")
)

// main emits the AVX2 classification kernels backing internal/simd256's
// amd64 build. Run via:
//
//	go run -tags avogen ./internal/avo -out internal/simd256/classify_amd64.s
//
// from the repository root. No -stubs file is needed: the Go declarations
// already live in internal/simd256/ops_amd64.go.
func main() {
	flag.Parse()

	comp := strings.ToLower(*component)

	Package("github.com/basisbyte/utf8valid/internal/simd256")
	ConstraintExpr("amd64")
	ConstraintExpr("!noasm")

	if comp == "shuffle" || comp == "all" {
		genShuffleKernel()
	}
	if comp == "compare" || comp == "all" {
		genCmpGTKernel()
	}
	if comp == "arith" || comp == "all" {
		genSatAddU8Kernel()
		genSatSubU8Kernel()
		genAddBKernel()
		genSubBKernel()
		genOrKernel()
		genAndKernel()
	}
	if comp == "shift" || comp == "all" {
		genSrli16Kernel()
		genConcatShiftKernel()
	}
	if comp == "reduce" || comp == "all" {
		genIsZeroKernel()
		genExtractU32Kernel()
	}

	Generate()
}
