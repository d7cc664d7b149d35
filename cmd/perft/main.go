// Command perft runs the standard move-generator correctness benchmark:
// it counts leaf nodes at a fixed depth, with every move produced by
// pkg/movegen filtered down to legal moves by pkg/position's make_move
// oracle. With -divide it reports the per-root-move breakdown used to
// track down a movegen discrepancy.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/schollz/progressbar/v3"

	"github.com/ecthelion/corechess/pkg/fen"
	"github.com/ecthelion/corechess/pkg/movegen"
	"github.com/ecthelion/corechess/pkg/position"
)

func main() {
	fenFlag := flag.String("fen", fen.Startpos, "FEN of the position to benchmark")
	depth := flag.Int("depth", 5, "search depth in plies")
	divide := flag.Bool("divide", false, "report a per-root-move node count breakdown")
	plot := flag.String("plot", "", "write an HTML bar chart of nodes/depth and nodes/sec to this path")
	flag.Parse()

	pos := fen.Parse(*fenFlag)

	if *divide {
		runDivide(pos, *depth)
		return
	}

	nodesByDepth := make([]uint64, *depth+1)
	elapsedByDepth := make([]time.Duration, *depth+1)

	bar := progressbar.NewOptions(*depth,
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionSetItsString("depth"),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionShowCount(),
	)

	for d := 1; d <= *depth; d++ {
		start := time.Now()
		nodesByDepth[d] = perft(pos, d)
		elapsedByDepth[d] = time.Since(start)
		_ = bar.Add(1)

		nps := float64(nodesByDepth[d]) / elapsedByDepth[d].Seconds()
		fmt.Printf("depth %d: %d nodes in %s (%.0f nodes/sec)\n", d, nodesByDepth[d], elapsedByDepth[d], nps)
	}
	_ = bar.Close()

	if *plot != "" {
		if err := writePlot(*plot, nodesByDepth, elapsedByDepth); err != nil {
			log.Fatalf("perft: writing plot: %v", err)
		}
	}
}

// perft counts leaf nodes at depth, descending through every legal move.
func perft(pos *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	list := movegen.Generate(pos)
	var nodes uint64
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if pos.MakeMove(m) == position.Legal {
			nodes += perft(pos, depth-1)
		}
		pos.TakeMove()
	}
	return nodes
}

// runDivide prints, for every legal root move, the subtree node count at
// depth-1, the classic perft-divide debugging aid.
func runDivide(pos *position.Position, depth int) {
	if depth < 1 {
		log.Fatal("perft: -divide requires -depth >= 1")
	}

	list := movegen.Generate(pos)
	var total uint64
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if pos.MakeMove(m) != position.Legal {
			pos.TakeMove()
			continue
		}
		nodes := perft(pos, depth-1)
		pos.TakeMove()

		fmt.Printf("%s: %d\n", m.LongAlgebraic(), nodes)
		total += nodes
	}
	fmt.Printf("\ntotal: %d\n", total)
}

// writePlot renders an HTML bar chart of nodes and nodes/sec per depth,
// in the teacher tuner's go-echarts idiom.
func writePlot(path string, nodesByDepth []uint64, elapsedByDepth []time.Duration) error {
	depths := make([]string, 0, len(nodesByDepth)-1)
	nodeSeries := make([]opts.BarData, 0, len(nodesByDepth)-1)
	npsSeries := make([]opts.BarData, 0, len(nodesByDepth)-1)

	for d := 1; d < len(nodesByDepth); d++ {
		depths = append(depths, strconv.Itoa(d))
		nodeSeries = append(nodeSeries, opts.BarData{Value: nodesByDepth[d]})
		nps := float64(nodesByDepth[d]) / elapsedByDepth[d].Seconds()
		npsSeries = append(npsSeries, opts.BarData{Value: nps})
	}

	bar := charts.NewBar()
	bar.SetXAxis(depths).
		AddSeries("nodes", nodeSeries).
		AddSeries("nodes/sec", npsSeries)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return bar.Render(f)
}
