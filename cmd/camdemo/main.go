// Command camdemo demonstrates the cam toolpath engine.
//
// It builds a sample plate (a square with a round-ish corner pocket and an
// engraved label path), runs each operation over it, and prints the
// resulting toolpaths as JSON together with pass counts and cycle
// statistics.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gocam/cam"
)

// scale is the integer machine-unit multiplier: 100000 units per mm.
const scale = 100000

func mm(v float64) int64 {
	return int64(v * scale)
}

func main() {
	var (
		cutter  = flag.Float64("cutter", 3.0, "cutter diameter in mm")
		overlap = flag.Float64("overlap", 0.5, "pass overlap fraction [0,1)")
		climb   = flag.Bool("climb", false, "climb milling")
		raster  = flag.Bool("raster", false, "use raster pocket clearing")
		verbose = flag.Bool("v", false, "debug logging to stderr")
		emit    = flag.Bool("json", false, "print toolpaths as JSON")
	)
	flag.Parse()

	if *verbose {
		cam.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	g := cam.NewGenerator()

	// A 40x40 mm pocket inside an 80x80 mm plate outline.
	plate := cam.PathSet{cam.Polygon(
		cam.Pt(0, 0), cam.Pt(mm(80), 0), cam.Pt(mm(80), mm(80)), cam.Pt(0, mm(80)),
	)}
	pocket := cam.PathSet{cam.Polygon(
		cam.Pt(mm(20), mm(20)), cam.Pt(mm(60), mm(20)),
		cam.Pt(mm(60), mm(60)), cam.Pt(mm(20), mm(60)),
	)}

	params := cam.Params{
		CutterDiameter: mm(*cutter),
		Overlap:        *overlap,
		Climb:          *climb,
		Width:          mm(2 * *cutter),
		Spacing:        mm(*cutter),
		SafeZ:          mm(5),
		BotZ:           -mm(6),
	}
	if *raster {
		params.Strategy = cam.StrategyRaster
	}

	run := func(name string, op cam.Op, geom cam.PathSet) {
		passes, err := g.Generate(op, geom, params)
		if err != nil {
			log.Fatalf("%s: %v", name, err)
		}
		motion := cam.LinkAtSafeHeight(passes.WithDepth(params.BotZ), params.SafeZ)
		cut, travel := cam.CycleLength(motion, 0)
		fmt.Printf("%-16s %3d passes  cut %7.1f mm  travel %7.1f mm\n",
			name, len(passes), cut/scale, travel/scale)
		if *emit {
			data, err := passes.ToJSON()
			if err != nil {
				log.Fatalf("%s: %v", name, err)
			}
			fmt.Println(string(data))
		}
	}

	run("pocket", cam.OpPocket, pocket)
	run("inside-outline", cam.OpInsideOutline, plate)
	run("outside-outline", cam.OpOutsideOutline, plate)
	run("engrave", cam.OpEngrave, plate)
	run("perforate", cam.OpPerforate, plate)
	run("drill", cam.OpDrill, pocket)
	run("v-groove", cam.OpVGroove, plate)

	// Tabs: keep the plate anchored with two 8 mm bridges.
	tabs := cam.PathSet{
		cam.Polygon(cam.Pt(mm(36), -mm(5)), cam.Pt(mm(44), -mm(5)), cam.Pt(mm(44), mm(5)), cam.Pt(mm(36), mm(5))),
		cam.Polygon(cam.Pt(mm(36), mm(75)), cam.Pt(mm(44), mm(75)), cam.Pt(mm(44), mm(85)), cam.Pt(mm(36), mm(85))),
	}
	outline, err := g.Generate(cam.OpOutsideOutline, plate, params)
	if err != nil {
		log.Fatalf("tab demo: %v", err)
	}
	var tagged cam.PathSet
	for _, pass := range outline {
		split, err := cam.SplitPathOverTabs(g.Engine(), pass, tabs, -mm(6), -mm(2))
		if err != nil {
			log.Fatalf("tab split: %v", err)
		}
		tagged = append(tagged, split...)
	}
	fmt.Printf("%-16s %3d depth-tagged segments\n", "tab split", len(tagged))
}
