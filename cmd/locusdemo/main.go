// Command locusdemo renders the locus demo charts to PNG or SVG.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/chewxy/math32"

	"github.com/gogpu/locus"
	"github.com/gogpu/locus/backend/svg"
	"github.com/gogpu/locus/cluster"
)

func main() {
	var (
		demo      = flag.String("demo", "scatter", "demo to render: scatter, kmeans, trend")
		width     = flag.Int("width", 800, "image width")
		height    = flag.Int("height", 600, "image height")
		output    = flag.String("output", "", "output file (defaults to <demo>.png or <demo>.svg)")
		toSVG     = flag.Bool("svg", false, "render SVG instead of PNG")
		themeName = flag.String("theme", "matplotlib", "color theme: dracula, nord, viridis, solarized-dark, solarized-light, github-dark, github-light, matplotlib")
		seed      = flag.Uint64("seed", 7, "random seed for the synthetic datasets")
	)
	flag.Parse()

	theme, ok := locus.ThemeByName(*themeName)
	if !ok {
		log.Printf("Unknown theme %q, using the default", *themeName)
	}

	graph, err := buildDemo(*demo, theme, *seed)
	if err != nil {
		log.Fatalf("Failed to build demo: %v", err)
	}

	path := *output
	if path == "" {
		ext := ".png"
		if *toSVG {
			ext = ".svg"
		}
		path = *demo + ext
	}

	if *toSVG {
		err = renderSVG(graph, theme, path, *width, *height)
	} else {
		err = renderPNG(graph, theme, path, *width, *height)
	}
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", path, *width, *height)
}

func buildDemo(name string, theme locus.Theme, seed uint64) (*locus.Graph, error) {
	switch strings.ToLower(name) {
	case "scatter":
		data := locus.MakeMoons(locus.WithSeed(seed), locus.WithSamples(200))
		scatter := locus.NewScatter(data)
		scatter.ColorFunc = func(i int, _ locus.Point) locus.RGBA {
			return theme.Cycle.Color(i % 2)
		}
		return locus.NewGraph(scatter,
			locus.WithTheme(theme),
			locus.WithGrid(locus.OrientBoth),
			locus.WithTickLabels(),
			locus.WithLegend(locus.LegendTopRight,
				locus.LegendEntry{Label: "upper moon", Color: theme.Cycle.Color(0)},
				locus.LegendEntry{Label: "lower moon", Color: theme.Cycle.Color(1)},
			),
		), nil

	case "kmeans":
		data := locus.MakeCircles(locus.WithSeed(seed), locus.WithSamples(300))
		km := cluster.NewKMeans(3, data, cluster.WithSeed(seed))
		km.Fit()
		log.Printf("kmeans converged=%v after %d iterations", km.Converged(), km.Iterations())
		return locus.NewGraph(km.Plot(),
			locus.WithTheme(theme),
			locus.WithGrid(locus.OrientBoth),
			locus.WithTickLabels(),
		), nil

	case "trend":
		points := make([]locus.Point, 0, 120)
		for i := 0; i < 120; i++ {
			x := float32(i) / 10
			points = append(points, locus.Pt(x, math32.Exp(-x/4)*math32.Cos(2*x)))
		}
		trend := locus.NewLinePlot(locus.NewDataset(points))
		trend.Style.Arrow = true
		return locus.NewGraph(trend,
			locus.WithTheme(theme),
			locus.WithGrid(locus.OrientHorizontal),
			locus.WithTickLabels(),
		), nil

	default:
		return nil, fmt.Errorf("unknown demo %q", name)
	}
}

func renderPNG(graph *locus.Graph, theme locus.Theme, path string, width, height int) error {
	canvas := locus.NewRasterCanvas(width, height)
	canvas.Clear(theme.Background)
	graph.Render(canvas)
	return canvas.SavePNG(path)
}

func renderSVG(graph *locus.Graph, theme locus.Theme, path string, width, height int) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	canvas := svg.New(f, width, height)
	canvas.Clear(theme.Background)
	graph.Render(canvas)
	canvas.Close()
	return nil
}
