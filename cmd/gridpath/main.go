// This defines a basic executable for generating maze images and
// solving terrain-plan images with A*.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/mkessel/gridpath/astar"
	"github.com/mkessel/gridpath/grid"
	"github.com/mkessel/gridpath/imagecodec"
	"github.com/mkessel/gridpath/mazegen"
	"github.com/mkessel/gridpath/mazegrid"
	"github.com/mkessel/gridpath/render"
)

// parseCoord reads an "x,y" flag value.
func parseCoord(s string) (grid.Coord, error) {
	var c grid.Coord
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return c, fmt.Errorf("coordinate must look like x,y, got %q", s)
	}
	if _, e := fmt.Sscanf(s, "%d,%d", &c.X, &c.Y); e != nil {
		return c, fmt.Errorf("coordinate must look like x,y, got %q", s)
	}
	return c, nil
}

// writePNG saves the image to the given path.
func writePNG(img image.Image, path string) error {
	f, e := os.Create(path)
	if e != nil {
		return e
	}
	defer f.Close()
	return png.Encode(f, img)
}

// generateMaze creates a maze, expands it into a terrain grid, and
// writes it as a png.
func generateMaze(width, height int, loops float64, seed int64, outFile string, asText bool) int {
	opts := []mazegen.Option{mazegen.WithLoopProbability(loops)}
	if seed >= 0 {
		opts = append(opts, mazegen.WithSeed(seed))
	}
	m, e := mazegen.Generate(width, height, opts...)
	if e != nil {
		fmt.Printf("Failed generating maze: %s\n", e)
		return 1
	}
	g, e := mazegrid.Expand(m)
	if e != nil {
		fmt.Printf("Failed expanding maze: %s\n", e)
		return 1
	}
	if asText {
		fmt.Print(render.Text(g))
	}
	if outFile != "" {
		if e = writePNG(imagecodec.Encode(g), outFile); e != nil {
			fmt.Printf("Error writing image to %s: %s\n", outFile, e)
			return 1
		}
		fmt.Printf("Image %s written OK.\n", outFile)
	}
	return 0
}

// solvePlan decodes a plan image, searches it, and writes the stamped
// result.
func solvePlan(inFile, startArg, goalArg, outFile string, asText bool) int {
	start, e := parseCoord(startArg)
	if e != nil {
		fmt.Printf("Invalid -start: %s\n", e)
		return 1
	}
	goal, e := parseCoord(goalArg)
	if e != nil {
		fmt.Printf("Invalid -goal: %s\n", e)
		return 1
	}

	f, e := os.Open(inFile)
	if e != nil {
		fmt.Printf("Error opening plan image %s: %s\n", inFile, e)
		return 1
	}
	pic, _, e := image.Decode(f)
	f.Close()
	if e != nil {
		fmt.Printf("Error parsing plan image %s: %s\n", inFile, e)
		return 1
	}

	g, e := imagecodec.Decode(pic)
	if e != nil {
		fmt.Printf("Error decoding plan: %s\n", e)
		return 1
	}

	res, e := astar.Find(g, start, goal)
	if e != nil {
		fmt.Printf("No solution: %s\n", e)
		return 1
	}
	fmt.Printf("Found a path of %d cells with total cost %d.\n", len(res.Path), res.TotalCost)

	if asText {
		fmt.Print(render.Text(g, render.WithPath(res.Path)))
	}
	if outFile != "" {
		stamped := g.StampPath(res.Path)
		if e = writePNG(imagecodec.Encode(stamped), outFile); e != nil {
			fmt.Printf("Error writing image to %s: %s\n", outFile, e)
			return 1
		}
		fmt.Printf("Image %s written OK.\n", outFile)
	}
	return 0
}

func run() int {
	var width, height int
	var loops float64
	var seed int64
	var inFile, outFile, startArg, goalArg string
	var asText bool
	flag.IntVar(&width, "width", 20,
		"The width of the generated maze, in cells.")
	flag.IntVar(&height, "height", 20,
		"The height of the generated maze, in cells.")
	flag.Float64Var(&loops, "loops", 0,
		"Extra-connection probability in [0,1). 0 gives a perfect maze.")
	flag.Int64Var(&seed, "seed", -1,
		"If non-negative, specifies the random seed to use.")
	flag.StringVar(&inFile, "in", "",
		"A png plan image to solve. Leave empty to generate a maze instead.")
	flag.StringVar(&outFile, "out", "",
		"The name of the .png file to which the result will be saved.")
	flag.StringVar(&startArg, "start", "",
		"The start coordinate for solving, as x,y.")
	flag.StringVar(&goalArg, "goal", "",
		"The goal coordinate for solving, as x,y.")
	flag.BoolVar(&asText, "text", false,
		"If set, prints the result as an emoji grid.")
	flag.Parse()

	if inFile != "" {
		if startArg == "" || goalArg == "" {
			fmt.Println("Solving requires -start and -goal.")
			fmt.Println("Run with -help for more information.")
			return 1
		}
		return solvePlan(inFile, startArg, goalArg, outFile, asText)
	}

	if width < 1 || height < 1 || (outFile == "" && !asText) {
		fmt.Println("Invalid or missing argument.")
		fmt.Println("Run with -help for more information.")
		return 1
	}
	return generateMaze(width, height, loops, seed, outFile, asText)
}

func main() {
	os.Exit(run())
}
