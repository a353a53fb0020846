// terrainview is a CLI utility for inspecting the procedural terrain and
// textures without running the simulation.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"math"
	"os"

	"github.com/hexlab-games/hillslinger/internal/config"
	"github.com/hexlab-games/hillslinger/internal/engine/terrain"
	"github.com/hexlab-games/hillslinger/internal/engine/texture"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "heightmap":
		cmdHeightmap(args)
	case "ball":
		cmdBall(args)
	case "stats":
		cmdStats(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`terrainview - terrain and texture inspection utility

Usage:
  terrainview <command> [options]

Commands:
  heightmap [-seed N] [-size N] [-out FILE]  Render a shaded heightmap PNG
  ball [-size N] [-out FILE]                 Render the player ball texture PNG
  stats [-seed N]                            Print terrain height statistics

Examples:
  terrainview heightmap -seed 123 -out terrain.png
  terrainview ball -size 512 -out ball.png
  terrainview stats -seed 7`)
}

func generateField(seed int64) *terrain.Field {
	cfg := config.Default()
	t := cfg.Terrain
	return terrain.Generate(terrain.Params{
		Seed:           seed,
		HalfExtent:     t.HalfExtent,
		CellSize:       t.ChunkSize / float64(t.ChunkRes),
		HeightScale:    t.HeightScale,
		MainScale:      t.MainScale,
		DetailScale:    t.DetailScale,
		TertiaryScale:  t.TertiaryScale,
		DetailWeight:   t.DetailWeight,
		TertiaryWeight: t.TertiaryWeight,
		CurveExponent:  t.CurveExponent,
	})
}

func cmdHeightmap(args []string) {
	fs := flag.NewFlagSet("heightmap", flag.ExitOnError)
	seed := fs.Int64("seed", config.Default().Terrain.Seed, "terrain seed")
	size := fs.Int("size", 512, "output image size in pixels")
	out := fs.String("out", "heightmap.png", "output PNG path")
	fs.Parse(args)

	field := generateField(*seed)
	minX, minZ, maxX, maxZ := field.Bounds()

	img := image.NewRGBA(image.Rect(0, 0, *size, *size))
	sun := [3]float64{0.5, 0.7, 0.3}
	sunLen := math.Sqrt(sun[0]*sun[0] + sun[1]*sun[1] + sun[2]*sun[2])

	lo, hi := heightRange(field)
	span := hi - lo
	if span < 1e-9 {
		span = 1
	}

	for py := 0; py < *size; py++ {
		for px := 0; px < *size; px++ {
			x := minX + (maxX-minX)*float64(px)/float64(*size-1)
			z := minZ + (maxZ-minZ)*float64(py)/float64(*size-1)

			h := field.SampleHeight(x, z)
			n := field.SampleNormal(x, z)

			light := (n.X()*sun[0] + n.Y()*sun[1] + n.Z()*sun[2]) / sunLen
			if light < 0.1 {
				light = 0.1
			}

			shade := (h - lo) / span
			v := uint8((0.3 + 0.7*shade*light) * 255)
			img.SetRGBA(px, py, color.RGBA{v, v, uint8(float64(v) * 0.85), 255})
		}
	}

	if err := texture.SavePNG(*out, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %dx%d heightmap for seed %d to %s\n", *size, *size, *seed, *out)
}

func cmdBall(args []string) {
	fs := flag.NewFlagSet("ball", flag.ExitOnError)
	size := fs.Int("size", 256, "texture size in pixels")
	out := fs.String("out", "ball.png", "output PNG path")
	fs.Parse(args)

	if err := texture.SavePNG(*out, texture.Sphere(*size)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %dx%d ball texture to %s\n", *size, *size, *out)
}

func cmdStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	seed := fs.Int64("seed", config.Default().Terrain.Seed, "terrain seed")
	fs.Parse(args)

	field := generateField(*seed)
	minX, minZ, maxX, maxZ := field.Bounds()
	lo, hi := heightRange(field)

	fmt.Printf("Seed:    %d\n", *seed)
	fmt.Printf("Extent:  x [%.1f, %.1f]  z [%.1f, %.1f]\n", minX, maxX, minZ, maxZ)
	fmt.Printf("Height:  min %.3f  max %.3f\n", lo, hi)
	fmt.Printf("Origin:  %.3f\n", field.SampleHeight(0, 0))
}

func heightRange(f *terrain.Field) (lo, hi float64) {
	minX, minZ, maxX, maxZ := f.Bounds()
	lo, hi = math.Inf(1), math.Inf(-1)

	const samples = 256
	for i := 0; i < samples; i++ {
		for j := 0; j < samples; j++ {
			x := minX + (maxX-minX)*float64(i)/float64(samples-1)
			z := minZ + (maxZ-minZ)*float64(j)/float64(samples-1)
			h := f.SampleHeight(x, z)
			if h < lo {
				lo = h
			}
			if h > hi {
				hi = h
			}
		}
	}
	return lo, hi
}
