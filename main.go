package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	Scene   string
	Time    float64
	Out     string
	Texture string
	Help    bool
	Render  renderer.Config
}

func main() {
	opts, err := parseOptions(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("Error: %v", err)
	}
	if opts.Help {
		printHelp(os.Stdout)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, renderer.NewDefaultLogger()); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

// cliFlags holds the values bound to the command line flags
type cliFlags struct {
	scene, out, config, texture string
	width, height, depth        int
	lightSamples, antialias     int
	workers                     int
	colorLimit, seconds         float64
	help                        bool
}

func newFlagSet(output io.Writer) (*flag.FlagSet, *cliFlags) {
	defaults := renderer.DefaultConfig()
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(output)

	f := &cliFlags{}
	fs.StringVar(&f.scene, "scene", "default", "Built-in scene to render (see -help)")
	fs.IntVar(&f.width, "width", defaults.Width, "Image width in pixels")
	fs.IntVar(&f.height, "height", defaults.Height, "Image height in pixels")
	fs.IntVar(&f.depth, "depth", defaults.Depth, "Maximum recursion depth")
	fs.Float64Var(&f.colorLimit, "climit", defaults.ColorLimit, "Color contribution below which recursion stops")
	fs.IntVar(&f.lightSamples, "lsamples", defaults.LightSamples, "Shadow rays per area light")
	fs.IntVar(&f.antialias, "aa", defaults.Antialias, "Samples per pixel: 1, 2, 4, 8 or 16")
	fs.IntVar(&f.workers, "workers", defaults.NumWorkers, "Number of parallel workers (0 = use CPU count)")
	fs.Float64Var(&f.seconds, "time", 0, "Animation time in seconds")
	fs.StringVar(&f.out, "out", "", "Output file (.png or .bmp), default output/<scene>/render_<timestamp>.png")
	fs.StringVar(&f.config, "config", "", "JSON render config file")
	fs.StringVar(&f.texture, "texture", "", "Image file to map onto the ground of the textures scene")
	fs.BoolVar(&f.help, "help", false, "Show help information")
	return fs, f
}

// parseOptions reads flags from args. A JSON file given with -config is decoded over
// the defaults first, then flags set explicitly on the command line override it.
func parseOptions(args []string, output io.Writer) (options, error) {
	fs, f := newFlagSet(output)
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	config := renderer.DefaultConfig()
	if f.config != "" {
		data, err := os.ReadFile(f.config)
		if err != nil {
			return options{}, fmt.Errorf("failed to read config: %w", err)
		}
		if err := json.Unmarshal(data, &config); err != nil {
			return options{}, fmt.Errorf("failed to parse config %s: %w", f.config, err)
		}
	}

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "width":
			config.Width = f.width
		case "height":
			config.Height = f.height
		case "depth":
			config.Depth = f.depth
		case "climit":
			config.ColorLimit = f.colorLimit
		case "lsamples":
			config.LightSamples = f.lightSamples
		case "aa":
			config.Antialias = f.antialias
		case "workers":
			config.NumWorkers = f.workers
		}
	})

	return options{
		Scene:   f.scene,
		Time:    f.seconds,
		Out:     f.out,
		Texture: f.texture,
		Help:    f.help,
		Render:  config,
	}, nil
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Whitted Raytracer")
	fmt.Fprintln(w, "Usage: raytracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs, _ := newFlagSet(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(w, "  %-12s %s\n", info.ID, info.Description)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output will be saved to output/<scene>/render_<timestamp>.png unless -out is given")
}

// createScene builds and initializes the scene with the given ID
func createScene(id, texturePath string) (*scene.Scene, error) {
	var s *scene.Scene
	if texturePath != "" {
		if id != "textures" {
			return nil, fmt.Errorf("-texture only applies to the textures scene, not %q", id)
		}
		tex, err := loaders.LoadTexture(texturePath)
		if err != nil {
			return nil, err
		}
		s = scene.NewTextureScene(tex)
	} else {
		var err error
		if s, err = scene.New(id); err != nil {
			return nil, err
		}
	}

	if err := s.Init(); err != nil {
		return nil, err
	}
	return s, nil
}

// outputPath returns the file the render of sceneID is written to
func outputPath(out, sceneID string, now time.Time) string {
	if out != "" {
		return out
	}
	return filepath.Join("output", sceneID, fmt.Sprintf("render_%s.png", now.Format("20060102_150405")))
}

func run(ctx context.Context, opts options, logger core.Logger) error {
	logger.Printf("Starting Whitted Raytracer...\n")

	s, err := createScene(opts.Scene, opts.Texture)
	if err != nil {
		return err
	}
	s.SetCurrentTime(opts.Time)
	logger.Printf("Using %s scene (%d primitives, %d lights)\n", opts.Scene, s.GetPrimitiveCount(), len(s.Lights))

	pixels, stats, err := renderer.Render(ctx, s, opts.Render, logger)
	if err != nil {
		return err
	}

	img := loaders.ColorImage(opts.Render.Width, opts.Render.Height, pixels)
	filename := outputPath(opts.Out, opts.Scene, time.Now())
	if err := loaders.SaveImage(filename, img); err != nil {
		return err
	}

	logger.Printf("Render completed in %v\n", stats.Duration)
	logger.Printf("Samples per pixel: %.1f, rays: %d, shadow rays: %d\n",
		stats.AverageSamples(), stats.Rays.Rays, stats.Rays.ShadowRays)
	logger.Printf("Intersection tests: %d primitive, %d bounding box\n",
		stats.Rays.PrimitiveIntersections, stats.Rays.BoxIntersections)
	logger.Printf("Average luminance: %.3f\n", renderer.CalculateAverageLuminance(img))
	if stats.FailedPixels > 0 {
		logger.Printf("%d pixels failed and were left black\n", stats.FailedPixels)
	}
	logger.Printf("Render saved as %s\n", filename)
	return nil
}
