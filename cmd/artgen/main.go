// Command artgen generates procedural artwork from the command line and
// exports it as SVG and PNG.
//
// Usage:
//
//	artgen -generator mathematical -set pattern_type=spiral -set density=200 -o spiral
//	artgen -preset presets/golden.yaml
//	artgen -interactive
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/artlabs/artgen"
	"github.com/artlabs/artgen/generator"
	_ "github.com/artlabs/artgen/generator/pattern"
	_ "github.com/artlabs/artgen/generator/walk"
	"github.com/artlabs/artgen/render"
	"github.com/artlabs/artgen/scene"
	"github.com/artlabs/artgen/session"
)

// preset is a named parameter set loadable from YAML.
type preset struct {
	Generator string         `yaml:"generator"`
	Width     int            `yaml:"width"`
	Height    int            `yaml:"height"`
	Params    map[string]any `yaml:"params"`
}

// paramFlags collects repeated -set key=value flags.
type paramFlags map[string]any

func (p paramFlags) String() string { return fmt.Sprintf("%v", map[string]any(p)) }

func (p paramFlags) Set(kv string) error {
	key, value, ok := strings.Cut(kv, "=")
	if !ok {
		return fmt.Errorf("expected key=value, got %q", kv)
	}
	p[key] = parseValue(value)
	return nil
}

// parseValue guesses the natural type of a flag value. Schema validation
// does the authoritative coercion later.
func parseValue(s string) any {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}

func main() {
	// .env supplies machine-local defaults; absence is fine.
	_ = godotenv.Load()

	params := make(paramFlags)
	var (
		genName     = flag.String("generator", "mathematical", "generator to run (see -list)")
		width       = flag.Int("width", 800, "canvas width")
		height      = flag.Int("height", 600, "canvas height")
		output      = flag.String("o", "artwork", "output base name (without extension)")
		outDir      = flag.String("out-dir", envOr("ARTGEN_OUT_DIR", "output"), "output directory")
		presetPath  = flag.String("preset", "", "YAML preset file")
		formats     = flag.String("formats", "svg,png", "comma-separated output formats (svg, png, jpeg)")
		interactive = flag.Bool("interactive", false, "prompt for parameters")
		list        = flag.Bool("list", false, "list registered generators and exit")
		verbose     = flag.Bool("v", envOr("ARTGEN_VERBOSE", "") != "", "verbose logging")
	)
	flag.Var(params, "set", "set a generator parameter (key=value, repeatable)")
	flag.Parse()

	if *verbose {
		artgen.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *list {
		for _, name := range generator.Names() {
			g, err := generator.New(name)
			if err != nil {
				continue
			}
			fmt.Printf("%s  %-16s %s\n", g.Icon(), name, g.Description())
		}
		return
	}

	if *presetPath != "" {
		p, err := loadPreset(*presetPath)
		if err != nil {
			log.Fatalf("Failed to load preset: %v", err)
		}
		if p.Generator != "" {
			*genName = p.Generator
		}
		if p.Width > 0 {
			*width = p.Width
		}
		if p.Height > 0 {
			*height = p.Height
		}
		for k, v := range p.Params {
			if _, set := params[k]; !set { // explicit -set wins over preset
				params[k] = v
			}
		}
	}

	gen, err := generator.New(*genName)
	if err != nil {
		log.Fatalf("%v (try -list)", err)
	}

	banner(gen)

	if *interactive {
		promptParams(gen.Schema(), params)
	}

	sess := session.New()
	result := sess.Run(context.Background(), gen, *width, *height, generator.Params(params))

	showProgress(sess, result, func(res session.Result) {
		if res.Err != nil {
			log.Fatalf("Generation failed: %v", res.Err)
		}
		if err := export(res.Scene, *outDir, *output, *formats); err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		color.Green("\nDone in %s (%d paths, %d circles)",
			sess.Elapsed().Round(time.Millisecond),
			len(res.Scene.Paths), len(res.Scene.Circles))
	})
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func banner(g generator.Generator) {
	bold := color.New(color.Bold, color.FgCyan)
	bold.Println(strings.Repeat("=", 60))
	bold.Printf("  GENERATIVE ART STUDIO :: %s %s\n", g.Name(), g.Icon())
	bold.Println(strings.Repeat("=", 60))
	fmt.Println(g.Description())
	fmt.Println()
}

// loadPreset reads a YAML preset file.
func loadPreset(path string) (*preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &p, nil
}

// promptParams asks for each schema field on stdin, keeping any value
// already supplied by flags or preset as the shown default.
func promptParams(schema generator.Schema, params paramFlags) {
	reader := bufio.NewReader(os.Stdin)
	prompt := color.New(color.FgYellow)

	// Validate with the current values to surface effective defaults.
	current, _ := schema.Validate(generator.Params(params))

	for _, name := range sortedNames(schema) {
		spec := schema[name]
		prompt.Printf("%s", spec.Label)
		if spec.Help != "" {
			fmt.Printf(" (%s)", spec.Help)
		}
		fmt.Printf(" [%v]: ", current[name])

		line, err := reader.ReadString('\n')
		if err != nil {
			break
		}
		if line = strings.TrimSpace(line); line != "" {
			params[name] = parseValue(line)
		}
	}
	fmt.Println()
}

func sortedNames(schema generator.Schema) []string {
	names := make([]string, 0, len(schema))
	for name := range schema {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// showProgress renders a single-line progress readout until the run ends,
// then invokes done with the result.
func showProgress(sess *session.Session, result <-chan session.Result, done func(session.Result)) {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case res := <-result:
			fmt.Printf("\rGenerating... 100%%        ")
			done(res)
			return
		case <-ticker.C:
			_, frac := sess.Latest()
			fmt.Printf("\rGenerating... %3.0f%% (%s)",
				frac*100, sess.Elapsed().Round(time.Millisecond))
		}
	}
}

// export writes the scene in each requested format.
func export(sc *scene.Scene, dir, base, formats string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, format := range strings.Split(formats, ",") {
		format = strings.TrimSpace(strings.ToLower(format))
		var (
			r   render.Renderer
			ext string
		)
		switch format {
		case "svg":
			r, ext = render.NewSVG(), "svg"
		case "png":
			r, ext = render.NewRaster(), "png"
		case "jpeg", "jpg":
			r, ext = &render.Raster{Format: render.FormatJPEG}, "jpg"
		default:
			return fmt.Errorf("unknown format %q", format)
		}

		path := filepath.Join(dir, base+"."+ext)
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := r.Render(sc, f); err != nil {
			f.Close()
			return fmt.Errorf("render %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		color.Cyan("✓ saved %s", path)
	}
	return nil
}
