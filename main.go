// raytracer renders sphere scenes with a recursive path tracer and writes
// the result as PPM, PNG or TIFF.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/df07/go-offline-raytracer/pkg/core"
	"github.com/df07/go-offline-raytracer/pkg/integrator"
	"github.com/df07/go-offline-raytracer/pkg/output"
	"github.com/df07/go-offline-raytracer/pkg/renderer"
	"github.com/df07/go-offline-raytracer/pkg/scene"
)

var cmdRoot = &cobra.Command{
	Use:          "raytracer",
	Short:        "Offline path tracer for sphere scenes",
	SilenceUsage: true,
}

var scenesDir string

func init() {
	cmdRoot.PersistentFlags().StringVar(&scenesDir, "scenes-dir", "scenes", "Directory searched for YAML scene files")
	cmdRoot.PersistentFlags().AddGoFlagSet(flag.CommandLine)
}

var (
	renderScene   string
	renderOut     []string
	renderWidth   int
	renderSamples int
	renderDepth   int
	renderSeed    int64
	renderMode    string
)

var cmdRender = &cobra.Command{
	Use:   "render",
	Short: "Render a scene to one or more image files",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		opts := renderOptions{
			Width:   renderWidth,
			Samples: renderSamples,
			Depth:   renderDepth,
			Seed:    renderSeed,
			Mode:    renderMode,
		}
		return runRender(ctx, renderScene, renderOut, opts)
	},
}

func init() {
	cmdRender.Flags().StringVar(&renderScene, "scene", "default", "Built-in scene, scene file ID in --scenes-dir, or path to a .yaml file")
	cmdRender.Flags().StringArrayVar(&renderOut, "out", nil, "Output file (.ppm, .png, .tif, or - for PPM on stdout); repeatable")
	cmdRender.Flags().IntVar(&renderWidth, "width", 0, "Image width; height follows the camera aspect ratio (0 = scene default)")
	cmdRender.Flags().IntVar(&renderSamples, "samples", 0, "Samples per pixel (0 = scene default)")
	cmdRender.Flags().IntVar(&renderDepth, "depth", 0, "Maximum bounces per sample (0 = scene default)")
	cmdRender.Flags().Int64Var(&renderSeed, "seed", 42, "Random seed")
	cmdRender.Flags().StringVar(&renderMode, "mode", "path", "Integrator: 'path' or 'normals'")
}

var cmdScenes = &cobra.Command{
	Use:   "scenes",
	Short: "List available scenes",
	RunE: func(cmd *cobra.Command, args []string) error {
		scenes, err := scene.ListScenes(scenesDir)
		if err != nil {
			return fmt.Errorf("while listing scenes: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tTYPE\tDESCRIPTION")
		for _, s := range scenes {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.ID, s.DisplayName, s.Type, s.Description)
		}
		return w.Flush()
	},
}

// renderOptions are command line overrides applied on top of a scene
type renderOptions struct {
	Width   int
	Samples int
	Depth   int
	Seed    int64
	Mode    string
}

func runRender(ctx context.Context, sceneName string, outputs []string, opts renderOptions) error {
	selectedScene, err := createScene(sceneName)
	if err != nil {
		return err
	}
	config := applyOverrides(selectedScene, opts)

	integ, err := createIntegrator(opts.Mode, selectedScene.Background)
	if err != nil {
		return err
	}

	if len(outputs) == 0 {
		outputDir := createOutputDir(sceneName)
		timestamp := time.Now().Format("20060102_150405")
		outputs = []string{filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))}
	}

	glog.Infof("Scene %q: %d shapes", selectedScene.Name, selectedScene.GetPrimitiveCount())

	rt := renderer.NewRaytracer(selectedScene, selectedScene.Camera(), integ, config)
	rt.SetSampler(core.NewSeededSampler(opts.Seed))
	rt.SetLogger(glogLogger{})
	rt.SetProgress(newProgressReporter(os.Stderr))

	img, stats, err := rt.Render(ctx)
	if err != nil {
		return fmt.Errorf("while rendering %s: %w", sceneName, err)
	}
	glog.Infof("Render completed in %v (%.0f samples/s)", stats.Elapsed, stats.SamplesPerSecond())

	if err := output.WriteAll(ctx, img, outputs); err != nil {
		return fmt.Errorf("while writing output: %w", err)
	}
	for _, path := range outputs {
		if path != output.StdoutPath {
			glog.Infof("Render saved as %s", path)
		}
	}
	return nil
}

// createScene resolves a scene name against the built-ins and --scenes-dir
func createScene(sceneName string) (*scene.Scene, error) {
	return scene.Load(sceneName, scenesDir)
}

// applyOverrides merges command line settings into the scene's sampling config.
// A width override keeps the camera aspect ratio.
func applyOverrides(s *scene.Scene, opts renderOptions) renderer.SamplingConfig {
	config := s.SamplingConfig
	if opts.Width > 0 {
		aspect := s.CameraConfig.AspectRatio
		if aspect <= 0 {
			aspect = renderer.DefaultCameraConfig().AspectRatio
		}
		config.Width = opts.Width
		config.Height = max(1, int(float32(opts.Width)/aspect+0.5))
	}
	if opts.Samples > 0 {
		config.SamplesPerPixel = opts.Samples
	}
	if opts.Depth > 0 {
		config.MaxDepth = opts.Depth
	}
	return config
}

func createIntegrator(mode string, background integrator.Background) (integrator.Integrator, error) {
	switch mode {
	case "path", "":
		return integrator.NewPathTracer(background), nil
	case "normals":
		return integrator.NewNormalShader(background), nil
	default:
		return nil, fmt.Errorf("unknown mode %q (want 'path' or 'normals')", mode)
	}
}

// createOutputDir returns output/<scene> for built-in and file scenes
func createOutputDir(sceneName string) string {
	base := filepath.Base(sceneName)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." {
		base = "scene"
	}
	return filepath.Join("output", base)
}

// glogLogger adapts glog to core.Logger
type glogLogger struct{}

func (glogLogger) Printf(format string, args ...interface{}) {
	glog.InfoDepth(1, fmt.Sprintf(format, args...))
}

// newProgressReporter redraws a single status line on a terminal and logs
// every tenth of the rows otherwise
func newProgressReporter(f *os.File) renderer.ProgressFunc {
	interactive := term.IsTerminal(int(f.Fd()))
	lastDecile := 0
	return func(rowsDone, totalRows int) {
		if interactive {
			fmt.Fprintf(f, "\rRendering: %3d%% (%d/%d rows)", rowsDone*100/totalRows, rowsDone, totalRows)
			if rowsDone == totalRows {
				fmt.Fprintln(f)
			}
			return
		}
		if decile := rowsDone * 10 / totalRows; decile > lastDecile {
			lastDecile = decile
			glog.Infof("Rendered %d/%d rows", rowsDone, totalRows)
		}
	}
}

func main() {
	glog.CopyStandardLogTo("INFO")
	defer glog.Flush()

	cmdRoot.AddCommand(cmdRender, cmdScenes)

	if err := cmdRoot.Execute(); err != nil {
		glog.Errorf("%v", err)
		glog.Flush()
		os.Exit(1)
	}
}
