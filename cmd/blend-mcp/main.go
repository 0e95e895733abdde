package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/blend-modes-mcp/internal/blend"
	"github.com/ironsheep/blend-modes-mcp/internal/imaging"
	"github.com/ironsheep/blend-modes-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version, --help and CLI subcommands
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("blend-modes-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printUsage()
			return
		case "blend":
			runBlend(os.Args[2:])
			return
		case "modes":
			runModes()
			return
		case "compare":
			runCompare(os.Args[2:])
			return
		case "generate":
			runGenerate(os.Args[2:])
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	logLevel := os.Getenv("BLEND_MCP_LOG_LEVEL")
	if logLevel == "debug" {
		log.Printf("Blend Modes MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv := server.New()
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func printUsage() {
	fmt.Println("blend-modes-mcp - Photoshop-style blend modes as an MCP server and CLI")
	fmt.Println()
	fmt.Println("Usage: blend-modes-mcp [command]")
	fmt.Println()
	fmt.Println("Without a command, the MCP server runs over stdin/stdout.")
	fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  blend     Blend two images (-base, -overlay, -mode, -opacity, -out)")
	fmt.Println("  modes     List the supported blend modes")
	fmt.Println("  compare   Compare two images (-a, -b); exits 1 when they differ")
	fmt.Println("  generate  Generate a stripe test image (-out, -width, -height, -stripes, -vertical)")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  BLEND_MCP_LOG_LEVEL=debug    Enable debug logging")
}

func runBlend(args []string) {
	fs := flag.NewFlagSet("blend", flag.ExitOnError)
	base := fs.String("base", "", "base (bottom layer) image path")
	overlay := fs.String("overlay", "", "overlay (top layer) image path")
	mode := fs.String("mode", "normal", "blend mode name (see 'modes')")
	opacity := fs.Float64("opacity", 1.0, "overlay opacity from 0 to 1")
	out := fs.String("out", "", "output image path")
	fs.Parse(args)

	if *base == "" || *overlay == "" || *out == "" {
		fmt.Fprintln(os.Stderr, "blend requires -base, -overlay and -out")
		fs.Usage()
		os.Exit(2)
	}

	result, resolved, err := imaging.BlendFiles(imaging.NewImageCache(), *base, *overlay, *mode, *opacity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "blend failed: %v\n", err)
		os.Exit(1)
	}
	if err := imaging.SaveImage(result, *out); err != nil {
		fmt.Fprintf(os.Stderr, "blend failed: %v\n", err)
		os.Exit(1)
	}

	bounds := result.Bounds()
	fmt.Printf("wrote %s (%dx%d, %s at opacity %g)\n",
		*out, bounds.Dx(), bounds.Dy(), resolved, blend.ClampOpacity(*opacity))
}

func runModes() {
	for _, m := range blend.Modes() {
		kind := "separable"
		if !m.Separable() {
			kind = "non-separable"
		}
		fmt.Printf("%-18s %s\n", m, kind)
	}
}

func runCompare(args []string) {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	pathA := fs.String("a", "", "first image path")
	pathB := fs.String("b", "", "second image path")
	fs.Parse(args)

	if *pathA == "" || *pathB == "" {
		fmt.Fprintln(os.Stderr, "compare requires -a and -b")
		fs.Usage()
		os.Exit(2)
	}

	res, err := imaging.CompareFiles(imaging.NewImageCache(), *pathA, *pathB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "compare failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%dx%d  sum abs error %.6f  max %.6f  pixels different %d (%.2f%%)\n",
		res.Width, res.Height, res.SumAbsError, res.MaxAbsError,
		res.PixelsDifferent, 100*res.FractionDifferent)
	if !res.Identical {
		os.Exit(1)
	}
	fmt.Println("identical")
}

func runGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	out := fs.String("out", "", "output image path")
	width := fs.Int("width", 600, "image width in pixels")
	height := fs.Int("height", 600, "image height in pixels")
	stripes := fs.Int("stripes", 6, "number of stripes")
	vertical := fs.Bool("vertical", false, "run stripes left to right instead of top to bottom")
	fs.Parse(args)

	if *out == "" {
		fmt.Fprintln(os.Stderr, "generate requires -out")
		fs.Usage()
		os.Exit(2)
	}

	orientation := "horizontal"
	if *vertical {
		orientation = "vertical"
	}

	img, err := imaging.GenerateStripes(*width, *height, *stripes, orientation)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate failed: %v\n", err)
		os.Exit(1)
	}
	if err := imaging.SaveImage(img, *out); err != nil {
		fmt.Fprintf(os.Stderr, "generate failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %s (%dx%d, %d %s stripes)\n", *out, *width, *height, *stripes, orientation)
}
