// somegen — branded social media graphics for regional newspapers.
//
// Usage:
//
//	somegen --brand <name> --platform <id> [options]
//	somegen brands
//	somegen specs
//	somegen suggest --brand <name> --article <path> [options]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/mediatalo/somegen/pkg/brand"
	"github.com/mediatalo/somegen/pkg/compose"
	"github.com/mediatalo/somegen/pkg/motion"
	"github.com/mediatalo/somegen/pkg/textgen"
	"github.com/mediatalo/somegen/pkg/workflow"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "brands":
		runBrands()
	case "specs":
		runSpecs()
	case "suggest":
		if err := runSuggest(os.Args[2:]); err != nil {
			fatal(err)
		}
	case "help", "-h", "--help":
		printUsage()
	default:
		// Default: generate mode (all flags on root).
		if err := runGenerate(os.Args[1:]); err != nil {
			fatal(err)
		}
	}
}

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("somegen", flag.ExitOnError)

	var (
		brandID     string
		platform    string
		contentType string
		layout      string
		version     int
		heading     string
		description string
		bannerMode  string
		bannerText  string
		imagePath   string
		animate     bool
		effect      string
		duration    float64
	)

	fs.StringVar(&brandID, "brand", "", "Brand name, e.g. Kaleva")
	fs.StringVar(&platform, "platform", "instagram", "Target platform: instagram, facebook, linkedin")
	fs.StringVar(&contentType, "type", "post", "Content type: post or story")
	fs.StringVar(&layout, "layout", "square", "Layout: square, portrait, landscape")
	fs.IntVar(&version, "version", 1, "Template version")
	fs.StringVar(&heading, "heading", "", "Headline text")
	fs.StringVar(&description, "description", "", "Description for the caption (not drawn)")
	fs.StringVar(&bannerMode, "banner", "none", "Banner mode: none, logo_only, custom_text")
	fs.StringVar(&bannerText, "banner-text", "", "Banner text (custom_text mode)")
	fs.StringVar(&imagePath, "image", "", "Background photo path (optional)")
	fs.BoolVar(&animate, "animate", false, "Produce an animated clip instead of a still")
	fs.StringVar(&effect, "effect", "zoom_pan", "Animation effect: zoom_pan or fade_rotate")
	fs.Float64Var(&duration, "duration", 3, "Clip duration in seconds")

	fs.Usage = printUsage
	if err := fs.Parse(args); err != nil {
		return err
	}

	if brandID == "" {
		printUsage()
		return fmt.Errorf("brand is required (--brand)")
	}

	cfg := workflow.LoadConfig()
	logger := newLogger(cfg.Debug)
	defer logger.Sync()

	w := workflow.New(cfg, logger)

	res, err := w.GenerateContent(context.Background(), workflow.Task{
		BrandID:     brandID,
		Platform:    platform,
		ContentType: brand.ContentType(contentType),
		Layout:      brand.Layout(layout),
		Version:     version,
		Heading:     heading,
		Description: description,
		BannerMode:  compose.BannerMode(bannerMode),
		BannerText:  bannerText,
		ImagePath:   imagePath,
		Animate:     animate,
		Effect:      motion.Effect(effect),
		DurationSec: duration,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Done: %s\n", res.OutputPath)
	return nil
}

func runBrands() {
	catalog := brand.NewCatalog()
	for _, id := range catalog.IDs() {
		fmt.Println(id)
	}
}

func runSpecs() {
	for _, spec := range brand.NewSpecCatalog().All() {
		fmt.Printf("%-10s %-6s %-10s %4dx%-4d %s\n",
			spec.Platform, spec.ContentType, spec.Layout, spec.Width, spec.Height, spec.AspectRatio)
	}
}

func runSuggest(args []string) error {
	fs := flag.NewFlagSet("suggest", flag.ExitOnError)

	var (
		brandID     string
		platform    string
		articlePath string
		length      string
	)
	fs.StringVar(&brandID, "brand", "", "Brand name")
	fs.StringVar(&platform, "platform", "instagram", "Target platform")
	fs.StringVar(&articlePath, "article", "", "Path to the article text file")
	fs.StringVar(&length, "length", "medium", "Copy length: short, medium, long")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if articlePath == "" {
		return fmt.Errorf("--article is required for suggest command")
	}

	article, err := os.ReadFile(articlePath)
	if err != nil {
		return fmt.Errorf("read article: %w", err)
	}

	cfg := workflow.LoadConfig()
	if cfg.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required for suggest command")
	}
	logger := newLogger(cfg.Debug)
	defer logger.Sync()

	ctx := context.Background()
	gen, err := textgen.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, logger)
	if err != nil {
		return err
	}

	s, err := gen.Suggest(ctx, textgen.SuggestRequest{
		ArticleText: string(article),
		Platform:    platform,
		Length:      textgen.Length(length),
		BrandName:   brandID,
	})
	if err != nil {
		return err
	}

	fmt.Printf("HEADING: %s\nDESCRIPTION: %s\n", s.Heading, s.Description)
	return nil
}

func newLogger(debug bool) *zap.Logger {
	var logger *zap.Logger
	var err error
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Print(`somegen — branded social media graphics for regional newspapers

USAGE:
    somegen --brand <name> [options]
    somegen brands
    somegen specs
    somegen suggest --brand <name> --article <path> [options]

GENERATE:
    --brand <name>         Brand name, e.g. Kaleva (required)
    --platform <id>        instagram, facebook, linkedin (default: instagram)
    --type <ct>            post or story (default: post)
    --layout <name>        square, portrait, landscape (default: square)
    --version <n>          Template version, 1-4 (landscape: 1-2)
    --heading <text>       Headline drawn on the canvas
    --description <text>   Caption text, not drawn
    --banner <mode>        none, logo_only, custom_text (default: none)
    --banner-text <text>   Custom banner text
    --image <path>         Background photo; omitted means gradient
    --animate              Render an animated clip (.mp4)
    --effect <name>        zoom_pan or fade_rotate (default: zoom_pan)
    --duration <sec>       Clip duration in seconds (default: 3)

LISTS:
    somegen brands         Print all brand names
    somegen specs          Print the platform canvas table

SUGGEST:
    somegen suggest --brand Kaleva --article story.txt --platform instagram

EXAMPLES:
    somegen --brand Kaleva --heading "Uusi silta avataan" --image photo.jpg
    somegen --brand "Lapin Kansa" --type story --layout portrait --version 2 --animate
    somegen --brand Kaleva --banner custom_text --version 4
`)
}
