package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/artashes-sanoyan/elide/internal/config"
	"github.com/artashes-sanoyan/elide/internal/debuglog"
	"github.com/artashes-sanoyan/elide/internal/measure"
	"github.com/artashes-sanoyan/elide/internal/storage"
	"github.com/artashes-sanoyan/elide/internal/truncate"
	"github.com/artashes-sanoyan/elide/internal/tui"
	"github.com/artashes-sanoyan/elide/internal/validation"
)

// Version is the version of the application, set at build time
var Version = "dev"

func main() {
	var (
		dbPath         = flag.String("db", "", "Path to database file (overrides config)")
		configPath     = flag.String("config", "", "Path to configuration file")
		generateConfig = flag.Bool("generate-config", false, "Generate default config file")
		version        = flag.Bool("version", false, "Show version information")
		quiet          = flag.Bool("quiet", false, "Skip startup banner")
		printMode      = flag.Bool("print", false, "Truncate the named files (or stdin) and print the result")
		lines          = flag.Int("lines", 0, "Line budget for -print (overrides config)")
		width          = flag.Int("width", 80, "Display width in cells for -print")
		middle         = flag.Bool("middle", false, "Elide in the middle instead of at the end")
		debugLevel     = flag.String("debug", "off", "Debug log level (debug, info, warn, error, off)")
	)
	flag.Parse()

	if *version {
		fmt.Printf("elide %s\n", Version)
		fmt.Println("Document viewer")
		fmt.Println("github.com/artashes-sanoyan/elide")
		return
	}

	// Handle generate-config flag
	if *generateConfig {
		home, _ := os.UserHomeDir()
		configDir := filepath.Join(home, ".config", "elide")
		configFile := filepath.Join(configDir, "config.toml")

		if err := config.GenerateDefaultConfig(configFile); err != nil {
			log.Fatalf("Failed to generate config: %v", err)
		}
		fmt.Printf("Generated default configuration at: %s\n", configFile)
		return
	}

	if err := debuglog.Setup(debuglog.ParseLogLevel(*debugLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: debug logging disabled: %v\n", err)
	}
	defer debuglog.Close()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *printMode {
		os.Exit(runPrint(cfg, flag.Args(), *lines, *width, *middle))
	}

	if !*quiet {
		fmt.Println(tui.ShowBanner(Version))
	}

	// Override database path if provided via flag
	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}

	// Expand tilde in database path
	if len(cfg.Database.Path) >= 2 && cfg.Database.Path[:2] == "~/" {
		home, _ := os.UserHomeDir()
		cfg.Database.Path = filepath.Join(home, cfg.Database.Path[2:])
	}

	store, err := storage.NewStore(cfg.Database.Path)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	// Files named on the command line are imported before the UI starts.
	if err := importFiles(store, flag.Args()); err != nil {
		log.Fatal(err)
	}

	app := tui.NewApp(store, cfg)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runPrint truncates each named file (or stdin when no files are given) and
// writes the result to stdout. The exit code is non-zero if any input failed.
func runPrint(cfg *config.Config, args []string, lines, width int, middle bool) int {
	opts := cfg.Truncate.Options()
	if lines > 0 {
		opts.Lines = lines
	}
	if middle {
		opts.Middle = true
	}

	engine := truncate.New(measure.NewCellMeasurer(), opts)

	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			return 1
		}
		fmt.Println(engine.Truncate(string(data), width).Display)
		return 0
	}

	exitCode := 0
	for _, arg := range args {
		data, err := os.ReadFile(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", arg, err)
			exitCode = 1
			continue
		}
		fmt.Println(engine.Truncate(string(data), width).Display)
	}
	return exitCode
}

func importFiles(store *storage.Store, args []string) error {
	if len(args) == 0 {
		return nil
	}

	validator := validation.NewDocumentValidator()
	for _, arg := range args {
		path, err := validator.ValidateFile(arg)
		if err != nil {
			return fmt.Errorf("cannot import %s: %w", arg, err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("cannot import %s: %w", arg, err)
		}

		doc := &storage.Document{
			ID:       storage.DocumentID(path),
			Path:     path,
			Title:    filepath.Base(path),
			Body:     string(data),
			Markdown: validation.IsMarkdown(path),
			AddedAt:  time.Now(),
		}
		if err := store.SaveDocument(doc); err != nil {
			return fmt.Errorf("cannot import %s: %w", arg, err)
		}
		debuglog.Infof("imported %s", path)
	}
	return nil
}
