package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fredcamaral/deckgen/internal/adapters/secondary/config"
	"github.com/fredcamaral/deckgen/internal/adapters/secondary/illustration"
	"github.com/fredcamaral/deckgen/internal/adapters/secondary/parser"
	"github.com/fredcamaral/deckgen/internal/adapters/secondary/renderer"
	"github.com/fredcamaral/deckgen/internal/domain/entities"
	"github.com/fredcamaral/deckgen/internal/domain/ports"
	"github.com/fredcamaral/deckgen/internal/domain/services"
)

// generateOptions holds the flag values of one invocation
type generateOptions struct {
	output     string
	title      string
	slides     []string
	configPath string
	verbose    bool
}

// newRootCmd builds the single deckgen command
func newRootCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "deckgen",
		Short: "Generate a single-file HTML slide deck",
		Long: `deckgen builds one self-contained HTML presentation from short slide
definitions. Each --slide value is "Title|line1\nline2", where \n is typed
literally. The document uses a fixed dark theme, inline SVG illustrations and
keyboard navigation (arrows, PageUp/PageDown, Home, End).

Without any --slide, a three-slide example deck is generated.

Example:
  deckgen --output out/deck.html --title "Demo" \
    --slide 'Intro|Welcome' \
    --slide 'Topics|One\nTwo'`,
		Version:      Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
Build Date: ` + BuildDate + `
`)

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output HTML path (parent directories are created)")
	cmd.Flags().StringVar(&opts.title, "title", "", "Deck title")
	cmd.Flags().StringArrayVar(&opts.slides, "slide", nil, `Slide definition "TITLE|LINE1\nLINE2" (repeatable)`)
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Config file (.toml, .yaml or .yml)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")

	_ = cmd.MarkFlagRequired("output")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	ctx := cmd.Context()

	configService := services.NewConfigService(config.NewFileLoader(), config.NewConfigMerger())
	cfg, err := configService.LoadConfig(ctx, opts.configPath, map[string]interface{}{
		"verbose": opts.verbose,
	})
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.Logging.GetLevel())
	logger.Debug("configuration loaded", "config", opts.configPath, "lang", cfg.Deck.GetLang())

	service, err := newDeckService(cfg, logger)
	if err != nil {
		return err
	}

	result, err := service.Generate(ctx, services.GenerateRequest{
		OutputPath: opts.output,
		Title:      opts.title,
		Slides:     opts.slides,
	})
	if err != nil {
		return err
	}

	if result.UsedDefaults {
		logger.Warn("no --slide given, generated the example deck")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s (%d pages)\n", result.OutputPath, result.PageCount)
	return nil
}

// newDeckService wires the adapters into the generation service
func newDeckService(cfg *entities.Config, logger ports.Logger) (*services.DeckService, error) {
	gen := illustration.NewGenerator()

	assembler, err := renderer.NewDocumentAssembler(gen, cfg.Deck.GetLang())
	if err != nil {
		return nil, fmt.Errorf("creating document assembler: %w", err)
	}

	return services.NewDeckService(
		parser.NewSpecParser(),
		renderer.NewSlideRenderer(gen),
		assembler,
		ports.NewRealFileSystem(),
		logger,
		cfg.Output,
	), nil
}
