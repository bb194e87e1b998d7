package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/bububa/pseudogen"
	"github.com/bububa/pseudogen/components/prompt"
	"github.com/bububa/pseudogen/config"
	"github.com/bububa/pseudogen/models"
)

func main() {
	app := &cli.App{
		Name:      "pseudogen",
		Usage:     "render source code as pseudocode via an LLM",
		ArgsUsage: "FILE|URL ...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output file path (defaults to stdout)",
			},
			&cli.StringFlag{
				Name:    "model",
				Aliases: []string{"m"},
				Usage:   "target model identifier",
				EnvVars: []string{"PSEUDOGEN_MODEL"},
			},
			&cli.IntFlag{
				Name:    "level",
				Aliases: []string{"l"},
				Usage:   "abstraction level: 0 architecture, 1 pseudocode, 2 detailed, 3 near-literal",
				Value:   int(prompt.DefaultLevel),
			},
			&cli.IntFlag{
				Name:  "max-tokens",
				Usage: "per-chunk token budget",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log verbosity: debug, info, warn, error",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a pseudogen.toml config file",
			},
			&cli.BoolFlag{
				Name:  "extract-html",
				Usage: "convert HTML payloads from URL inputs to markdown",
			},
			&cli.BoolFlag{
				Name:  "list-models",
				Usage: "list known models and exit",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "pseudogen:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	// listing needs neither inputs nor a credential
	if c.Bool("list-models") {
		for _, m := range models.List() {
			fmt.Printf("%-16s %s\n", m.ID, m.Description)
		}
		return nil
	}

	// the credential and any PSEUDOGEN_* overrides may come from a local .env
	godotenv.Load()

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("model") {
		cfg.Model = c.String("model")
	}
	if c.IsSet("level") {
		cfg.Level = c.Int("level")
	}
	if c.IsSet("max-tokens") {
		cfg.MaxTokens = c.Int("max-tokens")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("extract-html") {
		cfg.ExtractHTML = c.Bool("extract-html")
	}
	if c.IsSet("output") {
		cfg.Output = c.String("output")
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	if c.NArg() == 0 {
		cli.ShowAppHelp(c)
		return fmt.Errorf("no input files or URLs given")
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}

	pipe, err := pseudogen.New(
		pseudogen.WithAPIKey(os.Getenv("OPENAI_API_KEY")),
		pseudogen.WithBaseURL(os.Getenv("OPENAI_API_BASE_URL")),
		pseudogen.WithModel(cfg.Model),
		pseudogen.WithLevel(prompt.Level(cfg.Level)),
		pseudogen.WithMaxTokens(cfg.MaxTokens),
		pseudogen.WithExtractHTML(cfg.ExtractHTML),
		pseudogen.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	out, err := pipe.Run(c.Context, c.Args().Slice())
	if err != nil {
		return err
	}
	return writeOutput(cfg.Output, out)
}

func newLogger(level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("unknown log level %q", level)
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(w).With().Timestamp().Logger().Level(lvl), nil
}

func writeOutput(path, out string) error {
	if path == "" {
		fmt.Println(out)
		return nil
	}
	if err := os.WriteFile(path, []byte(out+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
