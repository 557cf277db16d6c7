// Package bard is the CLI around the Shakespeare transformer: it resolves
// configuration, validates the sentence, and prints the result.
package bard

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/davidhbaek/bard/internal/config"
	"github.com/davidhbaek/bard/internal/input"
	"github.com/davidhbaek/bard/internal/logging"
	"github.com/davidhbaek/bard/internal/ollama"
)

type env struct {
	client     *ollama.Client
	sentence   string
	listModels bool
	logger     zerolog.Logger
}

func CLI(args []string) int {
	app := env{}
	err := app.fromArgs(args)
	if err != nil {
		if errors.Is(err, errNoSentence) {
			fmt.Fprintln(os.Stderr, "Error: please provide a sentence to transform")
			return 1
		}
		fmt.Fprintf(os.Stderr, "parsing args: %v\n", err)
		return 2
	}

	if err := app.run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

var errNoSentence = errors.New("missing sentence argument")

func newFlagSet() *flag.FlagSet {
	fl := flag.NewFlagSet("bard", flag.ContinueOnError)
	fl.Usage = func() {
		fmt.Fprintf(fl.Output(), "usage: %s [flags] \"sentence to transform\"\n", fl.Name())
		fl.PrintDefaults()
	}
	return fl
}

func (app *env) fromArgs(args []string) error {
	// Pick up OLLAMA_HOST / OLLAMA_MODEL from a .env file when one exists
	_ = godotenv.Load()

	fl := newFlagSet()

	var model string
	fl.StringVar(&model, "m", "", "Ollama model to use for transformation")
	fl.StringVar(&model, "model", "", "Ollama model to use for transformation")

	var host string
	fl.StringVar(&host, "host", "", "Ollama API host URL")

	var verbose bool
	fl.BoolVar(&verbose, "v", false, "enable verbose output")
	fl.BoolVar(&verbose, "verbose", false, "enable verbose output")

	var listModels bool
	fl.BoolVar(&listModels, "l", false, "list the models installed on the Ollama host and exit")
	fl.BoolVar(&listModels, "list-models", false, "list the models installed on the Ollama host and exit")

	var configPath string
	fl.StringVar(&configPath, "c", "", "path to a YAML config file with host/model defaults")
	fl.StringVar(&configPath, "config", "", "path to a YAML config file with host/model defaults")

	if err := fl.Parse(args); err != nil {
		return fmt.Errorf("parsing command line arguments: %w", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Resolution order: flag, environment, config file, built-in default
	host = resolve(host, os.Getenv("OLLAMA_HOST"), cfg.Host, ollama.DefaultHost)
	model = resolve(model, os.Getenv("OLLAMA_MODEL"), cfg.Model, ollama.DefaultModel)

	if !listModels && fl.NArg() == 0 {
		return errNoSentence
	}

	app.sentence = fl.Arg(0)
	app.listModels = listModels
	app.logger = logging.New(verbose)
	app.client = ollama.NewClient(ollama.NewConfig(host, model), app.logger)

	return nil
}

func resolve(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func (app *env) run() error {
	ctx := context.Background()

	app.logger.Debug().
		Str("host", app.client.Host()).
		Str("model", app.client.Model()).
		Msg("resolved configuration")

	if app.listModels {
		models, err := app.client.ListModels(ctx)
		if err != nil {
			return err
		}

		for _, m := range models {
			fmt.Println(m.Name)
		}
		return nil
	}

	sentence, err := input.Validate(app.sentence)
	if err != nil {
		return err
	}

	app.logger.Debug().Str("sentence", sentence).Msg("transforming")

	result, err := app.client.Transform(ctx, sentence, "")
	if err != nil {
		return err
	}

	fmt.Println(result)

	return nil
}
