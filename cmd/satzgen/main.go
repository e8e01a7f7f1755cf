package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/satzlabs/satzgen/internal/app"
	"github.com/satzlabs/satzgen/internal/batch"
	"github.com/satzlabs/satzgen/internal/cache"
	"github.com/satzlabs/satzgen/internal/cliconfig"
	"github.com/satzlabs/satzgen/internal/input"
	"github.com/satzlabs/satzgen/internal/openrouter"
	"github.com/satzlabs/satzgen/internal/prompt"
	"github.com/satzlabs/satzgen/internal/sink"
	"github.com/satzlabs/satzgen/internal/tts"
)

const longHelp = `Generate German verb study entries (tense forms, example sentences,
English translations) from a CSV verb list via the OpenRouter API.

Batches are processed sequentially and cached per batch, so an interrupted
run resumes where it left off without repeating completed remote calls.
Configure via config file, environment (.env is honored), or flags.`

const exampleUsage = `  satzgen --input verbs.csv --prompt prompt.txt
  satzgen -i verbs.csv -p prompt.txt -o entries.json --batch-size 25
  satzgen tts-text entries.json narration.txt`

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var (
		cfgPath    string
		inputPath  string
		outputPath string
		promptPath string
	)

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "satzgen",
		Short:   "Generate German verb study entries from a CSV verb list",
		Long:    longHelp,
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Environment may be provided via a local .env file.
			_ = godotenv.Load()

			// Build set of changed flags so file and env values never
			// override explicit flags.
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}
			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			// Log configuration (masking the API key)
			logCfg := cfg
			if len(logCfg.APIKey) > 0 {
				logCfg.APIKey = "*****"
			}
			log.Info().Interface("config", logCfg).Msg("configuration")

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return run(ctx, cfg, inputPath, outputPath, promptPath, log)
		},
	}

	root.Flags().StringVarP(&inputPath, "input", "i", "", "input CSV file with German and English verbs")
	root.Flags().StringVarP(&outputPath, "output", "o", "german_verbs_sentences.json", "output JSON file")
	root.Flags().StringVarP(&promptPath, "prompt", "p", "", "prompt template file containing "+prompt.Placeholder)
	root.Flags().StringVar(&cfgPath, "config", "", "config file (default $HOME/.satzgen/config.toml)")

	root.Flags().StringVar(&cfg.APIKey, "api-key", cfg.APIKey, "OpenRouter API key")
	root.Flags().StringVar(&cfg.Model, "model", cfg.Model, "model identifier")
	root.Flags().StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "API base URL")
	root.Flags().StringVar(&cfg.Referer, "referer", cfg.Referer, "HTTP-Referer header value")
	root.Flags().IntVar(&cfg.BatchSize, "batch-size", cfg.BatchSize, "verbs per batch")
	root.Flags().IntVar(&cfg.MaxRetries, "max-retries", cfg.MaxRetries, "attempts per batch")
	root.Flags().DurationVar(&cfg.RetryDelay, "retry-delay", cfg.RetryDelay, "base delay between retries")
	root.Flags().Float64Var(&cfg.Temperature, "temperature", cfg.Temperature, "sampling temperature")
	root.Flags().IntVar(&cfg.MaxTokens, "max-tokens", cfg.MaxTokens, "max tokens per response")
	root.Flags().DurationVar(&cfg.HTTPTimeout, "timeout", cfg.HTTPTimeout, "per-call HTTP timeout")
	root.Flags().StringVar(&cfg.CacheDir, "cache-dir", cfg.CacheDir, "directory for per-batch cache artifacts")

	_ = root.MarkFlagRequired("input")
	_ = root.MarkFlagRequired("prompt")

	root.AddCommand(newTTSTextCmd())
	root.AddCommand(newNormalizeCmd())

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("satzgen failed")
		os.Exit(1)
	}
}

// run wires the pipeline together and executes it.
func run(ctx context.Context, cfg cliconfig.Config, inputPath, outputPath, promptPath string, log zerolog.Logger) error {
	pairs, err := input.ReadPairs(inputPath)
	if err != nil {
		return err
	}
	log.Info().Int("verbs", len(pairs)).Str("input", inputPath).Msg("input loaded")

	batches, err := batch.Split(pairs, cfg.BatchSize)
	if err != nil {
		return err
	}
	log.Info().Int("batches", len(batches)).Int("batch_size", cfg.BatchSize).Msg("input batched")

	builder, err := prompt.NewBuilder(promptPath)
	if err != nil {
		return err
	}

	completer := openrouter.NewClient(openrouter.Config{
		BaseURL:      cfg.BaseURL,
		APIKey:       cfg.APIKey,
		Referer:      cfg.Referer,
		Model:        cfg.Model,
		SystemPrompt: cfg.SystemPrompt,
		Temperature:  cfg.Temperature,
		MaxTokens:    cfg.MaxTokens,
	}, &http.Client{Timeout: cfg.HTTPTimeout})

	store := cache.NewFileStore(cfg.CacheDir)
	results := sink.NewFileSink(outputPath)
	scheduler := app.NewScheduler(store, cfg.MaxRetries, cfg.RetryDelay, log)
	runner := app.NewRunner(builder, completer, results, scheduler, log, store.Clear)

	summary, err := runner.Run(ctx, batches)
	if err != nil {
		return err
	}

	fmt.Printf("Requested %d verbs, produced %d entries across %d batches (%d cached, %d failed).\n",
		summary.Items, summary.Entries, summary.Batches, summary.Cached, len(summary.Exhausted))
	fmt.Printf("Results saved to %s\n", outputPath)
	return nil
}

// newTTSTextCmd renders a generated entries file as TTS-ready narration
// text.
func newTTSTextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tts-text <entries.json> [output.txt]",
		Short: "Render generated entries as text-to-speech narration",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := tts.ScriptFromFile(args[0])
			if err != nil {
				return err
			}
			if len(args) == 2 {
				return os.WriteFile(args[1], []byte(script), 0o644)
			}
			fmt.Println(script)
			return nil
		},
	}
}

// newNormalizeCmd rewrites a JSON file so escaped \uXXXX sequences become
// direct Unicode characters.
func newNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <input.json> <output.json>",
		Short: "Rewrite a JSON file with direct Unicode characters",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			var value any
			if err := json.Unmarshal(data, &value); err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			var buf bytes.Buffer
			enc := json.NewEncoder(&buf)
			enc.SetEscapeHTML(false)
			enc.SetIndent("", "  ")
			if err := enc.Encode(value); err != nil {
				return err
			}

			return os.WriteFile(args[1], buf.Bytes(), 0o644)
		},
	}
}
