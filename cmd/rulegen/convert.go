// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pdiddy/rulegen/internal/convert"
	"github.com/pdiddy/rulegen/internal/credentials"
	"github.com/pdiddy/rulegen/internal/document"
	"github.com/pdiddy/rulegen/internal/history"
	"github.com/pdiddy/rulegen/internal/provider"
	"github.com/pdiddy/rulegen/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <path>",
	Short: "Convert a .mdx document, or a directory tree of them, into rule files",
	Long: `Convert sends .mdx documentation to a chat-completion API and writes the
response as a .mdc Cursor rule file in the output directory.

Given a file, convert processes that one document and fails if the
conversion fails. Given a directory, convert processes every .mdx file
in the tree, keeps going when individual files fail, and reports a
summary at the end.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	path := args[0]
	ccfg := convertConfig(cmd)

	pcfg, err := providerConfig(cmd)
	if err != nil {
		return err
	}
	completer, err := provider.New(pcfg)
	if err != nil {
		return err
	}
	conv := convert.New(completer)

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	started := time.Now()

	if !info.IsDir() {
		rec := conv.ConvertFile(context.Background(), path, ccfg.OutputDir, os.Stdout)
		recordRun(cmd, newRun("convert", pcfg.Model, started, []types.FileRecord{rec}))
		if rec.Status == types.FileFailed {
			return fmt.Errorf("conversion failed: %s", rec.Error)
		}
		return nil
	}

	paths, err := document.DiscoverRecursive(path)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		fmt.Printf("No %s files found in %s\n", document.DocExt, path)
		return nil
	}
	fmt.Printf("Found %d %s files in %s\n", len(paths), document.DocExt, path)

	opts := convert.BatchOptions{Interval: ccfg.RequestInterval}
	result, err := conv.ConvertBatch(context.Background(), paths, ccfg.OutputDir, opts, os.Stdout)
	recordRun(cmd, newRun("convert", pcfg.Model, started, result.Records))
	if err != nil {
		return err
	}

	// Per-file failures are already reported in the summary; the command
	// itself still succeeds.
	return nil
}

// --- shared helpers ---

// convertConfig assembles the conversion settings shared by convert and batch.
func convertConfig(cmd *cobra.Command) types.ConvertConfig {
	return types.ConvertConfig{
		OutputDir:       optString(cmd, "output-dir"),
		RequestInterval: optDuration(cmd, "request-interval"),
	}
}

// historyConfig assembles the ledger settings. An empty path disables
// recording, as does --no-history.
func historyConfig(cmd *cobra.Command) types.HistoryConfig {
	disabled, _ := cmd.Flags().GetBool("no-history")
	cfg := types.HistoryConfig{
		Path:     optString(cmd, "history-db"),
		Disabled: disabled,
	}
	if cfg.Path == "" {
		cfg.Disabled = true
	}
	return cfg
}

// providerConfig assembles the provider configuration from flags and the
// config file, then resolves the API key through the credential chain.
func providerConfig(cmd *cobra.Command) (types.ProviderConfig, error) {
	name := types.Provider(optString(cmd, "provider"))
	if name == "" {
		name = types.ProviderOpenAI
	}
	switch name {
	case types.ProviderOpenAI, types.ProviderAnthropic:
	default:
		return types.ProviderConfig{}, fmt.Errorf("unknown provider %q (expected %q or %q)",
			name, types.ProviderOpenAI, types.ProviderAnthropic)
	}

	model := optString(cmd, "model")
	if model == "" {
		model = provider.DefaultModel(name)
	}

	apiKey, err := credentials.Resolve(optString(cmd, "api-key"), provider.CredentialEnvVar(name), optString(cmd, "env-file"))
	if err != nil {
		return types.ProviderConfig{}, err
	}

	return types.ProviderConfig{
		Provider:    name,
		Model:       model,
		APIKey:      apiKey,
		Temperature: optFloat64(cmd, "temperature"),
	}, nil
}

// newRun builds a history record for a completed invocation.
func newRun(command, model string, started time.Time, records []types.FileRecord) types.Run {
	run := types.Run{
		ID:         uuid.NewString(),
		Command:    command,
		Model:      model,
		StartedAt:  started,
		FinishedAt: time.Now(),
		Files:      records,
	}
	for _, r := range records {
		if r.Status == types.FileConverted {
			run.Converted++
		} else {
			run.Failed++
		}
	}
	return run
}

// recordRun appends the run to the history ledger. Ledger problems are
// reported as warnings and never fail the command.
func recordRun(cmd *cobra.Command, run types.Run) {
	hcfg := historyConfig(cmd)
	if hcfg.Disabled {
		return
	}
	ledger, err := history.Open(hcfg.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history disabled: %v\n", err)
		return
	}
	defer ledger.Close()

	if err := ledger.Record(context.Background(), run); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record run: %v\n", err)
	}
}

func init() {
	convertCmd.Flags().String("output-dir", ".cursor/rules", "directory for generated .mdc rule files")

	rootCmd.AddCommand(convertCmd)
}
