// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/pdiddy/rulegen/internal/convert"
	"github.com/pdiddy/rulegen/internal/document"
	"github.com/pdiddy/rulegen/internal/provider"
	"github.com/pdiddy/rulegen/pkg/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Convert every .mdx file in the components directory",
	Long: `Batch converts every .mdx file directly inside the components directory
(subdirectories are not searched). Files that fail are reported and
skipped; the remaining files are still converted and the command exits
successfully.

Use --test to limit the run to the first files of the directory while
trying out prompt or model changes.`,
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	bcfg := batchConfig(cmd)
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

	paths, err := document.Discover(bcfg.ComponentsDir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		fmt.Printf("No %s files found in %s\n", document.DocExt, bcfg.ComponentsDir)
		return nil
	}
	fmt.Printf("Found %d %s files in %s\n", len(paths), document.DocExt, bcfg.ComponentsDir)

	opts := convert.BatchOptions{
		TestMode:  bcfg.TestMode,
		TestCount: bcfg.TestCount,
		Interval:  ccfg.RequestInterval,
	}

	out := io.Writer(os.Stdout)
	var bar *progressbar.ProgressBar
	if bcfg.Progress {
		total := len(paths)
		if bcfg.TestMode {
			total = bcfg.TestCount
			if total < 0 {
				total = 0
			}
			if total > len(paths) {
				total = len(paths)
			}
		}
		bar = newProgressBar(total, "Converting documentation")
		opts.OnFile = func(types.FileRecord) { _ = bar.Add(1) }
		out = io.Discard
	}

	started := time.Now()
	result, err := conv.ConvertBatch(context.Background(), paths, ccfg.OutputDir, opts, out)
	recordRun(cmd, newRun("batch", pcfg.Model, started, result.Records))
	if err != nil {
		return err
	}

	if bar != nil {
		_ = bar.Finish()
		fmt.Printf("\nBatch summary: %d converted, %d failed (total: %d)\n",
			result.Converted, result.Failed, result.Total())
	}

	// Per-file failures surface in the summary; batch itself exits zero.
	return nil
}

// batchConfig assembles the batch settings from flags and the config file.
func batchConfig(cmd *cobra.Command) types.BatchConfig {
	testMode, _ := cmd.Flags().GetBool("test")
	progress, _ := cmd.Flags().GetBool("progress")
	return types.BatchConfig{
		ComponentsDir: optString(cmd, "components-dir"),
		TestMode:      testMode,
		TestCount:     optInt(cmd, "test-count"),
		Progress:      progress,
	}
}

// newProgressBar builds the bar shown by batch --progress.
func newProgressBar(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(color.BlueString(description)),
		progressbar.OptionSetItsString("files"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetRenderBlankState(true),
	)
}

func init() {
	batchCmd.Flags().String("components-dir", "docs/handbook/components", "directory scanned for .mdx files (not recursive)")
	batchCmd.Flags().String("output-dir", ".cursor/rules", "directory for generated .mdc rule files")
	batchCmd.Flags().Bool("test", false, "test mode: only convert the first files of the directory")
	batchCmd.Flags().Int("test-count", 2, "number of files to convert in test mode")
	batchCmd.Flags().Bool("progress", false, "show a progress bar instead of per-file output")

	rootCmd.AddCommand(batchCmd)
}
