// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns documentation files into Cursor rule files by way
// of a chat-completion backend.
package convert

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"golang.org/x/time/rate"

	"github.com/pdiddy/rulegen/internal/document"
	"github.com/pdiddy/rulegen/internal/provider"
	"github.com/pdiddy/rulegen/pkg/types"
)

// Converter runs the documentation-to-rule pipeline against a completion
// backend.
type Converter struct {
	completer provider.TextCompleter
}

// New returns a Converter backed by completer.
func New(completer provider.TextCompleter) *Converter {
	return &Converter{completer: completer}
}

// Convert transforms documentation content into rule file content: it
// validates the input, renders the prompt, calls the backend, and cleans
// the response. Nothing is written to disk.
func (c *Converter) Convert(ctx context.Context, docContent string) (string, error) {
	if err := document.Validate(docContent); err != nil {
		return "", fmt.Errorf("validating input: %w", err)
	}

	prompt, err := buildPrompt(docContent)
	if err != nil {
		return "", fmt.Errorf("rendering prompt: %w", err)
	}

	raw, err := c.completer.Complete(ctx, provider.Request{
		System: systemPrompt,
		Prompt: prompt,
	})
	if err != nil {
		return "", err
	}

	return Postprocess(raw), nil
}

// ConvertFile converts one documentation file and writes the rule file
// into outputDir. The outcome comes back as a FileRecord and a status line
// is printed to w. Failures are recorded, not returned; the caller decides
// whether they are fatal.
func (c *Converter) ConvertFile(ctx context.Context, docPath, outputDir string, w io.Writer) types.FileRecord {
	start := time.Now()
	rec := types.FileRecord{DocPath: docPath}
	base := filepath.Base(docPath)

	fail := func(err error) types.FileRecord {
		rec.Status = types.FileFailed
		rec.Error = err.Error()
		rec.Duration = time.Since(start)
		fmt.Fprintf(w, "%s  %s (%v)\n", color.RedString("failed:"), base, err)
		return rec
	}

	content, err := document.Read(docPath)
	if err != nil {
		return fail(err)
	}

	ruleContent, err := c.Convert(ctx, content)
	if err != nil {
		return fail(err)
	}

	rulePath := filepath.Join(outputDir, document.RuleFileName(docPath))
	if err := document.WriteRule(rulePath, ruleContent); err != nil {
		return fail(err)
	}

	rec.Status = types.FileConverted
	rec.RulePath = rulePath
	rec.Duration = time.Since(start)
	fmt.Fprintf(w, "%s %s -> %s\n", color.GreenString("converted:"), base, rulePath)
	return rec
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	// Records lists per-file outcomes in processing order.
	Records []types.FileRecord

	Converted int
	Failed    int
}

// Total returns the number of documents processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Failed
}

// HasFailures reports whether any document failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// BatchOptions adjusts how ConvertBatch walks the file list.
type BatchOptions struct {
	// TestMode caps the run to the first TestCount files. A TestCount at
	// or below zero converts nothing.
	TestMode  bool
	TestCount int

	// Interval spaces out backend calls; zero disables pacing.
	Interval time.Duration

	// OnFile, when set, is invoked after each file completes.
	OnFile func(types.FileRecord)
}

// ConvertBatch processes docPaths in order, continuing past per-file
// failures, printing status to w and returning a summary. The error is
// non-nil only when ctx ends the run early.
func (c *Converter) ConvertBatch(ctx context.Context, docPaths []string, outputDir string, opts BatchOptions, w io.Writer) (BatchResult, error) {
	var result BatchResult

	if opts.TestMode {
		n := opts.TestCount
		if n < 0 {
			n = 0
		}
		if n > len(docPaths) {
			n = len(docPaths)
		}
		docPaths = docPaths[:n]
		fmt.Fprintf(w, "test mode: processing %d files\n", len(docPaths))
	}

	var limiter *rate.Limiter
	if opts.Interval > 0 {
		limiter = rate.NewLimiter(rate.Every(opts.Interval), 1)
	}

	for _, docPath := range docPaths {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return result, err
			}
		} else {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			default:
			}
		}

		rec := c.ConvertFile(ctx, docPath, outputDir, w)
		result.Records = append(result.Records, rec)
		if rec.Status == types.FileConverted {
			result.Converted++
		} else {
			result.Failed++
		}
		if opts.OnFile != nil {
			opts.OnFile(rec)
		}
	}

	fmt.Fprintf(w, "\nBatch summary: %d converted, %d failed (total: %d)\n",
		result.Converted, result.Failed, result.Total())
	return result, nil
}
