// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	gunzip "github.com/hashicorp/go-gunzip"
	"golang.org/x/sync/errgroup"
)

// CLI are the cli parameters for go-gunzip binary
type CLI struct {
	Inputs              []string         `arg:"" name:"input" help:"Path to gzip file. (\"-\" for STDIN)"`
	Force               bool             `short:"f" help:"Overwrite output files if they exist."`
	Jobs                int              `short:"j" optional:"" default:"1" help:"Number of inputs that are decompressed in parallel."`
	MaxDecompressedSize int64            `optional:"" default:"1073741824" help:"Maximum decompressed size that is allowed (in bytes). (disable check: -1)"`
	MaxInputSize        int64            `optional:"" default:"1073741824" help:"Maximum input size that is allowed (in bytes). (disable check: -1)"`
	Metrics             bool             `short:"M" optional:"" default:"false" help:"Print metrics to log after decompression."`
	OutputDir           string           `short:"d" optional:"" help:"Output directory. (default: directory of the input)"`
	Stdout              bool             `short:"c" help:"Write decompressed data to STDOUT."`
	Test                bool             `short:"t" help:"Test the integrity of the inputs, do not write any output."`
	Verbose             bool             `short:"v" optional:"" help:"Verbose logging."`
	Version             kong.VersionFlag `short:"V" optional:"" help:"Print release version information."`
}

// defaultFileMode is the file mode of a decompressed file (respecting umask)
const defaultFileMode = 0640

// Run the entrypoint into go-gunzip as a cli tool
func Run(version, commit, date string) {
	ctx := context.Background()
	var cli CLI
	kong.Parse(&cli,
		kong.Description("A secure gzip decompression utility"),
		kong.UsageOnError(),
		kong.Vars{
			"version": fmt.Sprintf("%s (%s), commit %s, built at %s", filepath.Base(os.Args[0]), version, commit, date),
		},
	)

	// Check for verbose output
	logLevel := slog.LevelError
	if cli.Verbose {
		logLevel = slog.LevelDebug
	}

	// setup logger
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	if err := run(ctx, &cli, logger, os.Stdin, os.Stdout); err != nil {
		logger.Error("error during decompression", "error", err)
		os.Exit(-1)
	}
}

// run decompresses every input of cli. Up to cli.Jobs inputs are processed in
// parallel; the first failure cancels the remaining inputs.
func run(ctx context.Context, cli *CLI, logger *slog.Logger, stdin io.Reader, stdout io.Writer) error {

	// setup telemetry hook
	telemetryToLog := func(ctx context.Context, td *gunzip.TelemetryData) {
		if cli.Metrics {
			logger.Info("decompression finished", "telemetry", td)
		}
	}

	// process cli params
	config := gunzip.NewConfig(
		gunzip.WithLogger(logger),
		gunzip.WithMaxDecompressedSize(cli.MaxDecompressedSize),
		gunzip.WithMaxInputSize(cli.MaxInputSize),
		gunzip.WithTelemetryHook(telemetryToLog),
	)

	// STDIN can only be read once
	stdinCount := 0
	for _, input := range cli.Inputs {
		if input == "-" {
			stdinCount++
		}
	}
	if stdinCount > 1 {
		return errors.New("STDIN (\"-\") can only be used once")
	}

	jobs := cli.Jobs
	if jobs < 1 {
		jobs = 1
	}

	// results are kept in input order when they go to STDOUT
	results := make([][]byte, len(cli.Inputs))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(jobs)
	for i, input := range cli.Inputs {
		i, input := i, input
		eg.Go(func() error {
			data, err := decompressInput(egCtx, config, input, stdin)
			if err != nil {
				return fmt.Errorf("%s: %w", displayName(input), err)
			}
			logger.Debug("decompressed input", "input", displayName(input), "size", len(data))

			switch {
			case cli.Test:
				return nil
			case cli.Stdout:
				results[i] = data
				return nil
			default:
				return writeOutput(cli, input, data)
			}
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	if cli.Stdout && !cli.Test {
		for _, data := range results {
			if _, err := stdout.Write(data); err != nil {
				return fmt.Errorf("cannot write to STDOUT: %w", err)
			}
		}
	}
	return nil
}

// decompressInput opens input, or uses stdin if input is "-", and decompresses it.
func decompressInput(ctx context.Context, config *gunzip.Config, input string, stdin io.Reader) ([]byte, error) {
	if input == "-" {
		return gunzip.DecompressReader(ctx, bufio.NewReader(stdin), config)
	}

	f, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("cannot open input: %w", err)
	}
	defer f.Close()

	return gunzip.DecompressReader(ctx, bufio.NewReader(f), config)
}

// writeOutput stores data in the output file that belongs to input.
func writeOutput(cli *CLI, input string, data []byte) error {
	inputName := ""
	dir := cli.OutputDir
	if input != "-" {
		inputName = input
		if len(dir) == 0 {
			dir = filepath.Dir(input)
		}
	}
	if len(dir) == 0 {
		dir = "."
	}
	dst := filepath.Join(dir, determineOutputName(inputName))

	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if !cli.Force {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(dst, flags, defaultFileMode)
	if err != nil {
		return fmt.Errorf("cannot create output: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("cannot write output: %w", err)
	}
	return f.Close()
}

// displayName returns a readable name of input for messages.
func displayName(input string) string {
	if input == "-" {
		return "STDIN"
	}
	return input
}
