package main

import (
	"fmt"
	"io"
	"os"

	"github.com/odvcencio/mergeengine/pkg/config"
	"github.com/odvcencio/mergeengine/pkg/langtag"
	"github.com/odvcencio/mergeengine/pkg/resolve"
	"github.com/odvcencio/mergeengine/pkg/trace"
	"github.com/spf13/cobra"
)

const configFileName = ".merge-engine.toml"

// loadPipelineConfig reads configFileName from the current directory.
// Absence is not an error (the empty config resolves to pipeline
// defaults), mirroring the teacher's "missing config returns an empty
// config" convention.
func loadPipelineConfig(log trace.Logger) resolve.PipelineConfig {
	cfg, err := config.Load(configFileName)
	if err != nil {
		trace.Logf(log, "ignoring unreadable %s: %v", configFileName, err)
		return resolve.PipelineConfig{}
	}
	return cfg.PipelineConfig()
}

func newLogger(verbose bool) trace.Logger {
	if !verbose {
		return nil
	}
	return trace.New("debug")
}

// runPositional implements: merge-engine <base> <left> <right> [path]
func runPositional(cmd *cobra.Command, args []string, verbose bool) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: merge-engine <base> <left> <right> [path]")
	}
	basePath, leftPath, rightPath := args[0], args[1], args[2]

	base, left, right, err := readTriple(basePath, leftPath, rightPath)
	if err != nil {
		return err
	}

	lang := resolve.Unknown
	if len(args) >= 4 {
		lang = langtag.Detect(args[3])
	}

	log := newLogger(verbose)
	cfg := loadPipelineConfig(log)
	result := resolve.ResolveFile(base, left, right, lang, cfg, log)

	if err := os.WriteFile(leftPath, []byte(result.MergedContent), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", leftPath, err)
	}

	if !result.AllResolved {
		unresolved := countUnresolved(result)
		fmt.Fprintf(cmd.ErrOrStderr(), "%d conflict(s) unresolved\n", unresolved)
		os.Exit(1)
	}
	return nil
}

// runStdin implements: merge-engine --stdin
func runStdin(cmd *cobra.Command, verbose bool) error {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	log := newLogger(verbose)
	cfg := loadPipelineConfig(log)
	result := resolve.ResolveMarkedText(string(data), resolve.Unknown, cfg, log)

	fmt.Fprint(cmd.OutOrStdout(), result.MergedContent)

	if !result.AllResolved {
		os.Exit(1)
	}
	return nil
}

// runCheck implements: merge-engine --check <base> <left> <right>
func runCheck(cmd *cobra.Command, args []string, verbose bool) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: merge-engine --check <base> <left> <right>")
	}
	base, left, right, err := readTriple(args[0], args[1], args[2])
	if err != nil {
		return err
	}

	lang := resolve.Unknown
	if len(args) >= 4 {
		lang = langtag.Detect(args[3])
	}

	log := newLogger(verbose)
	cfg := loadPipelineConfig(log)
	result := resolve.ResolveFile(base, left, right, lang, cfg, log)

	fmt.Fprint(cmd.OutOrStdout(), result.MergedContent)

	if !result.AllResolved {
		unresolved := countUnresolved(result)
		fmt.Fprintf(cmd.ErrOrStderr(), "%d conflict(s) unresolved\n", unresolved)
		os.Exit(1)
	}
	return nil
}

func readTriple(basePath, leftPath, rightPath string) (base, left, right string, err error) {
	b, err := os.ReadFile(basePath)
	if err != nil {
		return "", "", "", fmt.Errorf("read %s: %w", basePath, err)
	}
	l, err := os.ReadFile(leftPath)
	if err != nil {
		return "", "", "", fmt.Errorf("read %s: %w", leftPath, err)
	}
	r, err := os.ReadFile(rightPath)
	if err != nil {
		return "", "", "", fmt.Errorf("read %s: %w", rightPath, err)
	}
	return string(b), string(l), string(r), nil
}

func countUnresolved(result resolve.FileResolution) int {
	n := 0
	for _, c := range result.Conflicts {
		if c.Resolution == nil {
			n++
		}
	}
	return n
}
