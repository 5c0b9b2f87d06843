package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/yildizm/LogPress/internal/compress"
	"github.com/yildizm/LogPress/internal/formatter"
	"github.com/yildizm/LogPress/internal/logger"
	"github.com/yildizm/go-termfmt"
)

var (
	compressMaxLines   int
	compressOutputFile string
)

var compressLog = logger.NewWithCallback("compress", isVerbose)

func newCompressCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compress [file]",
		Short: "Compress log files or stdin",
		Long: `Compress repetitive log lines into deduplicated templates.

If no file is specified, reads from stdin. Consumes all available input,
mines line templates, and writes one record per cluster in first-seen
order: a header with the count and skeleton, and an exemplar line with
sample values whenever the skeleton has placeholders.

Examples:
  logpress compress crash.log
  sample Live 5 | logpress compress
  logpress compress -o json report.txt
  logpress compress --output-file compact.txt huge.log`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCompress,
	}

	cmd.Flags().IntVar(&compressMaxLines, "max-lines", 0, "maximum lines to read (0 = config default)")
	cmd.Flags().StringVar(&compressOutputFile, "output-file", "", "save output to file instead of stdout")

	return cmd
}

func runCompress(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()

	maxLines := compressMaxLines
	if maxLines <= 0 {
		maxLines = cfg.Compress.MaxLines
	}

	reader, cleanup, err := setupInputReader(args)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	lines, err := readLines(reader, maxLines, cfg.Compress.MaxLineLength)
	if err != nil {
		return err
	}
	compressLog.Debug("read %d lines", len(lines))

	engine := compress.NewEngineWithOptions(compress.Options{
		EntropyThreshold: cfg.Compress.EntropyThreshold,
		ExemplarCap:      cfg.Compress.ExemplarCap,
	})
	summary := engine.Compress(lines)
	compressLog.InfoWithFields("mined clusters", []logger.Field{
		logger.Count(summary.ClusterCount()),
		logger.F("lines", summary.TotalLines),
	})

	output, err := formatSummary(summary)
	if err != nil {
		return err
	}

	if isVerbose() {
		writeStats(os.Stderr, summary)
	}

	return handleOutputDestination(output)
}

// readLines reads every input line, blank lines included: a blank line
// forms its own zero-token bucket downstream.
func readLines(reader io.Reader, maxLines, maxLineLength int) ([]string, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, maxLineLength), maxLineLength)

	var lines []string
	for len(lines) < maxLines && scanner.Scan() {
		line := scanner.Text()
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("input is not valid UTF-8 at line %d", len(lines)+1)
		}
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return lines, nil
}

// setupInputReader sets up the input reader based on command args
func setupInputReader(args []string) (reader io.Reader, cleanup func(), err error) {
	if len(args) == 0 {
		compressLog.Debug("reading from stdin")
		return os.Stdin, nil, nil
	}

	filename := args[0]

	if err := validateFilePath(filename); err != nil {
		return nil, nil, fmt.Errorf("invalid file path: %w", err)
	}

	cleanPath := filepath.Clean(filename)

	// #nosec G304 - path is validated above
	file, err := os.Open(cleanPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file %s: %w", filename, err)
	}

	cleanup = func() {
		if err := file.Close(); err != nil {
			compressLog.Warn("failed to close file: %v", err)
		}
	}

	compressLog.Debug("compressing file: %s", cleanPath)
	return file, cleanup, nil
}

func validateFilePath(path string) error {
	if path == "" {
		return fmt.Errorf("empty file path")
	}

	cleanPath := filepath.Clean(path)

	info, err := os.Stat(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file does not exist: %s", cleanPath)
		}
		return fmt.Errorf("cannot access file: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", cleanPath)
	}

	return nil
}

// formatSummary renders the summary with the selected formatter.
func formatSummary(summary *compress.Summary) ([]byte, error) {
	formatterInstance, err := getFormatter(getOutputFormat())
	if err != nil {
		return nil, err
	}

	output, err := formatterInstance.Format(summary)
	if err != nil {
		return nil, fmt.Errorf("failed to format output: %w", err)
	}

	return output, nil
}

// getFormatter returns the appropriate formatter for the given format
func getFormatter(format string) (formatter.Formatter, error) {
	switch format {
	case "json":
		return formatter.NewJSON(), nil
	case "markdown", "md":
		return formatter.NewMarkdown(), nil
	case "text", "":
		return formatter.NewText(), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// writeStats writes a compression statistics tree to the given writer.
func writeStats(w io.Writer, summary *compress.Summary) {
	opts := termfmt.DefaultOptions()
	opts.Color = colorEnabled()

	omitted := 0
	for _, sec := range summary.Sections {
		omitted += sec.SystemOmitted
	}

	items := []termfmt.TreeItem{
		{Label: "Input Lines", Value: fmt.Sprintf("%d", summary.TotalLines)},
		{Label: "Clusters", Value: fmt.Sprintf("%d", summary.ClusterCount())},
		{Label: "System Libraries Omitted", Value: fmt.Sprintf("%d", omitted)},
		{Label: "Reduction", Value: fmt.Sprintf("%.1f%%", summary.Reduction()), Last: true},
	}

	fmt.Fprintln(w, "Compression")
	fmt.Fprintln(w, termfmt.TreeViewWithOptions(items, opts))
}

// handleOutputDestination writes output to file or stdout
func handleOutputDestination(output []byte) error {
	if compressOutputFile == "" {
		fmt.Print(string(output))
		return nil
	}

	if err := writeOutputBytesToFile(output, compressOutputFile); err != nil {
		return fmt.Errorf("failed to write output to file: %w", err)
	}

	compressLog.Debug("output saved to: %s", compressOutputFile)
	return nil
}

// writeOutputBytesToFile writes output to a file with proper error handling
func writeOutputBytesToFile(output []byte, filePath string) error {
	cleanPath := filepath.Clean(filePath)

	file, err := os.Create(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			compressLog.Warn("failed to close output file: %v", closeErr)
		}
	}()

	if _, err := file.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if err := file.Sync(); err != nil {
		return fmt.Errorf("failed to sync output file: %w", err)
	}

	return nil
}
