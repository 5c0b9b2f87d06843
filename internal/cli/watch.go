package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"unicode/utf8"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/yildizm/LogPress/internal/compress"
	"github.com/yildizm/LogPress/internal/logger"
)

var watchFromStart bool

var watchLog = logger.NewWithCallback("watch", isVerbose)

func newWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Watch a log file and mine templates as it grows",
		Long: `Monitor a log file for changes and re-mine line templates over the
accumulated window on every write.

Each newly discovered template is printed once with its count at the time
of discovery. Press Ctrl+C to stop watching.

Examples:
  logpress watch app.log
  logpress watch --from-start crash.log`,
		Args: cobra.ExactArgs(1),
		RunE: runWatch,
	}

	cmd.Flags().BoolVar(&watchFromStart, "from-start", false, "mine existing content before following")

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	filename := args[0]

	watcher, file, cleanup, err := setupFileWatcher(filename)
	if err != nil {
		return err
	}
	defer cleanup()

	cfg := GetGlobalConfig()
	session := newWatchSession(compress.Options{
		EntropyThreshold: cfg.Compress.EntropyThreshold,
		ExemplarCap:      cfg.Compress.ExemplarCap,
	})

	if watchFromStart {
		if err := session.ingest(file); err != nil {
			return err
		}
	}

	return runWatchLoop(watcher, file, session)
}

// watchSession accumulates the lines seen so far and re-mines the whole
// window on each change. Full-window re-mining keeps column statistics
// exact; the bookkeeping only controls what gets printed.
type watchSession struct {
	engine *compress.Engine
	lines  []string
	seen   map[string]struct{}
}

func newWatchSession(opts compress.Options) *watchSession {
	return &watchSession{
		engine: compress.NewEngineWithOptions(opts),
		seen:   make(map[string]struct{}),
	}
}

// ingest reads any new lines from the file, re-mines the accumulated
// window, and prints clusters whose skeleton has not been shown yet.
func (s *watchSession) ingest(file *os.File) error {
	scanner := bufio.NewScanner(file)

	appended := 0
	for scanner.Scan() {
		line := scanner.Text()
		if !utf8.ValidString(line) {
			watchLog.Warn("skipping line with invalid UTF-8")
			continue
		}
		s.lines = append(s.lines, line)
		appended++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}
	if appended == 0 {
		return nil
	}

	summary := s.engine.Compress(s.lines)
	for _, c := range summary.Clusters {
		if _, ok := s.seen[c.Skeleton]; ok {
			continue
		}
		s.seen[c.Skeleton] = struct{}{}
		if c.Skeleton == "" {
			fmt.Printf("[%dx]\n", c.Count)
		} else {
			fmt.Printf("[%dx] %s\n", c.Count, c.Skeleton)
		}
	}

	watchLog.Debug("window now %d lines, %d clusters", len(s.lines), summary.ClusterCount())
	return nil
}

// cleanupWatcher safely closes watcher with error logging
func cleanupWatcher(watcher *fsnotify.Watcher) {
	if err := watcher.Close(); err != nil {
		watchLog.Warn("failed to close watcher: %v", err)
	}
}

// cleanupFile safely closes file with error logging
func cleanupFile(file *os.File) {
	if err := file.Close(); err != nil {
		watchLog.Warn("failed to close file: %v", err)
	}
}

// createWatcher creates and configures a new file system watcher
func createWatcher(filename string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(filename); err != nil {
		cleanupWatcher(watcher)
		return nil, fmt.Errorf("failed to watch file: %w", err)
	}

	return watcher, nil
}

// openWatchFile opens and positions the file for watching. Unless
// --from-start is set, mining begins at the current end of file.
func openWatchFile(filename string) (*os.File, error) {
	// #nosec G304 - path is validated by caller
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	if !watchFromStart {
		if _, err := file.Seek(0, io.SeekEnd); err != nil {
			cleanupFile(file)
			return nil, fmt.Errorf("failed to seek to end of file: %w", err)
		}
	}

	return file, nil
}

// setupFileWatcher creates and configures file watcher
func setupFileWatcher(filename string) (*fsnotify.Watcher, *os.File, func(), error) {
	if err := validateWatchFilePath(filename); err != nil {
		return nil, nil, nil, fmt.Errorf("invalid file path: %w", err)
	}

	watchLog.Info("watching file: %s", filename)

	watcher, err := createWatcher(filename)
	if err != nil {
		return nil, nil, nil, err
	}

	file, err := openWatchFile(filename)
	if err != nil {
		cleanupWatcher(watcher)
		return nil, nil, nil, err
	}

	cleanup := func() {
		cleanupWatcher(watcher)
		cleanupFile(file)
	}

	return watcher, file, cleanup, nil
}

// runWatchLoop runs the main watch loop with signal handling
func runWatchLoop(watcher *fsnotify.Watcher, file *os.File, session *watchSession) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-signals:
			watchLog.Info("received interrupt signal, stopping")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if event.Op&fsnotify.Write == fsnotify.Write {
				if err := session.ingest(file); err != nil {
					watchLog.Warn("error processing new lines: %v", err)
				}
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			watchLog.Warn("watcher error: %v", err)
		}
	}
}

// validateWatchFilePath validates that a file path is safe to watch
func validateWatchFilePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("empty file path")
	}

	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("cannot watch directory, must be a file")
	}

	return nil
}
