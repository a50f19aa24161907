package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
	"time"
)

const (
	// CrashLogDir is the crash log directory below the base path.
	CrashLogDir = "crash_logs"

	// MaxCrashLogs is the maximum number of crash logs to keep.
	MaxCrashLogs = 10

	defaultBasePath = ".kanban"
)

// crashContext records what the process was doing when it panicked.
type crashContext struct {
	mu       sync.RWMutex
	command  string
	version  string
	backend  string
	lastTool string
	basePath string
}

var crashState = &crashContext{}

// SetBasePath sets the directory that holds crash_logs/.
func SetBasePath(path string) {
	crashState.mu.Lock()
	defer crashState.mu.Unlock()
	crashState.basePath = path
}

// SetVersion records the build version.
func SetVersion(version string) {
	crashState.mu.Lock()
	defer crashState.mu.Unlock()
	crashState.version = version
}

// SetCommand records the CLI command being executed.
func SetCommand(cmd string) {
	crashState.mu.Lock()
	defer crashState.mu.Unlock()
	crashState.command = cmd
}

// SetBackend records the configured storage backend and its target.
func SetBackend(backend, target string) {
	crashState.mu.Lock()
	defer crashState.mu.Unlock()
	crashState.backend = strings.TrimSpace(backend + " " + target)
}

// SetLastTool records the most recent MCP tool invocation.
func SetLastTool(tool string) {
	crashState.mu.Lock()
	defer crashState.mu.Unlock()
	crashState.lastTool = truncateForLog(tool, 500)
}

func truncateForLog(value string, maxLen int) string {
	if len(value) <= maxLen {
		return value
	}
	return value[:maxLen] + "... [truncated]"
}

// CrashLog is one crash report.
type CrashLog struct {
	Timestamp  time.Time
	Version    string
	Command    string
	Backend    string
	LastTool   string
	PanicValue string
	StackTrace string
	GoVersion  string
	OS         string
	Arch       string
}

// HandlePanic recovers a panic, writes a crash log and exits with status 1.
// Usage: defer logger.HandlePanic()
func HandlePanic() {
	r := recover()
	if r == nil {
		return
	}
	entry := newCrashLog(r)
	path, err := writeCrashLog(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "\n[CRASH] Failed to write crash log: %v\n", err)
		fmt.Fprintf(os.Stderr, "[CRASH] Panic: %v\n%s\n", r, entry.StackTrace)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "\nkanban-sheets stopped after an unexpected error.\n")
	fmt.Fprintf(os.Stderr, "A crash log has been saved to:\n  %s\n\n", path)
	os.Exit(1)
}

func newCrashLog(panicValue any) CrashLog {
	crashState.mu.RLock()
	defer crashState.mu.RUnlock()

	return CrashLog{
		Timestamp:  time.Now(),
		Version:    crashState.version,
		Command:    crashState.command,
		Backend:    crashState.backend,
		LastTool:   crashState.lastTool,
		PanicValue: fmt.Sprintf("%v", panicValue),
		StackTrace: string(debug.Stack()),
		GoVersion:  runtime.Version(),
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
	}
}

// writeCrashLog stores entry and prunes old logs. It returns the file path.
func writeCrashLog(entry CrashLog) (string, error) {
	dir := crashLogDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create crash log dir: %w", err)
	}
	if err := pruneCrashLogs(dir, MaxCrashLogs-1); err != nil {
		fmt.Fprintf(os.Stderr, "[WARN] Failed to clean old crash logs: %v\n", err)
	}

	path := crashLogPath(dir, entry.Timestamp)
	if err := os.WriteFile(path, []byte(formatCrashLog(entry)), 0o644); err != nil {
		return "", fmt.Errorf("write crash log: %w", err)
	}
	return path, nil
}

func crashLogDir() string {
	crashState.mu.RLock()
	base := crashState.basePath
	crashState.mu.RUnlock()

	if base == "" {
		base = defaultBasePath
	}
	return filepath.Join(base, CrashLogDir)
}

func crashLogPath(dir string, t time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("crash_%s.log", t.Format("20060102_150405")))
}

func formatCrashLog(entry CrashLog) string {
	var sb strings.Builder
	rule := strings.Repeat("-", 80) + "\n"

	sb.WriteString("KANBAN-SHEETS CRASH LOG\n")
	sb.WriteString(rule)
	fmt.Fprintf(&sb, "Timestamp: %s\n", entry.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(&sb, "Version:   %s\n", entry.Version)
	fmt.Fprintf(&sb, "Command:   %s\n", entry.Command)
	fmt.Fprintf(&sb, "Go:        %s\n", entry.GoVersion)
	fmt.Fprintf(&sb, "OS/Arch:   %s/%s\n", entry.OS, entry.Arch)
	if entry.Backend != "" {
		fmt.Fprintf(&sb, "Backend:   %s\n", entry.Backend)
	}
	if entry.LastTool != "" {
		fmt.Fprintf(&sb, "Last tool: %s\n", entry.LastTool)
	}

	sb.WriteString(rule)
	sb.WriteString("PANIC\n")
	sb.WriteString(entry.PanicValue + "\n")
	sb.WriteString(rule)
	sb.WriteString("STACK TRACE\n")
	sb.WriteString(entry.StackTrace)
	return sb.String()
}

// pruneCrashLogs removes the oldest crash logs until at most keep remain.
func pruneCrashLogs(dir string, keep int) error {
	logs, err := crashLogFiles(dir)
	if err != nil || len(logs) <= keep {
		return err
	}
	// Names embed the timestamp and ReadDir sorts by name, so oldest come first.
	for _, path := range logs[:len(logs)-keep] {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove old crash log %s: %w", filepath.Base(path), err)
		}
	}
	return nil
}

func crashLogFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var logs []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), "crash_") && strings.HasSuffix(e.Name(), ".log") {
			logs = append(logs, filepath.Join(dir, e.Name()))
		}
	}
	return logs, nil
}
