package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var (
	// InfoLogger records request flow and state changes
	InfoLogger *log.Logger
	// ErrorLogger records failures
	ErrorLogger *log.Logger
	// DebugLogger records pricing and gateway detail useful in development
	DebugLogger *log.Logger
)

// InitLogger opens the day's log files under logs/ and wires the three
// loggers. Files are appended to, so restarts within a day share a file.
func InitLogger() error {
	logsDir := "logs"
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %v", err)
	}

	day := time.Now().Format("2006-01-02")

	infoFile, err := openLogFile(logsDir, "info", day)
	if err != nil {
		return err
	}
	errorFile, err := openLogFile(logsDir, "error", day)
	if err != nil {
		return err
	}
	debugFile, err := openLogFile(logsDir, "debug", day)
	if err != nil {
		return err
	}

	InfoLogger = log.New(infoFile, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLogger = log.New(errorFile, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	DebugLogger = log.New(debugFile, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

	return nil
}

func openLogFile(dir, level, day string) (*os.File, error) {
	name := fmt.Sprintf("%s-%s-%s.log", strings.ToLower(AppName), level, day)
	f, err := os.OpenFile(
		filepath.Join(dir, name),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		0644,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s log file: %v", level, err)
	}
	return f, nil
}

// LogInfo writes to the info log. All Log helpers are no-ops before
// InitLogger, so packages may log unconditionally.
func LogInfo(format string, v ...interface{}) {
	if InfoLogger != nil {
		InfoLogger.Printf(format, v...)
	}
}

// LogError writes to the error log
func LogError(format string, v ...interface{}) {
	if ErrorLogger != nil {
		ErrorLogger.Printf(format, v...)
	}
}

// LogDebug writes to the debug log
func LogDebug(format string, v ...interface{}) {
	if DebugLogger != nil {
		DebugLogger.Printf(format, v...)
	}
}

// LogRequest records one handled HTTP request
func LogRequest(method, path, ip string, status int, duration time.Duration) {
	LogInfo("Request: %s %s from %s - Status: %d - Duration: %v", method, path, ip, status, duration)
}

// LogErrorWithStack records a recovered panic with its stack trace
func LogErrorWithStack(err error, stack []byte) {
	if ErrorLogger != nil {
		ErrorLogger.Printf("Error: %v\nStack Trace:\n%s", err, stack)
	}
}
