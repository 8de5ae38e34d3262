package controller

import (
	"strings"

	"podpanel/pkg/logging"
)

// The functions in this file give handlers one place to log through, so the
// subsystem naming stays consistent across the controller.

// LogInfo logs an informational message.
func LogInfo(subsystem string, format string, a ...interface{}) {
	logging.Info(subsystem, format, a...)
}

// LogDebug logs a debug-level message.
func LogDebug(subsystem string, format string, a ...interface{}) {
	logging.Debug(subsystem, format, a...)
}

// LogWarn logs a warning message.
func LogWarn(subsystem string, format string, a ...interface{}) {
	logging.Warn(subsystem, format, a...)
}

// LogError logs an error message.
func LogError(subsystem string, err error, format string, a ...interface{}) {
	logging.Error(subsystem, err, format, a...)
}

// LogStderr logs multiple lines from a process's stderr as WARN level logs.
func LogStderr(source string, errorLines string) {
	if errorLines == "" {
		return
	}
	lines := strings.Split(strings.TrimRight(errorLines, "\n"), "\n")
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			logging.Warn(source+"-stderr", "%s", line)
		}
	}
}
