package logger

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// JSONLogger adapts the stdlib log package to one JSON object per line
// on stdout, tagged with the serving instance.
type JSONLogger struct {
	Instance string
}

func (l *JSONLogger) Write(p []byte) (n int, err error) {
	logEntry := map[string]interface{}{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"level":     "info",
		"instance":  l.Instance,
		"message":   strings.TrimRight(string(p), "\n"),
	}

	jsonBytes, err := json.Marshal(logEntry)
	if err != nil {
		return 0, err
	}

	fmt.Println(string(jsonBytes))
	return len(p), nil
}
