// Package logging holds the process-wide structured logger.
package logging

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Log is shared by every component; scan cycles derive child loggers from it
// with a per-cycle trace_id field.
var Log *logrus.Logger

func init() {
	Log = logrus.New()
	Log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	Log.SetOutput(os.Stdout)
	Log.SetLevel(logrus.InfoLevel)
}
