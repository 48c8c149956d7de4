// Package audit records who did what, when. Recording is a side effect
// of the primary operation and must never block or fail it: sink errors
// are logged at debug level and otherwise swallowed.
package audit

import (
	"fmt"
	"time"

	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/logger"
)

// Sink is where audit lines end up.
type Sink interface {
	Append(line string) error
}

// Trail appends timestamped entries to an append-only sink.
type Trail struct {
	sink   Sink
	now    func() time.Time
	logger *logger.Logger
}

func NewTrail(sink Sink, logger *logger.Logger) *Trail {
	return &Trail{
		sink:   sink,
		now:    time.Now,
		logger: logger,
	}
}

// Record appends one entry. Failures are swallowed.
func (t *Trail) Record(msg string) {
	entry := fmt.Sprintf("%s | %s", t.now().Format("2006-01-02 15:04:05"), msg)
	if err := t.sink.Append(entry); err != nil {
		t.logger.Debug("audit: failed to append entry",
			"error", err.Error())
	}
}

// Recordf is Record with fmt.Sprintf formatting.
func (t *Trail) Recordf(format string, args ...any) {
	t.Record(fmt.Sprintf(format, args...))
}
