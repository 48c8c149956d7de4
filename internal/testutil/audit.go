package testutil

import (
	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/audit"
)

type discardSink struct{}

func (discardSink) Append(string) error { return nil }

func MakeNoopTrail() *audit.Trail {
	return audit.NewTrail(discardSink{}, MakeNoopLogger())
}
