package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/audit"
	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/logger"
	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/model"
)

// AnnouncementSink is the append-only text stream backing the board.
type AnnouncementSink interface {
	Append(line string) error
	Lines() ([]string, error)
}

// Announcements is the instructor-facing announcement board. The board
// is an external sink: entries are plain text lines and are never
// parsed back into structured state.
type Announcements struct {
	sink   AnnouncementSink
	trail  *audit.Trail
	now    func() time.Time
	logger *logger.Logger
}

func NewAnnouncements(sink AnnouncementSink, trail *audit.Trail, logger *logger.Logger) *Announcements {
	return &Announcements{
		sink:   sink,
		trail:  trail,
		now:    time.Now,
		logger: logger,
	}
}

// Post appends a single-line announcement attributed to the
// instructor.
func (a *Announcements) Post(ctx context.Context, instructor *model.Instructor, message string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return model.NewValidationError("message", "cannot be empty")
	}

	entry := fmt.Sprintf("%s | %s (%s): %s",
		a.now().Format("2006-01-02 15:04:05"), instructor.Name, instructor.ID, message)
	if err := a.sink.Append(entry); err != nil {
		return fmt.Errorf("failed to post announcement: %w", err)
	}

	a.trail.Recordf("Announcement posted by %s", instructor.ID)
	return nil
}

// List returns every posted announcement, oldest first. A board that
// was never written to is empty, not an error.
func (a *Announcements) List(ctx context.Context) ([]string, error) {
	lines, err := a.sink.Lines()
	if err != nil {
		return nil, fmt.Errorf("failed to read announcements: %w", err)
	}
	return lines, nil
}
