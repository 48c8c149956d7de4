package service

import (
	"context"

	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/logger"
	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/model"
)

// Gateway hydrates and flushes the three entity collections.
type Gateway interface {
	Load(ctx context.Context, identity model.IdentityStore, courses model.CourseStore, ledger model.EnrollmentStore) error
	Flush(ctx context.Context, identity model.IdentityStore, courses model.CourseStore, ledger model.EnrollmentStore) error
}

// Portal bundles the engine's services and collections into one
// explicitly-passed context object with an initialization step
// (Hydrate) and a teardown step (Flush), instead of process-lifetime
// globals.
type Portal struct {
	Identity      *Identity
	Registry      *Registry
	Ledger        *Ledger
	Report        *Report
	Announcements *Announcements

	identityStore model.IdentityStore
	courseStore   model.CourseStore
	ledgerStore   model.EnrollmentStore
	gateway       Gateway
	logger        *logger.Logger
}

// PortalParams collects the dependencies of a Portal.
type PortalParams struct {
	Identity      *Identity
	Registry      *Registry
	Ledger        *Ledger
	Report        *Report
	Announcements *Announcements
	IdentityStore model.IdentityStore
	CourseStore   model.CourseStore
	LedgerStore   model.EnrollmentStore
	Gateway       Gateway
	Logger        *logger.Logger
}

func NewPortal(params PortalParams) *Portal {
	return &Portal{
		Identity:      params.Identity,
		Registry:      params.Registry,
		Ledger:        params.Ledger,
		Report:        params.Report,
		Announcements: params.Announcements,
		identityStore: params.IdentityStore,
		courseStore:   params.CourseStore,
		ledgerStore:   params.LedgerStore,
		gateway:       params.Gateway,
		logger:        params.Logger,
	}
}

// Hydrate loads all collections from storage and seeds the default
// catalogue when the registry comes up empty. A persistence failure is
// a warning: the engine continues with whatever loaded.
func (p *Portal) Hydrate(ctx context.Context) error {
	err := p.gateway.Load(ctx, p.identityStore, p.courseStore, p.ledgerStore)
	if err != nil {
		p.logger.Warn("Portal: hydration incomplete",
			"error", err.Error())
	}
	p.Registry.SeedDefaults(ctx)

	p.logger.Info("Portal: data loaded",
		"students", len(p.identityStore.Students()),
		"instructors", len(p.identityStore.Instructors()),
		"courses", p.courseStore.Len(),
		"enrollments", len(p.ledgerStore.Enrollments()))
	return err
}

// Flush persists the full in-memory snapshot of every collection.
func (p *Portal) Flush(ctx context.Context) error {
	err := p.gateway.Flush(ctx, p.identityStore, p.courseStore, p.ledgerStore)
	if err != nil {
		p.logger.Warn("Portal: flush incomplete",
			"error", err.Error())
	}
	return err
}
