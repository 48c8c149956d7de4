package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/audit"
	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/config"
	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/digest"
	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/logger"
	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/repository/csvfile"
	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/repository/memory"
	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/service"
	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/storage/textlog"
	"github.com/AyeOrcine/Academic-Records-Enrollment-Admin-System-AREAS/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)
	logger.Info("starting academic record engine",
		"version", buildVersion,
		"date", buildDate,
		"commit", buildCommit)

	digester, err := digest.New(cfg.Digest.Algorithm)
	if err != nil {
		logger.Fatal("failed to initialize digester", "error", err)
	}
	tokenManager := token.NewJWT(cfg.JWT.Secret)

	identityRepo := memory.NewIdentityRepository()
	courseRepo := memory.NewCourseRepository()
	enrollmentRepo := memory.NewEnrollmentRepository()
	gateway := csvfile.NewGateway(cfg.Files.Users, cfg.Files.Courses, cfg.Files.Enrollments, logger)

	trail := audit.NewTrail(textlog.New(cfg.Files.AuditLog), logger)
	announcementSink := textlog.New(cfg.Files.Announcements)

	identityService := service.NewIdentity(identityRepo, digester, tokenManager, trail, logger)
	registryService := service.NewRegistry(courseRepo, identityRepo, trail, logger)
	ledgerService := service.NewLedger(identityRepo, courseRepo, enrollmentRepo, trail, logger)
	reportService := service.NewReport(cfg.Files.ReportDir, identityRepo, courseRepo, trail, logger)
	announcementService := service.NewAnnouncements(announcementSink, trail, logger)

	portal := service.NewPortal(service.PortalParams{
		Identity:      identityService,
		Registry:      registryService,
		Ledger:        ledgerService,
		Report:        reportService,
		Announcements: announcementService,
		IdentityStore: identityRepo,
		CourseStore:   courseRepo,
		LedgerStore:   enrollmentRepo,
		Gateway:       gateway,
		Logger:        logger,
	})

	if err := portal.Hydrate(ctx); err != nil {
		logger.Warn("continuing with partial data", "error", err)
	}

	<-ctx.Done()
	stop()

	flushCtx := context.Background()
	if err := portal.Flush(flushCtx); err != nil {
		logger.Error("failed to flush state", "error", err)
	}
	logger.Info("shutdown complete")
}
