package background

import (
	"context"
	"log"
	"time"

	"festiloc/internal/caching"
	"festiloc/internal/services"

	"github.com/go-co-op/gocron/v2"
)

// JobScheduler runs the periodic maintenance jobs: navigation tree cache
// refresh and announcement window expiry. All jobs are registered before
// Start; the job map is never mutated afterwards.
type JobScheduler struct {
	scheduler      gocron.Scheduler
	catalogService services.CatalogService
	contentService services.ContentService
	jobs           map[string]gocron.Job
}

func NewJobScheduler(catalogService services.CatalogService, contentService services.ContentService) *JobScheduler {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	js := &JobScheduler{
		scheduler:      scheduler,
		catalogService: catalogService,
		contentService: contentService,
		jobs:           make(map[string]gocron.Job),
	}

	js.registerJobs()

	return js
}

func (js *JobScheduler) Start() error {
	log.Printf("Starting background job scheduler")
	js.scheduler.Start()
	return nil
}

func (js *JobScheduler) Stop() error {
	log.Printf("Stopping background job scheduler")
	return js.scheduler.Shutdown()
}

func (js *JobScheduler) registerJobs() {
	// Navigation tree refresh, matching the cache TTL so the mega-menu
	// never serves stale structure for longer than one cycle
	treeJob, err := js.scheduler.NewJob(
		gocron.DurationJob(caching.TreeTTL),
		gocron.NewTask(js.refreshCategoryTree, context.Background()),
		gocron.WithName("category-tree-refresh"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		log.Printf("Failed to create tree refresh job: %v", err)
	} else {
		js.jobs["tree-refresh"] = treeJob
	}

	// Announcement expiry sweep - every hour
	expiryJob, err := js.scheduler.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(js.expireAnnouncements, context.Background()),
		gocron.WithName("announcement-expiry"),
	)
	if err != nil {
		log.Printf("Failed to create announcement expiry job: %v", err)
	} else {
		js.jobs["announcement-expiry"] = expiryJob
	}

	log.Printf("Registered %d background jobs", len(js.jobs))
}

func (js *JobScheduler) refreshCategoryTree(ctx context.Context) error {
	if _, err := js.catalogService.RefreshTree(ctx); err != nil {
		log.Printf("Category tree refresh failed: %v", err)
		return err
	}
	return nil
}

func (js *JobScheduler) expireAnnouncements(ctx context.Context) error {
	deactivated, err := js.contentService.ExpireAnnouncements(ctx)
	if err != nil {
		log.Printf("Announcement expiry sweep failed: %v", err)
		return err
	}
	if deactivated > 0 {
		log.Printf("Deactivated %d expired announcements", deactivated)
	}
	return nil
}
