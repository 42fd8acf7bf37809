// Package wire provides dependency injection for the kosha application.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"path/filepath"
	"sync"

	"github.com/example/kosha/internal/adapters/sqlite"
	"github.com/example/kosha/internal/adapters/yamlfile"
	"github.com/example/kosha/internal/app"
	"github.com/example/kosha/internal/config"
	"github.com/example/kosha/internal/db"
)

var (
	cfg     *config.Config
	cfgOnce sync.Once

	dhatuRepo *sqlite.DhatuRepository
	dbOnce    sync.Once
)

// Config returns the configuration, falling back to the default layout
// rooted at the current directory when no config file exists.
func Config() *config.Config {
	cfgOnce.Do(func() {
		loaded, err := config.LoadConfig(".")
		if err != nil {
			loaded = config.Default(".")
		}
		cfg = loaded
	})
	return cfg
}

// dhatuRepository opens the dhatu index on first use.
func dhatuRepository() *sqlite.DhatuRepository {
	dbOnce.Do(func() {
		database, err := db.Open(Config().DBPath)
		if err != nil {
			log.Fatalf("failed to initialize database: %v", err)
		}
		dhatuRepo = sqlite.NewDhatuRepository(database)
	})
	return dhatuRepo
}

// ParseService returns a new ParseService.
func ParseService() *app.ParseService {
	return app.NewParseService()
}

// GenerateService returns a GenerateService writing under outputRoot, with
// the quarantine files in its invalid/ subfolder.
func GenerateService(outputRoot string) *app.GenerateService {
	canonical := yamlfile.NewCanonicalStore(outputRoot)
	quarantine := yamlfile.NewQuarantineStore(filepath.Join(outputRoot, "invalid"))
	return app.NewGenerateService(canonical, quarantine)
}

// SplitService returns a new SplitService.
func SplitService() *app.SplitService {
	return app.NewSplitService()
}

// ReviewService returns a new ReviewService.
func ReviewService() *app.ReviewService {
	return app.NewReviewService()
}

// VerifyService returns a new VerifyService.
func VerifyService() *app.VerifyService {
	return app.NewVerifyService()
}

// BackportService returns a new BackportService. The dhatu index is only
// opened when id checking is requested.
func BackportService(checkIDs bool) *app.BackportService {
	if !checkIDs {
		return app.NewBackportService(nil)
	}
	return app.NewBackportService(dhatuRepository())
}

// DhatuService returns the DhatuService backed by the configured index.
func DhatuService() *app.DhatuService {
	return app.NewDhatuService(dhatuRepository())
}
