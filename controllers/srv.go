// controllers/srv.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RoyPushkar-kun/Library-Management-System/app"
	"github.com/RoyPushkar-kun/Library-Management-System/cache"
	"github.com/RoyPushkar-kun/Library-Management-System/config"
	"github.com/RoyPushkar-kun/Library-Management-System/fines"
	"github.com/RoyPushkar-kun/Library-Management-System/library"
)

// Srv bundles the core components the controllers call.
type Srv struct {
	Catalog     *library.Catalog
	Directory   *library.Directory
	Ledger      *library.Ledger
	Reports     *library.ReportEngine
	ReportCache *cache.ReportCache // nil when Redis is disabled
	Cfg         config.Config
}

func GetSrv(a *app.App) *Srv {
	catalog := library.NewCatalog(a.Store)
	directory := library.NewDirectory(a.Store)
	calc := fines.NewCalculator(a.Config.FinePerDay)

	s := &Srv{
		Catalog:   catalog,
		Directory: directory,
		Ledger:    library.NewLedger(catalog, directory, a.Store, calc),
		Reports:   library.NewReportEngine(a.Store, a.Store, a.Store),
		Cfg:       a.Config,
	}
	if a.RDB != nil {
		s.ReportCache = cache.NewReportCache(a.RDB, a.Config.ReportCacheTTL)
	}
	return s
}

// respondErr translates the core error taxonomy to HTTP statuses.
func respondErr(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case library.IsNotFound(err):
		status = http.StatusNotFound
	case library.IsInvalidInput(err):
		status = http.StatusBadRequest
	case library.IsInactive(err):
		status = http.StatusForbidden
	case library.IsUnavailable(err), library.IsAlreadyReturned(err),
		library.IsInUse(err), library.IsConflict(err):
		status = http.StatusConflict
	}
	c.JSON(status, app.H{"error": err.Error()})
}
