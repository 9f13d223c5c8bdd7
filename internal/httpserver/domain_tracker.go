package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"timetable-tracker/internal/middleware"
	trackerHTTP "timetable-tracker/internal/tracker/delivery/http"
)

// setupTrackerDomain registers the tracker routes. The use case is built by
// the caller because the CLI shares it.
//
// Pattern to follow when adding a new domain:
//  1. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc, ...)
//  2. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h, mw)
func (srv HTTPServer) setupTrackerDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. HTTP Handler
	h := trackerHTTP.New(srv.l, srv.trackerUC, srv.dateParser)

	// 2. Routes: registers /api/v1/tasks, /api/v1/progress, /api/v1/today, /api/v1/stats/*
	trackerHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Tracker domain registered (timezone %s)", srv.dateParser.Location())
	return nil
}
