package handlers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

// System serves health, database and route introspection endpoints.
type System struct {
	DB     Pinger
	Driver string
	Routes func() gin.RoutesInfo
}

func (h System) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "rental backend running"})
}

func (h System) DBCheck(c *gin.Context) {
	if h.DB == nil {
		respondError(c, http.StatusServiceUnavailable, "db_unavailable", "database is not connected", nil)
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	start := time.Now()
	if err := h.DB.PingContext(ctx); err != nil {
		respondError(c, http.StatusServiceUnavailable, "db_unavailable", "database ping failed: "+err.Error(), nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "database connection OK",
		"driver":     h.Driver,
		"latency_ms": float64(time.Since(start).Microseconds()) / 1000.0,
	})
}

type RouteInfo struct {
	Method  string `json:"method"`
	Path    string `json:"path"`
	Handler string `json:"handler"`
}

// SortedRoutes orders routes by path, then method.
func SortedRoutes(routes gin.RoutesInfo) []RouteInfo {
	out := make([]RouteInfo, 0, len(routes))
	for _, rt := range routes {
		out = append(out, RouteInfo{Method: rt.Method, Path: rt.Path, Handler: rt.Handler})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Method < out[j].Method
	})
	return out
}

func (h System) ListRoutes(c *gin.Context) {
	if h.Routes == nil {
		respondError(c, http.StatusServiceUnavailable, "router_not_ready", "router is not ready", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"routes": SortedRoutes(h.Routes())})
}
