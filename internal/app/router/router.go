package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	repairhandler "calc_backend/internal/feature/repair/transport/handler"
	"calc_backend/internal/platform/http/handler"
	"calc_backend/internal/platform/http/middleware"
)

// Options は任意のルーター設定です。
type Options struct {
	RequestTimeout time.Duration
	Readiness      map[string]handler.Pinger
}

func NewRouter(repair *repairhandler.RepairHandler, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog())

	// 導通確認用
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	// 依存先（DB, Redis）の疎通確認
	r.GET("/readyz", handler.Readiness(5*time.Second, opts.Readiness))
	// Prometheusメトリクス
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.Use(middleware.Timeout(opts.RequestTimeout))
	{
		api.GET("/calculations/:id/repair", repair.GetRepair)
		api.GET("/calculations/:id/gaps", repair.GetGaps)
	}

	return r
}
