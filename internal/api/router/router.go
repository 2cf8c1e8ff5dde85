package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ilyasbozdemir/personel-duty-tracking/config"
	"github.com/ilyasbozdemir/personel-duty-tracking/internal/api/handler"
	"github.com/ilyasbozdemir/personel-duty-tracking/internal/api/middleware"
	"github.com/ilyasbozdemir/personel-duty-tracking/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
// rdb 为 nil 时导出接口不限流
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyMB << 20))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "storage": cfg.Storage.Driver})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		v1.GET("/dashboard", h.Stats.Dashboard)

		// 人员模块
		personnel := v1.Group("/personnel")
		{
			personnel.GET("", h.Personnel.ListPersonnel)
			personnel.POST("", h.Personnel.CreatePersonnel)
			personnel.DELETE("/:id", h.Personnel.DeletePersonnel)
		}

		// 值班类型模块
		dutyTypes := v1.Group("/duty-types")
		{
			dutyTypes.GET("", h.DutyType.ListDutyTypes)
			dutyTypes.POST("", h.DutyType.CreateDutyType)
			dutyTypes.DELETE("/:id", h.DutyType.DeleteDutyType)
		}

		// 值班记录模块
		dutyEntries := v1.Group("/duty-entries")
		{
			dutyEntries.GET("", h.DutyEntry.ListDutyEntries)
			dutyEntries.POST("", h.DutyEntry.CreateDutyEntry)
			dutyEntries.DELETE("/:id", h.DutyEntry.DeleteDutyEntry)
		}

		// 统计模块
		stats := v1.Group("/stats")
		{
			stats.GET("", h.Stats.ListStats)
			stats.GET("/:personnel_id", h.Stats.GetPersonnelStats)
		}

		// 导出模块（生成文件较重，按 IP 限流）
		export := v1.Group("/export")
		{
			export.GET("/preview", h.Export.PreviewRoster)
			export.GET("/roster",
				middleware.RateLimit(rdb, cfg.RateLimit.ExportLimit, cfg.RateLimit.ExportWindow, logger),
				h.Export.ExportRoster,
			)
		}

		// 图片模块
		media := v1.Group("/media")
		{
			media.GET("", h.Media.ListImages)
			media.POST("", h.Media.UploadImage)
			media.GET("/:id/raw", h.Media.GetImageRaw)
			media.DELETE("/:id", h.Media.DeleteImage)
		}

		// 主题设置
		theme := v1.Group("/settings/theme")
		{
			theme.GET("", h.Settings.GetTheme)
			theme.PUT("", h.Settings.UpdateTheme)
			theme.POST("/toggle", h.Settings.ToggleTheme)
		}
	}

	return r
}
