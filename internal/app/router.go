package app

import (
	"edu_hub_backend/docs"
	"edu_hub_backend/internal/config"
	"edu_hub_backend/internal/middleware"
	"edu_hub_backend/internal/model"
	"edu_hub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	// 公共路由：注册、登录、课程目录
	auth := router.Group("/auth")
	{
		auth.POST("/register", c.auth.Register)
		auth.POST("/login", c.auth.Login)
	}
	router.GET("/courses", c.subject.List)

	// 认证路由：网关校验令牌并回读实时账号
	authed := router.Group("/")
	authed.Use(middleware.AuthMiddleware(cfg, repos.user))
	{
		authed.GET("/profile", c.auth.GetProfile)
		authed.GET("/courses/:id", c.subject.Get)

		authed.GET("/feedback", c.feedback.List)
		authed.POST("/feedback", middleware.RoleMiddleware(model.Student), c.feedback.Create)

		authed.GET("/messages", c.message.List)
		authed.POST("/messages", c.message.Send)
		authed.GET("/messages/ws", c.message.HandleWS)

		// 教师相关接口
		teacher := authed.Group("/")
		teacher.Use(middleware.RoleMiddleware(model.Teacher))
		{
			teacher.POST("/courses", c.subject.Create)
			teacher.DELETE("/courses/:id", c.subject.Delete)
			teacher.POST("/resources", c.resource.Create)
			teacher.DELETE("/resources/:id", c.resource.Delete)
		}
	}
}
