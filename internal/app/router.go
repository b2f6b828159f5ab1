package app

import (
	"hr_console/docs"
	"hr_console/internal/config"
	"hr_console/internal/middleware"
	"hr_console/internal/model"
	"hr_console/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/console/auth/login", c.auth.Login)
	}

	console := router.Group("/api/console")
	console.Use(middleware.AuthMiddleware(cfg))
	{
		console.GET("/auth/me", c.auth.Me)

		console.GET("/modules", c.console.ListModules)
		console.PUT("/modules/:module", c.console.SetModule)
		console.POST("/modules/:module/toggle", c.console.ToggleModule)
		console.GET("/notices", c.console.ListNotices)
		console.GET("/audit", c.console.ListAudit)

		a.registerBusinessRoutes(console, c)

		selections := console.Group("/selections")
		{
			selections.GET("/:selectionId", c.assessments.GetSelection)
			selections.POST("/:selectionId/toggle", c.assessments.ToggleManager)
			selections.PUT("/:selectionId/primary", c.assessments.SetPrimary)
		}

		console.GET("/assessments/:assessmentId/report", c.assessments.Report)
	}
}

func (a *App) registerBusinessRoutes(rg *gin.RouterGroup, c *controllers) {
	businesses := rg.Group("/businesses")
	{
		businesses.GET("", c.business.List)
		businesses.GET("/:id", c.business.Details)

		// viewers may read but not change tenant data
		write := businesses.Group("")
		write.Use(middleware.RoleMiddleware(model.RoleAdmin))
		{
			write.POST("", c.business.Create)
			write.PUT("/:id", c.business.Update)
			write.DELETE("/:id", c.business.Delete)
			write.POST("/:id/logo", c.business.UploadLogo)
			write.POST("/:id/template", c.business.UploadTemplate)
		}

		businesses.GET("/:id/hr-users", c.people.ListHRUsers)
		write.POST("/:id/hr-users", c.people.CreateHRUser)
		write.PUT("/:id/hr-users/:userId", c.people.UpdateHRUser)
		write.DELETE("/:id/hr-users/:userId", c.people.DeleteHRUser)
		write.POST("/:id/hr-users/:userId/reset-password", c.people.ResetHRUserPassword)

		businesses.GET("/:id/managers", c.people.ListManagers)
		write.POST("/:id/managers", c.people.CreateManager)
		write.PUT("/:id/managers/:managerId", c.people.UpdateManager)
		write.DELETE("/:id/managers/:managerId", c.people.DeleteManager)

		businesses.GET("/:id/question-pairs", c.questionPairs.List)
		businesses.GET("/:id/attributes", c.questionPairs.Attributes)
		write.PUT("/:id/question-pairs/:pairId", c.questionPairs.Update)
		write.DELETE("/:id/question-pairs/:pairId", c.questionPairs.Delete)

		businesses.GET("/:id/assessments", c.assessments.List)
		write.POST("/:id/selections", c.assessments.StartSelection)
		write.POST("/:id/assessments", c.assessments.Create)
		write.PUT("/:id/assessments/:assessmentId", c.assessments.Update)
		write.DELETE("/:id/assessments/:assessmentId", c.assessments.Delete)
		write.POST("/:id/assessments/:assessmentId/resend", c.assessments.Resend)

		businesses.GET("/:id/benchmark/emails", c.benchmark.Emails)
		businesses.GET("/:id/benchmark/results", c.benchmark.Results)
		write.POST("/:id/benchmark/emails", c.benchmark.Add)
		write.POST("/:id/benchmark/emails/import", c.benchmark.Import)
		write.POST("/:id/benchmark/send", c.benchmark.Send)

		businesses.GET("/:id/email-templates/:type", c.benchmark.Template)
		businesses.POST("/:id/email-templates/:type/preview", c.benchmark.Preview)
		write.PUT("/:id/email-templates/:type", c.benchmark.SaveTemplate)

		businesses.GET("/:id/training", c.training.List)
		write.POST("/:id/training", c.training.Create)
		write.PUT("/:id/training/:materialId", c.training.Update)
		write.DELETE("/:id/training/:materialId", c.training.Delete)
		write.POST("/:id/training/:materialId/toggle", c.training.Toggle)
		write.POST("/:id/training/:materialId/move", c.training.Move)
		write.POST("/:id/training/:materialId/document", c.training.UploadDocument)
	}
}
