package routes

import (
	"pharma_fieldops/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathReference   = "/reference"
	PathDashboard   = "/dashboard"
	PathVisits      = "/visits"
	PathEvaluations = "/evaluations"
	PathSamples     = "/samples"
	PathCollections = "/collections"
	PathOrders      = "/orders"
	PathPharmacy    = "/pharmacy"
	PathCalendar    = "/calendar"
)

func addReferenceRoutes(rg *gin.RouterGroup, h *handlers.ReferenceHandler) {
	ref := rg.Group(PathReference)
	{
		ref.GET("/locations", h.GetLocations)
		ref.GET("/brands", h.GetBrands)
		ref.GET("/classifications", h.GetClassifications)
		ref.GET("/specialties", h.GetSpecialties)
		ref.GET("/doctors", h.GetDoctors)
		ref.GET("/doctors/:name/products", h.GetDoctorProducts)
	}
}

func addDashboardRoutes(rg *gin.RouterGroup, h *handlers.DashboardHandler) {
	dashboard := rg.Group(PathDashboard)
	{
		dashboard.POST("", h.GetDashboard)
		dashboard.POST("/filters", h.ApplyFilter)
		dashboard.POST("/focus", h.Focus)
	}
}

func addVisitRoutes(rg *gin.RouterGroup, h *handlers.VisitHandler) {
	visits := rg.Group(PathVisits)
	{
		visits.GET("", h.ListVisits)
		visits.POST("", h.CreateVisit)
		visits.GET("/report", h.GetMonthlyReport)
	}
}

func addEvaluationRoutes(rg *gin.RouterGroup, h *handlers.EvaluationHandler) {
	evaluations := rg.Group(PathEvaluations)
	{
		evaluations.GET("", h.ListEvaluations)
		evaluations.POST("", h.SubmitEvaluation)
		evaluations.GET("/criteria", h.GetCriteria)
		evaluations.POST("/score", h.ScoreEvaluation)
	}
}

func addSampleRoutes(rg *gin.RouterGroup, h *handlers.SampleHandler) {
	samples := rg.Group(PathSamples)
	{
		samples.GET("", h.ListSamples)
		samples.POST("", h.CreateSample)
	}
}

func addCollectionRoutes(rg *gin.RouterGroup, h *handlers.CollectionHandler, oh *handlers.OrderHandler) {
	collections := rg.Group(PathCollections)
	{
		collections.GET("", h.ListCollections)
		collections.POST("", h.CreateCollection)
		collections.PATCH("/:id/approve", h.ApproveCollection)
		collections.PATCH("/:id/reject", h.RejectCollection)
		collections.PATCH("/groups/:group_id/approve", h.ApproveGroup)
		collections.PATCH("/groups/:group_id/reject", h.RejectGroup)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("", oh.ListOrders)
		orders.PATCH("/:id/approve", oh.ApproveOrder)
		orders.PATCH("/:id/reject", oh.RejectOrder)
	}
}

func addPharmacyRoutes(rg *gin.RouterGroup, h *handlers.PharmacyHandler) {
	pharmacy := rg.Group(PathPharmacy)
	{
		pharmacy.GET("/dashboard", h.GetDashboard)
		pharmacy.GET("/report", h.GetMonthlyReport)
	}
}

func addCalendarRoutes(rg *gin.RouterGroup, h *handlers.CalendarHandler) {
	cal := rg.Group(PathCalendar)
	{
		cal.GET("/holidays", h.ListHolidays)
		cal.POST("/holidays", h.CreateHoliday)
		cal.PUT("/holidays/:id", h.UpdateHoliday)
		cal.DELETE("/holidays/:id", h.DeleteHoliday)
		cal.GET("/settings", h.GetSettings)
		cal.PUT("/settings", h.UpdateSettings)
		cal.GET("/day", h.GetDay)
		cal.GET("/month", h.GetMonth)
	}
}
