package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/FitClubSystems/gym-manager/internal/audit"
	"github.com/FitClubSystems/gym-manager/internal/config"
	"github.com/FitClubSystems/gym-manager/internal/handlers"
	infraRepo "github.com/FitClubSystems/gym-manager/internal/infra/repository"
	"github.com/FitClubSystems/gym-manager/internal/middleware"
	"github.com/FitClubSystems/gym-manager/internal/models"
	ucBilling "github.com/FitClubSystems/gym-manager/internal/usecase/billing"
	ucEnrollment "github.com/FitClubSystems/gym-manager/internal/usecase/enrollment"
	ucGoal "github.com/FitClubSystems/gym-manager/internal/usecase/goal"
	ucSchedule "github.com/FitClubSystems/gym-manager/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🌍 GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)
	goalRepo := infraRepo.NewGoalGormRepository(db)
	billingRepo := infraRepo.NewBillingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — SCHEDULING
	// ======================================================
	addAvailabilityUC := ucSchedule.NewAddAvailability(
		scheduleRepo,
		auditDispatcher,
	)

	createClassUC := ucSchedule.NewCreateClass(
		scheduleRepo,
		auditDispatcher,
	)

	cancelScheduleUC := ucSchedule.NewCancelSchedule(
		scheduleRepo,
		auditDispatcher,
	)

	listTrainerScheduleUC := ucSchedule.NewListTrainerSchedule(scheduleRepo)
	listSessionsUC := ucSchedule.NewListUpcomingSessions(scheduleRepo)

	// ======================================================
	// 🧠 USE CASES — ENROLLMENT
	// ======================================================
	enrollUC := ucEnrollment.NewEnroll(scheduleRepo, auditDispatcher)
	cancelEnrollmentUC := ucEnrollment.NewCancel(scheduleRepo, auditDispatcher)
	markAttendanceUC := ucEnrollment.NewMarkAttendance(scheduleRepo, auditDispatcher)

	// ======================================================
	// 🧠 USE CASES — GOALS & METRICS
	// ======================================================
	setGoalUC := ucGoal.NewSetGoal(goalRepo, auditDispatcher)
	progressUC := ucGoal.NewProgress(goalRepo)
	logMetricUC := ucGoal.NewLogMetric(goalRepo, auditDispatcher)
	metricHistoryUC := ucGoal.NewMetricHistory(goalRepo)

	// ======================================================
	// 🧠 USE CASES — BILLING
	// ======================================================
	createBillUC := ucBilling.NewCreateBill(billingRepo, auditDispatcher)
	addItemUC := ucBilling.NewAddItem(billingRepo, auditDispatcher)
	markPaidUC := ucBilling.NewMarkPaid(billingRepo, auditDispatcher)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	usersHandler := handlers.NewUsersHandler(db, auditDispatcher)
	trainerHandler := handlers.NewTrainerHandler(db)

	scheduleHandler := handlers.NewScheduleHandler(
		cfg,
		scheduleRepo,
		addAvailabilityUC,
		createClassUC,
		cancelScheduleUC,
		listTrainerScheduleUC,
		markAttendanceUC,
	)

	sessionHandler := handlers.NewSessionHandler(
		cfg,
		scheduleRepo,
		listSessionsUC,
		enrollUC,
		cancelEnrollmentUC,
	)

	metricHandler := handlers.NewMetricHandler(db, logMetricUC, metricHistoryUC)
	goalHandler := handlers.NewGoalHandler(setGoalUC, progressUC)
	dashboardHandler := handlers.NewDashboardHandler(db, cfg, scheduleRepo)

	billingHandler := handlers.NewBillingHandler(
		billingRepo,
		createBillUC,
		addItemUC,
		markPaidUC,
	)

	equipmentHandler := handlers.NewEquipmentHandler(db, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateProfile)
			secured.PATCH("/me/password", meHandler.ChangePassword)

			secured.GET("/trainers", usersHandler.ListTrainers)
			secured.GET("/sessions", sessionHandler.Browse)
			secured.GET("/services", billingHandler.ListServices)
			secured.GET("/equipment", equipmentHandler.List)

			// ------------------------------
			// MEMBER
			// ------------------------------
			member := secured.Group("/me")
			member.Use(middleware.RequireRole(models.RoleMember))
			{
				member.GET("/dashboard", dashboardHandler.Member)

				member.POST("/sessions/:id/enroll", sessionHandler.Enroll)
				member.GET("/enrollments", sessionHandler.MyEnrollments)
				member.DELETE("/enrollments/:id", sessionHandler.CancelEnrollment)

				member.GET("/metric-types", metricHandler.ListTypes)
				member.POST("/metrics", metricHandler.Log)
				member.GET("/metrics/history", metricHandler.History)

				member.PUT("/goals", goalHandler.Set)
				member.GET("/goals", goalHandler.ListProgress)
				member.GET("/goals/:id", goalHandler.GetProgress)

				member.GET("/bills", billingHandler.MyBills)
			}

			// ------------------------------
			// TRAINER
			// ------------------------------
			trainer := secured.Group("/trainer")
			trainer.Use(middleware.RequireRole(models.RoleTrainer, models.RoleAdmin))
			{
				trainer.GET("/schedule", scheduleHandler.MySchedule)
				trainer.POST("/availability", scheduleHandler.AddAvailability)
				trainer.POST("/classes", scheduleHandler.CreateClass)
				trainer.DELETE("/schedules/:id", scheduleHandler.Cancel)
				trainer.PATCH("/enrollments/:id/attendance", scheduleHandler.MarkAttendance)

				trainer.GET("/members", trainerHandler.MyMembers)
			}

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/users", usersHandler.List)
				admin.POST("/users", usersHandler.CreateStaff)

				admin.POST("/bills", billingHandler.Create)
				admin.POST("/bills/:id/items", billingHandler.AddItem)
				admin.PATCH("/bills/:id/pay", billingHandler.MarkPaid)
				admin.GET("/bills/unpaid", billingHandler.ListUnpaid)

				admin.GET("/equipment/statuses", equipmentHandler.ListStatuses)
				admin.PATCH("/equipment/:id/status", equipmentHandler.UpdateStatus)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
