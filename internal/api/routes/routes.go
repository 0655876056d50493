package routes

import (
	"shift-planner-backend/internal/api/handlers"
	"shift-planner-backend/internal/api/middleware"
	"shift-planner-backend/internal/config"
	"shift-planner-backend/internal/planner"
	"shift-planner-backend/internal/remote"
	"shift-planner-backend/internal/repository"
	"shift-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// App exposes the wired services to the process root, which runs the
// background retention pass against them.
type App struct {
	Shifts    *service.ShiftService
	Absences  *service.AbsenceService
	Employees *service.EmployeeService
}

// SetupRoutes wires repositories, services and handlers and configures
// all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, *App) {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	validate := validator.New()

	// Repositories (the local cache store)
	shiftRepo := repository.NewShiftRepository(db)
	absenceRepo := repository.NewAbsenceRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	weeklyRepo := repository.NewWeeklyShiftRepository(db)
	deptRepo := repository.NewDepartmentRepository(db)

	// Remote store client
	remoteClient := remote.NewClient(cfg)

	windows := planner.WindowPolicy{
		ManagerWeeksBack:   cfg.ManagerWeeksBack,
		ManagerWeeksAhead:  cfg.ManagerWeeksAhead,
		EmployeeWeeksBack:  cfg.EmployeeWeeksBack,
		EmployeeWeeksAhead: cfg.EmployeeWeeksAhead,
	}
	coveragePolicy := planner.CoveragePolicy{
		CompleteThreshold: cfg.CoverageCompleteThreshold,
		PartialFloor:      cfg.CoveragePartialFloor,
	}

	// Services (the reconciliation layer)
	shiftService := service.NewShiftService(
		shiftRepo, weeklyRepo, deptRepo, remoteClient.Shifts(),
		windows, cfg.SyncStaleness(), cfg.RetentionDays, validate,
	)
	absenceService := service.NewAbsenceService(absenceRepo, remoteClient.Absences(), cfg.SyncStaleness(), validate)
	employeeService := service.NewEmployeeService(employeeRepo, remoteClient.Employees(), cfg.SyncStaleness())
	coverageService := service.NewCoverageService(deptRepo, shiftRepo, coveragePolicy)

	// Handlers
	shiftHandler := handlers.NewShiftHandler(shiftService)
	absenceHandler := handlers.NewAbsenceHandler(absenceService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	coverageHandler := handlers.NewCoverageHandler(coverageService)
	healthHandler := handlers.NewHealthHandler(db)

	router.GET("/health", healthHandler.Health)

	v1 := router.Group("/api/v1")
	{
		shifts := v1.Group("/shifts")
		{
			shifts.GET("/week/:weekStart", shiftHandler.GetWeek)
			shifts.POST("/week/:weekStart/refresh", shiftHandler.RefreshWeek)
			shifts.POST("/week/:weekStart/sync", shiftHandler.PushWeek)
			shifts.POST("", shiftHandler.Save)
			shifts.POST("/immediate", shiftHandler.SaveImmediate)
			shifts.DELETE("/:id", shiftHandler.Delete)
			shifts.DELETE("/:id/immediate", shiftHandler.DeleteImmediate)
		}

		weeks := v1.Group("/weeks")
		{
			weeks.GET("/:weekStart", shiftHandler.GetWeeklyShift)
			weeks.POST("/:weekStart/publish", shiftHandler.PublishWeek)
		}

		absences := v1.Group("/absences")
		{
			absences.GET("", absenceHandler.List)
			absences.POST("", absenceHandler.Save)
			absences.POST("/sync", absenceHandler.Push)
			absences.DELETE("/:id", absenceHandler.Delete)
			absences.POST("/:id/approve", absenceHandler.Approve)
			absences.POST("/:id/reject", absenceHandler.Reject)
		}

		employees := v1.Group("/employees")
		{
			employees.GET("", employeeHandler.List)
			employees.POST("/refresh", employeeHandler.Refresh)
		}

		v1.GET("/coverage/:departmentId", coverageHandler.AnalyzeDay)
	}

	return router, &App{
		Shifts:    shiftService,
		Absences:  absenceService,
		Employees: employeeService,
	}
}
