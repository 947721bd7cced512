package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/examplan/examplan_backend/internal/config"
	"github.com/examplan/examplan_backend/internal/controllers"
	"github.com/examplan/examplan_backend/internal/exams"
	"github.com/examplan/examplan_backend/internal/middleware"
	"github.com/examplan/examplan_backend/internal/usv"
	"github.com/examplan/examplan_backend/internal/ws"
)

func Register(r *gin.Engine, db *gorm.DB, cfg *config.Config, logger *zap.Logger, hub *ws.Hub) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))

	expiresMins, err := time.ParseDuration(cfg.JWTExpiresIn + "m")
	if err != nil || expiresMins == 0 {
		expiresMins = 120 * time.Minute
	}

	service := &exams.Service{DB: db, Notifier: hub}

	authCtrl := &controllers.AuthController{DB: db, JWTSecret: cfg.JWTSecret, ExpiresIn: expiresMins}
	userCtrl := &controllers.UserController{DB: db, Service: service, Logger: logger}
	courseCtrl := &controllers.CourseController{Service: service, Logger: logger}
	examCtrl := &controllers.ExamController{Service: service, Logger: logger}
	eventCtrl := &controllers.EventController{Service: service, Logger: logger}
	syncCtrl := &controllers.SyncController{
		Syncer: &usv.Syncer{DB: db, Client: usv.NewClient(cfg.TimetableBaseURL), Logger: logger},
		Logger: logger,
	}

	// Public
	r.POST("/auth/login", authCtrl.Login)

	// Everything else requires a bearer token.
	authMW := middleware.AuthMiddleware(db, middleware.AuthConfig{JWTSecret: cfg.JWTSecret})
	api := r.Group("", authMW)
	{
		api.GET("/users/:userId", userCtrl.GetUser)
		api.GET("/users/professor/:userId", userCtrl.GetProfessorDetails)
		api.GET("/users/assistants/:courseId", userCtrl.GetCourseAssistants)

		api.GET("/course/group/:groupId", courseCtrl.CoursesByGroup)
		api.GET("/course/professor/:userId", courseCtrl.CoursesByProfessor)
		api.GET("/GetCoursersForExamByUserID", courseCtrl.AvailableCoursesForExam)

		api.GET("/examrequests", examCtrl.All)
		api.GET("/GetExamRequestsByGroupID/:groupId", examCtrl.ByGroup)
		api.GET("/GetExamRequestsByProfID/:profId", examCtrl.ByProfessor)
		api.GET("/GetAllRooms", examCtrl.Rooms)
		api.GET("/GetAssistentByCourse/:courseId", examCtrl.Assistants)
		api.GET("/GetLabHoldersByCourseID/:courseId", examCtrl.Assistants)

		api.POST("/event/exam-request", examCtrl.Create)
		api.GET("/events/student/:userId", eventCtrl.StudentEvents)
		api.GET("/event/exam-request/professor/:userId", eventCtrl.ProfessorEvents)
		api.GET("/event/exam-request/professor/:userId/course/:courseId", eventCtrl.ProfessorCourseEvents)

		// Approval and rejection are staff actions.
		staff := api.Group("", middleware.RequireRoles(controllers.RoleProfessor, controllers.RoleSecretary))
		{
			staff.PUT("/event/exam-request/:examId/approve", examCtrl.Approve)
			staff.PUT("/event/exam-request/:examId/reject", examCtrl.Reject)
			staff.PUT("/UpdateExamStatus/:examId", examCtrl.UpdateStatus)
		}

		admin := api.Group("/admin", middleware.RequireRoles(controllers.RoleSecretary, controllers.RoleAdmin))
		{
			adminCtrl := &controllers.AdminController{DB: db, Logger: logger}
			admin.POST("/users", adminCtrl.CreateUser)
			admin.POST("/sync/timetable", syncCtrl.Run)
		}

		api.GET("/ws/notifications", ws.NotificationsHandler(db, hub))
	}
}
