package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"course-marketplace-api/internal/authz"
	"course-marketplace-api/internal/client"
	"course-marketplace-api/internal/handler"
	"course-marketplace-api/internal/metrics"
	"course-marketplace-api/internal/middleware"
	"course-marketplace-api/internal/repository"
	"course-marketplace-api/internal/service"
)

// Config holds router configuration
type Config struct {
	DB        *gorm.DB
	Logger    *zap.Logger
	JWTSecret string
	JWTIssuer string
	BasePath  string
	Metrics   *metrics.Metrics
	// Gatherer backs the /metrics endpoint; defaults to the global registry
	Gatherer prometheus.Gatherer
	// Media is the media provider client; nil disables readiness checks and upload tokens
	Media         client.MediaClient
	Redis         *redis.Client
	MediaCacheTTL time.Duration
	CORSOrigins   []string
}

// Setup sets up the router with all routes
func Setup(cfg Config) *gin.Engine {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Gatherer == nil {
		cfg.Gatherer = prometheus.DefaultGatherer
	}
	if err := handler.RegisterValidators(); err != nil {
		cfg.Logger.Error("Failed to register request validators", zap.Error(err))
	}

	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.CORS(cfg.CORSOrigins))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	metricsHandler := gin.WrapH(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	r.GET("/metrics", metricsHandler)
	r.GET("/health", health)
	r.GET("/ready", ready(cfg.DB))

	repos := repository.NewRepositories(cfg.DB)
	uow := repository.NewUnitOfWork(cfg.DB)

	var checker client.MediaChecker
	var tokens service.UploadTokenIssuer
	if cfg.Media != nil {
		var cache client.ReadinessCache
		if cfg.Redis != nil {
			cache = client.NewRedisReadinessCache(cfg.Redis, cfg.MediaCacheTTL)
		}
		checker = client.NewCachedMediaChecker(cfg.Media, cache, cfg.Logger)
		tokens = cfg.Media
	}

	// Initialize services
	courseService := service.NewCourseService(repos, uow, checker, cfg.Metrics, cfg.Logger)
	videoService := service.NewVideoService(repos, uow, checker, tokens, cfg.Metrics, cfg.Logger)
	skillService := service.NewSkillService(repos, uow, cfg.Logger)
	reviewService := service.NewReviewService(repos, cfg.Logger)
	paymentService := service.NewPaymentService(repos, uow, cfg.Metrics, cfg.Logger)
	userService := service.NewUserService(repos, uow, cfg.Logger)
	roleService := service.NewRoleService(repos, cfg.Logger)

	// Initialize handlers
	results := handler.NewResultWriter(cfg.Logger)
	courseHandler := handler.NewCourseHandler(courseService, results)
	videoHandler := handler.NewVideoHandler(videoService, results)
	skillHandler := handler.NewSkillHandler(skillService, results)
	reviewHandler := handler.NewReviewHandler(reviewService, results)
	paymentHandler := handler.NewPaymentHandler(paymentService, results)
	userHandler := handler.NewUserHandler(userService, results)
	roleHandler := handler.NewRoleHandler(roleService, results)

	authorizer := authz.NewAuthorizer(map[authz.ResourceType]authz.OwnerResolver{
		authz.ResourceCourse: repos.Courses,
		authz.ResourceVideo:  repos.Videos,
		authz.ResourceReview: repos.Reviews,
		authz.ResourceUser:   repos.Users,
	})
	policy := func(p authz.Policy, param string) gin.HandlerFunc {
		return middleware.RequirePolicy(authorizer, p, param, cfg.Logger)
	}
	adminOnly := middleware.RequireRoles(authz.RoleAdmin)
	creatorOnly := middleware.RequireRoles(authz.RoleCreator)
	managers := middleware.RequireRoles(authz.RoleAdmin, authz.RoleCreator)

	api := r.Group(cfg.BasePath)
	if cfg.BasePath != "" && cfg.BasePath != "/" {
		api.GET("/metrics", metricsHandler)
		api.GET("/health", health)
	}

	// Catalog reads are public
	catalog := api.Group("")
	{
		catalog.GET("/courses/:courseId", courseHandler.GetCourse)
		catalog.GET("/courses/:courseId/paged", courseHandler.GetCourseWithPagedVideos)
		catalog.GET("/courses/:courseId/videos", videoHandler.GetVideosByCourse)
		catalog.GET("/courses/:courseId/reviews", reviewHandler.GetReviewsByCourse)
		catalog.GET("/videos/:videoId", videoHandler.GetVideo)
		catalog.GET("/videos/:videoId/reviews", reviewHandler.GetReviewsByVideo)
		catalog.GET("/skills", skillHandler.ListSkills)
		catalog.GET("/skills/:skillId", skillHandler.GetSkill)
		catalog.GET("/skills/:skillId/courses", courseHandler.GetCoursesBySkill)
		catalog.GET("/users/:userId/courses", courseHandler.GetCoursesByCreator)
		catalog.GET("/users/:userId/skills", skillHandler.GetCreatorSkills)
	}

	var jwtOpts []jwt.ParserOption
	if cfg.JWTIssuer != "" {
		jwtOpts = append(jwtOpts, jwt.WithIssuer(cfg.JWTIssuer))
	}
	authed := api.Group("", middleware.Auth(cfg.JWTSecret, repos.Users, cfg.Logger, jwtOpts...))

	courses := authed.Group("/courses")
	{
		manageCourse := []gin.HandlerFunc{managers, policy(authz.CanManageCourses, "courseId")}

		courses.POST("", creatorOnly, courseHandler.CreateCourse)
		courses.PUT("/:courseId", append(manageCourse, courseHandler.UpdateCourse)...)
		courses.DELETE("/:courseId", append(manageCourse, courseHandler.DeleteCourse)...)
		courses.PATCH("/:courseId/paid", append(manageCourse, courseHandler.MakeCoursePaid)...)
		courses.PATCH("/:courseId/free", append(manageCourse, courseHandler.MakeCourseFree)...)
		courses.PATCH("/:courseId/private", append(manageCourse, courseHandler.MakeCoursePrivate)...)
		courses.PATCH("/:courseId/public", append(manageCourse, courseHandler.MakeCoursePublic)...)
		courses.DELETE("/:courseId/hard", adminOnly, courseHandler.HardDeleteCourse)
		courses.POST("/:courseId/videos", creatorOnly, policy(authz.CanManageCourses, "courseId"), videoHandler.CreateVideo)
	}

	videos := authed.Group("/videos")
	{
		manageVideo := []gin.HandlerFunc{managers, policy(authz.CanManageVideos, "videoId")}

		videos.POST("/upload-token", creatorOnly, videoHandler.GenerateUploadToken)
		videos.PUT("/:videoId", append(manageVideo, videoHandler.UpdateVideo)...)
		videos.DELETE("/:videoId", append(manageVideo, videoHandler.SoftDeleteVideo)...)
		videos.PATCH("/:videoId/paid", append(manageVideo, videoHandler.MakeVideoPaid)...)
		videos.PATCH("/:videoId/free", append(manageVideo, videoHandler.MakeVideoFree)...)
		videos.PATCH("/:videoId/private", append(manageVideo, videoHandler.MakeVideoPrivate)...)
		videos.PATCH("/:videoId/public", append(manageVideo, videoHandler.MakeVideoPublic)...)
		videos.DELETE("/:videoId/hard", adminOnly, videoHandler.DeleteVideo)
	}

	reviews := authed.Group("/reviews")
	{
		reviews.POST("", reviewHandler.CreateReview)
		reviews.PUT("/:reviewId", policy(authz.CanManageReviews, "reviewId"), reviewHandler.UpdateReview)
		reviews.DELETE("/:reviewId", policy(authz.CanManageReviews, "reviewId"), reviewHandler.SoftDeleteReview)
		reviews.DELETE("/:reviewId/hard", adminOnly, reviewHandler.DeleteReview)
	}

	skills := authed.Group("/skills", policy(authz.CanManageSkills, ""))
	{
		skills.POST("", skillHandler.CreateSkill)
		skills.PUT("/:skillId", skillHandler.UpdateSkill)
		skills.DELETE("/:skillId", skillHandler.DeleteSkill)
	}

	payments := authed.Group("/payments", adminOnly)
	{
		payments.POST("/pay", paymentHandler.PayPayments)
		payments.PUT("/:paymentId", paymentHandler.UpdatePayment)
		payments.DELETE("/:paymentId", paymentHandler.DeletePayment)
	}

	manageRoles := policy(authz.CanManageUsersRoles, "")
	users := authed.Group("/users")
	{
		users.POST("", manageRoles, userHandler.CreateUser)
		users.GET("", manageRoles, userHandler.ListUsers)
		users.GET("/:userId", policy(authz.CanSeeUserPrivateInformation, "userId"), userHandler.GetUser)
		users.PUT("/:userId", policy(authz.CanManageUser, "userId"), userHandler.UpdateProfile)
		users.DELETE("/:userId", manageRoles, userHandler.DeleteUser)
		users.PATCH("/:userId/activate", manageRoles, userHandler.ActivateUser)
		users.PATCH("/:userId/deactivate", manageRoles, userHandler.DeactivateUser)

		users.GET("/:userId/roles", policy(authz.CanSeeUserPrivateInformation, "userId"), userHandler.GetUserRoles)
		users.POST("/:userId/roles", manageRoles, userHandler.AssignRoles)
		users.PUT("/:userId/roles", manageRoles, userHandler.ReplaceRoles)
		users.DELETE("/:userId/roles/:roleName", manageRoles, userHandler.RemoveRole)

		users.POST("/:userId/skills", creatorOnly, policy(authz.CanManageUser, "userId"), skillHandler.AddCreatorSkills)

		users.GET("/:userId/payments", policy(authz.CanSeeUserPayments, "userId"), paymentHandler.GetUserPayments)
		users.POST("/:userId/payments", policy(authz.CanCreateNewPaymentsForUser, "userId"), paymentHandler.CreatePayment)
	}

	roles := authed.Group("/roles", manageRoles)
	{
		roles.POST("", roleHandler.CreateRole)
		roles.GET("", roleHandler.GetRoles)
		roles.GET("/:roleId", roleHandler.GetRole)
		roles.PUT("/:roleId", roleHandler.UpdateRole)
		roles.DELETE("/:roleId", roleHandler.DeleteRole)
	}

	return r
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "course-service"})
}

func ready(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "service": "course-service"})
			return
		}
		sqlDB, err := db.DB()
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "service": "course-service"})
			return
		}
		if err := sqlDB.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "service": "course-service"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "service": "course-service"})
	}
}
