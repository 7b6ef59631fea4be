package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/prasanthkarthik25305/alma-connect-spark/internal/cache"
	"github.com/prasanthkarthik25305/alma-connect-spark/internal/config"
	"github.com/prasanthkarthik25305/alma-connect-spark/internal/database"
	"github.com/prasanthkarthik25305/alma-connect-spark/internal/middleware"
	"github.com/prasanthkarthik25305/alma-connect-spark/internal/model"
	"github.com/prasanthkarthik25305/alma-connect-spark/internal/service"
	"github.com/prasanthkarthik25305/alma-connect-spark/web"
)

// HTTPServer is the Gin-based API server.
type HTTPServer struct {
	config *config.Config
	engine *gin.Engine
	server *http.Server

	authHandler       *AuthHandler
	messageHandler    *MessageHandler
	profileHandler    *ProfileHandler
	jobHandler        *JobHandler
	referralHandler   *ReferralHandler
	mentorshipHandler *MentorshipHandler
	approvalHandler   *ApprovalHandler
	ticketHandler     *TicketHandler
	settingHandler    *SettingHandler
	dashboardHandler  *DashboardHandler
	adminUserHandler  *AdminUserHandler
}

// NewHTTPServer wires services, handlers, middleware and routes.
func NewHTTPServer(cfg *config.Config) *HTTPServer {
	if cfg.Server.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	db := database.GetDB()

	var analyticsCache *cache.AnalyticsCache
	if cfg.Cache.Enabled {
		c, err := cache.NewAnalyticsCache(cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.DB,
			time.Duration(cfg.Cache.TTL)*time.Second)
		if err != nil {
			zap.L().Warn("redis cache unavailable, analytics will compute per request", zap.Error(err))
		} else {
			analyticsCache = c
		}
	}

	users := service.NewUserService(db)
	messaging := service.NewMessagingService(db)
	profiles := service.NewProfileService(db)
	jobs := service.NewJobService(db)
	referrals := service.NewReferralService(db)
	mentorship := service.NewMentorshipService(db)
	approvals := service.NewApprovalService(db)
	tickets := service.NewTicketService(db)
	settings := service.NewSettingService(db)
	analytics := service.NewAnalyticsService(db, analyticsCache, cfg.Analytics.TopSkills)

	s := &HTTPServer{
		config:            cfg,
		engine:            gin.New(),
		authHandler:       NewAuthHandler(users, cfg),
		messageHandler:    NewMessageHandler(messaging, users),
		profileHandler:    NewProfileHandler(profiles),
		jobHandler:        NewJobHandler(jobs),
		referralHandler:   NewReferralHandler(referrals),
		mentorshipHandler: NewMentorshipHandler(mentorship),
		approvalHandler:   NewApprovalHandler(approvals),
		ticketHandler:     NewTicketHandler(tickets),
		settingHandler:    NewSettingHandler(settings),
		dashboardHandler:  NewDashboardHandler(analytics),
		adminUserHandler:  NewAdminUserHandler(users),
	}

	s.registerMiddlewares()
	s.registerRoutes()

	return s
}

// registerMiddlewares installs the global middleware chain.
func (s *HTTPServer) registerMiddlewares() {
	s.engine.Use(gin.Recovery())
	s.engine.Use(middleware.RequestLog())
	s.engine.Use(middleware.CORS())
}

// registerRoutes declares the API route table.
func (s *HTTPServer) registerRoutes() {
	v1 := s.engine.Group("/api/v1")
	{
		v1.GET("/health", s.handleHealth)
		v1.GET("/version", handleVersion)

		auth := v1.Group("/auth")
		{
			auth.POST("/register", s.authHandler.Register)
			auth.POST("/login", s.authHandler.Login)
			auth.POST("/logout", s.authHandler.Logout)
		}

		// Everything below needs a valid token.
		authed := v1.Group("")
		authed.Use(middleware.Auth(s.config.Auth.JWTSecret))
		{
			authed.GET("/auth/userinfo", s.authHandler.GetUserInfo)
			authed.POST("/auth/password", s.authHandler.ChangePassword)
			authed.PUT("/users/theme", s.authHandler.SetTheme)

			messages := authed.Group("/messages")
			{
				messages.GET("/contacts", s.messageHandler.ListContacts)
				messages.GET("/conversations", s.messageHandler.ListConversations)
				messages.GET("/thread/:contactID", s.messageHandler.LoadThread)
				messages.POST("/thread/:contactID", s.messageHandler.Send)
				messages.POST("/thread/:contactID/read", s.messageHandler.MarkRead)
			}

			profiles := authed.Group("/profiles")
			{
				profiles.GET("/student", s.profileHandler.GetOwnStudent)
				profiles.PUT("/student", s.profileHandler.UpsertStudent)
				profiles.GET("/student/:userID", s.profileHandler.GetStudent)
				profiles.GET("/alumni", s.profileHandler.GetOwnAlumni)
				profiles.PUT("/alumni", s.profileHandler.UpsertAlumni)
				profiles.GET("/alumni/:userID", s.profileHandler.GetAlumni)
			}
			authed.GET("/mentors", s.profileHandler.ListMentors)

			jobs := authed.Group("/jobs")
			{
				jobs.GET("", s.jobHandler.List)
				jobs.POST("", middleware.RequireRole(model.RoleAlumni, model.RoleAdmin), s.jobHandler.Create)
				jobs.GET("/mine", s.jobHandler.ListMine)
				jobs.PUT("/:id/deactivate", s.jobHandler.Deactivate)
			}

			referrals := authed.Group("/referrals")
			{
				referrals.POST("", middleware.RequireRole(model.RoleStudent), s.referralHandler.Request)
				referrals.GET("/mine", s.referralHandler.ListMine)
				referrals.GET("/received", middleware.RequireRole(model.RoleAlumni, model.RoleAdmin), s.referralHandler.ListReceived)
				referrals.PUT("/:id", middleware.RequireRole(model.RoleAlumni, model.RoleAdmin), s.referralHandler.Respond)
			}

			mentorship := authed.Group("/mentorship")
			{
				mentorship.POST("", middleware.RequireRole(model.RoleStudent), s.mentorshipHandler.Request)
				mentorship.GET("/mine", s.mentorshipHandler.ListMine)
				mentorship.GET("/received", middleware.RequireRole(model.RoleAlumni), s.mentorshipHandler.ListReceived)
				mentorship.PUT("/:id", middleware.RequireRole(model.RoleAlumni), s.mentorshipHandler.Respond)
			}

			approvals := authed.Group("/approvals")
			{
				approvals.POST("", s.approvalHandler.Submit)
				approvals.GET("/mine", s.approvalHandler.ListMine)
			}

			tickets := authed.Group("/tickets")
			{
				tickets.POST("", s.ticketHandler.Create)
				tickets.GET("/mine", s.ticketHandler.ListMine)
			}

			admin := authed.Group("/admin")
			admin.Use(middleware.RequireRole(model.RoleAdmin))
			{
				admin.GET("/users", s.adminUserHandler.List)
				admin.PUT("/users/:id/enabled", s.adminUserHandler.SetEnabled)
				admin.GET("/requests", s.approvalHandler.List)
				admin.PUT("/requests/:id", s.approvalHandler.Review)
				admin.GET("/tickets", s.ticketHandler.ListAll)
				admin.PUT("/tickets/:id", s.ticketHandler.Update)
				admin.GET("/settings", s.settingHandler.List)
				admin.PUT("/settings/:key", s.settingHandler.Set)
				admin.GET("/overview", s.dashboardHandler.GetOverview)
				admin.GET("/analytics", s.dashboardHandler.GetAnalytics)
			}
		}
	}

	s.registerStatic()
}

// registerStatic serves the embedded SPA bundle for all non-API paths.
func (s *HTTPServer) registerStatic() {
	fsys, err := web.GetFileSystem()
	if err != nil {
		zap.L().Warn("embedded frontend unavailable", zap.Error(err))
		return
	}

	fileServer := http.FileServer(fsys)
	s.engine.NoRoute(func(c *gin.Context) {
		// API misses stay JSON 404s; everything else falls through to
		// the SPA, which handles client-side routing.
		if len(c.Request.URL.Path) >= 5 && c.Request.URL.Path[:5] == "/api/" {
			c.JSON(http.StatusNotFound, Response{Code: 404, Message: "not found"})
			return
		}
		fileServer.ServeHTTP(c.Writer, c.Request)
	})
}

// Start runs the HTTP server until it is shut down.
func (s *HTTPServer) Start() error {
	addr := fmt.Sprintf("0.0.0.0:%d", s.config.Server.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	zap.L().Info("starting HTTP server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully stops the HTTP server.
func (s *HTTPServer) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

// Engine exposes the router, mainly for tests.
func (s *HTTPServer) Engine() *gin.Engine {
	return s.engine
}

// Response is the unified response envelope.
type Response = model.Response

// success writes a 200 with data.
func success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Code:    200,
		Message: "success",
		Data:    data,
	})
}

// fail writes an error response with the given status.
func fail(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

// failErr maps service errors onto HTTP statuses.
func failErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrForbidden):
		fail(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrConflict):
		fail(c, http.StatusConflict, err.Error())
	default:
		zap.L().Error("internal error", zap.Error(err))
		fail(c, http.StatusInternalServerError, "internal error")
	}
}

// handleHealth is the liveness endpoint.
func (s *HTTPServer) handleHealth(c *gin.Context) {
	success(c, gin.H{"status": "healthy"})
}
