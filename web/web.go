// Package web provides the fzscripts HTTP server: routing, session store,
// middleware and background maintenance jobs.
package web

import (
	"context"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/fzscripts/fzscripts/config"
	"github.com/fzscripts/fzscripts/database"
	"github.com/fzscripts/fzscripts/logger"
	"github.com/fzscripts/fzscripts/util/common"
	"github.com/fzscripts/fzscripts/util/random"
	"github.com/fzscripts/fzscripts/web/controller"
	"github.com/fzscripts/fzscripts/web/job"
	"github.com/fzscripts/fzscripts/web/middleware"
	"github.com/fzscripts/fzscripts/web/session"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

const sessionCookieName = "fzscripts"

// Server is the fzscripts web server with its controllers and scheduled jobs.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	auth    *controller.AuthController
	scripts *controller.ScriptController
	users   *controller.UserController

	cron *cron.Cron

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a new web server instance with a cancellable context.
func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{ctx: ctx, cancel: cancel}
}

// initRouter initializes Gin, registers middleware, the session store and the
// API controllers, and returns the configured engine.
func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()

	secret := config.GetSessionSecret()
	if secret == "" {
		// sessions won't survive a restart without a configured secret
		secret = random.Seq(32)
	}

	// Sessions live in the relational store; the second argument enables the
	// store's periodic purge of expired rows.
	store := gormsessions.NewStore(database.GetDB(), true, []byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   session.SessionMaxAge,
		HttpOnly: true,
	})

	engine.Use(middleware.RequestId())
	engine.Use(sessions.Sessions(sessionCookieName, store))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	api := engine.Group("/api")
	s.auth = controller.NewAuthController(api)
	s.scripts = controller.NewScriptController(api)
	s.users = controller.NewUserController(api)

	engine.NoRoute(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	return engine, nil
}

// startTask schedules the maintenance jobs.
func (s *Server) startTask() {
	s.cron.AddJob("@daily", job.NewCheckpointJob())
	s.cron.AddJob("@hourly", job.NewStatsJob())
}

// Start initializes and starts the web server.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	s.cron = cron.New()
	s.cron.Start()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	listenAddr := net.JoinHostPort(config.GetListen(), strconv.Itoa(config.GetPort()))
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}
	logger.Info("Web server running HTTP on", listener.Addr())

	s.listener = listener
	s.httpServer = &http.Server{
		Handler:      engine,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		defer common.Recover("web server serve")
		_ = s.httpServer.Serve(listener)
	}()

	s.startTask()

	return nil
}

// Stop gracefully shuts down the web server and its jobs.
func (s *Server) Stop() error {
	s.cancel()
	if s.cron != nil {
		s.cron.Stop()
	}
	var err1, err2 error
	if s.httpServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err1 = s.httpServer.Shutdown(shutdownCtx)
	}
	if s.listener != nil {
		err2 = s.listener.Close()
	}
	return common.Combine(err1, err2)
}

// GetCtx returns the server's context.
func (s *Server) GetCtx() context.Context { return s.ctx }
