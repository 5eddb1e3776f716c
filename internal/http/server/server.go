package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"linkgate/internal/config"
	"linkgate/internal/domain/models"
	gateshow "linkgate/internal/http/handlers/gate/show"
	gatesubmit "linkgate/internal/http/handlers/gate/submit"
	linkcreate "linkgate/internal/http/handlers/link/create"
	linkdel "linkgate/internal/http/handlers/link/del"
	linklist "linkgate/internal/http/handlers/link/list"
	authmw "linkgate/internal/http/handlers/middlewares/auth"
	"linkgate/internal/http/handlers/middlewares/compress"
	loggermw "linkgate/internal/http/handlers/middlewares/logger"
	sublist "linkgate/internal/http/handlers/submission/list"
	"linkgate/internal/http/handlers/system/getping"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type Links interface {
	Create(ctx context.Context, ownerID int64, destination, label string) (models.Link, error)
	Resolve(ctx context.Context, code string) (models.Link, error)
	GetByOwner(ctx context.Context, ownerID int64) ([]models.Link, error)
	Delete(ctx context.Context, ownerID int64, code string) error
	PingStorage(ctx context.Context) error
}

type Recorder interface {
	Record(ctx context.Context, code string, fields []models.Field) (models.Submission, error)
}

type Console interface {
	ListSubmissions(ctx context.Context, ownerID int64, codeFilter string) ([]models.SubmissionView, error)
}

type Authentication interface {
	Register(ctx context.Context) (models.Operator, string, time.Time, error)
	ValidateAndGetOperator(ctx context.Context, jwtToken string) (models.Operator, error)
}

type Server struct {
	httpServer  *http.Server
	router      *mux.Router
	log         *zerolog.Logger
	linkService Links
	recorder    Recorder
	console     Console
	authService Authentication
	cfg         config.Config
}

func NewServer(log *zerolog.Logger, cfg config.Config, links Links, recorder Recorder, console Console, authSvc Authentication) (*Server, error) {
	if cfg.ServerAddress == "" {
		return nil, errors.New("server address cannot be empty")
	}
	if log == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if links == nil || recorder == nil || console == nil || authSvc == nil {
		return nil, errors.New("services cannot be nil")
	}

	s := &Server{
		router:      mux.NewRouter(),
		cfg:         cfg,
		log:         log,
		linkService: links,
		recorder:    recorder,
		console:     console,
		authService: authSvc,
	}

	s.httpServer = &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           s.router,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.Use(loggermw.MiddlewareLogging(s.log))
	s.router.Use(compress.MiddlewareCompressing())

	// Public routes: резолв и захват, кук здесь нет
	s.router.HandleFunc("/ping", getping.HandlerPing(s.linkService)).Methods("GET")
	s.router.HandleFunc("/{code:[0-9A-Za-z]+}", gateshow.HandlerGateShow(s.linkService)).Methods("GET")
	s.router.HandleFunc("/{code:[0-9A-Za-z]+}", gatesubmit.HandlerGateSubmit(s.linkService, s.recorder)).Methods("POST")

	// Console routes (cookie auth)
	apiRouter := s.router.PathPrefix("/api").Subrouter()
	apiRouter.Use(authmw.MiddlewareAuth(s.authService))

	apiRouter.HandleFunc("/links", linkcreate.HandlerLinkCreate(s.linkService, s.cfg.BaseURL)).Methods("POST")
	apiRouter.HandleFunc("/user/links", linklist.HandlerLinkList(s.linkService, s.cfg.BaseURL)).Methods("GET")
	apiRouter.HandleFunc("/user/links/{code}", linkdel.HandlerLinkDelete(s.linkService)).Methods("DELETE")
	apiRouter.HandleFunc("/user/submissions", sublist.HandlerSubmissionList(s.console)).Methods("GET")
}

func (s *Server) Start(ctx context.Context) error {
	s.log.Info().Str("address", s.cfg.ServerAddress).Msg("Starting server")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
