package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/evently/evently-api/docs"
	v1 "github.com/evently/evently-api/internal/api/handler/v1"
	"github.com/evently/evently-api/internal/api/middleware"
	"github.com/evently/evently-api/internal/config"
	"github.com/evently/evently-api/internal/repository"
	"github.com/evently/evently-api/internal/repository/dao"
	"github.com/evently/evently-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	eventHandler := s.initEventHandler(db)
	userHandler := s.initUserHandler(db)
	commentHandler := s.initCommentHandler(db)
	ratingHandler := s.initRatingHandler(db)
	s.MountHandlers(eventHandler, userHandler, commentHandler, ratingHandler)

	return s
}

func (s *Server) initEventHandler(db *gorm.DB) *v1.EventHandler {
	repo := repository.NewEventRepository(
		dao.NewEventDAO(db),
		dao.NewRegistrationDAO(db),
		dao.NewNotificationDAO(db),
	)
	svc := service.NewEventService(repo)
	handler := v1.NewEventHandler(svc)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	repo := repository.NewUserRepository(dao.NewUserDAO(db))
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) initCommentHandler(db *gorm.DB) *v1.CommentHandler {
	repo := repository.NewCommentRepository(dao.NewCommentDAO(db))
	svc := service.NewCommentService(repo)
	handler := v1.NewCommentHandler(svc)

	return handler
}

func (s *Server) initRatingHandler(db *gorm.DB) *v1.RatingHandler {
	repo := repository.NewRatingRepository(dao.NewRatingDAO(db))
	eventRepo := repository.NewEventRepository(
		dao.NewEventDAO(db),
		dao.NewRegistrationDAO(db),
		dao.NewNotificationDAO(db),
	)
	svc := service.NewRatingService(repo, eventRepo)
	handler := v1.NewRatingHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(eventHandler *v1.EventHandler, userHandler *v1.UserHandler, commentHandler *v1.CommentHandler, ratingHandler *v1.RatingHandler) {
	const basePath = "/api"

	events := s.Router.Group(basePath)
	{
		events.GET("/events", eventHandler.HandleListEvents)
		events.POST("/events", eventHandler.HandleCreateEvent)
		events.PUT("/events/:eventID", eventHandler.HandleUpdateEvent)
		events.DELETE("/events/:eventID", eventHandler.HandleDeleteEvent)
		events.POST("/events/register", eventHandler.HandleRegister)
		events.POST("/events/deregister/:eventID", eventHandler.HandleDeregister)
		events.GET("/events/notifications/:userID", eventHandler.HandleGetNotifications)

		events.POST("/events/comment", commentHandler.HandleAddComment)
		events.GET("/events/comments/:eventID", commentHandler.HandleGetComments)
		events.DELETE("/events/comments/:commentID", commentHandler.HandleDeleteComment)

		events.POST("/events/rate", ratingHandler.HandleRateEvent)
		events.GET("/events/:eventID/rating", ratingHandler.HandleGetEventRating)
	}

	users := s.Router.Group(basePath)
	{
		users.GET("/users", userHandler.HandleListUsers)
		users.POST("/users", userHandler.HandleCreateUser)
		users.GET("/users/:userID", userHandler.HandleGetUser)
		users.PUT("/users/:userID", userHandler.HandleUpdateUser)
		users.DELETE("/users/:userID", userHandler.HandleDeleteUser)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Evently API"
	docs.SwaggerInfo.Description = "Event management API: events, registrations, notifications, comments and ratings."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
