package router

import (
	"errors"
	"net/http"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"devconnector/docs"
	"devconnector/internal/config"
	apperrors "devconnector/internal/errors"
	"devconnector/internal/handler"
	"devconnector/internal/middleware"
)

// Handlers groups the HTTP handlers mounted under /api.
type Handlers struct {
	Users    *handler.UserHandler
	Auth     *handler.AuthHandler
	Profiles *handler.ProfileHandler
	Posts    *handler.PostHandler
}

// Register wires routes and middleware. requireAuth guards private routes.
func Register(e *echo.Echo, cfg *config.Config, log *zap.Logger, h Handlers, requireAuth echo.MiddlewareFunc) {
	e.HideBanner = true
	e.Use(echomw.RequestID())
	e.Use(middleware.Metrics(cfg.ServiceName))
	e.Use(middleware.RequestLogger(log))
	e.Use(echomw.Recover())

	e.Validator = NewValidator()

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	api.POST("/users", h.Users.Register)

	api.GET("/auth", h.Auth.Me, requireAuth)
	api.POST("/auth", h.Auth.Login)
	api.POST("/auth/logout", h.Auth.Logout, requireAuth)

	profile := api.Group("/profile")
	profile.GET("", h.Profiles.List)
	profile.GET("/me", h.Profiles.Me, requireAuth)
	profile.POST("", h.Profiles.Upsert, requireAuth)
	profile.DELETE("", h.Profiles.Delete, requireAuth)
	profile.GET("/user/:user_id", h.Profiles.ByUserID)
	profile.PUT("/experience", h.Profiles.AddExperience, requireAuth)
	profile.DELETE("/experience/:exp_id", h.Profiles.DeleteExperience, requireAuth)
	profile.PUT("/education", h.Profiles.AddEducation, requireAuth)
	profile.DELETE("/education/:edu_id", h.Profiles.DeleteEducation, requireAuth)
	profile.GET("/github/:username", h.Profiles.Github)

	posts := api.Group("/posts", requireAuth)
	posts.POST("", h.Posts.Create)
	posts.GET("", h.Posts.List)
	posts.GET("/:id", h.Posts.Get)
	posts.DELETE("/:id", h.Posts.Delete)
	posts.PUT("/like/:id", h.Posts.Like)
	posts.PUT("/unlike/:id", h.Posts.Unlike)
	posts.POST("/comment/:id", h.Posts.Comment)
	posts.DELETE("/comment/:id/:comment_id", h.Posts.DeleteComment)

	if cfg.StaticDir != "" {
		if _, err := os.Stat(cfg.StaticDir); err != nil {
			log.Warn("static dir unavailable, SPA not served", zap.String("dir", cfg.StaticDir), zap.Error(err))
			return
		}
		e.Use(echomw.StaticWithConfig(echomw.StaticConfig{
			Root:  cfg.StaticDir,
			HTML5: true,
			Skipper: func(c echo.Context) bool {
				p := c.Request().URL.Path
				return strings.HasPrefix(p, "/api") || strings.HasPrefix(p, "/swagger") ||
					p == "/metrics" || p == "/healthz"
			},
		}))
	}
}

// CustomValidator wraps validator for Echo. Failures are reported as a list of
// field errors carrying the message from each field's `msg` tag, or from
// `msg_<rule>` when the failing rule has its own message.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator builds a validator that names fields by their JSON key.
func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	t := reflect.Indirect(reflect.ValueOf(i)).Type()
	fields := make([]apperrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg := fe.Error()
		if f, ok := t.FieldByName(fe.StructField()); ok {
			if m := f.Tag.Get("msg_" + fe.Tag()); m != "" {
				msg = m
			} else if m := f.Tag.Get("msg"); m != "" {
				msg = m
			}
		}
		fields = append(fields, apperrors.FieldError{Msg: msg, Param: fe.Field(), Location: "body"})
	}
	return &apperrors.ValidationError{Fields: fields}
}
