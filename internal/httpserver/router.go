package httpserver

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"pawfinder/internal/assist"
	"pawfinder/internal/domain"
	"pawfinder/internal/feedback"
	"pawfinder/internal/orders"
	"pawfinder/internal/reconcile"
	"pawfinder/internal/router"
	"pawfinder/internal/session"
)

// The HTTP layer consumes narrow slices of the services it fronts.

type CatalogService interface {
	Listings() []domain.Listing
}

type CartService interface {
	Items() []domain.CartItem
	Add(item domain.CartItem) error
	Remove(listingID string)
	Clear()
}

type OrderService interface {
	List() []domain.Order
	Submit(ctx context.Context, in orders.SubmitInput) (domain.Order, <-chan reconcile.Outcome, error)
}

type FeedbackService interface {
	List() []domain.FeedbackEntry
	Add(sess *domain.Session, in feedback.AddInput) (domain.FeedbackEntry, error)
	Edit(sess *domain.Session, id string, in feedback.EditInput) error
	Delete(sess *domain.Session, id string) error
}

type HistoryService interface {
	Entries() []domain.HistoryEntry
	Append(breed, message string) (domain.HistoryEntry, error)
}

type AssistService interface {
	Chat(ctx context.Context, question string, forceOpenAI bool) (assist.ChatAnswer, error)
	Predict(ctx context.Context, filename string, image io.Reader) (assist.Prediction, error)
}

type SessionSource interface {
	Current() (session.State, *domain.Session)
}

type ViewResolver interface {
	Resolve(path string) router.View
}

type IdentityService interface {
	SignIn(ctx context.Context, email, password string) (*domain.Session, error)
	SignUp(ctx context.Context, email, password string, metadata map[string]any) (*domain.Session, error)
	SignOut(ctx context.Context) error
	UpdateProfile(ctx context.Context, metadata map[string]any) error
	DeleteAccount(ctx context.Context) error
}

// Deps carries every service the routes need.
type Deps struct {
	Catalog  CatalogService
	Cart     CartService
	Orders   OrderService
	Feedback FeedbackService
	History  HistoryService
	Assist   AssistService
	Sessions SessionSource
	Views    ViewResolver
	Identity IdentityService
}

func (d Deps) validate() error {
	switch {
	case d.Catalog == nil:
		return errors.New("httpserver: catalog service is required")
	case d.Cart == nil:
		return errors.New("httpserver: cart service is required")
	case d.Orders == nil:
		return errors.New("httpserver: order service is required")
	case d.Feedback == nil:
		return errors.New("httpserver: feedback service is required")
	case d.History == nil:
		return errors.New("httpserver: history service is required")
	case d.Assist == nil:
		return errors.New("httpserver: assist service is required")
	case d.Sessions == nil:
		return errors.New("httpserver: session source is required")
	case d.Views == nil:
		return errors.New("httpserver: view resolver is required")
	case d.Identity == nil:
		return errors.New("httpserver: identity service is required")
	}
	return nil
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, deps Deps, corsOrigins []string) (*gin.Engine, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}

	if gin.Mode() == gin.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	if len(corsOrigins) > 0 {
		cfg := cors.DefaultConfig()
		cfg.AllowOrigins = corsOrigins
		cfg.AllowCredentials = true
		engine.Use(cors.New(cfg))
	}

	engine.GET("/healthz", healthHandler)

	api := engine.Group("/api")
	api.GET("/view", viewHandler(deps.Views, deps.Sessions))

	api.GET("/listings", listingsHandler(deps.Catalog))

	api.GET("/cart", cartListHandler(deps.Cart))
	api.POST("/cart", cartAddHandler(deps.Cart))
	api.DELETE("/cart", cartClearHandler(deps.Cart))
	api.DELETE("/cart/:listingId", cartRemoveHandler(deps.Cart))

	api.GET("/orders", ordersListHandler(deps.Orders))
	api.POST("/orders", orderSubmitHandler(deps.Orders))

	api.GET("/feedback", feedbackListHandler(deps.Feedback))
	api.POST("/feedback", feedbackAddHandler(deps.Feedback, deps.Sessions))
	api.PUT("/feedback/:id", feedbackEditHandler(deps.Feedback, deps.Sessions))
	api.DELETE("/feedback/:id", feedbackDeleteHandler(deps.Feedback, deps.Sessions))

	api.GET("/history", historyListHandler(deps.History))
	api.POST("/history", historyAddHandler(deps.History))

	api.POST("/chat", chatHandler(deps.Assist))
	api.POST("/predict", predictHandler(deps.Assist))

	api.GET("/session", sessionHandler(deps.Sessions))
	api.POST("/session", signInHandler(deps.Identity))
	api.DELETE("/session", signOutHandler(deps.Identity))
	api.POST("/signup", signUpHandler(deps.Identity))
	api.PUT("/profile", profileUpdateHandler(deps.Identity))
	api.DELETE("/account", accountDeleteHandler(deps.Identity))

	return engine, nil
}

// writeError maps service sentinels onto HTTP statuses with the uniform
// {error} body shape.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalid):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotAuthor):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrUnsupported):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotConfigured):
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
