package server

import (
	"catalog/app/item"
	"catalog/internal/middleware"
	"catalog/pkg/envelope"
	"catalog/pkg/events"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

const (
	envelopeDefault = envelope.DefaultSuccessMessage

	MessageCreated = "Item created successfully"
	MessageUpdated = "Item updated successfully"
	MessageDeleted = "Item deleted successfully"
)

type Options struct {
	ServiceName        string
	RecentDefaultLimit int
	RecentMaxLimit     int
}

// Database is the storage the HTTP surface needs beyond item.Repository.
type Database interface {
	item.Repository
	HealthChecker
}

// New builds the fiber app with every route wired to its orchestration handler.
func New(db Database, publisher events.Publisher, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		IdleTimeout:  5 * time.Second,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		Concurrency:  256 * 1024,
		ErrorHandler: ErrorHandler,
	})

	app.Use(middleware.NewRequestLoggerMiddleware(zap.L()))
	app.Use(recover.New())

	broker, _ := publisher.(BrokerChecker)
	app.Get("/health", healthHandler(db, broker, opts.ServiceName))

	registerItemRoutes(app.Group("/api/items"), db, publisher, opts)

	return app
}

// registerItemRoutes is the route table. Literal paths precede /:id.
func registerItemRoutes(router fiber.Router, repository item.Repository, publisher events.Publisher, opts Options) {
	getItems := item.NewGetItemsHandler(repository)
	getItem := item.NewGetItemHandler(repository)
	createItem := item.NewCreateItemHandler(repository, publisher)
	updateItem := item.NewUpdateItemHandler(repository, publisher)
	deleteItem := item.NewDeleteItemHandler(repository, publisher)
	searchItems := item.NewSearchItemsHandler(repository)
	activeItems := item.NewGetActiveItemsHandler(repository)
	recentItems := item.NewGetRecentItemsHandler(repository, opts.RecentDefaultLimit, opts.RecentMaxLimit)
	itemStats := item.NewGetItemStatsHandler(repository)

	ok := fiber.StatusOK

	router.Get("/", handle[item.GetItemsRequest, []item.ItemDTO](getItems, ok, envelopeDefault))
	router.Post("/", handle[item.CreateItemRequest, *item.ItemDTO](createItem, fiber.StatusCreated, MessageCreated))
	router.Get("/search", handle[item.SearchItemsRequest, []item.ItemDTO](searchItems, ok, envelopeDefault))
	router.Get("/active", handle[item.GetActiveItemsRequest, []item.ItemDTO](activeItems, ok, envelopeDefault))
	router.Get("/recent", handle[item.GetRecentItemsRequest, []item.ItemDTO](recentItems, ok, envelopeDefault))
	router.Get("/stats", handle[item.GetItemStatsRequest, *item.GetItemStatsResponse](itemStats, ok, envelopeDefault))
	router.Get("/:id", handle[item.GetItemRequest, *item.ItemDTO](getItem, ok, envelopeDefault))
	router.Put("/:id", handle[item.UpdateItemRequest, *item.ItemDTO](updateItem, ok, MessageUpdated))
	router.Delete("/:id", handle[item.DeleteItemRequest, *item.DeleteItemResponse](deleteItem, ok, MessageDeleted))
}
