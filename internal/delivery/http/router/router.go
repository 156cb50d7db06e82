// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/azez-alhoot/fannifix-hub/internal/delivery/http/middleware"
	"github.com/azez-alhoot/fannifix-hub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler      *handler.CatalogHandler
	TechnicianHandler   *handler.TechnicianHandler
	ListingHandler      *handler.ListingHandler
	SeoHandler          *handler.SeoHandler
	SitemapHandler      *handler.SitemapHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler      *handler.CatalogHandler
	technicianHandler   *handler.TechnicianHandler
	listingHandler      *handler.ListingHandler
	seoHandler          *handler.SeoHandler
	sitemapHandler      *handler.SitemapHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:      params.CatalogHandler,
		technicianHandler:   params.TechnicianHandler,
		listingHandler:      params.ListingHandler,
		seoHandler:          params.SeoHandler,
		sitemapHandler:      params.SitemapHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Sitemap lives at the root, where crawlers expect it
	e.GET("/sitemap.xml", r.sitemapHandler.Sitemap)

	api := e.Group("/api")

	countryGroup := api.Group("/countries")
	{
		countryGroup.GET("", r.catalogHandler.ListCountries)
		countryGroup.GET("/:code", r.catalogHandler.GetCountry)
		countryGroup.GET("/:code/stats", r.catalogHandler.CountryStats)
		countryGroup.GET("/:code/areas", r.catalogHandler.ListAreas)
		countryGroup.GET("/:code/areas/:slug", r.catalogHandler.GetAreaBySlug)
	}

	serviceGroup := api.Group("/services")
	{
		serviceGroup.GET("", r.catalogHandler.ListServices)
		serviceGroup.GET("/:slug", r.catalogHandler.GetServiceBySlug)
	}

	technicianGroup := api.Group("/technicians")
	{
		technicianGroup.GET("", r.technicianHandler.Search)
		technicianGroup.GET("/featured", r.technicianHandler.Featured)
		technicianGroup.GET("/:id", r.technicianHandler.Profile)
		technicianGroup.GET("/:id/whatsapp-qr", r.technicianHandler.WhatsAppQR)
		technicianGroup.GET("/:id/listings", r.listingHandler.ByTechnician)
	}

	listingGroup := api.Group("/listings")
	{
		listingGroup.GET("/latest", r.listingHandler.Latest)
		listingGroup.GET("/:id", r.listingHandler.Get)
	}

	seoGroup := api.Group("/seo")
	{
		seoGroup.GET("/:code/meta", r.seoHandler.PageMeta)
		seoGroup.GET("/:code/faqs", r.seoHandler.FAQs)
		seoGroup.GET("/:code/pricing", r.seoHandler.Pricing)
		seoGroup.GET("/:code/hero", r.seoHandler.Hero)
		seoGroup.GET("/:code/cta", r.seoHandler.CTA)
	}
}
