package main

import (
	"context"
	"fmt"
	"log"

	"github.com/labelproof/backend/config"
	httpDelivery "github.com/labelproof/backend/internal/delivery/http"
	"github.com/labelproof/backend/internal/domain"
	"github.com/labelproof/backend/internal/infrastructure/refcache"
	"github.com/labelproof/backend/internal/infrastructure/refstore"
	"github.com/labelproof/backend/internal/metrics"
	"github.com/labelproof/backend/internal/observability"
	"github.com/labelproof/backend/internal/usecase"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting LabelProof backend",
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
		zap.String("upstream", cfg.Upstream.BaseURL))

	m := metrics.New(prometheus.DefaultRegisterer)

	// Upstream reference store client
	var store domain.ReferenceSource = refstore.NewClient(
		cfg.Upstream.APIKey, cfg.Upstream.BaseURL, cfg.Upstream.RequestsPerHour, logger)

	// Reference caches: long-lived determination tables, short-lived
	// active document set
	pageSize := refcache.WithPageSize[domain.ReferenceEntry](cfg.Cache.PageSize)
	tableMetrics := refcache.WithMetrics[domain.ReferenceEntry](m)

	grasCache := refcache.NewLoader(domain.TableGRASSubstances, cfg.Cache.ReferenceTTL,
		tableFetcher(store, domain.TableGRASSubstances), logger, pageSize, tableMetrics)
	ndiCache := refcache.NewLoader(domain.TableNDINotifications, cfg.Cache.ReferenceTTL,
		tableFetcher(store, domain.TableNDINotifications), logger, pageSize, tableMetrics)
	grandfatherCache := refcache.NewLoader(domain.TableNDIGrandfathered, cfg.Cache.ReferenceTTL,
		tableFetcher(store, domain.TableNDIGrandfathered), logger, pageSize, tableMetrics)
	allergenCache := refcache.NewLoader(domain.TableAllergens, cfg.Cache.ReferenceTTL,
		tableFetcher(store, domain.TableAllergens), logger, pageSize, tableMetrics)
	documentCache := refcache.NewLoader(domain.TableRegulatoryDocs, cfg.Cache.DocumentTTL,
		store.FetchDocumentPage, logger,
		refcache.WithPageSize[domain.RegulatoryDocument](cfg.Cache.PageSize),
		refcache.WithMetrics[domain.RegulatoryDocument](m))

	registry := refcache.NewRegistry(grasCache, ndiCache, grandfatherCache, allergenCache, documentCache)

	// Matchers and domain checkers
	debug := cfg.Matching.EnableDebugLogging

	grasMatcher := usecase.NewTieredMatcher(usecase.MatchConfig{
		Domain: "GRAS", FuzzyStyle: usecase.FuzzyTokens, EnableDebugLogging: debug,
	}, logger)
	ndiMatcher := usecase.NewTieredMatcher(usecase.MatchConfig{
		Domain: "NDI", FuzzyStyle: usecase.FuzzyTokens, EnableDebugLogging: debug,
	}, logger)
	allergenMatcher := usecase.NewTieredMatcher(usecase.MatchConfig{
		Domain: "Allergen", FuzzyStyle: usecase.FuzzyDerivatives, EnableDebugLogging: debug,
	}, logger)

	grasChecker := usecase.NewGRASChecker(grasCache, grasMatcher, logger)
	ndiChecker := usecase.NewNDIChecker(ndiCache, grandfatherCache, ndiMatcher, logger)
	allergenChecker := usecase.NewAllergenChecker(allergenCache, allergenMatcher, logger)

	service := usecase.NewVerificationService(grasChecker, ndiChecker, allergenChecker, logger, m)

	// The document cache exists for the retrieval collaborator; expose it
	// through the shared admin surface and keep it warm at startup.
	documents := refcache.NewDocumentCache(documentCache)
	logger.Info("active regulatory documents primed",
		zap.Int("count", len(documents.ActiveDocuments(context.Background()))))

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(service, registry, logger)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler, logger)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info("server listening", zap.String("addr", addr))

	if err := router.Run(addr); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

// tableFetcher binds the reference source to one table.
func tableFetcher(store domain.ReferenceSource, table string) refcache.PageFunc[domain.ReferenceEntry] {
	return func(ctx context.Context, offset, limit int) ([]domain.ReferenceEntry, error) {
		return store.FetchPage(ctx, table, offset, limit)
	}
}
