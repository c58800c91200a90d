//go:build wireinject
// +build wireinject

package di

import (
	"Candl/pkg/config"
	"Candl/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,
		ProvideCacheStore,

		// Collaborator clients
		ProvideMarketData,
		ProvideSentimentAnalyzer,
		ProvideRatioProvider,

		// Use cases
		ProvideMarketReader,
		ProvideOutlookBuilder,
		ProvideQuoteWarmer,

		// Transport and application server
		ProvideHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
