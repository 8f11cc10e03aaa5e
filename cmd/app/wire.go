//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/faq-chatbot/internal/bootstrap"
	"github.com/yanqian/faq-chatbot/internal/infra/config"
	httpiface "github.com/yanqian/faq-chatbot/internal/interface/http"
	"github.com/yanqian/faq-chatbot/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideResourceClient,
		provideProvisioner,
		provideStopwords,
		provideFAQConfig,
		provideCatalogRepository,
		provideCatalog,
		provideFAQStore,
		provideFAQService,
		httpiface.NewChatbotHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
