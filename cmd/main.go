// Package main is the entry point for the print-quote-service application.
//
// @title           Print Quote Service API
// @version         1.0.0
// @description     API for quoting and ordering custom 3D-printed parts.
//
//	Uploaded models are sliced to estimate material mass, priced against the
//	product catalog, and turned into draft listings when a quote is accepted.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/print-quote-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        Quotes
// @tag.description Quote computation for uploaded models
//
// @tag.name        Orders
// @tag.description Order creation from accepted quotes
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/print-quote-service/docs" // swagger docs

	"github.com/guttosm/print-quote-service/config"
	"github.com/guttosm/print-quote-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
