package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/hr-assistant/internal/screens"
	"github.com/spigell/hr-assistant/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HR assistant web interface and JSON API",
	Run: func(_ *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("addr", "a", "", "listen address (default :8080)")
	serveCmd.Flags().StringSlice("cors-origin", nil, "allowed CORS origin, may be repeated")

	viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	viper.BindPFlag("server.cors-origins", serveCmd.Flags().Lookup("cors-origin"))
}

func serve() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, config := bootstrap()

	if config.Server == nil {
		config.Server = &ServerConfig{}
	}

	logger.Info("starting the hr-assistant server", zap.String("version", version))

	assistant, err := newAssistant(ctx, config.AI, logger)
	if err != nil {
		logger.Fatal("building the gemini assistant", zap.Error(err))
	}

	metrics := web.NewMetrics()
	features := screens.New(assistant, screens.Deps{
		Logger:   logger,
		Recorder: metrics,
		Limits:   screenLimits(config.AI),
	})

	if !viper.GetBool("debug") {
		gin.SetMode(gin.ReleaseMode)
	}

	server, err := web.NewServer(features, metrics, web.Config{
		Addr:           config.Server.Addr,
		CORSOrigins:    config.Server.CORSOrigins,
		MaxUploadBytes: config.Server.MaxUploadBytes,
	}, logger)
	if err != nil {
		logger.Fatal("building the http server", zap.Error(err))
	}

	if err := server.Run(ctx); err != nil {
		logger.Fatal("serving http", zap.Error(err))
	}

	logger.Info("exiting", zap.String("reason", "shutdown complete"))
}
