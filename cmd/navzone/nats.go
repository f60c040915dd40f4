package main

import (
	"context"

	"navzone/cmd/nats"
	cfg "navzone/common/config"
	"navzone/navserver/app"

	"github.com/flswld/halo/logger"
	"github.com/spf13/cobra"
)

func NatsCmd() *cobra.Command {
	var configFile string
	c := &cobra.Command{
		Use:   "nats",
		Short: "nats server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.InitConfig(configFile)
			app.InitLogger("nats")
			defer logger.CloseLogger()
			return nats.RunNatsServer(context.Background())
		},
	}
	c.Flags().StringVar(&configFile, "config", "application.toml", "config file")
	return c
}
