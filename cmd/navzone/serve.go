package main

import (
	"context"

	cfg "navzone/common/config"
	"navzone/navserver/app"

	"github.com/spf13/cobra"
)

func ServeCmd() *cobra.Command {
	var configFile string
	app.APPVERSION = VERSION
	c := &cobra.Command{
		Use:   "serve",
		Short: "load zones and serve queries over http and nats",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.InitConfig(configFile)
			return app.Run(context.Background())
		},
	}
	c.Flags().StringVar(&configFile, "config", "application.toml", "config file")
	return c
}
