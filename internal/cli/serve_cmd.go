package cli

import (
	"github.com/alexanderramin/trailmap/internal/api"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the planner HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = app.ServerAddr
			}
			gin.SetMode(gin.ReleaseMode)
			return api.NewServer(app.Planner, app.Logger).Run(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from server.addr)")

	return cmd
}
