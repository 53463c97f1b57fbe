package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/sitemap"
)

func sitemapCmd() *cobra.Command {
	var out, baseURL string

	cmd := &cobra.Command{
		Use:   "sitemap",
		Short: "Generate the sitemap for the public routes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := sitemap.WriteFile(out, baseURL, sitemap.DefaultRoutes, time.Now()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d routes to %s\n", len(sitemap.DefaultRoutes), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "public/sitemap.xml", "output file")
	cmd.Flags().StringVar(&baseURL, "base-url", "https://zachkp.dev", "site origin")
	return cmd
}
