package cli

import "github.com/spf13/cobra"

func Execute() error {
	root := &cobra.Command{
		Use:          "portfolio",
		Short:        "Personal portfolio website",
		SilenceUsage: true,
	}

	root.AddCommand(serveCmd(), sitemapCmd())
	return root.Execute()
}
