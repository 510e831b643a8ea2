// Package pockets lists the configured pocket catalog.
package pockets

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iamgading/dompet-digital-g-finance-sub000/cmd/root"
	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/alias"
	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/container"
	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/logging"
	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/models"
)

var showAliases bool

// Cmd is the pockets subcommand.
var Cmd = &cobra.Command{
	Use:   "pockets",
	Short: "Tampilkan daftar pocket yang dikenali bot",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := container.New(root.Cfg, container.Deps{
			Logger: logging.NewLogrusAdapterFromLogger(root.Log),
		})
		if err != nil {
			return err
		}
		pockets, err := c.Pockets()
		if err != nil {
			return err
		}
		printPockets(cmd, pockets)
		return nil
	},
}

func init() {
	Cmd.Flags().BoolVar(&showAliases, "aliases", false, "tampilkan juga alias pencocokan tiap pocket")
}

func printPockets(cmd *cobra.Command, pockets []models.PocketOption) {
	out := cmd.OutOrStdout()
	for _, p := range pockets {
		fmt.Fprintf(out, "%-16s %s\n", p.ID, p.Name)
		if showAliases {
			for _, a := range alias.AliasesFor(p.Name) {
				fmt.Fprintf(out, "  - %s\n", a)
			}
		}
	}
}
