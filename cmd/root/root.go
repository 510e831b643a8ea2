// Package root contains the root command for the application.
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/config"
)

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// Cfg is the loaded configuration, available to subcommands after
	// PersistentPreRunE.
	Cfg *config.Config

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "dompet",
		Short: "Catat pemasukan, pengeluaran dan transfer antar pocket lewat chat.",
		Long: `dompet adalah asisten keuangan berbahasa Indonesia: tulis perintah bebas
seperti "aku dapat gaji 3jt400 ke Tabungan" dan bot akan melengkapi detail
yang kurang, minta konfirmasi, lalu mencatatnya. Transaksi yang baru
dicatat bisa dibatalkan sekali dengan token undo.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Gunakan --help untuk melihat perintah yang tersedia")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()
			cfg, err := config.Initialize()
			if err != nil {
				return err
			}
			Cfg = cfg

			level, err := logrus.ParseLevel(cfg.Log.Level)
			if err != nil {
				level = logrus.InfoLevel
			}
			Log.SetLevel(level)
			if cfg.Log.Format == "json" {
				Log.SetFormatter(&logrus.JSONFormatter{})
			} else {
				Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
			}
			return nil
		},
	}
)
