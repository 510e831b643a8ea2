// Package chat runs the interactive conversation loop on stdin/stdout.
package chat

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iamgading/dompet-digital-g-finance-sub000/cmd/root"
	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/boterror"
	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/container"
	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/logging"
)

var sessionID string

// Cmd is the chat subcommand.
var Cmd = &cobra.Command{
	Use:   "chat",
	Short: "Mulai percakapan pencatatan transaksi",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := container.New(root.Cfg, container.Deps{
			Logger: logging.NewLogrusAdapterFromLogger(root.Log),
		})
		if err != nil {
			return err
		}
		return run(cmd, c)
	},
}

func init() {
	Cmd.Flags().StringVarP(&sessionID, "session", "s", "local", "session id for this conversation")
}

func run(cmd *cobra.Command, c *container.Container) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, `Halo! Ceritakan transaksimu, misalnya "bayar makan 50rb dari Kebutuhan".`)
	fmt.Fprintln(out, `Ketik "undo <token>" untuk membatalkan, atau "keluar" untuk berhenti.`)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "keluar" || line == "exit" || line == "quit" {
			fmt.Fprintln(out, "Sampai jumpa!")
			return nil
		}

		if token, ok := strings.CutPrefix(line, "undo "); ok {
			handleUndo(cmd.Context(), out, c, strings.TrimSpace(token))
			continue
		}

		res, err := c.HandleTurn(cmd.Context(), sessionID, line)
		if err != nil {
			fmt.Fprintf(out, "Terjadi kesalahan: %v\n", err)
			continue
		}
		fmt.Fprintln(out, res.Message)
		if len(res.Options) > 0 {
			fmt.Fprintf(out, "Pilihan: %s\n", strings.Join(res.Options, ", "))
		}
	}
}

func handleUndo(ctx context.Context, out io.Writer, c *container.Container, token string) {
	err := c.Undo(ctx, token)
	var notFound *boterror.UndoNotFoundError
	switch {
	case err == nil:
		fmt.Fprintln(out, "Transaksi berhasil dibatalkan.")
	case errors.As(err, &notFound):
		fmt.Fprintln(out, "Token undo tidak ditemukan. Mungkin sudah dipakai atau salah ketik.")
	default:
		fmt.Fprintf(out, "Pembatalan gagal, coba lagi ya: %v\n", err)
	}
}
