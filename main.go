package main

import (
	"fmt"
	"os"

	"github.com/iamgading/dompet-digital-g-finance-sub000/cmd/chat"
	"github.com/iamgading/dompet-digital-g-finance-sub000/cmd/pockets"
	"github.com/iamgading/dompet-digital-g-finance-sub000/cmd/root"
)

func init() {
	root.Cmd.AddCommand(chat.Cmd)
	root.Cmd.AddCommand(pockets.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
