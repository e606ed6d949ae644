package main

import (
	"context"
	"log"
	"os"

	"github.com/ChainSafe/rawasm/cmd"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()
	app.Name = os.Args[0]
	app.Usage = "Fixed-format MIPS subset assembler"
	app.Description = "Assembles R, I, J and memory-form instructions into a v3.0 raw memory image"
	app.Commands = []*cli.Command{
		cmd.AssembleCommand,
		cmd.DisassembleCommand,
	}
	err := app.RunContext(context.Background(), os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
