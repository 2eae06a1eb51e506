package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"github.com/kestrelgames/isolator/cmd/internal/analyze"
	"github.com/kestrelgames/isolator/cmd/internal/play"
	"github.com/kestrelgames/isolator/cmd/internal/selfplay"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&play.Command{}, "")
	subcommands.Register(&selfplay.Command{}, "")
	subcommands.Register(&analyze.Command{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
