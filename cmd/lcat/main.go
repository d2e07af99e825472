package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/lcat/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override lcat config path (optional)")
	writeConfig := flag.Bool("write-config", false, "write the effective config to the config path and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: lcat [-config path] [-write-config] [package]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		return 2
	}

	if *writeConfig {
		path, err := app.WriteConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lcat: %v\n", err)
			return 1
		}
		fmt.Fprintf(os.Stdout, "wrote %s\n", path)
		return 0
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		Package:    flag.Arg(0),
	}
	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "lcat: %v\n", err)
		return 1
	}
	return 0
}
