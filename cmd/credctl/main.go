package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/credkeeper/internal/client/cli"
	"github.com/dmitrijs2005/credkeeper/internal/client/config"
	"github.com/dmitrijs2005/credkeeper/internal/flagx"
)

func main() {

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "credctl: %v\n", err)
		os.Exit(1)
	}

	app := cli.NewApp(cfg)

	if err := app.Run(context.Background(), flagx.StripConfig(os.Args[1:])); err != nil {
		fmt.Fprintf(os.Stderr, "credctl: %v\n", err)
		if errors.Is(err, cli.ErrUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}

}
