package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gophvault/internal/server"
	"github.com/dmitrijs2005/gophvault/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg)

	if err != nil {
		fmt.Fprintf(os.Stderr, "gophvault: %v\n", err)
		os.Exit(1)
	}

	app.Run(ctx)

}
