package main

import (
	"context"
	"fmt"
	"log"

	"notekeeper/internal/cli"
	"notekeeper/internal/cli/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	fmt.Println("notekeeper CLI (type 'help' for commands)")
	app.Run(ctx)

}
