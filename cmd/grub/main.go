package main

import (
	"context"
	"os"
	"os/signal"

	"go.followtheprocess.codes/grub/internal/cmd"
	"go.followtheprocess.codes/msg"
)

func main() {
	if err := run(); err != nil {
		msg.Error("%s", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	app, err := cmd.Build()
	if err != nil {
		return err
	}

	return app.Execute(ctx)
}
