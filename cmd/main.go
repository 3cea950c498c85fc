package main

import (
	"context"
	"fmt"
	"os"

	"github.com/goserg/sportscheduler/internal/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	return cli.NewRootCmd().ExecuteContext(context.Background())
}
