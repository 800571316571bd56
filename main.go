package main

import (
	"context"

	"github.com/jjreview/jr/cmd"
)

func main() {
	ctx := context.Background()
	cmd.Execute(ctx)
}
