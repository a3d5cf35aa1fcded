package main

import (
	"context"
	"fmt"
	"os"

	"github.com/DRSN-tech/movie-recommender/internal/cli"
)

func main() {
	if err := cli.New().Execute(context.Background()); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
