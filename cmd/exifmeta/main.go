// Command exifmeta prints camera metadata embedded in photos.
//
// Usage:
//
//	exifmeta show IMG_0001.jpg IMG_0002.jpg
//	exifmeta show --json *.jpg
//	exifmeta dump IMG_0001.jpg
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/simonhull/photometa/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
