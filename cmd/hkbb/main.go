// Command hkbb solves symmetric TSPLIB instances to optimality.
//
//	hkbb solve berlin52.tsp --tour berlin52.opt.tour --workers 4
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
