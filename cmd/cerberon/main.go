// Command cerberon runs graph and log analyses from the command line.
//
// Graph commands read a YAML or JSON description ({nodes: [...], edges: [...]})
// and print their result as YAML:
//
//	cerberon routes --graph net.yaml --start 1 --end 4
//	cerberon secure --graph net.yaml --start 1 --end 5
//	cerberon delays --graph net.yaml --source 1
//	cerberon tour   --graph net.yaml --nodes 1,2,3,4
//	cerberon logs rank access.log
//	cerberon logs slow access.log
//	cerberon search --target admin passwords.txt
//	cerberon alerts alert_tree.json
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
