package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/terassyi/inarpd/cmd"
)

func main() {
	c := &cmd.RespondCommand{}
	f := flag.NewFlagSet(c.Name(), flag.ExitOnError)
	f.Usage = func() {
		fmt.Fprint(os.Stderr, c.Usage())
	}
	c.SetFlags(f)
	f.Parse(os.Args[1:])

	os.Exit(int(c.Execute(context.Background(), f)))
}
