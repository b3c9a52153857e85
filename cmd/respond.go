package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
	"github.com/terassyi/inarpd/pkg/inarpd"
	"github.com/terassyi/inarpd/pkg/interfaces"
)

type RespondCommand struct {
	Debug bool
}

func (r *RespondCommand) Name() string {
	return "inarpd"
}

func (r *RespondCommand) Synopsis() string {
	return "answer Inverse ARP requests"
}

func (r *RespondCommand) Usage() string {
	return fmt.Sprintf("Usage: %s <interface>\n", r.Name())
}

func (r *RespondCommand) SetFlags(f *flag.FlagSet) {
	// nop
}

func (r *RespondCommand) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 {
		fmt.Fprint(os.Stderr, r.Usage())
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)
	if err := interfaces.ValidateName(name); err != nil {
		logrus.Errorf("Interface name '%s' is invalid", name)
		return subcommands.ExitFailure
	}
	responder, iface, err := inarpd.Init(name, r.Debug)
	if err != nil {
		logrus.Errorf("failed to open %s: %v", name, err)
		return subcommands.ExitFailure
	}
	defer iface.Close()

	if err := responder.Handle(); err != nil {
		logrus.Error(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
