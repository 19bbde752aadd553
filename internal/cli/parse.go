package cli

import (
	"errors"
	"io"

	"github.com/deisrc/deisrc/internal/branding"
	"github.com/spf13/pflag"
)

// Kind identifies what an invocation asks for.
type Kind int

const (
	KindList Kind = iota
	KindActivate
	KindCreate
	KindHelp
	KindUsage
	KindVersion
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindActivate:
		return "activate"
	case KindCreate:
		return "create"
	case KindHelp:
		return "help"
	case KindUsage:
		return "usage"
	case KindVersion:
		return "version"
	default:
		return "unknown"
	}
}

// Command is a parsed invocation.
type Command struct {
	Kind Kind
	// Name is the profile name for KindActivate and KindCreate.
	Name string
	// Option is the unrecognized flag behind KindUsage, as typed (e.g. "-x").
	Option string
	// Err is the flag parsing error behind KindUsage.
	Err error
}

// Parse interprets the arguments following the program name. The first
// positional argument is the profile name; any further ones are ignored.
func Parse(args []string) Command {
	flags := pflag.NewFlagSet(branding.CLIName(), pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.Usage = func() {}

	create := flags.BoolP("create", "c", false, "create a new profile")
	help := flags.BoolP("help", "h", false, "show help")
	showVersion := flags.Bool("version", false, "print version information")

	if err := flags.Parse(args); err != nil {
		return Command{Kind: KindUsage, Option: unknownOption(err), Err: err}
	}

	var name string
	if flags.NArg() > 0 {
		name = flags.Arg(0)
	}

	switch {
	case *help:
		return Command{Kind: KindHelp}
	case *showVersion:
		return Command{Kind: KindVersion}
	case *create:
		return Command{Kind: KindCreate, Name: name}
	case name != "":
		return Command{Kind: KindActivate, Name: name}
	default:
		return Command{Kind: KindList}
	}
}

// unknownOption returns the flag named by a parse error the way it was
// typed. Other parse errors are returned as their message.
func unknownOption(err error) string {
	var notExist *pflag.NotExistError
	if !errors.As(err, &notExist) {
		return err.Error()
	}
	if notExist.GetSpecifiedShortnames() != "" {
		return "-" + notExist.GetSpecifiedName()
	}
	return "--" + notExist.GetSpecifiedName()
}
