package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/deisrc/deisrc/internal/branding"
)

func usageText() string {
	name := branding.CLIName()
	client := strings.ToLower(branding.DisplayName())
	return fmt.Sprintf(`Usage:
  %[1]s                 list all profiles
  %[1]s [name]          change %[2]s profile (uses fuzzy matching)
  %[1]s -c [name]       create a new %[2]s profile called name
`, name, client)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, usageText())
}

func printHelp(w io.Writer) {
	name := branding.CLIName()
	display := branding.DisplayName()

	fmt.Fprintf(w, "%s\n\n  %s\n\n", name, branding.Description())
	fmt.Fprint(w, usageText())
	fmt.Fprintf(w, `
Example:

  # Creating a new %[2]s profile called "work":
  $ %[1]s -c work

  # Switch between "work" and "default"
  $ %[1]s work
  $ %[1]s default

Environment:
  %[3]s   profile store directory (default ~/%[4]s)
  %[5]s         client configuration path (default ~/%[6]s)
  %[7]s   set to true for debug logging
`, name, display,
		branding.EnvVar("STORE"), branding.StoreDir(),
		branding.EnvVar(""), branding.ClientConfig(),
		branding.EnvVar("DEBUG"))
}
