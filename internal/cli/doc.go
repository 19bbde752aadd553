// Package cli is the command-line front end. Parse turns argv into a Command
// (list, activate, create, help, usage or version), and the Cobra root command
// dispatches it to the store and activate packages. This package only handles
// argument interpretation, output formatting and exit codes.
package cli
