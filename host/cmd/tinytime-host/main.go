// Command tinytime-host inspects the generated timebase tables, simulates a
// device to check them end to end, and measures the drift of a real device
// from the sample frames it prints.
//
// Usage:
//
//	tinytime-host table    [-cpu hz] [-prescale n] [-budget ppm]
//	tinytime-host simulate [-cpu hz] [-prescale n] [-millis-ppm ppm] [-samples n]
//	tinytime-host monitor  [-device path] [-baud n] [-samples n]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

// errDrift reports a measurement outside the budget. It exits with status 1
// like any other failure but is not printed twice.
var errDrift = errors.New("drift outside budget")

type command struct {
	name  string
	usage string
	run   func(args []string, stdout, stderr io.Writer) error
}

var commands = []command{
	{"table", "print the generated scales and delay dividers", table},
	{"simulate", "run a simulated device and measure its drift", simulate},
	{"monitor", "measure the drift of a device on a serial port", monitor},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stderr)
		return 2
	}
	for _, c := range commands {
		if c.name != args[0] {
			continue
		}
		err := c.run(args[1:], stdout, stderr)
		switch {
		case err == nil:
			return 0
		case errors.Is(err, flag.ErrHelp):
			return 0
		case errors.Is(err, errDrift):
			return 1
		default:
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}
	fmt.Fprintf(stderr, "Unknown command: %s\n", args[0])
	printUsage(stderr)
	return 2
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: tinytime-host <command> [flags]")
	fmt.Fprintln(w, "\nAvailable commands:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-10s - %s\n", c.name, c.usage)
	}
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}
