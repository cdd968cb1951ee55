package main

import (
	"fmt"
	"os"

	"github.com/agiangrant/menukit/cmd/menudemo/commands"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "run":
		err = commands.Run(args)
	case "init":
		err = commands.Init(args)
	case "config":
		err = commands.Config(args)
	case "version", "-v", "--version":
		fmt.Printf("menudemo version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`menudemo - menukit demo menu

Usage: menudemo <command> [options]

Commands:
  run       Open the demo menu in a window
  init      Write a default menukit.toml
  config    Print the effective configuration
  version   Print version information
  help      Show this help message

Examples:
  menudemo init                   Create menukit.toml in this directory
  menudemo run --debug            Run with debug logging of input routing
  menudemo config --config a.toml Show a.toml merged over the defaults

Configuration:
  Settings are read from menukit.toml in the working directory.
  Run 'menudemo init' to create one with default values.`)
}
