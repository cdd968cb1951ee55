package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/agiangrant/menukit"
)

// Init implements the 'menudemo init' command
func Init(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	path := fs.String("config", menukit.DefaultConfigFile, "File to write")
	title := fs.String("title", "", "Window title")
	force := fs.Bool("force", false, "Overwrite an existing file")
	fs.Parse(args)

	if _, err := os.Stat(*path); err == nil && !*force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", *path)
	}

	cfg := menukit.DefaultConfig()
	if *title != "" {
		cfg.Window.Title = *title
	}
	if err := cfg.Save(*path); err != nil {
		return err
	}
	fmt.Printf("  ✓ Created %s\n", *path)
	fmt.Println("")
	fmt.Println("Next steps:")
	fmt.Println("  menudemo run        # Open the demo menu")
	return nil
}
