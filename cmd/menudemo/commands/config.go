package commands

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/agiangrant/menukit"
)

// Config implements the 'menudemo config' command. It prints the loaded
// file merged over the defaults.
func Config(args []string) error {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	path := fs.String("config", "", "Config file (default menukit.toml)")
	fs.Parse(args)

	cfg, err := menukit.LoadConfig(*path)
	if err != nil {
		return err
	}
	return writeConfig(os.Stdout, cfg)
}

func writeConfig(w io.Writer, cfg menukit.Config) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}
