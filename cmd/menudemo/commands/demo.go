package commands

import (
	"fmt"
	"log/slog"

	"github.com/agiangrant/menukit"
	"github.com/agiangrant/menukit/retained"
)

var inventory = []struct {
	name string
	qty  int
}{
	{"Parsnip", 12}, {"Copper Ore", 40}, {"Wood", 250}, {"Stone", 180},
	{"Sap", 33}, {"Fiber", 96}, {"Clay", 7}, {"Coal", 15},
	{"Blueberry", 54}, {"Iron Bar", 4}, {"Quartz", 2}, {"Hay", 120},
}

// BuildDemo lays out the demo menu: settings on the left, an inventory list
// in the middle and a scrolling log on the right.
func BuildDemo(cfg menukit.Config, assets *retained.Assets) (*retained.Form, error) {
	form := retained.NewForm(0, 0, cfg.Window.Width, cfg.Window.Height, cfg.Settings())
	form.SetName("demo")
	form.SetAssets(assets)
	form.SetPadding(retained.GameMenuPadding)

	title := retained.Text(cfg.Window.Title)
	title.SetLocation(0, 0)

	hints := retained.Toggle("Show hints", true, func(on bool) {
		slog.Info("hints toggled", "on", on)
	})
	hints.SetTooltip("Hints", "Show a tip when hovering over items.")

	difficulty := retained.Dropdown("Easy", "Normal", "Hard")
	difficulty.SetSelectedIndex(1)
	difficulty.OnSelectedIndexChanged(func(i int) {
		slog.Info("difficulty changed", "value", difficulty.SelectedItem())
	})

	farmName := retained.NewTextBox()
	farmName.Placeholder = "Farm name"
	farmName.SetMaxLength(20)
	farmName.OnSubmit(func(name string) {
		slog.Info("farm renamed", "name", name)
	})

	difficultyRow, err := retained.HStack(8, retained.Text("Difficulty"), difficulty)
	if err != nil {
		return nil, err
	}
	settings, err := retained.VStack(16,
		farmName,
		hints,
		retained.Toggle("Auto-sort chests", false, nil),
		difficultyRow,
	)
	if err != nil {
		return nil, err
	}
	settings.SetLocation(0, 48)

	list := retained.NewListView(
		retained.ListColumn{Text: "Item", Width: 240},
		retained.ListColumn{Text: "Qty", Width: 80},
	)
	for _, it := range inventory {
		list.AddRow(it.name, fmt.Sprint(it.qty))
	}
	list.SetBounds(retained.R(420, 48, 400, 320))

	var lines []retained.Component
	for i := range 30 {
		lines = append(lines, retained.Text(fmt.Sprintf("Day %d: nothing happened", i+1)))
	}
	days, err := retained.VStack(4, lines...)
	if err != nil {
		return nil, err
	}
	journal, err := retained.Scroll(360, 320, days)
	if err != nil {
		return nil, err
	}
	journal.SetLocation(840, 48)

	closeButton := retained.ButtonWith("Close", form.Close)
	closeButton.SetLocation(0, 448)

	if err := form.Add(title, settings, list, journal, closeButton); err != nil {
		return nil, fmt.Errorf("failed to build demo menu: %w", err)
	}
	return form, nil
}
