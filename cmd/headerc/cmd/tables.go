package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"seedheader/internal/gamedata"
)

var tableSections = map[string]func(io.Writer, *gamedata.Tables){
	"spawns":    printSpawns,
	"relics":    printRelicZones,
	"keystones": printKeystoneDoors,
	"shops":     printShopPrices,
	"generator": printGenerator,
}

var tableOrder = []string{"spawns", "relics", "keystones", "shops", "generator"}

var tablesCmd = &cobra.Command{
	Use:       "tables [section]...",
	Short:     "Prints the static game data tables",
	Long:      "Prints the static game data tables: " + strings.Join(tableOrder, ", ") + ".",
	ValidArgs: tableOrder,
	Args:      cobra.OnlyValidArgs,
	RunE:      runTables,
}

func init() {
	rootCmd.AddCommand(tablesCmd)
}

func runTables(cmd *cobra.Command, args []string) error {
	sections := args
	if len(sections) == 0 {
		sections = tableOrder
	}

	tables := gamedata.Get()
	out := cmd.OutOrStdout()
	for i, name := range sections {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, color.New(color.Bold).Sprint(name))
		tableSections[name](out, tables)
	}
	return nil
}

func printSpawns(out io.Writer, t *gamedata.Tables) {
	fmt.Fprintf(out, "  default: %s\n", t.Spawns.Default)
	for _, difficulty := range []string{"moki", "gorlek"} {
		spawns, _ := t.SpawnsFor(difficulty)
		fmt.Fprintf(out, "  %s: %s\n", difficulty, strings.Join(spawns, ", "))
	}
}

func printRelicZones(out io.Writer, t *gamedata.Tables) {
	for _, zone := range t.RelicZones {
		fmt.Fprintf(out, "  %s\n", zone)
	}
}

func printKeystoneDoors(out io.Writer, t *gamedata.Tables) {
	for _, door := range t.KeystoneDoors {
		fmt.Fprintf(out, "  %-32s %d\n", door.Name, door.Keystones)
	}
}

func printShopPrices(out io.Writer, t *gamedata.Tables) {
	for _, slot := range t.ShopPrices {
		fmt.Fprintf(out, "  %-28s %-10s -> %s\n", slot.Name, slot.Location, slot.Price)
	}
}

func printGenerator(out io.Writer, t *gamedata.Tables) {
	fmt.Fprintf(out, "  reserve_slots: %d\n", t.Generator.ReserveSlots)
	fmt.Fprintf(out, "  retries: %d\n", t.Generator.Retries)
	fmt.Fprintf(out, "  random_progression: %g\n", t.Generator.RandomProgression)
}
