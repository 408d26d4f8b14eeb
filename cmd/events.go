package cmd

import (
	"fmt"

	"github.com/theirongolddev/scholarhub/internal/campus"
	"github.com/theirongolddev/scholarhub/internal/cli"

	"github.com/spf13/cobra"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Campus events",
	RunE:  runEvents,
}

var (
	eventsCategory string
	eventsFreeFood bool
)

func init() {
	eventsCmd.Flags().StringVarP(&eventsCategory, "category", "c", campus.AllCategories, "Filter by category (All, Academic, Career, Social, Club, Sports)")
	eventsCmd.Flags().BoolVarP(&eventsFreeFood, "free-food", "f", false, "Only events with free food")
	rootCmd.AddCommand(eventsCmd)
}

func runEvents(_ *cobra.Command, _ []string) error {
	events := campus.FilterEvents(campus.Events(), eventsCategory, eventsFreeFood)

	title := "EVENTS  " + eventsCategory
	if eventsFreeFood {
		title += "  free food"
	}
	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	fmt.Println()

	if len(events) == 0 {
		fmt.Println("  No events match these filters.")
		return nil
	}

	rows := make([][]string, 0, len(events))
	for _, ev := range events {
		food := ""
		if ev.HasFreeFood {
			food = "yes"
		}
		rows = append(rows, []string{ev.Name, ev.Category, ev.Date, ev.Time, ev.Location, food})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Event", "Category", "Date", "Time", "Location", "Free Food"},
		Rows:    rows,
	}))
	return nil
}
