package cmd

import (
	"fmt"

	"github.com/theirongolddev/scholarhub/internal/campus"
	"github.com/theirongolddev/scholarhub/internal/cli"

	"github.com/spf13/cobra"
)

var campusCmd = &cobra.Command{
	Use:   "campus",
	Short: "Campus alerts and emergency contacts",
	RunE:  runCampus,
}

func init() {
	rootCmd.AddCommand(campusCmd)
}

func runCampus(_ *cobra.Command, _ []string) error {
	alerts := campus.Alerts()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("CAMPUS  %d urgent alerts", campus.UrgentCount(alerts))))
	fmt.Println()

	rows := make([][]string, 0, len(alerts))
	for _, a := range alerts {
		title := a.Title
		if a.Urgent {
			title = "! " + title
		}
		rows = append(rows, []string{title, a.Message, a.Date})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Alerts",
		Headers: []string{"Alert", "Message", "Date"},
		Rows:    rows,
	}))
	fmt.Println()

	contacts := campus.Contacts()
	cRows := make([][]string, 0, len(contacts))
	for _, c := range contacts {
		cRows = append(cRows, []string{c.Service, c.Phone})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Contacts",
		Headers: []string{"Service", "Phone"},
		Rows:    cRows,
	}))
	return nil
}
