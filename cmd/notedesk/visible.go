package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aknip/notedesk/services"
)

func init() {
	RootCmd.AddCommand(&VisibleCommand)
}

var VisibleCommand = cobra.Command{
	Use:   "visible",
	Short: "",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			logger.Fatal("visible wants 1 argument: the id of the user")
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			logger.Fatal("error converting user id: ", err)
		}

		// An unknown user resolves to an empty set; surface the
		// difference explicitly on the command line.
		if _, err := userService.Get(id); err != nil {
			logger.Fatal("error retrieving user:", err)
		}

		records, err := visibilityService.ResolveVisible(id)
		if err != nil {
			logger.Fatal("error resolving visibility:", err)
		}

		for _, record := range records {
			logger.Print(formatRecord(record))
		}
		logger.Printf("Total records: %d", len(records))
	},
}

func formatRecord(record services.VisibleRecord) string {
	content := "-"
	if record.Note != nil {
		content = record.Note.Content
	}
	return fmt.Sprintf(
		"Person: %s %s, Note: %s (%v)",
		record.Person.FirstName, record.Person.LastName, content, record.Reasons,
	)
}
