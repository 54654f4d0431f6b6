package main

import (
	"github.com/spf13/cobra"

	"github.com/aknip/notedesk/seed"
)

func init() {
	RootCmd.AddCommand(&SeedCommand)
}

var SeedCommand = cobra.Command{
	Use:   "seed",
	Short: "",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		seeded, err := seed.Seeded(userStore)
		if err != nil {
			logger.Fatal("error checking store:", err)
		}
		if seeded {
			logger.Print("store already holds data, not seeding")
			return
		}

		err = seed.Insert(seed.Stores{
			Users:       userStore,
			Persons:     personStore,
			Notes:       noteStore,
			Assignments: assignmentStore,
			Index:       noteIndex,
		})
		if err != nil {
			logger.Fatal("error seeding:", err)
		}
		logger.Print("sample data inserted")
	},
}
