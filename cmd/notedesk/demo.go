package main

import (
	"github.com/spf13/cobra"

	"github.com/aknip/notedesk/seed"
)

func init() {
	RootCmd.AddCommand(&DemoCommand)
}

// DemoCommand walks through the showcase use cases on the seeded sample
// data: an admin overview, writes by an editor and an admin granting a
// person to a colleague.
var DemoCommand = cobra.Command{
	Use:   "demo",
	Short: "",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		seeded, err := seed.Seeded(userStore)
		if err != nil {
			logger.Fatal("error checking store:", err)
		}
		if !seeded {
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
		}

		anna, err := userService.GetByUsername("anna.schmitt")
		if err != nil {
			logger.Fatal("error retrieving user:", err)
		}
		bernd, err := userService.GetByUsername("bernd.mueller")
		if err != nil {
			logger.Fatal("error retrieving user:", err)
		}
		clara, err := userService.GetByUsername("clara.schulz")
		if err != nil {
			logger.Fatal("error retrieving user:", err)
		}

		// UC-1: the admin sees every person and note.
		logger.Print("UC-1: Admin Overview (Anna Schmitt)")
		printVisible(anna.ID)

		// UC-2: the editor updates a note he created.
		logger.Print("UC-2: Editor Updates Note (Bernd Mueller)")
		note, err := noteService.Update(bernd.ID, 5, "Updated by Bernd: Note 5 for person 2")
		if err != nil {
			logger.Fatal("error updating note:", err)
		}
		logger.Printf("Updated Note %d: %s", note.ID, note.Content)

		// UC-3: the viewer only sees her own and shared records.
		logger.Print("UC-3: Viewer Reads Notes (Clara Schulz)")
		printVisible(clara.ID)

		// UC-4: the editor attaches a new note to a person he created.
		logger.Print("UC-4: Editor Creates New Note (Bernd Mueller)")
		note, err = noteService.Create(bernd.ID, 3, "New note created by Bernd for Karl")
		if err != nil {
			logger.Fatal("error creating note:", err)
		}
		logger.Printf("Added Note %d: %s", note.ID, note.Content)

		// UC-5: the admin grants Bernd access to Olaf; his notes join
		// Bernd's visible set on the next resolution.
		logger.Print("UC-5: Admin Assigns Rights (Anna Schmitt)")
		if err := assignmentService.AssignPerson(anna.ID, bernd.ID, 5); err != nil {
			logger.Fatal("error assigning person:", err)
		}

		records, err := visibilityService.ResolveVisible(bernd.ID)
		if err != nil {
			logger.Fatal("error resolving visibility:", err)
		}
		olaf := 0
		for _, record := range records {
			if record.Person.ID == 5 && record.Note != nil {
				olaf++
			}
		}
		logger.Printf("Bernd can now see %d notes for Olaf Gemein", olaf)
	},
}

func printVisible(userID int) {
	records, err := visibilityService.ResolveVisible(userID)
	if err != nil {
		logger.Fatal("error resolving visibility:", err)
	}
	for _, record := range records {
		logger.Print(formatRecord(record))
	}
	logger.Printf("Total records: %d", len(records))
}
