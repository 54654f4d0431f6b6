package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	AssignCommand.AddCommand(&AssignPersonCommand)
	AssignCommand.AddCommand(&AssignNoteCommand)
	UnassignCommand.AddCommand(&UnassignPersonCommand)
	UnassignCommand.AddCommand(&UnassignNoteCommand)
	RootCmd.AddCommand(&AssignCommand)
	RootCmd.AddCommand(&UnassignCommand)
}

var AssignCommand = cobra.Command{
	Use:   "assign",
	Short: "",
	Long:  "",
}

var UnassignCommand = cobra.Command{
	Use:   "unassign",
	Short: "",
	Long:  "",
}

var AssignPersonCommand = cobra.Command{
	Use:   "person",
	Short: "",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		userID, personID := assignmentArgs(args, "assign person")
		if err := assignmentService.AssignPerson(caller().ID, userID, personID); err != nil {
			logger.Fatal("error assigning person:", err)
		}
		logger.Printf("<Person %d> assigned to <User %d>", personID, userID)
	},
}

var UnassignPersonCommand = cobra.Command{
	Use:   "person",
	Short: "",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		userID, personID := assignmentArgs(args, "unassign person")
		if err := assignmentService.UnassignPerson(caller().ID, userID, personID); err != nil {
			logger.Fatal("error unassigning person:", err)
		}
		logger.Printf("<Person %d> unassigned from <User %d>", personID, userID)
	},
}

var AssignNoteCommand = cobra.Command{
	Use:   "note",
	Short: "",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		userID, noteID := assignmentArgs(args, "assign note")
		if err := assignmentService.AssignNote(caller().ID, noteID, userID); err != nil {
			logger.Fatal("error assigning note:", err)
		}
		logger.Printf("<Note %d> assigned to <User %d>", noteID, userID)
	},
}

var UnassignNoteCommand = cobra.Command{
	Use:   "note",
	Short: "",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		userID, noteID := assignmentArgs(args, "unassign note")
		if err := assignmentService.UnassignNote(caller().ID, noteID, userID); err != nil {
			logger.Fatal("error unassigning note:", err)
		}
		logger.Printf("<Note %d> unassigned from <User %d>", noteID, userID)
	},
}

func assignmentArgs(args []string, name string) (int, int) {
	if len(args) != 2 {
		logger.Fatalf("%s wants 2 arguments: the id of the user and the id of the target", name)
	}

	userID, err := strconv.Atoi(args[0])
	if err != nil {
		logger.Fatal("error converting user id: ", err)
	}
	targetID, err := strconv.Atoi(args[1])
	if err != nil {
		logger.Fatal("error converting target id: ", err)
	}
	return userID, targetID
}
