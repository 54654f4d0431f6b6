package main

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aknip/notedesk"
)

func init() {
	NoteCommand.AddCommand(&NoteAddCommand)
	NoteCommand.AddCommand(&NoteUpdateCommand)
	NoteCommand.AddCommand(&NoteDeleteCommand)
	NoteCommand.AddCommand(&NoteSearchCommand)
	RootCmd.AddCommand(&NoteCommand)
}

var NoteCommand = cobra.Command{
	Use:   "note",
	Short: "",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			logger.Fatal("note wants 1 argument: the id of the note")
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			logger.Fatal("error converting note id: ", err)
		}

		note, err := noteService.Get(caller().ID, id)
		if err != nil {
			logger.Fatal("error retrieving note:", err)
		}

		data, err := formatNote(note)
		if err != nil {
			logger.Fatal(err)
		}
		logger.Print(data)
	},
}

var NoteAddCommand = cobra.Command{
	Use:   "add",
	Short: "",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 2 {
			logger.Fatal("note add wants 2 arguments: the id of the person and the content")
		}

		personID, err := strconv.Atoi(args[0])
		if err != nil {
			logger.Fatal("error converting person id: ", err)
		}

		note, err := noteService.Create(caller().ID, personID, strings.Join(args[1:], " "))
		if err != nil {
			logger.Fatal("error creating note:", err)
		}

		data, err := formatNote(note)
		if err != nil {
			logger.Fatal(err)
		}
		logger.Print(data)
	},
}

var NoteUpdateCommand = cobra.Command{
	Use:   "update",
	Short: "",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 2 {
			logger.Fatal("note update wants 2 arguments: the id of the note and the content")
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			logger.Fatal("error converting note id: ", err)
		}

		note, err := noteService.Update(caller().ID, id, strings.Join(args[1:], " "))
		if err != nil {
			logger.Fatal("error updating note:", err)
		}

		data, err := formatNote(note)
		if err != nil {
			logger.Fatal(err)
		}
		logger.Print(data)
	},
}

var NoteDeleteCommand = cobra.Command{
	Use:   "delete",
	Short: "",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			logger.Fatal("note delete wants 1 argument: the id of the note")
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			logger.Fatal("error converting note id: ", err)
		}

		if err := noteService.Delete(caller().ID, id); err != nil {
			logger.Fatal("error deleting note:", err)
		}
		logger.Printf("<Note %d> deleted", id)
	},
}

var NoteSearchCommand = cobra.Command{
	Use:   "search",
	Short: "",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		res, err := noteService.Search(caller().ID, strings.Join(args, " "), 0, 0)
		if err != nil {
			logger.Fatal("error searching notes:", err)
		}

		for _, note := range res.Notes {
			data, err := formatNote(note)
			if err != nil {
				logger.Fatal(err)
			}
			logger.Print(data)
		}
		logger.Printf("%d notes found", res.Pagination.Total)
	},
}

func formatNote(note notedesk.Note) (string, error) {
	data, err := json.Marshal(note)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
