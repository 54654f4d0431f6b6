package main

import (
	"encoding/json"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aknip/notedesk"
)

func init() {
	PersonCommand.AddCommand(&PersonAllCommand)
	PersonCommand.AddCommand(&PersonCreateCommand)
	PersonCommand.AddCommand(&PersonUpdateCommand)
	PersonCommand.AddCommand(&PersonDeleteCommand)
	RootCmd.AddCommand(&PersonCommand)
}

var PersonCommand = cobra.Command{
	Use:   "person",
	Short: "",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			logger.Fatal("person wants 1 argument: the id of the person")
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			logger.Fatal("error converting person id: ", err)
		}

		person, err := personService.Get(caller().ID, id)
		if err != nil {
			logger.Fatal("error retrieving person:", err)
		}

		data, err := formatPerson(person)
		if err != nil {
			logger.Fatal(err)
		}
		logger.Print(data)
	},
}

var PersonAllCommand = cobra.Command{
	Use:   "all",
	Short: "",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		persons, err := personService.List(caller().ID)
		if err != nil {
			logger.Fatal("error listing persons:", err)
		}

		for _, person := range persons {
			data, err := formatPerson(person)
			if err != nil {
				logger.Fatal(err)
			}
			logger.Print(data)
		}
	},
}

var PersonCreateCommand = cobra.Command{
	Use:   "create",
	Short: "",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			logger.Fatal("person create wants 1 argument: the json representation of the person")
		}

		var p notedesk.Person
		if err := json.Unmarshal([]byte(args[0]), &p); err != nil {
			logger.Fatal("error decoding request:", err)
		}

		person, err := personService.Create(caller().ID, p)
		if err != nil {
			logger.Fatal("error creating person:", err)
		}

		data, err := formatPerson(person)
		if err != nil {
			logger.Fatal(err)
		}
		logger.Print(data)
	},
}

var PersonUpdateCommand = cobra.Command{
	Use:   "update",
	Short: "",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			logger.Fatal("person update wants 1 argument: the json representation of the person")
		}

		var p notedesk.Person
		if err := json.Unmarshal([]byte(args[0]), &p); err != nil {
			logger.Fatal("error decoding request:", err)
		}

		person, err := personService.Update(caller().ID, p)
		if err != nil {
			logger.Fatal("error updating person:", err)
		}

		data, err := formatPerson(person)
		if err != nil {
			logger.Fatal(err)
		}
		logger.Print(data)
	},
}

var PersonDeleteCommand = cobra.Command{
	Use:   "delete",
	Short: "",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			logger.Fatal("person delete wants 1 argument: the id of the person")
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			logger.Fatal("error converting person id: ", err)
		}

		if err := personService.Delete(caller().ID, id); err != nil {
			logger.Fatal("error deleting person:", err)
		}
		logger.Printf("<Person %d> deleted", id)
	},
}

func formatPerson(person notedesk.Person) (string, error) {
	data, err := json.Marshal(person)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
