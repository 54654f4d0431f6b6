package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/aknip/notedesk"
	"github.com/aknip/notedesk/bleve"
	"github.com/aknip/notedesk/bolt"
	"github.com/aknip/notedesk/log"
	"github.com/aknip/notedesk/services"
)

var (
	// flags
	verbose bool
	env     string
	as      string

	// logger
	logger log.Logger

	// drivers
	boltDriver *bolt.Driver

	// stores
	userStore       notedesk.UserStore
	personStore     notedesk.PersonStore
	noteStore       notedesk.NoteStore
	assignmentStore notedesk.AssignmentStore
	visibilityStore notedesk.VisibilityStore

	// indices
	noteIndex *bleve.NoteIndex

	// services
	userService       *services.UserService
	personService     *services.PersonService
	noteService       *services.NoteService
	assignmentService *services.AssignmentService
	visibilityService *services.VisibilityService
)

type Configuration struct {
	Bolt struct {
		Store string `toml:"store"`
	} `toml:"bolt"`
	Bleve struct {
		Store string `toml:"store"`
	} `toml:"bleve"`
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose mode")
	RootCmd.PersistentFlags().StringVar(&env, "env", "dev", "")
	RootCmd.PersistentFlags().StringVar(&as, "as", "", "username the command acts as")
}

var RootCmd = cobra.Command{
	Use:   "notedesk",
	Short: "",
	Long:  "",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load configuration
		cfgData, err := os.ReadFile(fmt.Sprintf("configuration/config.%s.toml", env))
		if err != nil {
			fmt.Println("error reading configuration:", err)
			return
		}

		var cfg Configuration
		err = toml.Unmarshal(cfgData, &cfg)
		if err != nil {
			fmt.Println("error unmarshalling configuration:", err)
			return
		}

		// Create logger
		logger = log.New(env)

		// Create stores
		boltDriver = &bolt.Driver{}
		if err := boltDriver.Open(cfg.Bolt.Store); err != nil {
			logger.Fatal("could not open store:", err)
		}
		userStore = &bolt.UserStore{Driver: boltDriver}
		personStore = &bolt.PersonStore{Driver: boltDriver}
		noteStore = &bolt.NoteStore{Driver: boltDriver}
		assignmentStore = &bolt.AssignmentStore{Driver: boltDriver}
		visibilityStore = &bolt.VisibilityStore{Driver: boltDriver}

		// Create index
		noteIndex = &bleve.NoteIndex{}
		if err := noteIndex.Open(cfg.Bleve.Store); err != nil {
			logger.Fatal("could not open index:", err)
		}

		// Create services
		userService = services.NewUserService(userStore)
		personService = services.NewPersonService(personStore, userStore, assignmentStore)
		visibilityService = services.NewVisibilityService(userStore, visibilityStore)
		noteService = services.NewNoteService(noteStore, personStore, userStore, assignmentStore, noteIndex, visibilityService)
		assignmentService = services.NewAssignmentService(assignmentStore, userStore, personStore, noteStore)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		boltDriver.Close()
		noteIndex.Close()
	},
}

// caller resolves the --as flag to the acting user.
func caller() notedesk.User {
	if as == "" {
		logger.Fatal("this command needs --as <username>")
	}

	user, err := userService.GetByUsername(as)
	if err != nil {
		logger.Fatal("error retrieving user:", err)
	}
	return user
}
