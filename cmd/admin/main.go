package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"guesstimate-server/pkg/db"
	"guesstimate-server/pkg/gamestore"
	"guesstimate-server/pkg/scorekeeper"
)

var command = flag.String("c", "list", "specifies the command (list, delete, wipe)")
var gameID = flag.String("id", "", "the game id for the delete command")

func main() {
	flag.Parse()

	store := gamestore.New(db.Instance())
	ctx := context.Background()

	switch *command {
	case "list":
		games, err := store.LoadAll(ctx)
		if err != nil {
			logrus.WithError(err).Fatal("could not load games")
		}

		for _, game := range games {
			name := game.Name
			if name == "" {
				name = "(unnamed)"
			}

			fmt.Printf("%s\t%s\t%s\t%s\n", game.ID, game.Date.Format("2006-01-02"), game.Phase(), name)
		}
	case "delete":
		if *gameID == "" {
			logrus.Fatal("delete requires -id")
		}

		if err := store.Delete(ctx, &scorekeeper.Game{ID: *gameID}); err != nil {
			logrus.WithError(err).Fatal("could not delete game")
		}

		fmt.Printf("Deleted game %s\n", *gameID)
	case "wipe":
		if err := store.DeleteAll(ctx); err != nil {
			logrus.WithError(err).Fatal("could not delete games")
		}

		fmt.Println("Deleted all games")
	default:
		fmt.Printf("Unknown command: %s\n", *command)
		os.Exit(1)
	}
}
