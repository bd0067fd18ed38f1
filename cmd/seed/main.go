// Seed loads a demo Spanish vocabulary into an empty storage backend,
// so the API has something to serve on a fresh install.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/palabras/backend/internal/service"
	"github.com/palabras/backend/internal/store"
)

type demoCard struct {
	spanish string
	english string
	notes   string
}

var demoCards = []demoCard{
	{"hola", "hello", "basic greeting"},
	{"adiós", "goodbye", "farewell"},
	{"gracias", "thank you", "politeness"},
	{"por favor", "please", "polite request"},
	{"sí", "yes", ""},
	{"no", "no", ""},
	{"buenos días", "good morning", "morning greeting"},
	{"buenas noches", "good night", "evening greeting"},
	{"perdón", "sorry / excuse me", "apology"},
	{"agua", "water", "drink"},
	{"comida", "food", "meal"},
	{"casa", "house", "building"},
	{"amigo", "friend", "male friend"},
	{"amiga", "friend (female)", "female friend"},
	{"libro", "book", "object"},
	{"escuela", "school", "education"},
	{"trabajo", "work / job", "profession"},
	{"familia", "family", "relatives"},
	{"amor", "love", "feeling"},
	{"tiempo", "time / weather", "two meanings"},
	{"ciudad", "city", "place"},
	{"país", "country", "geography"},
	{"mundo", "world", "geography"},
	{"persona", "person", "human"},
	{"día", "day", "unit of time"},
}

func main() {
	backend := flag.String("backend", "sqlite", "storage backend: sqlite or file")
	sqlitePath := flag.String("db", "palabras.db", "sqlite database path")
	dataFile := flag.String("data", "data/palabras.json", "json document path for the file backend")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var (
		db  store.Store
		err error
	)
	switch *backend {
	case "sqlite":
		db, err = store.NewSQLite(*sqlitePath)
	case "file":
		db, err = store.NewFile(*dataFile)
	default:
		logger.Error("unknown backend", "backend", *backend)
		os.Exit(1)
	}
	if err != nil {
		logger.Error("failed to open storage", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	cards := service.NewCardService(db, logger)
	ctx := context.Background()

	created := 0
	for _, d := range demoCards {
		_, err := cards.Create(ctx, d.spanish, d.english, d.notes)
		if errors.Is(err, service.ErrDuplicateCard) {
			logger.Info("card already present, skipping", "spanish", d.spanish)
			continue
		}
		if err != nil {
			logger.Error("failed to create card", "spanish", d.spanish, "error", err)
			os.Exit(1)
		}
		created++
	}

	logger.Info("seed complete", "created", created, "skipped", len(demoCards)-created)
}
