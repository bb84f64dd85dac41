package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/guinchoja/backend/internal/pkg/logger"
	"github.com/guinchoja/backend/internal/pkg/models"
	"github.com/guinchoja/backend/internal/pkg/session"
)

const usage = `guincho-agent drives the relay API from the command line.

Usage:
  agent [global flags] <command> [command flags]

Account commands:
  login      -email -password
  register   -tipo Motorista|Guincho -username -email -password [-phone -cpf -placa -modelo -cnh -nascimento]
  logout
  whoami

Requester commands:
  providers  -from "lat,long" [-to "lat,long"]
  request    -from "lat,long" -to "lat,long"
  watch      -id <request id>
  cancel     -id <request id>
  ride       -id <request id>

Provider commands:
  online     [-at "lat,long"] [-accept]
  offline
  decide     -id <request id> -accept=true|false
  start      -id <request id> -code <validation code>
  finish     -id <request id> -code <validation code>

History:
  history

Global flags:
  -relay     relay base URL (default http://localhost:3000, or RELAY_URL)
  -session   session file path (default ~/.guinchoja/session.json)
  -v         verbose transport logging
`

func main() {
	relayURL := os.Getenv("RELAY_URL")
	if relayURL == "" {
		relayURL = "http://localhost:3000"
	}
	sessionPath := defaultSessionPath()

	flag.StringVar(&relayURL, "relay", relayURL, "relay base URL")
	flag.StringVar(&sessionPath, "session", sessionPath, "session file path")
	verbose := flag.Bool("v", false, "verbose transport logging")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}
	command := flag.Arg(0)

	appLogger := logger.NewNopLogger()
	if *verbose {
		l, err := logger.InitZapLoggerFromConfig(&models.Config{
			App:    models.AppConfig{Name: "agent", Debug: true},
			Logger: models.LoggerConfig{Level: "debug"},
		})
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer l.Close()
		appLogger = l
	}

	store := session.NewFileStore(sessionPath)
	client := newRelayClient(relayURL, store, appLogger)

	var err error
	switch command {
	case "login":
		err = runLogin(client, flag.Args()[1:])
	case "register":
		err = runRegister(client, flag.Args()[1:])
	case "logout":
		err = store.Clear()
	case "whoami":
		err = runWhoami(client)
	case "providers":
		err = runProviders(client, flag.Args()[1:])
	case "request":
		err = runRequest(client, appLogger, flag.Args()[1:])
	case "watch":
		err = runWatch(client, appLogger, flag.Args()[1:])
	case "cancel":
		err = runCancel(client, flag.Args()[1:])
	case "ride":
		err = runRide(client, flag.Args()[1:])
	case "online":
		err = runOnline(client, appLogger, flag.Args()[1:])
	case "offline":
		err = runOffline(client)
	case "decide":
		err = runDecide(client, flag.Args()[1:])
	case "start":
		err = runConfirm(client, models.StatusInTransit, flag.Args()[1:])
	case "finish":
		err = runConfirm(client, models.StatusCompleted, flag.Args()[1:])
	case "history":
		err = runHistory(client)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", command)
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%s: %v", command, err)
	}
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "session.json"
	}
	return filepath.Join(home, ".guinchoja", "session.json")
}
