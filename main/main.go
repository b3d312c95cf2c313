// (c) 2024, Counter Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"net/http"
	"os"

	log "github.com/inconshreveable/log15"

	"github.com/ava-labs/avalanchego/database/memdb"

	"github.com/counter-labs/countervm/countervm"
)

func main() {
	cfg, err := getConfig()
	if err != nil {
		fmt.Printf("couldn't get config: %s\n", err)
		os.Exit(1)
	}
	// Print version and exit
	if cfg.version {
		fmt.Printf("%s@%s\n", countervm.Name, countervm.Version)
		os.Exit(0)
	}

	// Dev harness: accounts live for the lifetime of the process.
	// Durable hosting belongs to the chain runtime, not this binary.
	rt := &countervm.Runtime{}
	if err := rt.Initialize(memdb.New(), countervm.ProcessInstruction, cfg.genesis); err != nil {
		log.Error("couldn't initialize runtime", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := rt.Shutdown(); err != nil {
			log.Error("error shutting down runtime", "error", err)
		}
	}()

	handlers, err := rt.CreateHandlers()
	if err != nil {
		log.Error("couldn't create handlers", "error", err)
		os.Exit(1)
	}

	mux := http.NewServeMux()
	for path, handler := range handlers {
		mux.Handle("/ext/counter"+path, handler)
	}

	log.Info("serving counter API", "addr", cfg.httpAddr)
	if err := http.ListenAndServe(cfg.httpAddr, mux); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}
