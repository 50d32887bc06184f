/*
Copyright 2026.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Command dump connects to a live Radarr instance and prints its
// configuration as a declared-state YAML document. The output round-trips
// as reconciliation input.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gopkg.in/yaml.v3"

	"github.com/concordarr/concordarr-operator/internal/adapters"
	_ "github.com/concordarr/concordarr-operator/internal/adapters/radarr" // Register radarr adapter
	"github.com/concordarr/concordarr-operator/internal/discovery"
	irv1 "github.com/concordarr/concordarr-operator/internal/ir/v1"
)

func main() {
	var (
		url        = flag.String("url", "", "Base URL of the Radarr instance (e.g. http://localhost:7878)")
		apiKey     = flag.String("api-key", "", "API key. Falls back to -config or the RADARR_API_KEY environment variable.")
		configPath = flag.String("config", "", "Path to a config.xml to read the API key from")
		insecure   = flag.Bool("insecure", false, "Skip TLS certificate verification")
	)
	flag.Parse()

	if err := run(*url, *apiKey, *configPath, *insecure); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(url, apiKey, configPath string, insecure bool) error {
	if url == "" {
		return fmt.Errorf("-url is required")
	}

	if apiKey == "" {
		apiKey = os.Getenv("RADARR_API_KEY")
	}
	if apiKey == "" && configPath != "" {
		key, err := discovery.DiscoverAPIKeyFromFile(configPath)
		if err != nil {
			return err
		}
		apiKey = key
	}
	if apiKey == "" {
		return fmt.Errorf("no API key: pass -api-key, -config or set RADARR_API_KEY")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	adapter := adapters.MustGet(adapters.AppRadarr)
	conn := &irv1.ConnectionIR{
		URL:                url,
		APIKey:             apiKey,
		InsecureSkipVerify: insecure,
	}

	ir, err := adapter.Dump(ctx, conn)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(ir)
}
