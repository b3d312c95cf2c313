// (c) 2024, Counter Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"flag"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/avalanchego/utils/formatting"

	"github.com/counter-labs/countervm/countervm"
)

const (
	httpAddrKey = "http-addr"
	genesisKey  = "genesis"
	versionKey  = "version"
)

func buildFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet(countervm.Name, flag.ContinueOnError)

	fs.String(httpAddrKey, ":9090", "Address the API server listens on")
	fs.String(genesisKey, "", "Hex-encoded initial counter state (4 bytes); empty starts at zero")
	fs.Bool(versionKey, false, "If true, prints version and quits")

	return fs
}

// getViper returns the viper environment for the server binary
func getViper() (*viper.Viper, error) {
	v := viper.New()

	fs := buildFlagSet()
	pflag.CommandLine.AddGoFlagSet(fs)
	pflag.Parse()
	if err := v.BindPFlags(pflag.CommandLine); err != nil {
		return nil, err
	}

	return v, nil
}

type config struct {
	httpAddr string
	genesis  []byte
	version  bool
}

func getConfig() (config, error) {
	v, err := getViper()
	if err != nil {
		return config{}, err
	}

	c := config{
		httpAddr: v.GetString(httpAddrKey),
		version:  v.GetBool(versionKey),
	}

	if gen := v.GetString(genesisKey); gen != "" {
		raw, err := formatting.Decode(formatting.Hex, gen)
		if err != nil {
			return config{}, fmt.Errorf("couldn't parse genesis: %w", err)
		}
		c.genesis = raw
	}

	return c, nil
}
