package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/iostrovok/openidparams"
	"github.com/iostrovok/openidparams/logger/level"
	"github.com/iostrovok/openidparams/params"
)

func echo(_ context.Context, in *params.List) (*params.List, error) {
	return in, nil
}

func main() {
	addr := flag.String("addr", ":8081", "listen address")
	logLevel := flag.String("log-level", "info", "log level")
	flag.Parse()

	lvl, err := level.Parse(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	err = openidparams.New(echo).
		SetServerName("kvecho").
		SetLogLevel(lvl).
		SetShutdownTimeOut(5000).
		Run(context.Background(), *addr)
	fmt.Printf("err: %+v\n\n", err)
}
