package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	json "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/iostrovok/openidparams/logger"
	"github.com/iostrovok/openidparams/params"
)

const (
	formatQuery    = "query"
	formatKeyValue = "kv"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		logger.New().Writer(os.Stderr).Error(err).Errorf("paramdump failed")
		os.Exit(1)
	}
}

// run reads one message from in and writes its params to out as a JSON array.
func run(args []string, in io.Reader, out io.Writer) error {
	fs := flag.NewFlagSet("paramdump", flag.ContinueOnError)
	format := fs.String("format", formatQuery, "input encoding: "+formatQuery+" or "+formatKeyValue)
	indent := fs.Bool("indent", false, "indent output")

	if err := fs.Parse(args); err != nil {
		return err
	}

	raw, err := io.ReadAll(in)
	if err != nil {
		return errors.Wrap(err, "read input")
	}

	var list *params.List
	switch *format {
	case formatQuery:
		// a query string has no line structure, drop the newline a shell or editor leaves
		list, err = params.FromQueryString(strings.TrimRight(string(raw), "\r\n"))
	case formatKeyValue:
		list, err = params.FromKeyValueForm(string(raw))
	default:
		return errors.Errorf("unknown format %q", *format)
	}

	if err != nil {
		return err
	}

	var b []byte
	if *indent {
		b, err = json.ConfigCompatibleWithStandardLibrary.MarshalIndent(list, "", "  ")
	} else {
		b, err = json.ConfigCompatibleWithStandardLibrary.Marshal(list)
	}

	if err != nil {
		return errors.WithStack(err)
	}

	_, err = fmt.Fprintln(out, string(b))
	return err
}
