package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/crateops/cargomk/cmd/cargomk/internal"
)

type exitCoder interface {
	ExitCode() int
}

func main() {
	if err := internal.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "cargomk:", err)
		code := 1
		var ec exitCoder
		if errors.As(err, &ec) && ec.ExitCode() != 0 {
			code = ec.ExitCode()
		}
		os.Exit(code)
	}
}
