package main

import (
	"errors"
	"fmt"
	"os"

	"buddha-num-conv/internal/config"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		if !errors.Is(err, errConversionFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
