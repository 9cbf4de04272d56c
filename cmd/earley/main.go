package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

const version = "1.0.0"

func main() {
	v := viper.New()
	rootCmd := newRootCmd(v)

	if err := rootCmd.Execute(); err != nil {
		if v.GetBool("traceback") {
			printTraceback(os.Stderr, err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", describe(err))
		}
		os.Exit(1)
	}
}
