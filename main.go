package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cipher",
		Short: "Classical substitution cipher toolkit",
		Long: `cipher encrypts and decrypts text with a repeating-key substitution cipher.

A letter key (--key KEYWORD) gives the polyalphabetic form; an integer
shift (--shift 3) gives the monoalphabetic (Caesar) form. Letters keep
their case, everything else passes through unchanged, and every character
advances the key position.

This is a classical cipher. It offers no confidentiality.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newCipherCmd(operationEncrypt))
	rootCmd.AddCommand(newCipherCmd(operationDecrypt))
	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}
