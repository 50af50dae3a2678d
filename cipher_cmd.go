package main

import (
	"fmt"
	"io"
	"strings"

	"cipher-backend/crypto"

	"github.com/spf13/cobra"
)

const (
	operationEncrypt = "encrypt"
	operationDecrypt = "decrypt"
)

type cipherFlags struct {
	key   string
	shift int
}

func newCipherCmd(operation string) *cobra.Command {
	var flags cipherFlags

	cmd := &cobra.Command{
		Use:   operation + " [text...]",
		Short: fmt.Sprintf("%s text with a key or shift", strings.ToUpper(operation[:1])+operation[1:]),
		Long: fmt.Sprintf(`%s the given text. Arguments are joined with single spaces;
when none are given the text is read from standard input.

Examples:
  cipher %[2]s --key KEYWORD "Hello, World!"
  cipher %[2]s --shift 3 "Hello, World!"
  echo "Hello, World!" | cipher %[2]s --key lemon`, strings.ToUpper(operation[:1])+operation[1:], operation),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCipher(cmd, operation, flags, args)
		},
	}

	cmd.Flags().StringVarP(&flags.key, "key", "k", "", "alphabetic key (polyalphabetic mode)")
	cmd.Flags().IntVarP(&flags.shift, "shift", "s", 0, "integer shift (monoalphabetic mode)")
	cmd.MarkFlagsOneRequired("key", "shift")
	cmd.MarkFlagsMutuallyExclusive("key", "shift")

	return cmd
}

func runCipher(cmd *cobra.Command, operation string, flags cipherFlags, args []string) error {
	var shift *int
	if cmd.Flags().Changed("shift") {
		shift = &flags.shift
	}

	cipher, err := crypto.New(flags.key, shift)
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	trailingNewline := false
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		text = string(data)
	} else {
		trailingNewline = true
	}

	var result string
	if operation == operationEncrypt {
		result = cipher.Encrypt(text)
	} else {
		result = cipher.Decrypt(text)
	}

	out := cmd.OutOrStdout()
	if trailingNewline {
		_, err = fmt.Fprintln(out, result)
	} else {
		_, err = io.WriteString(out, result)
	}
	return err
}
