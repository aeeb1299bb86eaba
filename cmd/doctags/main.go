// doctags is a console validator for DocTags documents.
//
// Usage is
//
//	doctags validate <file-or-url>
//	doctags tokens <file-or-url>
//
// validate exits 0 when the document is structurally well formed and 1 when
// it is rejected; tokens prints the token sequence the recognizer would see.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/docling-go/doctags"
	"github.com/docling-go/doctags/lexer"
	"github.com/docling-go/doctags/source"
	"github.com/docling-go/doctags/token"
)

var verbose bool

func main() {
	root := &cobra.Command{
		Use:           "doctags",
		Short:         "validate DocTags document markup",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).With().Timestamp().Logger()
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		&cobra.Command{
			Use:   "validate <file-or-url>",
			Short: "check that a document is structurally well formed",
			Args:  cobra.ExactArgs(1),
			RunE:  runValidate,
		},
		&cobra.Command{
			Use:   "tokens <file-or-url>",
			Short: "print the token sequence of a document",
			Args:  cobra.ExactArgs(1),
			RunE:  runTokens,
		},
	)

	if e := root.Execute(); e != nil {
		log.Error().Err(e).Msg("failed")
		os.Exit(2)
	}
}

func readSource(ref string) (string, error) {
	s, e := source.ResolveToStream(ref)
	if e != nil {
		return "", e
	}
	defer s.Close()

	content, e := io.ReadAll(s.Reader)
	if e != nil {
		return "", e
	}
	log.Debug().Str("name", s.Name).Int("bytes", len(content)).Msg("source resolved")
	return string(content), nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	content, e := readSource(args[0])
	if e != nil {
		return e
	}

	if !doctags.Validate(content) {
		fmt.Println("reject")
		os.Exit(1)
	}
	fmt.Println("accept")
	return nil
}

func runTokens(cmd *cobra.Command, args []string) error {
	content, e := readSource(args[0])
	if e != nil {
		return e
	}

	l := lexer.New(token.Default().Terminals())
	for _, t := range l.Tokenize(content) {
		if t.IsContent() {
			fmt.Printf("%d\tcontent\t%q\n", t.Pos(), t.Text())
		} else {
			fmt.Printf("%d\tterminal\t%s\n", t.Pos(), t.Text())
		}
	}
	return nil
}
