package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/RafaelVVolkmer/Frost-Compiler/pkgs/diagnostics"
	"github.com/RafaelVVolkmer/Frost-Compiler/pkgs/lexer"
	"github.com/RafaelVVolkmer/Frost-Compiler/pkgs/token"
	"github.com/RafaelVVolkmer/Frost-Compiler/pkgs/tokenfmt"
)

// Build-time variables - can be set via ldflags
var (
	Version   string = "dev"
	BuildTime string = "unknown"
	GitCommit string = "unknown"
)

// Global flags
var (
	jsonOutput   bool
	showComments bool
	kindFilter   string
	output       string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "frostc",
	Short: "Frost compiler front end",
	Long: `frostc drives the Frost compiler pipeline. The currently wired stage
is the lexical analyzer: it turns Frost source files into typed token
streams for the later parsing stages.`,
}

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Tokenize a Frost source file",
	Long: `Tokenize a Frost source file and print the token stream, one token
per line. Use "-" to read from stdin. Lexical errors are reported on
stderr but never stop the stream: bad input comes back as ERROR tokens.`,
	Args: cobra.ExactArgs(1),
	RunE: lexCommand,
}

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Lex a Frost source file and report diagnostics",
	Long: `Lex the whole file, print nothing but the collected diagnostics, and
exit non-zero when lexical errors were found.`,
	Args: cobra.ExactArgs(1),
	RunE: checkCommand,
}

var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Write the token stream as a binary artifact",
	Long: `Tokenize a Frost source file and write the stream in the frostc
token-stream format, for consumption by later pipeline stages and
external tools.`,
	Args: cobra.ExactArgs(1),
	RunE: dumpCommand,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("frostc %s\n", Version)
		fmt.Printf("Built: %s\n", BuildTime)
		fmt.Printf("Commit: %s\n", GitCommit)
	},
}

func init() {
	lexCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the token stream as JSON")
	lexCmd.Flags().BoolVar(&showComments, "comments", false, "Emit comment tokens instead of skipping them")
	lexCmd.Flags().StringVar(&kindFilter, "kind", "", "Only print tokens of the given kind (e.g. IDENTIFIER)")

	dumpCmd.Flags().StringVarP(&output, "output", "o", "", "Output path (default: <file>.frt)")

	rootCmd.AddCommand(lexCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(versionCmd)
}

// readSource loads a source file, or stdin when path is "-". Any
// decoding or newline normalization happens here, before the lexer
// ever sees the buffer.
func readSource(path string) ([]byte, error) {
	if path == "-" {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		return content, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", path, err)
	}
	return content, nil
}

func lexCommand(cmd *cobra.Command, args []string) error {
	content, err := readSource(args[0])
	if err != nil {
		return err
	}

	var filter token.Kind
	hasFilter := kindFilter != ""
	if hasFilter {
		kind, ok := token.KindFromName(kindFilter)
		if !ok {
			if suggestion, found := token.SuggestKind(kindFilter); found {
				return fmt.Errorf("unknown token kind %q (did you mean %q?)", kindFilter, suggestion)
			}
			return fmt.Errorf("unknown token kind %q", kindFilter)
		}
		filter = kind
	}

	bag := diagnostics.NewBag()
	opts := []lexer.Option{lexer.WithReporter(bag)}
	if showComments {
		opts = append(opts, lexer.WithComments())
	}

	l, err := lexer.New(content, opts...)
	if err != nil {
		return err
	}

	tokens := l.Tokenize()
	if hasFilter {
		filtered := tokens[:0]
		for _, tok := range tokens {
			if tok.Kind == filter {
				filtered = append(filtered, tok)
			}
		}
		tokens = filtered
	}

	if jsonOutput {
		encoded, err := json.MarshalIndent(tokens, "", "  ")
		if err != nil {
			return fmt.Errorf("error encoding tokens: %w", err)
		}
		fmt.Println(string(encoded))
	} else {
		for _, tok := range tokens {
			fmt.Printf("%d:%d\t%s\t%s\n", tok.Line, tok.Column, tok.Kind, tok.Text())
		}
	}

	return bag.Render(os.Stderr, args[0])
}

func checkCommand(cmd *cobra.Command, args []string) error {
	content, err := readSource(args[0])
	if err != nil {
		return err
	}

	bag := diagnostics.NewBag()
	l, err := lexer.New(content, lexer.WithReporter(bag))
	if err != nil {
		return err
	}

	l.Tokenize()
	if err := bag.Render(os.Stderr, args[0]); err != nil {
		return err
	}
	if bag.HasErrors() {
		return fmt.Errorf("%d lexical error(s) in %s", bag.ErrorCount(), args[0])
	}
	return nil
}

func dumpCommand(cmd *cobra.Command, args []string) error {
	content, err := readSource(args[0])
	if err != nil {
		return err
	}

	bag := diagnostics.NewBag()
	l, err := lexer.New(content, lexer.WithReporter(bag))
	if err != nil {
		return err
	}
	tokens := l.Tokenize()

	outputPath := output
	if outputPath == "" {
		outputPath = args[0] + ".frt"
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", outputPath, err)
	}
	defer file.Close()

	stream := &tokenfmt.Stream{Path: args[0], Tokens: tokens}
	if err := tokenfmt.Write(file, stream); err != nil {
		return fmt.Errorf("error writing token stream: %w", err)
	}

	return bag.Render(os.Stderr, args[0])
}
