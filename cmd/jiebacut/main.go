// Command jiebacut is a thin demonstration front end for the jieba
// package: it segments the sentence given as its argument, or else each
// line read from stdin, and prints the result. It carries no
// segmentation logic of its own.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	jieba "github.com/mengwang/jieba-go"
)

func main() {
	var (
		cutAll   bool
		useHMM   bool
		search   bool
		pos      bool
		dictPath string
		workers  int
	)

	root := &cobra.Command{
		Use:   "jiebacut [sentence]",
		Short: "Segment Chinese text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var tk *jieba.Tokenizer
			var err error
			if dictPath != "" {
				tk, err = jieba.NewTokenizer(dictPath)
				if err != nil {
					return err
				}
			} else {
				tk = jieba.NewDefaultTokenizer()
			}

			cut := func(sentence string) []string {
				if search {
					return tk.CutForSearch(sentence, useHMM)
				}
				return tk.Cut(sentence, cutAll, useHMM)
			}

			if len(args) == 1 {
				return printLine(tk, args[0], cut, pos, useHMM)
			}

			lines, err := readLines(os.Stdin)
			if err != nil {
				return err
			}
			if pos {
				for _, line := range lines {
					if err := printLine(tk, line, cut, pos, useHMM); err != nil {
						return err
					}
				}
				return nil
			}
			for _, words := range jieba.CutLines(lines, cut, workers) {
				fmt.Println(strings.Join(words, "/"))
			}
			return nil
		},
	}

	// root.Flags() already returns a *pflag.FlagSet under the hood; naming
	// the type explicitly lets this command reach for pflag-only flag
	// kinds (IntVarP has no cobra-specific wrapper) instead of staying
	// confined to cobra's re-exported subset.
	var flags *pflag.FlagSet = root.Flags()
	flags.BoolVarP(&cutAll, "cut-all", "a", false, "use full mode")
	flags.BoolVarP(&useHMM, "hmm", "H", true, "use HMM for unknown-word recovery")
	flags.BoolVarP(&search, "search", "s", false, "use search mode")
	flags.BoolVarP(&pos, "pos", "p", false, "tag output with parts of speech")
	flags.StringVarP(&dictPath, "dict", "d", "", "path to a dictionary file (default: embedded)")
	flags.IntVarP(&workers, "workers", "w", 1, "goroutine pool size for multi-line stdin input")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printLine(tk *jieba.Tokenizer, sentence string, cut func(string) []string, pos, useHMM bool) error {
	if pos {
		for _, p := range tk.PosCut(sentence, useHMM) {
			fmt.Printf("%s/%s ", p.Word, p.Tag)
		}
		fmt.Println()
		return nil
	}
	fmt.Println(strings.Join(cut(sentence), "/"))
	return nil
}

func readLines(r *os.File) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
