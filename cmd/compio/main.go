package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/graeme-hill/compio-go"
	"github.com/spf13/cobra"
)

const VERSION = "0.1.0"

var (
	maxTokens int
	intsOnly  bool
)

func init() {
	dumpCmd.Flags().IntVarP(&maxTokens, "max", "m", 0, "Stop after this many tokens (0 means no limit)")
	sumCmd.Flags().BoolVarP(&intsOnly, "ints", "i", false, "Parse tokens as integers instead of floats")

	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(sumCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "compio",
	Short: "Compio inspects whitespace-delimited token streams",
	Long:  `Compio reads token streams with the same reader contest solutions embed, so an input file can be checked before a solution ever sees it.`,
}

var dumpCmd = &cobra.Command{
	Use:   "dump [file]",
	Short: "Print every token with the kind it parses as",
	Long:  `Print every token from the file (or stdin) along with the narrowest kind it parses as: int, uint, float or word.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		r := compio.New()
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				log.Fatalf("Failed to open %s: %v", args[0], err)
			}
			defer f.Close()
			r = compio.NewReader(f)
		}

		count := 0
		for maxTokens == 0 || count < maxTokens {
			tok, err := r.NextToken()
			if errors.Is(err, compio.ErrEndOfStream) {
				break
			}
			if err != nil {
				log.Fatalf("Failed to read token %d: %v", count+1, err)
			}

			fmt.Printf("%-6s %s\n", classify(tok), tok)
			count++
		}

		fmt.Printf("%d tokens\n", count)
	},
}

// classify names the narrowest kind a token parses as.
func classify(tok string) string {
	if _, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return "int"
	}
	if _, err := strconv.ParseUint(tok, 10, 64); err == nil {
		return "uint"
	}
	if _, err := strconv.ParseFloat(tok, 64); err == nil {
		return "float"
	}
	return "word"
}

var sumCmd = &cobra.Command{
	Use:   "sum [file]",
	Short: "Parse every token as a number and print the total",
	Long:  `Parse every token from the file (or stdin) as a float64 and print the count and total. With --ints each token must be an int64.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		r := compio.New()
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				log.Fatalf("Failed to open %s: %v", args[0], err)
			}
			defer f.Close()
			r = compio.NewReader(f)
		}

		if intsOnly {
			var sum int64
			count := 0
			for {
				n, err := r.NextInt64()
				if errors.Is(err, compio.ErrEndOfStream) {
					break
				}
				if err != nil {
					log.Fatalf("Failed at token %d: %v", count+1, err)
				}
				sum += n
				count++
			}
			fmt.Printf("count=%d sum=%d\n", count, sum)
			return
		}

		var sum float64
		count := 0
		for {
			f, err := r.NextFloat64()
			if errors.Is(err, compio.ErrEndOfStream) {
				break
			}
			if err != nil {
				log.Fatalf("Failed at token %d: %v", count+1, err)
			}
			sum += f
			count++
		}
		fmt.Printf("count=%d sum=%g\n", count, sum)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the compio version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("compio %s\n", VERSION)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
