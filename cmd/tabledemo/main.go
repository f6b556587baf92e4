// tabledemo: renders a few example tables straight to stdout.
package main

import (
	"fmt"
	"log"
	"os"

	"texttable"
)

func main() {
	stocks := texttable.New().Separator(" | ")
	if err := stocks.AddRows([][]string{
		{"SYMBOL", "NAME", "PRICE"},
		{"AAPL", "Apple Inc", "178.92"},
		{"GOOGL", "Alphabet", "141.23"},
		{"MSFT", "Microsoft", "378.45"},
		{"TSLA", "Tesla", "248.67"},
	}); err != nil {
		log.Fatal(err)
	}
	if err := stocks.Alignments("llr"); err != nil {
		log.Fatal(err)
	}
	stocks.Dividers(
		texttable.Divider{Index: 1, Char: '-'},
		texttable.Divider{Index: -1, Char: '='},
	)
	if err := stocks.RenderTo(os.Stdout); err != nil {
		log.Fatal(err)
	}

	fmt.Println()

	// centered columns, trimmed trailing whitespace, separator-aware rule
	scores := texttable.New().
		Separator("  ").
		TrimTrailingWhitespace(true).
		AlignColumn(1, texttable.AlignCenter).
		AlignColumn(2, texttable.AlignRight).
		Dividers(texttable.Divider{Index: 1, Char: '-', UseColumnSeparator: true})
	if err := scores.AddRows([][]string{
		{"player", "grade", "points"},
		{"alice", "A", "1024"},
		{"bob", "B+", "96"},
		{"carol", "A-", "512"},
	}); err != nil {
		log.Fatal(err)
	}
	if err := scores.RenderTo(os.Stdout); err != nil {
		log.Fatal(err)
	}
}
