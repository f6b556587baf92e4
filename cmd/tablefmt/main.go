// tablefmt aligns delimited text into fixed-width columns.
package main

import "texttable/internal/cli"

func main() {
	cli.DoCLI()
}
