// Package cli implements the command-line interface of tablefmt.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"texttable"
	"texttable/internal/profile"
)

// die prints a fatal error to stderr and exits non-zero.
func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "tablefmt: "+format+"\n", args...)
	os.Exit(1)
}

// defaultConfigPath returns the profiles file location used when
// --config is not given.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "tablefmt", "profiles.toml")
}

// DoCLI reads the command-line arguments, formats the input and exits
// the process on failure.
func DoCLI() {
	var (
		delimiter   string
		separator   string
		alignSpec   string
		trim        bool
		dividers    []string
		profileName string
		configPath  string
		columns     int
	)

	rootCmd := &cobra.Command{
		Use:   "tablefmt [file]",
		Short: "Align delimited text into fixed-width columns",
		Long: `tablefmt reads delimiter-separated rows from a file or stdin and
writes them back as an aligned fixed-width table. Every input row must
have the same number of fields.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			var in io.Reader = os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					die("%s", err)
				}
				defer f.Close()
				in = f
			}

			t := texttable.NewWithColumns(columns)

			if profileName != "" {
				path := configPath
				if path == "" {
					path = defaultConfigPath()
				}
				profiles, err := profile.Load(path)
				if err != nil {
					die("%s", err)
				}
				p, ok := profiles[profileName]
				if !ok {
					die("no profile %q in %s", profileName, path)
				}
				if err := p.Apply(t); err != nil {
					die("profile %q: %s", profileName, err)
				}
			}

			// explicit flags override the profile
			if cmd.Flags().Changed("separator") {
				t.Separator(separator)
			}
			if cmd.Flags().Changed("trim") {
				t.TrimTrailingWhitespace(trim)
			}
			if alignSpec != "" {
				if err := t.Alignments(alignSpec); err != nil {
					die("%s", err)
				}
			}
			if len(dividers) > 0 {
				ds := make([]texttable.Divider, 0, len(dividers))
				for _, spec := range dividers {
					d, err := profile.ParseDivider(spec)
					if err != nil {
						die("%s", err)
					}
					ds = append(ds, d)
				}
				t.Dividers(ds...)
			}

			if err := readRows(t, in, delimiter); err != nil {
				die("%s", err)
			}

			printOrPage(t.String())
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&delimiter, "delimiter", "d", "\t", "input field delimiter")
	flags.StringVarP(&separator, "separator", "s", " ", "output column separator")
	flags.StringVarP(&alignSpec, "align", "a", "", `positional alignment characters, e.g. "lrc"`)
	flags.BoolVar(&trim, "trim", false, "suppress trailing whitespace on each line")
	flags.StringArrayVar(&dividers, "divider", nil, "divider spec INDEX:CHAR[:sep], repeatable")
	flags.StringVar(&profileName, "profile", "", "formatting profile to apply")
	flags.StringVar(&configPath, "config", "", "profiles file (default: tablefmt/profiles.toml in the user config dir)")
	flags.IntVar(&columns, "columns", 0, "expected column count (default: taken from the first row)")

	if err := rootCmd.Execute(); err != nil {
		die("%s", err)
	}
}

// readRows splits each input line on the delimiter and feeds it into
// the table. A ragged row surfaces the table's column-count error with
// the offending line number.
func readRows(t *texttable.Table, r io.Reader, delimiter string) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		if err := t.AddRow(strings.Split(sc.Text(), delimiter)...); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	return sc.Err()
}

// printOrPage writes the rendered table to stdout, or through 'less -S'
// when stdout is a terminal narrower than the table and less is
// installed.
func printOrPage(text string) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		fmt.Print(text)
		return
	}
	width := 0
	for _, line := range strings.Split(text, "\n") {
		if n := utf8.RuneCountInString(line); n > width {
			width = n
		}
	}
	termWidth, _, err := term.GetSize(fd)
	if err != nil || width < termWidth {
		fmt.Print(text)
		return
	}
	less, err := exec.LookPath("less")
	if err != nil {
		fmt.Print(text)
		return
	}
	cmd := exec.Command(less, "-S")
	cmd.Stdin = strings.NewReader(text)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		die("running pager: %s", err)
	}
}
