// Command qrsvg encodes text (a URL, typically) into a QR Code and
// emits it as an SVG document, or as a terminal preview when standard
// output is a TTY.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"

	"github.com/popkit/qrsvg"
)

var g = struct {
	dark bool   // dark theme
	term bool   // force terminal preview
	fn   string // output filename
	size int    // SVG pixels per module
}{
	size: qrsvg.DefaultModuleSize,
}

func main() {
	log.SetFlags(0)

	getopt.SetParameters("[text ...]")
	getopt.FlagLong(&g.dark, "dark", 'd',
		"dark theme: light modules on a dark background")
	getopt.FlagLong(&g.term, "terminal", 't',
		"render to the terminal instead of emitting SVG")
	fno := getopt.FlagLong(&g.fn, "output", 'o',
		`output file, or "-" for standard output`, "file")
	getopt.FlagLong(&g.size, "module-size", 's',
		"SVG pixels per QR module", "px")
	getopt.Parse()

	var text string
	if args := getopt.Args(); len(args) != 0 {
		text = strings.Join(args, " ")
	} else {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalln(err)
		}

		text = strings.TrimSuffix(string(b), "\n")
	}

	code, err := qrsvg.New(text)
	if err != nil {
		log.Fatalln(err)
	}

	code.ModuleSize = g.size

	// With no -o and a terminal on standard output, show the preview
	// rather than dumping markup at the user.
	if g.term || !fno.Seen() && isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Print(code.String())
		return
	}

	w := os.Stdout
	if g.fn != "" && g.fn != "-" {
		f, err := os.Create(g.fn)
		if err != nil {
			log.Fatalln(err)
		}

		w = f
	}

	code.WriteSVG(w, g.dark)

	if w != os.Stdout {
		if err := w.Close(); err != nil {
			log.Fatalln(err)
		}
	}
}
