// Command qrgen encodes a payload into a QR code symbol and prints it to
// the terminal. It is a thin collaborator around the qrforge core: argument
// parsing, terminal rendering, and (optionally) opening a browser preview
// live here, not in the library.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/browser"

	"github.com/arqen/qrforge"
)

func main() {
	version := flag.Int("version", 0, "pin a specific QR version (1-40); 0 auto-selects the smallest that fits")
	open := flag.Bool("open", false, "render an HTML preview and open it in the default browser")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: qrgen [flags] <payload> [L|M|Q|H]\n\n")
		fmt.Fprintf(os.Stderr, "Encode payload as a QR code and print the module matrix.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	payload := flag.Arg(0)
	levelArg := ""
	if flag.NArg() >= 2 {
		levelArg = flag.Arg(1)
	}

	ecLevel, err := qrforge.ECLevelForLetter(levelArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "qrgen: %v\n", err)
		os.Exit(1)
	}

	sym, err := qrforge.GenerateWithOptions([]byte(payload), ecLevel, qrforge.Options{Version: *version})
	if err != nil {
		fmt.Fprintf(os.Stderr, "qrgen: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(render(sym))

	if *open {
		if err := openPreview(sym); err != nil {
			fmt.Fprintf(os.Stderr, "qrgen: open preview: %v\n", err)
			os.Exit(1)
		}
	}
}

// render draws sym as two-characters-per-module block art with a 4-module
// quiet zone. The core guarantees no quiet zone, so the renderer supplies
// the standard's minimum border itself.
func render(sym *qrforge.Symbol) string {
	const quietZone = 4
	var sb strings.Builder
	for row := -quietZone; row < sym.Side+quietZone; row++ {
		for col := -quietZone; col < sym.Side+quietZone; col++ {
			dark := row >= 0 && row < sym.Side && col >= 0 && col < sym.Side && sym.Dark(row, col)
			if dark {
				sb.WriteString("##")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// openPreview writes sym as an inline SVG embedded in a throwaway HTML page
// and opens it with the system default browser.
func openPreview(sym *qrforge.Symbol) error {
	f, err := os.CreateTemp("", "qrgen-*.html")
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteString(renderHTML(sym)); err != nil {
		return err
	}
	return browser.OpenFile(f.Name())
}

func renderHTML(sym *qrforge.Symbol) string {
	const quietZone = 4
	side := sym.Side + 2*quietZone
	var svg strings.Builder
	fmt.Fprintf(&svg, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`, side, side, side*4, side*4)
	svg.WriteString(`<rect width="100%" height="100%" fill="white"/>`)
	for row := 0; row < sym.Side; row++ {
		for col := 0; col < sym.Side; col++ {
			if sym.Dark(row, col) {
				fmt.Fprintf(&svg, `<rect x="%d" y="%d" width="1" height="1" fill="black"/>`, col+quietZone, row+quietZone)
			}
		}
	}
	svg.WriteString(`</svg>`)

	return fmt.Sprintf(`<!DOCTYPE html><html><head><title>qrgen preview</title></head>`+
		`<body style="display:flex;align-items:center;justify-content:center;height:100vh;margin:0;background:#eee">%s</body></html>`,
		svg.String())
}
