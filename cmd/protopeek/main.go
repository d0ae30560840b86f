// Command protopeek decodes a protocol-buffer wire payload without a
// .proto schema and prints the resulting field tree.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/protopeek/protopeek"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("protopeek", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		help      bool
		showVer   bool
		depth     int
		force     bool
		style     string
		decodeRaw bool
	)

	fs.BoolVar(&help, "h", false, "show help")
	fs.BoolVar(&help, "help", false, "show help")
	fs.BoolVar(&showVer, "v", false, "show version")
	fs.BoolVar(&showVer, "version", false, "show version")
	fs.IntVar(&depth, "d", 2, "packed depth")
	fs.IntVar(&depth, "depth", 2, "packed depth")
	fs.BoolVar(&force, "f", false, "render even on decode failure")
	fs.BoolVar(&force, "force", false, "render even on decode failure")
	fs.StringVar(&style, "s", "human", "render style: human or cpp")
	fs.StringVar(&style, "style", "human", "render style: human or cpp")
	fs.BoolVar(&decodeRaw, "decode_raw", false, "read the payload from standard input instead of a file")

	if err := fs.Parse(args); err != nil {
		usage()
		return -1
	}

	if help {
		usage()
		return 0
	}
	if showVer {
		fmt.Println("protopeek", version)
		return 0
	}

	// Numeric 1 is a documented alias for cpp (out_style enum: human=0,
	// cpp=1); any other value falls back to human rather than erroring.
	if style == "1" {
		style = "cpp"
	}
	if style != "cpp" {
		style = "human"
	}

	var data []byte
	var err error

	// os.Stdin and os.ReadFile already read raw bytes with no text-mode
	// newline translation on any Go-supported platform, so there is no
	// Go equivalent of protoc.cpp's SET_STDIN_BINARY_MODE needed here.
	if decodeRaw {
		data, err = io.ReadAll(os.Stdin)
	} else {
		rest := fs.Args()
		if len(rest) != 1 {
			usage()
			return -1
		}
		data, err = os.ReadFile(rest[0])
	}
	if err != nil {
		log.Printf("protopeek: %v", err)
		return -1
	}

	root, _, _, decErr := protopeek.Decode(data, depth)
	if decErr != nil && !force {
		log.Printf("protopeek: %v", decErr)
		return -1
	}

	var out string
	if style == "cpp" {
		out = protopeek.RenderLiteral(root, 2, 0, -1, false)
	} else {
		out = protopeek.RenderHuman(root, 2, 0, -1, 2, true)
	}
	fmt.Print(out)

	if decErr != nil {
		log.Printf("protopeek: decode error: %v", decErr)
		return -1
	}
	return 0
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: protopeek [-h] [-v] [-d N] [-f] [-s human|cpp] [--decode_raw] [file]")
}
