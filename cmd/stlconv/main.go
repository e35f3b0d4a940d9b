package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/erlete/stlconv"
)

var (
	logLine  = color.New(color.Bold, color.FgGreen)
	warnLine = color.New(color.Bold, color.FgYellow)
	errLine  = color.New(color.Bold, color.FgRed)
)

func main() {
	info := flag.Bool("info", false, "print header and triangle count; write nothing")
	validate := flag.Bool("validate", false, "parse only; exit 0 when the input decodes")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		usage()
		os.Exit(1)
	}
	inPath, mode := args[0], args[1]

	if st, err := os.Stat(inPath); err != nil || st.IsDir() {
		fatalf("input file %q does not exist", inPath)
	}
	if !strings.HasSuffix(strings.ToLower(inPath), ".stl") {
		fatalf("input file %q is not a .stl file", inPath)
	}

	var target stlconv.Encoding
	switch strings.ToUpper(mode) {
	case "STLB":
		target = stlconv.EncodingBinary
	case "STLA":
		target = stlconv.EncodingASCII
	default:
		fatalf("output mode must be %q (binary) or %q (ASCII)", "STLB", "STLA")
	}

	data, err := os.ReadFile(inPath)
	if err != nil {
		fatalf("read input: %v", err)
	}

	mesh, detected, err := stlconv.Parse(data)
	if err != nil {
		fatalf("%v", err)
	}

	if *info {
		fmt.Printf("Header:    %q\n", mesh.Header)
		fmt.Printf("Encoding:  %v\n", detected)
		fmt.Printf("Triangles: %d\n", len(mesh.Triangles))
		return
	}
	if *validate {
		return
	}

	outPath := outputName(inPath, target)
	logLine.Printf("[Log] Converting %q (%v) to %q (%v)...\n", inPath, detected, outPath, target)
	if detected == target {
		warnLine.Printf("[Warning] Detected same input and output format (%v).\n", target)
	}

	out, err := stlconv.Serialize(mesh, target)
	if err != nil {
		fatalf("%v", err)
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		fatalf("write output: %v", err)
	}
	logLine.Printf("[Log] File successfully converted to %v format\n", target)
}

// outputName derives "<input minus extension>-converted-<mode>.stl".
func outputName(in string, target stlconv.Encoding) string {
	base := in
	if i := strings.LastIndexByte(in, '.'); i >= 0 {
		base = in[:i]
	}
	return fmt.Sprintf("%s-converted-%v.stl", base, target)
}

func usage() {
	logLine.Println("Usage:")
	warnLine.Println("  stlconv [flags] <input file path> <output mode>")
	logLine.Println("Output modes:")
	warnLine.Println("  STLB: to binary STL file.")
	warnLine.Println("  STLA: to ASCII STL file.")
}

func fatalf(f string, args ...any) {
	errLine.Fprintf(os.Stderr, "[Error] "+f+"\n", args...)
	os.Exit(1)
}
