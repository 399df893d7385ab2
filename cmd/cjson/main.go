package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	cjson "github.com/reoring/cjson"
	"github.com/reoring/cjson/codec"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "fmt":
		fmtCmd(os.Args[2:])
	case "min":
		minCmd(os.Args[2:])
	case "get":
		getCmd(os.Args[2:])
	case "yaml":
		yamlCmd(os.Args[2:])
	case "version":
		fmt.Println(cjson.Version())
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "cjson CLI\n\nUsage:\n  cjson fmt [file]            pretty-print JSON (stdin when no file)\n  cjson min [file]            minify JSON\n  cjson get -p /ptr [file]    extract a subtree by JSON Pointer\n  cjson yaml [file]           convert YAML to JSON\n  cjson version               print linked cJSON version")
}

func fmtCmd(args []string) {
	fs := flag.NewFlagSet("fmt", flag.ExitOnError)
	_ = fs.Parse(args)
	data := readInput(fs.Arg(0))
	v, err := cjson.Parse(data)
	if err != nil {
		fatalf("parse: %v", err)
	}
	defer v.Close()
	out, err := v.Print()
	if err != nil {
		fatalf("print: %v", err)
	}
	writeOutput(out)
}

func minCmd(args []string) {
	fs := flag.NewFlagSet("min", flag.ExitOnError)
	_ = fs.Parse(args)
	data := readInput(fs.Arg(0))
	// Validate before minifying; cJSON_Minify itself does not parse.
	v, err := cjson.Parse(data)
	if err != nil {
		fatalf("parse: %v", err)
	}
	_ = v.Close()
	writeOutput(cjson.Minify(data))
}

func getCmd(args []string) {
	fs := flag.NewFlagSet("get", flag.ExitOnError)
	var pointer string
	fs.StringVar(&pointer, "p", "", "RFC 6901 JSON Pointer (for example: /items/2/price)")
	_ = fs.Parse(args)
	data := readInput(fs.Arg(0))
	v, err := cjson.Parse(data)
	if err != nil {
		fatalf("parse: %v", err)
	}
	defer v.Close()
	target, err := v.Lookup(pointer)
	if err != nil {
		fatalf("lookup: %v", err)
	}
	out, err := target.Print()
	if err != nil {
		fatalf("print: %v", err)
	}
	writeOutput(out)
}

// yamlCmd converts YAML documents to JSON, one JSON document per line of
// output for multi-document input.
func yamlCmd(args []string) {
	fs := flag.NewFlagSet("yaml", flag.ExitOnError)
	_ = fs.Parse(args)
	data := readInput(fs.Arg(0))

	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var node any
		if err := dec.Decode(&node); err != nil {
			if err == io.EOF {
				break
			}
			fatalf("yaml: %v", err)
		}
		v, err := codec.FromAny(normalizeYAML(node))
		if err != nil {
			fatalf("convert: %v", err)
		}
		out, err := v.PrintUnformatted()
		_ = v.Close()
		if err != nil {
			fatalf("print: %v", err)
		}
		writeOutput(out)
	}
}

// normalizeYAML rewrites yaml.v3's map[string]any/map[any]any mix into the
// map[string]any shape codec.FromAny accepts.
func normalizeYAML(v any) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[k] = normalizeYAML(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[fmt.Sprint(k)] = normalizeYAML(val)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, el := range x {
			out[i] = normalizeYAML(el)
		}
		return out
	default:
		return v
	}
}

func readInput(path string) []byte {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fatalf("reading stdin: %v", err)
		}
		return data
	}
	data, err := os.ReadFile(path)
	if err != nil {
		fatalf("reading %s: %v", path, err)
	}
	return data
}

func writeOutput(b []byte) {
	os.Stdout.Write(b)
	if len(b) == 0 || b[len(b)-1] != '\n' {
		fmt.Println()
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
