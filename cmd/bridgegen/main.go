package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/bridgegen/bridge"
	"github.com/wippyai/bridgegen/bridgefile"
	"github.com/wippyai/bridgegen/cheader"
)

func main() {
	var (
		bridgePath  = flag.String("bridge", "", "Path to bridge definition (TOML)")
		outPath     = flag.String("o", "", "Write the generated header to a file (default stdout)")
		list        = flag.Bool("list", false, "List declared symbols and exit")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *bridgePath == "" {
		fmt.Fprintln(os.Stderr, "Usage: bridgegen -bridge <file.toml> [-o header.h]")
		fmt.Fprintln(os.Stderr, "       bridgegen -bridge <file.toml> -list")
		fmt.Fprintln(os.Stderr, "       bridgegen -bridge <file.toml> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		l, err := zap.NewDevelopment()
		if err == nil {
			bridgefile.SetLogger(l.Named("bridgefile"))
			cheader.SetLogger(l.Named("cheader"))
		}
	}

	mod, err := bridgefile.Load(*bridgePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(mod, *bridgePath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *list {
		listSymbols(mod)
		return
	}

	header, err := cheader.Generate(mod)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *outPath == "" {
		fmt.Print(header)
		return
	}
	if err := os.WriteFile(*outPath, []byte(header), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func listSymbols(m *bridge.Module) {
	fmt.Printf("Module: %s\n", m.Name)

	fmt.Printf("\nEntities:\n")
	for _, ent := range m.Entities {
		switch e := ent.(type) {
		case bridge.ValueType:
			fmt.Printf("  struct %s (%d fields)\n", e.Name, len(e.Fields))
		case bridge.OpaqueHandle:
			fmt.Printf("  handle %s (%s)\n", e.Name, e.Owner)
			if e.Owner == bridge.OwnerNative {
				fmt.Printf("    %s\n", bridge.FreeName(e.Name))
			}
		}
	}

	fmt.Printf("\nFunctions:\n")
	for i := range m.Functions {
		fn := &m.Functions[i]
		fmt.Printf("  %s (%s)\n", plainSignature(fn), fn.LinkName())
	}
}
