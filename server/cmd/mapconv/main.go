// Command mapconv converts a level to the binary .map format.
package main

import (
	"bufio"
	"flag"
	"log"
	"os"

	"github.com/automoto/robots/server/core"
	"github.com/automoto/robots/shared/leveldata"
)

func main() {
	in := flag.String("in", "", "Level to convert (.tmx or .map)")
	out := flag.String("out", "", "Output .map file")
	ppu := flag.Float64("ppu", core.DefaultServerConfig().PixelsPerUnit, "TMX pixels per world unit")
	flag.Parse()

	if *in == "" || *out == "" {
		flag.Usage()
		os.Exit(2)
	}

	name, level, err := core.LoadLevel(*in, *ppu)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *out, err)
	}
	w := bufio.NewWriter(f)
	if err := leveldata.EncodeMapRaw(w, level.Boxes); err != nil {
		log.Fatalf("Failed to encode %s: %v", name, err)
	}
	if err := w.Flush(); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to close %s: %v", *out, err)
	}
	log.Printf("Wrote %d boxes from %s to %s", len(level.Boxes), name, *out)
}
