// Command timebasegen derives the timebase lookup tables from a YAML
// description of the supported clocks and writes them as Go source.
//
//	timebasegen -config timebasegen.yaml -out tables_gen.go
//	timebasegen -config timebasegen.yaml -firmware -out tables_firmware_gen.go
//
// The first form writes every table for host builds; -firmware writes the
// entries of the config's firmware clock alone for the TinyGo AVR build.
package main

import (
	"flag"
	"log"
	"os"

	"tinytime/internal/genconfig"
)

var (
	configPath = flag.String("config", "timebasegen.yaml", "Generator config file")
	outPath    = flag.String("out", "tables_gen.go", "Output file")
	check      = flag.Bool("check", false, "Fail if the output file is out of date instead of writing it")
	firmware   = flag.Bool("firmware", false, "Generate only the firmware clock's entries")
)

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("timebasegen: ")

	cfg, err := genconfig.Load(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if err := genconfig.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}

	src, err := render(cfg, *firmware)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	if *check {
		old, err := os.ReadFile(*outPath)
		if err != nil {
			log.Fatalf("check: %v", err)
		}
		if string(old) != string(src) {
			log.Fatalf("%s is out of date; run go generate", *outPath)
		}
		return
	}

	if err := os.WriteFile(*outPath, src, 0o644); err != nil {
		log.Fatalf("write: %v", err)
	}
	if *firmware {
		log.Printf("wrote %s: %d Hz / %d", *outPath, cfg.Firmware.CPUHz, cfg.Firmware.Prescale)
		return
	}
	log.Printf("wrote %s: %d tick rates, %d CPU clocks", *outPath, len(cfg.TickRates()), len(cfg.CPUHz))
}
