package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/optsim/go-optics-sim/pkg/simulator"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "Path to a TOML simulation config (defaults used when empty)")
	mode := flag.String("mode", "", "Source mode override: 'fan' or 'cone'")
	outputDir := flag.String("output", "output", "Directory for JSON results")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Optics Simulator")
		fmt.Println("Usage: optics-sim [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Traces a batch of light rays through a water surface and")
		fmt.Println("spherical obstacles, and writes the resulting ray paths,")
		fmt.Println("per-obstacle heatmaps and stats as JSON.")
		fmt.Println()
		fmt.Println("Output will be saved to <output>/simulation_<timestamp>.json")
		return
	}

	cfg, err := loadConfig(*configPath, *mode)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Running %s simulation (%d obstacles, interface at %.1f)...\n",
		cfg.Mode, len(cfg.Obstacles), cfg.InterfaceLevel)

	sim := simulator.New(cfg)

	startTime := time.Now()
	result := sim.Update()
	elapsed := time.Since(startTime)

	fmt.Printf("Traced %d rays in %v\n", result.Stats.RayCount, elapsed)
	fmt.Printf("Path points: %d, escaped: %d, intensity min %.3f mean %.3f\n",
		result.Stats.PathPoints, result.Stats.EscapedRays,
		result.Stats.MinIntensity, result.Stats.MeanIntensity)

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(*outputDir, fmt.Sprintf("simulation_%s.json", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		fmt.Printf("Error writing JSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Results saved as %s\n", filename)
}

// loadConfig builds the run configuration from the optional config file
// and the mode override flag.
func loadConfig(path, modeOverride string) (simulator.Config, error) {
	cfg := simulator.DefaultConfig()
	if path != "" {
		parsed, err := simulator.ParseConfig(path)
		if err != nil {
			return simulator.Config{}, err
		}
		cfg = parsed
	}
	if modeOverride != "" {
		cfg.Mode = modeOverride
	}
	if err := cfg.Validate(); err != nil {
		return simulator.Config{}, err
	}
	return cfg, nil
}
