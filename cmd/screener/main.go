package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/yourusername/curve-screener/pkg/config"
	"github.com/yourusername/curve-screener/pkg/curve"
	"github.com/yourusername/curve-screener/pkg/feed"
)

const (
	appName    = "CurveScreener"
	appVersion = "1.0.0"
)

var (
	// Command line flags
	configFile = flag.String("config", "./config/screener.yaml", "Configuration file path")
	side       = flag.String("side", "", "Open position side: long or short (enables monitor mode)")
	entryExec  = flag.Float64("entry", 0, "Entry execution value in dollars (monitor mode)")
	version    = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("help", false, "Print help and exit")
)

func main() {
	// Parse flags
	flag.Parse()

	if *version {
		fmt.Printf("%s version %s\n", appName, appVersion)
		os.Exit(0)
	}

	if *help {
		printHelp()
		os.Exit(0)
	}

	printBanner()

	// Load configuration
	log.Printf("[Main] Loading configuration from: %s", *configFile)
	cfg, err := config.LoadScreenerConfig(*configFile)
	if err != nil {
		log.Fatalf("[Main] Failed to load config: %v", err)
	}
	log.Println("[Main] ✓ Configuration loaded successfully")

	engine, err := curve.NewEngine(cfg.Engine)
	if err != nil {
		log.Fatalf("[Main] Failed to create engine: %v", err)
	}

	// Fetch both legs
	log.Printf("[Main] Fetching %d days of %s / %s from %s",
		cfg.Feed.WindowDays, cfg.Feed.SymbolA, cfg.Feed.SymbolB, cfg.Feed.BaseURL)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Feed.Timeout)
	defer cancel()

	client := feed.NewClient(cfg.Feed.BaseURL, cfg.Feed.Timeout)
	barsA, barsB, err := client.FetchPair(ctx, cfg.Feed.SymbolA, cfg.Feed.SymbolB, cfg.Feed.WindowDays)
	if err != nil {
		log.Fatalf("[Main] Failed to fetch bars: %v", err)
	}
	log.Printf("[Main] ✓ Fetched %d + %d bars", len(barsA), len(barsB))

	if *side != "" {
		runMonitor(engine, barsA, barsB)
		return
	}
	runScreener(engine, barsA, barsB)
}

func runScreener(engine *curve.Engine, barsA, barsB []curve.PriceBar) {
	snap, err := engine.Evaluate(barsA, barsB)
	if err != nil {
		log.Fatalf("[Main] Evaluation failed: %v", err)
	}

	fmt.Println("\n========================================")
	fmt.Println("Entry Screener")
	fmt.Println("========================================")
	fmt.Printf("Date:        %s\n", snap.Date.Format("2006-01-02"))
	fmt.Printf("Curve:       %.4f\n", snap.Curve)
	fmt.Printf("Z-Score:     %.3f\n", snap.Z)
	fmt.Printf("ATR:         %.4f\n", snap.ATR)
	fmt.Printf("Trend:       %.4f\n", snap.Trend)
	fmt.Printf("Trend Slope: %.4f\n", snap.TrendSlope)
	fmt.Printf("Grind:       %v\n", snap.GrindRegime)
	fmt.Println("----------------------------------------")
	fmt.Printf("Signal:      %s\n", snap.Signal)
	fmt.Println("========================================")
}

func runMonitor(engine *curve.Engine, barsA, barsB []curve.PriceBar) {
	var s curve.Side
	switch *side {
	case "long":
		s = curve.SideLong
	case "short":
		s = curve.SideShort
	default:
		log.Fatalf("[Main] Invalid -side %q: must be long or short", *side)
	}

	pos := curve.Position{Side: s, EntryExec: *entryExec}
	rep, err := engine.Monitor(barsA, barsB, pos)
	if err != nil {
		log.Fatalf("[Main] Monitor failed: %v", err)
	}

	fmt.Println("\n========================================")
	fmt.Println("Position Monitor")
	fmt.Println("========================================")
	fmt.Printf("Side:           %s\n", rep.Side)
	fmt.Printf("Z-Score:        %.3f\n", rep.Z)
	fmt.Printf("Curve ($):      %.2f\n", rep.CurveExec)
	fmt.Printf("Unrealized PnL: %.2f\n", rep.UnrealizedPnL)
	fmt.Println("----------------------------------------")
	fmt.Printf("Take Profit:    %.2f\n", rep.TakeProfit)
	fmt.Printf("Stop Loss:      %.2f\n", rep.StopLoss)
	fmt.Println("========================================")
}

func printBanner() {
	fmt.Println("========================================")
	fmt.Printf("%s v%s\n", appName, appVersion)
	fmt.Println("Treasury Curve Signal Screener")
	fmt.Println("========================================")
}

func printHelp() {
	fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println("\nExamples:")
	fmt.Println("  # Entry screener (no open position)")
	fmt.Println("  ./screener -config config/screener.yaml")
	fmt.Println()
	fmt.Println("  # Monitor an open long flattener entered at $19000")
	fmt.Println("  ./screener -config config/screener.yaml -side long -entry 19000")
	fmt.Println()
}
