// WiFi Scanner Suite entry point.
//
// Without flags an interactive menu drives the workflows; the flags give
// direct access to one-shot scanning, auto-connect and continuous mode.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"github.com/Hessevalentino/WSS/pkg/config"
	"github.com/Hessevalentino/WSS/pkg/wifi"
)

func main() {
	var (
		scanFlag       = flag.Bool("scan", false, "One-time scanning")
		autoFlag       = flag.Bool("auto", false, "Auto-connect to open networks")
		continuousFlag = flag.Bool("continuous", false, "Continuous scanning")
		noBanner       = flag.Bool("no-banner", false, "Skip the startup banner")
		verbose        = flag.Bool("verbose", false, "Enable debug logging")
		configPath     = flag.String("config", config.DefaultFile, "Path to the settings file")
	)
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Warn("settings file unreadable, using defaults")
	}

	if !*noBanner {
		printBanner()
	}

	app, err := newApp(cfg, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, renderError(err.Error()))
		os.Exit(1)
	}
	if !app.checkDependencies() {
		os.Exit(1)
	}

	switch {
	case *scanFlag:
		ctx, stop := interruptContext()
		networks := app.scanOnce(ctx)
		stop()
		printNetworkTable(networks)
		printBandStats(networks)
	case *autoFlag:
		ctx, stop := interruptContext()
		app.autoConnect(ctx)
		stop()
	case *continuousFlag:
		ctx, stop := interruptContext()
		app.continuousScan(ctx)
		stop()
	default:
		runMenuLoop(app)
	}
}

// runMenuLoop shows the menu until the user exits.
func runMenuLoop(app *App) {
	for {
		action := runMenu()

		ctx, stop := interruptContext()
		switch action {
		case actionScan:
			networks := runScanWithSpinner(func() []wifi.Network {
				return app.scanOnce(ctx)
			})
			printNetworkTable(networks)
			printBandStats(networks)
		case actionContinuous:
			app.continuousScan(ctx)
		case actionAuto:
			app.autoConnect(ctx)
		case actionDiscover:
			app.discoverDevices(ctx)
		case actionStats:
			app.showStatistics()
		case actionExport:
			app.exportData()
		case actionSettings:
			app.showSettings()
		case actionLogs:
			app.showLogs()
		case actionQuit:
			stop()
			fmt.Println("Goodbye!")
			return
		}
		stop()

		if action != actionContinuous {
			promptLine("\nPress Enter to continue...")
		}
	}
}

func interruptContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}
