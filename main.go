package main

import (
	"log"
	"os"
	"strings"
	"time"

	"fyne.io/fyne/v2"

	"GeoBoard/internal/net"
	"GeoBoard/internal/state"
	"GeoBoard/internal/ui"
)

func main() {
	args := os.Args
	if len(args) > 1 && strings.HasPrefix(args[1], net.URLScheme) {
		runViewer(args[1])
	} else {
		runHost()
	}
}

// runHost opens the interactive board and shares it on the LAN.
func runHost() {
	log.Println("Starting as HOST")
	figure := state.NewFigure()

	host := net.NewHost(figure)
	figure.OnOp = host.Broadcast
	defer host.Close()

	fw := ui.NewFigureWidget(figure, false)

	go func() {
		if err := host.Start(net.DefaultPort); err != nil {
			log.Printf("Session host stopped: %v", err)
			fw.SetStatus("Sharing unavailable: " + err.Error())
		}
	}()

	shareLink := ""
	if ip, err := net.OutgoingIP(); err == nil {
		shareLink = net.ShareLink(ip, net.DefaultPort)
	}
	ui.RunApp(shareLink, fw)
}

// runViewer follows a hosted session read-only. A bare "geoboard://"
// argument discovers the session over mDNS instead.
func runViewer(link string) {
	log.Println("Starting as VIEWER")
	addr := strings.TrimPrefix(link, net.URLScheme)
	addr = strings.TrimSuffix(addr, "/")

	figure := state.NewFigure()
	fw := ui.NewFigureWidget(figure, true)

	// Ops arrive on the session goroutine; repaint on the UI thread.
	figure.OnChange = func() {
		fyne.Do(fw.Refresh)
	}

	go func() {
		time.Sleep(500 * time.Millisecond) // give the UI time to launch

		if addr == "" {
			fw.SetStatus("Searching for a session on the local network...")
			discovered, err := net.Discover()
			if err != nil {
				log.Printf("Session discovery failed: %v", err)
				fw.SetStatus("No session found: " + err.Error())
				return
			}
			addr = discovered
			log.Printf("Discovered session at %s", addr)
		}

		if err := net.ConnectViewer(addr, figure, fw.SetStatus); err != nil {
			log.Printf("Viewer session ended: %v", err)
		}
	}()

	ui.RunApp("", fw)
}
