// Command device-sim posts synthetic panel readings to the ingestion
// endpoint, standing in for the ESP32 firmware during local dev.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/hauraqrrta/smartmosspanel-app/models"
)

func main() {
	url := flag.String("url", "http://localhost:8080/api/receive-data", "ingestion endpoint")
	panelID := flag.String("panel", models.DefaultPanelID, "panel id to report as")
	interval := flag.Duration("interval", 5*time.Second, "delay between readings")
	count := flag.Int("count", 0, "number of readings to send (0 = forever)")
	flag.Parse()

	sent := 0
	for {
		reading := randomReading(*panelID)

		if err := post(*url, reading); err != nil {
			fmt.Printf("An error occurred: %v\n", err)
		} else {
			fmt.Printf("Sent: %+v\n", reading)
		}

		sent++
		if *count > 0 && sent >= *count {
			return
		}

		time.Sleep(*interval)
	}
}

func randomReading(panelID string) map[string]interface{} {
	soil := models.SoilDry
	if rand.Intn(2) == 0 {
		soil = models.SoilWet
	}

	pump := models.StatusOff
	if soil == models.SoilDry {
		pump = models.StatusOn
	}

	return map[string]interface{}{
		"panelId":      panelID,
		"temperature":  14 + rand.Float64()*(32-14),
		"humidity":     rand.Float64() * 100,
		"soilMoisture": soil,
		"pumpStatus":   pump,
		"fanStatus":    models.StatusOff,
		"pollution":    rand.Float64() * 150,
	}
}

func post(url string, body map[string]interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return nil
}
