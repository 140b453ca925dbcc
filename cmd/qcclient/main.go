// Command qcclient sends a sample analyze request to a running VO QC
// service and prints the response. Useful for smoke-testing a local
// instance with the mock recognizer.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"vo-qc-service/internal/models"
)

func main() {
	addr := flag.String("addr", "http://localhost:5000", "service base URL")
	audio := flag.String("audio", "", "path to an audio file (repeatable via comma)")
	flag.Parse()

	req := models.AnalyzeRequest{
		ScriptSentences: []string{
			"Hello world.",
			"Good morning.",
		},
	}

	if *audio != "" {
		req.AudioFiles = append(req.AudioFiles, models.AudioFileRef{Path: *audio, Index: 0})
	} else {
		// The mock recognizer ignores file contents, any readable path works.
		tmp, err := os.CreateTemp("", "qcclient-*.wav")
		if err != nil {
			log.Fatalf("failed to create temp audio file: %v", err)
		}
		defer os.Remove(tmp.Name())
		tmp.Close()
		req.AudioFiles = append(req.AudioFiles, models.AudioFileRef{Path: tmp.Name(), Index: 0})
	}

	body, err := json.Marshal(req)
	if err != nil {
		log.Fatalf("failed to marshal request: %v", err)
	}

	client := &http.Client{Timeout: 10 * time.Minute}
	resp, err := client.Post(*addr+"/v1/analyze", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	log.Printf("Status: %s", resp.Status)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("failed to read response: %v", err)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		log.Printf("Response: %s", raw)
		return
	}
	log.Printf("Response:\n%s", pretty.String())
}
