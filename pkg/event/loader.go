package event

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/klokku/calview/pkg/datekey"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Decode reads an event map in YAML or JSON form:
//
//	"17-10-2026":
//	  - time: "09:30"
//	    event: Standup
//	    link: https://meet.example.com/standup
//
// Keys that are not valid date keys are rejected.
func Decode(r io.Reader) (Map, error) {
	events := Map{}
	if err := yaml.NewDecoder(r).Decode(&events); err != nil {
		if err == io.EOF {
			return events, nil
		}
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}
	for key, records := range events {
		if _, err := datekey.FromKey(key, time.UTC); err != nil {
			return nil, err
		}
		if records == nil {
			events[key] = []Record{}
		}
	}
	return events, nil
}

// LoadFile decodes the events file at path. An empty path yields an empty map.
func LoadFile(path string) (Map, error) {
	if path == "" {
		log.Info("No events file configured, starting with an empty calendar")
		return Map{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open events file: %w", err)
	}
	defer f.Close()

	events, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load events from %s: %w", path, err)
	}
	log.Infof("Loaded %d events for %d dates from %s", events.Count(), len(events), path)
	return events, nil
}
