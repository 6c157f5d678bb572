package metrics

import (
	"sort"
	"sync"
)

// Request channels recorded by Tally.RecordLookup.
const (
	ChannelKeypad = "keypad"
	ChannelVoice  = "voice"
	ChannelACS    = "acs"
	ChannelBAP    = "bap"
)

// DetectionCount is the number of classifications that resolved to one
// intent.
type DetectionCount struct {
	Intent  string
	Service string
	Count   uint64
}

type detectionKey struct {
	intent  string
	service string
}

// Tally accumulates request counters in memory. It satisfies
// DetectionStatsProvider and LookupStatsProvider and is safe for
// concurrent use.
type Tally struct {
	mu         sync.Mutex
	detections map[detectionKey]uint64
	lookups    map[string]uint64
}

// NewTally creates an empty Tally.
func NewTally() *Tally {
	return &Tally{
		detections: make(map[detectionKey]uint64),
		lookups:    make(map[string]uint64),
	}
}

// RecordDetection counts one classification result.
func (t *Tally) RecordDetection(intent, service string) {
	t.mu.Lock()
	t.detections[detectionKey{intent: intent, service: service}]++
	t.mu.Unlock()
}

// RecordLookup counts one response lookup on channel.
func (t *Tally) RecordLookup(channel string) {
	t.mu.Lock()
	t.lookups[channel]++
	t.mu.Unlock()
}

// DetectionCounts returns a snapshot ordered by intent then service.
func (t *Tally) DetectionCounts() []DetectionCount {
	t.mu.Lock()
	out := make([]DetectionCount, 0, len(t.detections))
	for k, n := range t.detections {
		out = append(out, DetectionCount{Intent: k.intent, Service: k.service, Count: n})
	}
	t.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Intent != out[j].Intent {
			return out[i].Intent < out[j].Intent
		}
		return out[i].Service < out[j].Service
	})
	return out
}

// LookupCounts returns a snapshot of lookups per channel.
func (t *Tally) LookupCounts() map[string]uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make(map[string]uint64, len(t.lookups))
	for k, v := range t.lookups {
		out[k] = v
	}
	return out
}
