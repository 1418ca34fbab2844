// Package quotes serves the short motivational lines shown after each
// completed countdown.
package quotes

import (
	_ "embed"
	"strings"
	"sync"
)

//go:embed quotes.txt
var rawQuotes string

// Rotation cycles through the embedded quote list in order.
type Rotation struct {
	mu    sync.Mutex
	list  []string
	index int
}

// NewRotation builds a rotation over the embedded quotes.
func NewRotation() *Rotation {
	return &Rotation{list: parse(rawQuotes)}
}

// Current returns the quote at the rotation position.
func (rotation *Rotation) Current() string {
	rotation.mu.Lock()
	defer rotation.mu.Unlock()
	if len(rotation.list) == 0 {
		return ""
	}
	return rotation.list[rotation.index%len(rotation.list)]
}

// Next advances the rotation and returns the new quote.
func (rotation *Rotation) Next() string {
	rotation.mu.Lock()
	defer rotation.mu.Unlock()
	if len(rotation.list) == 0 {
		return ""
	}
	rotation.index = (rotation.index + 1) % len(rotation.list)
	return rotation.list[rotation.index]
}

// Len reports how many quotes are available.
func (rotation *Rotation) Len() int {
	rotation.mu.Lock()
	defer rotation.mu.Unlock()
	return len(rotation.list)
}

func parse(raw string) []string {
	var list []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		list = append(list, line)
	}
	return list
}
