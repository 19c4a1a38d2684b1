package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

type recordedText struct {
	r     Rect
	lines []string
	color tcell.Color
}

type recordedGauge struct {
	r       Rect
	percent int
	color   tcell.Color
}

type recordedBox struct {
	r     Rect
	title string
	color tcell.Color
}

// recordingSurface keeps every primitive a screen draws.
type recordingSurface struct {
	w, h   int
	boxes  []recordedBox
	texts  []recordedText
	gauges []recordedGauge
	fills  []Rect
}

func newRecordingSurface(w, h int) *recordingSurface {
	return &recordingSurface{w: w, h: h}
}

func (s *recordingSurface) Size() (int, int) { return s.w, s.h }

func (s *recordingSurface) Box(r Rect, title string, color tcell.Color) {
	s.boxes = append(s.boxes, recordedBox{r, title, color})
}

func (s *recordingSurface) Text(r Rect, lines []string, _ int, color tcell.Color) {
	s.texts = append(s.texts, recordedText{r, lines, color})
}

func (s *recordingSurface) Gauge(r Rect, percent int, color tcell.Color) {
	s.gauges = append(s.gauges, recordedGauge{r, percent, color})
}

func (s *recordingSurface) Fill(r Rect, _ tcell.Color) {
	s.fills = append(s.fills, r)
}

// findText returns the first drawn block with a line containing sub.
func (s *recordingSurface) findText(sub string) (recordedText, bool) {
	for _, t := range s.texts {
		for _, l := range t.lines {
			if strings.Contains(l, sub) {
				return t, true
			}
		}
	}
	return recordedText{}, false
}

func (s *recordingSurface) hasBox(title string) bool {
	for _, b := range s.boxes {
		if b.title == title {
			return true
		}
	}
	return false
}
