package main

import (
	"fmt"

	"github.com/phanxgames/tooltip"
)

type sample struct {
	Month string
	Value float64
}

var sampleData = []sample{
	{"Jan", 42}, {"Feb", 55}, {"Mar", 61}, {"Apr", 48},
	{"May", 73}, {"Jun", 90}, {"Jul", 84}, {"Aug", 66},
}

type series struct {
	Name  string
	Color tooltip.Color
	Note  string
}

var legendSeries = []series{
	{"Revenue", tooltip.Color{R: 0.25, G: 0.5, B: 0.85, A: 1}, "monthly, in k€"},
	{"Target", tooltip.Color{R: 0.9, G: 0.45, B: 0.2, A: 1}, "flat 60k€"},
}

const (
	plotMargin  = 40
	legendSpace = 60
	barGap      = 8
)

type chart struct {
	plot   *tooltip.Node
	legend *tooltip.Node
}

// buildChart lays out a title, a bar plot and a legend for a w x h surface.
func buildChart(scene *tooltip.Scene, data []sample, w, h float64) *chart {
	c := &chart{}

	plotW := w - 2*plotMargin
	plotH := h - 2*plotMargin - legendSpace
	c.plot = tooltip.NewContainer("plot")
	c.plot.SetPosition(plotMargin, plotMargin)
	scene.Root().AddChild(c.plot)

	title := tooltip.NewLabel("title", "Revenue 2024 (hover a bar)")
	title.SetPosition(0, -26)
	c.plot.AddChild(title)

	peak := 0.0
	for _, s := range data {
		peak = max(peak, s.Value)
	}
	slot := plotW / float64(len(data))
	for i, s := range data {
		bh := plotH * s.Value / peak
		bar := tooltip.NewRect("bar-"+s.Month, slot-barGap, bh, legendSeries[0].Color)
		bar.AddClass("bar")
		bar.UserData = s
		bar.SetPosition(float64(i)*slot+barGap/2, plotH-bh)
		c.plot.AddChild(bar)
	}

	target := tooltip.NewRect("target", plotW, 2, legendSeries[1].Color)
	target.AddClass("target")
	target.UserData = legendSeries[1]
	target.SetPosition(0, plotH-plotH*60/peak)
	c.plot.AddChild(target)

	c.legend = tooltip.NewContainer("legend")
	c.legend.SetPosition(plotMargin, h-plotMargin-legendSpace/2)
	scene.Root().AddChild(c.legend)
	for i, s := range legendSeries {
		item := tooltip.NewRect("legend-"+s.Name, 110, 18, tooltip.Color{})
		item.AddClass("legend-item")
		item.UserData = s
		item.SetPosition(float64(i)*130, 0)

		swatch := tooltip.NewRect("swatch", 12, 12, s.Color)
		swatch.SetPosition(0, 3)
		swatch.Interactable = false
		label := tooltip.NewLabel("label", s.Name)
		label.SetPosition(18, 1)
		label.Interactable = false
		item.AddChild(swatch)
		item.AddChild(label)
		c.legend.AddChild(item)
	}
	return c
}

// triggers maps chart elements to their tooltip content.
func (c *chart) triggers() []tooltip.Trigger {
	return []tooltip.Trigger{
		{Selector: ".bar", Content: barContent},
		{Selector: ".target", Content: func(d any, _ int, _ []tooltip.Anchor) (tooltip.Content, error) {
			s, ok := d.(series)
			if !ok {
				return tooltip.Suppressed, fmt.Errorf("target datum is %T", d)
			}
			return tooltip.Textf("%s: %s", s.Name, s.Note), nil
		}},
		{Selector: ".legend-item", Content: legendContent},
		{Selector: "#title"},
	}
}

func barContent(d any, index int, candidates []tooltip.Anchor) (tooltip.Content, error) {
	s, ok := d.(sample)
	if !ok {
		return tooltip.Suppressed, fmt.Errorf("bar datum is %T", d)
	}
	return tooltip.Textf("%s: %.0fk€\nbar %d of %d", s.Month, s.Value, index+1, len(candidates)), nil
}

// legendContent renders a small card: a swatch next to the series name and
// its note.
func legendContent(d any, _ int, _ []tooltip.Anchor) (tooltip.Content, error) {
	s, ok := d.(series)
	if !ok {
		return tooltip.Suppressed, fmt.Errorf("legend datum is %T", d)
	}
	card := tooltip.NewContainer("legend-card")
	swatch := tooltip.NewRect("swatch", 24, 24, s.Color)
	name := tooltip.NewLabel("name", s.Name)
	name.SetPosition(32, 0)
	note := tooltip.NewLabel("note", s.Note)
	note.SetPosition(32, 16)
	card.AddChild(swatch)
	card.AddChild(name)
	card.AddChild(note)
	return tooltip.NodeContent(card), nil
}
