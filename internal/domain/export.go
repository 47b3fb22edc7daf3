package domain

import (
	"encoding/json"
	"fmt"
	"html"
	"math"
	"strings"
)

// Export formats.
const (
	FormatText = "txt"
	FormatSRT  = "srt"
	FormatVTT  = "vtt"
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatHTML = "html"
)

// ExportFormats lists the supported export encodings.
var ExportFormats = []string{FormatText, FormatSRT, FormatVTT, FormatCSV, FormatJSON, FormatHTML}

// Export renders the project in the named format.
func Export(p Project, format string) (string, error) {
	switch format {
	case FormatText:
		return p.ToText(), nil
	case FormatSRT:
		return p.ToSRT(), nil
	case FormatVTT:
		return p.ToVTT(), nil
	case FormatCSV:
		return p.ToCSV(), nil
	case FormatJSON:
		return p.ToJSON()
	case FormatHTML:
		return p.ToHTML(), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// ToText renders "[start - end] SpeakerName" header lines with the text
// below, one blank line between segments.
func (p Project) ToText() string {
	var blocks []string
	for _, seg := range p.Segments {
		blocks = append(blocks, fmt.Sprintf("[%s - %s] %s\n%s",
			seg.Start, seg.End, p.SpeakerName(seg.SpeakerID), seg.Text))
	}
	return strings.Join(blocks, "\n\n")
}

// ToSRT renders numbered SubRip cues with comma-millisecond timestamps.
func (p Project) ToSRT() string {
	var blocks []string
	for i, seg := range p.Segments {
		blocks = append(blocks, fmt.Sprintf("%d\n%s --> %s\n%s: %s",
			i+1,
			formatStamp(seg.StartSeconds(), ','),
			formatStamp(seg.EndSeconds(), ','),
			p.SpeakerName(seg.SpeakerID), seg.Text))
	}
	return strings.Join(blocks, "\n\n")
}

// ToVTT renders a WebVTT document with dot-millisecond timestamps.
func (p Project) ToVTT() string {
	var sb strings.Builder
	sb.WriteString("WEBVTT\n\n")
	var blocks []string
	for _, seg := range p.Segments {
		blocks = append(blocks, fmt.Sprintf("%s --> %s\n%s: %s",
			formatStamp(seg.StartSeconds(), '.'),
			formatStamp(seg.EndSeconds(), '.'),
			p.SpeakerName(seg.SpeakerID), seg.Text))
	}
	sb.WriteString(strings.Join(blocks, "\n\n"))
	return sb.String()
}

// ToCSV renders a header plus one quoted row per segment. Times are bare,
// names and text are quoted with embedded quotes doubled.
func (p Project) ToCSV() string {
	var sb strings.Builder
	sb.WriteString("start,end,speaker,text\n")
	for _, seg := range p.Segments {
		sb.WriteString(fmt.Sprintf("%s,%s,\"%s\",\"%s\"\n",
			seg.Start, seg.End,
			csvEscape(p.SpeakerName(seg.SpeakerID)),
			csvEscape(seg.Text)))
	}
	return sb.String()
}

// ToJSON renders the full project as indented JSON.
func (p Project) ToJSON() (string, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal project: %w", err)
	}
	return string(data), nil
}

// ToHTML renders a standalone HTML transcript with speaker colors.
func (p Project) ToHTML() string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	sb.WriteString(fmt.Sprintf("<title>%s</title>\n", html.EscapeString(p.Meta.Title)))
	sb.WriteString("</head>\n<body>\n")
	sb.WriteString(fmt.Sprintf("<h1>%s</h1>\n", html.EscapeString(p.Meta.Title)))

	colors := make(map[string]string, len(p.Speakers))
	for _, sp := range p.Speakers {
		colors[sp.ID] = sp.Color
	}

	for _, seg := range p.Segments {
		color := colors[seg.SpeakerID]
		if color == "" {
			color = "888888"
		}
		sb.WriteString("<p>")
		sb.WriteString(fmt.Sprintf("<span class=\"time\">[%s - %s]</span> ", seg.Start, seg.End))
		sb.WriteString(fmt.Sprintf("<strong style=\"color:#%s\">%s</strong><br>\n",
			color, html.EscapeString(p.SpeakerName(seg.SpeakerID))))
		sb.WriteString(html.EscapeString(seg.Text))
		sb.WriteString("</p>\n")
	}

	sb.WriteString("</body>\n</html>\n")
	return sb.String()
}

func csvEscape(s string) string {
	return strings.ReplaceAll(s, `"`, `""`)
}

// formatStamp renders seconds as HH:MM:SS?mmm with the given millisecond
// separator. Hours are unbounded. Milliseconds round rather than truncate
// so clock-precision values ("00:04.3") come out exact.
func formatStamp(seconds float64, sep byte) string {
	total := int64(math.Round(seconds * 1000))
	if total < 0 {
		total = 0
	}
	millis := total % 1000
	secs := (total / 1000) % 60
	minutes := (total / 60000) % 60
	hours := total / 3600000

	return fmt.Sprintf("%02d:%02d:%02d%c%03d", hours, minutes, secs, sep, millis)
}
