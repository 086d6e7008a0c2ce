package console

import (
	"fmt"
	"io"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/league-scraper/internal/domain/fixture"
	"github.com/riskibarqy/league-scraper/internal/domain/leaguestanding"
	"github.com/riskibarqy/league-scraper/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Printer renders a scrape result to w.
//
// Text output is a "Standings:" section and a "Matches:" section separated by
// a blank line, one JSON object per record. JSON output is a single document
// with both lists.
type Printer struct {
	w      io.Writer
	format string
}

func NewPrinter(w io.Writer, format string) (*Printer, error) {
	switch format {
	case "", FormatText:
		format = FormatText
	case FormatJSON:
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
	return &Printer{w: w, format: format}, nil
}

func (p *Printer) Print(result usecase.ScrapeResult) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	var err error
	if p.format == FormatJSON {
		err = appendDocument(buf, result)
	} else {
		err = appendSections(buf, result)
	}
	if err != nil {
		return err
	}

	if _, err := p.w.Write(buf.B); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func appendSections(buf *bytebufferpool.ByteBuffer, result usecase.ScrapeResult) error {
	_, _ = buf.WriteString("Standings:\n")
	for _, standing := range result.Standings {
		if err := appendLine(buf, standing); err != nil {
			return fmt.Errorf("encode standing: %w", err)
		}
	}

	_, _ = buf.WriteString("\nMatches:\n")
	for _, match := range result.Matches {
		if err := appendLine(buf, match); err != nil {
			return fmt.Errorf("encode match: %w", err)
		}
	}
	return nil
}

func appendLine(buf *bytebufferpool.ByteBuffer, record any) error {
	raw, err := sonic.ConfigDefault.Marshal(record)
	if err != nil {
		return err
	}
	_, _ = buf.Write(raw)
	_ = buf.WriteByte('\n')
	return nil
}

func appendDocument(buf *bytebufferpool.ByteBuffer, result usecase.ScrapeResult) error {
	// Empty datasets encode as [] rather than null.
	if result.Standings == nil {
		result.Standings = []leaguestanding.Standing{}
	}
	if result.Matches == nil {
		result.Matches = []fixture.Fixture{}
	}

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(result); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}
