package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/actuallystonmai/storefront-assistant/internal/domain"
	"github.com/fatih/color"
)

type printer struct {
	out      io.Writer
	jsonMode bool

	title *color.Color
	price *color.Color
	muted *color.Color
}

func newPrinter(out io.Writer, jsonMode, noColor bool) *printer {
	p := &printer{
		out:      out,
		jsonMode: jsonMode,
		title:    color.New(color.FgCyan, color.Bold),
		price:    color.New(color.FgGreen),
		muted:    color.New(color.FgHiBlack),
	}
	if noColor {
		for _, c := range []*color.Color{p.title, p.price, p.muted} {
			c.DisableColor()
		}
	}
	return p
}

func (p *printer) writeJSON(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *printer) Products(products []domain.Product) error {
	if products == nil {
		products = []domain.Product{}
	}
	if p.jsonMode {
		return p.writeJSON(products)
	}
	if len(products) == 0 {
		p.muted.Fprintln(p.out, "no products found")
		return nil
	}

	for _, prod := range products {
		p.title.Fprintf(p.out, "#%d %s", prod.ID, prod.Name)
		fmt.Fprint(p.out, "  ")
		p.price.Fprintf(p.out, "$%.2f", prod.Price)
		fmt.Fprintln(p.out)
		p.muted.Fprintf(p.out, "   %s · %.1f★ · %d in stock · %s\n",
			prod.Category, prod.Rating, prod.Stock, strings.Join(prod.Tags, ", "))
	}
	return nil
}

func (p *printer) Chat(resp domain.ChatResponse) error {
	if p.jsonMode {
		return p.writeJSON(resp)
	}

	p.muted.Fprintf(p.out, "[%s]\n", resp.Intent)
	fmt.Fprintln(p.out, resp.Message)
	for _, a := range resp.Actions {
		p.title.Fprintf(p.out, "  → %s", a.Label)
		p.muted.Fprintf(p.out, " (%q)\n", a.Text)
	}
	if len(resp.QuickReplies) > 0 {
		p.muted.Fprintf(p.out, "quick replies: %s\n", strings.Join(resp.QuickReplies, " | "))
	}
	return nil
}

func (p *printer) Opening(messages []domain.ChatResponse) error {
	if p.jsonMode {
		return p.writeJSON(messages)
	}
	for _, m := range messages {
		if err := p.Chat(m); err != nil {
			return err
		}
	}
	return nil
}
