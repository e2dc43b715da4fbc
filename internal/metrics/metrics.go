package metrics

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/csheth/convoy/internal/api"
)

const (
	NewsletterLabel   = "Convoy insiders on the mailing list"
	ApplicationsLabel = "Build crew applications received"
)

// Metric is one labelled value on the metrics strip.
type Metric struct {
	Label string
	Value string
}

// Presenter turns a stats snapshot into display metrics for one locale.
type Presenter struct {
	printer *message.Printer
}

// NewPresenter returns a presenter formatting counts for tag.
func NewPresenter(tag language.Tag) *Presenter {
	return &Presenter{printer: message.NewPrinter(tag)}
}

var english = NewPresenter(language.English)

// Derive lists the live counters present in snapshot, newsletter first, then
// every fallback entry in order.
func Derive(snapshot *api.Stats, fallback []Metric) []Metric {
	return english.Derive(snapshot, fallback)
}

// FormatCount renders v as an English grouped integer.
func FormatCount(v float64) string {
	return english.FormatCount(v)
}

func (p *Presenter) Derive(snapshot *api.Stats, fallback []Metric) []Metric {
	out := make([]Metric, 0, len(fallback)+2)
	if v, ok := snapshot.NewsletterTotal(); ok {
		out = append(out, Metric{Label: NewsletterLabel, Value: p.FormatCount(v)})
	}
	if v, ok := snapshot.ApplicationsTotal(); ok {
		out = append(out, Metric{Label: ApplicationsLabel, Value: p.FormatCount(v)})
	}
	return append(out, fallback...)
}

// FormatCount rounds v to an integer and groups digits per the locale.
// Non-finite values are rendered verbatim.
func (p *Presenter) FormatCount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return p.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(0)))
}
