package api

// Counter is one aggregate reported by the stats summary. Total stays nil when
// the service omitted it.
type Counter struct {
	Total *float64 `json:"total,omitempty"`
}

// Stats mirrors the data object of GET /api/stats/summary. Either counter may
// be missing.
type Stats struct {
	Newsletter   *Counter `json:"newsletter,omitempty"`
	Applications *Counter `json:"applications,omitempty"`
}

// NewsletterTotal reports the subscriber count when the service sent one.
func (s *Stats) NewsletterTotal() (float64, bool) {
	if s == nil {
		return 0, false
	}
	return s.Newsletter.value()
}

// ApplicationsTotal reports the application count when the service sent one.
func (s *Stats) ApplicationsTotal() (float64, bool) {
	if s == nil {
		return 0, false
	}
	return s.Applications.value()
}

// Clone returns a deep copy so callers cannot mutate a poller's snapshot.
func (s *Stats) Clone() *Stats {
	if s == nil {
		return nil
	}
	return &Stats{
		Newsletter:   s.Newsletter.clone(),
		Applications: s.Applications.clone(),
	}
}

func (c *Counter) value() (float64, bool) {
	if c == nil || c.Total == nil {
		return 0, false
	}
	return *c.Total, true
}

func (c *Counter) clone() *Counter {
	if c == nil {
		return nil
	}
	out := &Counter{}
	if c.Total != nil {
		total := *c.Total
		out.Total = &total
	}
	return out
}

// NewsletterEntry is the POST /api/newsletter body. Source is always sent.
type NewsletterEntry struct {
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	Source string `json:"source"`
}

// ApplicationEntry is the POST /api/applications body.
type ApplicationEntry struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	RoleInterest string `json:"roleInterest"`
	Experience   string `json:"experience,omitempty"`
	PortfolioURL string `json:"portfolioUrl,omitempty"`
	Message      string `json:"message"`
}

// Result carries the optional confirmation returned in data.message.
type Result struct {
	Message   string
	RequestID string
}
