package content

import (
	"fmt"

	"github.com/csheth/convoy/internal/metrics"
)

// Hero is the top-of-page pitch.
type Hero struct {
	Badge    string
	Title    string
	Subtitle string
}

// Pillar describes one part of the product experience.
type Pillar struct {
	Title       string
	Description string
}

// Tier is a paid or free subscription level.
type Tier struct {
	Name  string
	Price string
	Blurb string
	Items []string
}

// Stage is one roadmap phase.
type Stage struct {
	Phase string
	Items []string
}

// Swatch is a palette color with its role.
type Swatch struct {
	Role        string
	Name        string
	Hex         string
	Description string
}

// Gradient pairs a name with its CSS definition.
type Gradient struct {
	Name string
	CSS  string
}

// Section is a titled block of the landing page. Anchor is used for jumps.
type Section struct {
	Anchor string
	Title  string
	Intro  string
	Blocks []Block
}

// Block is a subheading followed by bullet items.
type Block struct {
	Heading string
	Body    string
	Items   []string
}

const (
	AnchorExperience = "experience"
	AnchorPrivacy    = "privacy"
	AnchorTiers      = "tiers"
	AnchorCrew       = "crew"
	AnchorRoadmap    = "roadmap"
	AnchorPalette    = "palette"
	AnchorJoin       = "join"
)

// ContactAddress is where the build crew CTA points.
const ContactAddress = "team@convoy.app"

// HeroCopy returns the hero block.
func HeroCopy() Hero {
	return Hero{
		Badge: "Convoy Preview",
		Title: "Drive. Connect. Belong.",
		Subtitle: "Convoy is the social layer for real-world car culture. Coordinate convoys, " +
			"discover routes, and keep your crew connected from on-ramp to afterparty.",
	}
}

// FallbackMetrics are always shown after any live counters.
func FallbackMetrics() []metrics.Metric {
	return []metrics.Metric{
		{Label: "Target private beta convoys per day", Value: "5+"},
		{Label: "Latency budget for live updates", Value: "< 1s"},
		{Label: "Elite tier conversion goal", Value: "3%"},
	}
}

func Pillars() []Pillar {
	return []Pillar{
		{
			Title:       "Live Map + Convoys",
			Description: "Road-snapped vehicle icons, convoy invites, and live telemetry keep friends together even on unfamiliar routes.",
		},
		{
			Title:       "In-Car Dashboards",
			Description: "Native CarPlay and Android Auto views deliver turn-by-turn cues, convoy status, and push-to-talk voice without distraction.",
		},
		{
			Title:       "Community & Routes",
			Description: "Crowd-curated meetups, scenic drives, and creator routes are moderated for safety and quality before they go live.",
		},
		{
			Title:       "Privacy First",
			Description: "Ghost mode timers, location fuzzing, and private zones give drivers control while emergency overrides protect crews.",
		},
	}
}

func Tiers() []Tier {
	return []Tier{
		{
			Name:  "Free",
			Price: "$0",
			Blurb: "Join convoys, earn XP, and explore community events.",
			Items: []string{"1 active convoy slot", "Basic analytics", "Ads supported"},
		},
		{
			Name:  "Pro",
			Price: "$6.99",
			Blurb: "Unlock enthusiast tools, personal analytics, and customization.",
			Items: []string{
				"Full driver analytics and heatmaps",
				"Custom icons, trails, and banners",
				"Ad-free experience with offline logs",
			},
		},
		{
			Name:  "Elite",
			Price: "$14.99",
			Blurb: "Built for crews and hosts running premium events.",
			Items: []string{
				"Manage up to 10 convoys with co-hosts",
				"Advanced crew analytics dashboard",
				"Replay mode, expanded voice, early-access betas",
			},
		},
	}
}

func Roadmap() []Stage {
	return []Stage{
		{Phase: "Now", Items: []string{
			"Finalize stack decisions for maps, telemetry, and voice",
			"Prototype privacy flows and CarPlay dashboards",
			"Stand up advertiser onboarding wireframes",
		}},
		{Phase: "Next", Items: []string{
			"Ship real-time telemetry service with crew subscriptions",
			"Launch closed beta with curated route submissions",
			"Instrument analytics pipeline for XP, tiers, and ad conversions",
		}},
		{Phase: "Later", Items: []string{
			"Expand AR encounters and convoy replays",
			"Roll out crew wallets and sponsor integrations",
			"Open self-serve advertiser portal to priority cities",
		}},
	}
}

func Palette() []Swatch {
	return []Swatch{
		{Role: "Primary", Name: "Convoy Orange", Hex: "#EB5A2D", Description: "Primary actions, hero CTAs, and map trails."},
		{Role: "Secondary", Name: "Neon Violet", Hex: "#A13BF1", Description: "Hover states, gradients, and voice indicators."},
		{Role: "Background (Dark)", Name: "Midnight Asphalt", Hex: "#0F0C1A", Description: "Hero backdrop and dashboard canvas."},
		{Role: "Background (Light)", Name: "Twilight Surface", Hex: "#1E1B2E", Description: "Cards, secondary panels, and overlays."},
		{Role: "Accent Glow", Name: "Route Glow", Hex: "#FF9C00", Description: "Live telemetry pulses and highlight glows."},
		{Role: "Success / Active", Name: "Live Signal Green", Hex: "#00E28A", Description: "Active voice and online convoy states."},
	}
}

func Gradients() []Gradient {
	return []Gradient{
		{Name: "Sunset Route", CSS: "linear-gradient(135deg, #EB5A2D 0%, #A13BF1 100%)"},
		{Name: "Twilight Drive", CSS: "linear-gradient(180deg, #1E1B2E 0%, #0F0C1A 100%)"},
		{Name: "Convoy Glow", CSS: "linear-gradient(90deg, #FF9C00 0%, #EB5A2D 40%, #A13BF1 100%)"},
	}
}

func UsageTips() []string {
	return []string{
		"Use Convoy Orange for hero buttons and map highlights.",
		"Layer Midnight Asphalt backgrounds with Twilight Surface cards for depth.",
		"Add subtle Route Glow or Neon Violet blurs to reinforce energy.",
		"Maintain a 4.5:1 contrast ratio for text on dark surfaces.",
	}
}

// Page assembles every landing section in display order.
func Page() []Section {
	sections := []Section{experienceSection(), privacySection(), tiersSection(), crewSection(), roadmapSection(), paletteSection(), joinSection()}
	return sections
}

func experienceSection() Section {
	s := Section{Anchor: AnchorExperience, Title: "Experience pillars"}
	for _, p := range Pillars() {
		s.Blocks = append(s.Blocks, Block{Heading: p.Title, Body: p.Description})
	}
	return s
}

func privacySection() Section {
	return Section{
		Anchor: AnchorPrivacy,
		Title:  "Privacy-first foundation",
		Intro: "Drivers control when, how, and with whom their location is shared. Ghost mode timers, " +
			"private zones, and location fuzzing give flexibility, while emergency overrides and convoy " +
			"host rules keep teams protected.",
		Blocks: []Block{{Items: []string{
			"Ghost mode presets: 15 min, 1 hr, until turned off",
			"Friends-only visibility with 300 m fuzzing for non-friends",
			"Private zones around home, work, or staging areas",
			"Safety overrides for convoy hosts and SOS scenarios",
		}}},
	}
}

func tiersSection() Section {
	s := Section{Anchor: AnchorTiers, Title: "Subscription tiers"}
	for _, t := range Tiers() {
		s.Blocks = append(s.Blocks, Block{
			Heading: fmt.Sprintf("%s · %s/mo", t.Name, t.Price),
			Body:    t.Blurb,
			Items:   t.Items,
		})
	}
	return s
}

func crewSection() Section {
	return Section{
		Anchor: AnchorCrew,
		Title:  "Crew subscriptions",
		Intro: "Crew, club, and pro team plans unlock shared hosting, always-on voice rooms, and analytics " +
			"that make organizing meets effortless. Leaders can manage billing, assign co-hosts, and unlock " +
			"custom themes that make their brand recognizable on the map.",
		Blocks: []Block{{Items: []string{
			"Shared convoy hosting with crew IDs and co-host slots",
			"Persistent voice and messaging hubs between drives",
			"Group analytics for attendance, distance, and safety scores",
			"Seasonal leaderboards and printable recap packs (future)",
		}}},
	}
}

func roadmapSection() Section {
	s := Section{Anchor: AnchorRoadmap, Title: "Product roadmap"}
	for _, stage := range Roadmap() {
		s.Blocks = append(s.Blocks, Block{Heading: stage.Phase, Items: stage.Items})
	}
	return s
}

func paletteSection() Section {
	s := Section{Anchor: AnchorPalette, Title: "Convoy design palette"}
	for _, sw := range Palette() {
		s.Blocks = append(s.Blocks, Block{
			Heading: fmt.Sprintf("%s · %s %s", sw.Role, sw.Name, sw.Hex),
			Body:    sw.Description,
		})
	}
	gradients := Block{Heading: "Gradients"}
	for _, g := range Gradients() {
		gradients.Items = append(gradients.Items, fmt.Sprintf("%s: %s", g.Name, g.CSS))
	}
	s.Blocks = append(s.Blocks, gradients, Block{Heading: "Usage tips", Items: UsageTips()})
	return s
}

func joinSection() Section {
	return Section{
		Anchor: AnchorJoin,
		Title:  "Ready to build Convoy?",
		Intro: "We are drafting architecture, onboarding content, and design systems across backend, " +
			"frontend, and mobile. Tap in if you want to shape the next milestone.",
		Blocks: []Block{{Items: []string{
			"Press a to join the build crew, or write to " + ContactAddress,
			"Press s to get launch updates in your inbox",
		}}},
	}
}
