package tui

import (
	"github.com/csheth/convoy/internal/api"
	"github.com/csheth/convoy/internal/content"
	"github.com/csheth/convoy/internal/forms"
	"github.com/csheth/convoy/internal/submission"
)

type stage int

const (
	stageBrowse stage = iota
	stageSearch
	stageForm
)

var sectionSequence = []string{
	content.AnchorExperience,
	content.AnchorPrivacy,
	content.AnchorTiers,
	content.AnchorCrew,
	content.AnchorRoadmap,
	content.AnchorPalette,
	content.AnchorJoin,
}

const heroTagline = "The social layer for real-world car culture."

const (
	minViewportWidth          = 40
	minViewportHeight         = 3
	viewportHorizontalPadding = 4
)

const (
	statsUnavailableText = "Live stats unavailable"
	pendingEditText      = "Hold tight, that submission is still in flight."
)

type statsResultMsg struct {
	stats *api.Stats
	err   error
}

type submitResultMsg struct {
	form    forms.FormID
	outcome submission.Outcome
}
