package router

import (
	"strings"

	"github.com/evilgrin/evilgringpt/internal/config"
	"github.com/evilgrin/evilgringpt/internal/domain"
)

// SelectionKind classifies a menu token.
type SelectionKind int

const (
	SelectChatModel SelectionKind = iota
	SelectImageModel
	SelectVoice
	SelectVisionModel
)

// Token prefixes form the closed set of callback tokens the bot ever offers.
// Anything that does not parse against the catalog is rejected as stale or
// foreign.
const (
	tokenChat   = "m:"
	tokenImage  = "i:"
	tokenVoice  = "v:"
	tokenVision = "vs:"
)

// Selection is a decoded, validated menu token.
type Selection struct {
	Kind  SelectionKind
	Model string
}

// Catalog is the static set of models and voices supplied at startup.
type Catalog struct {
	ChatModels   []string
	ImageModels  []string
	Voices       []string
	VisionModels []string
}

func NewCatalog(cfg *config.Config) Catalog {
	return Catalog{
		ChatModels:   cfg.ChatModels,
		ImageModels:  cfg.ImageModels,
		Voices:       cfg.Voices,
		VisionModels: cfg.VisionModels,
	}
}

// Resolve decodes a callback token and validates it against the catalog.
func (c Catalog) Resolve(token string) (Selection, error) {
	switch {
	case strings.HasPrefix(token, tokenVision):
		return c.member(SelectVisionModel, c.VisionModels, strings.TrimPrefix(token, tokenVision))
	case strings.HasPrefix(token, tokenVoice):
		return c.member(SelectVoice, c.Voices, strings.TrimPrefix(token, tokenVoice))
	case strings.HasPrefix(token, tokenImage):
		return c.member(SelectImageModel, c.ImageModels, strings.TrimPrefix(token, tokenImage))
	case strings.HasPrefix(token, tokenChat):
		return c.member(SelectChatModel, c.ChatModels, strings.TrimPrefix(token, tokenChat))
	default:
		return Selection{}, domain.ErrModelNotFound
	}
}

func (c Catalog) member(kind SelectionKind, list []string, model string) (Selection, error) {
	for _, m := range list {
		if m == model {
			return Selection{Kind: kind, Model: model}, nil
		}
	}
	return Selection{}, domain.ErrModelNotFound
}

// TokenPrefixes lists the callback prefixes the transport should route to
// the router.
func TokenPrefixes() []string {
	return []string{tokenChat, tokenImage, tokenVoice, tokenVision}
}
