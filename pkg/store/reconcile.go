package store

import (
	"encoding/json"
	"fmt"

	"github.com/foliokit/folio/pkg/types"
)

// ReconcileProfile merges stored profile bytes over base, block by block.
// At the top level a field present in raw wins; inside the three nested
// configuration blocks every base key survives unless raw overrides it.
// On a decode error base is returned unchanged.
//
// At load time base is the schema default profile; on snapshot import it
// is the current in-memory profile, so a partial backup never erases
// unrelated configuration.
func ReconcileProfile(base types.Profile, raw []byte) (types.Profile, error) {
	out := base.Clone()
	if err := json.Unmarshal(raw, &out); err != nil {
		return base, fmt.Errorf("decode profile: %w", err)
	}

	fillProfileDefaults(&out, base)
	return out, nil
}

// fillProfileDefaults backfills the nested configuration blocks of p
// from base and normalizes nil collections. Writes go through it too, so
// a getter never returns a profile missing a default key no matter how
// the value arrived.
func fillProfileDefaults(p *types.Profile, base types.Profile) {
	reconcileVisibility(p, base)
	reconcileUISettings(p, base)
	reconcileSectionText(p, base)
	reconcileSocials(p)
}

// reconcileVisibility backfills visibility keys present only in base.
// A stored explicit value always wins over the base value.
func reconcileVisibility(p *types.Profile, base types.Profile) {
	if p.SectionVisibility == nil {
		p.SectionVisibility = make(map[string]bool, len(base.SectionVisibility))
	}
	for k, v := range base.SectionVisibility {
		if _, ok := p.SectionVisibility[k]; !ok {
			p.SectionVisibility[k] = v
		}
	}
}

// reconcileUISettings backfills display tuning keys present only in base.
func reconcileUISettings(p *types.Profile, base types.Profile) {
	if p.UISettings == nil {
		p.UISettings = make(map[string]any, len(base.UISettings))
	}
	for k, v := range base.UISettings {
		if _, ok := p.UISettings[k]; !ok {
			p.UISettings[k] = v
		}
	}
}

// reconcileSectionText backfills section heading copy present only in base.
func reconcileSectionText(p *types.Profile, base types.Profile) {
	if p.SectionText == nil {
		p.SectionText = make(map[string]types.SectionText, len(base.SectionText))
	}
	for k, v := range base.SectionText {
		if _, ok := p.SectionText[k]; !ok {
			p.SectionText[k] = v
		}
	}
}

// reconcileSocials normalizes an absent custom socials list to empty.
func reconcileSocials(p *types.Profile) {
	if p.CustomSocials == nil {
		p.CustomSocials = []types.CustomSocial{}
	}
}
