package service

import (
	"github.com/samber/lo"

	"emulated-hue/internal/domain/model"
)

// Exposure decides which entities the bridge shows and how they are named.
type Exposure struct {
	exposeByDefault bool
	exposedDomains  []string
	entities        map[string]*model.EntityConfig
}

func NewExposure(cfg *model.Config) *Exposure {
	return &Exposure{
		exposeByDefault: cfg.ExposeByDefault == nil || *cfg.ExposeByDefault,
		exposedDomains:  cfg.ExposedDomains,
		entities:        cfg.Entities,
	}
}

// IsExposed applies, in order: explicit expose/hide from the entity
// attributes or configuration, then the exposed-by-default domains.
func (x *Exposure) IsExposed(e *model.Entity) bool {
	if _, isView := e.Attributes["view"]; isView {
		return false
	}

	explicitExpose, hasExpose := e.Bool(model.AttrEmulatedHue)
	explicitHidden, hasHidden := e.Bool(model.AttrEmulatedHueHidden)
	if ec, ok := x.entities[e.EntityID]; ok && ec != nil && ec.Hidden != nil {
		explicitHidden, hasHidden = *ec.Hidden, true
	}

	var expose *bool
	switch {
	case hasExpose && explicitExpose, hasHidden && !explicitHidden:
		expose = lo.ToPtr(true)
	case hasExpose && !explicitExpose, hasHidden && explicitHidden:
		expose = lo.ToPtr(false)
	}

	domainExposed := x.exposeByDefault && lo.Contains(x.exposedDomains, e.Domain())
	if domainExposed && (expose == nil || *expose) {
		return true
	}
	return expose != nil && *expose
}

func (x *Exposure) Name(e *model.Entity) string {
	if ec, ok := x.entities[e.EntityID]; ok && ec != nil && ec.Name != "" {
		return ec.Name
	}
	if name, ok := e.String(model.AttrEmulatedHueName); ok && name != "" {
		return name
	}
	if name, ok := e.String(model.AttrFriendlyName); ok && name != "" {
		return name
	}
	return e.EntityID
}
