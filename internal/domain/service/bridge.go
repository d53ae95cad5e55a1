package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"emulated-hue/internal/domain/model"
	"emulated-hue/internal/domain/response"
	"emulated-hue/internal/domain/translator"
	"emulated-hue/internal/ports"
)

type BridgeService struct {
	cfg      *model.Config
	haPort   ports.HomeAssistantPort
	numbers  *Numbering
	exposure *Exposure
	engine   *translator.Engine
}

func NewBridgeService(cfg *model.Config, haPort ports.HomeAssistantPort, numbers ports.NumberStore, overrides ports.OverrideStore) *BridgeService {
	return &BridgeService{
		cfg:      cfg,
		haPort:   haPort,
		numbers:  NewNumbering(cfg.Type, numbers),
		exposure: NewExposure(cfg),
		engine:   translator.NewEngine(overrides, cfg.OffMapsToOnDomains),
	}
}

// GetLights returns every exposed entity keyed by its light number.
func (s *BridgeService) GetLights(ctx context.Context) (map[string]*response.Light, error) {
	lights := make(map[string]*response.Light)
	if !s.haPort.IsConfigured() {
		return lights, nil
	}

	entities, err := s.haPort.GetStates(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing entities: %w", err)
	}

	for _, e := range lo.Filter(entities, func(e *model.Entity, _ int) bool { return s.exposure.IsExposed(e) }) {
		number, err := s.numbers.Number(ctx, e.EntityID)
		if err != nil {
			return nil, fmt.Errorf("assigning number to %s: %w", e.EntityID, err)
		}
		lights[number] = s.toLight(e)
	}
	return lights, nil
}

func (s *BridgeService) GetLight(ctx context.Context, number string) (*response.Light, error) {
	entity, err := s.resolve(ctx, number)
	if err != nil {
		return nil, err
	}
	return s.toLight(entity), nil
}

// SetLightState applies a Hue state change and waits for every resulting
// service call before acknowledging the parsed fields.
func (s *BridgeService) SetLightState(ctx context.Context, number string, body []byte) ([]response.Success, error) {
	entity, err := s.resolve(ctx, number)
	if err != nil {
		return nil, err
	}

	cmd, calls, err := s.engine.Command(entity, body)
	if err != nil {
		log.Error().Err(err).Str("entity_id", entity.EntityID).Bytes("body", body).Msg("Unable to parse data")
		return nil, err
	}

	for _, call := range calls {
		log.Debug().
			Str("entity_id", entity.EntityID).
			Str("service", call.String()).
			Interface("data", call.Data).
			Msg("Calling service")
		if err := s.haPort.CallService(ctx, call); err != nil {
			return nil, fmt.Errorf("calling %s for %s: %w", call, entity.EntityID, err)
		}
	}

	return response.Successes(number, cmd), nil
}

func (s *BridgeService) GetConfig(ctx context.Context) (*model.Config, error) {
	return s.cfg, nil
}

func (s *BridgeService) resolve(ctx context.Context, number string) (*model.Entity, error) {
	entityID, ok, err := s.numbers.EntityID(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("looking up number %s: %w", number, err)
	}
	if !ok {
		log.Error().Str("number", number).Msg("Unknown entity number")
		return nil, model.ErrEntityNotFound
	}

	if !s.haPort.IsConfigured() {
		return nil, model.ErrNotConfigured
	}
	entity, err := s.haPort.GetState(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", entityID, err)
	}
	if entity == nil {
		log.Error().Str("entity_id", entityID).Msg("Entity not found")
		return nil, model.ErrEntityNotFound
	}

	if !s.exposure.IsExposed(entity) {
		log.Error().Str("entity_id", entityID).Msg("Entity not exposed")
		return nil, model.ErrEntityNotExposed
	}
	return entity, nil
}

func (s *BridgeService) toLight(e *model.Entity) *response.Light {
	return response.NewLight(e, s.exposure.Name(e), s.engine.State(e), s.engine.Model(e))
}
