package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"cotizador/internal/catalog"
	"cotizador/internal/domain"
	"cotizador/internal/port"
	"cotizador/internal/render"
	"cotizador/internal/workflow"
)

// StartJourneyInput is the DTO for starting a widget journey.
type StartJourneyInput struct {
	Product domain.ProductCode `json:"product" binding:"required"`
}

// JourneyView is what a widget needs to paint after any transition.
type JourneyView struct {
	SessionID  uuid.UUID          `json:"session_id"`
	Product    domain.ProductCode `json:"product"`
	Step       domain.StepState   `json:"step"`
	Completed  bool               `json:"completed"`
	Valid      bool               `json:"valid"`
	Violations []domain.Violation `json:"violations,omitempty"`
	Directives render.Directives  `json:"directives"`
}

// JourneyService drives the multi-step quotation workflow, persisting state
// between transitions so a widget can move forward and back without the user
// re-entering data.
type JourneyService interface {
	Start(ctx context.Context, input StartJourneyInput) (*JourneyView, error)
	Get(ctx context.Context, id uuid.UUID) (*JourneyView, error)
	Advance(ctx context.Context, id uuid.UUID, fields domain.FormSnapshot) (*JourneyView, error)
	Retreat(ctx context.Context, id uuid.UUID) (*JourneyView, error)
	Reset(ctx context.Context, id uuid.UUID) (*JourneyView, error)
}

type journeyService struct {
	catalog  *catalog.Catalog
	sessions port.SessionRepository
	regions  port.RegionDirectory
}

// NewJourneyService creates a new JourneyService implementation.
func NewJourneyService(cat *catalog.Catalog, sessions port.SessionRepository, regions port.RegionDirectory) JourneyService {
	return &journeyService{catalog: cat, sessions: sessions, regions: regions}
}

func (s *journeyService) Start(ctx context.Context, input StartJourneyInput) (*JourneyView, error) {
	product, err := s.catalog.Product(input.Product)
	if err != nil {
		return nil, err
	}

	session := &domain.QuoteSession{
		Product:     product.Code,
		CurrentStep: 0,
		TotalSteps:  len(product.Steps),
		Fields:      json.RawMessage("{}"),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	collector := render.NewCollector()
	collector.RenderStep(0)
	return &JourneyView{
		SessionID:  session.ID,
		Product:    session.Product,
		Step:       domain.StepState{Current: 0, Total: session.TotalSteps},
		Valid:      true,
		Directives: collector.Directives(),
	}, nil
}

func (s *journeyService) Get(ctx context.Context, id uuid.UUID) (*JourneyView, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &JourneyView{
		SessionID: session.ID,
		Product:   session.Product,
		Step:      domain.StepState{Current: session.CurrentStep, Total: session.TotalSteps},
		Completed: session.Completed,
		Valid:     true,
	}, nil
}

func (s *journeyService) Advance(ctx context.Context, id uuid.UUID, fields domain.FormSnapshot) (*JourneyView, error) {
	session, product, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Completed {
		return nil, domain.ErrSessionCompleted
	}

	snap, err := mergeSnapshot(session.Fields, fields)
	if err != nil {
		return nil, err
	}

	collector := render.NewCollector()
	wf := workflow.New(product.StepValidators(s.regions), session.CurrentStep, collector)

	// Party-size overflow is a corrective reset, not a validation failure:
	// the collected selections are dropped and the journey stays in place.
	if overflowsParty(product, snap) {
		wf.ResetOnOverflow(snap, product.SelectionFields)
		if err := s.save(ctx, session, wf, snap, false); err != nil {
			return nil, err
		}
		return s.view(session, wf, true, nil, collector), nil
	}

	result := wf.Advance(snap)

	completed := result.Valid && session.CurrentStep == session.TotalSteps-1
	if err := s.save(ctx, session, wf, snap, completed); err != nil {
		return nil, err
	}
	return s.view(session, wf, result.Valid, result.Violations, collector), nil
}

func (s *journeyService) Retreat(ctx context.Context, id uuid.UUID) (*JourneyView, error) {
	session, product, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	snap, err := mergeSnapshot(session.Fields, nil)
	if err != nil {
		return nil, err
	}

	collector := render.NewCollector()
	wf := workflow.New(product.StepValidators(s.regions), session.CurrentStep, collector)
	wf.Retreat()

	if err := s.save(ctx, session, wf, snap, session.Completed); err != nil {
		return nil, err
	}
	return s.view(session, wf, true, nil, collector), nil
}

func (s *journeyService) Reset(ctx context.Context, id uuid.UUID) (*JourneyView, error) {
	session, product, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	snap, err := mergeSnapshot(session.Fields, nil)
	if err != nil {
		return nil, err
	}

	collector := render.NewCollector()
	wf := workflow.New(product.StepValidators(s.regions), session.CurrentStep, collector)
	wf.ResetOnOverflow(snap, product.SelectionFields)

	if err := s.save(ctx, session, wf, snap, false); err != nil {
		return nil, err
	}
	return s.view(session, wf, true, nil, collector), nil
}

func (s *journeyService) load(ctx context.Context, id uuid.UUID) (*domain.QuoteSession, *catalog.ProductConfig, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	product, err := s.catalog.Product(session.Product)
	if err != nil {
		return nil, nil, err
	}
	return session, product, nil
}

func (s *journeyService) save(ctx context.Context, session *domain.QuoteSession, wf *workflow.Workflow, snap domain.FormSnapshot, completed bool) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("journey.save: %w", err)
	}
	session.Fields = raw
	session.CurrentStep = wf.State().Current
	session.Completed = completed
	session.UpdatedAt = time.Now().UTC()
	return s.sessions.Update(ctx, session)
}

func (s *journeyService) view(session *domain.QuoteSession, wf *workflow.Workflow, valid bool, violations []domain.Violation, collector *render.Collector) *JourneyView {
	return &JourneyView{
		SessionID:  session.ID,
		Product:    session.Product,
		Step:       wf.State(),
		Completed:  session.Completed,
		Valid:      valid,
		Violations: violations,
		Directives: collector.Directives(),
	}
}

func mergeSnapshot(stored json.RawMessage, incoming domain.FormSnapshot) (domain.FormSnapshot, error) {
	snap := domain.FormSnapshot{}
	if len(stored) > 0 {
		if err := json.Unmarshal(stored, &snap); err != nil {
			return nil, fmt.Errorf("decoding session fields: %w", err)
		}
	}
	for k, v := range incoming {
		snap[k] = v
	}
	return snap, nil
}

func overflowsParty(product *catalog.ProductConfig, snap domain.FormSnapshot) bool {
	if product.MaxPartySize <= 0 || product.PartySizeField == "" {
		return false
	}
	raw := snap.Str(product.PartySizeField)
	if raw == "" {
		return false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return false
	}
	return n > product.MaxPartySize
}
