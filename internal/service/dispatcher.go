package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/anggasct/fluo"

	"holohome/internal/metrics"
	"holohome/internal/models"
	"holohome/internal/repository"
	"holohome/internal/store"
)

// FallbackReply substitutes for the collaborator's answer whenever the call
// fails or returns no content. Errors never propagate past the dispatcher.
const FallbackReply = "Assistant core unreachable. Home analysis is unavailable right now. Please try again."

var (
	ErrEmptyCommand  = errors.New("command text is empty")
	ErrAssistantBusy = errors.New("a command is already being processed")
)

// Assistant lifecycle machine vocabulary. The machine holds the single
// permit for in-flight commands: submit is only accepted in idle, so an
// overlapping submission is rejected by the machine itself.
const (
	stateIdle       = "idle"
	stateAnalyzing  = "analyzing"
	stateGenerating = "generating"

	eventSubmit   = "submit"
	eventGenerate = "generate"
	eventComplete = "complete"
)

// viewTriggers are scanned case-insensitively in the collaborator's reply;
// a hit switches the floor-plan overlay. This is keyword spotting, not a
// command language.
var viewTriggers = []struct {
	phrase string
	mode   models.ViewMode
}{
	{"view power", models.ViewPower},
	{"view water", models.ViewWater},
	{"view thermal", models.ViewThermal},
}

// AssistantService forwards free-text commands to the text-generation
// collaborator and streams the outcome into the activity log.
type AssistantService struct {
	store   *store.Store
	events  repository.EventRepo
	gen     Generator
	mtr     *metrics.Metrics
	machine fluo.Machine
	latency time.Duration
}

func NewAssistantService(st *store.Store, events repository.EventRepo, gen Generator, mtr *metrics.Metrics, latency time.Duration) (*AssistantService, error) {
	m, err := newLifecycleMachine(st)
	if err != nil {
		return nil, err
	}
	return &AssistantService{
		store:   st,
		events:  events,
		gen:     gen,
		mtr:     mtr,
		machine: m,
		latency: latency,
	}, nil
}

// newLifecycleMachine builds and starts the idle/analyzing/generating
// machine. Entry actions mirror the machine state into the system status so
// clients can render the assistant indicator.
func newLifecycleMachine(st *store.Store) (fluo.Machine, error) {
	b := fluo.NewMachine()

	b.State(stateIdle).Initial().
		OnEntry(mirrorAssistantStatus(st, models.AssistantIdle)).
		To(stateAnalyzing).On(eventSubmit)

	b.State(stateAnalyzing).
		OnEntry(mirrorAssistantStatus(st, models.AssistantAnalyzing)).
		To(stateGenerating).On(eventGenerate)

	b.State(stateGenerating).
		OnEntry(mirrorAssistantStatus(st, models.AssistantGenerating)).
		To(stateIdle).On(eventComplete)

	m := b.Build().CreateInstance()
	if err := m.Start(); err != nil {
		return nil, err
	}
	return m, nil
}

func mirrorAssistantStatus(st *store.Store, status models.AssistantStatus) fluo.ActionFunc {
	return func(fluo.Context) error {
		st.SetAssistantStatus(status)
		return nil
	}
}

// Submit validates and logs the command, takes the in-flight permit and
// kicks off the generation on its own goroutine. A pending request always
// runs to completion and applies its result; there is no cancellation.
func (s *AssistantService) Submit(ctx context.Context, text string) error {
	query := strings.TrimSpace(text)
	if query == "" {
		return ErrEmptyCommand
	}
	if res := s.machine.SendEvent(eventSubmit, nil); !res.Success() {
		return ErrAssistantBusy
	}
	s.mtr.IncCommands()
	_ = s.events.Append(ctx, models.LogEntry{
		Source:  "user",
		Message: query,
		Level:   models.LevelInfo,
	})

	go s.run(query)
	return nil
}

func (s *AssistantService) run(query string) {
	// The "thinking" pause the dashboard shows before anything happens.
	time.Sleep(s.latency)
	_ = s.machine.SendEvent(eventGenerate, nil)

	reply, err := s.gen.Generate(context.Background(), s.store.Summary(), query)
	if err != nil || strings.TrimSpace(reply) == "" {
		reply = FallbackReply
		s.mtr.IncAssistantFailures()
	}

	_ = s.machine.SendEvent(eventComplete, nil)
	_ = s.events.Append(context.Background(), models.LogEntry{
		Source:  "assistant",
		Message: reply,
		Level:   models.LevelAI,
	})
	s.applyViewTriggers(reply)
}

func (s *AssistantService) applyViewTriggers(reply string) {
	lowered := strings.ToLower(reply)
	for _, t := range viewTriggers {
		if strings.Contains(lowered, t.phrase) {
			s.store.SetViewMode(t.mode)
		}
	}
}
