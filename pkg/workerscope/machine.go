package workerscope

type state string

const (
	stateService   state = state(Service)
	stateShared    state = state(Shared)
	stateDedicated state = state(Dedicated)
	stateResolved  state = "resolved"
	stateExhausted state = "exhausted"
)

type event string

const (
	eventFallback event = "fallback"
	eventResolve  event = "resolve"
)

type transition struct {
	from state
	on   event
	to   state
}

var transitions = []transition{
	{stateService, eventResolve, stateResolved},
	{stateService, eventFallback, stateShared},
	{stateShared, eventResolve, stateResolved},
	{stateShared, eventFallback, stateDedicated},
	{stateDedicated, eventResolve, stateResolved},
	{stateDedicated, eventFallback, stateExhausted},
}

// machine walks service -> shared -> dedicated. Each attempt state either
// resolves or falls back to the next one; the last fallback exhausts.
type machine struct {
	current state
	table   map[state]map[event]state
}

func newMachine() *machine {
	m := &machine{
		current: stateService,
		table:   make(map[state]map[event]state),
	}
	for _, t := range transitions {
		if m.table[t.from] == nil {
			m.table[t.from] = make(map[event]state)
		}
		m.table[t.from][t.on] = t.to
	}
	return m
}

func (m *machine) fire(e event) error {
	next, ok := m.table[m.current][e]
	if !ok {
		return &TransitionError{State: string(m.current), Event: string(e)}
	}
	m.current = next
	return nil
}

// attempting returns the context type to try in the current state.
func (m *machine) attempting() (ContextType, bool) {
	switch m.current {
	case stateService, stateShared, stateDedicated:
		return ContextType(m.current), true
	default:
		return "", false
	}
}

func (m *machine) resolved() bool { return m.current == stateResolved }
