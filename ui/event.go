package ui

// EventType is the kind of UI event a command is bound to.
type EventType string

const (
	EventInput     EventType = "input"
	EventChange    EventType = "change"
	EventModalShow EventType = "modal-show"
)

// Attrs carries the data-* attributes of the element that fired an
// event, plus "value" for input/change events.
type Attrs map[string]string

func (a Attrs) Get(key string) string {
	if a == nil {
		return ""
	}
	return a[key]
}

// Command runs in response to one UI event.
type Command func(attrs Attrs)

type binding struct {
	target string
	event  EventType
}

// Dispatcher routes (target, event) pairs to commands. Events with no
// binding are dropped, matching the dashboard's swallow-everything
// error model.
type Dispatcher struct {
	commands map[binding]Command
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{commands: make(map[binding]Command)}
}

func (d *Dispatcher) On(target string, event EventType, cmd Command) {
	d.commands[binding{target, event}] = cmd
}

func (d *Dispatcher) Fire(target string, event EventType, attrs Attrs) {
	if cmd, ok := d.commands[binding{target, event}]; ok {
		cmd(attrs)
	}
}
