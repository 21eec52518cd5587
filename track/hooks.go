package track

// Snapshot is the read-only payload handed to hooks.
type Snapshot struct {
	Name  string
	Slot  int
	Min   int
	Max   int
	Value int
}

// Event identifies a lifecycle hook.
type Event uint8

const (
	EventCreate Event = iota
	EventStart
	EventChange
	EventFinish
)

func (e Event) String() string {
	switch e {
	case EventCreate:
		return "create"
	case EventStart:
		return "start"
	case EventChange:
		return "change"
	case EventFinish:
		return "finish"
	default:
		return "unknown"
	}
}

// Hooks are optional observers invoked synchronously.
//
// A hook must not reconfigure or drive the slider that is dispatching to it.
// That is undefined behavior and is not guarded against.
type Hooks struct {
	OnCreate func(Snapshot)
	OnStart  func(Snapshot)
	OnChange func(Snapshot)
	OnFinish func(Snapshot)
}

func (h Hooks) hook(ev Event) func(Snapshot) {
	switch ev {
	case EventCreate:
		return h.OnCreate
	case EventStart:
		return h.OnStart
	case EventChange:
		return h.OnChange
	case EventFinish:
		return h.OnFinish
	default:
		return nil
	}
}

func (h Hooks) dispatch(ev Event, snap Snapshot) {
	if fn := h.hook(ev); fn != nil {
		fn(snap)
	}
}
