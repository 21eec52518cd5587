package track

// Owner is the context shared by every slider on one screen. It records which
// slider is entitled to keyboard and click-to-step input.
//
// Pass the same *Owner to every slider that should compete for input. It is
// not locked; all sliders sharing it must be driven from one goroutine.
type Owner struct {
	current int
	seq     int
}

func NewOwner() *Owner { return &Owner{} }

// register hands out a fresh slot id. Ids start at 1; 0 means nobody.
func (o *Owner) register() int {
	o.seq++
	return o.seq
}

// Claim makes slot the current owner.
func (o *Owner) Claim(slot int) { o.current = slot }

// Release clears the owner if slot currently holds it.
func (o *Owner) Release(slot int) {
	if o.current == slot {
		o.current = 0
	}
}

// Is reports whether slot is the current owner.
func (o *Owner) Is(slot int) bool { return slot != 0 && o.current == slot }

// Current returns the owning slot id, or 0.
func (o *Owner) Current() int { return o.current }
