package io

// Irq is the global interrupt enable of the CPU, with a single
// interrupt source. The zero value has interrupts enabled.
//
// An interrupt raised while disabled stays pending, and is delivered
// by the next Enable.
type Irq struct {
	Handler func() // Interrupt service routine.

	Delivered int // Interrupts serviced.

	disabled bool
	pending  bool
}

// Disable masks interrupts.
func (irq *Irq) Disable() {
	irq.disabled = true
}

// Enable unmasks interrupts, servicing any pending interrupt.
func (irq *Irq) Enable() {
	irq.disabled = false
	if irq.pending {
		irq.pending = false
		irq.deliver()
	}
}

// Enabled returns true if interrupts are not masked.
func (irq *Irq) Enabled() bool {
	return !irq.disabled
}

// Pending returns true if an interrupt is waiting for Enable.
func (irq *Irq) Pending() bool {
	return irq.pending
}

// Raise requests an interrupt.
func (irq *Irq) Raise() {
	if irq.disabled {
		irq.pending = true
		return
	}

	irq.deliver()
}

// Reset masks nothing and drops any pending interrupt.
func (irq *Irq) Reset() {
	irq.disabled = false
	irq.pending = false
	irq.Delivered = 0
}

func (irq *Irq) deliver() {
	irq.Delivered++
	if irq.Handler != nil {
		irq.Handler()
	}
}
