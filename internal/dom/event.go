package dom

// Event types dispatched by the document.
const (
	EventClick  = "click"
	EventSubmit = "submit"
	EventReset  = "reset"
)

// Event is passed to listeners. Listeners may cancel the default action.
type Event struct {
	Type   string
	Target *Element

	defaultPrevented bool
}

// PreventDefault cancels the action the document would otherwise take after
// dispatch.
func (ev *Event) PreventDefault() { ev.defaultPrevented = true }

// DefaultPrevented reports whether a listener called PreventDefault.
func (ev *Event) DefaultPrevented() bool { return ev.defaultPrevented }

// Listener handles an event.
type Listener func(ev *Event)

// AddEventListener registers fn for events of the given type on e.
// Listeners run synchronously, in registration order.
func (e *Element) AddEventListener(eventType string, fn Listener) {
	if e.listeners == nil {
		e.listeners = make(map[string][]Listener)
	}
	e.listeners[eventType] = append(e.listeners[eventType], fn)
}

// Dispatch runs the listeners registered on e for ev.Type and reports
// whether the default action may proceed.
func (e *Element) Dispatch(ev *Event) bool {
	if ev.Target == nil {
		ev.Target = e
	}
	for _, fn := range e.listeners[ev.Type] {
		fn(ev)
	}
	return !ev.defaultPrevented
}

// Click simulates user activation. Checkboxes toggle and radios check
// before listeners run (and revert if the click is cancelled). Submit and
// reset buttons then submit or reset their form.
func (e *Element) Click() {
	var revert func()
	if e.isCheckable() {
		was := e.Checked()
		var prevRadio *Element
		if e.Type() == "radio" {
			for _, other := range e.doc.ElementsByName(e.Name()) {
				if other.Checked() && other.Form() == e.Form() {
					prevRadio = other
				}
			}
			e.SetChecked(true)
		} else {
			e.SetChecked(!was)
		}
		revert = func() {
			e.SetChecked(was)
			if prevRadio != nil {
				prevRadio.SetChecked(true)
			}
		}
	}

	if !e.Dispatch(&Event{Type: EventClick, Target: e}) {
		if revert != nil {
			revert()
		}
		return
	}

	if e.Tag() != "button" && !(e.Tag() == "input" && (e.Type() == "submit" || e.Type() == "reset")) {
		return
	}
	form := e.Form()
	if form == nil {
		return
	}
	switch e.Type() {
	case "submit":
		form.RequestSubmit()
	case "reset":
		form.Reset()
	}
}

// RequestSubmit dispatches a submit event on a form. If no listener
// prevents it, the document records a navigation to the form's action.
func (e *Element) RequestSubmit() {
	if e.Tag() != "form" {
		return
	}
	if e.Dispatch(&Event{Type: EventSubmit, Target: e}) {
		action := e.Attr("action")
		e.doc.navigation = &action
	}
}

// Reset dispatches a reset event on a form and, unless prevented, restores
// every input of the form to its parse-time value and checkedness.
func (e *Element) Reset() {
	if e.Tag() != "form" {
		return
	}
	if !e.Dispatch(&Event{Type: EventReset, Target: e}) {
		return
	}
	for _, in := range e.ElementsByTag("input") {
		def, ok := e.doc.defaults[in.node]
		if !ok {
			continue
		}
		if def.hasValue {
			in.SetAttr("value", def.value)
		} else {
			in.RemoveAttr("value")
		}
		if def.checked {
			in.SetAttr("checked", "")
		} else {
			in.RemoveAttr("checked")
		}
	}
}
