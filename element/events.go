package element

import "strings"

// event builds an EventHandler for "on"+name, e.g. event("click", fn)
// handles the click event.
func event(name string, handler any) EventHandler {
	return EventHandler{Event: "on" + name, Handler: handler}
}

// Mouse events.

func OnClick(handler any) EventHandler      { return event("click", handler) }
func OnDblClick(handler any) EventHandler   { return event("dblclick", handler) }
func OnMouseDown(handler any) EventHandler  { return event("mousedown", handler) }
func OnMouseUp(handler any) EventHandler    { return event("mouseup", handler) }
func OnMouseMove(handler any) EventHandler  { return event("mousemove", handler) }
func OnMouseEnter(handler any) EventHandler { return event("mouseenter", handler) }
func OnMouseLeave(handler any) EventHandler { return event("mouseleave", handler) }
func OnMouseOver(handler any) EventHandler  { return event("mouseover", handler) }
func OnMouseOut(handler any) EventHandler   { return event("mouseout", handler) }
func OnContextMenu(handler any) EventHandler { return event("contextmenu", handler) }

// Keyboard events.

func OnKeyDown(handler any) EventHandler  { return event("keydown", handler) }
func OnKeyUp(handler any) EventHandler    { return event("keyup", handler) }
func OnKeyPress(handler any) EventHandler { return event("keypress", handler) }

// Form events.

func OnChange(handler any) EventHandler  { return event("change", handler) }
func OnInput(handler any) EventHandler   { return event("input", handler) }
func OnSubmit(handler any) EventHandler  { return event("submit", handler) }
func OnFocus(handler any) EventHandler   { return event("focus", handler) }
func OnBlur(handler any) EventHandler    { return event("blur", handler) }
func OnReset(handler any) EventHandler   { return event("reset", handler) }
func OnInvalid(handler any) EventHandler { return event("invalid", handler) }

// Clipboard and drag events.

func OnCopy(handler any) EventHandler  { return event("copy", handler) }
func OnCut(handler any) EventHandler   { return event("cut", handler) }
func OnPaste(handler any) EventHandler { return event("paste", handler) }
func OnDragStart(handler any) EventHandler { return event("dragstart", handler) }
func OnDragEnd(handler any) EventHandler   { return event("dragend", handler) }
func OnDrop(handler any) EventHandler      { return event("drop", handler) }

// Pointer and touch events.

func OnPointerDown(handler any) EventHandler { return event("pointerdown", handler) }
func OnPointerUp(handler any) EventHandler   { return event("pointerup", handler) }
func OnPointerMove(handler any) EventHandler { return event("pointermove", handler) }
func OnTouchStart(handler any) EventHandler  { return event("touchstart", handler) }
func OnTouchEnd(handler any) EventHandler    { return event("touchend", handler) }
func OnTouchMove(handler any) EventHandler   { return event("touchmove", handler) }

// Scroll/resize events.

func OnScroll(handler any) EventHandler { return event("scroll", handler) }
func OnResize(handler any) EventHandler { return event("resize", handler) }

// isEventProp reports whether name identifies an event-handler prop
// rather than an attribute: any key longer than two bytes whose first
// two case-insensitively equal "on", matching JSX's own over-inclusive
// convention rather than just the on* constructors above.
func isEventProp(name string) bool {
	return len(name) > 2 && strings.EqualFold(name[:2], "on")
}

// IsEventProp is the exported form of isEventProp, used by reconcile to
// decide whether a prop diff should attach/detach a listener instead of
// setting an attribute.
func IsEventProp(name string) bool { return isEventProp(name) }
