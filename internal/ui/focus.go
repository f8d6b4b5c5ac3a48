package ui

// Focus targets on the page, in tab order.
const (
	FocusGallery = "gallery"
	FocusName    = "name"
	FocusEmail   = "email"
	FocusMessage = "message"
	FocusSubmit  = "submit"
)

// PageFocusOrder is the tab order of the page.
var PageFocusOrder = []string{FocusGallery, FocusName, FocusEmail, FocusMessage, FocusSubmit}

// FocusManager tracks and rotates focus across page regions.
type FocusManager struct {
	Current  string   // ID of the focused region
	Order    []string // Tab order for focus rotation
	OnChange func(from, to string)
}

// NewFocusManager creates a manager focused on the first entry of order.
func NewFocusManager(order []string) *FocusManager {
	f := &FocusManager{Order: order}
	if len(order) > 0 {
		f.Current = order[0]
	}
	return f
}

// Next advances focus to the next region in order.
// Returns the new current focus ID.
func (f *FocusManager) Next() string {
	return f.step(1)
}

// Prev moves focus to the previous region in order.
func (f *FocusManager) Prev() string {
	return f.step(-1)
}

func (f *FocusManager) step(delta int) string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := f.index(f.Current)
	if idx < 0 && delta < 0 {
		idx = 0
	}
	n := len(f.Order)
	f.set(f.Order[((idx+delta)%n+n)%n])
	return f.Current
}

// SetFocus sets focus to the given region ID.
// Returns true if the ID exists in order.
func (f *FocusManager) SetFocus(id string) bool {
	if f.index(id) < 0 {
		return false
	}
	f.set(id)
	return true
}

// Is reports whether id has focus.
func (f *FocusManager) Is(id string) bool {
	return f.Current == id
}

func (f *FocusManager) set(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}

func (f *FocusManager) index(id string) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}
