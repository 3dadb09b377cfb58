package store

import (
	"sync"
	"time"

	"mapmate/internal/models"
)

// DefaultToastTTL is how long a toast stays visible unless dismissed.
const DefaultToastTTL = 5 * time.Second

type PanelTab string

const (
	PanelTabInfo       PanelTab = "info"
	PanelTabDirections PanelTab = "directions"
	PanelTabSaved      PanelTab = "saved"
)

// PanelState is the side-panel state machine: closed, or open on one tab.
type PanelState struct {
	Open bool
	Tab  PanelTab
}

// UIStore holds ephemeral notification state and panel/display flags.
// Toasts expire on their own after the configured TTL; dismissal removes
// exactly the targeted toast.
type UIStore struct {
	mu sync.Mutex

	panel              PanelState
	drawerOpen         bool
	directionsExpanded bool
	mapType            models.MapType
	showTraffic        bool

	toasts   []models.Toast
	toastTTL time.Duration
	lastID   int64
	timers   map[int64]*time.Timer
}

func NewUIStore(toastTTL time.Duration) *UIStore {
	if toastTTL <= 0 {
		toastTTL = DefaultToastTTL
	}
	return &UIStore{
		panel:    PanelState{Open: false, Tab: PanelTabInfo},
		mapType:  models.MapTypeRoadmap,
		toastTTL: toastTTL,
		timers:   make(map[int64]*time.Timer),
	}
}

func (s *UIStore) Panel() PanelState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.panel
}

func (s *UIStore) OpenPanel(tab PanelTab) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.panel = PanelState{Open: true, Tab: tab}
}

func (s *UIStore) ClosePanel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.panel.Open = false
}

// SwitchTab changes the active tab. Only meaningful while open; switching
// a closed panel does not open it.
func (s *UIStore) SwitchTab(tab PanelTab) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.panel.Open {
		s.panel.Tab = tab
	}
}

func (s *UIStore) DrawerOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drawerOpen
}

func (s *UIStore) SetDrawerOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drawerOpen = open
}

func (s *UIStore) DirectionsExpanded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.directionsExpanded
}

func (s *UIStore) SetDirectionsExpanded(expanded bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.directionsExpanded = expanded
}

func (s *UIStore) MapType() models.MapType {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mapType
}

func (s *UIStore) SetMapType(mapType models.MapType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mapType = mapType
}

func (s *UIStore) ShowTraffic() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.showTraffic
}

func (s *UIStore) ToggleTraffic() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showTraffic = !s.showTraffic
}

func (s *UIStore) Toasts() []models.Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Toast(nil), s.toasts...)
}

// AddToast appends a toast and schedules its expiry. IDs are monotonic
// millisecond timestamps; two inserts in the same millisecond still get
// distinct ids.
func (s *UIStore) AddToast(toastType models.ToastType, message string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id

	s.toasts = append(s.toasts, models.Toast{ID: id, Type: toastType, Message: message})
	s.timers[id] = time.AfterFunc(s.toastTTL, func() {
		s.RemoveToast(id)
	})
	return id
}

// RemoveToast dismisses the targeted toast, leaving every other toast in
// place. Safe to call for an already-expired id.
func (s *UIStore) RemoveToast(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.timers[id]; ok {
		timer.Stop()
		delete(s.timers, id)
	}

	kept := s.toasts[:0]
	for _, toast := range s.toasts {
		if toast.ID != id {
			kept = append(kept, toast)
		}
	}
	s.toasts = kept
}
