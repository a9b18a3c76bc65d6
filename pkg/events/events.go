// Package events dispatches designer notifications to registered
// observers. Handlers are called synchronously in registration order.
package events

import (
	"reflect"
	"slices"
	"sync"

	"github.com/mandelsoft/formbuilder/pkg/objectbase"
)

type Kind string

const (
	PROJECT_LOADED    Kind = "ProjectLoaded"
	PROJECT_SAVED     Kind = "ProjectSaved"
	PROJECT_REFRESH   Kind = "ProjectRefresh"
	OBJECT_CREATED    Kind = "ObjectCreated"
	OBJECT_REMOVED    Kind = "ObjectRemoved"
	OBJECT_SELECTED   Kind = "ObjectSelected"
	OBJECT_EXPANDED   Kind = "ObjectExpanded"
	PROPERTY_MODIFIED Kind = "PropertyModified"
	EVENT_MODIFIED    Kind = "EventHandlerModified"
	CODE_GENERATION   Kind = "CodeGeneration"
)

// Event describes a change of the designer state. Only the fields
// relevant for the kind are set.
type Event struct {
	Kind     Kind
	Object   *objectbase.Object
	Property *objectbase.Property
	Handler  *objectbase.Event
	// Language is the target of a code generation.
	Language string
	// File is the project file for load and save events.
	File string
}

type EventHandler interface {
	HandleEvent(e *Event)
}

// HandlerFunc adapts a function to an EventHandler. Function handlers
// cannot be unregistered.
type HandlerFunc func(e *Event)

func (f HandlerFunc) HandleEvent(e *Event) {
	f(e)
}

type HandlerRegistration interface {
	// RegisterHandler registers a handler for the given kinds.
	// Without kinds the handler gets all events.
	RegisterHandler(h EventHandler, kinds ...Kind)
	UnregisterHandler(h EventHandler, kinds ...Kind)
}

type HandlerRegistry interface {
	HandlerRegistration
	TriggerEvent(e *Event)
}

type eventhandlers []EventHandler

type registry struct {
	lock  sync.Mutex
	kinds map[Kind]eventhandlers
}

var _ HandlerRegistry = (*registry)(nil)

func NewHandlerRegistry() HandlerRegistry {
	return &registry{
		kinds: map[Kind]eventhandlers{},
	}
}

func index(list []EventHandler, h EventHandler) int {
	if !reflect.TypeOf(h).Comparable() {
		return -1
	}
	return slices.IndexFunc(list, func(e EventHandler) bool {
		return reflect.TypeOf(e).Comparable() && e == h
	})
}

func (r *registry) RegisterHandler(h EventHandler, kinds ...Kind) {
	if len(kinds) == 0 {
		kinds = []Kind{""}
	}
	r.lock.Lock()
	defer r.lock.Unlock()

	for _, k := range kinds {
		handlers := r.kinds[k]
		if index(handlers, h) < 0 {
			r.kinds[k] = append(handlers, h)
		}
	}
}

func (r *registry) UnregisterHandler(h EventHandler, kinds ...Kind) {
	if len(kinds) == 0 {
		kinds = []Kind{""}
	}
	r.lock.Lock()
	defer r.lock.Unlock()

	for _, k := range kinds {
		handlers := r.kinds[k]
		if i := index(handlers, h); i >= 0 {
			handlers = slices.Delete(handlers, i, i+1)
		}
		if len(handlers) > 0 {
			r.kinds[k] = handlers
		} else {
			delete(r.kinds, k)
		}
	}
}

func (r *registry) getHandlers(k Kind) []EventHandler {
	r.lock.Lock()
	defer r.lock.Unlock()

	var handlers []EventHandler
	handlers = append(handlers, r.kinds[k]...)
	if k != "" {
		handlers = append(handlers, r.kinds[""]...)
	}
	return handlers
}

// TriggerEvent calls all handlers registered for the kind of the event
// followed by the handlers registered for all events. Handlers may
// register or unregister handlers, which takes effect for the next event.
func (r *registry) TriggerEvent(e *Event) {
	log.Trace("event {{kind}}", "kind", e.Kind)
	for _, h := range r.getHandlers(e.Kind) {
		h.HandleEvent(e)
	}
}
